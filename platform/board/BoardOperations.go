package board

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/DedS3t/monopoly-engine/app/models"
)

//go:embed properties.json
var propertiesJSON []byte

//go:embed cards.json
var cardsJSON []byte

// Board holds the 40 static squares and the card decks. Loaded once at
// startup and shared read-only.
type Board struct {
	squares map[int]models.Property
	byColor map[string][]models.Property
	cards   map[string][]models.Card
}

func Load() (*Board, error) {
	var properties []models.Property
	if err := json.Unmarshal(propertiesJSON, &properties); err != nil {
		return nil, fmt.Errorf("parsing board data: %w", err)
	}

	var cards []models.Card
	if err := json.Unmarshal(cardsJSON, &cards); err != nil {
		return nil, fmt.Errorf("parsing card data: %w", err)
	}

	b := &Board{
		squares: make(map[int]models.Property, len(properties)),
		byColor: make(map[string][]models.Property),
		cards:   make(map[string][]models.Card),
	}
	for _, property := range properties {
		b.squares[property.Position] = property
		if property.Color != "" {
			b.byColor[property.Color] = append(b.byColor[property.Color], property)
		}
	}
	for _, card := range cards {
		b.cards[card.Type] = append(b.cards[card.Type], card)
	}

	if len(b.squares) != models.BoardSize {
		return nil, fmt.Errorf("board has %d squares, want %d", len(b.squares), models.BoardSize)
	}
	return b, nil
}

func (b *Board) GetByPos(pos int) (models.Property, error) {
	property, ok := b.squares[pos]
	if !ok {
		return models.Property{}, fmt.Errorf("no square at position %d", pos)
	}
	return property, nil
}

// GetByColor returns every square in a color group, ordered by position.
func (b *Board) GetByColor(color string) []models.Property {
	group := make([]models.Property, len(b.byColor[color]))
	copy(group, b.byColor[color])
	sort.Slice(group, func(i, j int) bool { return group[i].Position < group[j].Position })
	return group
}

func (b *Board) All() []models.Property {
	all := make([]models.Property, 0, len(b.squares))
	for _, property := range b.squares {
		all = append(all, property)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Position < all[j].Position })
	return all
}

// Cards returns all cards of a deck type, nil when the type is unknown.
func (b *Board) Cards(cardType string) []models.Card {
	return b.cards[cardType]
}
