package board

import (
	"testing"

	"github.com/DedS3t/monopoly-engine/app/models"
)

func loadBoard(t *testing.T) *Board {
	t.Helper()
	b, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	return b
}

func TestLoad(t *testing.T) {
	b := loadBoard(t)
	if got := len(b.All()); got != models.BoardSize {
		t.Fatalf("board has %d squares, want %d", got, models.BoardSize)
	}
}

func TestGetByPos(t *testing.T) {
	b := loadBoard(t)
	tests := []struct {
		position int
		name     string
		propType string
	}{
		{position: 0, name: "GO", propType: models.TypeSpecial},
		{position: 1, name: "Mediterranean Avenue", propType: models.TypeProperty},
		{position: 5, name: "Reading Railroad", propType: models.TypeRailroad},
		{position: 10, name: "Jail", propType: models.TypeSpecial},
		{position: 12, name: "Electric Company", propType: models.TypeUtility},
		{position: 38, name: "Luxury Tax", propType: models.TypeTax},
		{position: 39, name: "Boardwalk", propType: models.TypeProperty},
	}
	for _, tt := range tests {
		property, err := b.GetByPos(tt.position)
		if err != nil {
			t.Fatalf("GetByPos(%d) failed: %v", tt.position, err)
		}
		if property.Name != tt.name || property.Type != tt.propType {
			t.Fatalf("GetByPos(%d) = %s/%s, want %s/%s", tt.position, property.Name, property.Type, tt.name, tt.propType)
		}
	}

	if _, err := b.GetByPos(40); err == nil {
		t.Fatal("GetByPos(40) succeeded, want error")
	}
}

func TestGetByColor(t *testing.T) {
	b := loadBoard(t)
	tests := []struct {
		color string
		want  []int
	}{
		{color: "brown", want: []int{1, 3}},
		{color: "dark_blue", want: []int{37, 39}},
		{color: "green", want: []int{31, 32, 34}},
	}
	for _, tt := range tests {
		group := b.GetByColor(tt.color)
		if len(group) != len(tt.want) {
			t.Fatalf("GetByColor(%s) returned %d squares, want %d", tt.color, len(group), len(tt.want))
		}
		for i, property := range group {
			if property.Position != tt.want[i] {
				t.Fatalf("GetByColor(%s)[%d] = position %d, want %d", tt.color, i, property.Position, tt.want[i])
			}
		}
	}

	if group := b.GetByColor("plaid"); len(group) != 0 {
		t.Fatalf("GetByColor(plaid) returned %d squares, want 0", len(group))
	}
}

func TestCards(t *testing.T) {
	b := loadBoard(t)
	for _, cardType := range []string{models.CardChance, models.CardCommunityChest} {
		cards := b.Cards(cardType)
		if len(cards) == 0 {
			t.Fatalf("no %s cards loaded", cardType)
		}
		for _, card := range cards {
			if card.Type != cardType {
				t.Fatalf("card %d has type %q in the %s deck", card.Id, card.Type, cardType)
			}
			if card.ActionType == "" {
				t.Fatalf("card %d has no action", card.Id)
			}
		}
	}
	if cards := b.Cards("bogus"); cards != nil {
		t.Fatalf("Cards(bogus) = %v, want nil", cards)
	}
}

func TestPurchasable(t *testing.T) {
	b := loadBoard(t)
	tests := []struct {
		position int
		want     bool
	}{
		{position: 1, want: true},   // street
		{position: 5, want: true},   // railroad
		{position: 12, want: true},  // utility
		{position: 0, want: false},  // GO
		{position: 4, want: false},  // tax
		{position: 7, want: false},  // chance
	}
	for _, tt := range tests {
		property, err := b.GetByPos(tt.position)
		if err != nil {
			t.Fatalf("GetByPos(%d) failed: %v", tt.position, err)
		}
		if got := property.Purchasable(); got != tt.want {
			t.Fatalf("Purchasable(%d) = %v, want %v", tt.position, got, tt.want)
		}
	}
}
