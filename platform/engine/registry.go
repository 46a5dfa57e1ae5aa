package engine

import (
	"fmt"
	"time"

	uuid "github.com/satori/go.uuid"

	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/DedS3t/monopoly-engine/pkg"
	"github.com/DedS3t/monopoly-engine/platform/store"
)

const (
	minPlayers = 2
	maxPlayers = 4
)

// CreateGame registers a new game in the waiting state.
func (e *Engine) CreateGame() (*models.Game, error) {
	game := &models.Game{
		Id:        pkg.RandString(8),
		Status:    models.StatusWaiting,
		CreatedAt: time.Now(),
	}
	if err := e.store.CreateGame(game); err != nil {
		return nil, err
	}
	return game, nil
}

// AddPlayers fills the roster with sequential order ids. The roster must
// land between 2 and 4 players, every entry needs a name and an avatar, and
// names and avatars are unique within the game.
func (e *Engine) AddPlayers(gameID string, setups []models.PlayerSetupDto) ([]models.Player, error) {
	defer e.lockGame(gameID)()
	var created []models.Player
	err := e.store.RunInTransaction(func(tx store.Store) error {
		game, err := tx.GetGame(gameID)
		if err != nil {
			return err
		}
		if game.Status != models.StatusWaiting {
			return fmt.Errorf("%w: roster is closed once the game starts", ErrInvalidState)
		}
		existing, err := tx.PlayersByGame(gameID)
		if err != nil {
			return err
		}
		if len(existing)+len(setups) < minPlayers || len(existing)+len(setups) > maxPlayers {
			return fmt.Errorf("%w: game must have %d-%d players", ErrInvalidOperation, minPlayers, maxPlayers)
		}

		names := make(map[string]bool)
		avatars := make(map[string]bool)
		for _, player := range existing {
			names[player.Name] = true
			avatars[player.Avatar] = true
		}
		for i, setup := range setups {
			if setup.Name == "" || setup.Avatar == "" {
				return fmt.Errorf("%w: each player must have a name and avatar", ErrInvalidOperation)
			}
			if names[setup.Name] {
				return fmt.Errorf("%w: duplicate player name %q", ErrInvalidOperation, setup.Name)
			}
			if avatars[setup.Avatar] {
				return fmt.Errorf("%w: duplicate avatar %q", ErrInvalidOperation, setup.Avatar)
			}
			names[setup.Name] = true
			avatars[setup.Avatar] = true

			player := models.Player{
				Id:        uuid.NewV4().String(),
				GameId:    gameID,
				OrderId:   len(existing) + i + 1,
				Name:      setup.Name,
				Avatar:    setup.Avatar,
				Money:     models.StartingMoney,
				FirstTurn: true,
			}
			if err := tx.CreatePlayer(&player); err != nil {
				return err
			}
			created = append(created, player)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// RemovePlayer drops a player from the roster, allowed only before start.
func (e *Engine) RemovePlayer(gameID string, playerID string) error {
	defer e.lockGame(gameID)()
	return e.store.RunInTransaction(func(tx store.Store) error {
		game, err := tx.GetGame(gameID)
		if err != nil {
			return err
		}
		if game.Status != models.StatusWaiting {
			return fmt.Errorf("%w: cannot remove a player from a %s game", ErrInvalidState, game.Status)
		}
		player, err := tx.GetPlayer(playerID)
		if err != nil {
			return err
		}
		if player.GameId != gameID {
			return fmt.Errorf("%w: player %s not in game %s", store.ErrNotFound, playerID, gameID)
		}
		if err := tx.DeleteOwnershipsByPlayer(playerID); err != nil {
			return err
		}
		return tx.DeletePlayer(playerID)
	})
}

// DeleteGame cascades removal of ownership records, players and the game
// itself as one atomic unit.
func (e *Engine) DeleteGame(gameID string) error {
	defer e.lockGame(gameID)()
	err := e.store.RunInTransaction(func(tx store.Store) error {
		if _, err := tx.GetGame(gameID); err != nil {
			return err
		}
		if err := tx.DeleteOwnershipsByGame(gameID); err != nil {
			return err
		}
		if err := tx.DeletePlayersByGame(gameID); err != nil {
			return err
		}
		return tx.DeleteGame(gameID)
	})
	if err != nil {
		return err
	}
	e.releaseLock(gameID)
	e.publish(gameID, "game-deleted", nil)
	return nil
}

// GameState assembles the complete snapshot: game, roster, every player's
// holdings and mortgaged properties, and who holds the turn.
func (e *Engine) GameState(gameID string) (*models.GameStateView, error) {
	game, err := e.store.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	players, err := e.store.PlayersByGame(gameID)
	if err != nil {
		return nil, err
	}

	view := &models.GameStateView{
		Id:              game.Id,
		Status:          game.Status,
		TurnPhase:       game.TurnPhase,
		CurrentPlayerId: game.CurrentPlayer,
		Players:         make([]models.PlayerView, 0, len(players)),
	}
	for _, player := range players {
		playerView, err := e.playerView(player)
		if err != nil {
			return nil, err
		}
		view.Players = append(view.Players, *playerView)
		if player.Id == game.CurrentPlayer {
			view.CurrentPlayerOrder = player.OrderId
			view.CurrentPlayerName = player.Name
		}
	}
	return view, nil
}

func (e *Engine) playerView(player models.Player) (*models.PlayerView, error) {
	ownerships, err := e.store.OwnershipsByPlayer(player.Id)
	if err != nil {
		return nil, err
	}
	view := &models.PlayerView{
		Id:                  player.Id,
		GameId:              player.GameId,
		OrderId:             player.OrderId,
		Name:                player.Name,
		Avatar:              player.Avatar,
		Money:               player.Money,
		Position:            player.Position,
		Jail:                player.Jail,
		FirstTurn:           player.FirstTurn,
		Bankrupt:            player.Bankrupt,
		Properties:          make([]models.OwnedPropertyView, 0, len(ownerships)),
		MortgagedProperties: []string{},
	}
	for _, ownership := range ownerships {
		property, err := e.board.GetByPos(ownership.PropertyId)
		if err != nil {
			continue
		}
		view.Properties = append(view.Properties, models.OwnedPropertyView{
			Id:          ownership.PropertyId,
			Name:        property.Name,
			Color:       property.Color,
			Houses:      ownership.Houses,
			Hotels:      ownership.Hotels,
			IsMortgaged: ownership.IsMortgaged,
		})
		if ownership.IsMortgaged {
			view.MortgagedProperties = append(view.MortgagedProperties, property.Name)
		}
	}
	return view, nil
}

// Statistics aggregates money in play, owned property counts, the richest
// player and the one holding most property.
func (e *Engine) Statistics(gameID string) (*models.Statistics, error) {
	if _, err := e.store.GetGame(gameID); err != nil {
		return nil, err
	}
	players, err := e.store.PlayersByGame(gameID)
	if err != nil {
		return nil, err
	}
	if len(players) == 0 {
		return nil, fmt.Errorf("%w: game %s has no players", store.ErrNotFound, gameID)
	}

	stats := &models.Statistics{TotalPlayers: len(players)}
	richest := -1
	most := -1
	for _, player := range players {
		ownerships, err := e.store.OwnershipsByPlayer(player.Id)
		if err != nil {
			return nil, err
		}
		stats.TotalMoneyInGame += player.Money
		stats.TotalPropertiesOwned += len(ownerships)
		if player.Money > richest {
			richest = player.Money
			stats.RichestPlayer = models.RichestPlayerView{Name: player.Name, Money: player.Money}
		}
		if len(ownerships) > most {
			most = len(ownerships)
			stats.MostProperties = models.MostPropertiesView{Name: player.Name, Count: len(ownerships)}
		}
	}
	return stats, nil
}
