package engine

import (
	"fmt"

	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/DedS3t/monopoly-engine/platform/store"
)

// DrawRandomCard picks a uniform-random card of the requested deck type
// without executing it.
func (e *Engine) DrawRandomCard(cardType string) (models.Card, error) {
	cards := e.board.Cards(cardType)
	if len(cards) == 0 {
		return models.Card{}, fmt.Errorf("%w: card type %q", ErrUnknownAction, cardType)
	}
	return cards[e.pick(len(cards))], nil
}

// DrawCard draws a random card of the type and applies its effect to the
// game's current player, all in one transaction.
func (e *Engine) DrawCard(gameID string, cardType string) (*models.CardResult, error) {
	card, err := e.DrawRandomCard(cardType)
	if err != nil {
		return nil, err
	}
	defer e.lockGame(gameID)()
	result := &models.CardResult{Card: card}
	var game *models.Game
	err = e.store.RunInTransaction(func(tx store.Store) error {
		game, err = tx.GetGame(gameID)
		if err != nil {
			return err
		}
		if err := guardActive(game); err != nil {
			return err
		}
		player, err := tx.GetPlayer(game.CurrentPlayer)
		if err != nil {
			return err
		}
		if err := e.executeCard(tx, game, player, card, result); err != nil {
			return err
		}
		if result.Bankrupt {
			return e.markBankrupt(tx, game, player)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	e.publish(gameID, "card-drawn", result)
	e.publishGameOver(game)
	return result, nil
}

func (e *Engine) executeCard(tx store.Store, game *models.Game, player *models.Player, card models.Card, result *models.CardResult) error {
	result.NewPosition = player.Position

	switch card.ActionType {
	case models.ActionCollectMoney:
		if err := addMoney(tx, player, card.Amount); err != nil {
			return err
		}
		result.MoneyChange = card.Amount
		result.Message = fmt.Sprintf("%s collected $%d", player.Name, card.Amount)

	case models.ActionPayMoney:
		outcome, err := charge(tx, player, card.Amount, true)
		if err != nil {
			return err
		}
		result.MoneyChange = -outcome.Paid
		result.Bankrupt = outcome.Status == PaidPartial
		result.Message = fmt.Sprintf("%s paid $%d", player.Name, outcome.Paid)

	case models.ActionMoveToPosition:
		// Moving backwards around the board counts as passing GO --
		// except when the destination is jail.
		if card.Position != models.JailPosition && card.Position < player.Position {
			if err := addMoney(tx, player, models.GoBonus); err != nil {
				return err
			}
			result.MoneyChange = models.GoBonus
			result.PassedGo = true
		}
		if err := updatePosition(tx, player, card.Position); err != nil {
			return err
		}
		result.NewPosition = card.Position
		if card.Position == models.JailPosition {
			if err := updateJailStatus(tx, player, true); err != nil {
				return err
			}
			result.WentToJail = true
			result.Message = fmt.Sprintf("%s went to jail!", player.Name)
		} else {
			result.Message = fmt.Sprintf("%s moved to position %d", player.Name, card.Position)
			if result.PassedGo {
				result.Message += " and collected $200 for passing GO"
			}
		}

	case models.ActionCollectFromPlayers:
		players, err := tx.PlayersByGame(game.Id)
		if err != nil {
			return err
		}
		collected := 0
		for i := range players {
			other := &players[i]
			if other.Id == player.Id || other.Bankrupt {
				continue
			}
			outcome, err := charge(tx, other, card.Amount, true)
			if err != nil {
				return err
			}
			collected += outcome.Paid
			if outcome.Status == PaidPartial {
				if err := e.markBankrupt(tx, game, other); err != nil {
					return err
				}
			}
		}
		if err := addMoney(tx, player, collected); err != nil {
			return err
		}
		result.MoneyChange = collected
		result.Message = fmt.Sprintf("%s collected $%d from other players", player.Name, collected)

	case models.ActionPayPerHouse:
		ownerships, err := tx.OwnershipsByPlayer(player.Id)
		if err != nil {
			return err
		}
		houses, hotels := 0, 0
		for _, ownership := range ownerships {
			houses += ownership.Houses
			hotels += ownership.Hotels
		}
		total := houses*card.PerHouseAmount + hotels*card.PerHotelAmount
		outcome, err := charge(tx, player, total, true)
		if err != nil {
			return err
		}
		result.MoneyChange = -outcome.Paid
		result.Bankrupt = outcome.Status == PaidPartial
		result.Message = fmt.Sprintf("%s paid $%d for property repairs (%d houses, %d hotels)", player.Name, outcome.Paid, houses, hotels)

	default:
		return fmt.Errorf("%w: card action %q", ErrUnknownAction, card.ActionType)
	}
	return nil
}
