package engine

import (
	"errors"
	"fmt"

	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/DedS3t/monopoly-engine/platform/store"
)

const (
	incomeTaxAmount = 200
	luxuryTaxAmount = 100
)

// guardActive rejects mutating turn actions outside the active status.
func guardActive(game *models.Game) error {
	if game.Status != models.StatusActive {
		return fmt.Errorf("%w: game is %s, not active", ErrInvalidState, game.Status)
	}
	return nil
}

// Start moves a waiting game to active. The first player by order_id takes
// the first turn.
func (e *Engine) Start(gameID string) error {
	defer e.lockGame(gameID)()
	err := e.store.RunInTransaction(func(tx store.Store) error {
		game, err := tx.GetGame(gameID)
		if err != nil {
			return err
		}
		if game.Status != models.StatusWaiting {
			return fmt.Errorf("%w: game already %s", ErrInvalidState, game.Status)
		}
		players, err := tx.PlayersByGame(gameID)
		if err != nil {
			return err
		}
		if len(players) == 0 {
			return fmt.Errorf("%w: no players in game", ErrInvalidOperation)
		}
		game.Status = models.StatusActive
		game.CurrentPlayer = players[0].Id
		game.TurnPhase = models.PhaseAwaitingRoll
		return tx.UpdateGame(game)
	})
	if err == nil {
		e.publish(gameID, "game-start", nil)
	}
	return err
}

// RollDice rolls for the current player and fully resolves the landing:
// passed-GO bonus, rent transfer, tax debit, or a pending card draw. The
// returned snapshot carries everything the caller needs to present the turn.
func (e *Engine) RollDice(gameID string) (*models.RollResult, error) {
	defer e.lockGame(gameID)()
	result := new(models.RollResult)
	var game *models.Game
	err := e.store.RunInTransaction(func(tx store.Store) error {
		var err error
		game, err = tx.GetGame(gameID)
		if err != nil {
			return err
		}
		if err := guardActive(game); err != nil {
			return err
		}
		if game.TurnPhase != models.PhaseAwaitingRoll {
			return fmt.Errorf("%w: dice already rolled this turn", ErrInvalidState)
		}
		player, err := tx.GetPlayer(game.CurrentPlayer)
		if err != nil {
			return err
		}
		if player.Jail {
			return fmt.Errorf("%w: %s is in jail and must pay the fee first", ErrInvalidOperation, player.Name)
		}

		dice1, dice2 := e.roll()
		total := dice1 + dice2
		isDoubles := dice1 == dice2
		oldPosition := player.Position
		newPosition := (oldPosition + total) % models.BoardSize

		// GO bonus is credited before any landing resolution and never
		// on the player's very first move.
		passedGo := !player.FirstTurn && oldPosition+total >= models.BoardSize
		if passedGo {
			if err := addMoney(tx, player, models.GoBonus); err != nil {
				return err
			}
		}
		if err := setFirstTurnComplete(tx, player); err != nil {
			return err
		}
		if err := updatePosition(tx, player, newPosition); err != nil {
			return err
		}

		result.Dice = models.DiceView{Dice1: dice1, Dice2: dice2, Total: total, IsDoubles: isDoubles}
		result.PlayerId = player.Id
		result.PlayerName = player.Name
		result.OldPosition = oldPosition
		result.NewPosition = newPosition
		result.PassedGo = passedGo

		if err := e.resolveLanding(tx, game, player, total, result); err != nil {
			return err
		}

		if result.Bankrupt {
			if err := e.markBankrupt(tx, game, player); err != nil {
				return err
			}
		}

		// Doubles earn another roll unless the roller just went under.
		if !isDoubles || result.Bankrupt {
			game.TurnPhase = models.PhaseAwaitingEnd
		}
		if game.Status == models.StatusActive {
			if err := tx.UpdateGame(game); err != nil {
				return err
			}
		}

		result.Money = player.Money
		view, err := e.propertyView(tx, gameID, newPosition)
		if err != nil {
			return err
		}
		result.Property = view
		return nil
	})
	if err != nil {
		return nil, err
	}
	e.publish(gameID, "dice-rolled", result)
	e.publishGameOver(game)
	return result, nil
}

// resolveLanding applies the effect of arriving on a square: rent to a
// non-mortgaged other owner (utilities multiply by the dice total), a fixed
// tax by square name, or a pending card draw signal.
func (e *Engine) resolveLanding(tx store.Store, game *models.Game, player *models.Player, diceTotal int, result *models.RollResult) error {
	property, err := e.board.GetByPos(player.Position)
	if err != nil {
		return fmt.Errorf("%w: property %d", store.ErrNotFound, player.Position)
	}

	switch property.Type {
	case models.TypeTax:
		amount := luxuryTaxAmount
		if property.Name == "Income Tax" {
			amount = incomeTaxAmount
		}
		outcome, err := charge(tx, player, amount, true)
		if err != nil {
			return err
		}
		result.TaxPaid = outcome.Paid
		result.Bankrupt = outcome.Status == PaidPartial
		return nil

	case models.TypeChance:
		result.CardDue = models.CardChance
		return nil

	case models.TypeCommunityChest:
		result.CardDue = models.CardCommunityChest
		return nil

	case models.TypeSpecial:
		return nil
	}

	ownership, err := tx.GetOwnership(game.Id, player.Position)
	if errors.Is(err, store.ErrNotFound) {
		return nil // unowned, purchase offer is the caller's move
	}
	if err != nil {
		return err
	}
	if ownership.PlayerId == player.Id || ownership.IsMortgaged {
		return nil
	}

	rent, err := e.calculateRent(tx, game.Id, player.Position)
	if err != nil {
		return err
	}
	if property.Type == models.TypeUtility {
		rent *= diceTotal
	}
	if rent == 0 {
		return nil
	}

	outcome, err := charge(tx, player, rent, true)
	if err != nil {
		return err
	}
	owner, err := tx.GetPlayer(ownership.PlayerId)
	if err != nil {
		return err
	}
	// The owner receives what was actually paid, not the full claim.
	if err := addMoney(tx, owner, outcome.Paid); err != nil {
		return err
	}
	result.RentPaid = outcome.Paid
	result.RentOwner = owner.Name
	result.Bankrupt = outcome.Status == PaidPartial
	return nil
}

// EndTurn hands the turn to the next non-bankrupt player by order_id,
// wrapping to the first after the last.
func (e *Engine) EndTurn(gameID string) (*models.Player, error) {
	defer e.lockGame(gameID)()
	var next *models.Player
	err := e.store.RunInTransaction(func(tx store.Store) error {
		game, err := tx.GetGame(gameID)
		if err != nil {
			return err
		}
		if err := guardActive(game); err != nil {
			return err
		}
		if game.TurnPhase != models.PhaseAwaitingEnd {
			return fmt.Errorf("%w: roll the dice first", ErrInvalidState)
		}
		players, err := tx.PlayersByGame(gameID)
		if err != nil {
			return err
		}
		current := -1
		for i := range players {
			if players[i].Id == game.CurrentPlayer {
				current = i
				break
			}
		}
		if current == -1 {
			return fmt.Errorf("%w: current player not in roster", ErrInvalidState)
		}
		for step := 1; step <= len(players); step++ {
			candidate := &players[(current+step)%len(players)]
			if !candidate.Bankrupt {
				next = candidate
				break
			}
		}
		if next == nil {
			return fmt.Errorf("%w: no solvent players left", ErrInvalidState)
		}
		game.CurrentPlayer = next.Id
		game.TurnPhase = models.PhaseAwaitingRoll
		return tx.UpdateGame(game)
	})
	if err != nil {
		return nil, err
	}
	e.publish(gameID, "change-turn", next.Id)
	return next, nil
}

// BuyProperty sells an unowned purchasable square to the player at list
// price. The debit hard-fails on insufficient funds; debit and ownership
// record commit together.
func (e *Engine) BuyProperty(gameID string, playerID string, position int) (*models.PropertyView, error) {
	defer e.lockGame(gameID)()
	var view *models.PropertyView
	err := e.store.RunInTransaction(func(tx store.Store) error {
		game, err := tx.GetGame(gameID)
		if err != nil {
			return err
		}
		if err := guardActive(game); err != nil {
			return err
		}
		if playerID == "" {
			playerID = game.CurrentPlayer
		}
		player, err := tx.GetPlayer(playerID)
		if err != nil {
			return err
		}
		if player.GameId != gameID {
			return fmt.Errorf("%w: player %s not in game %s", store.ErrNotFound, playerID, gameID)
		}
		property, err := e.board.GetByPos(position)
		if err != nil {
			return fmt.Errorf("%w: property %d", store.ErrNotFound, position)
		}
		if !property.Purchasable() {
			return fmt.Errorf("%w: %s cannot be purchased", ErrInvalidOperation, property.Name)
		}
		if _, err := tx.GetOwnership(gameID, position); err == nil {
			return fmt.Errorf("%w: %s is already owned", ErrInvalidOperation, property.Name)
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}
		if _, err := charge(tx, player, property.Price, false); err != nil {
			return err
		}
		if err := tx.CreateOwnership(newOwnership(gameID, playerID, position)); err != nil {
			return err
		}
		view, err = e.propertyView(tx, gameID, position)
		return err
	})
	if err != nil {
		return nil, err
	}
	e.publish(gameID, "property-bought", view)
	return view, nil
}

// PayOutOfJail pays the fixed fee to leave jail, allowed only before the
// roll. The debit refuses on insufficient funds.
func (e *Engine) PayOutOfJail(gameID string, playerID string) error {
	defer e.lockGame(gameID)()
	err := e.store.RunInTransaction(func(tx store.Store) error {
		game, err := tx.GetGame(gameID)
		if err != nil {
			return err
		}
		if err := guardActive(game); err != nil {
			return err
		}
		if playerID == "" {
			playerID = game.CurrentPlayer
		}
		if game.CurrentPlayer != playerID {
			return fmt.Errorf("%w: not %s's turn", ErrInvalidState, playerID)
		}
		if game.TurnPhase != models.PhaseAwaitingRoll {
			return fmt.Errorf("%w: cannot pay out of jail after rolling", ErrInvalidState)
		}
		player, err := tx.GetPlayer(playerID)
		if err != nil {
			return err
		}
		if !player.Jail {
			return fmt.Errorf("%w: %s is not in jail", ErrInvalidOperation, player.Name)
		}
		if _, err := charge(tx, player, models.JailFee, false); err != nil {
			return err
		}
		return updateJailStatus(tx, player, false)
	})
	if err == nil {
		e.publish(gameID, "left-jail", playerID)
	}
	return err
}
