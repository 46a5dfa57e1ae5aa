package engine

import (
	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/DedS3t/monopoly-engine/platform/store"
)

// markBankrupt flags the player, returns their properties to the bank and
// runs the endgame check, all inside the caller's transaction.
func (e *Engine) markBankrupt(tx store.Store, game *models.Game, player *models.Player) error {
	if player.Bankrupt {
		return nil
	}
	player.Bankrupt = true
	if err := tx.UpdatePlayer(player); err != nil {
		return err
	}
	if err := tx.DeleteOwnershipsByPlayer(player.Id); err != nil {
		return err
	}
	return e.checkEndgame(tx, game)
}

// checkEndgame finishes the game when a single solvent player remains.
func (e *Engine) checkEndgame(tx store.Store, game *models.Game) error {
	players, err := tx.PlayersByGame(game.Id)
	if err != nil {
		return err
	}
	solvent := 0
	for _, player := range players {
		if !player.Bankrupt {
			solvent++
		}
	}
	if solvent > 1 {
		return nil
	}
	game.Status = models.StatusFinished
	game.CurrentPlayer = ""
	game.TurnPhase = ""
	return tx.UpdateGame(game)
}

// publishGameOver emits the endgame event once the finishing transaction has
// committed.
func (e *Engine) publishGameOver(game *models.Game) {
	if game == nil || game.Status != models.StatusFinished {
		return
	}
	players, err := e.store.PlayersByGame(game.Id)
	if err != nil {
		return
	}
	winner := ""
	for _, player := range players {
		if !player.Bankrupt {
			winner = player.Id
		}
	}
	e.publish(game.Id, "game-over", winner)
}

// EvaluateBankruptcy reports which players are bankrupt and finalizes the
// endgame transition if it is due.
func (e *Engine) EvaluateBankruptcy(gameID string) (*models.BankruptcyReport, error) {
	defer e.lockGame(gameID)()
	report := new(models.BankruptcyReport)
	var game *models.Game
	wasActive := false
	err := e.store.RunInTransaction(func(tx store.Store) error {
		var err error
		game, err = tx.GetGame(gameID)
		if err != nil {
			return err
		}
		if game.Status == models.StatusActive {
			wasActive = true
			if err := e.checkEndgame(tx, game); err != nil {
				return err
			}
		}
		players, err := tx.PlayersByGame(gameID)
		if err != nil {
			return err
		}
		for _, player := range players {
			if player.Bankrupt {
				report.BankruptPlayers = append(report.BankruptPlayers, player.Name)
			} else {
				report.Winner = player.Name
			}
		}
		report.GameOver = game.Status == models.StatusFinished
		if !report.GameOver {
			report.Winner = ""
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if wasActive {
		e.publishGameOver(game)
	}
	return report, nil
}
