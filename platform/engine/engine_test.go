package engine

import (
	"testing"

	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/DedS3t/monopoly-engine/platform/board"
	"github.com/DedS3t/monopoly-engine/platform/store"
)

var testAvatars = []string{"car", "hat", "dog", "ship"}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	b, err := board.Load()
	if err != nil {
		t.Fatalf("board.Load() failed: %v", err)
	}
	return New(store.NewMemory(), b, nil)
}

// startedGame creates an active game with the given player names, first
// turns already spent so GO bonuses apply normally.
func startedGame(t *testing.T, e *Engine, names ...string) (*models.Game, []models.Player) {
	t.Helper()
	game, err := e.CreateGame()
	if err != nil {
		t.Fatalf("CreateGame() failed: %v", err)
	}
	setups := make([]models.PlayerSetupDto, len(names))
	for i, name := range names {
		setups[i] = models.PlayerSetupDto{Name: name, Avatar: testAvatars[i]}
	}
	players, err := e.AddPlayers(game.Id, setups)
	if err != nil {
		t.Fatalf("AddPlayers() failed: %v", err)
	}
	if err := e.Start(game.Id); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	for i := range players {
		players[i].FirstTurn = false
		if err := e.store.UpdatePlayer(&players[i]); err != nil {
			t.Fatalf("updating player: %v", err)
		}
	}
	game, err = e.store.GetGame(game.Id)
	if err != nil {
		t.Fatalf("GetGame() failed: %v", err)
	}
	return game, players
}

func fixDice(e *Engine, dice1, dice2 int) {
	e.roll = func() (int, int) { return dice1, dice2 }
}

func setStatus(t *testing.T, e *Engine, gameID string, status models.GameStatus) {
	t.Helper()
	game, err := e.store.GetGame(gameID)
	if err != nil {
		t.Fatalf("GetGame(%s) failed: %v", gameID, err)
	}
	game.Status = status
	if err := e.store.UpdateGame(game); err != nil {
		t.Fatalf("updating game status: %v", err)
	}
}

func getPlayer(t *testing.T, e *Engine, id string) *models.Player {
	t.Helper()
	player, err := e.store.GetPlayer(id)
	if err != nil {
		t.Fatalf("GetPlayer(%s) failed: %v", id, err)
	}
	return player
}

func setPosition(t *testing.T, e *Engine, id string, position int) {
	t.Helper()
	player := getPlayer(t, e, id)
	player.Position = position
	if err := e.store.UpdatePlayer(player); err != nil {
		t.Fatalf("updating position: %v", err)
	}
}

func setMoney(t *testing.T, e *Engine, id string, money int) {
	t.Helper()
	player := getPlayer(t, e, id)
	player.Money = money
	if err := e.store.UpdatePlayer(player); err != nil {
		t.Fatalf("updating money: %v", err)
	}
}

func setFirstTurn(t *testing.T, e *Engine, id string, firstTurn bool) {
	t.Helper()
	player := getPlayer(t, e, id)
	player.FirstTurn = firstTurn
	if err := e.store.UpdatePlayer(player); err != nil {
		t.Fatalf("updating first turn: %v", err)
	}
}

// giveProperty hands a square to a player directly, bypassing purchase.
func giveProperty(t *testing.T, e *Engine, gameID, playerID string, position int) *models.Ownership {
	t.Helper()
	ownership := newOwnership(gameID, playerID, position)
	if err := e.store.CreateOwnership(ownership); err != nil {
		t.Fatalf("creating ownership: %v", err)
	}
	return ownership
}

func setBuildings(t *testing.T, e *Engine, ownership *models.Ownership, houses, hotels int) {
	t.Helper()
	ownership.Houses = houses
	ownership.Hotels = hotels
	if err := e.store.UpdateOwnership(ownership); err != nil {
		t.Fatalf("updating ownership: %v", err)
	}
}

func setMortgaged(t *testing.T, e *Engine, ownership *models.Ownership, mortgaged bool) {
	t.Helper()
	ownership.IsMortgaged = mortgaged
	if err := e.store.UpdateOwnership(ownership); err != nil {
		t.Fatalf("updating ownership: %v", err)
	}
}
