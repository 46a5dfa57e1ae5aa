package engine

import (
	"testing"

	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/DedS3t/monopoly-engine/platform/board"
	"github.com/DedS3t/monopoly-engine/platform/events"
	"github.com/DedS3t/monopoly-engine/platform/store"
)

type recordedEvent struct {
	gameID  string
	event   string
	payload interface{}
}

func newBusEngine(t *testing.T) (*Engine, *[]recordedEvent) {
	t.Helper()
	b, err := board.Load()
	if err != nil {
		t.Fatalf("board.Load() failed: %v", err)
	}
	bus := events.NewBus()
	e := New(store.NewMemory(), b, bus)
	recorded := new([]recordedEvent)
	bus.Subscribe(func(gameID string, event string, payload interface{}) {
		*recorded = append(*recorded, recordedEvent{gameID: gameID, event: event, payload: payload})
	})
	return e, recorded
}

func eventsNamed(recorded []recordedEvent, name string) []recordedEvent {
	var out []recordedEvent
	for _, ev := range recorded {
		if ev.event == name {
			out = append(out, ev)
		}
	}
	return out
}

func TestNoEventFromFailedTransaction(t *testing.T) {
	e, recorded := newBusEngine(t)
	game, players := startedGame(t, e, "alice", "bob")
	giveProperty(t, e, game.Id, players[0].Id, 1)
	giveProperty(t, e, game.Id, players[0].Id, 3)
	setMoney(t, e, players[0].Id, 10)
	before := len(*recorded)

	if err := e.BuildHouse(game.Id, 1); err == nil {
		t.Fatal("BuildHouse() succeeded, want error")
	}
	if _, err := e.Mortgage(game.Id, 39); err == nil {
		t.Fatal("Mortgage() of unowned square succeeded, want error")
	}
	if len(*recorded) != before {
		t.Fatalf("failed operations published %d events", len(*recorded)-before)
	}
}

func TestMortgageEventSeesCommittedState(t *testing.T) {
	e, recorded := newBusEngine(t)
	game, players := startedGame(t, e, "alice", "bob")
	giveProperty(t, e, game.Id, players[0].Id, 1)

	// Re-subscribe with a handler that checks the store at publish time.
	sawMortgaged := false
	e.bus.Subscribe(func(gameID string, event string, payload interface{}) {
		if event != "property-mortgaged" {
			return
		}
		ownership, err := e.store.GetOwnership(gameID, payload.(int))
		if err != nil {
			t.Errorf("GetOwnership() during event failed: %v", err)
			return
		}
		sawMortgaged = ownership.IsMortgaged
	})

	if _, err := e.Mortgage(game.Id, 1); err != nil {
		t.Fatalf("Mortgage() failed: %v", err)
	}
	if !sawMortgaged {
		t.Fatal("mortgage event fired before the flag was committed")
	}
	if got := eventsNamed(*recorded, "property-mortgaged"); len(got) != 1 {
		t.Fatalf("published %d property-mortgaged events, want 1", len(got))
	}
}

func TestGameOverEventAfterCommit(t *testing.T) {
	e, recorded := newBusEngine(t)
	game, players := startedGame(t, e, "alice", "bob")
	hotel := giveProperty(t, e, game.Id, players[1].Id, 39)
	setBuildings(t, e, hotel, 0, 1)
	setMoney(t, e, players[0].Id, 100)
	setPosition(t, e, players[0].Id, 36)
	fixDice(e, 1, 2)

	sawFinished := false
	e.bus.Subscribe(func(gameID string, event string, payload interface{}) {
		if event != "game-over" {
			return
		}
		g, err := e.store.GetGame(gameID)
		if err != nil {
			t.Errorf("GetGame() during event failed: %v", err)
			return
		}
		sawFinished = g.Status == models.StatusFinished
	})

	if _, err := e.RollDice(game.Id); err != nil {
		t.Fatalf("RollDice() failed: %v", err)
	}

	got := eventsNamed(*recorded, "game-over")
	if len(got) != 1 {
		t.Fatalf("published %d game-over events, want 1", len(got))
	}
	if winner, ok := got[0].payload.(string); !ok || winner != players[1].Id {
		t.Fatalf("game-over payload = %v, want winner id %s", got[0].payload, players[1].Id)
	}
	if !sawFinished {
		t.Fatal("game-over event fired before the finished status was committed")
	}
}
