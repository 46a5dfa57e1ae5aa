// Package engine implements the game rules: turns, the property ledger,
// cards and bankruptcy. Every operation loads state from the store and
// commits its effects in one transaction.
package engine

import (
	"math/rand"
	"sync"
	"time"

	"github.com/DedS3t/monopoly-engine/platform/board"
	"github.com/DedS3t/monopoly-engine/platform/events"
	"github.com/DedS3t/monopoly-engine/platform/store"
)

type Engine struct {
	store store.Store
	board *board.Board
	bus   *events.Bus

	// roll and pick are swapped out by tests for deterministic dice and
	// card draws.
	roll func() (int, int)
	pick func(n int) int

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(s store.Store, b *board.Board, bus *events.Bus) *Engine {
	rand.Seed(time.Now().UnixNano())
	return &Engine{
		store: s,
		board: b,
		bus:   bus,
		roll:  func() (int, int) { return rand.Intn(6) + 1, rand.Intn(6) + 1 },
		pick:  rand.Intn,
		locks: make(map[string]*sync.Mutex),
	}
}

// lockGame serializes mutating actions per game. Exactly one in-flight
// mutation per game at a time; reads stay lock-free.
func (e *Engine) lockGame(gameID string) func() {
	e.mu.Lock()
	l, ok := e.locks[gameID]
	if !ok {
		l = new(sync.Mutex)
		e.locks[gameID] = l
	}
	e.mu.Unlock()
	l.Lock()
	return l.Unlock
}

func (e *Engine) releaseLock(gameID string) {
	e.mu.Lock()
	delete(e.locks, gameID)
	e.mu.Unlock()
}

func (e *Engine) publish(gameID string, event string, payload interface{}) {
	if e.bus != nil {
		e.bus.Publish(gameID, event, payload)
	}
}
