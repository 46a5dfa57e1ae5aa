// Package events is a small in-process pub/sub bus. The engine publishes
// game events on it; the socket gateway relays them to connected clients.
package events

import "sync"

type Handler func(gameID string, event string, payload interface{})

type Bus struct {
	mu       sync.RWMutex
	handlers []Handler
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	b.handlers = append(b.handlers, h)
	b.mu.Unlock()
}

func (b *Bus) Publish(gameID string, event string, payload interface{}) {
	b.mu.RLock()
	handlers := b.handlers
	b.mu.RUnlock()
	for _, h := range handlers {
		h(gameID, event, payload)
	}
}
