package events

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Event is a published fact about a completed mutation.
type Event struct {
	Name       string
	ActorID    string
	SubjectID  string
	GroupID    string
	Payload    map[string]any
	OccurredAt time.Time
}

// Handler receives a published event. It runs on the publisher's goroutine.
type Handler func(ctx context.Context, evt Event)

// Bus is an explicit publish/subscribe channel for domain events. Handlers
// run synchronously in registration order and are never removed.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	logger   *log.Logger
}

func NewBus(logger *log.Logger) *Bus {
	return &Bus{
		handlers: make(map[string][]Handler),
		logger:   logger,
	}
}

func (b *Bus) Subscribe(name string, h Handler) {
	if h == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = append(b.handlers[name], h)
}

// Publish delivers evt to every handler registered for name. A panicking
// handler is logged and skipped.
func (b *Bus) Publish(ctx context.Context, name string, evt Event) {
	evt.Name = name
	if evt.OccurredAt.IsZero() {
		evt.OccurredAt = time.Now().UTC()
	}

	b.mu.RLock()
	handlers := slices.Clone(b.handlers[name])
	b.mu.RUnlock()

	for _, h := range handlers {
		b.dispatch(ctx, h, evt)
	}
}

func (b *Bus) dispatch(ctx context.Context, h Handler, evt Event) {
	defer func() {
		if r := recover(); r != nil && b.logger != nil {
			b.logger.Error("event handler panicked", "event", evt.Name, "panic", r)
		}
	}()
	h(ctx, evt)
}
