package pubsub

import (
	"context"
	"errors"
	"slices"
	"sync"
)

var ErrNilHandler = errors.New("pubsub: nil handler")

type registration struct {
	trigger string
	scope   string
	handler Handler
}

// Local is an in-process PubSub. Handlers of a trigger run on the
// publisher's goroutine in registration order.
type Local struct {
	mu        sync.RWMutex
	nextID    int
	subs      map[int]registration
	byTrigger map[string][]int
}

func NewLocal() *Local {
	return &Local{
		subs:      make(map[int]registration),
		byTrigger: make(map[string][]int),
	}
}

func (l *Local) Subscribe(trigger string, h Handler, scope string) (int, error) {
	if h == nil {
		return 0, ErrNilHandler
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	id := l.nextID
	l.subs[id] = registration{trigger: trigger, scope: scope, handler: h}
	l.byTrigger[trigger] = append(l.byTrigger[trigger], id)

	return id, nil
}

// Unsubscribe removes a registration. Unknown ids are ignored.
func (l *Local) Unsubscribe(id int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	reg, ok := l.subs[id]
	if !ok {
		return
	}
	delete(l.subs, id)

	ids := slices.DeleteFunc(l.byTrigger[reg.trigger], func(v int) bool { return v == id })
	if len(ids) == 0 {
		delete(l.byTrigger, reg.trigger)
		return
	}
	l.byTrigger[reg.trigger] = ids
}

func (l *Local) Publish(ctx context.Context, trigger string, msg Message) error {
	recipient := msg.RecipientID()

	l.mu.RLock()
	handlers := make([]Handler, 0, len(l.byTrigger[trigger]))
	for _, id := range l.byTrigger[trigger] {
		reg := l.subs[id]
		if recipient != "" && reg.scope != recipient {
			continue
		}
		handlers = append(handlers, reg.handler)
	}
	l.mu.RUnlock()

	for _, h := range handlers {
		h(ctx, msg)
	}

	return nil
}

// Len returns the number of live registrations.
func (l *Local) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.subs)
}
