package subscriptions

import (
	"sync"

	"agora/internal/pubsub"
)

// mailbox is an unbounded FIFO drained by a single worker, so publishers
// never wait on delivery.
type mailbox struct {
	mu     sync.Mutex
	queue  []pubsub.Message
	signal chan struct{}
}

func newMailbox() *mailbox {
	return &mailbox{signal: make(chan struct{}, 1)}
}

func (m *mailbox) push(msg pubsub.Message) {
	m.mu.Lock()
	m.queue = append(m.queue, msg)
	m.mu.Unlock()

	select {
	case m.signal <- struct{}{}:
	default:
	}
}

// drain takes every queued message in arrival order.
func (m *mailbox) drain() []pubsub.Message {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := m.queue
	m.queue = nil
	return out
}
