package sse

import (
	"sync"
	"time"
)

// Stream buffers the frames of one subscription until a client drains them.
type Stream struct {
	ID    int
	Owner string

	frames chan Frame
	closed chan struct{}
	once   sync.Once

	attached bool
	expiry   *time.Timer
}

func newStream(owner string, buffer int) *Stream {
	if buffer <= 0 {
		buffer = 1
	}
	return &Stream{
		Owner:  owner,
		frames: make(chan Frame, buffer),
		closed: make(chan struct{}),
	}
}

// push queues f without blocking. It reports false when the buffer is full.
func (s *Stream) push(f Frame) bool {
	select {
	case <-s.closed:
		return true
	default:
	}

	select {
	case s.frames <- f:
		return true
	default:
		return false
	}
}

func (s *Stream) close() {
	s.once.Do(func() { close(s.closed) })
}
