package events

import (
	"context"
	"time"

	"agora/internal/models"

	"github.com/google/uuid"
)

// Record converts a domain event into an audit record and queues it.
func (e *Emitter) Record(evt Event) {
	if e == nil {
		return
	}

	e.Emit(models.Event{
		TimeStamp: evt.OccurredAt,
		Action:    evt.Name,
		ActorID:   evt.ActorID,
		TargetID:  evt.SubjectID,
		GroupID:   evt.GroupID,
		Props:     evt.Payload,
	})
}

// Emit queues evt. When the buffer is full the event is written directly.
func (e *Emitter) Emit(evt models.Event) {
	if e == nil {
		return
	}

	if evt.TimeStamp.IsZero() {
		evt.TimeStamp = time.Now().UTC()
	}
	if evt.Key == "" {
		evt.Key = uuid.NewString()
	}

	if queued, closed := e.enqueue(evt); queued || closed {
		return
	}

	ctx, cancel := context.WithTimeout(
		context.Background(),
		2*time.Second,
	)
	defer cancel()

	if err := e.w.InsertOne(ctx, evt); err != nil && e.logger != nil {
		e.logger.Error("audit insert failed", "action", evt.Action, "err", err)
	}
}

// enqueue never blocks. It reports whether evt went into the buffer and
// whether the emitter was already closed.
func (e *Emitter) enqueue(evt models.Event) (queued, closed bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	select {
	case <-e.closed:
		return false, true
	default:
	}

	select {
	case e.buf <- evt:
		return true, false
	default:
		return false, false
	}
}
