package events

import (
	"context"
	"sync"
	"time"

	"agora/internal/models"

	"github.com/charmbracelet/log"
	"go.mongodb.org/mongo-driver/mongo"
)

type Config struct {
	Buffer     int
	BatchSize  int
	FlushEvery time.Duration
}

var (
	defaultConfig = Config{
		Buffer:     1000,
		BatchSize:  50,
		FlushEvery: 2 * time.Second,
	}
	fastConfig = Config{
		Buffer:     1000,
		BatchSize:  50,
		FlushEvery: 50 * time.Millisecond,
	}
)

// Writer stores audit events.
type Writer interface {
	InsertOne(ctx context.Context, evt models.Event) error
	InsertMany(ctx context.Context, evts []models.Event) error
}

type mongoWriter struct {
	coll *mongo.Collection
}

func (w mongoWriter) InsertOne(ctx context.Context, evt models.Event) error {
	_, err := w.coll.InsertOne(ctx, evt)
	return err
}

func (w mongoWriter) InsertMany(ctx context.Context, evts []models.Event) error {
	docs := make([]interface{}, len(evts))
	for i, evt := range evts {
		docs[i] = evt
	}

	_, err := w.coll.InsertMany(ctx, docs)
	return err
}

// Emitter records domain events in the audit collection, batching writes on
// a background worker.
type Emitter struct {
	w      Writer
	buf    chan models.Event
	cfg    Config
	logger *log.Logger

	// mu keeps sends on buf and its close apart.
	mu        sync.RWMutex
	wg        sync.WaitGroup
	onceClose sync.Once
	closed    chan struct{}
}

func NewEmitter(coll *mongo.Collection, cfg Config, logger *log.Logger) *Emitter {
	return NewEmitterWithWriter(mongoWriter{coll: coll}, cfg, logger)
}

func NewEmitterWithWriter(w Writer, cfg Config, logger *log.Logger) *Emitter {
	e := &Emitter{
		w:      w,
		buf:    make(chan models.Event, cfg.Buffer),
		cfg:    cfg,
		logger: logger,
		closed: make(chan struct{}),
	}

	e.wg.Add(1)
	go e.worker()

	return e
}

// SelectConfig returns the batching profile for a deployment.
func SelectConfig(deployment string) Config {
	switch deployment {
	case "test":
		return fastConfig
	default:
		return defaultConfig
	}
}

// WithBatching overrides the batch size and flush interval when they are set.
func (c Config) WithBatching(size int, every time.Duration) Config {
	if size > 0 {
		c.BatchSize = size
	}
	if every > 0 {
		c.FlushEvery = every
	}
	return c
}

// Attach records every event published on bus under the given names.
func (e *Emitter) Attach(bus *Bus, names ...string) {
	for _, name := range names {
		bus.Subscribe(name, func(_ context.Context, evt Event) {
			e.Record(evt)
		})
	}
}

func (e *Emitter) Close() {
	e.onceClose.Do(func() {
		e.mu.Lock()
		close(e.closed)
		close(e.buf)
		e.mu.Unlock()

		e.wg.Wait()
	})
}

func (e *Emitter) worker() {
	defer e.wg.Done()

	batch := make([]models.Event, 0, e.cfg.BatchSize)
	timer := time.NewTimer(e.cfg.FlushEvery)

	defer timer.Stop()

	flush := func() {
		if len(batch) == 0 {
			timer.Reset(e.cfg.FlushEvery)
			return
		}

		ctx, cancel := context.WithTimeout(
			context.Background(),
			2*time.Second,
		)

		if err := e.w.InsertMany(ctx, batch); err != nil && e.logger != nil {
			e.logger.Error("audit batch insert failed", "events", len(batch), "err", err)
		}

		cancel()

		batch = batch[:0]
		timer.Reset(e.cfg.FlushEvery)
	}

	for {
		select {
		case evt, ok := <-e.buf:
			if !ok {
				flush()
				return
			}

			batch = append(batch, evt)

			if len(batch) >= e.cfg.BatchSize {
				flush()
			}
		case <-timer.C:
			flush()
		}
	}
}
