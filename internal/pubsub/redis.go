package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/go-redis/redis/v8"
)

// DefaultPrefix namespaces hub channels on a shared Redis.
const DefaultPrefix = "agora:hub:"

// Redis fans published messages out through Redis channels so that every
// process sharing the server sees every trigger. Registrations themselves
// stay in a process-local registry.
type Redis struct {
	client *redis.Client
	prefix string
	local  *Local
	logger *log.Logger

	sub    *redis.PubSub
	wg     sync.WaitGroup
	closed sync.Once
}

// NewRedis subscribes to every channel under prefix and starts dispatching.
func NewRedis(ctx context.Context, client *redis.Client, prefix string, logger *log.Logger) (*Redis, error) {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	sub := client.PSubscribe(ctx, prefix+"*")
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("subscribe to %s*: %w", prefix, err)
	}

	r := &Redis{
		client: client,
		prefix: prefix,
		local:  NewLocal(),
		logger: logger,
		sub:    sub,
	}

	r.wg.Add(1)
	go r.loop(sub.Channel())

	return r, nil
}

func (r *Redis) loop(ch <-chan *redis.Message) {
	defer r.wg.Done()

	for m := range ch {
		trigger := strings.TrimPrefix(m.Channel, r.prefix)

		var msg Message
		if err := json.Unmarshal([]byte(m.Payload), &msg); err != nil {
			r.logger.Warn("dropping undecodable hub message", "trigger", trigger, "err", err)
			continue
		}

		_ = r.local.Publish(context.Background(), trigger, msg)
	}
}

func (r *Redis) Publish(ctx context.Context, trigger string, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode %s message: %w", trigger, err)
	}

	if err := r.client.Publish(ctx, r.prefix+trigger, payload).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", trigger, err)
	}

	return nil
}

func (r *Redis) Subscribe(trigger string, h Handler, scope string) (int, error) {
	return r.local.Subscribe(trigger, h, scope)
}

func (r *Redis) Unsubscribe(id int) {
	r.local.Unsubscribe(id)
}

// Close stops the dispatch loop. The Redis client is left open.
func (r *Redis) Close() error {
	var err error
	r.closed.Do(func() {
		err = r.sub.Close()
		r.wg.Wait()
	})
	return err
}
