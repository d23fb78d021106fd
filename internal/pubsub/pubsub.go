// Package pubsub carries hub triggers to registered subscription handlers,
// either inside one process or across processes through Redis.
package pubsub

import "context"

// Message is the payload of a trigger. It is used as the GraphQL root value
// when a subscription executes.
type Message map[string]any

func (m Message) str(key string) string {
	s, _ := m[key].(string)
	return s
}

func (m Message) ActorID() string { return m.str("actorId") }

func (m Message) WorkTeamID() string { return m.str("workTeamId") }

// RecipientID names the single viewer a message is addressed to, if any.
func (m Message) RecipientID() string { return m.str("recipientId") }

// Handler receives a message published under a subscribed trigger.
type Handler func(ctx context.Context, msg Message)

type PubSub interface {
	Publish(ctx context.Context, trigger string, msg Message) error
	// Subscribe registers h for trigger. Scope is the identity of the
	// subscriber and is matched against a message's recipient.
	Subscribe(trigger string, h Handler, scope string) (int, error)
	Unsubscribe(id int)
}
