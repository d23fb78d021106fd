package subscriptions

import (
	"context"

	"agora/internal/events"
	"agora/internal/graph"
	"agora/internal/pubsub"
)

// Activity types that are pushed to live subscribers.
var relayedActivityTypes = map[string]bool{
	"proposal":   true,
	"statement":  true,
	"discussion": true,
	"vote":       true,
}

func (m *Manager) relay(ctx context.Context, trigger string, msg pubsub.Message) {
	if err := m.Publish(ctx, trigger, msg); err != nil {
		m.logger.Error("relay publish failed", "trigger", trigger, "err", err)
	}
}

// RelayActivities forwards created activities to the activities trigger.
func RelayActivities(bus *events.Bus, hub *Manager) {
	bus.Subscribe(events.ActivityCreated, func(ctx context.Context, evt events.Event) {
		typ, _ := evt.Payload["type"].(string)
		if !relayedActivityTypes[typ] {
			return
		}

		msg := pubsub.Message{
			"id":      evt.SubjectID,
			"actorId": evt.ActorID,
			"type":    typ,
		}
		if obj, ok := evt.Payload["objectId"].(string); ok {
			msg["objectId"] = obj
		}
		if evt.GroupID != "" {
			msg["workTeamId"] = evt.GroupID
		}

		hub.relay(ctx, graph.FieldActivities, msg)
	})
}

// RelayNotifications forwards work-team notifications. A notification with a
// recipient only reaches that viewer.
func RelayNotifications(bus *events.Bus, hub *Manager) {
	bus.Subscribe(events.NotificationCreated, func(ctx context.Context, evt events.Event) {
		msg := pubsub.Message{
			"id":      evt.SubjectID,
			"actorId": evt.ActorID,
		}
		if evt.GroupID != "" {
			msg["workTeamId"] = evt.GroupID
		}
		if text, ok := evt.Payload["message"].(string); ok {
			msg["message"] = text
		}
		if to, ok := evt.Payload["recipientId"].(string); ok && to != "" {
			msg["recipientId"] = to
		}

		hub.relay(ctx, graph.FieldNotifications, msg)
	})
}

// RelayFlags forwards flag creation and resolution.
func RelayFlags(bus *events.Bus, hub *Manager) {
	forward := func(ctx context.Context, evt events.Event) {
		msg := pubsub.Message{
			"id":      evt.SubjectID,
			"actorId": evt.ActorID,
			"solved":  evt.Name == events.FlagSolved,
		}
		if stmt, ok := evt.Payload["statementId"].(string); ok {
			msg["statementId"] = stmt
		}

		hub.relay(ctx, graph.FieldFlags, msg)
	}

	bus.Subscribe(events.FlagCreated, forward)
	bus.Subscribe(events.FlagSolved, forward)
}
