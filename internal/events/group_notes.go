package events

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

var groupAddedNotes = map[string]string{
	"VOTER":          "You can now vote and comment.",
	"MODERATOR":      "You are now a moderator and can review flagged statements.",
	"RELATOR":        "You can now create and publish proposals.",
	"MEMBER_MANAGER": "You are now a member manager and can grant access to other users.",
	"ADMIN":          "You are now an administrator.",
}

func groupNote(group string, added bool) string {
	if added {
		if extra, ok := groupAddedNotes[group]; ok {
			return fmt.Sprintf("You were added to the %s group. %s", group, extra)
		}
		return fmt.Sprintf("You were added to the %s group.", group)
	}
	return fmt.Sprintf("You are no longer in the %s group. Contact an administrator if this is unexpected.", group)
}

func stringList(v any) []string {
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// NotifyGroupChanges tells a user about every group they gained or lost. The
// notes are published as NotificationCreated events addressed to that user
// alone.
func NotifyGroupChanges(bus *Bus) {
	bus.Subscribe(UserUpdated, func(ctx context.Context, evt Event) {
		if evt.SubjectID == "" {
			return
		}

		send := func(group string, added bool) {
			bus.Publish(ctx, NotificationCreated, Event{
				ActorID:   evt.ActorID,
				SubjectID: uuid.NewString(),
				Payload: map[string]any{
					"message":     groupNote(group, added),
					"recipientId": evt.SubjectID,
				},
			})
		}

		for _, g := range stringList(evt.Payload["added"]) {
			send(g, true)
		}
		for _, g := range stringList(evt.Payload["removed"]) {
			send(g, false)
		}
	})
}
