package subscriptions

import (
	"agora/internal/access"
	"agora/internal/graph"
)

// AccessGuard lets a viewer follow a field only when it may read the entity
// behind it.
func AccessGuard(field string, c Context) bool {
	switch field {
	case graph.FieldActivities:
		return access.CanSee(c.Viewer, access.ActivityData{}, access.Activity)
	case graph.FieldNotifications:
		return access.CanSee(c.Viewer, access.NotificationData{}, access.Notification)
	case graph.FieldFlags:
		return access.CanSee(c.Viewer, access.FlagData{}, access.Flag)
	}
	return false
}
