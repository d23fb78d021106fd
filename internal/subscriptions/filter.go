package subscriptions

import (
	"context"

	"agora/internal/access"
	"agora/internal/pubsub"
)

// Context is the per-subscriber execution context.
type Context struct {
	Viewer *access.Viewer
}

// ResolveContextFunc refreshes a subscriber's context before each delivery,
// typically to reload work-team memberships.
type ResolveContextFunc func(ctx context.Context, c Context) (Context, error)

// Deliverable reports whether msg may reach the subscriber described by c.
// Events are never echoed to their actor. Events scoped to a work team only
// reach its members. Events without a work team reach everyone.
func Deliverable(c Context, msg pubsub.Message) bool {
	if c.Viewer == nil {
		return false
	}

	if msg.ActorID() == c.Viewer.ID {
		return false
	}

	if wt := msg.WorkTeamID(); wt != "" {
		return c.Viewer.InWorkTeam(wt)
	}

	return true
}

type ctxKey struct{}

// WithContext stores c on ctx for resolvers.
func WithContext(ctx context.Context, c Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// FromContext returns the subscriber context stored by WithContext.
func FromContext(ctx context.Context) (Context, bool) {
	c, ok := ctx.Value(ctxKey{}).(Context)
	return c, ok
}
