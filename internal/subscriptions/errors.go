package subscriptions

import (
	"errors"
	"fmt"
	"strings"

	"github.com/graphql-go/graphql/gqlerrors"
)

var (
	ErrNoViewer = errors.New("subscriptions: subscriber has no viewer")
	ErrClosed   = errors.New("subscriptions: manager closed")

	// ErrForbidden is returned when the subscriber may not read the
	// subscribed field.
	ErrForbidden = errors.New("subscriptions: field not readable by subscriber")
)

// ValidationError is returned by Subscribe when a query cannot be parsed or
// does not validate against the schema.
type ValidationError struct {
	Errors []gqlerrors.FormattedError
}

func (e *ValidationError) Error() string {
	return "invalid subscription: " + joinMessages(e.Errors)
}

// ExecutionError reports a failed delivery of a single event. The
// subscription stays active.
type ExecutionError struct {
	SubscriptionID int
	Errors         []gqlerrors.FormattedError
	Err            error
}

func (e *ExecutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("subscription %d: %v", e.SubscriptionID, e.Err)
	}
	return fmt.Sprintf("subscription %d: %s", e.SubscriptionID, joinMessages(e.Errors))
}

func (e *ExecutionError) Unwrap() error { return e.Err }

func joinMessages(errs []gqlerrors.FormattedError) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Message)
	}
	return strings.Join(msgs, "; ")
}
