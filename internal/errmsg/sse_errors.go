package errmsg

import "net/http"

// Subscription streams answer every authorization failure with 404 so that
// foreign subscription ids cannot be probed.
var (
	SSENotAuthorized = NewStatusError(
		http.StatusNotFound,
		"not authorized",
	)
	SSEAlreadyStreaming = NewStatusError(
		http.StatusConflict,
		"subscription is already being streamed",
	)
	SSEDraining = NewStatusError(
		http.StatusServiceUnavailable,
		"service is draining - please reconnect to active instance",
	)
)

// SubscriptionInvalid carries the validation messages of a rejected query.
type SubscriptionInvalid struct {
	Message string   `json:"message" example:"invalid subscription"`
	Errors  []string `json:"errors"`
}

type _SSENotAuthorized struct {
	StatusCode int    `json:"statusCode" example:"404"`
	Message    string `json:"message" example:"not authorized"`
}

type _SSEAlreadyStreaming struct {
	StatusCode int    `json:"statusCode" example:"409"`
	Message    string `json:"message" example:"subscription is already being streamed"`
}
