package errmsg

import "net/http"

var (
	AccessDenied = NewStatusError(
		http.StatusForbidden,
		"access denied",
	)
	InvalidPayload = NewStatusError(
		http.StatusBadRequest,
		"invalid request payload",
	)
)

func InternalServerError(err error) StatusError {
	return NewStatusError(
		http.StatusInternalServerError,
		"internal server error: "+err.Error(),
	)
}

// InvalidField reports the first payload field that failed validation.
func InvalidField(field string, rule string) StatusError {
	return NewStatusError(
		http.StatusBadRequest,
		"invalid field "+field+": "+rule,
	)
}

type _AccessDenied struct {
	StatusCode int    `json:"statusCode" example:"403"`
	Message    string `json:"message" example:"access denied"`
}

type _InvalidPayload struct {
	StatusCode int    `json:"statusCode" example:"400"`
	Message    string `json:"message" example:"invalid request payload"`
}

type _InternalServerError struct {
	StatusCode int    `json:"statusCode" example:"500"`
	Message    string `json:"message" example:"internal server error: connection refused"`
}
