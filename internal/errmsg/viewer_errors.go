package errmsg

import "net/http"

var (
	ViewerNotExists = NewStatusError(
		http.StatusNotFound,
		"viewer does not exist",
	)
	ViewerNoToken = NewStatusError(
		http.StatusUnauthorized,
		"no token has been provided",
	)
	ViewerInvalidToken = NewStatusError(
		http.StatusUnauthorized,
		"unauthorized",
	)
	ViewerWrongPassword = NewStatusError(
		http.StatusUnauthorized,
		"username or password is incorrect",
	)
	ViewerInvalidPayload = NewStatusError(
		http.StatusBadRequest,
		"username and password must be provided",
	)
	ViewerUnknownGroup = NewStatusError(
		http.StatusBadRequest,
		"unknown group",
	)
)

type _ViewerNotExists struct {
	StatusCode int    `json:"statusCode" example:"404"`
	Message    string `json:"message" example:"viewer does not exist"`
}

type _ViewerNoToken struct {
	StatusCode int    `json:"statusCode" example:"401"`
	Message    string `json:"message" example:"no token has been provided"`
}

type _ViewerWrongPassword struct {
	StatusCode int    `json:"statusCode" example:"401"`
	Message    string `json:"message" example:"username or password is incorrect"`
}

type _ViewerInvalidPayload struct {
	StatusCode int    `json:"statusCode" example:"400"`
	Message    string `json:"message" example:"username and password must be provided"`
}

type _ViewerUnknownGroup struct {
	StatusCode int    `json:"statusCode" example:"400"`
	Message    string `json:"message" example:"unknown group"`
}
