package errmsg

import "net/http"

var (
	WorkTeamNotFound = NewStatusError(
		http.StatusNotFound,
		"work team not found",
	)
	WorkTeamInvalidRequest = NewStatusError(
		http.StatusBadRequest,
		"invalid work team payload",
	)
	FlagNotFound = NewStatusError(
		http.StatusNotFound,
		"flag not found",
	)
	FlagAlreadySolved = NewStatusError(
		http.StatusConflict,
		"flag is already solved",
	)
	ActivityInvalidRequest = NewStatusError(
		http.StatusBadRequest,
		"invalid activity payload",
	)
)

type _WorkTeamNotFound struct {
	StatusCode int    `json:"statusCode" example:"404"`
	Message    string `json:"message" example:"work team not found"`
}

type _WorkTeamInvalidRequest struct {
	StatusCode int    `json:"statusCode" example:"400"`
	Message    string `json:"message" example:"invalid work team payload"`
}

type _FlagNotFound struct {
	StatusCode int    `json:"statusCode" example:"404"`
	Message    string `json:"message" example:"flag not found"`
}

type _FlagAlreadySolved struct {
	StatusCode int    `json:"statusCode" example:"409"`
	Message    string `json:"message" example:"flag is already solved"`
}

type _ActivityInvalidRequest struct {
	StatusCode int    `json:"statusCode" example:"400"`
	Message    string `json:"message" example:"invalid activity payload"`
}
