// Package testutil holds the request runners and in-memory stores shared by
// handler tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"agora/internal/env"
	"agora/internal/errmsg"
	"agora/internal/models"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"
)

const Secret = "test-secret"

// Token mints a bearer token for userID with the test secret.
func Token(t *testing.T, userID string) *string {
	t.Helper()

	env.JWT_SECRET = []byte(Secret)
	vt := models.ViewerToken{ID: userID}
	token := vt.GenToken()
	require.NotEmpty(t, token)

	return &token
}

func RequestRunner(
	t *testing.T,
	app *fiber.App,
	method string,
	path string,
	sendBytes []byte,
	token *string,
	config ...fiber.TestConfig,
) (bodyBytes []byte, statusCode int) {
	t.Helper()

	config = append(config, fiber.TestConfig{Timeout: 5 * time.Second})
	req, err := http.NewRequest(
		method,
		path,
		bytes.NewBuffer(sendBytes),
	)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	if token != nil {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", *token))
	}

	res, err := app.Test(req, config[0])
	require.NoError(t, err)
	defer res.Body.Close()

	statusCode = res.StatusCode

	bodyBytes, err = io.ReadAll(res.Body)
	require.NoError(t, err)

	return
}

// JSON marshals v for a request body.
func JSON(t *testing.T, v any) []byte {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func ResponseErrorCheck(
	t *testing.T,
	serr errmsg.StatusError,
	bodyBytes []byte,
	statusCode int,
) {
	t.Helper()

	require.Equal(t, serr.StatusCode, statusCode)

	var body struct {
		Message string `json:"message"`
	}
	err := json.Unmarshal(bodyBytes, &body)
	require.NoError(t, err)

	require.Equal(t, serr.Message, body.Message)
}
