package swagger

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"agora/internal/env"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"
)

func TestDocServesEmbeddedSpec(t *testing.T) {
	env.VERSION = "9.9.9"

	app := fiber.New()
	Register(app)

	res, err := app.Test(httptestRequest(t, "/agora/docs/doc.json"))
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var doc struct {
		BasePath string                    `json:"basePath"`
		Info     map[string]any            `json:"info"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(body, &doc))
	require.Equal(t, "/", doc.BasePath)
	require.Equal(t, "9.9.9", doc.Info["version"])
	require.Contains(t, doc.Paths, "/agora/sse")
	require.Contains(t, doc.Paths["/agora/sse/{id}"], "delete")
}

func TestUIPage(t *testing.T) {
	app := fiber.New()
	Register(app)

	res, err := app.Test(httptestRequest(t, "/agora/docs"))
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "/agora/docs/doc.json")
}

func TestApplyDocDefaultsKeepsInvalidInput(t *testing.T) {
	require.Equal(t, []byte("not json"), applyDocDefaults([]byte("not json")))
}

func httptestRequest(t *testing.T, path string) *http.Request {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	return req
}
