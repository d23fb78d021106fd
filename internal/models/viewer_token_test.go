package models_test

import (
	"net/http"
	"testing"

	"agora/internal/env"
	"agora/internal/errmsg"
	"agora/internal/models"
	"agora/internal/testutil"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"
)

func TestViewerTokenRoundTrip(t *testing.T) {
	env.JWT_SECRET = []byte("round-trip")

	vt := models.ViewerToken{ID: "u1"}
	token := vt.GenToken()

	var parsed models.ViewerToken
	require.NoError(t, parsed.ParseToken(token))
	require.Equal(t, "u1", parsed.ID)
}

func TestViewerTokenRejectsForeignSecret(t *testing.T) {
	env.JWT_SECRET = []byte("first")
	vt := models.ViewerToken{ID: "u1"}
	token := vt.GenToken()

	env.JWT_SECRET = []byte("second")
	var parsed models.ViewerToken
	require.ErrorIs(t, parsed.ParseToken(token), models.ErrInvalidToken)
}

func newMiddlewareApp(users models.UserStore) *fiber.App {
	app := fiber.New()

	echo := func(c fiber.Ctx) error {
		v := models.ViewerFrom(c)
		u, _ := models.UserFrom(c)
		return c.JSON(fiber.Map{"viewer": v.ID, "username": u.Username})
	}

	app.Get("/header", models.ViewerMiddleware(users), echo)
	app.Get("/stream", models.ViewerStreamMiddleware(users), echo)

	return app
}

func TestViewerMiddleware(t *testing.T) {
	users := testutil.NewMemUsers(testutil.NewUser("u1"))
	app := newMiddlewareApp(users)

	body, status := testutil.RequestRunner(t, app, "GET", "/header", nil, nil)
	testutil.ResponseErrorCheck(t, errmsg.ViewerNoToken, body, status)

	bogus := "not-a-token"
	body, status = testutil.RequestRunner(t, app, "GET", "/header", nil, &bogus)
	testutil.ResponseErrorCheck(t, errmsg.ViewerInvalidToken, body, status)

	body, status = testutil.RequestRunner(t, app, "GET", "/header", nil, testutil.Token(t, "ghost"))
	testutil.ResponseErrorCheck(t, errmsg.ViewerInvalidToken, body, status)

	body, status = testutil.RequestRunner(t, app, "GET", "/header", nil, testutil.Token(t, "u1"))
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{"viewer":"u1","username":"u1"}`, string(body))
}

func TestViewerStreamMiddlewareAcceptsQueryToken(t *testing.T) {
	users := testutil.NewMemUsers(testutil.NewUser("u1"))
	app := newMiddlewareApp(users)
	token := *testutil.Token(t, "u1")

	body, status := testutil.RequestRunner(t, app, "GET", "/header?authorization="+token, nil, nil)
	testutil.ResponseErrorCheck(t, errmsg.ViewerNoToken, body, status)

	_, status = testutil.RequestRunner(t, app, "GET", "/stream?authorization="+token, nil, nil)
	require.Equal(t, http.StatusOK, status)
}
