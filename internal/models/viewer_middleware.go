package models

import (
	"context"
	"strings"

	"agora/internal/access"
	"agora/internal/errmsg"
	"agora/internal/utils"

	"github.com/gofiber/fiber/v3"
)

const (
	viewerLocal = "viewer"
	userLocal   = "user"
)

// ViewerMiddleware authenticates the bearer token in the Authorization header
// and loads the viewer it names.
func ViewerMiddleware(users UserStore) fiber.Handler {
	return viewerMiddleware(users, false)
}

// ViewerStreamMiddleware also accepts the token from the ?authorization=
// query parameter, since EventSource and browser WebSocket clients cannot
// set headers.
func ViewerStreamMiddleware(users UserStore) fiber.Handler {
	return viewerMiddleware(users, true)
}

func viewerMiddleware(users UserStore, allowQuery bool) fiber.Handler {
	return func(c fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" && allowQuery {
			token = strings.TrimSpace(c.Query("authorization"))
		}
		if token == "" {
			return utils.StatusError(c, errmsg.ViewerNoToken)
		}

		var claims ViewerToken
		if err := claims.ParseToken(token); err != nil {
			return utils.StatusError(c, errmsg.ViewerInvalidToken)
		}

		user, err := users.ByID(context.Background(), claims.ID)
		if err != nil {
			return utils.StatusError(c, errmsg.ViewerInvalidToken)
		}

		utils.SetLocal(c, userLocal, user)
		utils.SetLocal(c, viewerLocal, user.Viewer())

		return c.Next()
	}
}

func bearerToken(c fiber.Ctx) string {
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	if !strings.HasPrefix(authHeader, "Bearer") {
		return ""
	}

	tokens := strings.Fields(authHeader)
	if len(tokens) != 2 {
		return ""
	}
	return tokens[1]
}

// ViewerFrom returns the authenticated viewer, or nil.
func ViewerFrom(c fiber.Ctx) *access.Viewer {
	v, _ := utils.GetLocal[*access.Viewer](c, viewerLocal)
	return v
}

// UserFrom returns the authenticated user document.
func UserFrom(c fiber.Ctx) (User, bool) {
	return utils.GetLocal[User](c, userLocal)
}
