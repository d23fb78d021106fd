package viewers

import (
	"context"
	"errors"
	"strings"

	"agora/internal/errmsg"
	"agora/internal/events"
	"agora/internal/models"
	"agora/internal/utils"

	"github.com/gofiber/fiber/v3"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token  string      `json:"token"`
	Viewer models.User `json:"viewer"`
}

// loginHandler exchanges credentials for a bearer token.
// @Summary Viewer login
// @Tags Viewers Auth
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credentials"
// @Success 200 {object} loginResponse
// @Failure 400 {object} errmsg._ViewerInvalidPayload
// @Failure 401 {object} errmsg._ViewerWrongPassword
// @Failure 404 {object} errmsg._ViewerNotExists
// @Router /agora/viewers/login [post]
func (h *Handlers) loginHandler(c fiber.Ctx) error {
	var body loginRequest
	if serr := utils.Bind(c, &body); serr != errmsg.EmptyStatusError {
		return utils.StatusError(c, errmsg.ViewerInvalidPayload)
	}

	body.Username = strings.TrimSpace(body.Username)
	if body.Username == "" || strings.TrimSpace(body.Password) == "" {
		return utils.StatusError(c, errmsg.ViewerInvalidPayload)
	}

	ctx := context.Background()

	user, err := h.Users.ByUsername(ctx, body.Username)
	if errors.Is(err, models.ErrNotFound) {
		return utils.StatusError(c, errmsg.ViewerNotExists)
	}
	if err != nil {
		return utils.StatusError(c, errmsg.InternalServerError(err))
	}

	if bcrypt.CompareHashAndPassword(
		[]byte(user.Password),
		[]byte(body.Password),
	) != nil {
		return utils.StatusError(c, errmsg.ViewerWrongPassword)
	}

	vt := models.ViewerToken{ID: user.ID}
	token := vt.GenToken()

	h.Bus.Publish(ctx, events.ViewerLogin, events.Event{
		ActorID:   user.ID,
		SubjectID: user.ID,
	})

	return c.JSON(loginResponse{Token: token, Viewer: user})
}

// meHandler returns the authenticated viewer.
// @Summary Current viewer
// @Tags Viewers
// @Security ViewerAuth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} errmsg._ViewerNoToken
// @Router /agora/viewers/me [get]
func (h *Handlers) meHandler(c fiber.Ctx) error {
	user, ok := models.UserFrom(c)
	if !ok {
		return utils.StatusError(c, errmsg.ViewerNoToken)
	}

	return c.JSON(user)
}
