package viewers

import (
	"context"
	"errors"
	"strings"

	"agora/internal/access"
	"agora/internal/errmsg"
	"agora/internal/events"
	"agora/internal/models"
	"agora/internal/utils"

	"github.com/gofiber/fiber/v3"
	"golang.org/x/crypto/bcrypt"
)

// getHandler returns another viewer's profile.
// @Summary Get viewer
// @Tags Viewers
// @Security ViewerAuth
// @Produce json
// @Param id path string true "Viewer identifier"
// @Success 200 {object} models.User
// @Failure 403 {object} errmsg._AccessDenied
// @Failure 404 {object} errmsg._ViewerNotExists
// @Router /agora/viewers/{id} [get]
func (h *Handlers) getHandler(c fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	viewer := models.ViewerFrom(c)

	if !access.CanSee(viewer, access.UserData{ID: id}, access.User) {
		return utils.StatusError(c, errmsg.AccessDenied)
	}

	user, err := h.Users.ByID(context.Background(), id)
	if errors.Is(err, models.ErrNotFound) {
		return utils.StatusError(c, errmsg.ViewerNotExists)
	}
	if err != nil {
		return utils.StatusError(c, errmsg.InternalServerError(err))
	}

	return c.JSON(user)
}

type patchRequest struct {
	Name      *string  `json:"name" validate:"omitempty,max=64"`
	Surname   *string  `json:"surname" validate:"omitempty,max=64"`
	Email     *string  `json:"email" validate:"omitempty,email"`
	Password  *string  `json:"password" validate:"omitempty,min=6"`
	Thumbnail *string  `json:"thumbnail" validate:"omitempty,url"`
	Groups    []string `json:"groups"`
}

// patchHandler changes a viewer's profile or group memberships.
// @Summary Update viewer
// @Tags Viewers
// @Security ViewerAuth
// @Accept json
// @Produce json
// @Param id path string true "Viewer identifier"
// @Param payload body patchRequest true "Fields to change"
// @Success 200 {object} models.User
// @Failure 400 {object} errmsg._InvalidPayload
// @Failure 403 {object} errmsg._AccessDenied
// @Failure 404 {object} errmsg._ViewerNotExists
// @Router /agora/viewers/{id} [patch]
func (h *Handlers) patchHandler(c fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	viewer := models.ViewerFrom(c)

	var body patchRequest
	if serr := utils.Bind(c, &body); serr != errmsg.EmptyStatusError {
		return utils.StatusError(c, serr)
	}

	patch := models.UserPatch{
		Name:      body.Name,
		Surname:   body.Surname,
		Email:     body.Email,
		Thumbnail: body.Thumbnail,
	}

	if body.Groups != nil {
		var groups access.Groups
		for _, name := range body.Groups {
			g, ok := access.ParseGroup(strings.ToUpper(strings.TrimSpace(name)))
			if !ok {
				return utils.StatusError(c, errmsg.ViewerUnknownGroup)
			}
			groups = groups.With(g)
		}
		patch.Groups = &groups
	}

	request := access.UserData{
		ID:        id,
		Name:      body.Name,
		Surname:   body.Surname,
		Email:     body.Email,
		Password:  body.Password,
		Thumbnail: body.Thumbnail,
		Groups:    patch.Groups,
	}
	if !access.CanMutate(viewer, request, access.User) {
		return utils.StatusError(c, errmsg.AccessDenied)
	}

	if body.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*body.Password), bcrypt.DefaultCost)
		if err != nil {
			return utils.StatusError(c, errmsg.InternalServerError(err))
		}
		hashed := string(hash)
		patch.Password = &hashed
	}

	ctx := context.Background()

	var before models.User
	if patch.Groups != nil {
		var err error
		before, err = h.Users.ByID(ctx, id)
		if errors.Is(err, models.ErrNotFound) {
			return utils.StatusError(c, errmsg.ViewerNotExists)
		}
		if err != nil {
			return utils.StatusError(c, errmsg.InternalServerError(err))
		}
	}

	user, err := h.Users.Update(ctx, id, patch)
	if errors.Is(err, models.ErrNotFound) {
		return utils.StatusError(c, errmsg.ViewerNotExists)
	}
	if err != nil {
		return utils.StatusError(c, errmsg.InternalServerError(err))
	}

	payload := map[string]any{}
	if patch.Groups != nil {
		payload["groups"] = user.GroupNames()
		payload["added"], payload["removed"] = groupDiff(before, user)
	}
	h.Bus.Publish(ctx, events.UserUpdated, events.Event{
		ActorID:   viewer.ID,
		SubjectID: user.ID,
		Payload:   payload,
	})

	return c.JSON(user)
}

// groupDiff names the groups user gained and lost relative to before.
func groupDiff(before, user models.User) (added, removed []string) {
	was := access.FromBits[access.Group](before.Groups)
	now := access.FromBits[access.Group](user.Groups)

	added, removed = []string{}, []string{}
	for _, g := range now.Flags() {
		if !was.Has(g) {
			added = append(added, g.String())
		}
	}
	for _, g := range was.Flags() {
		if !now.Has(g) {
			removed = append(removed, g.String())
		}
	}
	return added, removed
}
