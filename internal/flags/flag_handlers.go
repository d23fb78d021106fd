package flags

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"agora/internal/access"
	"agora/internal/errmsg"
	"agora/internal/events"
	"agora/internal/models"
	"agora/internal/utils"

	"github.com/gofiber/fiber/v3"
)

type createRequest struct {
	StatementID string `json:"statementId" validate:"required"`
	Content     string `json:"content" validate:"required,max=1000"`
}

// createHandler flags a statement for moderation.
// @Summary Flag statement
// @Tags Flags
// @Security ViewerAuth
// @Accept json
// @Produce json
// @Param payload body createRequest true "Flag"
// @Success 201 {object} models.Flag
// @Failure 400 {object} errmsg._InvalidPayload
// @Failure 403 {object} errmsg._AccessDenied
// @Router /agora/flags [post]
func (h *Handlers) createHandler(c fiber.Ctx) error {
	var body createRequest
	if serr := utils.Bind(c, &body); serr != errmsg.EmptyStatusError {
		return utils.StatusError(c, serr)
	}

	viewer := models.ViewerFrom(c)
	request := access.FlagData{StatementID: body.StatementID, Content: strings.TrimSpace(body.Content)}
	if !access.CanMutate(viewer, request, access.Flag) {
		return utils.StatusError(c, errmsg.AccessDenied)
	}

	ctx := context.Background()

	flag := models.Flag{
		StatementID: request.StatementID,
		FlaggerID:   viewer.ID,
		Content:     request.Content,
	}
	if err := h.Flags.Insert(ctx, &flag); err != nil {
		return utils.StatusError(c, errmsg.InternalServerError(err))
	}

	h.Bus.Publish(ctx, events.FlagCreated, events.Event{
		ActorID:   viewer.ID,
		SubjectID: flag.ID,
		Payload:   map[string]any{"statementId": flag.StatementID},
	})

	return c.Status(http.StatusCreated).JSON(flag)
}

// solveHandler closes a flag.
// @Summary Solve flag
// @Tags Flags
// @Security ViewerAuth
// @Produce json
// @Param id path string true "Flag identifier"
// @Success 200 {object} models.Flag
// @Failure 403 {object} errmsg._AccessDenied
// @Failure 404 {object} errmsg._FlagNotFound
// @Failure 409 {object} errmsg._FlagAlreadySolved
// @Router /agora/flags/{id}/solve [post]
func (h *Handlers) solveHandler(c fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	viewer := models.ViewerFrom(c)

	// no content: a solve needs moderation rights
	if !access.CanMutate(viewer, access.FlagData{ID: id}, access.Flag) {
		return utils.StatusError(c, errmsg.AccessDenied)
	}

	ctx := context.Background()

	flag, err := h.Flags.Solve(ctx, id, viewer.ID)
	switch {
	case errors.Is(err, models.ErrNotFound):
		return utils.StatusError(c, errmsg.FlagNotFound)
	case errors.Is(err, models.ErrFlagSolved):
		return utils.StatusError(c, errmsg.FlagAlreadySolved)
	case err != nil:
		return utils.StatusError(c, errmsg.InternalServerError(err))
	}

	h.Bus.Publish(ctx, events.FlagSolved, events.Event{
		ActorID:   viewer.ID,
		SubjectID: flag.ID,
		Payload:   map[string]any{"statementId": flag.StatementID},
	})

	return c.JSON(flag)
}

type listResponse struct {
	Flags []models.Flag `json:"flags"`
}

// listHandler returns flags, optionally filtered by state.
// @Summary List flags
// @Tags Flags
// @Security ViewerAuth
// @Produce json
// @Param solved query bool false "Only solved (true) or open (false) flags"
// @Success 200 {object} listResponse
// @Failure 403 {object} errmsg._AccessDenied
// @Router /agora/flags [get]
func (h *Handlers) listHandler(c fiber.Ctx) error {
	if !access.CanSee(models.ViewerFrom(c), access.FlagData{}, access.Flag) {
		return utils.StatusError(c, errmsg.AccessDenied)
	}

	var solved *bool
	if raw := c.Query("solved"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return utils.StatusError(c, errmsg.InvalidField("solved", "boolean"))
		}
		solved = &v
	}

	flags, err := h.Flags.List(context.Background(), solved)
	if err != nil {
		return utils.StatusError(c, errmsg.InternalServerError(err))
	}

	return c.JSON(listResponse{Flags: flags})
}
