package workteams

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"agora/internal/access"
	"agora/internal/errmsg"
	"agora/internal/events"
	"agora/internal/models"
	"agora/internal/utils"

	"github.com/gofiber/fiber/v3"
)

type createRequest struct {
	Name          string `json:"name" validate:"required,max=128"`
	CoordinatorID string `json:"coordinatorId"`
}

// createHandler creates a work team.
// @Summary Create work team
// @Tags Work Teams
// @Security ViewerAuth
// @Accept json
// @Produce json
// @Param payload body createRequest true "Work team"
// @Success 201 {object} models.WorkTeam
// @Failure 400 {object} errmsg._WorkTeamInvalidRequest
// @Failure 403 {object} errmsg._AccessDenied
// @Router /agora/workteams [post]
func (h *Handlers) createHandler(c fiber.Ctx) error {
	var body createRequest
	if serr := utils.Bind(c, &body); serr != errmsg.EmptyStatusError {
		return utils.StatusError(c, errmsg.WorkTeamInvalidRequest)
	}
	body.Name = strings.TrimSpace(body.Name)

	viewer := models.ViewerFrom(c)
	request := access.WorkTeamData{Name: body.Name, CoordinatorID: body.CoordinatorID}
	if !access.CanMutate(viewer, request, access.WorkTeam) {
		return utils.StatusError(c, errmsg.AccessDenied)
	}

	ctx := context.Background()

	wt := models.WorkTeam{Name: body.Name, CoordinatorID: body.CoordinatorID}
	if err := h.Teams.Insert(ctx, &wt); err != nil {
		return utils.StatusError(c, errmsg.InternalServerError(err))
	}

	h.Bus.Publish(ctx, events.WorkTeamCreated, events.Event{
		ActorID:   viewer.ID,
		SubjectID: wt.ID,
		GroupID:   wt.ID,
		Payload:   map[string]any{"name": wt.Name},
	})

	return c.Status(http.StatusCreated).JSON(wt)
}

// getHandler returns a work team.
// @Summary Get work team
// @Tags Work Teams
// @Security ViewerAuth
// @Produce json
// @Param id path string true "Work team identifier"
// @Success 200 {object} models.WorkTeam
// @Failure 403 {object} errmsg._AccessDenied
// @Failure 404 {object} errmsg._WorkTeamNotFound
// @Router /agora/workteams/{id} [get]
func (h *Handlers) getHandler(c fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))

	if !access.CanSee(models.ViewerFrom(c), access.WorkTeamData{ID: id}, access.WorkTeam) {
		return utils.StatusError(c, errmsg.AccessDenied)
	}

	wt, err := h.Teams.ByID(context.Background(), id)
	if err != nil {
		return h.lookupError(c, err)
	}

	return c.JSON(wt)
}

type patchRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=128"`
	CoordinatorID *string `json:"coordinatorId"`
}

// patchHandler renames a work team or changes its coordinator.
// @Summary Update work team
// @Tags Work Teams
// @Security ViewerAuth
// @Accept json
// @Produce json
// @Param id path string true "Work team identifier"
// @Param payload body patchRequest true "Fields to change"
// @Success 200 {object} models.WorkTeam
// @Failure 400 {object} errmsg._WorkTeamInvalidRequest
// @Failure 403 {object} errmsg._AccessDenied
// @Failure 404 {object} errmsg._WorkTeamNotFound
// @Router /agora/workteams/{id} [patch]
func (h *Handlers) patchHandler(c fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))

	var body patchRequest
	if serr := utils.Bind(c, &body); serr != errmsg.EmptyStatusError {
		return utils.StatusError(c, errmsg.WorkTeamInvalidRequest)
	}
	if body.Name == nil && body.CoordinatorID == nil {
		return utils.StatusError(c, errmsg.WorkTeamInvalidRequest)
	}

	viewer := models.ViewerFrom(c)
	request := access.WorkTeamData{ID: id}
	if body.Name != nil {
		request.Name = *body.Name
	}
	if body.CoordinatorID != nil {
		request.CoordinatorID = *body.CoordinatorID
	}
	if !access.CanMutate(viewer, request, access.WorkTeam) {
		return utils.StatusError(c, errmsg.AccessDenied)
	}

	ctx := context.Background()

	wt, err := h.Teams.Update(ctx, id, models.WorkTeamPatch{
		Name:          body.Name,
		CoordinatorID: body.CoordinatorID,
	})
	if err != nil {
		return h.lookupError(c, err)
	}

	h.Bus.Publish(ctx, events.WorkTeamUpdated, events.Event{
		ActorID:   viewer.ID,
		SubjectID: wt.ID,
		GroupID:   wt.ID,
		Payload:   map[string]any{"name": wt.Name, "coordinatorId": wt.CoordinatorID},
	})

	return c.JSON(wt)
}

func (h *Handlers) lookupError(c fiber.Ctx, err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return utils.StatusError(c, errmsg.WorkTeamNotFound)
	}
	return utils.StatusError(c, errmsg.InternalServerError(err))
}
