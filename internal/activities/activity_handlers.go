package activities

import (
	"context"
	"net/http"
	"strconv"

	"agora/internal/access"
	"agora/internal/errmsg"
	"agora/internal/events"
	"agora/internal/models"
	"agora/internal/utils"

	"github.com/gofiber/fiber/v3"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

type createRequest struct {
	Type       string `json:"type" validate:"required,oneof=proposal statement discussion vote comment poll survey"`
	ObjectID   string `json:"objectId" validate:"required"`
	WorkTeamID string `json:"workTeamId"`
}

// createHandler records an activity and announces it to live subscribers.
// @Summary Record activity
// @Tags Activities
// @Security ViewerAuth
// @Accept json
// @Produce json
// @Param payload body createRequest true "Activity"
// @Success 201 {object} models.Activity
// @Failure 400 {object} errmsg._ActivityInvalidRequest
// @Failure 403 {object} errmsg._AccessDenied
// @Router /agora/activities [post]
func (h *Handlers) createHandler(c fiber.Ctx) error {
	var body createRequest
	if serr := utils.Bind(c, &body); serr != errmsg.EmptyStatusError {
		return utils.StatusError(c, errmsg.ActivityInvalidRequest)
	}

	viewer := models.ViewerFrom(c)
	request := access.ActivityData{Type: body.Type, ObjectID: body.ObjectID}
	if !access.CanMutate(viewer, request, access.Activity) {
		return utils.StatusError(c, errmsg.AccessDenied)
	}
	// scoped entries can only be posted from inside the team
	if body.WorkTeamID != "" && !viewer.InWorkTeam(body.WorkTeamID) && !viewer.Groups.Has(access.GroupSystem) {
		return utils.StatusError(c, errmsg.AccessDenied)
	}

	ctx := context.Background()

	activity := models.Activity{
		Type:       body.Type,
		ObjectID:   body.ObjectID,
		ActorID:    viewer.ID,
		WorkTeamID: body.WorkTeamID,
	}
	if err := h.Activities.Insert(ctx, &activity); err != nil {
		return utils.StatusError(c, errmsg.InternalServerError(err))
	}

	h.Bus.Publish(ctx, events.ActivityCreated, events.Event{
		ActorID:   viewer.ID,
		SubjectID: activity.ID,
		GroupID:   activity.WorkTeamID,
		Payload: map[string]any{
			"type":     activity.Type,
			"objectId": activity.ObjectID,
		},
	})

	return c.Status(http.StatusCreated).JSON(activity)
}

type listResponse struct {
	Activities []models.Activity `json:"activities"`
}

// listHandler returns the viewer's activity feed, newest first.
// @Summary List activities
// @Tags Activities
// @Security ViewerAuth
// @Produce json
// @Param limit query int false "Maximum number of entries"
// @Success 200 {object} listResponse
// @Failure 403 {object} errmsg._AccessDenied
// @Router /agora/activities [get]
func (h *Handlers) listHandler(c fiber.Ctx) error {
	viewer := models.ViewerFrom(c)
	if !access.CanSee(viewer, access.ActivityData{}, access.Activity) {
		return utils.StatusError(c, errmsg.AccessDenied)
	}

	limit, err := strconv.ParseInt(c.Query("limit", strconv.Itoa(defaultLimit)), 10, 64)
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)

	activities, err := h.Activities.List(context.Background(), models.ActivityFilter{
		WorkTeams: viewer.WorkTeams,
		Limit:     limit,
	})
	if err != nil {
		return utils.StatusError(c, errmsg.InternalServerError(err))
	}

	return c.JSON(listResponse{Activities: activities})
}
