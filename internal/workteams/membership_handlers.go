package workteams

import (
	"context"
	"strings"

	"agora/internal/access"
	"agora/internal/errmsg"
	"agora/internal/events"
	"agora/internal/models"
	"agora/internal/utils"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// joinHandler adds the viewer to a work team.
// @Summary Join work team
// @Tags Work Teams
// @Security ViewerAuth
// @Produce json
// @Param id path string true "Work team identifier"
// @Success 200 {object} models.WorkTeam
// @Failure 403 {object} errmsg._AccessDenied
// @Failure 404 {object} errmsg._WorkTeamNotFound
// @Router /agora/workteams/{id}/join [post]
func (h *Handlers) joinHandler(c fiber.Ctx) error {
	return h.setMembership(c, true)
}

// leaveHandler removes the viewer from a work team.
// @Summary Leave work team
// @Tags Work Teams
// @Security ViewerAuth
// @Produce json
// @Param id path string true "Work team identifier"
// @Success 200 {object} models.WorkTeam
// @Failure 403 {object} errmsg._AccessDenied
// @Failure 404 {object} errmsg._WorkTeamNotFound
// @Router /agora/workteams/{id}/leave [post]
func (h *Handlers) leaveHandler(c fiber.Ctx) error {
	return h.setMembership(c, false)
}

func (h *Handlers) setMembership(c fiber.Ctx, member bool) error {
	id := strings.TrimSpace(c.Params("id"))
	viewer := models.ViewerFrom(c)

	if !access.CanSee(viewer, access.WorkTeamData{ID: id}, access.WorkTeam) {
		return utils.StatusError(c, errmsg.AccessDenied)
	}

	ctx := context.Background()

	if err := h.Teams.SetMember(ctx, id, viewer.ID, member); err != nil {
		return h.lookupError(c, err)
	}
	if err := h.Users.SetWorkTeam(ctx, viewer.ID, id, member); err != nil {
		return utils.StatusError(c, errmsg.InternalServerError(err))
	}

	wt, err := h.Teams.ByID(ctx, id)
	if err != nil {
		return h.lookupError(c, err)
	}

	name := events.WorkTeamLeft
	if member {
		name = events.WorkTeamJoined
	}
	h.Bus.Publish(ctx, name, events.Event{
		ActorID:   viewer.ID,
		SubjectID: viewer.ID,
		GroupID:   id,
	})

	return c.JSON(wt)
}

type notifyRequest struct {
	Message     string `json:"message" validate:"required,max=2000"`
	RecipientID string `json:"recipientId"`
}

type notifyResponse struct {
	ID string `json:"id"`
}

// notifyHandler sends a live notification to the members of a work team.
// @Summary Notify work team
// @Tags Work Teams
// @Security ViewerAuth
// @Accept json
// @Produce json
// @Param id path string true "Work team identifier"
// @Param payload body notifyRequest true "Notification"
// @Success 202 {object} notifyResponse
// @Failure 400 {object} errmsg._InvalidPayload
// @Failure 403 {object} errmsg._AccessDenied
// @Failure 404 {object} errmsg._WorkTeamNotFound
// @Router /agora/workteams/{id}/notify [post]
func (h *Handlers) notifyHandler(c fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))

	var body notifyRequest
	if serr := utils.Bind(c, &body); serr != errmsg.EmptyStatusError {
		return utils.StatusError(c, serr)
	}

	viewer := models.ViewerFrom(c)
	request := access.NotificationData{WorkTeamID: id, Message: body.Message}
	if !access.CanMutate(viewer, request, access.Notification) {
		return utils.StatusError(c, errmsg.AccessDenied)
	}

	ctx := context.Background()

	if _, err := h.Teams.ByID(ctx, id); err != nil {
		return h.lookupError(c, err)
	}

	notificationID := uuid.NewString()
	payload := map[string]any{"message": body.Message}
	if body.RecipientID != "" {
		payload["recipientId"] = body.RecipientID
	}

	h.Bus.Publish(ctx, events.NotificationCreated, events.Event{
		ActorID:   viewer.ID,
		SubjectID: notificationID,
		GroupID:   id,
		Payload:   payload,
	})

	return c.Status(fiber.StatusAccepted).JSON(notifyResponse{ID: notificationID})
}
