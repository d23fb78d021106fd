package sse

import (
	"bufio"
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"agora/internal/access"
	"agora/internal/env"
	"agora/internal/errmsg"
	"agora/internal/models"
	"agora/internal/subscriptions"
	"agora/internal/utils"

	"github.com/gofiber/fiber/v3"
)

type SubscribeRequest struct {
	Query         string                 `json:"query" validate:"required"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

type subscribeResponse struct {
	SubID int `json:"subId"`
}

func Routes(app fiber.Router, s *Server, users models.UserStore) {
	sse := app.Group("/sse", models.ViewerStreamMiddleware(users))

	sse.Post("/", s.subscribeHandler)
	sse.Get("/:id", s.streamHandler)
	sse.Delete("/:id", s.unsubscribeHandler)
}

// subscribeHandler registers a live subscription.
// @Summary Register subscription
// @Description Compiles a GraphQL subscription and returns the id to stream it from.
// @Tags Live
// @Security ViewerAuth
// @Accept json
// @Produce json
// @Param payload body SubscribeRequest true "Subscription"
// @Success 200 {object} subscribeResponse
// @Failure 400 {object} errmsg.SubscriptionInvalid
// @Failure 404 {object} errmsg._SSENotAuthorized
// @Router /agora/sse [post]
func (s *Server) subscribeHandler(c fiber.Ctx) error {
	viewer := models.ViewerFrom(c)
	if !access.CanAccess(viewer, access.ResourceSSE) {
		return utils.StatusError(c, errmsg.SSENotAuthorized)
	}

	var body SubscribeRequest
	if serr := utils.Bind(c, &body); serr != errmsg.EmptyStatusError {
		return utils.StatusError(c, serr)
	}

	id, err := s.Register(context.Background(), viewer, body)
	if err != nil {
		if verr, ok := IsValidation(err); ok {
			msgs := make([]string, 0, len(verr.Errors))
			for _, e := range verr.Errors {
				msgs = append(msgs, e.Message)
			}
			return c.Status(http.StatusBadRequest).JSON(errmsg.SubscriptionInvalid{
				Message: "invalid subscription",
				Errors:  msgs,
			})
		}
		if errors.Is(err, subscriptions.ErrForbidden) {
			return utils.StatusError(c, errmsg.SSENotAuthorized)
		}
		return utils.StatusError(c, errmsg.InternalServerError(err))
	}

	return c.JSON(subscribeResponse{SubID: id})
}

func subscriptionID(c fiber.Ctx) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	return id, err == nil && id > 0
}

// streamHandler streams a registered subscription as server-sent events.
// @Summary Stream subscription
// @Description Emits SUCCESS, then DATA and ERROR frames as events arrive, and KEEPALIVE frames in between.
// @Tags Live
// @Security ViewerAuth
// @Produce text/event-stream
// @Param id path int true "Subscription identifier"
// @Param authorization query string false "Bearer token for clients that cannot set headers"
// @Success 200 {string} string "event stream"
// @Failure 404 {object} errmsg._SSENotAuthorized
// @Failure 409 {object} errmsg._SSEAlreadyStreaming
// @Router /agora/sse/{id} [get]
func (s *Server) streamHandler(c fiber.Ctx) error {
	if env.DRAIN_MODE {
		return utils.StatusError(c, errmsg.SSEDraining)
	}

	id, ok := subscriptionID(c)
	if !ok {
		return utils.StatusError(c, errmsg.SSENotAuthorized)
	}

	st, serr := s.Attach(models.ViewerFrom(c), id)
	if serr != errmsg.EmptyStatusError {
		return utils.StatusError(c, serr)
	}

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	return c.SendStreamWriter(func(w *bufio.Writer) {
		s.Pump(context.Background(), st, eventStreamWriter{w: w})
	})
}

// unsubscribeHandler ends a subscription.
// @Summary Cancel subscription
// @Tags Live
// @Security ViewerAuth
// @Param id path int true "Subscription identifier"
// @Success 204
// @Failure 404 {object} errmsg._SSENotAuthorized
// @Router /agora/sse/{id} [delete]
func (s *Server) unsubscribeHandler(c fiber.Ctx) error {
	viewer := models.ViewerFrom(c)
	if !access.CanAccess(viewer, access.ResourceSSE) {
		return utils.StatusError(c, errmsg.SSENotAuthorized)
	}

	id, ok := subscriptionID(c)
	if !ok {
		return utils.StatusError(c, errmsg.SSENotAuthorized)
	}

	owner, ok := s.hub.Owner(id)
	if !ok || owner != viewer.ID {
		return utils.StatusError(c, errmsg.SSENotAuthorized)
	}

	s.Drop(id)

	return c.SendStatus(http.StatusNoContent)
}
