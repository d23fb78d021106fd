package workteams

import (
	"agora/internal/events"
	"agora/internal/models"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Teams models.WorkTeamStore
	Users models.UserStore
	Bus   *events.Bus
}

func Routes(app fiber.Router, h *Handlers) {
	workteams := app.Group("/workteams", models.ViewerMiddleware(h.Users))

	workteams.Post("/", h.createHandler)
	workteams.Get("/:id", h.getHandler)
	workteams.Patch("/:id", h.patchHandler)
	workteams.Post("/:id/join", h.joinHandler)
	workteams.Post("/:id/leave", h.leaveHandler)
	workteams.Post("/:id/notify", h.notifyHandler)
}
