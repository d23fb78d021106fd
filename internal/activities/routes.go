package activities

import (
	"agora/internal/events"
	"agora/internal/models"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Activities models.ActivityStore
	Users      models.UserStore
	Bus        *events.Bus
}

func Routes(app fiber.Router, h *Handlers) {
	activities := app.Group("/activities", models.ViewerMiddleware(h.Users))

	activities.Post("/", h.createHandler)
	activities.Get("/", h.listHandler)
}
