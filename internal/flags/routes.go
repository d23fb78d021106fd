package flags

import (
	"agora/internal/events"
	"agora/internal/models"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Flags models.FlagStore
	Users models.UserStore
	Bus   *events.Bus
}

func Routes(app fiber.Router, h *Handlers) {
	flags := app.Group("/flags", models.ViewerMiddleware(h.Users))

	flags.Post("/", h.createHandler)
	flags.Get("/", h.listHandler)
	flags.Post("/:id/solve", h.solveHandler)
}
