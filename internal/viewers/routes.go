package viewers

import (
	"agora/internal/events"
	"agora/internal/models"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Users models.UserStore
	Bus   *events.Bus
}

func Routes(app fiber.Router, h *Handlers) {
	viewers := app.Group("/viewers")

	viewers.Get("/ping", func(c fiber.Ctx) error {
		return c.SendString("PONG")
	})

	viewers.Post("/login", h.loginHandler)

	authed := viewers.Use(models.ViewerMiddleware(h.Users))
	authed.Get("/me", h.meHandler)
	authed.Get("/:id", h.getHandler)
	authed.Patch("/:id", h.patchHandler)
}
