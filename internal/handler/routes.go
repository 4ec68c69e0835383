package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Register mounts the REST surface under /api/v1.
func (h *Handler) Register(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/health", health)

	events := api.Group("/events")
	events.Get("/", h.ListEvents)
	events.Get("/:id", h.GetEvent)
	events.Post("/", h.CreateEvent)
	events.Patch("/:id", h.UpdateEvent)
	events.Delete("/:id", h.DeleteEvent)

	categories := api.Group("/categories")
	categories.Get("/", h.ListCategories)
	categories.Get("/:id", h.GetCategory)
	categories.Post("/", h.CreateCategory)
	categories.Patch("/:id", h.UpdateCategory)
	categories.Delete("/:id", h.DeleteCategory)
}

func health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":   true,
		"message":   "API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
