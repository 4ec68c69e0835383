package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"event-calendar-api/internal/model"
	"event-calendar-api/internal/store"
	"event-calendar-api/internal/validate"
)

// Notifier receives entity mutations for the realtime channel. Delivery
// is fire-and-forget; a nil Notifier disables broadcasting.
type Notifier interface {
	Broadcast(event string, data any)
}

type Handler struct {
	store    store.Store
	notifier Notifier
	dev      bool
}

func New(st store.Store, n Notifier, dev bool) *Handler {
	return &Handler{store: st, notifier: n, dev: dev}
}

func (h *Handler) notify(event string, data any) {
	if h.notifier != nil {
		h.notifier.Broadcast(event, data)
	}
}

func ok(c *fiber.Ctx, data any, msg string) error {
	return c.JSON(model.Response{Success: true, Data: data, Message: msg})
}

func created(c *fiber.Ctx, data any, msg string) error {
	return c.Status(fiber.StatusCreated).JSON(model.Response{Success: true, Data: data, Message: msg})
}

func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(model.Response{Success: false, Error: msg})
}

// validationFailed carries the per-field messages in data, the one case
// where a failure response still sets it.
func validationFailed(c *fiber.Ctx, errs []validate.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(model.Response{
		Success: false,
		Error:   "Validation failed",
		Data:    errs,
	})
}

// internal logs the cause and redacts it outside development mode.
func (h *Handler) internal(c *fiber.Ctx, msg string, err error) error {
	slog.Error(msg, "path", c.Path(), "error", err)
	if h.dev {
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	return fail(c, fiber.StatusInternalServerError, msg)
}
