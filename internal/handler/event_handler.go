package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"event-calendar-api/internal/model"
	"event-calendar-api/internal/store"
	"event-calendar-api/internal/validate"
)

func (h *Handler) ListEvents(c *fiber.Ctx) error {
	f := model.EventFilter{
		CategoryID: c.Query("categoryId"),
		Search:     c.Query("search"),
		Page:       1,
		Limit:      20,
	}

	if v := c.Query("startDate"); v != "" {
		t, err := validate.ParseDate(v)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "Invalid startDate format")
		}
		f.StartDate = &t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := validate.ParseDate(v)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "Invalid endDate format")
		}
		f.EndDate = &t
	}
	if n, err := strconv.Atoi(c.Query("page")); err == nil && n > 0 {
		f.Page = n
	}
	if n, err := strconv.Atoi(c.Query("limit")); err == nil && n > 0 {
		f.Limit = n
	}

	events, total, err := h.store.ListEvents(c.Context(), f)
	if err != nil {
		return h.internal(c, "Failed to fetch events", err)
	}
	if events == nil {
		events = []model.Event{}
	}

	totalPages := (total + f.Limit - 1) / f.Limit
	return c.JSON(model.Response{
		Success: true,
		Data:    events,
		Pagination: &model.Pagination{
			Page:       f.Page,
			Limit:      f.Limit,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}

func (h *Handler) GetEvent(c *fiber.Ctx) error {
	event, err := h.store.GetEvent(c.Context(), c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return fail(c, fiber.StatusNotFound, "Event not found")
	}
	if err != nil {
		return h.internal(c, "Failed to fetch event", err)
	}
	return ok(c, event, "")
}

func (h *Handler) CreateEvent(c *fiber.Ctx) error {
	var in model.CreateEventInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := validate.CreateEvent(in); len(errs) > 0 {
		return validationFailed(c, errs)
	}

	date, _ := validate.ParseDate(in.Date)
	event := &model.Event{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Date:        date,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		CategoryID:  in.CategoryID,
		Location:    in.Location,
		Color:       in.Color,
		IsAllDay:    in.IsAllDay,
	}

	if err := h.store.CreateEvent(c.Context(), event); err != nil {
		return h.internal(c, "Failed to create event", err)
	}

	h.notify("event:created", event)
	return created(c, event, "Event created successfully")
}

func (h *Handler) UpdateEvent(c *fiber.Ctx) error {
	event, err := h.store.GetEvent(c.Context(), c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return fail(c, fiber.StatusNotFound, "Event not found")
	}
	if err != nil {
		return h.internal(c, "Failed to fetch event", err)
	}

	var in model.UpdateEventInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := validate.UpdateEvent(in); len(errs) > 0 {
		return validationFailed(c, errs)
	}

	if in.Title != nil {
		event.Title = *in.Title
	}
	if in.Description != nil {
		event.Description = *in.Description
	}
	if in.Date != nil {
		event.Date, _ = validate.ParseDate(*in.Date)
	}
	if in.StartTime != nil {
		event.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		event.EndTime = *in.EndTime
	}
	if in.CategoryID != nil {
		event.CategoryID = *in.CategoryID
	}
	if in.Location != nil {
		event.Location = *in.Location
	}
	if in.Color != nil {
		event.Color = *in.Color
	}
	if in.IsAllDay != nil {
		event.IsAllDay = *in.IsAllDay
	}

	if err := h.store.UpdateEvent(c.Context(), event); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fail(c, fiber.StatusNotFound, "Event not found")
		}
		return h.internal(c, "Failed to update event", err)
	}

	h.notify("event:updated", event)
	return ok(c, event, "Event updated successfully")
}

func (h *Handler) DeleteEvent(c *fiber.Ctx) error {
	event, err := h.store.GetEvent(c.Context(), c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return fail(c, fiber.StatusNotFound, "Event not found")
	}
	if err != nil {
		return h.internal(c, "Failed to fetch event", err)
	}

	if err := h.store.DeleteEvent(c.Context(), event.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fail(c, fiber.StatusNotFound, "Event not found")
		}
		return h.internal(c, "Failed to delete event", err)
	}

	h.notify("event:deleted", event)
	return ok(c, nil, "Event deleted successfully")
}
