package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"event-calendar-api/internal/model"
	"event-calendar-api/internal/store"
	"event-calendar-api/internal/validate"
)

func (h *Handler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.store.ListCategories(c.Context())
	if err != nil {
		return h.internal(c, "Failed to fetch categories", err)
	}
	if categories == nil {
		categories = []model.Category{}
	}
	return ok(c, categories, "")
}

func (h *Handler) GetCategory(c *fiber.Ctx) error {
	cat, err := h.store.GetCategory(c.Context(), c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return fail(c, fiber.StatusNotFound, "Category not found")
	}
	if err != nil {
		return h.internal(c, "Failed to fetch category", err)
	}
	return ok(c, cat, "")
}

func (h *Handler) CreateCategory(c *fiber.Ctx) error {
	var in model.CreateCategoryInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := validate.CreateCategory(in); len(errs) > 0 {
		return validationFailed(c, errs)
	}

	cat := &model.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Color:       in.Color,
		Icon:        in.Icon,
		Description: in.Description,
	}

	if err := h.store.CreateCategory(c.Context(), cat); err != nil {
		if errors.Is(err, store.ErrDuplicateName) {
			return fail(c, fiber.StatusConflict, "Category name already exists")
		}
		return h.internal(c, "Failed to create category", err)
	}

	h.notify("category:created", cat)
	return created(c, cat, "Category created successfully")
}

func (h *Handler) UpdateCategory(c *fiber.Ctx) error {
	cat, err := h.store.GetCategory(c.Context(), c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return fail(c, fiber.StatusNotFound, "Category not found")
	}
	if err != nil {
		return h.internal(c, "Failed to fetch category", err)
	}

	var in model.UpdateCategoryInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := validate.UpdateCategory(in); len(errs) > 0 {
		return validationFailed(c, errs)
	}

	if in.Name != nil {
		cat.Name = *in.Name
	}
	if in.Color != nil {
		cat.Color = *in.Color
	}
	if in.Icon != nil {
		cat.Icon = *in.Icon
	}
	if in.Description != nil {
		cat.Description = *in.Description
	}

	if err := h.store.UpdateCategory(c.Context(), cat); err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateName):
			return fail(c, fiber.StatusConflict, "Category name already exists")
		case errors.Is(err, store.ErrNotFound):
			return fail(c, fiber.StatusNotFound, "Category not found")
		}
		return h.internal(c, "Failed to update category", err)
	}

	h.notify("category:updated", cat)
	return ok(c, cat, "Category updated successfully")
}

func (h *Handler) DeleteCategory(c *fiber.Ctx) error {
	cat, err := h.store.GetCategory(c.Context(), c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return fail(c, fiber.StatusNotFound, "Category not found")
	}
	if err != nil {
		return h.internal(c, "Failed to fetch category", err)
	}

	// seeded categories stay; events referencing a deleted category keep
	// their categoryId (no cascade).
	if cat.IsDefault {
		return fail(c, fiber.StatusBadRequest, "Cannot delete default category")
	}

	if err := h.store.DeleteCategory(c.Context(), cat.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fail(c, fiber.StatusNotFound, "Category not found")
		}
		return h.internal(c, "Failed to delete category", err)
	}

	h.notify("category:deleted", cat)
	return ok(c, nil, "Category deleted successfully")
}
