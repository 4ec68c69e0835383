package store

import (
	"context"
	"errors"

	"event-calendar-api/internal/model"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicateName = errors.New("duplicate name")
)

// Store owns all persisted state. Handlers never touch the database
// directly, so tests can substitute the in-memory implementation.
type Store interface {
	ListEvents(ctx context.Context, f model.EventFilter) ([]model.Event, int, error)
	GetEvent(ctx context.Context, id string) (*model.Event, error)
	CreateEvent(ctx context.Context, e *model.Event) error
	UpdateEvent(ctx context.Context, e *model.Event) error
	DeleteEvent(ctx context.Context, id string) error

	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategory(ctx context.Context, id string) (*model.Category, error)
	CreateCategory(ctx context.Context, c *model.Category) error
	UpdateCategory(ctx context.Context, c *model.Category) error
	DeleteCategory(ctx context.Context, id string) error
}

// DefaultCategories is the seed set; ids are stable slugs so events can
// reference them without a lookup.
var DefaultCategories = []model.Category{
	{ID: "work", Name: "Work", Color: "#3b82f6", Icon: "briefcase", Description: "Work-related events and meetings", IsDefault: true},
	{ID: "personal", Name: "Personal", Color: "#10b981", Icon: "user", Description: "Personal appointments and activities", IsDefault: true},
	{ID: "family", Name: "Family", Color: "#f59e0b", Icon: "users", Description: "Family events and gatherings", IsDefault: true},
	{ID: "health", Name: "Health", Color: "#ef4444", Icon: "heart", Description: "Health and fitness activities", IsDefault: true},
	{ID: "education", Name: "Education", Color: "#8b5cf6", Icon: "book", Description: "Learning and educational activities", IsDefault: true},
	{ID: "social", Name: "Social", Color: "#ec4899", Icon: "users", Description: "Social events and gatherings", IsDefault: true},
}

// SeedDefaults inserts the default categories, skipping any that exist.
func SeedDefaults(ctx context.Context, s Store) error {
	for _, c := range DefaultCategories {
		cat := c
		if existing, err := s.GetCategory(ctx, cat.ID); err == nil && existing != nil {
			continue
		} else if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
		if err := s.CreateCategory(ctx, &cat); err != nil && !errors.Is(err, ErrDuplicateName) {
			return err
		}
	}
	return nil
}
