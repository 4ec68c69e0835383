package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-calendar-api/internal/model"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func addEvent(t *testing.T, m *Memory, title, date, start, categoryID string) *model.Event {
	t.Helper()
	e := &model.Event{
		ID:         uuid.New().String(),
		Title:      title,
		Date:       day(date),
		StartTime:  start,
		CategoryID: categoryID,
	}
	require.NoError(t, m.CreateEvent(context.Background(), e))
	return e
}

func TestListEventsFiltering(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	addEvent(t, m, "Standup", "2025-03-01", "09:00", "work")
	addEvent(t, m, "Dentist", "2025-03-02", "11:00", "health")
	addEvent(t, m, "Review sprint notes", "2025-03-03", "14:00", "work")
	addEvent(t, m, "Dinner", "2025-03-10", "19:00", "family")

	t.Run("no filter returns everything in order", func(t *testing.T) {
		events, total, err := m.ListEvents(ctx, model.EventFilter{})
		require.NoError(t, err)
		assert.Equal(t, 4, total)
		require.Len(t, events, 4)
		assert.Equal(t, "Standup", events[0].Title)
		assert.Equal(t, "Dinner", events[3].Title)
	})

	t.Run("category filter", func(t *testing.T) {
		events, total, err := m.ListEvents(ctx, model.EventFilter{CategoryID: "work"})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		for _, e := range events {
			assert.Equal(t, "work", e.CategoryID)
		}
	})

	t.Run("unknown category is empty, not an error", func(t *testing.T) {
		events, total, err := m.ListEvents(ctx, model.EventFilter{CategoryID: "nope"})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, events)
	})

	t.Run("inclusive date range", func(t *testing.T) {
		start, end := day("2025-03-02"), day("2025-03-03")
		events, total, err := m.ListEvents(ctx, model.EventFilter{StartDate: &start, EndDate: &end})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Equal(t, "Dentist", events[0].Title)
		assert.Equal(t, "Review sprint notes", events[1].Title)
	})

	t.Run("lower bound only", func(t *testing.T) {
		start := day("2025-03-03")
		_, total, err := m.ListEvents(ctx, model.EventFilter{StartDate: &start})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
	})

	t.Run("inverted range is empty, not an error", func(t *testing.T) {
		start, end := day("2025-03-10"), day("2025-03-01")
		events, total, err := m.ListEvents(ctx, model.EventFilter{StartDate: &start, EndDate: &end})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, events)
	})

	t.Run("search matches title or description case-insensitively", func(t *testing.T) {
		e := addEvent(t, m, "Budget sync", "2025-03-05", "10:00", "work")
		e.Description = "quarterly SPRINT planning"
		require.NoError(t, m.UpdateEvent(ctx, e))

		events, total, err := m.ListEvents(ctx, model.EventFilter{Search: "sprint"})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, events, 2)
		assert.Equal(t, "Review sprint notes", events[0].Title)
		assert.Equal(t, "Budget sync", events[1].Title)
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		start := day("2025-03-02")
		_, total, err := m.ListEvents(ctx, model.EventFilter{CategoryID: "work", StartDate: &start, Search: "sprint"})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
	})
}

func TestListEventsSortAndStability(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	// same date and time; insertion order must hold
	first := addEvent(t, m, "first", "2025-06-01", "10:00", "work")
	second := addEvent(t, m, "second", "2025-06-01", "10:00", "work")
	addEvent(t, m, "earlier time", "2025-06-01", "08:00", "work")
	addEvent(t, m, "earlier date", "2025-05-20", "23:00", "work")

	events, _, err := m.ListEvents(ctx, model.EventFilter{})
	require.NoError(t, err)
	require.Len(t, events, 4)
	assert.Equal(t, "earlier date", events[0].Title)
	assert.Equal(t, "earlier time", events[1].Title)
	assert.Equal(t, first.ID, events[2].ID)
	assert.Equal(t, second.ID, events[3].ID)
}

func TestListEventsPagination(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	for i := 1; i <= 25; i++ {
		addEvent(t, m, fmt.Sprintf("event %02d", i), fmt.Sprintf("2025-03-%02d", i), "09:00", "work")
	}

	events, total, err := m.ListEvents(ctx, model.EventFilter{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 25, total)
	require.Len(t, events, 10)
	assert.Equal(t, "event 11", events[0].Title)
	assert.Equal(t, "event 20", events[9].Title)

	// last, partial page
	events, _, err = m.ListEvents(ctx, model.EventFilter{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, events, 5)

	// past the end
	events, total, err = m.ListEvents(ctx, model.EventFilter{Page: 4, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 25, total)
	assert.Empty(t, events)
}

func TestUpdateEventKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	e := addEvent(t, m, "before", "2025-03-01", "09:00", "work")
	createdAt := e.CreatedAt

	e.Title = "after"
	require.NoError(t, m.UpdateEvent(ctx, e))

	got, err := m.GetEvent(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Title)
	assert.Equal(t, createdAt, got.CreatedAt)
	assert.False(t, got.UpdatedAt.Before(createdAt))
}

func TestEventNotFound(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.GetEvent(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, m.UpdateEvent(ctx, &model.Event{ID: "missing"}), ErrNotFound)
	assert.ErrorIs(t, m.DeleteEvent(ctx, "missing"), ErrNotFound)
}

func TestCategoryUniqueness(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.CreateCategory(ctx, &model.Category{ID: "a", Name: "Work", Color: "#111111"}))
	err := m.CreateCategory(ctx, &model.Category{ID: "b", Name: "Work", Color: "#222222"})
	assert.ErrorIs(t, err, ErrDuplicateName)

	// names are case-sensitive
	require.NoError(t, m.CreateCategory(ctx, &model.Category{ID: "c", Name: "work", Color: "#333333"}))

	// renaming onto an existing name is rejected
	require.NoError(t, m.CreateCategory(ctx, &model.Category{ID: "d", Name: "Play", Color: "#444444"}))
	err = m.UpdateCategory(ctx, &model.Category{ID: "d", Name: "Work", Color: "#444444"})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestListCategoriesOrderedByName(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, SeedDefaults(ctx, m))

	cats, err := m.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, len(DefaultCategories))
	for i := 1; i < len(cats); i++ {
		assert.LessOrEqual(t, cats[i-1].Name, cats[i].Name)
	}

	// seeding again is a no-op
	require.NoError(t, SeedDefaults(ctx, m))
	cats, err = m.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, len(DefaultCategories))
}
