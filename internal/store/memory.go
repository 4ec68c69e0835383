package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"event-calendar-api/internal/model"
)

// Memory keeps both collections in slices so insertion order survives as
// the tie-break for equal sort keys. It backs tests and DB-less runs.
type Memory struct {
	mu         sync.Mutex
	events     []model.Event
	categories []model.Category
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) CreateEvent(_ context.Context, e *model.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	m.events = append(m.events, *e)
	return nil
}

func (m *Memory) GetEvent(_ context.Context, id string) (*model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.events {
		if m.events[i].ID == id {
			e := m.events[i]
			return &e, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) ListEvents(_ context.Context, f model.EventFilter) ([]model.Event, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	search := strings.ToLower(f.Search)
	var matched []model.Event
	for _, e := range m.events {
		if f.CategoryID != "" && e.CategoryID != f.CategoryID {
			continue
		}
		if f.StartDate != nil && e.Date.Before(*f.StartDate) {
			continue
		}
		if f.EndDate != nil && e.Date.After(*f.EndDate) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(e.Title), search) &&
			!strings.Contains(strings.ToLower(e.Description), search) {
			continue
		}
		matched = append(matched, e)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].Date.Equal(matched[j].Date) {
			return matched[i].Date.Before(matched[j].Date)
		}
		return matched[i].StartTime < matched[j].StartTime
	})

	total := len(matched)
	page, limit := f.Page, f.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	start := (page - 1) * limit
	if start >= total {
		return nil, total, nil
	}
	end := start + limit
	if end > total {
		end = total
	}
	out := make([]model.Event, end-start)
	copy(out, matched[start:end])
	return out, total, nil
}

func (m *Memory) UpdateEvent(_ context.Context, e *model.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.events {
		if m.events[i].ID == e.ID {
			e.CreatedAt = m.events[i].CreatedAt
			e.UpdatedAt = time.Now().UTC()
			m.events[i] = *e
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) DeleteEvent(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.events {
		if m.events[i].ID == id {
			m.events = append(m.events[:i], m.events[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) ListCategories(_ context.Context) ([]model.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]model.Category, len(m.categories))
	copy(out, m.categories)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *Memory) GetCategory(_ context.Context, id string) (*model.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.categories {
		if m.categories[i].ID == id {
			c := m.categories[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) CreateCategory(_ context.Context, c *model.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// name uniqueness is check-then-insert under the store lock
	for i := range m.categories {
		if m.categories[i].Name == c.Name {
			return ErrDuplicateName
		}
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	m.categories = append(m.categories, *c)
	return nil
}

func (m *Memory) UpdateCategory(_ context.Context, c *model.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.categories {
		if m.categories[i].Name == c.Name && m.categories[i].ID != c.ID {
			return ErrDuplicateName
		}
	}
	for i := range m.categories {
		if m.categories[i].ID == c.ID {
			c.CreatedAt = m.categories[i].CreatedAt
			c.UpdatedAt = time.Now().UTC()
			m.categories[i] = *c
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) DeleteCategory(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.categories {
		if m.categories[i].ID == id {
			m.categories = append(m.categories[:i], m.categories[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
