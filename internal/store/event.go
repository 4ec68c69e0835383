package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"event-calendar-api/internal/model"
)

const eventCols = `id, title, description, date, start_time, end_time,
	        category_id, location, color, is_all_day, created_at, updated_at`

func (s *Postgres) CreateEvent(ctx context.Context, e *model.Event) error {
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now

	_, err := s.pool.Exec(ctx,
		`INSERT INTO events (id,title,description,date,start_time,end_time,category_id,location,color,is_all_day,created_at,updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		e.ID, e.Title, e.Description, e.Date, e.StartTime, e.EndTime,
		e.CategoryID, e.Location, e.Color, e.IsAllDay, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (s *Postgres) GetEvent(ctx context.Context, id string) (*model.Event, error) {
	e := &model.Event{}
	err := s.pool.QueryRow(ctx,
		`SELECT `+eventCols+` FROM events WHERE id = $1`, id,
	).Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.StartTime, &e.EndTime,
		&e.CategoryID, &e.Location, &e.Color, &e.IsAllDay, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

// ListEvents applies the filter predicates, orders by date then start
// time (insertion order breaks ties), and returns one page plus the
// total count of the filtered set.
func (s *Postgres) ListEvents(ctx context.Context, f model.EventFilter) ([]model.Event, int, error) {
	where := ` WHERE 1=1`
	args := []any{}

	if f.CategoryID != "" {
		args = append(args, f.CategoryID)
		where += fmt.Sprintf(` AND category_id = $%d`, len(args))
	}
	if f.StartDate != nil {
		args = append(args, *f.StartDate)
		where += fmt.Sprintf(` AND date >= $%d`, len(args))
	}
	if f.EndDate != nil {
		args = append(args, *f.EndDate)
		where += fmt.Sprintf(` AND date <= $%d`, len(args))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		where += fmt.Sprintf(` AND (title ILIKE $%d OR description ILIKE $%d)`, len(args), len(args))
	}

	var total int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM events`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count events: %w", err)
	}

	page, limit := f.Page, f.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	args = append(args, limit, (page-1)*limit)
	q := `SELECT ` + eventCols + ` FROM events` + where +
		fmt.Sprintf(` ORDER BY date, start_time, created_at, id LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var out []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.StartTime, &e.EndTime,
			&e.CategoryID, &e.Location, &e.Color, &e.IsAllDay, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, e)
	}
	return out, total, rows.Err()
}

func (s *Postgres) UpdateEvent(ctx context.Context, e *model.Event) error {
	e.UpdatedAt = time.Now().UTC()
	tag, err := s.pool.Exec(ctx,
		`UPDATE events
		 SET title=$1, description=$2, date=$3, start_time=$4, end_time=$5,
		     category_id=$6, location=$7, color=$8, is_all_day=$9, updated_at=$10
		 WHERE id=$11`,
		e.Title, e.Description, e.Date, e.StartTime, e.EndTime,
		e.CategoryID, e.Location, e.Color, e.IsAllDay, e.UpdatedAt, e.ID,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Postgres) DeleteEvent(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
