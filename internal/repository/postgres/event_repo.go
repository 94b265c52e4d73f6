package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/rajkumar2004725/Campus-Event-Management/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (name, type, date, college_id, cancelled)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, e.Name, e.Type, e.Date, e.CollegeID, e.Cancelled).Scan(&e.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `
		SELECT id, name, type, date, college_id, cancelled
		FROM events
		WHERE id = $1
	`
	e := &domain.Event{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.Name, &e.Type, &e.Date, &e.CollegeID, &e.Cancelled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context, collegeID *int64) ([]*domain.Event, error) {
	query := `
		SELECT id, name, type, date, college_id, cancelled
		FROM events
		ORDER BY id
	`
	args := []interface{}{}
	if collegeID != nil {
		query = `
		SELECT id, name, type, date, college_id, cancelled
		FROM events
		WHERE college_id = $1
		ORDER BY id
	`
		args = append(args, *collegeID)
	}
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e := &domain.Event{}
		if err := rows.Scan(&e.ID, &e.Name, &e.Type, &e.Date, &e.CollegeID, &e.Cancelled); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) SetCancelled(ctx context.Context, id int64, cancelled bool) (*domain.Event, error) {
	query := `
		UPDATE events SET cancelled = $2
		WHERE id = $1
		RETURNING id, name, type, date, college_id, cancelled
	`
	e := &domain.Event{}
	err := r.DB.QueryRowContext(ctx, query, id, cancelled).Scan(&e.ID, &e.Name, &e.Type, &e.Date, &e.CollegeID, &e.Cancelled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}
