package sqlite

import (
	"context"
	"database/sql"
	"errors"

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
		VALUES (?, ?, ?, ?, ?)
	`
	res, err := r.DB.ExecContext(ctx, query, e.Name, e.Type, toMillis(e.Date), e.CollegeID, e.Cancelled)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = id
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `
		SELECT id, name, type, date, college_id, cancelled
		FROM events
		WHERE id = ?
	`
	e := &domain.Event{}
	var date int64
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.Name, &e.Type, &date, &e.CollegeID, &e.Cancelled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	e.Date = fromMillis(date)
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
		WHERE college_id = ?
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
		var date int64
		if err := rows.Scan(&e.ID, &e.Name, &e.Type, &date, &e.CollegeID, &e.Cancelled); err != nil {
			return nil, err
		}
		e.Date = fromMillis(date)
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) SetCancelled(ctx context.Context, id int64, cancelled bool) (*domain.Event, error) {
	query := `UPDATE events SET cancelled = ? WHERE id = ?`
	res, err := r.DB.ExecContext(ctx, query, cancelled, id)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetByID(ctx, id)
}
