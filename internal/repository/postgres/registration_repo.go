package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"github.com/rajkumar2004725/Campus-Event-Management/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

// Create inserts the registration. The unique index over (student_id,
// event_id) is the sole duplicate guard, so two concurrent inserts for the
// same pair cannot both succeed.
func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `
		INSERT INTO registrations (student_id, event_id, registered_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, reg.StudentID, reg.EventID, reg.RegisteredAt).Scan(&reg.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23505":
				return domain.ErrDuplicateRegistration
			case "23503":
				return domain.ErrNotFound
			}
		}
		return err
	}
	return nil
}

func (r *registrationRepository) GetByID(ctx context.Context, id int64) (*domain.Registration, error) {
	query := `
		SELECT id, student_id, event_id, registered_at, attended, attended_at, feedback_rating
		FROM registrations
		WHERE id = $1
	`
	reg := &domain.Registration{}
	var attendedAt sql.NullTime
	var rating sql.NullInt64
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&reg.ID, &reg.StudentID, &reg.EventID, &reg.RegisteredAt, &reg.Attended,
		&attendedAt, &rating,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if attendedAt.Valid {
		reg.AttendedAt = &attendedAt.Time
	}
	if rating.Valid {
		v := int(rating.Int64)
		reg.FeedbackRating = &v
	}
	return reg, nil
}

// MarkAttended is idempotent: attended_at keeps its first-set value on
// repeated calls.
func (r *registrationRepository) MarkAttended(ctx context.Context, id int64, at time.Time) (*domain.Registration, error) {
	query := `
		UPDATE registrations
		SET attended = TRUE, attended_at = COALESCE(attended_at, $2)
		WHERE id = $1
		RETURNING id, student_id, event_id, registered_at, attended, attended_at, feedback_rating
	`
	reg := &domain.Registration{}
	var attendedAt sql.NullTime
	var rating sql.NullInt64
	err := r.DB.QueryRowContext(ctx, query, id, at).Scan(
		&reg.ID, &reg.StudentID, &reg.EventID, &reg.RegisteredAt, &reg.Attended,
		&attendedAt, &rating,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if attendedAt.Valid {
		reg.AttendedAt = &attendedAt.Time
	}
	if rating.Valid {
		v := int(rating.Int64)
		reg.FeedbackRating = &v
	}
	return reg, nil
}

// SetFeedback stores the rating in a single update. The table check
// constraint rejects feedback on rows without recorded attendance, which
// surfaces as ErrNotAttended.
func (r *registrationRepository) SetFeedback(ctx context.Context, id int64, rating int) (*domain.Registration, error) {
	query := `
		UPDATE registrations
		SET feedback_rating = $2
		WHERE id = $1
		RETURNING id, student_id, event_id, registered_at, attended, attended_at, feedback_rating
	`
	reg := &domain.Registration{}
	var attendedAt sql.NullTime
	var ratingNull sql.NullInt64
	err := r.DB.QueryRowContext(ctx, query, id, rating).Scan(
		&reg.ID, &reg.StudentID, &reg.EventID, &reg.RegisteredAt, &reg.Attended,
		&attendedAt, &ratingNull,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23514" {
			return nil, domain.ErrNotAttended
		}
		return nil, err
	}
	if attendedAt.Valid {
		reg.AttendedAt = &attendedAt.Time
	}
	if ratingNull.Valid {
		v := int(ratingNull.Int64)
		reg.FeedbackRating = &v
	}
	return reg, nil
}

func (r *registrationRepository) List(ctx context.Context) ([]*domain.Registration, error) {
	query := `
		SELECT id, student_id, event_id, registered_at, attended, attended_at, feedback_rating
		FROM registrations
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	regs := make([]*domain.Registration, 0)
	for rows.Next() {
		reg := &domain.Registration{}
		var attendedAt sql.NullTime
		var rating sql.NullInt64
		if err := rows.Scan(
			&reg.ID, &reg.StudentID, &reg.EventID, &reg.RegisteredAt, &reg.Attended,
			&attendedAt, &rating,
		); err != nil {
			return nil, err
		}
		if attendedAt.Valid {
			reg.AttendedAt = &attendedAt.Time
		}
		if rating.Valid {
			v := int(rating.Int64)
			reg.FeedbackRating = &v
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}
