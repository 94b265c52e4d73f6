package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

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
		VALUES (?, ?, ?)
	`
	res, err := r.DB.ExecContext(ctx, query, reg.StudentID, reg.EventID, toMillis(reg.RegisteredAt))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateRegistration
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	reg.ID = id
	return nil
}

func (r *registrationRepository) GetByID(ctx context.Context, id int64) (*domain.Registration, error) {
	query := `
		SELECT id, student_id, event_id, registered_at, attended, attended_at, feedback_rating
		FROM registrations
		WHERE id = ?
	`
	reg := &domain.Registration{}
	var registeredAt int64
	var attendedAt, rating sql.NullInt64
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&reg.ID, &reg.StudentID, &reg.EventID, &registeredAt, &reg.Attended,
		&attendedAt, &rating,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	reg.RegisteredAt = fromMillis(registeredAt)
	if attendedAt.Valid {
		at := fromMillis(attendedAt.Int64)
		reg.AttendedAt = &at
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
		SET attended = 1, attended_at = COALESCE(attended_at, ?)
		WHERE id = ?
	`
	res, err := r.DB.ExecContext(ctx, query, toMillis(at), id)
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

// SetFeedback stores the rating in a single update. The table check
// constraint rejects feedback on rows without recorded attendance, which
// surfaces as ErrNotAttended.
func (r *registrationRepository) SetFeedback(ctx context.Context, id int64, rating int) (*domain.Registration, error) {
	query := `
		UPDATE registrations
		SET feedback_rating = ?
		WHERE id = ?
	`
	res, err := r.DB.ExecContext(ctx, query, rating, id)
	if err != nil {
		if isCheckViolation(err) {
			return nil, domain.ErrNotAttended
		}
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
		var registeredAt int64
		var attendedAt, rating sql.NullInt64
		if err := rows.Scan(
			&reg.ID, &reg.StudentID, &reg.EventID, &registeredAt, &reg.Attended,
			&attendedAt, &rating,
		); err != nil {
			return nil, err
		}
		reg.RegisteredAt = fromMillis(registeredAt)
		if attendedAt.Valid {
			at := fromMillis(attendedAt.Int64)
			reg.AttendedAt = &at
		}
		if rating.Valid {
			v := int(rating.Int64)
			reg.FeedbackRating = &v
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}
