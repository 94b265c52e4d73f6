package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/rajkumar2004725/Campus-Event-Management/internal/domain"
)

type studentRepository struct {
	DB *sql.DB
}

func NewStudentRepository(db *sql.DB) domain.StudentRepository {
	return &studentRepository{DB: db}
}

func (r *studentRepository) CreateCollege(ctx context.Context, c *domain.College) error {
	query := `
		INSERT INTO colleges (name)
		VALUES ($1)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, c.Name).Scan(&c.ID)
}

func (r *studentRepository) CreateStudent(ctx context.Context, s *domain.Student) error {
	query := `
		INSERT INTO students (name, email, college_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, s.Name, s.Email, s.CollegeID).Scan(&s.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23505":
				return domain.ErrDuplicateEmail
			case "23503":
				return domain.ErrNotFound
			}
		}
		return err
	}
	return nil
}

func (r *studentRepository) GetStudentByID(ctx context.Context, id int64) (*domain.Student, error) {
	query := `
		SELECT id, name, email, college_id
		FROM students
		WHERE id = $1
	`
	s := &domain.Student{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Name, &s.Email, &s.CollegeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *studentRepository) ListStudents(ctx context.Context) ([]*domain.Student, error) {
	query := `
		SELECT id, name, email, college_id
		FROM students
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	students := make([]*domain.Student, 0)
	for rows.Next() {
		s := &domain.Student{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.CollegeID); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}
