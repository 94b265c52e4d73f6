package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rajkumar2004725/Campus-Event-Management/internal/domain"
)

type studentRepository struct {
	DB *sql.DB
}

func NewStudentRepository(db *sql.DB) domain.StudentRepository {
	return &studentRepository{DB: db}
}

func (r *studentRepository) CreateCollege(ctx context.Context, c *domain.College) error {
	query := `INSERT INTO colleges (name) VALUES (?)`
	res, err := r.DB.ExecContext(ctx, query, c.Name)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

func (r *studentRepository) CreateStudent(ctx context.Context, s *domain.Student) error {
	query := `INSERT INTO students (name, email, college_id) VALUES (?, ?, ?)`
	res, err := r.DB.ExecContext(ctx, query, s.Name, s.Email, s.CollegeID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEmail
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
	s.ID = id
	return nil
}

func (r *studentRepository) GetStudentByID(ctx context.Context, id int64) (*domain.Student, error) {
	query := `
		SELECT id, name, email, college_id
		FROM students
		WHERE id = ?
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
