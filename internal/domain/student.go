package domain

import (
	"context"
	"errors"
)

// Sentinel errors for directory operations.
var (
	ErrDuplicateEmail = errors.New("email already in use")
)

// College represents an institution whose students and events share a campus.
type College struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewCollege returns a new College. ID is typically set by the repository on create.
func NewCollege(name string) *College {
	return &College{Name: name}
}

// Student represents a registered student
// swagger:model Student
type Student struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CollegeID int64  `json:"college_id"`
}

// NewStudent returns a new Student with the given fields. ID is typically set by the repository on create.
func NewStudent(name, email string, collegeID int64) *Student {
	return &Student{
		Name:      name,
		Email:     email,
		CollegeID: collegeID,
	}
}

// StudentRepository defines the interface for college and student storage
type StudentRepository interface {
	CreateCollege(ctx context.Context, college *College) error
	CreateStudent(ctx context.Context, student *Student) error
	GetStudentByID(ctx context.Context, id int64) (*Student, error)
	ListStudents(ctx context.Context) ([]*Student, error)
}

// DirectoryService defines the business logic for the college and student directory.
type DirectoryService interface {
	CreateCollege(ctx context.Context, name string) (*College, error)
	CreateStudent(ctx context.Context, name, email string, collegeID int64) (*Student, error)
	ListStudents(ctx context.Context) ([]*Student, error)
}
