package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rajkumar2004725/Campus-Event-Management/internal/domain"
)

type directoryService struct {
	studentRepo    domain.StudentRepository
	contextTimeout time.Duration
}

func NewDirectoryService(studentRepo domain.StudentRepository, timeout time.Duration) domain.DirectoryService {
	return &directoryService{
		studentRepo:    studentRepo,
		contextTimeout: timeout,
	}
}

func (s *directoryService) CreateCollege(ctx context.Context, name string) (*domain.College, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	college := domain.NewCollege(strings.TrimSpace(name))
	if err := s.studentRepo.CreateCollege(ctx, college); err != nil {
		return nil, fmt.Errorf("create college: %w", err)
	}

	return college, nil
}

func (s *directoryService) CreateStudent(ctx context.Context, name, email string, collegeID int64) (*domain.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	email = strings.TrimSpace(strings.ToLower(email))
	student := domain.NewStudent(strings.TrimSpace(name), email, collegeID)
	if err := s.studentRepo.CreateStudent(ctx, student); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("create student: %w", err)
	}

	return student, nil
}

func (s *directoryService) ListStudents(ctx context.Context) ([]*domain.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	students, err := s.studentRepo.ListStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	if students == nil {
		students = []*domain.Student{}
	}

	return students, nil
}
