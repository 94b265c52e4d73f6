package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rajkumar2004725/Campus-Event-Management/internal/domain"
)

type reportService struct {
	reportRepo     domain.ReportRepository
	contextTimeout time.Duration
}

func NewReportService(reportRepo domain.ReportRepository, timeout time.Duration) domain.ReportService {
	return &reportService{
		reportRepo:     reportRepo,
		contextTimeout: timeout,
	}
}

func (s *reportService) EventReport(ctx context.Context, eventID int64) (*domain.EventReport, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	report, err := s.reportRepo.EventReport(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("event report: %w", err)
	}

	return report, nil
}

func (s *reportService) EventPopularity(ctx context.Context, filter domain.EventFilter) ([]*domain.EventRegistrationCount, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	counts, err := s.reportRepo.EventPopularity(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("event popularity: %w", err)
	}
	if counts == nil {
		counts = []*domain.EventRegistrationCount{}
	}

	return counts, nil
}

func (s *reportService) EventsFlexible(ctx context.Context, filter domain.EventFilter) ([]*domain.EventRegistrationCount, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	counts, err := s.reportRepo.EventsFlexible(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("events flexible: %w", err)
	}
	if counts == nil {
		counts = []*domain.EventRegistrationCount{}
	}

	return counts, nil
}

func (s *reportService) StudentParticipation(ctx context.Context, studentID int64) (*domain.StudentParticipation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	attended, err := s.reportRepo.StudentParticipation(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("student participation: %w", err)
	}

	return &domain.StudentParticipation{AttendedEvents: attended}, nil
}

func (s *reportService) TopActiveStudents(ctx context.Context, collegeID *int64) ([]*domain.StudentActivity, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	students, err := s.reportRepo.TopActiveStudents(ctx, collegeID, domain.TopActiveStudentsLimit)
	if err != nil {
		return nil, fmt.Errorf("top active students: %w", err)
	}
	if students == nil {
		students = []*domain.StudentActivity{}
	}

	return students, nil
}
