package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/rajkumar2004725/Campus-Event-Management/internal/domain"
)

type registrationService struct {
	registrationRepo domain.RegistrationRepository
	eventRepo        domain.EventRepository
	studentRepo      domain.StudentRepository
	emailService     domain.EmailService
	contextTimeout   time.Duration
}

func NewRegistrationService(registrationRepo domain.RegistrationRepository,
	eventRepo domain.EventRepository,
	studentRepo domain.StudentRepository,
	emailService domain.EmailService,
	timeout time.Duration,
) domain.RegistrationService {
	return &registrationService{
		registrationRepo: registrationRepo,
		eventRepo:        eventRepo,
		studentRepo:      studentRepo,
		emailService:     emailService,
		contextTimeout:   timeout,
	}
}

func (s *registrationService) Register(ctx context.Context, studentID, eventID int64) (*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	registration := domain.NewRegistration(studentID, eventID, time.Now().UTC())
	if err := s.registrationRepo.Create(ctx, registration); err != nil {
		if errors.Is(err, domain.ErrDuplicateRegistration) {
			return nil, domain.ErrDuplicateRegistration
		}
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("create registration: %w", err)
	}

	if s.emailService != nil {
		s.sendConfirmation(ctx, registration)
	}

	return registration, nil
}

// sendConfirmation emails the student about a registration that is already
// committed, so failures are logged rather than returned.
func (s *registrationService) sendConfirmation(ctx context.Context, registration *domain.Registration) {
	student, err := s.studentRepo.GetStudentByID(ctx, registration.StudentID)
	if err != nil {
		log.Printf("[EMAIL] Skipping confirmation for registration %d: %v", registration.ID, err)
		return
	}
	event, err := s.eventRepo.GetByID(ctx, registration.EventID)
	if err != nil {
		log.Printf("[EMAIL] Skipping confirmation for registration %d: %v", registration.ID, err)
		return
	}
	data := &domain.RegistrationConfirmationEmailData{
		Email:       student.Email,
		StudentName: student.Name,
		EventName:   event.Name,
		EventType:   event.Type,
		EventDate:   event.Date,
	}
	if err := s.emailService.SendRegistrationConfirmation(ctx, data); err != nil {
		log.Printf("[EMAIL] Registration confirmation to %s failed: %v", student.Email, err)
	}
}

func (s *registrationService) MarkAttended(ctx context.Context, registrationID int64) (*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	registration, err := s.registrationRepo.MarkAttended(ctx, registrationID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("mark attended: %w", err)
	}

	return registration, nil
}

func (s *registrationService) SubmitFeedback(ctx context.Context, registrationID int64, rating int) (*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if rating < domain.MinFeedbackRating || rating > domain.MaxFeedbackRating {
		return nil, domain.ErrInvalidRating
	}

	registration, err := s.registrationRepo.SetFeedback(ctx, registrationID, rating)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		if errors.Is(err, domain.ErrNotAttended) {
			return nil, domain.ErrNotAttended
		}
		return nil, fmt.Errorf("set feedback: %w", err)
	}

	return registration, nil
}

func (s *registrationService) ListRegistrations(ctx context.Context) ([]*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	registrations, err := s.registrationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	if registrations == nil {
		registrations = []*domain.Registration{}
	}

	return registrations, nil
}
