package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rajkumar2004725/Campus-Event-Management/internal/domain"
)

type seeder struct {
	directoryService    domain.DirectoryService
	eventService        domain.EventService
	registrationService domain.RegistrationService
}

// NewSeeder returns a Seeder that loads the sample dataset through the
// regular service layer.
func NewSeeder(directoryService domain.DirectoryService,
	eventService domain.EventService,
	registrationService domain.RegistrationService,
) domain.Seeder {
	return &seeder{
		directoryService:    directoryService,
		eventService:        eventService,
		registrationService: registrationService,
	}
}

// Seed creates one college, two students, two events, and three attended
// registrations. Running it twice fails on the students' unique emails.
func (s *seeder) Seed(ctx context.Context) error {
	college, err := s.directoryService.CreateCollege(ctx, "Sample College")
	if err != nil {
		return fmt.Errorf("seed college: %w", err)
	}

	alice, err := s.directoryService.CreateStudent(ctx, "Alice", "alice@example.com", college.ID)
	if err != nil {
		return fmt.Errorf("seed student: %w", err)
	}
	bob, err := s.directoryService.CreateStudent(ctx, "Bob", "bob@example.com", college.ID)
	if err != nil {
		return fmt.Errorf("seed student: %w", err)
	}

	hackathon, err := s.eventService.CreateEvent(ctx, "Hackathon", "Workshop", time.Date(2025, 9, 7, 0, 0, 0, 0, time.UTC), college.ID)
	if err != nil {
		return fmt.Errorf("seed event: %w", err)
	}
	techFest, err := s.eventService.CreateEvent(ctx, "Tech Fest", "Fest", time.Date(2025, 9, 8, 0, 0, 0, 0, time.UTC), college.ID)
	if err != nil {
		return fmt.Errorf("seed event: %w", err)
	}

	pairs := []struct {
		studentID int64
		eventID   int64
	}{
		{alice.ID, hackathon.ID},
		{bob.ID, hackathon.ID},
		{alice.ID, techFest.ID},
	}
	for _, p := range pairs {
		registration, err := s.registrationService.Register(ctx, p.studentID, p.eventID)
		if err != nil {
			return fmt.Errorf("seed registration: %w", err)
		}
		if _, err := s.registrationService.MarkAttended(ctx, registration.ID); err != nil {
			return fmt.Errorf("seed attendance: %w", err)
		}
	}

	return nil
}
