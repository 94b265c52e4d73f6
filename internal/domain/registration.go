package domain

import (
	"context"
	"errors"
	"time"
)

// Feedback ratings are bounded inclusive.
const (
	MinFeedbackRating = 1
	MaxFeedbackRating = 5
)

var (
	// ErrDuplicateRegistration is returned when a student is already registered for an event.
	ErrDuplicateRegistration = errors.New("student already registered for event")
	// ErrNotAttended is returned when feedback is submitted for a registration with no recorded attendance.
	ErrNotAttended = errors.New("attendance not recorded for registration")
	// ErrInvalidRating is returned when a feedback rating falls outside the allowed range.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

// Registration represents a student's registration for an event.
// swagger:model Registration
type Registration struct {
	ID             int64      `json:"id"`
	StudentID      int64      `json:"student_id"`
	EventID        int64      `json:"event_id"`
	RegisteredAt   time.Time  `json:"registered_at"`
	Attended       bool       `json:"attended"`
	AttendedAt     *time.Time `json:"attended_at"`
	FeedbackRating *int       `json:"feedback_rating"`
}

// NewRegistration creates a new Registration. ID is typically set by the repository on create.
func NewRegistration(studentID, eventID int64, registeredAt time.Time) *Registration {
	return &Registration{
		StudentID:    studentID,
		EventID:      eventID,
		RegisteredAt: registeredAt,
	}
}

// RegistrationRepository defines storage operations for registrations.
// Create must rely on a storage-level uniqueness constraint over
// (student_id, event_id) and report violations as ErrDuplicateRegistration.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *Registration) error
	GetByID(ctx context.Context, id int64) (*Registration, error)
	MarkAttended(ctx context.Context, id int64, at time.Time) (*Registration, error)
	SetFeedback(ctx context.Context, id int64, rating int) (*Registration, error)
	List(ctx context.Context) ([]*Registration, error)
}

// RegistrationService defines student-facing operations on registrations.
type RegistrationService interface {
	// Register registers the student for the event. A second registration
	// for the same (student, event) pair fails with ErrDuplicateRegistration.
	Register(ctx context.Context, studentID, eventID int64) (*Registration, error)
	// MarkAttended records attendance for the registration. Marking an
	// already-attended registration is a no-op that returns the current state.
	MarkAttended(ctx context.Context, registrationID int64) (*Registration, error)
	// SubmitFeedback stores a 1..5 rating for an attended registration.
	// Resubmitting overwrites the previous rating.
	SubmitFeedback(ctx context.Context, registrationID int64, rating int) (*Registration, error)
	ListRegistrations(ctx context.Context) ([]*Registration, error)
}
