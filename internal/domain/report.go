package domain

import "context"

// TopActiveStudentsLimit caps the most-active-students report size.
const TopActiveStudentsLimit = 3

// EventReport summarizes registrations, attendance, and feedback for one event.
// swagger:model EventReport
type EventReport struct {
	TotalRegistrations   int     `json:"total_registrations"`
	AttendancePercentage float64 `json:"attendance_percentage"`
	AverageFeedback      float64 `json:"average_feedback"`
}

// EventRegistrationCount is one row of a per-event registration count report.
// swagger:model EventRegistrationCount
type EventRegistrationCount struct {
	EventID       int64  `json:"event_id"`
	Name          string `json:"name"`
	Registrations int    `json:"registrations"`
}

// StudentParticipation reports how many events a student attended.
// swagger:model StudentParticipation
type StudentParticipation struct {
	AttendedEvents int `json:"attended_events"`
}

// StudentActivity is one row of the most-active-students report.
// swagger:model StudentActivity
type StudentActivity struct {
	StudentID   int64  `json:"student_id"`
	Name        string `json:"name"`
	Attendances int    `json:"attendances"`
}

// ReportRepository defines the read models backing the reporting endpoints.
type ReportRepository interface {
	// EventReport aggregates counts for one event. The zero-value report is
	// returned for an event with no registrations.
	EventReport(ctx context.Context, eventID int64) (*EventReport, error)
	// EventPopularity counts registrations per non-cancelled event, most
	// popular first. Ties are broken by ascending event ID.
	EventPopularity(ctx context.Context, filter EventFilter) ([]*EventRegistrationCount, error)
	// EventsFlexible is EventPopularity restricted by the same filter but
	// ordered by ascending event ID.
	EventsFlexible(ctx context.Context, filter EventFilter) ([]*EventRegistrationCount, error)
	// StudentParticipation counts the events a student attended.
	StudentParticipation(ctx context.Context, studentID int64) (int, error)
	// TopActiveStudents lists the students with the most attendances,
	// descending, ties broken by ascending student ID.
	TopActiveStudents(ctx context.Context, collegeID *int64, limit int) ([]*StudentActivity, error)
}

// ReportService defines the business logic for the reporting endpoints.
type ReportService interface {
	EventReport(ctx context.Context, eventID int64) (*EventReport, error)
	EventPopularity(ctx context.Context, filter EventFilter) ([]*EventRegistrationCount, error)
	EventsFlexible(ctx context.Context, filter EventFilter) ([]*EventRegistrationCount, error)
	StudentParticipation(ctx context.Context, studentID int64) (*StudentParticipation, error)
	TopActiveStudents(ctx context.Context, collegeID *int64) ([]*StudentActivity, error)
}
