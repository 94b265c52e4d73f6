package domain

import (
	"context"
	"time"
)

// Event represents a campus event students can register for.
type Event struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Date      time.Time `json:"date"`
	CollegeID int64     `json:"college_id"`
	Cancelled bool      `json:"cancelled"`
}

// NewEvent returns a new Event with the given fields. ID is typically set by the repository on create.
func NewEvent(name, eventType string, date time.Time, collegeID int64) *Event {
	return &Event{
		Name:      name,
		Type:      eventType,
		Date:      date,
		CollegeID: collegeID,
	}
}

// EventFilter narrows event listings and report queries.
type EventFilter struct {
	Type      *string
	CollegeID *int64
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id int64) (*Event, error)
	List(ctx context.Context, collegeID *int64) ([]*Event, error)
	SetCancelled(ctx context.Context, id int64, cancelled bool) (*Event, error)
}

// EventService defines the contract for managing the event catalog.
type EventService interface {
	CreateEvent(ctx context.Context, name, eventType string, date time.Time, collegeID int64) (*Event, error)
	ListEvents(ctx context.Context, collegeID *int64) ([]*Event, error)
	SetCancelled(ctx context.Context, eventID int64, cancelled bool) (*Event, error)
}
