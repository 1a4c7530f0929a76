package domain

import (
	"context"
	"time"
)

// Event represents a scheduled event users can attend.
// swagger:model Event
type Event struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Date            time.Time `json:"date"`
	Location        string    `json:"location"`
	MaxParticipants *int      `json:"max_participants,omitempty"`
	OrganizerID     int64     `json:"organizer_id"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewEvent returns a new active Event with the given fields. ID is set by the repository on create.
func NewEvent(title, description string, date time.Time, location string, maxParticipants *int, organizerID int64, createdAt time.Time) *Event {
	return &Event{
		Title:           title,
		Description:     description,
		Date:            date,
		Location:        location,
		MaxParticipants: maxParticipants,
		OrganizerID:     organizerID,
		IsActive:        true,
		CreatedAt:       createdAt,
	}
}

// EventUpdate holds the optional fields of a partial event update.
type EventUpdate struct {
	Title           *string
	Description     *string
	Date            *time.Time
	Location        *string
	MaxParticipants *int
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id int64) (*Event, error)
	Update(ctx context.Context, id int64, upd EventUpdate) (*Event, error)
	Delete(ctx context.Context, id int64) error
	// ListUpcoming returns active events with date >= now ordered by date asc, plus the total count.
	ListUpcoming(ctx context.Context, now time.Time, params PaginationParams) ([]*Event, int, error)
	// ListPast returns events with date < now ordered by date desc, plus the total count.
	ListPast(ctx context.Context, now time.Time, params PaginationParams) ([]*Event, int, error)
}

// EventService defines the business logic for event management.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) (*Event, error)
	GetEvent(ctx context.Context, id int64) (*Event, error)
	UpdateEvent(ctx context.Context, id int64, organizerID int64, upd EventUpdate) (*Event, error)
	DeleteEvent(ctx context.Context, id int64, organizerID int64) error
	ListUpcomingEvents(ctx context.Context, params PaginationParams) ([]*Event, int, error)
	ListPastEvents(ctx context.Context, params PaginationParams) ([]*Event, int, error)
	RegisterAttendance(ctx context.Context, userID, eventID int64) error
	ListAttendees(ctx context.Context, eventID int64) ([]*Attendee, error)
}
