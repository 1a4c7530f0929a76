package domain

import (
	"context"
	"time"
)

// Attendance relates one user to one event.
type Attendance struct {
	UserID       int64     `json:"user_id"`
	EventID      int64     `json:"event_id"`
	RegisteredAt time.Time `json:"registered_at"`
}

// AttendedEvent bundles an event with the attendance record linking a user to it.
type AttendedEvent struct {
	Event        *Event    `json:"event"`
	RegisteredAt time.Time `json:"registered_at"`
}

// Attendee is a user attending an event, as returned by attendee listings.
// swagger:model Attendee
type Attendee struct {
	UserID       int64     `json:"user_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	RegisteredAt time.Time `json:"registered_at"`
}

// ReminderRow is one attendance row of the reminder sweep join: event fields
// plus the attending user's contact fields. Rows arrive ordered by event date
// ascending; within an event, store row order is preserved.
type ReminderRow struct {
	EventID       int64
	EventTitle    string
	EventDate     time.Time
	EventLocation string
	UserID        int64
	Username      string
	Email         string
	FullName      string
}

// AttendanceRepository defines storage operations for event attendance.
type AttendanceRepository interface {
	Register(ctx context.Context, userID, eventID int64) error
	ListAttendeesByEvent(ctx context.Context, eventID int64) ([]*Attendee, error)
	// ListActiveFutureByUser returns the user's attendances for active events
	// with date >= now, ordered by event date ascending.
	ListActiveFutureByUser(ctx context.Context, userID int64, now time.Time) ([]*AttendedEvent, error)
	// ListActiveInWindow returns attendance rows for active events whose date
	// falls within [start, end] inclusive, joined with user contact fields,
	// ordered by event date ascending.
	ListActiveInWindow(ctx context.Context, start, end time.Time) ([]*ReminderRow, error)
}
