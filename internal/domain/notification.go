package domain

import (
	"context"
	"time"
)

// Notification types. A reminder covers the next 24 hours; upcoming covers
// everything else in the future.
const (
	NotificationTypeReminder = "reminder"
	NotificationTypeUpcoming = "upcoming"
)

// Notification is derived fresh per request from an attendance record and a
// reference instant. It is never persisted.
// swagger:model Notification
type Notification struct {
	EventID          int64     `json:"event_id"`
	EventTitle       string    `json:"event_title"`
	EventDate        time.Time `json:"event_date"`
	EventLocation    string    `json:"event_location"`
	NotificationType string    `json:"notification_type"`
	Message          string    `json:"message"`
	DaysUntilEvent   int       `json:"days_until_event"`
}

// UserNotifications is the derived notification set for one user.
// swagger:model UserNotifications
type UserNotifications struct {
	UserID             int64           `json:"user_id"`
	TotalNotifications int             `json:"total_notifications"`
	Notifications      []*Notification `json:"notifications"`
}

// AttendeeContact identifies an attendee to be reminded.
// swagger:model AttendeeContact
type AttendeeContact struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// ReminderGroup aggregates the attendees of one event inside the sweep window.
// swagger:model ReminderGroup
type ReminderGroup struct {
	EventID       int64             `json:"event_id"`
	EventTitle    string            `json:"event_title"`
	EventDate     time.Time         `json:"event_date"`
	EventLocation string            `json:"event_location"`
	Attendees     []*AttendeeContact `json:"attendees"`
}

// ReminderSweep is the result of one bounded-window reminder sweep.
// swagger:model ReminderSweep
type ReminderSweep struct {
	TotalEvents            int              `json:"total_events"`
	EventsNeedingReminders []*ReminderGroup `json:"events_needing_reminders"`
}

// NotificationService derives notifications from attendance records.
// Both operations capture the evaluation instant once and thread it through
// every per-record classification.
type NotificationService interface {
	// UserNotifications derives notifications for all active future events the
	// user attends, preserving ascending event date order.
	UserNotifications(ctx context.Context, userID int64, now time.Time) (*UserNotifications, error)
	// RemindersDue groups all attendance rows for active events starting within
	// [now, now+24h] into per-event reminder groups.
	RemindersDue(ctx context.Context, now time.Time) (*ReminderSweep, error)
}
