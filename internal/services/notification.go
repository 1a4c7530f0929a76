package services

import (
	"context"
	"fmt"
	"time"

	"eventhub/internal/domain"
)

// reminderWindow is the lookahead window for reminder classification and the
// reminder sweep. An event starting within the next 24 hours (inclusive) is a
// reminder; anything further out is merely upcoming.
const reminderWindow = 24 * time.Hour

type notificationService struct {
	attendanceRepo domain.AttendanceRepository
}

// NewNotificationService creates a NotificationService backed by the given attendance repository.
func NewNotificationService(attendanceRepo domain.AttendanceRepository) domain.NotificationService {
	return &notificationService{
		attendanceRepo: attendanceRepo,
	}
}

// ReminderMessage renders the reminder text for an event starting within 24 hours.
// The time is the event's wall clock on a 24h dial.
func ReminderMessage(title string, date time.Time, location string) string {
	return fmt.Sprintf("Reminder! The event '%s' is tomorrow at %s in %s.",
		title, date.Format("15:04"), location)
}

// UpcomingMessage renders the confirmation text for an event further out.
func UpcomingMessage(title string, date time.Time) string {
	return fmt.Sprintf("Your attendance at '%s' on %s is confirmed.",
		title, date.Format("02/01/2006"))
}

// DeriveNotification classifies one attendance record against the evaluation
// instant now and returns the derived notification, or nil when the event is
// inactive, already started, or otherwise outside both windows.
//
// An event exactly 24h away classifies as a reminder with DaysUntilEvent = 1,
// not 0. That boundary looks like an off-by-one but matches the behavior
// callers depend on, so it is pinned by tests rather than corrected.
func DeriveNotification(now time.Time, event *domain.Event) *domain.Notification {
	if event == nil || !event.IsActive {
		return nil
	}

	delta := event.Date.Sub(now)
	hoursUntil := delta.Hours()
	daysUntil := int(delta / (24 * time.Hour))

	n := &domain.Notification{
		EventID:       event.ID,
		EventTitle:    event.Title,
		EventDate:     event.Date,
		EventLocation: event.Location,
	}

	switch {
	case hoursUntil >= 0 && hoursUntil <= 24:
		n.NotificationType = domain.NotificationTypeReminder
		if hoursUntil < 24 {
			n.DaysUntilEvent = 0
		} else {
			n.DaysUntilEvent = 1
		}
		n.Message = ReminderMessage(event.Title, event.Date, event.Location)
	case daysUntil > 0:
		n.NotificationType = domain.NotificationTypeUpcoming
		n.DaysUntilEvent = daysUntil
		n.Message = UpcomingMessage(event.Title, event.Date)
	default:
		// Event already started or in the past: nothing to notify.
		return nil
	}

	return n
}

func (s *notificationService) UserNotifications(ctx context.Context, userID int64, now time.Time) (*domain.UserNotifications, error) {
	attended, err := s.attendanceRepo.ListActiveFutureByUser(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("%w: list attendances: %v", domain.ErrStoreUnavailable, err)
	}

	// The same now is threaded through every classification so that two
	// notifications in one response never disagree on the reference time.
	notifications := make([]*domain.Notification, 0, len(attended))
	for _, a := range attended {
		if n := DeriveNotification(now, a.Event); n != nil {
			notifications = append(notifications, n)
		}
	}

	return &domain.UserNotifications{
		UserID:             userID,
		TotalNotifications: len(notifications),
		Notifications:      notifications,
	}, nil
}

func (s *notificationService) RemindersDue(ctx context.Context, now time.Time) (*domain.ReminderSweep, error) {
	rows, err := s.attendanceRepo.ListActiveInWindow(ctx, now, now.Add(reminderWindow))
	if err != nil {
		return nil, fmt.Errorf("%w: list attendance window: %v", domain.ErrStoreUnavailable, err)
	}

	// Group rows by event preserving first-seen event order and per-event row
	// order. Attendee rows are passed through as stored: no de-duplication.
	groups := make([]*domain.ReminderGroup, 0)
	byEventID := make(map[int64]*domain.ReminderGroup)
	for _, row := range rows {
		g, ok := byEventID[row.EventID]
		if !ok {
			g = &domain.ReminderGroup{
				EventID:       row.EventID,
				EventTitle:    row.EventTitle,
				EventDate:     row.EventDate,
				EventLocation: row.EventLocation,
				Attendees:     make([]*domain.AttendeeContact, 0, 1),
			}
			byEventID[row.EventID] = g
			groups = append(groups, g)
		}
		g.Attendees = append(g.Attendees, &domain.AttendeeContact{
			UserID:   row.UserID,
			Username: row.Username,
			Email:    row.Email,
			FullName: row.FullName,
		})
	}

	return &domain.ReminderSweep{
		TotalEvents:            len(groups),
		EventsNeedingReminders: groups,
	}, nil
}
