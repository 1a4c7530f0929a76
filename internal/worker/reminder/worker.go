// Package reminder runs the periodic reminder sweep in the background and
// emails every attendee of an event starting within the next 24 hours.
package reminder

import (
	"context"
	"log/slog"
	"time"

	"eventhub/internal/domain"
	"eventhub/internal/services"
)

// Worker periodically sweeps upcoming events and sends reminder emails.
// The sweep itself is read-only; sending happens here so the HTTP endpoint
// that exposes the same sweep stays free of side effects.
type Worker struct {
	notifications domain.NotificationService
	emails        domain.EmailService
	logger        *slog.Logger
	interval      time.Duration
}

// NewWorker returns a Worker. interval values of 0 or less fall back to one hour.
func NewWorker(
	notifications domain.NotificationService,
	emails domain.EmailService,
	logger *slog.Logger,
	interval time.Duration,
) *Worker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Worker{
		notifications: notifications,
		emails:        emails,
		logger:        logger,
		interval:      interval,
	}
}

// Start runs the sweep loop until ctx is cancelled. One cycle runs
// immediately on start, then one per tick.
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("reminder worker started", "interval", w.interval)

	if err := w.RunOnce(ctx); err != nil {
		w.logger.Error("reminder cycle failed", "err", err)
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("reminder worker stopped")
			return
		case <-ticker.C:
			if err := w.RunOnce(ctx); err != nil {
				w.logger.Error("reminder cycle failed", "err", err)
			}
		}
	}
}

// RunOnce performs a single sweep and sends one email per attendee row.
// A failed send is logged and does not abort the rest of the cycle.
func (w *Worker) RunOnce(ctx context.Context) error {
	start := time.Now()

	sweep, err := w.notifications.RemindersDue(ctx, start)
	if err != nil {
		return err
	}
	if sweep.TotalEvents == 0 {
		return nil
	}

	sent := 0
	for _, group := range sweep.EventsNeedingReminders {
		for _, attendee := range group.Attendees {
			data := &domain.EventReminderEmailData{
				Email:         attendee.Email,
				FullName:      attendee.FullName,
				EventTitle:    group.EventTitle,
				EventDate:     group.EventDate,
				EventLocation: group.EventLocation,
				Message:       services.ReminderMessage(group.EventTitle, group.EventDate, group.EventLocation),
			}
			if err := w.emails.SendEventReminder(ctx, data); err != nil {
				w.logger.Error("reminder email failed",
					"event_id", group.EventID,
					"email", attendee.Email,
					"err", err,
				)
				continue
			}
			sent++
		}
	}

	w.logger.Info("reminder cycle completed",
		"events", sweep.TotalEvents,
		"emails_sent", sent,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
