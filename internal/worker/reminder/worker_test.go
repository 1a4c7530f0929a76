package reminder

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"eventhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotificationService struct {
	sweep *domain.ReminderSweep
	err   error
	calls int
}

func (s *stubNotificationService) UserNotifications(ctx context.Context, userID int64, now time.Time) (*domain.UserNotifications, error) {
	return nil, errors.New("not used")
}

func (s *stubNotificationService) RemindersDue(ctx context.Context, now time.Time) (*domain.ReminderSweep, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.sweep, nil
}

type stubEmailService struct {
	reminders []*domain.EventReminderEmailData
	failFor   string // email address whose send fails
}

func (s *stubEmailService) SendWelcomeMessage(ctx context.Context, data *domain.WelcomeMessageEmailData) error {
	return errors.New("not used")
}

func (s *stubEmailService) SendEventReminder(ctx context.Context, data *domain.EventReminderEmailData) error {
	if data.Email == s.failFor {
		return errors.New("bounce")
	}
	s.reminders = append(s.reminders, data)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func sweepFixture(date time.Time) *domain.ReminderSweep {
	return &domain.ReminderSweep{
		TotalEvents: 1,
		EventsNeedingReminders: []*domain.ReminderGroup{
			{
				EventID:       10,
				EventTitle:    "Standup",
				EventDate:     date,
				EventLocation: "Room 1",
				Attendees: []*domain.AttendeeContact{
					{UserID: 1, Username: "ana", Email: "ana@example.com", FullName: "Ana A"},
					{UserID: 2, Username: "bo", Email: "bo@example.com", FullName: "Bo B"},
				},
			},
		},
	}
}

func TestRunOnce_SendsOneEmailPerAttendee(t *testing.T) {
	date := time.Date(2025, 6, 11, 10, 30, 0, 0, time.UTC)
	notifications := &stubNotificationService{sweep: sweepFixture(date)}
	emails := &stubEmailService{}
	w := NewWorker(notifications, emails, testLogger(), time.Hour)

	require.NoError(t, w.RunOnce(context.Background()))
	require.Len(t, emails.reminders, 2)

	first := emails.reminders[0]
	assert.Equal(t, "ana@example.com", first.Email)
	assert.Equal(t, "Standup", first.EventTitle)
	assert.Equal(t, "Reminder! The event 'Standup' is tomorrow at 10:30 in Room 1.", first.Message)
	assert.Equal(t, "bo@example.com", emails.reminders[1].Email)
}

func TestRunOnce_SendFailureDoesNotAbortCycle(t *testing.T) {
	date := time.Date(2025, 6, 11, 10, 30, 0, 0, time.UTC)
	notifications := &stubNotificationService{sweep: sweepFixture(date)}
	emails := &stubEmailService{failFor: "ana@example.com"}
	w := NewWorker(notifications, emails, testLogger(), time.Hour)

	require.NoError(t, w.RunOnce(context.Background()))
	require.Len(t, emails.reminders, 1)
	assert.Equal(t, "bo@example.com", emails.reminders[0].Email)
}

func TestRunOnce_EmptySweepSendsNothing(t *testing.T) {
	notifications := &stubNotificationService{sweep: &domain.ReminderSweep{}}
	emails := &stubEmailService{}
	w := NewWorker(notifications, emails, testLogger(), time.Hour)

	require.NoError(t, w.RunOnce(context.Background()))
	assert.Empty(t, emails.reminders)
}

func TestRunOnce_SweepFailurePropagates(t *testing.T) {
	notifications := &stubNotificationService{err: errors.New("store down")}
	w := NewWorker(notifications, &stubEmailService{}, testLogger(), time.Hour)

	assert.Error(t, w.RunOnce(context.Background()))
}

func TestStart_StopsOnContextCancel(t *testing.T) {
	notifications := &stubNotificationService{sweep: &domain.ReminderSweep{}}
	w := NewWorker(notifications, &stubEmailService{}, testLogger(), 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	// Let at least the startup cycle run, then cancel.
	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancellation")
	}
	assert.GreaterOrEqual(t, notifications.calls, 1)
}
