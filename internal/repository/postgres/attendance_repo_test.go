package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"eventhub/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestAttendanceRepository_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`INSERT INTO event_attendance \(user_id, event_id, registered_at\)`).
			WithArgs(int64(5), int64(11)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewAttendanceRepository(db).Register(ctx, 5, 11))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate registration is a no-op", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		// ON CONFLICT DO NOTHING: zero rows affected, still no error.
		mock.ExpectExec(`INSERT INTO event_attendance`).
			WithArgs(int64(5), int64(11)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, NewAttendanceRepository(db).Register(ctx, 5, 11))
	})

	t.Run("db error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`INSERT INTO event_attendance`).
			WillReturnError(sql.ErrConnDone)

		require.Error(t, NewAttendanceRepository(db).Register(ctx, 5, 11))
	})
}

func TestAttendanceRepository_ListAttendeesByEvent(t *testing.T) {
	ctx := context.Background()
	registeredAt := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT u.id, u.username, u.email, u.full_name, a.registered_at\s+FROM event_attendance a\s+JOIN users u ON u.id = a.user_id\s+WHERE a.event_id = \$1`).
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "full_name", "registered_at"}).
			AddRow(int64(1), "ana", "ana@example.com", "Ana A", registeredAt).
			AddRow(int64(2), "bo", "bo@example.com", "Bo B", registeredAt))

	attendees, err := NewAttendanceRepository(db).ListAttendeesByEvent(ctx, 11)
	require.NoError(t, err)
	require.Len(t, attendees, 2)
	require.Equal(t, "ana", attendees[0].Username)
	require.Equal(t, "bo@example.com", attendees[1].Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_ListActiveFutureByUser(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	date := now.Add(48 * time.Hour)
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	registeredAt := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cols := []string{"id", "title", "description", "date", "location", "max_participants", "organizer_id", "is_active", "created_at", "registered_at"}
	mock.ExpectQuery(`WHERE a.user_id = \$1 AND e.is_active = TRUE AND e.date >= \$2\s+ORDER BY e.date ASC`).
		WithArgs(int64(5), now).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int64(11), "Conf", "desc", date, "Berlin", nil, int64(7), true, createdAt, registeredAt))

	attended, err := NewAttendanceRepository(db).ListActiveFutureByUser(ctx, 5, now)
	require.NoError(t, err)
	require.Len(t, attended, 1)
	require.Equal(t, int64(11), attended[0].Event.ID)
	require.True(t, attended[0].Event.IsActive)
	require.True(t, attended[0].RegisteredAt.Equal(registeredAt))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_ListActiveInWindow(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	date := start.Add(3 * time.Hour)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cols := []string{"id", "title", "date", "location", "user_id", "username", "email", "full_name"}
	mock.ExpectQuery(`WHERE e.is_active = TRUE AND e.date >= \$1 AND e.date <= \$2\s+ORDER BY e.date ASC`).
		WithArgs(start, end).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int64(11), "Conf", date, "Berlin", int64(1), "ana", "ana@example.com", "Ana A").
			AddRow(int64(11), "Conf", date, "Berlin", int64(2), "bo", "bo@example.com", "Bo B"))

	rows, err := NewAttendanceRepository(db).ListActiveInWindow(ctx, start, end)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, int64(11), rows[0].EventID)
	require.Equal(t, "ana", rows[0].Username)
	require.Equal(t, "bo@example.com", rows[1].Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_ListActiveInWindow_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM event_attendance`).
		WillReturnError(sql.ErrConnDone)

	_, err = NewAttendanceRepository(db).ListActiveInWindow(context.Background(), time.Now(), time.Now().Add(24*time.Hour))
	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrNotFound)
}
