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

var eventCols = []string{"id", "title", "description", "date", "location", "max_participants", "organizer_id", "is_active", "created_at"}

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	date := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		event   *domain.Event
		mock    func(mock sqlmock.Sqlmock)
		wantID  int64
		wantErr bool
	}{
		{
			name: "success",
			event: &domain.Event{
				Title:       "Conf 2025",
				Description: "Annual conference",
				Date:        date,
				Location:    "Berlin",
				OrganizerID: 7,
				IsActive:    true,
				CreatedAt:   createdAt,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events \(title, description, date, location, max_participants, organizer_id, is_active, created_at\)`).
					WithArgs("Conf 2025", "Annual conference", date, "Berlin", sql.NullInt64{}, int64(7), true, createdAt).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))
			},
			wantID: 11,
		},
		{
			name: "db error",
			event: &domain.Event{
				Title:       "Conf",
				Date:        date,
				Location:    "Oslo",
				OrganizerID: 7,
				CreatedAt:   createdAt,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			err = repo.Create(ctx, tt.event)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.event.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("found with max participants", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, title, description, date, location, max_participants, organizer_id, is_active, created_at\s+FROM events\s+WHERE id = \$1`).
			WithArgs(int64(11)).
			WillReturnRows(sqlmock.NewRows(eventCols).
				AddRow(int64(11), "Conf", "desc", date, "Berlin", int64(100), int64(7), true, createdAt))

		got, err := NewEventRepository(db).GetByID(ctx, 11)
		require.NoError(t, err)
		require.Equal(t, int64(11), got.ID)
		require.NotNil(t, got.MaxParticipants)
		require.Equal(t, 100, *got.MaxParticipants)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT .* FROM events`).
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		_, err = NewEventRepository(db).GetByID(ctx, 99)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestEventRepository_Update_PartialFields(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	title := "Renamed"
	location := "Oslo"
	mock.ExpectQuery(`UPDATE events SET title = \$1, location = \$2\s+WHERE id = \$3`).
		WithArgs("Renamed", "Oslo", int64(11)).
		WillReturnRows(sqlmock.NewRows(eventCols).
			AddRow(int64(11), "Renamed", "desc", date, "Oslo", nil, int64(7), true, createdAt))

	got, err := NewEventRepository(db).Update(ctx, 11, domain.EventUpdate{Title: &title, Location: &location})
	require.NoError(t, err)
	require.Equal(t, "Renamed", got.Title)
	require.Equal(t, "Oslo", got.Location)
	require.Nil(t, got.MaxParticipants)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
			WithArgs(int64(11)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewEventRepository(db).Delete(ctx, 11))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.ErrorIs(t, NewEventRepository(db).Delete(ctx, 99), domain.ErrNotFound)
	})
}

func TestEventRepository_ListUpcoming(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM events WHERE is_active = TRUE AND date >= \$1`).
		WithArgs(now).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT id, title, .* FROM events\s+WHERE is_active = TRUE AND date >= \$1\s+ORDER BY date ASC\s+LIMIT \$2 OFFSET \$3`).
		WithArgs(now, 10, 0).
		WillReturnRows(sqlmock.NewRows(eventCols).
			AddRow(int64(1), "First", "", now.Add(24*time.Hour), "A", nil, int64(7), true, createdAt).
			AddRow(int64(2), "Second", "", now.Add(48*time.Hour), "B", nil, int64(7), true, createdAt))

	events, total, err := NewEventRepository(db).ListUpcoming(ctx, now, domain.PaginationParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Len(t, events, 2)
	require.Equal(t, "First", events[0].Title)
	require.NoError(t, mock.ExpectationsWereMet())
}
