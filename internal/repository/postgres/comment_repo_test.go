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

func TestCommentRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO comments \(user_id, event_id, content, rating, created_at\)`).
		WithArgs(int64(5), int64(11), "Great event", 5, createdAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	c := domain.NewComment(5, 11, "Great event", 5, createdAt)
	require.NoError(t, NewCommentRepository(db).Create(ctx, c))
	require.Equal(t, int64(3), c.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_GetWithAuthor(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	cols := []string{"id", "user_id", "event_id", "content", "rating", "created_at", "username", "full_name"}

	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT c.id, c.user_id, c.event_id, c.content, c.rating, c.created_at, u.username, u.full_name\s+FROM comments c\s+JOIN users u ON u.id = c.user_id\s+WHERE c.id = \$1`).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow(int64(3), int64(5), int64(11), "Great event", 5, createdAt, "ana", "Ana A"))

		got, err := NewCommentRepository(db).GetWithAuthor(ctx, 3)
		require.NoError(t, err)
		require.Equal(t, "Great event", got.Content)
		require.Equal(t, "ana", got.Username)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM comments c`).
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		_, err = NewCommentRepository(db).GetWithAuthor(ctx, 99)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCommentRepository_ListByEventID(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	cols := []string{"id", "user_id", "event_id", "content", "rating", "created_at", "username", "full_name"}

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM comments WHERE event_id = \$1`).
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`WHERE c.event_id = \$1\s+ORDER BY c.created_at DESC\s+LIMIT \$2 OFFSET \$3`).
		WithArgs(int64(11), 10, 0).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int64(2), int64(6), int64(11), "Newest", 4, createdAt, "bo", "Bo B").
			AddRow(int64(1), int64(5), int64(11), "Oldest", 5, createdAt, "ana", "Ana A"))

	comments, total, err := NewCommentRepository(db).ListByEventID(ctx, 11, domain.PaginationParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Len(t, comments, 2)
	require.Equal(t, "Newest", comments[0].Content)
	require.NoError(t, mock.ExpectationsWereMet())
}
