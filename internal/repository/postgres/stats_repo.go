package postgres

import (
	"context"
	"database/sql"

	"eventhub/internal/domain"
)

type statsRepository struct {
	DB *sql.DB
}

func NewStatsRepository(db *sql.DB) domain.StatsRepository {
	return &statsRepository{
		DB: db,
	}
}

func (r *statsRepository) UserStats(ctx context.Context, userID int64) (*domain.UserStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM event_attendance WHERE user_id = $1),
			(SELECT COUNT(*) FROM events WHERE organizer_id = $1),
			(SELECT COUNT(*) FROM comments WHERE user_id = $1),
			(SELECT COUNT(*) FROM event_attendance a JOIN events e ON e.id = a.event_id
				WHERE a.user_id = $1 AND e.is_active = TRUE AND e.date >= NOW())
	`
	s := &domain.UserStats{}
	err := r.DB.QueryRowContext(ctx, query, userID).
		Scan(&s.EventsAttended, &s.EventsOrganized, &s.CommentsPosted, &s.UpcomingEvents)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *statsRepository) EventStats(ctx context.Context, eventID int64) (*domain.EventStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM event_attendance WHERE event_id = $1),
			(SELECT COUNT(*) FROM comments WHERE event_id = $1),
			(SELECT COALESCE(AVG(rating), 0) FROM comments WHERE event_id = $1),
			(SELECT COUNT(*) FROM event_shares WHERE event_id = $1)
	`
	s := &domain.EventStats{}
	err := r.DB.QueryRowContext(ctx, query, eventID).
		Scan(&s.TotalAttendees, &s.TotalComments, &s.AverageRating, &s.TotalShares)
	if err != nil {
		return nil, err
	}
	return s, nil
}
