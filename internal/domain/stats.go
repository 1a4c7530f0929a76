package domain

import "context"

// UserStats aggregates a user's activity counters.
// swagger:model UserStats
type UserStats struct {
	EventsAttended  int `json:"events_attended"`
	EventsOrganized int `json:"events_organized"`
	CommentsPosted  int `json:"comments_posted"`
	UpcomingEvents  int `json:"upcoming_events"`
}

// EventStats aggregates an event's activity counters.
// swagger:model EventStats
type EventStats struct {
	TotalAttendees int     `json:"total_attendees"`
	TotalComments  int     `json:"total_comments"`
	AverageRating  float64 `json:"average_rating"`
	TotalShares    int     `json:"total_shares"`
}

// StatsRepository defines the aggregate queries backing the stats endpoints.
type StatsRepository interface {
	UserStats(ctx context.Context, userID int64) (*UserStats, error)
	EventStats(ctx context.Context, eventID int64) (*EventStats, error)
}

// StatsService defines the business logic for the stats endpoints.
type StatsService interface {
	GetUserStats(ctx context.Context, userID int64) (*UserStats, error)
	GetEventStats(ctx context.Context, eventID int64) (*EventStats, error)
}
