package domain

import (
	"context"
	"time"
)

// Share types accepted by the share log.
const (
	ShareTypeSocialMedia = "social_media"
	ShareTypeEmail       = "email"
)

// EventShare logs that an event was shared through some channel.
// swagger:model EventShare
type EventShare struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"event_id"`
	ShareType string    `json:"share_type"`
	Recipient *string   `json:"recipient,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewEventShare returns a new EventShare. ID is set by the repository on create.
func NewEventShare(eventID int64, shareType string, recipient *string, createdAt time.Time) *EventShare {
	return &EventShare{
		EventID:   eventID,
		ShareType: shareType,
		Recipient: recipient,
		CreatedAt: createdAt,
	}
}

// ShareRepository defines storage operations for event share logs.
type ShareRepository interface {
	Create(ctx context.Context, share *EventShare) error
}

// SocialService defines comment and share operations.
type SocialService interface {
	CreateComment(ctx context.Context, userID, eventID int64, content string, rating int) (*CommentWithAuthor, error)
	ListEventComments(ctx context.Context, eventID int64, params PaginationParams) ([]*CommentWithAuthor, int, error)
	LogEventShare(ctx context.Context, eventID int64, shareType string, recipient *string) (*EventShare, error)
}
