package domain

import (
	"context"
	"time"
)

// Comment is a user's comment and rating on an event.
// swagger:model Comment
type Comment struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	EventID   int64     `json:"event_id"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// NewComment returns a new Comment. ID is set by the repository on create.
func NewComment(userID, eventID int64, content string, rating int, createdAt time.Time) *Comment {
	return &Comment{
		UserID:    userID,
		EventID:   eventID,
		Content:   content,
		Rating:    rating,
		CreatedAt: createdAt,
	}
}

// CommentWithAuthor bundles a comment with the author's display fields.
// swagger:model CommentWithAuthor
type CommentWithAuthor struct {
	Comment
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

// CommentRepository defines storage operations for event comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	GetWithAuthor(ctx context.Context, id int64) (*CommentWithAuthor, error)
	// ListByEventID returns the event's comments newest first, plus the total count.
	ListByEventID(ctx context.Context, eventID int64, params PaginationParams) ([]*CommentWithAuthor, int, error)
}
