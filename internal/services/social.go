package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventhub/internal/domain"
)

type socialService struct {
	eventRepo   domain.EventRepository
	commentRepo domain.CommentRepository
	shareRepo   domain.ShareRepository
}

// NewSocialService creates a SocialService with the given repositories.
func NewSocialService(eventRepo domain.EventRepository, commentRepo domain.CommentRepository, shareRepo domain.ShareRepository) domain.SocialService {
	return &socialService{
		eventRepo:   eventRepo,
		commentRepo: commentRepo,
		shareRepo:   shareRepo,
	}
}

func (s *socialService) CreateComment(ctx context.Context, userID, eventID int64, content string, rating int) (*domain.CommentWithAuthor, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", domain.ErrInvalidInput)
	}
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrInvalidInput)
	}
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	comment := domain.NewComment(userID, eventID, content, rating, time.Now())
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	// Re-read joined with the author row so the response carries display fields.
	withAuthor, err := s.commentRepo.GetWithAuthor(ctx, comment.ID)
	if err != nil {
		return nil, fmt.Errorf("get created comment: %w", err)
	}
	return withAuthor, nil
}

func (s *socialService) ListEventComments(ctx context.Context, eventID int64, params domain.PaginationParams) ([]*domain.CommentWithAuthor, int, error) {
	comments, total, err := s.commentRepo.ListByEventID(ctx, eventID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list comments: %w", err)
	}
	if comments == nil {
		comments = []*domain.CommentWithAuthor{}
	}
	return comments, total, nil
}

func (s *socialService) LogEventShare(ctx context.Context, eventID int64, shareType string, recipient *string) (*domain.EventShare, error) {
	if shareType != domain.ShareTypeSocialMedia && shareType != domain.ShareTypeEmail {
		return nil, fmt.Errorf("%w: unknown share_type %q", domain.ErrInvalidInput, shareType)
	}
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	share := domain.NewEventShare(eventID, shareType, recipient, time.Now())
	if err := s.shareRepo.Create(ctx, share); err != nil {
		return nil, fmt.Errorf("log event share: %w", err)
	}
	return share, nil
}
