package postgres

import (
	"context"
	"database/sql"

	"eventhub/internal/domain"
)

type shareRepository struct {
	DB *sql.DB
}

func NewShareRepository(db *sql.DB) domain.ShareRepository {
	return &shareRepository{
		DB: db,
	}
}

func (r *shareRepository) Create(ctx context.Context, s *domain.EventShare) error {
	query := `
		INSERT INTO event_shares (event_id, share_type, recipient, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	var recipient sql.NullString
	if s.Recipient != nil {
		recipient = sql.NullString{String: *s.Recipient, Valid: true}
	}
	return r.DB.QueryRowContext(ctx, query, s.EventID, s.ShareType, recipient, s.CreatedAt).
		Scan(&s.ID)
}
