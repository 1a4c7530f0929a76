package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventhub/internal/domain"
)

type socialAuthRepository struct {
	DB *sql.DB
}

func NewSocialAuthRepository(db *sql.DB) domain.SocialAuthRepository {
	return &socialAuthRepository{
		DB: db,
	}
}

func (r *socialAuthRepository) GetUserID(ctx context.Context, provider, providerID string) (int64, error) {
	query := `
		SELECT user_id
		FROM social_auth
		WHERE provider = $1 AND provider_id = $2
	`
	var userID int64
	err := r.DB.QueryRowContext(ctx, query, provider, providerID).Scan(&userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, err
	}
	return userID, nil
}

func (r *socialAuthRepository) CreateLink(ctx context.Context, userID int64, provider, providerID string) error {
	query := `
		INSERT INTO social_auth (user_id, provider, provider_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (provider, provider_id) DO NOTHING
	`
	_, err := r.DB.ExecContext(ctx, query, userID, provider, providerID)
	return err
}
