package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventhub/internal/domain"
)

type commentRepository struct {
	DB *sql.DB
}

func NewCommentRepository(db *sql.DB) domain.CommentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (r *commentRepository) Create(ctx context.Context, c *domain.Comment) error {
	query := `
		INSERT INTO comments (user_id, event_id, content, rating, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, c.UserID, c.EventID, c.Content, c.Rating, c.CreatedAt).
		Scan(&c.ID)
}

func (r *commentRepository) GetWithAuthor(ctx context.Context, id int64) (*domain.CommentWithAuthor, error) {
	query := `
		SELECT c.id, c.user_id, c.event_id, c.content, c.rating, c.created_at, u.username, u.full_name
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.id = $1
	`
	c := &domain.CommentWithAuthor{}
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&c.ID, &c.UserID, &c.EventID, &c.Content, &c.Rating, &c.CreatedAt, &c.Username, &c.FullName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *commentRepository) ListByEventID(ctx context.Context, eventID int64, params domain.PaginationParams) ([]*domain.CommentWithAuthor, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM comments WHERE event_id = $1`
	if err := r.DB.QueryRowContext(ctx, countQuery, eventID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT c.id, c.user_id, c.event_id, c.content, c.rating, c.created_at, u.username, u.full_name
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.event_id = $1
		ORDER BY c.created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	comments := make([]*domain.CommentWithAuthor, 0)
	for rows.Next() {
		c := &domain.CommentWithAuthor{}
		if err := rows.Scan(&c.ID, &c.UserID, &c.EventID, &c.Content, &c.Rating, &c.CreatedAt, &c.Username, &c.FullName); err != nil {
			return nil, 0, err
		}
		comments = append(comments, c)
	}
	return comments, total, rows.Err()
}
