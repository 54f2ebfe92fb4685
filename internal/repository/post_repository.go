package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"blogapp/internal/database"
	"blogapp/internal/models"
)

type postRepository struct {
	db *database.DB
}

func NewPostRepository(db *database.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	q, err := r.db.QueryerFrom(ctx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO posts (title, content, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err = sqlx.GetContext(ctx, q, post, query, post.Title, post.Content, post.UserID)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (*models.PostWithAuthor, error) {
	q, err := r.db.QueryerFrom(ctx)
	if err != nil {
		return nil, err
	}

	var post models.PostWithAuthor

	// LEFT JOIN so a post whose owner row is gone still renders, with an
	// empty author name.
	query := `
		SELECT p.id, p.title, COALESCE(p.content, '') AS content, p.user_id, p.created_at,
		       COALESCE(u.username, '') AS username
		FROM posts p
		LEFT JOIN users u ON p.user_id = u.id
		WHERE p.id = $1
	`

	err = sqlx.GetContext(ctx, q, &post, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

func (r *postRepository) ListRecent(ctx context.Context) ([]models.PostWithAuthor, error) {
	q, err := r.db.QueryerFrom(ctx)
	if err != nil {
		return nil, err
	}

	posts := []models.PostWithAuthor{}

	query := `
		SELECT p.id, p.title, COALESCE(p.content, '') AS content, p.user_id, p.created_at,
		       COALESCE(u.username, '') AS username
		FROM posts p
		LEFT JOIN users u ON p.user_id = u.id
		ORDER BY p.created_at DESC
	`

	err = sqlx.SelectContext(ctx, q, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}
