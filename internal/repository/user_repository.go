package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"blogapp/internal/database"
	"blogapp/internal/models"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) UserRepository {
	return &userRepository{db: db}
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	q, err := r.db.QueryerFrom(ctx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err = sqlx.GetContext(ctx, q, user, query, user.Username, user.Email, user.PasswordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user %q: %w", user.Username, ErrDuplicate)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	q, err := r.db.QueryerFrom(ctx)
	if err != nil {
		return nil, err
	}

	var user models.User

	query := `SELECT id, username, email, password_hash, created_at FROM users WHERE id = $1`

	err = sqlx.GetContext(ctx, q, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	q, err := r.db.QueryerFrom(ctx)
	if err != nil {
		return nil, err
	}

	var user models.User

	query := `SELECT id, username, email, password_hash, created_at FROM users WHERE username = $1`

	err = sqlx.GetContext(ctx, q, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %q: %w", username, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return &user, nil
}

func (r *userRepository) Exists(ctx context.Context, username, email string) (bool, error) {
	q, err := r.db.QueryerFrom(ctx)
	if err != nil {
		return false, err
	}

	var count int

	query := `SELECT COUNT(*) FROM users WHERE username = $1 OR email = $2`

	err = sqlx.GetContext(ctx, q, &count, query, username, email)
	if err != nil {
		return false, fmt.Errorf("failed to check existing user: %w", err)
	}

	return count > 0, nil
}
