package repository

import (
	"context"
	"errors"

	"blogapp/internal/database"
	"blogapp/internal/models"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Exists(ctx context.Context, username, email string) (bool, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id int64) (*models.PostWithAuthor, error)
	ListRecent(ctx context.Context) ([]models.PostWithAuthor, error)
}

type Repository struct {
	User UserRepository
	Post PostRepository
}

func NewRepository(db *database.DB) *Repository {
	return &Repository{
		User: NewUserRepository(db),
		Post: NewPostRepository(db),
	}
}
