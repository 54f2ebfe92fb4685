package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"unicode/utf8"

	"blogapp/internal/models"
	"blogapp/internal/repository"
)

// TitleMaxLen matches the VARCHAR(200) bound of posts.title.
const TitleMaxLen = 200

var (
	ErrTitleRequired = errors.New("title is required")
	ErrTitleTooLong  = errors.New("title is too long")
)

type PostService interface {
	CreatePost(ctx context.Context, title, content string, authorID int64) (*models.Post, error)
	ListPosts(ctx context.Context) ([]models.PostWithAuthor, error)
	GetPost(ctx context.Context, id int64) (*models.PostWithAuthor, error)
}

type postService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

func (s *postService) CreatePost(ctx context.Context, title, content string, authorID int64) (*models.Post, error) {
	title = strings.TrimSpace(title)

	if title == "" {
		return nil, ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > TitleMaxLen {
		return nil, ErrTitleTooLong
	}

	post := &models.Post{
		Title:   title,
		Content: content,
		UserID:  sql.NullInt64{Int64: authorID, Valid: true},
	}

	err := s.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (s *postService) ListPosts(ctx context.Context) ([]models.PostWithAuthor, error) {
	return s.postRepo.ListRecent(ctx)
}

func (s *postService) GetPost(ctx context.Context, id int64) (*models.PostWithAuthor, error) {
	return s.postRepo.GetByID(ctx, id)
}
