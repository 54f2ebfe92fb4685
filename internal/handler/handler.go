package handlers

import (
	"github.com/go-playground/validator/v10"

	"blogapp/internal/config"
	"blogapp/internal/database"
	"blogapp/internal/repository"
	"blogapp/internal/service"
)

type Handlers struct {
	AuthService service.AuthService
	PostService service.PostService
	UserRepo    repository.UserRepository
	PostRepo    repository.PostRepository
	DB          *database.DB
	Cfg         *config.Config
	Validate    *validator.Validate
}

func NewHandlers(repo *repository.Repository, services *service.Service, db *database.DB, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthService: services.Auth,
		PostService: services.Post,
		UserRepo:    repo.User,
		PostRepo:    repo.Post,
		DB:          db,
		Cfg:         cfg,
		Validate:    validator.New(),
	}
}
