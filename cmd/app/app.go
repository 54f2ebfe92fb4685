package app

import (
	"log"

	"blogapp/internal/config"
	"blogapp/internal/database"
	"blogapp/internal/repository"
	"blogapp/internal/service"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	repo := repository.NewRepository(db)
	services := service.NewService(repo, cfg)

	return db, repo, services
}
