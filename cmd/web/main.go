package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"blogapp/cmd/app"
	"blogapp/internal/config"
	handlers "blogapp/internal/handler"
	"blogapp/internal/middleware"
)

func main() {
	cfg := config.LoadConfig()

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, db, cfg)

	r := mux.NewRouter()

	r.HandleFunc("/", handler.Home).Methods(http.MethodGet)

	r.HandleFunc("/register", handler.RegisterForm).Methods(http.MethodGet)
	r.HandleFunc("/register", handler.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", handler.LoginForm).Methods(http.MethodGet)
	r.HandleFunc("/login", handler.Login).Methods(http.MethodPost)
	r.HandleFunc("/logout", handler.Logout).Methods(http.MethodGet)

	requireAuth := middleware.RequireAuth(services.Auth)
	r.Handle("/profile", requireAuth(http.HandlerFunc(handler.Profile))).Methods(http.MethodGet)

	r.HandleFunc("/posts", handler.PostList).Methods(http.MethodGet)
	r.Handle("/posts/create", requireAuth(http.HandlerFunc(handler.PostCreateForm))).Methods(http.MethodGet)
	r.Handle("/posts/create", requireAuth(http.HandlerFunc(handler.PostCreate))).Methods(http.MethodPost)
	r.HandleFunc("/posts/{id:[0-9]+}", handler.PostDetail).Methods(http.MethodGet)

	r.HandleFunc("/api/posts", handler.APIPostList).Methods(http.MethodGet)
	r.HandleFunc("/api/posts/{id:[0-9]+}", handler.APIPostDetail).Methods(http.MethodGet)

	r.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(handlers.NotFound)

	handlerChain := middleware.Chain(
		r,
		middleware.CurrentUserMiddleware(services.Auth, repo.User),
		middleware.RequestConnMiddleware(db),
		middleware.RecoveryMiddleware,
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Server listening on %s", addr)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
