package middleware

import (
	"errors"
	"log"
	"net/http"

	"blogapp/internal/database"
	handlers "blogapp/internal/handler"
	"blogapp/internal/models"
	"blogapp/internal/repository"
	"blogapp/internal/service"
)

// CurrentUserMiddleware resolves the session cookie to a user row before
// any handler runs. An absent, invalid or stale session leaves the request
// anonymous; only an unreachable database fails the request.
func CurrentUserMiddleware(auth service.AuthService, users repository.UserRepository) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(handlers.SessionCookieName)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := auth.ParseSessionToken(cookie.Value)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.GetByID(r.Context(), userID)
			if err != nil {
				// A session pointing at a missing row is treated as
				// anonymous, not as an error.
				if errors.Is(err, repository.ErrNotFound) {
					next.ServeHTTP(w, r)
					return
				}

				log.Printf("failed to load current user %d: %v", userID, err)
				status := http.StatusInternalServerError
				if errors.Is(err, database.ErrUnavailable) {
					status = http.StatusServiceUnavailable
				}
				handlers.RenderError(w, r, status)
				return
			}

			next.ServeHTTP(w, r.WithContext(models.WithUser(r.Context(), user)))
		})
	}
}

// RequireAuth guards a handler: anonymous requests are sent to the login
// page with a notice, authenticated ones pass through unchanged. Identity
// comes from the context populated by CurrentUserMiddleware, with a direct
// cookie check as fallback for routes wired without the loader.
func RequireAuth(auth service.AuthService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if models.UserFrom(r.Context()) == nil && !hasValidSession(auth, r) {
				handlers.SetFlash(w, "You need to be logged in to view this page.")
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func hasValidSession(auth service.AuthService, r *http.Request) bool {
	cookie, err := r.Cookie(handlers.SessionCookieName)
	if err != nil {
		return false
	}
	_, err = auth.ParseSessionToken(cookie.Value)
	return err == nil
}
