package handlers

import (
	"net/http"
	"time"
)

// SessionCookieName is the signed session cookie. It carries a single
// token whose only payload is the authenticated user id.
const SessionCookieName = "session"

func SetSessionCookie(w http.ResponseWriter, token string, maxAge time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// startSession replaces whatever session the client held with a fresh
// token for the given user.
func (h *Handlers) startSession(w http.ResponseWriter, userID int64) error {
	token, err := h.AuthService.IssueSessionToken(userID)
	if err != nil {
		return err
	}
	SetSessionCookie(w, token, h.Cfg.SessionDuration, h.Cfg.CookieSecure)
	return nil
}

func (h *Handlers) endSession(w http.ResponseWriter) {
	ClearSessionCookie(w, h.Cfg.CookieSecure)
}
