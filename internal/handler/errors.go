package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"blogapp/internal/database"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func isAPIRequest(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/")
}

// RenderError writes the error page for the given status. API paths get a
// JSON body instead of markup. The body never carries internal detail.
func RenderError(w http.ResponseWriter, r *http.Request, status int) {
	if isAPIRequest(r) {
		WriteError(w, http.StatusText(status), status)
		return
	}

	page := "500.html"
	if status == http.StatusNotFound {
		page = "404.html"
	}
	render(w, r, status, page, templateData{})
}

// NotFound is the router's fallback handler.
func NotFound(w http.ResponseWriter, r *http.Request) {
	log.Printf("404: %s %s", r.Method, r.URL.Path)
	RenderError(w, r, http.StatusNotFound)
}

// serverError logs the cause and answers with a generic error page. A
// failure to acquire a database connection maps to 503, anything else
// to 500.
func (h *Handlers) serverError(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("server error on %s %s: %v", r.Method, r.URL.Path, err)

	status := http.StatusInternalServerError
	if errors.Is(err, database.ErrUnavailable) {
		status = http.StatusServiceUnavailable
	}
	RenderError(w, r, status)
}
