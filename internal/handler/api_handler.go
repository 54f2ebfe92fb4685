package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"blogapp/internal/models"
	"blogapp/internal/repository"
)

type PostListResponse struct {
	Posts []models.PostWithAuthor `json:"posts"`
}

func (h *Handlers) APIPostList(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.ListPosts(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	writeJSON(w, PostListResponse{Posts: posts}, http.StatusOK)
}

func (h *Handlers) APIPostDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		WriteError(w, "Post not found", http.StatusNotFound)
		return
	}

	post, err := h.PostService.GetPost(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Post not found", http.StatusNotFound)
			return
		}
		h.serverError(w, r, err)
		return
	}

	writeJSON(w, post, http.StatusOK)
}
