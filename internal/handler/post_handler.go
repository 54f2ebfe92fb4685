package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"blogapp/internal/models"
	"blogapp/internal/repository"
	"blogapp/internal/service"
)

func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.ListPosts(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	render(w, r, http.StatusOK, "home.html", templateData{Posts: posts})
}

func (h *Handlers) PostList(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.ListPosts(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	render(w, r, http.StatusOK, "posts.html", templateData{Posts: posts})
}

func (h *Handlers) PostCreateForm(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, "post_create.html", templateData{})
}

func (h *Handlers) PostCreate(w http.ResponseWriter, r *http.Request) {
	user := models.UserFrom(r.Context())
	if user == nil {
		SetFlash(w, "You need to be logged in to view this page.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		RenderError(w, r, http.StatusBadRequest)
		return
	}

	title := r.PostFormValue("title")
	content := r.PostFormValue("content")

	_, err := h.PostService.CreatePost(r.Context(), title, content, user.ID)
	if err != nil {
		data := templateData{
			Form: map[string]string{"title": title, "content": content},
		}
		switch {
		case errors.Is(err, service.ErrTitleRequired):
			data.Error = "Title is required."
		case errors.Is(err, service.ErrTitleTooLong):
			data.Error = fmt.Sprintf("Title must be at most %d characters.", service.TitleMaxLen)
		default:
			h.serverError(w, r, err)
			return
		}
		render(w, r, http.StatusOK, "post_create.html", data)
		return
	}

	SetFlash(w, "Post created successfully!")
	http.Redirect(w, r, "/posts", http.StatusSeeOther)
}

func (h *Handlers) PostDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		RenderError(w, r, http.StatusNotFound)
		return
	}

	post, err := h.PostService.GetPost(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			RenderError(w, r, http.StatusNotFound)
			return
		}
		h.serverError(w, r, err)
		return
	}

	render(w, r, http.StatusOK, "post_detail.html", templateData{Post: post})
}
