package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"blogapp/internal/models"
	"blogapp/internal/service"
)

type registerForm struct {
	Username string `validate:"required,min=3,max=80"`
	Email    string `validate:"required,email,max=120"`
	Password string `validate:"required,min=6"`
}

type loginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// formMessage turns the first validation failure into the user-visible
// notice the form re-renders with.
func formMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid input."
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required."
	case "email":
		return "Invalid email address."
	case "min":
		return fe.Field() + " is too short."
	case "max":
		return fe.Field() + " is too long."
	default:
		return "Invalid input."
	}
}

func (h *Handlers) RegisterForm(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, "register.html", templateData{})
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		RenderError(w, r, http.StatusBadRequest)
		return
	}

	form := registerForm{
		Username: r.PostFormValue("username"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	data := templateData{
		Form: map[string]string{
			"username": form.Username,
			"email":    form.Email,
		},
	}

	if err := h.Validate.Struct(form); err != nil {
		data.Error = formMessage(err)
		render(w, r, http.StatusOK, "register.html", data)
		return
	}

	_, err := h.AuthService.Register(r.Context(), form.Username, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			data.Error = "User with this username or email already exists."
			render(w, r, http.StatusOK, "register.html", data)
			return
		}
		h.serverError(w, r, err)
		return
	}

	SetFlash(w, "Registration successful! Please log in.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handlers) LoginForm(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, "login.html", templateData{})
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		RenderError(w, r, http.StatusBadRequest)
		return
	}

	form := loginForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	data := templateData{
		Form: map[string]string{"username": form.Username},
	}

	if err := h.Validate.Struct(form); err != nil {
		data.Error = "Incorrect username or password."
		render(w, r, http.StatusOK, "login.html", data)
		return
	}

	user, err := h.AuthService.Authenticate(r.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			data.Error = "Incorrect username or password."
			render(w, r, http.StatusOK, "login.html", data)
			return
		}
		h.serverError(w, r, err)
		return
	}

	if err := h.startSession(w, user.ID); err != nil {
		h.serverError(w, r, err)
		return
	}

	SetFlash(w, "Logged in successfully!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.endSession(w)
	SetFlash(w, "You have been logged out.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Profile is guarded by RequireAuth, so the context always carries a user
// here; the nil check is for direct use in tests.
func (h *Handlers) Profile(w http.ResponseWriter, r *http.Request) {
	if models.UserFrom(r.Context()) == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	render(w, r, http.StatusOK, "profile.html", templateData{})
}
