package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"blogapp/internal/models"
)

//go:embed templates
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"humantime": humanize.Time,
}

// templates maps a page file name to the template set (base layout + page).
var templates = mustTemplates()

func mustTemplates() map[string]*template.Template {
	cache := map[string]*template.Template{}

	pages, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		log.Fatalf("failed to glob templates: %v", err)
	}

	for _, page := range pages {
		name := filepath.Base(page)

		ts, err := template.New(name).Funcs(templateFuncs).ParseFS(templateFS, "templates/base.html", page)
		if err != nil {
			log.Fatalf("failed to parse template %s: %v", page, err)
		}

		cache[name] = ts
	}

	return cache
}

type templateData struct {
	CurrentUser *models.User
	Flash       string
	Error       string
	Form        map[string]string
	Posts       []models.PostWithAuthor
	Post        *models.PostWithAuthor
}

// render executes a page template into a buffer first, so a template error
// never leaves a half-written response body behind.
func render(w http.ResponseWriter, r *http.Request, status int, page string, data templateData) {
	ts, ok := templates[page]
	if !ok {
		log.Printf("template %s does not exist", page)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	data.CurrentUser = models.UserFrom(r.Context())
	if data.Flash == "" {
		data.Flash = PopFlash(w, r)
	}

	var buf bytes.Buffer
	if err := ts.ExecuteTemplate(&buf, "base.html", data); err != nil {
		log.Printf("failed to render template %s: %v", page, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
