package controllers

import (
	"html/template"
	"net/http"
	"path/filepath"

	"minisite/app/auth"
)

// HomeController handles the landing page.
type HomeController struct {
	sessions  *auth.Manager
	templates map[string]*template.Template
}

// NewHomeController creates a new HomeController
func NewHomeController(sessions *auth.Manager, basePath string) *HomeController {
	return &HomeController{
		sessions:  sessions,
		templates: loadHomeTemplates(basePath),
	}
}

// loadHomeTemplates loads and parses all templates
func loadHomeTemplates(basePath string) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	templates["index"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/home.html"),
	))
	return templates
}

// Index displays the landing page
func (hc *HomeController) Index(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Base
	}{
		Base: newBase(hc.sessions, w, r),
	}
	render(w, hc.templates["index"], data)
}
