package controllers

import (
	"html/template"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog/log"

	"minisite/app/auth"
	"minisite/app/models"
	"minisite/app/repositories"
	"minisite/app/services"
)

// HelloController handles the message board demo pages.
type HelloController struct {
	helloService *services.HelloService
	sessions     *auth.Manager
	templates    map[string]*template.Template
}

// SetService sets the hello service for testing
func (hc *HelloController) SetService(service *services.HelloService) {
	hc.helloService = service
}

// NewHelloControllerWithDB creates a new HelloController with a DB instance
func NewHelloControllerWithDB(db *badger.DB, sessions *auth.Manager, basePath string) *HelloController {
	messageRepo := repositories.NewBadgerMessageRepository(db)

	return &HelloController{
		helloService: services.NewHelloService(messageRepo),
		sessions:     sessions,
		templates:    loadHelloTemplates(basePath),
	}
}

// loadHelloTemplates loads and parses all templates
func loadHelloTemplates(basePath string) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	templates["index"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/hello/index.html"),
	))
	templates["second"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/hello/second.html"),
	))
	return templates
}

type helloPage struct {
	Base
	Messages []*models.Message
	Form     url.Values
	Errors   map[string]string
}

// Index displays the message form and all saved messages
func (hc *HelloController) Index(w http.ResponseWriter, r *http.Request) {
	hc.renderPage(w, r, "index", url.Values{}, nil)
}

// Create handles message form submission
func (hc *HelloController) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	text := strings.TrimSpace(r.FormValue("message_text"))

	if _, err := hc.helloService.CreateMessage(text); err != nil {
		hc.renderPage(w, r, "index", r.PostForm, fieldErrors(err))
		return
	}

	http.Redirect(w, r, "/hello/", http.StatusSeeOther)
}

// Second displays the messages on their own page
func (hc *HelloController) Second(w http.ResponseWriter, r *http.Request) {
	hc.renderPage(w, r, "second", url.Values{}, nil)
}

func (hc *HelloController) renderPage(w http.ResponseWriter, r *http.Request, name string, form url.Values, errs map[string]string) {
	messages, err := hc.helloService.ListMessages()
	if err != nil {
		log.Error().Err(err).Msg("failed to list messages")
		http.Error(w, "Failed to load messages", http.StatusInternalServerError)
		return
	}

	data := helloPage{
		Base:     newBase(hc.sessions, w, r),
		Messages: messages,
		Form:     form,
		Errors:   errs,
	}
	render(w, hc.templates[name], data)
}
