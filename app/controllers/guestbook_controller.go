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

// GuestbookController handles the guestbook page and signed posts.
type GuestbookController struct {
	guestbookService *services.GuestbookService
	sessions         *auth.Manager
	templates        map[string]*template.Template
}

// SetService sets the guestbook service for testing
func (gc *GuestbookController) SetService(service *services.GuestbookService) {
	gc.guestbookService = service
}

// NewGuestbookControllerWithDB creates a new GuestbookController with a DB instance
func NewGuestbookControllerWithDB(db *badger.DB, sessions *auth.Manager, basePath string) *GuestbookController {
	postRepo := repositories.NewBadgerPostRepository(db)

	return &GuestbookController{
		guestbookService: services.NewGuestbookService(postRepo),
		sessions:         sessions,
		templates:        loadGuestbookTemplates(basePath),
	}
}

// loadGuestbookTemplates loads and parses all templates
func loadGuestbookTemplates(basePath string) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	templates["index"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/guestbook/index.html"),
	))
	return templates
}

type guestbookPage struct {
	Base
	Posts  []*models.Post
	Form   url.Values
	Errors map[string]string
}

// Index displays the guestbook with the newest posts first
func (gc *GuestbookController) Index(w http.ResponseWriter, r *http.Request) {
	gc.renderIndex(w, r, url.Values{}, nil)
}

// Create handles guestbook form submission. The author is always the
// logged-in user, whatever the form claims.
func (gc *GuestbookController) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFrom(r.Context())
	if !ok {
		http.Redirect(w, r, auth.LoginURL(r.URL.Path), http.StatusFound)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	comment := strings.TrimSpace(r.FormValue("comment"))

	if _, err := gc.guestbookService.CreatePost(user, comment); err != nil {
		gc.renderIndex(w, r, r.PostForm, fieldErrors(err))
		return
	}

	http.Redirect(w, r, "/guestbook/", http.StatusSeeOther)
}

func (gc *GuestbookController) renderIndex(w http.ResponseWriter, r *http.Request, form url.Values, errs map[string]string) {
	posts, err := gc.guestbookService.ListPosts()
	if err != nil {
		log.Error().Err(err).Msg("failed to list guestbook posts")
		http.Error(w, "Failed to load guestbook", http.StatusInternalServerError)
		return
	}

	data := guestbookPage{
		Base:   newBase(gc.sessions, w, r),
		Posts:  posts,
		Form:   form,
		Errors: errs,
	}
	render(w, gc.templates["index"], data)
}
