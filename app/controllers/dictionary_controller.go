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

// DictionaryController handles word search and new entries.
type DictionaryController struct {
	dictionaryService *services.DictionaryService
	sessions          *auth.Manager
	templates         map[string]*template.Template
}

// SetService sets the dictionary service for testing
func (dc *DictionaryController) SetService(service *services.DictionaryService) {
	dc.dictionaryService = service
}

// NewDictionaryControllerWithDB creates a new DictionaryController with a DB instance
func NewDictionaryControllerWithDB(db *badger.DB, sessions *auth.Manager, basePath string) *DictionaryController {
	entryRepo := repositories.NewBadgerEntryRepository(db)

	return &DictionaryController{
		dictionaryService: services.NewDictionaryService(entryRepo),
		sessions:          sessions,
		templates:         loadDictionaryTemplates(basePath),
	}
}

// loadDictionaryTemplates loads and parses all templates
func loadDictionaryTemplates(basePath string) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	templates["index"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/dictionary/index.html"),
	))
	templates["add"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/dictionary/add.html"),
	))
	return templates
}

type dictionaryIndexPage struct {
	Base
	Query   string
	Entries []*models.Entry
}

type dictionaryAddPage struct {
	Base
	Form   url.Values
	Errors map[string]string
}

// Search displays the search form and any matching entries
func (dc *DictionaryController) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("word"))

	entries, err := dc.dictionaryService.Search(query)
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("dictionary search failed")
		http.Error(w, "Failed to search dictionary", http.StatusInternalServerError)
		return
	}

	data := dictionaryIndexPage{
		Base:    newBase(dc.sessions, w, r),
		Query:   query,
		Entries: entries,
	}
	render(w, dc.templates["index"], data)
}

// AddForm displays the new entry form
func (dc *DictionaryController) AddForm(w http.ResponseWriter, r *http.Request) {
	data := dictionaryAddPage{
		Base: newBase(dc.sessions, w, r),
		Form: url.Values{},
	}
	render(w, dc.templates["add"], data)
}

// Add handles new entry form submission
func (dc *DictionaryController) Add(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	entry := &models.Entry{
		Word:       strings.TrimSpace(r.FormValue("word")),
		Definition: strings.TrimSpace(r.FormValue("definition")),
	}

	if err := dc.dictionaryService.AddEntry(entry); err != nil {
		data := dictionaryAddPage{
			Base:   newBase(dc.sessions, w, r),
			Form:   r.PostForm,
			Errors: fieldErrors(err),
		}
		render(w, dc.templates["add"], data)
		return
	}

	dc.sessions.AddFlash(w, r, "Word added to the dictionary.")
	http.Redirect(w, r, "/dictionary/", http.StatusSeeOther)
}
