package controllers

import (
	"html/template"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog/log"

	"minisite/app/auth"
	"minisite/app/models"
	"minisite/app/repositories"
	"minisite/app/services"
)

// FeedbackController handles the feedback form.
type FeedbackController struct {
	feedbackService *services.FeedbackService
	sessions        *auth.Manager
	templates       map[string]*template.Template
}

// SetService sets the feedback service for testing
func (fc *FeedbackController) SetService(service *services.FeedbackService) {
	fc.feedbackService = service
}

// NewFeedbackControllerWithDB creates a new FeedbackController with a DB instance
func NewFeedbackControllerWithDB(db *badger.DB, sessions *auth.Manager, basePath string) *FeedbackController {
	topicRepo := repositories.NewBadgerTopicRepository(db)
	feedbackRepo := repositories.NewBadgerFeedbackRepository(db)

	return &FeedbackController{
		feedbackService: services.NewFeedbackService(topicRepo, feedbackRepo),
		sessions:        sessions,
		templates:       loadFeedbackTemplates(basePath),
	}
}

// loadFeedbackTemplates loads and parses all templates
func loadFeedbackTemplates(basePath string) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	templates["form"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/feedback/form.html"),
	))
	return templates
}

type feedbackPage struct {
	Base
	Topics []*models.Topic
	Form   url.Values
	Errors map[string]string
}

// Form displays the feedback form
func (fc *FeedbackController) Form(w http.ResponseWriter, r *http.Request) {
	fc.renderForm(w, r, url.Values{}, nil)
}

// Submit handles feedback form submission
func (fc *FeedbackController) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	errs := make(map[string]string)

	var topicID, rating int
	var err error

	if raw := r.FormValue("topic"); raw == "" {
		errs["topic"] = "This field is required."
	} else if topicID, err = strconv.Atoi(raw); err != nil {
		errs["topic"] = "Select a valid choice. That choice is not one of the available choices."
	}

	if raw := strings.TrimSpace(r.FormValue("rating")); raw == "" {
		errs["rating"] = "This field is required."
	} else if rating, err = strconv.Atoi(raw); err != nil {
		errs["rating"] = "Enter a whole number."
	}

	if len(errs) == 0 {
		feedback := &models.Feedback{
			TopicID: topicID,
			Rating:  rating,
			Good:    strings.TrimSpace(r.FormValue("good")),
			Bad:     strings.TrimSpace(r.FormValue("bad")),
		}
		err := fc.feedbackService.CreateFeedback(feedback)
		switch {
		case err == nil:
			fc.sessions.AddFlash(w, r, "Thanks for your feedback.")
			http.Redirect(w, r, "/feedback/", http.StatusSeeOther)
			return
		case err == services.ErrUnknownTopic:
			errs["topic"] = "Select a valid choice. That choice is not one of the available choices."
		default:
			for field, msg := range fieldErrors(err) {
				errs[field] = msg
			}
		}
	}

	fc.renderForm(w, r, r.PostForm, errs)
}

func (fc *FeedbackController) renderForm(w http.ResponseWriter, r *http.Request, form url.Values, errs map[string]string) {
	topics, err := fc.feedbackService.ListTopics()
	if err != nil {
		log.Error().Err(err).Msg("failed to list feedback topics")
		http.Error(w, "Failed to load feedback form", http.StatusInternalServerError)
		return
	}

	data := feedbackPage{
		Base:   newBase(fc.sessions, w, r),
		Topics: topics,
		Form:   form,
		Errors: errs,
	}
	render(w, fc.templates["form"], data)
}
