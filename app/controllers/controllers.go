package controllers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/rs/zerolog/log"

	"minisite/app/auth"
	"minisite/app/models"
)

// Base carries the template data every page needs: the logged-in user, any
// queued flash notices, and the CSRF form field.
type Base struct {
	User      *models.User
	Flashes   []string
	CSRFField template.HTML
}

// newBase assembles the shared template data for a request.
func newBase(sessions *auth.Manager, w http.ResponseWriter, r *http.Request) Base {
	// A handler behind RequireLogin already carries the user
	user, ok := auth.UserFrom(r.Context())
	if !ok {
		user, _ = sessions.CurrentUser(r)
	}
	return Base{
		User:      user,
		Flashes:   sessions.Flashes(w, r),
		CSRFField: csrf.TemplateField(r),
	}
}

// render executes the layout template with data.
func render(w http.ResponseWriter, tmpl *template.Template, data interface{}) {
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		log.Error().Err(err).Msg("template error")
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}

// nonFieldKey is the error map key for messages not tied to a single field.
const nonFieldKey = "__all__"

// fieldNameOverrides maps struct field names to the form field names the
// templates use, where they differ.
var fieldNameOverrides = map[string]string{
	"topicid":     "topic",
	"publishdate": "publish_date",
	"directorids": "directors",
	"genreids":    "genres",
	"text":        "message_text",
	"file":        "image",
}

// fieldErrors flattens validation failures into per-field form messages.
func fieldErrors(err error) map[string]string {
	errs := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs[nonFieldKey] = err.Error()
		return errs
	}

	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		// Slice elements validate as "directorids[2]"; report them
		// against the field itself.
		if i := strings.IndexByte(field, '['); i >= 0 {
			field = field[:i]
		}
		if override, ok := fieldNameOverrides[field]; ok {
			field = override
		}
		switch fe.Tag() {
		case "required":
			errs[field] = "This field is required."
		case "max":
			errs[field] = fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
		case "gte":
			errs[field] = fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
		case "lte":
			errs[field] = fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
		case "gt":
			errs[field] = "Select a valid choice."
		default:
			errs[field] = "Enter a valid value."
		}
	}
	return errs
}
