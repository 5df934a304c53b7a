package controllers

import (
	"html/template"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"minisite/app/auth"
	"minisite/app/repositories"
	"minisite/app/services"
)

// AccountController handles signup, login and logout.
type AccountController struct {
	accountService *services.AccountService
	sessions       *auth.Manager
	templates      map[string]*template.Template
}

// SetService sets the account service for testing
func (ac *AccountController) SetService(service *services.AccountService) {
	ac.accountService = service
}

// NewAccountControllerWithDB creates a new AccountController with a DB instance
func NewAccountControllerWithDB(db *badger.DB, sessions *auth.Manager, basePath string) *AccountController {
	userRepo := repositories.NewBadgerUserRepository(db)

	return &AccountController{
		accountService: services.NewAccountService(userRepo),
		sessions:       sessions,
		templates:      loadAccountTemplates(basePath),
	}
}

// loadAccountTemplates loads and parses all templates
func loadAccountTemplates(basePath string) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	templates["signup"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/accounts/signup.html"),
	))
	templates["login"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/accounts/login.html"),
	))
	return templates
}

type accountPage struct {
	Base
	Form   url.Values
	Errors map[string]string
	Next   string
}

// SignupForm displays the signup form
func (ac *AccountController) SignupForm(w http.ResponseWriter, r *http.Request) {
	data := accountPage{
		Base: newBase(ac.sessions, w, r),
		Form: url.Values{},
	}
	render(w, ac.templates["signup"], data)
}

// Signup handles signup form submission
func (ac *AccountController) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password1 := r.FormValue("password1")
	password2 := r.FormValue("password2")

	errs := make(map[string]string)
	if username == "" {
		errs["username"] = "This field is required."
	}
	if password1 == "" {
		errs["password1"] = "This field is required."
	} else if len(password1) < 8 {
		errs["password1"] = "This password is too short. It must contain at least 8 characters."
	}
	if password2 != password1 {
		errs["password2"] = "The two password fields didn't match."
	}

	if len(errs) == 0 {
		_, err := ac.accountService.Signup(username, password1)
		switch {
		case err == nil:
			// fall through to redirect below
		case err == repositories.ErrUsernameTaken:
			errs["username"] = "A user with that username already exists."
		default:
			for field, msg := range fieldErrors(err) {
				errs[field] = msg
			}
		}
	}

	if len(errs) > 0 {
		data := accountPage{
			Base:   newBase(ac.sessions, w, r),
			Form:   r.PostForm,
			Errors: errs,
		}
		render(w, ac.templates["signup"], data)
		return
	}

	ac.sessions.AddFlash(w, r, "Account created. Please log in.")
	http.Redirect(w, r, "/login/", http.StatusSeeOther)
}

// LoginForm displays the login form
func (ac *AccountController) LoginForm(w http.ResponseWriter, r *http.Request) {
	data := accountPage{
		Base: newBase(ac.sessions, w, r),
		Form: url.Values{},
		Next: r.URL.Query().Get("next"),
	}
	render(w, ac.templates["login"], data)
}

// Login handles login form submission
func (ac *AccountController) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	next := r.FormValue("next")

	user, err := ac.accountService.Authenticate(username, password)
	if err != nil {
		data := accountPage{
			Base: newBase(ac.sessions, w, r),
			Form: r.PostForm,
			Errors: map[string]string{
				nonFieldKey: "Please enter a correct username and password.",
			},
			Next: next,
		}
		render(w, ac.templates["login"], data)
		return
	}

	if err := ac.sessions.Login(w, r, user); err != nil {
		http.Error(w, "Failed to start session: "+err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, auth.SafeNext(next), http.StatusSeeOther)
}

// Logout handles logout form submission
func (ac *AccountController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := ac.sessions.Logout(w, r); err != nil {
		http.Error(w, "Failed to end session: "+err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
