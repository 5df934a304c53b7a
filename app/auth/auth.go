package auth

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/sessions"

	"minisite/app/models"
	"minisite/app/repositories"
)

// SessionName is the name of the session cookie.
const SessionName = "sessionid"

const userIDKey = "user_id"

type contextKey string

const userContextKey contextKey = "user"

// Manager wraps the cookie session store and answers who is logged in.
type Manager struct {
	store    *sessions.CookieStore
	userRepo repositories.UserRepository
}

// NewManager creates a Manager signing session cookies with key.
func NewManager(key []byte, secure bool, userRepo repositories.UserRepository) *Manager {
	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 14,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store, userRepo: userRepo}
}

// Login records the user in the session cookie.
func (m *Manager) Login(w http.ResponseWriter, r *http.Request, user *models.User) error {
	session, _ := m.store.Get(r, SessionName)
	session.Values[userIDKey] = user.ID
	return session.Save(r, w)
}

// Logout drops the session.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, SessionName)
	delete(session.Values, userIDKey)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// CurrentUser loads the logged-in user, if any. A session pointing at a user
// that no longer exists counts as logged out.
func (m *Manager) CurrentUser(r *http.Request) (*models.User, bool) {
	session, err := m.store.Get(r, SessionName)
	if err != nil {
		return nil, false
	}
	id, ok := session.Values[userIDKey].(int)
	if !ok {
		return nil, false
	}
	user, err := m.userRepo.GetByID(id)
	if err != nil {
		return nil, false
	}
	return user, true
}

// AddFlash queues a one-time notice shown on the next page render.
func (m *Manager) AddFlash(w http.ResponseWriter, r *http.Request, message string) error {
	session, _ := m.store.Get(r, SessionName)
	session.AddFlash(message)
	return session.Save(r, w)
}

// Flashes drains any queued notices.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) []string {
	session, err := m.store.Get(r, SessionName)
	if err != nil {
		return nil
	}
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	// Reading flashes removes them; persist that
	_ = session.Save(r, w)

	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}

// RequireLogin redirects anonymous requests to the login page, carrying the
// original path in the next parameter. Logged-in requests pass through with
// the user attached to the context.
func (m *Manager) RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := m.CurrentUser(r)
		if !ok {
			http.Redirect(w, r, LoginURL(r.URL.Path), http.StatusFound)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

// LoginURL returns the login page path with next set to target.
func LoginURL(target string) string {
	return "/login/?next=" + url.QueryEscape(target)
}

// WithUser attaches a user to the context.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFrom extracts the user RequireLogin attached, if any.
func UserFrom(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey).(*models.User)
	return user, ok
}

// SafeNext validates a post-login redirect target, allowing only site-local
// paths. Anything else falls back to the home page.
func SafeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") {
		return "/"
	}
	if strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}
