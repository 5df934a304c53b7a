package routes

import (
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"minisite/app/config"
)

// basePath points at the repository root so the real templates and
// static files are used.
const basePath = "../.."

func setupTestDB(t *testing.T) *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestConfig(t *testing.T) *config.Config {
	return &config.Config{
		Env:          "test",
		Addr:         ":0",
		DBPath:       t.TempDir(),
		MediaDir:     t.TempDir(),
		SecretKey:    config.RandomSecretKey(),
		CookieSecure: false,
	}
}

func setupTestRouter(t *testing.T, db *badger.DB) (http.Handler, *config.Config) {
	cfg := newTestConfig(t)
	return SetupWithPath(db, cfg, basePath), cfg
}

var csrfTokenRe = regexp.MustCompile(`name="csrfmiddlewaretoken" value="([^"]+)"`)

// browser drives the handler like a cookie-keeping client would, so
// sessions and CSRF tokens survive across requests.
type browser struct {
	t       *testing.T
	handler http.Handler
	cookies map[string]*http.Cookie
}

func newBrowser(t *testing.T, handler http.Handler) *browser {
	return &browser{
		t:       t,
		handler: handler,
		cookies: make(map[string]*http.Cookie),
	}
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	b.handler.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = c
	}
	return w
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest("GET", path, nil))
}

// csrfToken fetches the given form page and pulls the token out of it.
func (b *browser) csrfToken(path string) string {
	w := b.get(path)
	require.Equal(b.t, http.StatusOK, w.Code, "expected a form page at %s", path)
	m := csrfTokenRe.FindStringSubmatch(w.Body.String())
	require.NotNil(b.t, m, "no CSRF token found at %s", path)
	return m[1]
}

// postForm submits form values to path, with a token fetched from
// tokenPath first.
func (b *browser) postForm(path, tokenPath string, form url.Values) *httptest.ResponseRecorder {
	form.Set("csrfmiddlewaretoken", b.csrfToken(tokenPath))

	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

// postFile uploads a file plus form fields as multipart form data.
func (b *browser) postFile(path, tokenPath, field, filename string, content []byte, form url.Values) *httptest.ResponseRecorder {
	var body strings.Builder
	mw := multipart.NewWriter(&body)

	require.NoError(b.t, mw.WriteField("csrfmiddlewaretoken", b.csrfToken(tokenPath)))
	for key, values := range form {
		for _, v := range values {
			require.NoError(b.t, mw.WriteField(key, v))
		}
	}
	if filename != "" {
		fw, err := mw.CreateFormFile(field, filename)
		require.NoError(b.t, err)
		_, err = fw.Write(content)
		require.NoError(b.t, err)
	}
	require.NoError(b.t, mw.Close())

	req := httptest.NewRequest("POST", path, strings.NewReader(body.String()))
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return b.do(req)
}

// signup registers a user and logs the browser in.
func (b *browser) signup(username, password string) {
	w := b.postForm("/signup/", "/signup/", url.Values{
		"username":  {username},
		"password1": {password},
		"password2": {password},
	})
	require.Equal(b.t, http.StatusSeeOther, w.Code, "signup failed: %s", w.Body.String())

	w = b.postForm("/login/", "/login/", url.Values{
		"username": {username},
		"password": {password},
	})
	require.Equal(b.t, http.StatusSeeOther, w.Code, "login failed: %s", w.Body.String())
}

func location(t *testing.T, w *httptest.ResponseRecorder) string {
	loc, err := w.Result().Location()
	require.NoError(t, err)
	return loc.String()
}

// tinyPNG is a valid 1x1 transparent PNG.
var tinyPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x62, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func readAll(t *testing.T, r io.Reader) string {
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}
