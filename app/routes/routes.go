package routes

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"

	"minisite/app/auth"
	"minisite/app/config"
	"minisite/app/controllers"
	"minisite/app/middleware"
	"minisite/app/repositories"
)

// Setup defines the application's routes and returns the root handler,
// using the provided Badger DB.
func Setup(db *badger.DB, cfg *config.Config) http.Handler {
	return SetupWithPath(db, cfg, ".")
}

// SetupWithPath is Setup with an explicit base path for templates and
// static assets, so tests can run from another directory.
func SetupWithPath(db *badger.DB, cfg *config.Config, basePath string) http.Handler {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// mux middleware does not run for the NotFoundHandler, so wrap it in the
	// logger directly.
	router.NotFoundHandler = middleware.Logger(http.HandlerFunc(notFound))

	userRepo := repositories.NewBadgerUserRepository(db)
	sessions := auth.NewManager(cfg.SessionKey(), cfg.CookieSecure, userRepo)

	home := controllers.NewHomeController(sessions, basePath)
	accounts := controllers.NewAccountControllerWithDB(db, sessions, basePath)
	dictionary := controllers.NewDictionaryControllerWithDB(db, sessions, basePath)
	guestbook := controllers.NewGuestbookControllerWithDB(db, sessions, basePath)
	gallery := controllers.NewGalleryControllerWithDB(db, sessions, cfg.MediaDir, basePath)
	feedback := controllers.NewFeedbackControllerWithDB(db, sessions, basePath)
	movies := controllers.NewMovieControllerWithDB(db, sessions, basePath)
	hello := controllers.NewHelloControllerWithDB(db, sessions, basePath)

	// Static assets and uploaded media
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/",
		http.FileServer(http.Dir(filepath.Join(basePath, "static")))))
	router.PathPrefix("/media/").Handler(http.StripPrefix("/media/",
		http.FileServer(http.Dir(cfg.MediaDir))))

	router.HandleFunc("/", home.Index).Methods("GET")

	// Accounts
	router.HandleFunc("/signup/", accounts.SignupForm).Methods("GET")
	router.HandleFunc("/signup/", accounts.Signup).Methods("POST")
	router.HandleFunc("/login/", accounts.LoginForm).Methods("GET")
	router.HandleFunc("/login/", accounts.Login).Methods("POST")
	router.HandleFunc("/logout/", accounts.Logout).Methods("POST")

	// Dictionary
	router.HandleFunc("/dictionary/", dictionary.Search).Methods("GET")
	router.HandleFunc("/dictionary/add", dictionary.AddForm).Methods("GET")
	router.HandleFunc("/dictionary/add", dictionary.Add).Methods("POST")

	// Guestbook; posting requires a logged-in user
	router.HandleFunc("/guestbook/", guestbook.Index).Methods("GET")
	router.Handle("/guestbook/post",
		sessions.RequireLogin(http.HandlerFunc(guestbook.Create))).Methods("POST")

	// Gallery
	router.HandleFunc("/gallery/", gallery.Index).Methods("GET")
	router.HandleFunc("/gallery/image_upload", gallery.UploadForm).Methods("GET")
	router.HandleFunc("/gallery/image_upload", gallery.Upload).Methods("POST")
	router.HandleFunc("/gallery/success", gallery.Success).Methods("GET")

	// Feedback
	router.HandleFunc("/feedback/", feedback.Form).Methods("GET")
	router.HandleFunc("/feedback/", feedback.Submit).Methods("POST")

	// Movie database
	movie := router.PathPrefix("/moviedb").Subrouter()
	movie.HandleFunc("/", movies.Index).Methods("GET")
	movie.HandleFunc("/create/", movies.CreateForm).Methods("GET")
	movie.HandleFunc("/create/", movies.Create).Methods("POST")
	movie.HandleFunc("/{id:[0-9]+}/", movies.UpdateForm).Methods("GET")
	movie.HandleFunc("/{id:[0-9]+}/", movies.Update).Methods("POST")
	movie.HandleFunc("/{id:[0-9]+}/delete/", movies.DeleteForm).Methods("GET")
	movie.HandleFunc("/{id:[0-9]+}/delete/", movies.Delete).Methods("POST")

	// Hello
	router.HandleFunc("/hello/", hello.Index).Methods("GET")
	router.HandleFunc("/hello/", hello.Create).Methods("POST")
	router.HandleFunc("/hello/second", hello.Second).Methods("GET")

	// Every unsafe request must carry the token the form field delivers.
	protect := csrf.Protect(
		cfg.CSRFKey(),
		csrf.Secure(cfg.CookieSecure),
		csrf.Path("/"),
		csrf.FieldName("csrfmiddlewaretoken"),
		csrf.CookieName("csrftoken"),
	)
	return protect(router)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	fmt.Fprint(w, `<!doctype html>
<title>Page not found</title>
<h1>Page not found</h1>
<p><a href="/">Back to the front page</a></p>
`)
}
