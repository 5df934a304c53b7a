package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minisite/app/models"
	"minisite/app/repositories/mock"
	"minisite/app/services"
)

func setupTestMovieController(t *testing.T) (*mux.Router, *services.MovieService, *mock.MovieRepository) {
	movieRepo := mock.NewMovieRepository()
	directorRepo := mock.NewDirectorRepository()
	genreRepo := mock.NewGenreRepository()
	movieService := services.NewMovieService(movieRepo, directorRepo, genreRepo)
	controller := &MovieController{
		movieService: movieService,
		sessions:     newTestSessions(mock.NewUserRepository()),
		templates:    loadMovieTemplates(testBasePath),
	}

	require.NoError(t, directorRepo.Create(&models.Director{Name: "Akira Kurosawa"}))
	require.NoError(t, directorRepo.Create(&models.Director{Name: "Greta Gerwig"}))
	require.NoError(t, genreRepo.Create(&models.Genre{Name: "Drama"}))
	require.NoError(t, genreRepo.Create(&models.Genre{Name: "Comedy"}))

	// Register routes by hand; the id pattern matches the real router.
	router := mux.NewRouter()
	router.HandleFunc("/moviedb/", controller.Index).Methods("GET")
	router.HandleFunc("/moviedb/create/", controller.CreateForm).Methods("GET")
	router.HandleFunc("/moviedb/create/", controller.Create).Methods("POST")
	router.HandleFunc("/moviedb/{id:[0-9]+}/", controller.UpdateForm).Methods("GET")
	router.HandleFunc("/moviedb/{id:[0-9]+}/", controller.Update).Methods("POST")
	router.HandleFunc("/moviedb/{id:[0-9]+}/delete/", controller.DeleteForm).Methods("GET")
	router.HandleFunc("/moviedb/{id:[0-9]+}/delete/", controller.Delete).Methods("POST")

	return router, movieService, movieRepo
}

func postMovie(router *mux.Router, path string, form url.Values) *httptest.ResponseRecorder {
	req := formRequest(path, form)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMovieControllerCreate(t *testing.T) {
	t.Run("form offers all directors and genres", func(t *testing.T) {
		router, _, _ := setupTestMovieController(t)

		req := httptest.NewRequest("GET", "/moviedb/create/", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Akira Kurosawa")
		assert.Contains(t, w.Body.String(), "Greta Gerwig")
		assert.Contains(t, w.Body.String(), "Drama")
		assert.Contains(t, w.Body.String(), "Comedy")
		assert.Contains(t, w.Body.String(), "Create")
	})

	t.Run("valid movie persists its link ids", func(t *testing.T) {
		router, _, movieRepo := setupTestMovieController(t)

		w := postMovie(router, "/moviedb/create/", url.Values{
			"title":        {"Ran"},
			"publish_date": {"1985-06-01"},
			"description":  {"An aging warlord divides his domain."},
			"directors":    {"1"},
			"genres":       {"1", "2"},
		})

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/moviedb/", w.Header().Get("Location"))

		stored, err := movieRepo.GetByID(1)
		require.NoError(t, err)
		assert.Equal(t, "Ran", stored.Title)
		assert.Equal(t, []int{1}, stored.DirectorIDs)
		assert.Equal(t, []int{1, 2}, stored.GenreIDs)
		assert.Equal(t, 1985, stored.PublishDate.Year())
	})

	t.Run("movies work without any links", func(t *testing.T) {
		router, _, movieRepo := setupTestMovieController(t)

		w := postMovie(router, "/moviedb/create/", url.Values{
			"title":        {"Unattributed"},
			"publish_date": {"2000-01-01"},
		})

		require.Equal(t, http.StatusSeeOther, w.Code)

		stored, err := movieRepo.GetByID(1)
		require.NoError(t, err)
		assert.Empty(t, stored.DirectorIDs)
		assert.Empty(t, stored.GenreIDs)
	})

	t.Run("missing title re-renders the form", func(t *testing.T) {
		router, _, movieRepo := setupTestMovieController(t)

		w := postMovie(router, "/moviedb/create/", url.Values{
			"publish_date": {"2000-01-01"},
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "This field is required.")

		_, err := movieRepo.GetByID(1)
		assert.Error(t, err)
	})

	t.Run("malformed date re-displays as typed", func(t *testing.T) {
		router, _, _ := setupTestMovieController(t)

		w := postMovie(router, "/moviedb/create/", url.Values{
			"title":        {"Badly dated"},
			"publish_date": {"first of June"},
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Enter a valid date.")
		assert.Contains(t, w.Body.String(), `value="first of June"`)
	})

	t.Run("unknown link ids are refused", func(t *testing.T) {
		router, _, movieRepo := setupTestMovieController(t)

		w := postMovie(router, "/moviedb/create/", url.Values{
			"title":        {"Phantom"},
			"publish_date": {"2000-01-01"},
			"genres":       {"99"},
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Select a valid choice.")

		_, err := movieRepo.GetByID(1)
		assert.Error(t, err)
	})
}

func TestMovieControllerUpdate(t *testing.T) {
	t.Run("edit form pre-fills and pre-selects", func(t *testing.T) {
		router, _, _ := setupTestMovieController(t)
		seedRouterMovie(t, router)

		req := httptest.NewRequest("GET", "/moviedb/1/", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `value="Ran"`)
		assert.Contains(t, w.Body.String(), `value="1" selected`)
		assert.Contains(t, w.Body.String(), "Update")
	})

	t.Run("update replaces fields and links", func(t *testing.T) {
		router, _, movieRepo := setupTestMovieController(t)
		seedRouterMovie(t, router)

		w := postMovie(router, "/moviedb/1/", url.Values{
			"title":        {"Ran (4K restoration)"},
			"publish_date": {"1985-06-01"},
			"directors":    {"1", "2"},
			"genres":       {"2"},
		})

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/moviedb/", w.Header().Get("Location"))

		stored, err := movieRepo.GetByID(1)
		require.NoError(t, err)
		assert.Equal(t, "Ran (4K restoration)", stored.Title)
		assert.Equal(t, []int{1, 2}, stored.DirectorIDs)
		assert.Equal(t, []int{2}, stored.GenreIDs)
	})

	t.Run("editing a missing movie is a 404", func(t *testing.T) {
		router, _, _ := setupTestMovieController(t)

		req := httptest.NewRequest("GET", "/moviedb/42/", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		post := postMovie(router, "/moviedb/42/", url.Values{
			"title":        {"Ghost write"},
			"publish_date": {"2000-01-01"},
		})
		assert.Equal(t, http.StatusNotFound, post.Code)
	})
}

func TestMovieControllerDelete(t *testing.T) {
	router, _, movieRepo := setupTestMovieController(t)
	seedRouterMovie(t, router)

	t.Run("asks for confirmation", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/moviedb/1/delete/", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Are you sure you want to delete")
		assert.Contains(t, w.Body.String(), "Ran")
	})

	t.Run("confirming removes the movie", func(t *testing.T) {
		w := postMovie(router, "/moviedb/1/delete/", url.Values{})

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/moviedb/", w.Header().Get("Location"))

		_, err := movieRepo.GetByID(1)
		assert.Error(t, err)
	})

	t.Run("deleting twice is a 404", func(t *testing.T) {
		w := postMovie(router, "/moviedb/1/delete/", url.Values{})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMovieControllerIndex(t *testing.T) {
	router, _, _ := setupTestMovieController(t)
	seedRouterMovie(t, router)

	req := httptest.NewRequest("GET", "/moviedb/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ran")
	assert.Contains(t, w.Body.String(), "Akira Kurosawa")
	assert.Contains(t, w.Body.String(), "Drama")
}

// seedRouterMovie creates one movie through the form handler so the
// whole pipeline is exercised.
func seedRouterMovie(t *testing.T, router *mux.Router) {
	w := postMovie(router, "/moviedb/create/", url.Values{
		"title":        {"Ran"},
		"publish_date": {"1985-06-01"},
		"directors":    {"1"},
		"genres":       {"1"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
}
