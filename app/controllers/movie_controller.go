package controllers

import (
	"html/template"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"minisite/app/auth"
	"minisite/app/models"
	"minisite/app/repositories"
	"minisite/app/services"
)

// MovieController handles the movie database pages.
type MovieController struct {
	movieService *services.MovieService
	sessions     *auth.Manager
	templates    map[string]*template.Template
}

// SetService sets the movie service for testing
func (mc *MovieController) SetService(service *services.MovieService) {
	mc.movieService = service
}

// NewMovieControllerWithDB creates a new MovieController with a DB instance
func NewMovieControllerWithDB(db *badger.DB, sessions *auth.Manager, basePath string) *MovieController {
	movieRepo := repositories.NewBadgerMovieRepository(db)
	directorRepo := repositories.NewBadgerDirectorRepository(db)
	genreRepo := repositories.NewBadgerGenreRepository(db)

	return &MovieController{
		movieService: services.NewMovieService(movieRepo, directorRepo, genreRepo),
		sessions:     sessions,
		templates:    loadMovieTemplates(basePath),
	}
}

// loadMovieTemplates loads and parses all templates
func loadMovieTemplates(basePath string) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	templates["index"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/moviedb/index.html"),
	))
	templates["form"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/moviedb/form.html"),
	))
	templates["confirm_delete"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/moviedb/confirm_delete.html"),
	))
	return templates
}

type movieIndexPage struct {
	Base
	Movies []*models.Movie
}

type movieFormPage struct {
	Base
	Action      string
	Movie       *models.Movie
	PublishDate string
	Directors   []*models.Director
	Genres      []*models.Genre
	Errors      map[string]string
}

type movieDeletePage struct {
	Base
	Movie *models.Movie
}

// Index displays all movies sorted by title
func (mc *MovieController) Index(w http.ResponseWriter, r *http.Request) {
	movies, err := mc.movieService.ListMovies()
	if err != nil {
		log.Error().Err(err).Msg("failed to list movies")
		http.Error(w, "Failed to load movies", http.StatusInternalServerError)
		return
	}

	data := movieIndexPage{
		Base:   newBase(mc.sessions, w, r),
		Movies: movies,
	}
	render(w, mc.templates["index"], data)
}

// CreateForm displays the new movie form
func (mc *MovieController) CreateForm(w http.ResponseWriter, r *http.Request) {
	mc.renderForm(w, r, "Create", &models.Movie{}, "", nil)
}

// Create handles new movie form submission
func (mc *MovieController) Create(w http.ResponseWriter, r *http.Request) {
	movie, rawDate, errs := parseMovieForm(r)
	if len(errs) == 0 {
		errs = mc.serviceErrors(mc.movieService.CreateMovie(movie))
	}
	if len(errs) > 0 {
		mc.renderForm(w, r, "Create", movie, rawDate, errs)
		return
	}
	http.Redirect(w, r, "/moviedb/", http.StatusSeeOther)
}

// UpdateForm displays the edit form for an existing movie
func (mc *MovieController) UpdateForm(w http.ResponseWriter, r *http.Request) {
	movie, ok := mc.findMovie(w, r)
	if !ok {
		return
	}
	mc.renderForm(w, r, "Update", movie, movie.PublishDate.Format("2006-01-02"), nil)
}

// Update handles edit form submission
func (mc *MovieController) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	movie, rawDate, errs := parseMovieForm(r)
	movie.ID = id
	if len(errs) == 0 {
		err := mc.movieService.UpdateMovie(movie)
		if err == repositories.ErrNotFound {
			http.NotFound(w, r)
			return
		}
		errs = mc.serviceErrors(err)
	}
	if len(errs) > 0 {
		mc.renderForm(w, r, "Update", movie, rawDate, errs)
		return
	}
	http.Redirect(w, r, "/moviedb/", http.StatusSeeOther)
}

// DeleteForm displays the delete confirmation page
func (mc *MovieController) DeleteForm(w http.ResponseWriter, r *http.Request) {
	movie, ok := mc.findMovie(w, r)
	if !ok {
		return
	}

	data := movieDeletePage{
		Base:  newBase(mc.sessions, w, r),
		Movie: movie,
	}
	render(w, mc.templates["confirm_delete"], data)
}

// Delete handles delete confirmation submission
func (mc *MovieController) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	err := mc.movieService.DeleteMovie(id)
	switch {
	case err == nil:
		http.Redirect(w, r, "/moviedb/", http.StatusSeeOther)
	case err == repositories.ErrNotFound:
		http.NotFound(w, r)
	default:
		log.Error().Err(err).Int("id", id).Msg("failed to delete movie")
		http.Error(w, "Failed to delete movie", http.StatusInternalServerError)
	}
}

// findMovie loads the movie named by the route, or writes a 404.
func (mc *MovieController) findMovie(w http.ResponseWriter, r *http.Request) (*models.Movie, bool) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	movie, err := mc.movieService.GetMovie(id)
	switch {
	case err == nil:
		return movie, true
	case err == repositories.ErrNotFound:
		http.NotFound(w, r)
	default:
		log.Error().Err(err).Int("id", id).Msg("failed to load movie")
		http.Error(w, "Failed to load movie", http.StatusInternalServerError)
	}
	return nil, false
}

// parseMovieForm builds a movie from submitted form values. The raw
// publish date string comes back too so an invalid one can be
// re-displayed as typed.
func parseMovieForm(r *http.Request) (*models.Movie, string, map[string]string) {
	errs := make(map[string]string)

	if err := r.ParseForm(); err != nil {
		errs[nonFieldKey] = "Enter a valid value."
		return &models.Movie{}, "", errs
	}

	movie := &models.Movie{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
	}

	rawDate := strings.TrimSpace(r.FormValue("publish_date"))
	if rawDate != "" {
		date, err := time.Parse("2006-01-02", rawDate)
		if err != nil {
			errs["publish_date"] = "Enter a valid date."
		} else {
			movie.PublishDate = date
		}
	}

	var ok bool
	if movie.DirectorIDs, ok = parseIDList(r.Form["directors"]); !ok {
		errs["directors"] = "Select a valid choice. That choice is not one of the available choices."
	}
	if movie.GenreIDs, ok = parseIDList(r.Form["genres"]); !ok {
		errs["genres"] = "Select a valid choice. That choice is not one of the available choices."
	}

	return movie, rawDate, errs
}

func parseIDList(values []string) ([]int, bool) {
	ids := make([]int, 0, len(values))
	for _, v := range values {
		id, err := strconv.Atoi(v)
		if err != nil {
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

func (mc *MovieController) serviceErrors(err error) map[string]string {
	switch err {
	case nil:
		return nil
	case services.ErrUnknownDirector:
		return map[string]string{"directors": "Select a valid choice. That choice is not one of the available choices."}
	case services.ErrUnknownGenre:
		return map[string]string{"genres": "Select a valid choice. That choice is not one of the available choices."}
	default:
		return fieldErrors(err)
	}
}

func (mc *MovieController) renderForm(w http.ResponseWriter, r *http.Request, action string, movie *models.Movie, rawDate string, errs map[string]string) {
	directors, err := mc.movieService.ListDirectors()
	if err != nil {
		log.Error().Err(err).Msg("failed to list directors")
		http.Error(w, "Failed to load movie form", http.StatusInternalServerError)
		return
	}
	genres, err := mc.movieService.ListGenres()
	if err != nil {
		log.Error().Err(err).Msg("failed to list genres")
		http.Error(w, "Failed to load movie form", http.StatusInternalServerError)
		return
	}

	data := movieFormPage{
		Base:        newBase(mc.sessions, w, r),
		Action:      action,
		Movie:       movie,
		PublishDate: rawDate,
		Directors:   directors,
		Genres:      genres,
		Errors:      errs,
	}
	render(w, mc.templates["form"], data)
}
