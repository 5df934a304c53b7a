package services

import (
	"errors"

	"minisite/app/models"
	"minisite/app/repositories"
)

var (
	// ErrUnknownDirector is returned when a movie references a director
	// that does not exist.
	ErrUnknownDirector = errors.New("unknown director")
	// ErrUnknownGenre is returned when a movie references a genre that
	// does not exist.
	ErrUnknownGenre = errors.New("unknown genre")
)

// MovieService handles the movie database with its director and genre links.
type MovieService struct {
	movieRepo    repositories.MovieRepository
	directorRepo repositories.DirectorRepository
	genreRepo    repositories.GenreRepository
}

// NewMovieService creates a new MovieService
func NewMovieService(movieRepo repositories.MovieRepository, directorRepo repositories.DirectorRepository, genreRepo repositories.GenreRepository) *MovieService {
	return &MovieService{
		movieRepo:    movieRepo,
		directorRepo: directorRepo,
		genreRepo:    genreRepo,
	}
}

// ListDirectors retrieves all directors for the movie form.
func (s *MovieService) ListDirectors() ([]*models.Director, error) {
	return s.directorRepo.List()
}

// ListGenres retrieves all genres for the movie form.
func (s *MovieService) ListGenres() ([]*models.Genre, error) {
	return s.genreRepo.List()
}

// CreateMovie validates and stores a new movie.
func (s *MovieService) CreateMovie(movie *models.Movie) error {
	if err := movie.Validate(); err != nil {
		return err
	}
	if err := s.checkReferences(movie); err != nil {
		return err
	}
	return s.movieRepo.Create(movie)
}

// GetMovie retrieves a movie with its directors and genres resolved.
func (s *MovieService) GetMovie(id int) (*models.Movie, error) {
	movie, err := s.movieRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.resolve(movie); err != nil {
		return nil, err
	}
	return movie, nil
}

// ListMovies retrieves all movies with their directors and genres resolved,
// sorted by title.
func (s *MovieService) ListMovies() ([]*models.Movie, error) {
	movies, err := s.movieRepo.List()
	if err != nil {
		return nil, err
	}
	for _, movie := range movies {
		if err := s.resolve(movie); err != nil {
			return nil, err
		}
	}
	return movies, nil
}

// UpdateMovie validates and stores changes to an existing movie.
func (s *MovieService) UpdateMovie(movie *models.Movie) error {
	if err := movie.Validate(); err != nil {
		return err
	}
	if err := s.checkReferences(movie); err != nil {
		return err
	}
	return s.movieRepo.Update(movie)
}

// DeleteMovie removes a movie. Directors and genres are shared reference data
// and are left alone.
func (s *MovieService) DeleteMovie(id int) error {
	return s.movieRepo.Delete(id)
}

// checkReferences verifies every linked director and genre exists.
func (s *MovieService) checkReferences(movie *models.Movie) error {
	for _, id := range movie.DirectorIDs {
		if _, err := s.directorRepo.GetByID(id); err != nil {
			if err == repositories.ErrNotFound {
				return ErrUnknownDirector
			}
			return err
		}
	}
	for _, id := range movie.GenreIDs {
		if _, err := s.genreRepo.GetByID(id); err != nil {
			if err == repositories.ErrNotFound {
				return ErrUnknownGenre
			}
			return err
		}
	}
	return nil
}

// resolve loads the director and genre records referenced by the movie.
func (s *MovieService) resolve(movie *models.Movie) error {
	movie.Directors = nil
	movie.Genres = nil
	for _, id := range movie.DirectorIDs {
		director, err := s.directorRepo.GetByID(id)
		if err != nil {
			return err
		}
		movie.Directors = append(movie.Directors, director)
	}
	for _, id := range movie.GenreIDs {
		genre, err := s.genreRepo.GetByID(id)
		if err != nil {
			return err
		}
		movie.Genres = append(movie.Genres, genre)
	}
	return nil
}
