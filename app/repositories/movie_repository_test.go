package repositories

import (
	"testing"
	"time"

	"minisite/app/models"

	"github.com/stretchr/testify/assert"
)

func TestMovieRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerMovieRepository(db)

	published := time.Date(1954, 4, 26, 0, 0, 0, 0, time.UTC)

	t.Run("create and get", func(t *testing.T) {
		movie := &models.Movie{
			Title:       "Seven Samurai",
			PublishDate: published,
			Description: "A village hires seven ronin.",
			DirectorIDs: []int{1, 2},
			GenreIDs:    []int{3, 4},
		}

		err := repo.Create(movie)
		assert.NoError(t, err)
		assert.Greater(t, movie.ID, 0)

		retrieved, err := repo.GetByID(movie.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Seven Samurai", retrieved.Title)
		assert.Equal(t, []int{1, 2}, retrieved.DirectorIDs)
		assert.Equal(t, []int{3, 4}, retrieved.GenreIDs)
		assert.True(t, published.Equal(retrieved.PublishDate))
	})

	t.Run("resolved links are not persisted", func(t *testing.T) {
		movie := &models.Movie{
			Title:       "Ikiru",
			PublishDate: published,
			DirectorIDs: []int{1},
			Directors:   []*models.Director{{ID: 1, Name: "Akira Kurosawa"}},
		}

		err := repo.Create(movie)
		assert.NoError(t, err)

		retrieved, err := repo.GetByID(movie.ID)
		assert.NoError(t, err)
		assert.Nil(t, retrieved.Directors)
		assert.Equal(t, []int{1}, retrieved.DirectorIDs)
	})

	t.Run("update", func(t *testing.T) {
		movie := &models.Movie{
			Title:       "Original",
			PublishDate: published,
		}
		err := repo.Create(movie)
		assert.NoError(t, err)

		movie.Title = "Updated"
		movie.GenreIDs = []int{9}
		err = repo.Update(movie)
		assert.NoError(t, err)

		retrieved, err := repo.GetByID(movie.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Updated", retrieved.Title)
		assert.Equal(t, []int{9}, retrieved.GenreIDs)
	})

	t.Run("update missing movie", func(t *testing.T) {
		err := repo.Update(&models.Movie{ID: 9999, Title: "Ghost", PublishDate: published})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		movie := &models.Movie{
			Title:       "Short Lived",
			PublishDate: published,
		}
		err := repo.Create(movie)
		assert.NoError(t, err)

		err = repo.Delete(movie.ID)
		assert.NoError(t, err)

		_, err = repo.GetByID(movie.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		err = repo.Delete(movie.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list sorted by title", func(t *testing.T) {
		movies, err := repo.List()
		assert.NoError(t, err)
		assert.Len(t, movies, 3)
		assert.Equal(t, "Ikiru", movies[0].Title)
		assert.Equal(t, "Seven Samurai", movies[1].Title)
		assert.Equal(t, "Updated", movies[2].Title)
	})
}

func TestDirectorAndGenreRepositories(t *testing.T) {
	db := setupTestDB(t)
	directors := NewBadgerDirectorRepository(db)
	genres := NewBadgerGenreRepository(db)

	t.Run("directors sorted by name", func(t *testing.T) {
		for _, name := range []string{"Stanley Kubrick", "Agnès Varda", "Akira Kurosawa"} {
			err := directors.Create(&models.Director{Name: name})
			assert.NoError(t, err)
		}

		list, err := directors.List()
		assert.NoError(t, err)
		assert.Len(t, list, 3)
		assert.Equal(t, "Agnès Varda", list[0].Name)
		assert.Equal(t, "Akira Kurosawa", list[1].Name)
		assert.Equal(t, "Stanley Kubrick", list[2].Name)
	})

	t.Run("director get by ID", func(t *testing.T) {
		director := &models.Director{Name: "Greta Gerwig"}
		err := directors.Create(director)
		assert.NoError(t, err)

		retrieved, err := directors.GetByID(director.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Greta Gerwig", retrieved.Name)

		_, err = directors.GetByID(9999)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("genres sorted by name", func(t *testing.T) {
		for _, name := range []string{"Drama", "Comedy"} {
			err := genres.Create(&models.Genre{Name: name})
			assert.NoError(t, err)
		}

		list, err := genres.List()
		assert.NoError(t, err)
		assert.Len(t, list, 2)
		assert.Equal(t, "Comedy", list[0].Name)
		assert.Equal(t, "Drama", list[1].Name)
	})
}
