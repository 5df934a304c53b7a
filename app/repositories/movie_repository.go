package repositories

import (
	"fmt"
	"sort"
	"strings"

	"minisite/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerDirectorRepository implements DirectorRepository using BadgerDB
type BadgerDirectorRepository struct {
	db *badger.DB
}

// NewBadgerDirectorRepository creates a new BadgerDirectorRepository
func NewBadgerDirectorRepository(db *badger.DB) *BadgerDirectorRepository {
	return &BadgerDirectorRepository{db: db}
}

// Create creates a new director
func (r *BadgerDirectorRepository) Create(director *models.Director) error {
	return r.db.Update(func(txn *badger.Txn) error {
		id, err := getNextID(txn, DirectorSeqKey)
		if err != nil {
			return err
		}
		director.ID = id

		data, err := marshalEntity(director)
		if err != nil {
			return err
		}

		return txn.Set(entityKey(DirectorKeyPrefix, director.ID), data)
	})
}

// GetByID retrieves a director by ID
func (r *BadgerDirectorRepository) GetByID(id int) (*models.Director, error) {
	var director models.Director

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(entityKey(DirectorKeyPrefix, id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &director)
		})
	})

	if err != nil {
		return nil, err
	}
	return &director, nil
}

// List retrieves all directors, sorted by name.
func (r *BadgerDirectorRepository) List() ([]*models.Director, error) {
	var directors []*models.Director
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(DirectorKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var director models.Director
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &director)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal director: %v", err)
			}
			directors = append(directors, &director)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(directors, func(i, j int) bool {
		return strings.ToLower(directors[i].Name) < strings.ToLower(directors[j].Name)
	})
	return directors, nil
}

// BadgerGenreRepository implements GenreRepository using BadgerDB
type BadgerGenreRepository struct {
	db *badger.DB
}

// NewBadgerGenreRepository creates a new BadgerGenreRepository
func NewBadgerGenreRepository(db *badger.DB) *BadgerGenreRepository {
	return &BadgerGenreRepository{db: db}
}

// Create creates a new genre
func (r *BadgerGenreRepository) Create(genre *models.Genre) error {
	return r.db.Update(func(txn *badger.Txn) error {
		id, err := getNextID(txn, GenreSeqKey)
		if err != nil {
			return err
		}
		genre.ID = id

		data, err := marshalEntity(genre)
		if err != nil {
			return err
		}

		return txn.Set(entityKey(GenreKeyPrefix, genre.ID), data)
	})
}

// GetByID retrieves a genre by ID
func (r *BadgerGenreRepository) GetByID(id int) (*models.Genre, error) {
	var genre models.Genre

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(entityKey(GenreKeyPrefix, id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &genre)
		})
	})

	if err != nil {
		return nil, err
	}
	return &genre, nil
}

// List retrieves all genres, sorted by name.
func (r *BadgerGenreRepository) List() ([]*models.Genre, error) {
	var genres []*models.Genre
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(GenreKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var genre models.Genre
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &genre)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal genre: %v", err)
			}
			genres = append(genres, &genre)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(genres, func(i, j int) bool {
		return strings.ToLower(genres[i].Name) < strings.ToLower(genres[j].Name)
	})
	return genres, nil
}

// BadgerMovieRepository implements MovieRepository using BadgerDB
type BadgerMovieRepository struct {
	db *badger.DB
}

// NewBadgerMovieRepository creates a new BadgerMovieRepository
func NewBadgerMovieRepository(db *badger.DB) *BadgerMovieRepository {
	return &BadgerMovieRepository{db: db}
}

// Create creates a new movie
func (r *BadgerMovieRepository) Create(movie *models.Movie) error {
	return r.db.Update(func(txn *badger.Txn) error {
		id, err := getNextID(txn, MovieSeqKey)
		if err != nil {
			return err
		}
		movie.ID = id

		data, err := marshalEntity(movie)
		if err != nil {
			return err
		}

		return txn.Set(entityKey(MovieKeyPrefix, movie.ID), data)
	})
}

// GetByID retrieves a movie by ID
func (r *BadgerMovieRepository) GetByID(id int) (*models.Movie, error) {
	var movie models.Movie

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(entityKey(MovieKeyPrefix, id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &movie)
		})
	})

	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// List retrieves all movies, sorted by title.
func (r *BadgerMovieRepository) List() ([]*models.Movie, error) {
	var movies []*models.Movie
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(MovieKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var movie models.Movie
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &movie)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal movie: %v", err)
			}
			movies = append(movies, &movie)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(movies, func(i, j int) bool {
		return strings.ToLower(movies[i].Title) < strings.ToLower(movies[j].Title)
	})
	return movies, nil
}

// Update updates an existing movie
func (r *BadgerMovieRepository) Update(movie *models.Movie) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := entityKey(MovieKeyPrefix, movie.ID)

		// Verify movie exists
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		data, err := marshalEntity(movie)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

// Delete deletes a movie by ID
func (r *BadgerMovieRepository) Delete(id int) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := entityKey(MovieKeyPrefix, id)

		// Verify movie exists
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return txn.Delete(key)
	})
}
