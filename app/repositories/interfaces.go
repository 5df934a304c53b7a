package repositories

import "minisite/app/models"

// UserRepository defines the interface for account data access
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
}

// EntryRepository defines the interface for dictionary data access
type EntryRepository interface {
	Create(entry *models.Entry) error
	Search(query string) ([]*models.Entry, error)
	List() ([]*models.Entry, error)
}

// PostRepository defines the interface for guestbook data access
type PostRepository interface {
	Create(post *models.Post) error
	List() ([]*models.Post, error)
}

// ImageRepository defines the interface for gallery data access
type ImageRepository interface {
	Create(image *models.Image) error
	List() ([]*models.Image, error)
}

// TopicRepository defines the interface for feedback topic data access
type TopicRepository interface {
	Create(topic *models.Topic) error
	GetByID(id int) (*models.Topic, error)
	List() ([]*models.Topic, error)
}

// FeedbackRepository defines the interface for feedback data access
type FeedbackRepository interface {
	Create(feedback *models.Feedback) error
	List() ([]*models.Feedback, error)
}

// DirectorRepository defines the interface for director data access
type DirectorRepository interface {
	Create(director *models.Director) error
	GetByID(id int) (*models.Director, error)
	List() ([]*models.Director, error)
}

// GenreRepository defines the interface for genre data access
type GenreRepository interface {
	Create(genre *models.Genre) error
	GetByID(id int) (*models.Genre, error)
	List() ([]*models.Genre, error)
}

// MovieRepository defines the interface for movie data access
type MovieRepository interface {
	Create(movie *models.Movie) error
	GetByID(id int) (*models.Movie, error)
	List() ([]*models.Movie, error)
	Update(movie *models.Movie) error
	Delete(id int) error
}

// MessageRepository defines the interface for hello page data access
type MessageRepository interface {
	Create(message *models.Message) error
	List() ([]*models.Message, error)
}
