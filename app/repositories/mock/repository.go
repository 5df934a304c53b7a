package mock

import (
	"sort"
	"strings"
	"sync"

	"minisite/app/models"
	"minisite/app/repositories"
)

// In-memory repository implementations mirroring the behavior of the badger
// ones, for tests that do not want a database.

type UserRepository struct {
	users  map[int]*models.User
	nextID int
	mutex  sync.RWMutex
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:  make(map[int]*models.User),
		nextID: 1,
	}
}

func (m *UserRepository) Create(user *models.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	normalized := models.NormalizeUsername(user.Username)
	for _, existing := range m.users {
		if models.NormalizeUsername(existing.Username) == normalized {
			return repositories.ErrUsernameTaken
		}
	}

	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return nil
}

func (m *UserRepository) GetByID(id int) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	user, exists := m.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (m *UserRepository) GetByUsername(username string) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	normalized := models.NormalizeUsername(username)
	for _, user := range m.users {
		if models.NormalizeUsername(user.Username) == normalized {
			return user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

type EntryRepository struct {
	entries map[int]*models.Entry
	nextID  int
	mutex   sync.RWMutex
}

func NewEntryRepository() *EntryRepository {
	return &EntryRepository{
		entries: make(map[int]*models.Entry),
		nextID:  1,
	}
}

func (m *EntryRepository) Create(entry *models.Entry) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	entry.ID = m.nextID
	m.nextID++
	m.entries[entry.ID] = entry
	return nil
}

func (m *EntryRepository) Search(query string) ([]*models.Entry, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	needle := strings.ToLower(query)
	var entries []*models.Entry
	for _, entry := range m.entries {
		if strings.Contains(strings.ToLower(entry.Word), needle) {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Word) < strings.ToLower(entries[j].Word)
	})
	return entries, nil
}

func (m *EntryRepository) List() ([]*models.Entry, error) {
	return m.Search("")
}

type PostRepository struct {
	posts  map[int]*models.Post
	nextID int
	mutex  sync.RWMutex
}

func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts:  make(map[int]*models.Post),
		nextID: 1,
	}
}

func (m *PostRepository) Create(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post.ID = m.nextID
	m.nextID++
	m.posts[post.ID] = post
	return nil
}

func (m *PostRepository) List() ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var posts []*models.Post
	for _, post := range m.posts {
		posts = append(posts, post)
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].ID > posts[j].ID
	})
	return posts, nil
}

type ImageRepository struct {
	images map[int]*models.Image
	nextID int
	mutex  sync.RWMutex
}

func NewImageRepository() *ImageRepository {
	return &ImageRepository{
		images: make(map[int]*models.Image),
		nextID: 1,
	}
}

func (m *ImageRepository) Create(image *models.Image) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	image.ID = m.nextID
	m.nextID++
	m.images[image.ID] = image
	return nil
}

func (m *ImageRepository) List() ([]*models.Image, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var images []*models.Image
	for _, image := range m.images {
		images = append(images, image)
	}
	sort.Slice(images, func(i, j int) bool {
		return images[i].ID > images[j].ID
	})
	return images, nil
}

type TopicRepository struct {
	topics map[int]*models.Topic
	nextID int
	mutex  sync.RWMutex
}

func NewTopicRepository() *TopicRepository {
	return &TopicRepository{
		topics: make(map[int]*models.Topic),
		nextID: 1,
	}
}

func (m *TopicRepository) Create(topic *models.Topic) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	topic.ID = m.nextID
	m.nextID++
	m.topics[topic.ID] = topic
	return nil
}

func (m *TopicRepository) GetByID(id int) (*models.Topic, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	topic, exists := m.topics[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return topic, nil
}

func (m *TopicRepository) List() ([]*models.Topic, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var topics []*models.Topic
	for _, topic := range m.topics {
		topics = append(topics, topic)
	}
	sort.Slice(topics, func(i, j int) bool {
		return strings.ToLower(topics[i].Name) < strings.ToLower(topics[j].Name)
	})
	return topics, nil
}

type FeedbackRepository struct {
	records map[int]*models.Feedback
	nextID  int
	mutex   sync.RWMutex
}

func NewFeedbackRepository() *FeedbackRepository {
	return &FeedbackRepository{
		records: make(map[int]*models.Feedback),
		nextID:  1,
	}
}

func (m *FeedbackRepository) Create(feedback *models.Feedback) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	feedback.ID = m.nextID
	m.nextID++
	m.records[feedback.ID] = feedback
	return nil
}

func (m *FeedbackRepository) List() ([]*models.Feedback, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var records []*models.Feedback
	for _, feedback := range m.records {
		records = append(records, feedback)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].ID < records[j].ID
	})
	return records, nil
}

type DirectorRepository struct {
	directors map[int]*models.Director
	nextID    int
	mutex     sync.RWMutex
}

func NewDirectorRepository() *DirectorRepository {
	return &DirectorRepository{
		directors: make(map[int]*models.Director),
		nextID:    1,
	}
}

func (m *DirectorRepository) Create(director *models.Director) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	director.ID = m.nextID
	m.nextID++
	m.directors[director.ID] = director
	return nil
}

func (m *DirectorRepository) GetByID(id int) (*models.Director, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	director, exists := m.directors[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return director, nil
}

func (m *DirectorRepository) List() ([]*models.Director, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var directors []*models.Director
	for _, director := range m.directors {
		directors = append(directors, director)
	}
	sort.Slice(directors, func(i, j int) bool {
		return strings.ToLower(directors[i].Name) < strings.ToLower(directors[j].Name)
	})
	return directors, nil
}

type GenreRepository struct {
	genres map[int]*models.Genre
	nextID int
	mutex  sync.RWMutex
}

func NewGenreRepository() *GenreRepository {
	return &GenreRepository{
		genres: make(map[int]*models.Genre),
		nextID: 1,
	}
}

func (m *GenreRepository) Create(genre *models.Genre) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	genre.ID = m.nextID
	m.nextID++
	m.genres[genre.ID] = genre
	return nil
}

func (m *GenreRepository) GetByID(id int) (*models.Genre, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	genre, exists := m.genres[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return genre, nil
}

func (m *GenreRepository) List() ([]*models.Genre, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var genres []*models.Genre
	for _, genre := range m.genres {
		genres = append(genres, genre)
	}
	sort.Slice(genres, func(i, j int) bool {
		return strings.ToLower(genres[i].Name) < strings.ToLower(genres[j].Name)
	})
	return genres, nil
}

type MovieRepository struct {
	movies map[int]*models.Movie
	nextID int
	mutex  sync.RWMutex
}

func NewMovieRepository() *MovieRepository {
	return &MovieRepository{
		movies: make(map[int]*models.Movie),
		nextID: 1,
	}
}

func (m *MovieRepository) Create(movie *models.Movie) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	movie.ID = m.nextID
	m.nextID++
	m.movies[movie.ID] = movie
	return nil
}

func (m *MovieRepository) GetByID(id int) (*models.Movie, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	movie, exists := m.movies[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return movie, nil
}

func (m *MovieRepository) List() ([]*models.Movie, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var movies []*models.Movie
	for _, movie := range m.movies {
		movies = append(movies, movie)
	}
	sort.Slice(movies, func(i, j int) bool {
		return strings.ToLower(movies[i].Title) < strings.ToLower(movies[j].Title)
	})
	return movies, nil
}

func (m *MovieRepository) Update(movie *models.Movie) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.movies[movie.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.movies[movie.ID] = movie
	return nil
}

func (m *MovieRepository) Delete(id int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.movies[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.movies, id)
	return nil
}

type MessageRepository struct {
	messages map[int]*models.Message
	nextID   int
	mutex    sync.RWMutex
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{
		messages: make(map[int]*models.Message),
		nextID:   1,
	}
}

func (m *MessageRepository) Create(message *models.Message) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	message.ID = m.nextID
	m.nextID++
	m.messages[message.ID] = message
	return nil
}

func (m *MessageRepository) List() ([]*models.Message, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var messages []*models.Message
	for _, message := range m.messages {
		messages = append(messages, message)
	}
	sort.Slice(messages, func(i, j int) bool {
		return messages[i].ID > messages[j].ID
	})
	return messages, nil
}
