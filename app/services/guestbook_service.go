package services

import (
	"minisite/app/models"
	"minisite/app/repositories"
)

// GuestbookService handles guestbook posts.
type GuestbookService struct {
	postRepo repositories.PostRepository
}

// NewGuestbookService creates a new GuestbookService
func NewGuestbookService(postRepo repositories.PostRepository) *GuestbookService {
	return &GuestbookService{postRepo: postRepo}
}

// CreatePost stores a new guestbook post. The author is always taken from the
// given user, never from submitted form data.
func (s *GuestbookService) CreatePost(user *models.User, comment string) (*models.Post, error) {
	post := &models.Post{
		UserID:  user.ID,
		Author:  user.Username,
		Comment: comment,
	}
	post.BeforeCreate()

	if err := post.Validate(); err != nil {
		return nil, err
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts retrieves all guestbook posts, newest first.
func (s *GuestbookService) ListPosts() ([]*models.Post, error) {
	return s.postRepo.List()
}
