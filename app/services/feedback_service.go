package services

import (
	"errors"

	"minisite/app/models"
	"minisite/app/repositories"
)

// ErrUnknownTopic is returned when feedback references a topic that does not
// exist.
var ErrUnknownTopic = errors.New("unknown feedback topic")

// FeedbackService handles feedback submission.
type FeedbackService struct {
	topicRepo    repositories.TopicRepository
	feedbackRepo repositories.FeedbackRepository
}

// NewFeedbackService creates a new FeedbackService
func NewFeedbackService(topicRepo repositories.TopicRepository, feedbackRepo repositories.FeedbackRepository) *FeedbackService {
	return &FeedbackService{
		topicRepo:    topicRepo,
		feedbackRepo: feedbackRepo,
	}
}

// ListTopics retrieves the selectable feedback topics.
func (s *FeedbackService) ListTopics() ([]*models.Topic, error) {
	return s.topicRepo.List()
}

// CreateFeedback validates and stores a feedback record.
func (s *FeedbackService) CreateFeedback(feedback *models.Feedback) error {
	feedback.BeforeCreate()

	if err := feedback.Validate(); err != nil {
		return err
	}

	if _, err := s.topicRepo.GetByID(feedback.TopicID); err != nil {
		if err == repositories.ErrNotFound {
			return ErrUnknownTopic
		}
		return err
	}

	return s.feedbackRepo.Create(feedback)
}
