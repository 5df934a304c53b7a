package services

import (
	"minisite/app/models"
	"minisite/app/repositories"
)

// HelloService handles the hello page message board.
type HelloService struct {
	messageRepo repositories.MessageRepository
}

// NewHelloService creates a new HelloService
func NewHelloService(messageRepo repositories.MessageRepository) *HelloService {
	return &HelloService{messageRepo: messageRepo}
}

// CreateMessage validates and stores a new message.
func (s *HelloService) CreateMessage(text string) (*models.Message, error) {
	message := &models.Message{Text: text}
	message.BeforeCreate()

	if err := message.Validate(); err != nil {
		return nil, err
	}

	if err := s.messageRepo.Create(message); err != nil {
		return nil, err
	}
	return message, nil
}

// ListMessages retrieves all messages, newest first.
func (s *HelloService) ListMessages() ([]*models.Message, error) {
	return s.messageRepo.List()
}
