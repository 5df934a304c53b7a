package services

import (
	"errors"

	"minisite/app/models"
	"minisite/app/repositories"
)

// ErrInvalidCredentials is returned when a login attempt fails. Callers get
// the same error for an unknown username and a wrong password.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AccountService handles signup and login.
type AccountService struct {
	userRepo repositories.UserRepository
}

// NewAccountService creates a new AccountService
func NewAccountService(userRepo repositories.UserRepository) *AccountService {
	return &AccountService{userRepo: userRepo}
}

// Signup creates a new account with a bcrypt-hashed password.
func (s *AccountService) Signup(username, password string) (*models.User, error) {
	user := &models.User{Username: username}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	user.BeforeCreate()

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies a username and password pair.
func (s *AccountService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err == repositories.ErrNotFound {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetUser retrieves an account by ID.
func (s *AccountService) GetUser(id int) (*models.User, error) {
	return s.userRepo.GetByID(id)
}
