package service

import (
	"errors"
	"log"

	"classpoints/internal/models"
)

// ErrInvalidCredentials is the uniform login failure: wrong username, wrong
// password, and an unreachable store all surface as this one error, so a
// caller can never tell which it was.
var ErrInvalidCredentials = errors.New("invalid username or password")

// UserStore is the account lookup surface the auth service needs
type UserStore interface {
	GetByUsername(username string) (*models.User, error)
}

// AuthService handles authentication
type AuthService struct {
	users UserStore
}

// NewAuthService creates a new auth service
func NewAuthService(users UserStore) *AuthService {
	return &AuthService{users: users}
}

// Login authenticates a user. Username lookup is case-insensitive; the
// password is compared verbatim against the stored value, with an empty
// stored password standing in for the shared default.
func (s *AuthService) Login(username, password string) (*models.User, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		log.Printf("login lookup failed for %q: %v", username, err)
		return nil, ErrInvalidCredentials
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if password != user.StoredPassword() {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
