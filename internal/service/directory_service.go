package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"classpoints/internal/models"
	"classpoints/internal/validation"
)

// ErrUserNotFound reports a lookup for an account id that does not exist
var ErrUserNotFound = errors.New("user not found")

// AccountStore is the account CRUD surface the directory service needs
type AccountStore interface {
	GetAll() ([]models.User, error)
	Save(user *models.User) error
	Delete(id string) error
}

// AccountRequest carries the editable fields of an account. ClassDay is only
// honored for students and ChildrenIDs only for parents; the rest is cleared
// on save so stale role data never lingers.
type AccountRequest struct {
	Username    string   `json:"username" validate:"required"`
	Password    string   `json:"password"`
	Name        string   `json:"name" validate:"required"`
	Role        string   `json:"role" validate:"required,oneof=TEACHER STUDENT PARENT"`
	ClassDay    string   `json:"classDay" validate:"omitempty,oneof=Sunday Tuesday"`
	ChildrenIDs []string `json:"childrenIds"`
}

// DirectoryService manages accounts
type DirectoryService struct {
	users AccountStore
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(users AccountStore) *DirectoryService {
	return &DirectoryService{users: users}
}

// List returns every account
func (s *DirectoryService) List() ([]models.User, error) {
	return s.users.GetAll()
}

// Get returns one account by id
func (s *DirectoryService) Get(id string) (*models.User, error) {
	users, err := s.users.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

// Create validates the request and stores a new account with a generated id.
// An empty password falls back to the shared default.
func (s *DirectoryService) Create(req AccountRequest) (*models.User, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	user := buildUser(uuid.New().String(), req)
	if err := s.users.Save(user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	return user, nil
}

// Update validates the request and replaces the account with the given id
func (s *DirectoryService) Update(id string, req AccountRequest) (*models.User, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	user := buildUser(id, req)
	if err := s.users.Save(user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	return user, nil
}

// Delete removes an account. Teacher-account protection is the caller's
// responsibility; this layer deletes what it is told to.
func (s *DirectoryService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.users.Delete(id)
}

func buildUser(id string, req AccountRequest) *models.User {
	user := &models.User{
		ID:       id,
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Role:     models.Role(req.Role),
	}
	if user.Password == "" {
		user.Password = models.DefaultPassword
	}
	switch user.Role {
	case models.RoleStudent:
		user.ClassDay = models.ClassDay(req.ClassDay)
	case models.RoleParent:
		user.ChildrenIDs = req.ChildrenIDs
	}
	return user
}
