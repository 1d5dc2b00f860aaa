package handlers

import (
	"errors"
	"strings"

	"classpoints/internal/models"
)

// In-memory stores backing the handler tests. The handlers are exercised
// through real services wired onto these.

type stubAccounts struct {
	users []models.User
	err   error
}

func (s *stubAccounts) GetAll() ([]models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *stubAccounts) GetByUsername(username string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.users {
		if strings.EqualFold(s.users[i].Username, username) {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (s *stubAccounts) Save(user *models.User) error {
	if s.err != nil {
		return s.err
	}
	for i := range s.users {
		if s.users[i].ID == user.ID {
			s.users[i] = *user
			return nil
		}
	}
	s.users = append(s.users, *user)
	return nil
}

func (s *stubAccounts) Delete(id string) error {
	if s.err != nil {
		return s.err
	}
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return nil
}

type stubSessions struct {
	sessions []models.ClassSession
	err      error
	saved    *models.ClassSession
}

func (s *stubSessions) GetAll() ([]models.ClassSession, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]models.ClassSession, len(s.sessions))
	copy(out, s.sessions)
	return out, nil
}

func (s *stubSessions) Save(session *models.ClassSession) error {
	if s.err != nil {
		return s.err
	}
	copied := *session
	s.saved = &copied
	return nil
}

type stubSettings struct {
	cfg models.PointConfig
	err error
}

func (s *stubSettings) GetPointConfig() (models.PointConfig, error) {
	if s.err != nil {
		return models.DefaultPointConfig(), s.err
	}
	return s.cfg, nil
}

func (s *stubSettings) SavePointConfig(cfg models.PointConfig) error {
	if s.err != nil {
		return s.err
	}
	s.cfg = cfg
	return nil
}

type stubCounter struct {
	count int
	err   error
}

func (s *stubCounter) Count() (int, error) {
	return s.count, s.err
}

var errDown = errors.New("store unreachable")
