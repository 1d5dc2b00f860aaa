package service

import (
	"errors"
	"strings"

	"classpoints/internal/models"
)

// In-memory store fakes shared by the service tests. Each fake can be primed
// with a failure to exercise the abort-on-any-error paths.

type fakeUserStore struct {
	users []models.User
	err   error
}

func (f *fakeUserStore) GetAll() ([]models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.User, len(f.users))
	copy(out, f.users)
	return out, nil
}

func (f *fakeUserStore) GetByUsername(username string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if strings.EqualFold(f.users[i].Username, username) {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Save(user *models.User) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.users {
		if f.users[i].ID == user.ID {
			f.users[i] = *user
			return nil
		}
	}
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserStore) Delete(id string) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.users {
		if f.users[i].ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeSessionStore struct {
	sessions []models.ClassSession
	err      error
	saveErr  error
	saved    *models.ClassSession
}

func (f *fakeSessionStore) GetAll() ([]models.ClassSession, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.ClassSession, len(f.sessions))
	copy(out, f.sessions)
	return out, nil
}

func (f *fakeSessionStore) Save(session *models.ClassSession) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	copied := *session
	f.saved = &copied
	for i := range f.sessions {
		if f.sessions[i].ID == session.ID {
			f.sessions[i] = copied
			return nil
		}
	}
	f.sessions = append(f.sessions, copied)
	return nil
}

type fakeSettingsStore struct {
	cfg models.PointConfig
	err error
}

func (f *fakeSettingsStore) GetPointConfig() (models.PointConfig, error) {
	if f.err != nil {
		return models.DefaultPointConfig(), f.err
	}
	return f.cfg, nil
}

func (f *fakeSettingsStore) SavePointConfig(cfg models.PointConfig) error {
	if f.err != nil {
		return f.err
	}
	f.cfg = cfg
	return nil
}

var errStoreDown = errors.New("store unreachable")
