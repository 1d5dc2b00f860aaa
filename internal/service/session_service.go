package service

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"classpoints/internal/models"
	"classpoints/internal/scoring"
)

// ErrNoSession reports a save aimed at a date with no class scheduled
var ErrNoSession = errors.New("no class scheduled on this date")

// ErrNotOnSheet reports an edit aimed at a student who has no record in the
// session being edited
var ErrNotOnSheet = errors.New("student is not on this session's sheet")

// SessionStore is the session persistence surface the session service needs
type SessionStore interface {
	GetAll() ([]models.ClassSession, error)
	Save(session *models.ClassSession) error
}

// DirectoryStore lists accounts for roster derivation
type DirectoryStore interface {
	GetAll() ([]models.User, error)
}

// SettingsStore supplies the current global point configuration
type SettingsStore interface {
	GetPointConfig() (models.PointConfig, error)
}

// SessionService resolves and persists class sessions
type SessionService struct {
	sessions SessionStore
	users    DirectoryStore
	settings SettingsStore
}

// NewSessionService creates a new session service
func NewSessionService(sessions SessionStore, users DirectoryStore, settings SettingsStore) *SessionService {
	return &SessionService{sessions: sessions, users: users, settings: settings}
}

// LoadForDate returns the session for a date: the stored one when it exists,
// a freshly materialized sheet on a class day, or nil on non-class days.
// The three store reads feeding the pass run concurrently and are joined
// before anything is computed; any single failure aborts the whole pass
// rather than computing on partial data.
func (s *SessionService) LoadForDate(date string) (*models.ClassSession, error) {
	if _, err := models.ParseDate(date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	var (
		sessions []models.ClassSession
		users    []models.User
		cfg      models.PointConfig
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		sessions, err = s.sessions.GetAll()
		return err
	})
	g.Go(func() error {
		var err error
		users, err = s.users.GetAll()
		return err
	})
	g.Go(func() error {
		var err error
		cfg, err = s.settings.GetPointConfig()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load session inputs: %w", err)
	}

	return scoring.Materialize(date, sessions, users, cfg), nil
}

// RecordEdit is one submitted row of a session sheet: the closed set of
// editable fields, nothing else. Totals are not accepted from callers.
type RecordEdit struct {
	StudentID          string `json:"studentId"`
	Arrival            bool   `json:"arrival"`
	Homework           bool   `json:"homework"`
	Classwork          bool   `json:"classwork"`
	ListeningCalc      bool   `json:"listeningCalc"`
	NumberActivity     bool   `json:"numberActivity"`
	NumberActivityDesc string `json:"numberActivityDesc"`
	Behaviour          bool   `json:"behaviour"`
}

// SaveForDate applies the submitted edits to the date's session through the
// closed mutator set, rescored from the session's own point snapshot, and
// persists the whole record list in one write. Edits for students not on the
// sheet are rejected before anything is written. A non-nil descAll fills
// every record's activity description after the per-record edits, so the
// batch text wins when both are supplied.
func (s *SessionService) SaveForDate(date string, edits []RecordEdit, descAll *string) (*models.ClassSession, error) {
	session, err := s.LoadForDate(date)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoSession, date)
	}

	for _, e := range edits {
		if session.RecordFor(e.StudentID) == nil {
			return nil, fmt.Errorf("%w: %s", ErrNotOnSheet, e.StudentID)
		}
		scoring.SetArrival(session, e.StudentID, e.Arrival)
		scoring.SetHomework(session, e.StudentID, e.Homework)
		scoring.SetClasswork(session, e.StudentID, e.Classwork)
		scoring.SetListeningCalc(session, e.StudentID, e.ListeningCalc)
		scoring.SetNumberActivity(session, e.StudentID, e.NumberActivity)
		scoring.SetBehaviour(session, e.StudentID, e.Behaviour)
		scoring.SetNumberActivityDesc(session, e.StudentID, e.NumberActivityDesc)
	}

	if descAll != nil {
		scoring.SetNumberActivityDescAll(session, *descAll)
	}

	scoring.Rescore(session)

	if err := s.sessions.Save(session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return session, nil
}
