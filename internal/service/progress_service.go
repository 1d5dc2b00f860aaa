package service

import (
	"fmt"

	"classpoints/internal/models"
	"classpoints/internal/scoring"
)

// Progress is a user's chronological record history plus its reduction
type Progress struct {
	History []models.DatedRecord   `json:"history"`
	Summary scoring.HistorySummary `json:"summary"`
}

// ProgressService builds per-user progress views from stored sessions
type ProgressService struct {
	sessions SessionStore
}

// NewProgressService creates a new progress service
func NewProgressService(sessions SessionStore) *ProgressService {
	return &ProgressService{sessions: sessions}
}

// For collects the user's history, newest first. Students see their own
// records, parents the union of their children's, teachers an empty list.
func (s *ProgressService) For(user models.User) (*Progress, error) {
	sessions, err := s.sessions.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	history := scoring.HistoryFor(user, sessions)
	return &Progress{
		History: history,
		Summary: scoring.Summarize(history),
	}, nil
}
