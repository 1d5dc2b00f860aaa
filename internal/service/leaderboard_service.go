package service

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"classpoints/internal/models"
	"classpoints/internal/scoring"
)

// LeaderboardService computes rankings over stored sessions
type LeaderboardService struct {
	sessions SessionStore
	users    DirectoryStore

	// now is swappable for tests; defaults to time.Now
	now func() time.Time
}

// NewLeaderboardService creates a new leaderboard service
func NewLeaderboardService(sessions SessionStore, users DirectoryStore) *LeaderboardService {
	return &LeaderboardService{sessions: sessions, users: users, now: time.Now}
}

// Rankings returns the full ranked list for the given window and optional
// class-day filter. Both store reads run concurrently and the pass aborts on
// the first failure.
func (s *LeaderboardService) Rankings(timeframe scoring.Timeframe, dayFilter models.ClassDay) ([]models.RankingEntry, error) {
	if !timeframe.IsValid() {
		return nil, fmt.Errorf("unknown timeframe %q", timeframe)
	}
	if dayFilter != "" && !dayFilter.IsValid() {
		return nil, fmt.Errorf("unknown class day %q", dayFilter)
	}

	var (
		sessions []models.ClassSession
		users    []models.User
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
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load leaderboard inputs: %w", err)
	}

	var students []models.User
	for _, u := range users {
		if u.Role == models.RoleStudent {
			students = append(students, u)
		}
	}

	return scoring.Rank(sessions, students, timeframe, dayFilter, s.now()), nil
}
