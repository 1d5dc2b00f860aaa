package scoring

import (
	"sort"
	"time"

	"classpoints/internal/models"
)

// Timeframe selects the window of sessions a ranking covers
type Timeframe string

const (
	TimeframeWeekly  Timeframe = "weekly"
	TimeframeMonthly Timeframe = "monthly"
	TimeframeAll     Timeframe = "all"
)

// IsValid reports whether the timeframe is one of the three known windows
func (t Timeframe) IsValid() bool {
	return t == TimeframeWeekly || t == TimeframeMonthly || t == TimeframeAll
}

// Rank reduces sessions into per-student cumulative scores and sorts them
// descending. Every known student appears exactly once, scored 0 when no
// session matched; ties keep the relative order of the students slice (the
// sort is stable). dayFilter narrows to one class day when non-empty.
// The full list is returned; truncating to a top N is the caller's concern.
//
// Window boundaries are date-only comparisons against today: weekly keeps
// dates in [today-7d, today] inclusive, monthly keeps dates in today's
// calendar month and year.
func Rank(sessions []models.ClassSession, students []models.User, timeframe Timeframe, dayFilter models.ClassDay, today time.Time) []models.RankingEntry {
	totals := make(map[string]int, len(students))
	for _, s := range students {
		totals[s.ID] = 0
	}

	for _, session := range sessions {
		if dayFilter != "" && session.ClassDay != dayFilter {
			continue
		}
		if !inWindow(session.Date, timeframe, today) {
			continue
		}
		for _, r := range session.Records {
			if _, known := totals[r.StudentID]; known {
				totals[r.StudentID] += r.TotalScore
			}
		}
	}

	entries := make([]models.RankingEntry, 0, len(students))
	for _, s := range students {
		entries = append(entries, models.RankingEntry{
			StudentID: s.ID,
			Name:      displayName(s),
			ClassDay:  s.ClassDay,
			Score:     totals[s.ID],
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries
}

func displayName(u models.User) string {
	if u.Name == "" {
		return "Unknown"
	}
	return u.Name
}

func inWindow(date string, timeframe Timeframe, today time.Time) bool {
	switch timeframe {
	case TimeframeWeekly, TimeframeMonthly:
	default:
		return true
	}

	d, err := models.ParseDate(date)
	if err != nil {
		return false
	}
	day := truncateToDay(d)
	now := truncateToDay(today)

	if timeframe == TimeframeWeekly {
		lower := now.AddDate(0, 0, -7)
		return !day.Before(lower) && !day.After(now)
	}
	return day.Month() == now.Month() && day.Year() == now.Year()
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
