package scoring

import (
	"sort"

	"classpoints/internal/models"
)

// HistoryFor collects every record belonging to the user's target students
// across all sessions, newest date first. A student sees their own records, a
// parent sees the union of their linked children's records, and a teacher
// gets an empty list. Same-date entries keep their per-session record order
// (the sort is stable).
func HistoryFor(user models.User, sessions []models.ClassSession) []models.DatedRecord {
	targets := targetStudents(user)
	if len(targets) == 0 {
		return nil
	}

	var history []models.DatedRecord
	for _, session := range sessions {
		for _, r := range session.Records {
			if targets[r.StudentID] {
				history = append(history, models.DatedRecord{
					DailyRecord: r,
					SessionID:   session.ID,
					Date:        session.Date,
				})
			}
		}
	}

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date > history[j].Date
	})
	return history
}

// HistorySummary is the reduction served alongside a progress view: the sum
// of record totals and the number of distinct sessions represented.
type HistorySummary struct {
	TotalScore   int `json:"totalScore"`
	SessionCount int `json:"sessionCount"`
}

// Summarize reduces a history to its total score and the count of distinct
// sessions represented. Two records from the same session count as one; two
// sessions that happen to share a date still count separately.
func Summarize(history []models.DatedRecord) HistorySummary {
	var summary HistorySummary
	sessions := make(map[string]struct{})
	for _, h := range history {
		summary.TotalScore += h.TotalScore
		sessions[h.SessionID] = struct{}{}
	}
	summary.SessionCount = len(sessions)
	return summary
}

func targetStudents(user models.User) map[string]bool {
	targets := make(map[string]bool)
	switch user.Role {
	case models.RoleStudent:
		targets[user.ID] = true
	case models.RoleParent:
		for _, id := range user.ChildrenIDs {
			targets[id] = true
		}
	}
	return targets
}
