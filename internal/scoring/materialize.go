package scoring

import (
	"github.com/google/uuid"

	"classpoints/internal/models"
)

// Materialize resolves the session for a date without touching the store.
//
// A previously stored session for the date always wins, returned unchanged:
// its point snapshot and roster are authoritative even if the global
// configuration or enrolment has since changed. Otherwise, on a class day, a
// fresh session is built from the current roster with all flags false and the
// current point configuration snapshotted in. Non-class days yield nil, which
// callers present as an empty schedule rather than an error.
func Materialize(date string, sessions []models.ClassSession, users []models.User, cfg models.PointConfig) *models.ClassSession {
	for i := range sessions {
		if sessions[i].Date == date {
			return &sessions[i]
		}
	}

	day, ok := ClassifyDate(date)
	if !ok {
		return nil
	}

	roster := RosterFor(day, users)
	records := make([]models.DailyRecord, 0, len(roster))
	for _, student := range roster {
		records = append(records, models.DailyRecord{
			StudentID:   student.ID,
			StudentName: student.Name,
		})
	}

	return &models.ClassSession{
		ID:          uuid.New().String(),
		Date:        date,
		ClassDay:    day,
		Records:     records,
		PointConfig: cfg,
	}
}
