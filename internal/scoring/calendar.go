package scoring

import (
	"time"

	"classpoints/internal/models"
)

// ClassifyDate decides whether a class occurs on the given YYYY-MM-DD date.
// It returns the matching class day and true for Sundays and Tuesdays, and
// ok=false for every other weekday or an unparseable date.
// The date is treated as a plain calendar date: it is parsed in UTC and the
// weekday is taken from that UTC date, so local-timezone offsets can never
// shift the answer by a day.
func ClassifyDate(date string) (models.ClassDay, bool) {
	t, err := models.ParseDate(date)
	if err != nil {
		return "", false
	}
	return ClassifyTime(t)
}

// ClassifyTime is ClassifyDate for an already-parsed date
func ClassifyTime(t time.Time) (models.ClassDay, bool) {
	switch t.Weekday() {
	case time.Sunday:
		return models.ClassDaySunday, true
	case time.Tuesday:
		return models.ClassDayTuesday, true
	default:
		return "", false
	}
}
