package models

import "time"

// ClassDay is one of the two fixed weekdays on which classes run
type ClassDay string

const (
	ClassDaySunday  ClassDay = "Sunday"
	ClassDayTuesday ClassDay = "Tuesday"
)

// IsValid reports whether the class day is one of the two scheduled days
func (d ClassDay) IsValid() bool {
	return d == ClassDaySunday || d == ClassDayTuesday
}

// DateLayout is the calendar-date wire format used throughout the system
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date. The result is pinned to UTC so that
// weekday derivation never shifts across a local/UTC boundary.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(DateLayout, date)
}

// DailyRecord is one student's checklist state for one session.
// TotalScore is derived: it always equals the score calculator's output for
// the current flags and the owning session's point snapshot.
type DailyRecord struct {
	StudentID          string `json:"studentId"`
	StudentName        string `json:"studentName"`
	Arrival            bool   `json:"arrival"`
	Homework           bool   `json:"homework"`
	Classwork          bool   `json:"classwork"`
	ListeningCalc      bool   `json:"listeningCalc"`
	NumberActivity     bool   `json:"numberActivity"`
	NumberActivityDesc string `json:"numberActivityDesc"`
	Behaviour          bool   `json:"behaviour"`
	TotalScore         int    `json:"totalScore"`
}

// ClassSession is the attendance and scoring sheet for one class day on one
// specific date. Records are ordered by roster and unique per student.
type ClassSession struct {
	ID          string        `json:"id"`
	Date        string        `json:"date"`
	ClassDay    ClassDay      `json:"classDay"`
	Records     []DailyRecord `json:"records"`
	PointConfig PointConfig   `json:"pointConfig"`
}

// RecordFor returns a pointer to the record for the given student, or nil if
// the student is not on this session's sheet.
func (s *ClassSession) RecordFor(studentID string) *DailyRecord {
	for i := range s.Records {
		if s.Records[i].StudentID == studentID {
			return &s.Records[i]
		}
	}
	return nil
}

// RankingEntry is a student's aggregated score over a chosen time window.
// Entries are derived on every query and never persisted.
type RankingEntry struct {
	StudentID string   `json:"id"`
	Name      string   `json:"name"`
	ClassDay  ClassDay `json:"classDay,omitempty"`
	Score     int      `json:"score"`
}

// DatedRecord is a daily record annotated with its owning session, as served
// to progress views.
type DatedRecord struct {
	DailyRecord
	SessionID string `json:"sessionId"`
	Date      string `json:"date"`
}
