package scoring

import "classpoints/internal/models"

// The session mutators below form the closed set of edits a sheet supports:
// one per activity flag plus the description field. Every flag mutator
// recomputes the record's total from the session's own point snapshot, never
// from the live global configuration. Each returns false when the student is
// not on the sheet.

// SetArrival sets a student's arrival flag
func SetArrival(s *models.ClassSession, studentID string, v bool) bool {
	r := s.RecordFor(studentID)
	if r == nil {
		return false
	}
	r.Arrival = v
	r.TotalScore = Score(*r, s.PointConfig)
	return true
}

// SetHomework sets a student's homework flag
func SetHomework(s *models.ClassSession, studentID string, v bool) bool {
	r := s.RecordFor(studentID)
	if r == nil {
		return false
	}
	r.Homework = v
	r.TotalScore = Score(*r, s.PointConfig)
	return true
}

// SetClasswork sets a student's classwork flag
func SetClasswork(s *models.ClassSession, studentID string, v bool) bool {
	r := s.RecordFor(studentID)
	if r == nil {
		return false
	}
	r.Classwork = v
	r.TotalScore = Score(*r, s.PointConfig)
	return true
}

// SetListeningCalc sets a student's listening/calculation flag
func SetListeningCalc(s *models.ClassSession, studentID string, v bool) bool {
	r := s.RecordFor(studentID)
	if r == nil {
		return false
	}
	r.ListeningCalc = v
	r.TotalScore = Score(*r, s.PointConfig)
	return true
}

// SetNumberActivity sets a student's number-activity flag
func SetNumberActivity(s *models.ClassSession, studentID string, v bool) bool {
	r := s.RecordFor(studentID)
	if r == nil {
		return false
	}
	r.NumberActivity = v
	r.TotalScore = Score(*r, s.PointConfig)
	return true
}

// SetBehaviour sets a student's behaviour flag
func SetBehaviour(s *models.ClassSession, studentID string, v bool) bool {
	r := s.RecordFor(studentID)
	if r == nil {
		return false
	}
	r.Behaviour = v
	r.TotalScore = Score(*r, s.PointConfig)
	return true
}

// SetNumberActivityDesc sets a student's free-text activity description.
// The description never affects the score, so no recompute happens.
func SetNumberActivityDesc(s *models.ClassSession, studentID, desc string) bool {
	r := s.RecordFor(studentID)
	if r == nil {
		return false
	}
	r.NumberActivityDesc = desc
	return true
}

// SetNumberActivityDescAll fills every record's activity description with the
// same text, matching the sheet's batch-description input.
func SetNumberActivityDescAll(s *models.ClassSession, desc string) {
	for i := range s.Records {
		s.Records[i].NumberActivityDesc = desc
	}
}
