package scoring

import "classpoints/internal/models"

// Score computes a record's total: the sum of the configured weight for every
// activity flag that is set. The free-text description never contributes.
// Weights are not validated; a negative weight silently yields a negative
// score.
func Score(r models.DailyRecord, cfg models.PointConfig) int {
	score := 0
	if r.Arrival {
		score += cfg.Arrival
	}
	if r.Homework {
		score += cfg.Homework
	}
	if r.Classwork {
		score += cfg.Classwork
	}
	if r.ListeningCalc {
		score += cfg.ListeningCalc
	}
	if r.NumberActivity {
		score += cfg.NumberActivity
	}
	if r.Behaviour {
		score += cfg.Behaviour
	}
	return score
}

// Rescore overwrites every record's TotalScore with the calculator's output
// for the session's own point snapshot. Used on save so that submitted totals
// can never drift from the flags.
func Rescore(s *models.ClassSession) {
	for i := range s.Records {
		s.Records[i].TotalScore = Score(s.Records[i], s.PointConfig)
	}
}
