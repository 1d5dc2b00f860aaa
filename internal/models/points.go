package models

// PointConfig holds the per-activity point weights used to score a record.
// A copy is snapshotted into every session at creation time, so later edits
// to the global configuration never alter past sessions.
type PointConfig struct {
	Arrival        int `json:"arrival"`
	Homework       int `json:"homework"`
	Classwork      int `json:"classwork"`
	ListeningCalc  int `json:"listeningCalc"`
	NumberActivity int `json:"numberActivity"`
	Behaviour      int `json:"behaviour"`
}

// DefaultPointConfig returns the documented default weights applied when no
// configuration has been stored yet.
func DefaultPointConfig() PointConfig {
	return PointConfig{
		Arrival:        5,
		Homework:       5,
		Classwork:      5,
		ListeningCalc:  5,
		NumberActivity: 5,
		Behaviour:      5,
	}
}
