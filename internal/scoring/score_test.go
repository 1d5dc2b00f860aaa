package scoring

import (
	"testing"

	"classpoints/internal/models"
)

func TestScore(t *testing.T) {
	cfg := models.PointConfig{
		Arrival:        1,
		Homework:       2,
		Classwork:      4,
		ListeningCalc:  8,
		NumberActivity: 16,
		Behaviour:      32,
	}

	tests := []struct {
		name   string
		record models.DailyRecord
		want   int
	}{
		{
			name:   "no flags",
			record: models.DailyRecord{},
			want:   0,
		},
		{
			name:   "arrival only",
			record: models.DailyRecord{Arrival: true},
			want:   1,
		},
		{
			name:   "behaviour only",
			record: models.DailyRecord{Behaviour: true},
			want:   32,
		},
		{
			name: "all flags",
			record: models.DailyRecord{
				Arrival: true, Homework: true, Classwork: true,
				ListeningCalc: true, NumberActivity: true, Behaviour: true,
			},
			want: 63,
		},
		{
			name:   "description never contributes",
			record: models.DailyRecord{NumberActivityDesc: "counting to 100"},
			want:   0,
		},
		{
			name: "description alongside flags",
			record: models.DailyRecord{
				Homework: true, NumberActivity: true,
				NumberActivityDesc: "times tables",
			},
			want: 18,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.record, cfg); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

// Flipping any single flag must change the score by exactly that activity's
// configured weight.
func TestScoreFlagDeltas(t *testing.T) {
	cfg := models.DefaultPointConfig()
	cfg.Homework = 7
	cfg.Behaviour = 3

	base := models.DailyRecord{Arrival: true, Classwork: true}
	baseScore := Score(base, cfg)

	flips := []struct {
		name  string
		flip  func(r *models.DailyRecord)
		delta int
	}{
		{"arrival off", func(r *models.DailyRecord) { r.Arrival = false }, -cfg.Arrival},
		{"homework on", func(r *models.DailyRecord) { r.Homework = true }, cfg.Homework},
		{"classwork off", func(r *models.DailyRecord) { r.Classwork = false }, -cfg.Classwork},
		{"listening on", func(r *models.DailyRecord) { r.ListeningCalc = true }, cfg.ListeningCalc},
		{"number activity on", func(r *models.DailyRecord) { r.NumberActivity = true }, cfg.NumberActivity},
		{"behaviour on", func(r *models.DailyRecord) { r.Behaviour = true }, cfg.Behaviour},
	}

	for _, tt := range flips {
		t.Run(tt.name, func(t *testing.T) {
			r := base
			tt.flip(&r)
			if got := Score(r, cfg); got != baseScore+tt.delta {
				t.Errorf("score after flip = %d, want %d", got, baseScore+tt.delta)
			}
		})
	}
}

// Negative weights are not validated; they silently produce negative scores.
func TestScoreNegativeWeight(t *testing.T) {
	cfg := models.PointConfig{Arrival: -5}
	r := models.DailyRecord{Arrival: true}
	if got := Score(r, cfg); got != -5 {
		t.Errorf("Score() = %d, want -5", got)
	}
}

func TestRescore(t *testing.T) {
	session := models.ClassSession{
		PointConfig: models.PointConfig{Arrival: 10, Homework: 20},
		Records: []models.DailyRecord{
			{StudentID: "a", Arrival: true, TotalScore: 999},
			{StudentID: "b", Arrival: true, Homework: true, TotalScore: -1},
			{StudentID: "c"},
		},
	}

	Rescore(&session)

	want := []int{10, 30, 0}
	for i, w := range want {
		if session.Records[i].TotalScore != w {
			t.Errorf("record %d total = %d, want %d", i, session.Records[i].TotalScore, w)
		}
	}
}
