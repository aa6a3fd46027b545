package entity

import "testing"

func TestAverageScore(t *testing.T) {
	tests := []struct {
		name   string
		scores map[string]SegmentScore
		want   float64
	}{
		{
			name:   "no scores",
			scores: nil,
			want:   0,
		},
		{
			name:   "single score",
			scores: map[string]SegmentScore{"S1": {Score: 4}},
			want:   4,
		},
		{
			name: "mean over segments",
			scores: map[string]SegmentScore{
				"S1": {Score: 5},
				"S2": {Score: 3},
				"S3": {Score: 1},
			},
			want: 3,
		},
		{
			name: "suggestion does not affect the score",
			scores: map[string]SegmentScore{
				"S1": {Score: 2, Suggestion: "reworded"},
				"S2": {Score: 4},
			},
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Review{SegmentScores: tt.scores}
			if got := r.AverageScore(); got != tt.want {
				t.Errorf("AverageScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSegmentText(t *testing.T) {
	q := &ResponseQueue{
		Segments: []Segment{
			{Id: "S1", Text: "headline"},
			{Id: "S2", Text: "guidance"},
		},
	}

	if text, ok := q.SegmentText("S2"); !ok || text != "guidance" {
		t.Errorf("SegmentText(S2) = %q, %v", text, ok)
	}
	if _, ok := q.SegmentText("S9"); ok {
		t.Error("SegmentText(S9) should not be found")
	}
}
