package entity

import (
	"time"

	"github.com/google/uuid"
)

// SegmentScore holds a reviewer's judgment for one segment. Suggestion, when
// non-empty, is the edited replacement text.
type SegmentScore struct {
	Score      float64 `json:"score"`
	Suggestion string  `json:"suggestion,omitempty"`
}

type Review struct {
	Id              uuid.UUID
	ResponseQueueId uuid.UUID
	ReviewerId      uuid.UUID
	Version         int
	IsCurrent       bool
	SegmentScores   map[string]SegmentScore
	OverallNotes    *string
	FlagReason      *string
	Status          string
	CreatedAt       time.Time
	SubmittedAt     *time.Time
}

// AverageScore is the arithmetic mean over all segment scores, 0 when the
// scores map is empty. Derived for display, never stored.
func (r *Review) AverageScore() float64 {
	if len(r.SegmentScores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range r.SegmentScores {
		sum += s.Score
	}
	return sum / float64(len(r.SegmentScores))
}
