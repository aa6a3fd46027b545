package entity

import (
	"time"

	"github.com/google/uuid"
)

type ReviewSession struct {
	Id               uuid.UUID
	ReviewerId       uuid.UUID
	SessionStart     time.Time
	SessionEnd       *time.Time
	ReviewsCompleted int
	ReviewsFlagged   int
	ReviewsDrafted   int
	ReviewsSkipped   int
}
