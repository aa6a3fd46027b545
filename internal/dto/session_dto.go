package dto

import (
	"time"

	"github.com/google/uuid"
)

type OpenSessionResponse struct {
	SessionId    uuid.UUID `json:"session_id"`
	SessionStart time.Time `json:"session_start"`
}

type SessionStatsResponse struct {
	SessionId        uuid.UUID `json:"session_id"`
	ReviewsCompleted int       `json:"reviews_completed"`
	ReviewsFlagged   int       `json:"reviews_flagged"`
	ReviewsDrafted   int       `json:"reviews_drafted"`
	ReviewsSkipped   int       `json:"reviews_skipped"`
	TotalSubmitted   int       `json:"total_submitted"`
	TotalFlagged     int       `json:"total_flagged"`
	TotalDrafts      int       `json:"total_drafts"`
}
