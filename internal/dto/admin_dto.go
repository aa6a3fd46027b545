package dto

import (
	"time"

	"github.com/google/uuid"
)

type DashboardStatsResponse struct {
	QueueCountsByStatus  map[string]int64   `json:"queue_counts_by_status"`
	AverageScoreByIntent map[string]float64 `json:"average_score_by_intent"`
	TotalReviewers       int64              `json:"total_reviewers"`
	TotalProductionWrite int64              `json:"total_production_writes"`
}

type FlaggedItemResponse struct {
	QueueItemId  uuid.UUID `json:"queue_item_id"`
	Intent       string    `json:"intent"`
	QueryText    string    `json:"query_text"`
	FlagReason   string    `json:"flag_reason"`
	ReviewerId   uuid.UUID `json:"reviewer_id"`
	ReviewerName string    `json:"reviewer_name"`
	FlaggedAt    time.Time `json:"flagged_at"`
}

type ReviewerStatsResponse struct {
	Id                    uuid.UUID  `json:"id"`
	Email                 string     `json:"email"`
	FullName              string     `json:"full_name"`
	Specialization        *string    `json:"specialization,omitempty"`
	Role                  string     `json:"role"`
	IsActive              bool       `json:"is_active"`
	LastLogin             *time.Time `json:"last_login,omitempty"`
	TotalReviewsSubmitted int        `json:"total_reviews_submitted"`
	TotalReviewsFlagged   int        `json:"total_reviews_flagged"`
	TotalDraftsSaved      int        `json:"total_drafts_saved"`
}

type UpdateReviewerActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

type RollbackRequest struct {
	Reason string `json:"reason" validate:"required"`
}
