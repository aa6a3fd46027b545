package dto

import "github.com/google/uuid"

// ReviewFlaggedMessage is the payload published on the review.flagged topic.
type ReviewFlaggedMessage struct {
	QueueItemId  uuid.UUID `json:"queue_item_id"`
	ReviewId     uuid.UUID `json:"review_id"`
	ReviewerId   uuid.UUID `json:"reviewer_id"`
	ReviewerName string    `json:"reviewer_name"`
	Intent       string    `json:"intent"`
	QueryText    string    `json:"query_text"`
	Reason       string    `json:"reason"`
}
