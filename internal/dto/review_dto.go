package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SegmentScoreInput mirrors the reviewer form: a score per segment plus an
// optional edited replacement text.
type SegmentScoreInput struct {
	Score      float64 `json:"score" validate:"gte=0,lte=5"`
	Suggestion string  `json:"suggestion,omitempty"`
}

type SkipRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
}

type SaveDraftRequest struct {
	SessionId uuid.UUID                    `json:"session_id" validate:"required"`
	Scores    map[string]SegmentScoreInput `json:"scores" validate:"required"`
	Notes     *string                      `json:"notes,omitempty"`
}

type FlagRequest struct {
	SessionId uuid.UUID                    `json:"session_id" validate:"required"`
	Reason    string                       `json:"reason" validate:"required"`
	Scores    map[string]SegmentScoreInput `json:"scores" validate:"required"`
	Notes     *string                      `json:"notes,omitempty"`
}

type SubmitRequest struct {
	SessionId uuid.UUID                    `json:"session_id" validate:"required"`
	Scores    map[string]SegmentScoreInput `json:"scores" validate:"required"`
	Notes     *string                      `json:"notes,omitempty"`
}

type RequestRereviewRequest struct {
	ReviewId uuid.UUID `json:"review_id" validate:"required"`
	Reason   string    `json:"reason" validate:"required"`
}

type QueueItemResponse struct {
	Id               uuid.UUID         `json:"id"`
	Intent           string            `json:"intent"`
	QueryText        string            `json:"query_text"`
	Slots            map[string]string `json:"slots"`
	Segments         []SegmentResponse `json:"segments"`
	SourceReferences json.RawMessage   `json:"source_references,omitempty"`
	Status           string            `json:"status"`
	CreatedAt        time.Time         `json:"created_at"`
}

type SegmentResponse struct {
	Id   string `json:"id"`
	Text string `json:"text"`
}

type ReviewResponse struct {
	Id           uuid.UUID                    `json:"id"`
	QueueItemId  uuid.UUID                    `json:"queue_item_id"`
	ReviewerId   uuid.UUID                    `json:"reviewer_id"`
	Version      int                          `json:"version"`
	IsCurrent    bool                         `json:"is_current"`
	Status       string                       `json:"status"`
	Scores       map[string]SegmentScoreInput `json:"scores"`
	Notes        *string                      `json:"notes,omitempty"`
	FlagReason   *string                      `json:"flag_reason,omitempty"`
	AverageScore float64                      `json:"average_score"`
	CreatedAt    time.Time                    `json:"created_at"`
	SubmittedAt  *time.Time                   `json:"submitted_at,omitempty"`
}

// SubmitResponse carries the committed review plus, when the reconciler ran,
// the production update record. Warning reports a non-fatal reconciler
// failure in non-strict mode.
type SubmitResponse struct {
	Review           *ReviewResponse           `json:"review"`
	ProductionUpdate *ProductionUpdateResponse `json:"production_update,omitempty"`
	Warning          string                    `json:"-"`
}

type ProductionUpdateResponse struct {
	Id           uuid.UUID              `json:"id"`
	ReviewId     uuid.UUID              `json:"review_id"`
	Intent       string                 `json:"intent"`
	TargetTable  string                 `json:"target_table"`
	OriginalData map[string]interface{} `json:"original_data"`
	UpdatedData  map[string]interface{} `json:"updated_data"`
	RolledBack   bool                   `json:"rolled_back"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

type RereviewResponse struct {
	RequestId   uuid.UUID `json:"request_id"`
	QueueItemId uuid.UUID `json:"queue_item_id"`
	Status      string    `json:"status"`
}

type SourceDataResponse struct {
	Intent string                 `json:"intent"`
	Data   map[string]interface{} `json:"data"`
}
