package entity

import (
	"time"

	"github.com/google/uuid"
)

type RereviewRequest struct {
	Id               uuid.UUID
	ResponseQueueId  uuid.UUID
	OriginalReviewId uuid.UUID
	RequestedBy      uuid.UUID
	Reason           string
	Status           string
	ApprovedBy       *uuid.UUID
	CreatedAt        time.Time
	ResolvedAt       *time.Time
}
