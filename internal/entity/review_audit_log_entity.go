package entity

import (
	"time"

	"github.com/google/uuid"
)

type ReviewAuditLog struct {
	Id             uuid.UUID
	ReviewId       *uuid.UUID
	ReviewerId     uuid.UUID
	Action         string
	PreviousStatus *string
	NewStatus      *string
	Changes        map[string]interface{}
	Timestamp      time.Time
}
