package model

import (
	"time"

	"github.com/google/uuid"
)

type RereviewRequest struct {
	Id               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ResponseQueueId  uuid.UUID  `gorm:"type:uuid;not null;index"`
	OriginalReviewId uuid.UUID  `gorm:"type:uuid;not null"`
	RequestedBy      uuid.UUID  `gorm:"type:uuid;not null"`
	Reason           string     `gorm:"type:text;not null"`
	Status           string     `gorm:"type:varchar(50);not null;default:'approved';index"`
	ApprovedBy       *uuid.UUID `gorm:"type:uuid"`
	CreatedAt        time.Time  `gorm:"autoCreateTime"`
	ResolvedAt       *time.Time
}

func (RereviewRequest) TableName() string {
	return "rereview_requests"
}
