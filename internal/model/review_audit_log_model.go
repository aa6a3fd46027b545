package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ReviewAuditLog is append-only. Skip actions carry no review reference.
type ReviewAuditLog struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ReviewId       *uuid.UUID     `gorm:"type:uuid;index"`
	ReviewerId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Action         string         `gorm:"type:varchar(50);not null"`
	PreviousStatus *string        `gorm:"type:varchar(50)"`
	NewStatus      *string        `gorm:"type:varchar(50)"`
	Changes        datatypes.JSON `gorm:"type:jsonb"`
	Timestamp      time.Time      `gorm:"autoCreateTime;index"`
}

func (ReviewAuditLog) TableName() string {
	return "review_audit_log"
}
