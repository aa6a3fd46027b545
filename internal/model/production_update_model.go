package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ProductionUpdate struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ReviewId       uuid.UUID      `gorm:"type:uuid;not null"`
	Intent         string         `gorm:"type:varchar(100);not null"`
	TargetTable    string         `gorm:"type:varchar(255);not null;index"`
	OriginalData   datatypes.JSON `gorm:"type:jsonb;not null"`
	UpdatedData    datatypes.JSON `gorm:"type:jsonb;not null"`
	UpdatedBy      uuid.UUID      `gorm:"type:uuid;not null"`
	UpdatedAt      time.Time      `gorm:"autoCreateTime"`
	RolledBack     bool           `gorm:"not null;default:false;index"`
	RollbackReason *string        `gorm:"type:text"`
}

func (ProductionUpdate) TableName() string {
	return "production_updates"
}
