package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ResponseQueue struct {
	Id                        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Intent                    string         `gorm:"type:varchar(100);not null;index"`
	QueryText                 string         `gorm:"type:text;not null"`
	Slots                     datatypes.JSON `gorm:"type:jsonb;not null"`
	Segments                  datatypes.JSON `gorm:"type:jsonb;not null"`
	SourceReferences          datatypes.JSON `gorm:"type:jsonb"`
	GeneratedAt               time.Time
	GeneratedByServiceVersion *string    `gorm:"type:varchar(50)"`
	Status                    string     `gorm:"type:varchar(50);not null;default:'pending';index"`
	AssignedTo                *uuid.UUID `gorm:"type:uuid"`
	CreatedAt                 time.Time  `gorm:"autoCreateTime"`
	LastModified              time.Time  `gorm:"autoUpdateTime"`
}

func (ResponseQueue) TableName() string {
	return "response_queue"
}
