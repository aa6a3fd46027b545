package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Review struct {
	Id              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ResponseQueueId uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_review_version"`
	ReviewerId      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_review_version"`
	Version         int            `gorm:"not null;default:1;uniqueIndex:idx_review_version"`
	IsCurrent       bool           `gorm:"not null;default:true"`
	SegmentScores   datatypes.JSON `gorm:"type:jsonb;not null"`
	OverallNotes    *string        `gorm:"type:text"`
	FlagReason      *string        `gorm:"type:text"`
	Status          string         `gorm:"type:varchar(50);not null;index"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	SubmittedAt     *time.Time
}

func (Review) TableName() string {
	return "reviews"
}
