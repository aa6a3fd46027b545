package model

import (
	"time"

	"github.com/google/uuid"
)

type ReviewSession struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey"`
	ReviewerId       uuid.UUID `gorm:"type:uuid;not null;index"`
	SessionStart     time.Time `gorm:"autoCreateTime"`
	SessionEnd       *time.Time `gorm:"index"`
	ReviewsCompleted int       `gorm:"not null;default:0"`
	ReviewsFlagged   int       `gorm:"not null;default:0"`
	ReviewsDrafted   int       `gorm:"not null;default:0"`
	ReviewsSkipped   int       `gorm:"not null;default:0"`
}

func (ReviewSession) TableName() string {
	return "review_sessions"
}
