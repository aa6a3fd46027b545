package model

import (
	"time"

	"github.com/google/uuid"
)

type Reviewer struct {
	Id                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email                 string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName              string    `gorm:"type:varchar(255);not null"`
	Specialization        *string   `gorm:"type:varchar(100)"`
	Role                  string    `gorm:"type:varchar(50);not null;default:'reviewer'"`
	IsActive              bool      `gorm:"not null;default:true"`
	LastLogin             *time.Time
	TotalReviewsSubmitted int       `gorm:"not null;default:0"`
	TotalReviewsFlagged   int       `gorm:"not null;default:0"`
	TotalDraftsSaved      int       `gorm:"not null;default:0"`
	CreatedAt             time.Time `gorm:"autoCreateTime"`
}

func (Reviewer) TableName() string {
	return "reviewers"
}
