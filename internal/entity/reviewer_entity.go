package entity

import (
	"time"

	"github.com/google/uuid"

	"qa-review-be/internal/constant"
)

type Reviewer struct {
	Id                    uuid.UUID
	Email                 string
	FullName              string
	Specialization        *string
	Role                  string
	IsActive              bool
	LastLogin             *time.Time
	TotalReviewsSubmitted int
	TotalReviewsFlagged   int
	TotalDraftsSaved      int
	CreatedAt             time.Time
}

func (r *Reviewer) IsAdmin() bool {
	return r.Role == constant.RoleAdmin
}
