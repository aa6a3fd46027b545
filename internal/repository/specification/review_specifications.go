package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByQueueItem filters reviews/rereview requests by their queue item.
type ByQueueItem struct {
	QueueItemID uuid.UUID
}

func (s ByQueueItem) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("response_queue_id = ?", s.QueueItemID)
}

// ByReviewer filters by the owning reviewer.
type ByReviewer struct {
	ReviewerID uuid.UUID
}

func (s ByReviewer) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("reviewer_id = ?", s.ReviewerID)
}

// ByStatus filters by lifecycle status.
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ByIntent filters queue items by intent tag.
type ByIntent struct {
	Intent string
}

func (s ByIntent) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("intent = ?", s.Intent)
}

// IsCurrent keeps only the current review version per track.
type IsCurrent struct{}

func (s IsCurrent) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_current = ?", true)
}

// OpenSession keeps sessions that have not been closed yet.
type OpenSession struct{}

func (s OpenSession) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_end IS NULL")
}
