package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProductionUpdate records a write into the production content store:
// pre-image and post-image restricted to the mapped columns.
type ProductionUpdate struct {
	Id             uuid.UUID
	ReviewId       uuid.UUID
	Intent         string
	TargetTable    string
	OriginalData   map[string]interface{}
	UpdatedData    map[string]interface{}
	UpdatedBy      uuid.UUID
	UpdatedAt      time.Time
	RolledBack     bool
	RollbackReason *string
}
