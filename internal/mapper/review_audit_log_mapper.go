package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"qa-review-be/internal/entity"
	"qa-review-be/internal/model"
)

type ReviewAuditLogMapper struct{}

func NewReviewAuditLogMapper() *ReviewAuditLogMapper {
	return &ReviewAuditLogMapper{}
}

func (m *ReviewAuditLogMapper) ToEntity(l *model.ReviewAuditLog) *entity.ReviewAuditLog {
	if l == nil {
		return nil
	}

	var changes map[string]interface{}
	if len(l.Changes) > 0 {
		_ = json.Unmarshal(l.Changes, &changes)
	}

	return &entity.ReviewAuditLog{
		Id:             l.Id,
		ReviewId:       l.ReviewId,
		ReviewerId:     l.ReviewerId,
		Action:         l.Action,
		PreviousStatus: l.PreviousStatus,
		NewStatus:      l.NewStatus,
		Changes:        changes,
		Timestamp:      l.Timestamp,
	}
}

func (m *ReviewAuditLogMapper) ToModel(l *entity.ReviewAuditLog) *model.ReviewAuditLog {
	if l == nil {
		return nil
	}

	var changes datatypes.JSON
	if l.Changes != nil {
		raw, _ := json.Marshal(l.Changes)
		changes = datatypes.JSON(raw)
	}

	return &model.ReviewAuditLog{
		Id:             l.Id,
		ReviewId:       l.ReviewId,
		ReviewerId:     l.ReviewerId,
		Action:         l.Action,
		PreviousStatus: l.PreviousStatus,
		NewStatus:      l.NewStatus,
		Changes:        changes,
		Timestamp:      l.Timestamp,
	}
}

func (m *ReviewAuditLogMapper) ToEntities(models []*model.ReviewAuditLog) []*entity.ReviewAuditLog {
	entities := make([]*entity.ReviewAuditLog, 0, len(models))
	for _, mod := range models {
		entities = append(entities, m.ToEntity(mod))
	}
	return entities
}
