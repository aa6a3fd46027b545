package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"qa-review-be/internal/entity"
	"qa-review-be/internal/model"
)

type ResponseQueueMapper struct{}

func NewResponseQueueMapper() *ResponseQueueMapper {
	return &ResponseQueueMapper{}
}

func (m *ResponseQueueMapper) ToEntity(q *model.ResponseQueue) *entity.ResponseQueue {
	if q == nil {
		return nil
	}

	slots := make(map[string]string)
	_ = json.Unmarshal(q.Slots, &slots)

	var segments []entity.Segment
	_ = json.Unmarshal(q.Segments, &segments)

	return &entity.ResponseQueue{
		Id:                        q.Id,
		Intent:                    q.Intent,
		QueryText:                 q.QueryText,
		Slots:                     slots,
		Segments:                  segments,
		SourceReferences:          json.RawMessage(q.SourceReferences),
		GeneratedAt:               q.GeneratedAt,
		GeneratedByServiceVersion: q.GeneratedByServiceVersion,
		Status:                    q.Status,
		AssignedTo:                q.AssignedTo,
		CreatedAt:                 q.CreatedAt,
		LastModified:              q.LastModified,
	}
}

func (m *ResponseQueueMapper) ToModel(q *entity.ResponseQueue) *model.ResponseQueue {
	if q == nil {
		return nil
	}

	slots, _ := json.Marshal(q.Slots)
	segments, _ := json.Marshal(q.Segments)

	return &model.ResponseQueue{
		Id:                        q.Id,
		Intent:                    q.Intent,
		QueryText:                 q.QueryText,
		Slots:                     datatypes.JSON(slots),
		Segments:                  datatypes.JSON(segments),
		SourceReferences:          datatypes.JSON(q.SourceReferences),
		GeneratedAt:               q.GeneratedAt,
		GeneratedByServiceVersion: q.GeneratedByServiceVersion,
		Status:                    q.Status,
		AssignedTo:                q.AssignedTo,
		CreatedAt:                 q.CreatedAt,
		LastModified:              q.LastModified,
	}
}

func (m *ResponseQueueMapper) ToEntities(models []*model.ResponseQueue) []*entity.ResponseQueue {
	entities := make([]*entity.ResponseQueue, 0, len(models))
	for _, mod := range models {
		entities = append(entities, m.ToEntity(mod))
	}
	return entities
}
