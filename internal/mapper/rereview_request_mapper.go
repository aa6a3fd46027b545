package mapper

import (
	"qa-review-be/internal/entity"
	"qa-review-be/internal/model"
)

type RereviewRequestMapper struct{}

func NewRereviewRequestMapper() *RereviewRequestMapper {
	return &RereviewRequestMapper{}
}

func (m *RereviewRequestMapper) ToEntity(r *model.RereviewRequest) *entity.RereviewRequest {
	if r == nil {
		return nil
	}
	return &entity.RereviewRequest{
		Id:               r.Id,
		ResponseQueueId:  r.ResponseQueueId,
		OriginalReviewId: r.OriginalReviewId,
		RequestedBy:      r.RequestedBy,
		Reason:           r.Reason,
		Status:           r.Status,
		ApprovedBy:       r.ApprovedBy,
		CreatedAt:        r.CreatedAt,
		ResolvedAt:       r.ResolvedAt,
	}
}

func (m *RereviewRequestMapper) ToModel(r *entity.RereviewRequest) *model.RereviewRequest {
	if r == nil {
		return nil
	}
	return &model.RereviewRequest{
		Id:               r.Id,
		ResponseQueueId:  r.ResponseQueueId,
		OriginalReviewId: r.OriginalReviewId,
		RequestedBy:      r.RequestedBy,
		Reason:           r.Reason,
		Status:           r.Status,
		ApprovedBy:       r.ApprovedBy,
		CreatedAt:        r.CreatedAt,
		ResolvedAt:       r.ResolvedAt,
	}
}

func (m *RereviewRequestMapper) ToEntities(models []*model.RereviewRequest) []*entity.RereviewRequest {
	entities := make([]*entity.RereviewRequest, 0, len(models))
	for _, mod := range models {
		entities = append(entities, m.ToEntity(mod))
	}
	return entities
}
