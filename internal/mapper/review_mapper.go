package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"qa-review-be/internal/entity"
	"qa-review-be/internal/model"
)

type ReviewMapper struct{}

func NewReviewMapper() *ReviewMapper {
	return &ReviewMapper{}
}

func (m *ReviewMapper) ToEntity(r *model.Review) *entity.Review {
	if r == nil {
		return nil
	}

	scores := make(map[string]entity.SegmentScore)
	_ = json.Unmarshal(r.SegmentScores, &scores)

	return &entity.Review{
		Id:              r.Id,
		ResponseQueueId: r.ResponseQueueId,
		ReviewerId:      r.ReviewerId,
		Version:         r.Version,
		IsCurrent:       r.IsCurrent,
		SegmentScores:   scores,
		OverallNotes:    r.OverallNotes,
		FlagReason:      r.FlagReason,
		Status:          r.Status,
		CreatedAt:       r.CreatedAt,
		SubmittedAt:     r.SubmittedAt,
	}
}

func (m *ReviewMapper) ToModel(r *entity.Review) *model.Review {
	if r == nil {
		return nil
	}

	scores, _ := json.Marshal(r.SegmentScores)

	return &model.Review{
		Id:              r.Id,
		ResponseQueueId: r.ResponseQueueId,
		ReviewerId:      r.ReviewerId,
		Version:         r.Version,
		IsCurrent:       r.IsCurrent,
		SegmentScores:   datatypes.JSON(scores),
		OverallNotes:    r.OverallNotes,
		FlagReason:      r.FlagReason,
		Status:          r.Status,
		CreatedAt:       r.CreatedAt,
		SubmittedAt:     r.SubmittedAt,
	}
}

func (m *ReviewMapper) ToEntities(models []*model.Review) []*entity.Review {
	entities := make([]*entity.Review, 0, len(models))
	for _, mod := range models {
		entities = append(entities, m.ToEntity(mod))
	}
	return entities
}
