package mapper

import (
	"qa-review-be/internal/entity"
	"qa-review-be/internal/model"
)

type ReviewerMapper struct{}

func NewReviewerMapper() *ReviewerMapper {
	return &ReviewerMapper{}
}

func (m *ReviewerMapper) ToEntity(r *model.Reviewer) *entity.Reviewer {
	if r == nil {
		return nil
	}
	return &entity.Reviewer{
		Id:                    r.Id,
		Email:                 r.Email,
		FullName:              r.FullName,
		Specialization:        r.Specialization,
		Role:                  r.Role,
		IsActive:              r.IsActive,
		LastLogin:             r.LastLogin,
		TotalReviewsSubmitted: r.TotalReviewsSubmitted,
		TotalReviewsFlagged:   r.TotalReviewsFlagged,
		TotalDraftsSaved:      r.TotalDraftsSaved,
		CreatedAt:             r.CreatedAt,
	}
}

func (m *ReviewerMapper) ToModel(r *entity.Reviewer) *model.Reviewer {
	if r == nil {
		return nil
	}
	return &model.Reviewer{
		Id:                    r.Id,
		Email:                 r.Email,
		FullName:              r.FullName,
		Specialization:        r.Specialization,
		Role:                  r.Role,
		IsActive:              r.IsActive,
		LastLogin:             r.LastLogin,
		TotalReviewsSubmitted: r.TotalReviewsSubmitted,
		TotalReviewsFlagged:   r.TotalReviewsFlagged,
		TotalDraftsSaved:      r.TotalDraftsSaved,
		CreatedAt:             r.CreatedAt,
	}
}

func (m *ReviewerMapper) ToEntities(models []*model.Reviewer) []*entity.Reviewer {
	entities := make([]*entity.Reviewer, 0, len(models))
	for _, mod := range models {
		entities = append(entities, m.ToEntity(mod))
	}
	return entities
}
