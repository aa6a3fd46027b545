package mapper

import (
	"qa-review-be/internal/entity"
	"qa-review-be/internal/model"
)

type ReviewSessionMapper struct{}

func NewReviewSessionMapper() *ReviewSessionMapper {
	return &ReviewSessionMapper{}
}

func (m *ReviewSessionMapper) ToEntity(s *model.ReviewSession) *entity.ReviewSession {
	if s == nil {
		return nil
	}
	return &entity.ReviewSession{
		Id:               s.Id,
		ReviewerId:       s.ReviewerId,
		SessionStart:     s.SessionStart,
		SessionEnd:       s.SessionEnd,
		ReviewsCompleted: s.ReviewsCompleted,
		ReviewsFlagged:   s.ReviewsFlagged,
		ReviewsDrafted:   s.ReviewsDrafted,
		ReviewsSkipped:   s.ReviewsSkipped,
	}
}

func (m *ReviewSessionMapper) ToModel(s *entity.ReviewSession) *model.ReviewSession {
	if s == nil {
		return nil
	}
	return &model.ReviewSession{
		Id:               s.Id,
		ReviewerId:       s.ReviewerId,
		SessionStart:     s.SessionStart,
		SessionEnd:       s.SessionEnd,
		ReviewsCompleted: s.ReviewsCompleted,
		ReviewsFlagged:   s.ReviewsFlagged,
		ReviewsDrafted:   s.ReviewsDrafted,
		ReviewsSkipped:   s.ReviewsSkipped,
	}
}
