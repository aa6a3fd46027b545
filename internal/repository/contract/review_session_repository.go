package contract

import (
	"context"

	"qa-review-be/internal/entity"
	"qa-review-be/internal/repository/specification"
)

type ReviewSessionRepository interface {
	Create(ctx context.Context, session *entity.ReviewSession) error
	Update(ctx context.Context, session *entity.ReviewSession) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ReviewSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReviewSession, error)
}
