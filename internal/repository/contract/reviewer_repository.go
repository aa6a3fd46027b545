package contract

import (
	"context"

	"qa-review-be/internal/entity"
	"qa-review-be/internal/repository/specification"
)

type ReviewerRepository interface {
	Create(ctx context.Context, reviewer *entity.Reviewer) error
	Update(ctx context.Context, reviewer *entity.Reviewer) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Reviewer, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Reviewer, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
