package contract

import (
	"context"

	"qa-review-be/internal/entity"
	"qa-review-be/internal/repository/specification"
)

type ProductionUpdateRepository interface {
	Create(ctx context.Context, update *entity.ProductionUpdate) error
	Update(ctx context.Context, update *entity.ProductionUpdate) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ProductionUpdate, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProductionUpdate, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
