package contract

import (
	"context"

	"qa-review-be/internal/entity"
	"qa-review-be/internal/repository/specification"
)

type RereviewRequestRepository interface {
	Create(ctx context.Context, request *entity.RereviewRequest) error
	Update(ctx context.Context, request *entity.RereviewRequest) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RereviewRequest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RereviewRequest, error)
}
