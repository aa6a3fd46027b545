package contract

import (
	"context"

	"qa-review-be/internal/entity"
	"qa-review-be/internal/repository/specification"
)

type ReviewAuditLogRepository interface {
	Create(ctx context.Context, log *entity.ReviewAuditLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReviewAuditLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
