package contract

import (
	"context"

	"github.com/google/uuid"

	"qa-review-be/internal/entity"
	"qa-review-be/internal/repository/specification"
)

type ResponseQueueRepository interface {
	Create(ctx context.Context, item *entity.ResponseQueue) error
	Update(ctx context.Context, item *entity.ResponseQueue) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ResponseQueue, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ResponseQueue, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// FindRereviewCandidates lists pending items of this intent with an
	// approved rereview request by this reviewer, oldest first.
	FindRereviewCandidates(ctx context.Context, intent string, reviewerId uuid.UUID, limit int) ([]*entity.ResponseQueue, error)

	// FindUnreviewedCandidates lists pending items of this intent that no
	// review exists for at all, oldest first.
	FindUnreviewedCandidates(ctx context.Context, intent string, limit int) ([]*entity.ResponseQueue, error)
}
