package contract

import (
	"context"

	"github.com/google/uuid"

	"qa-review-be/internal/entity"
	"qa-review-be/internal/repository/specification"
)

// ReviewWithIntent pairs a review with its queue item's intent, for
// aggregate reporting.
type ReviewWithIntent struct {
	Review *entity.Review
	Intent string
}

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	Update(ctx context.Context, review *entity.Review) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Review, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Review, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// NextVersion returns max(version)+1 for the (item, reviewer) track,
	// starting at 1.
	NextVersion(ctx context.Context, queueItemId, reviewerId uuid.UUID) (int, error)

	// FindCurrentSubmittedWithIntent lists current submitted reviews joined
	// with their queue item intent.
	FindCurrentSubmittedWithIntent(ctx context.Context) ([]*ReviewWithIntent, error)
}
