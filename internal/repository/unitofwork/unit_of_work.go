package unitofwork

import (
	"context"

	"qa-review-be/internal/repository/contract"
)

// UnitOfWork scopes repository access to one transaction. Every workflow
// operation commits all of its side effects through a single unit of work or
// none of them.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ReviewerRepository() contract.ReviewerRepository
	ResponseQueueRepository() contract.ResponseQueueRepository
	ReviewRepository() contract.ReviewRepository
	ReviewAuditLogRepository() contract.ReviewAuditLogRepository
	RereviewRequestRepository() contract.RereviewRequestRepository
	ReviewSessionRepository() contract.ReviewSessionRepository
	ProductionUpdateRepository() contract.ProductionUpdateRepository
	ProductionStore() contract.ProductionStore
}
