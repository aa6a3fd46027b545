package unitofwork

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"qa-review-be/internal/repository/contract"
	"qa-review-be/internal/repository/implementation"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) ReviewerRepository() contract.ReviewerRepository {
	return implementation.NewReviewerRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ResponseQueueRepository() contract.ResponseQueueRepository {
	return implementation.NewResponseQueueRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ReviewRepository() contract.ReviewRepository {
	return implementation.NewReviewRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ReviewAuditLogRepository() contract.ReviewAuditLogRepository {
	return implementation.NewReviewAuditLogRepository(u.getDB())
}

func (u *UnitOfWorkImpl) RereviewRequestRepository() contract.RereviewRequestRepository {
	return implementation.NewRereviewRequestRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ReviewSessionRepository() contract.ReviewSessionRepository {
	return implementation.NewReviewSessionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ProductionUpdateRepository() contract.ProductionUpdateRepository {
	return implementation.NewProductionUpdateRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ProductionStore() contract.ProductionStore {
	return implementation.NewProductionStore(u.getDB())
}
