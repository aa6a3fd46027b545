package implementation

import (
	"context"

	"gorm.io/gorm"

	"qa-review-be/internal/entity"
	"qa-review-be/internal/mapper"
	"qa-review-be/internal/model"
	"qa-review-be/internal/repository/contract"
	"qa-review-be/internal/repository/specification"
)

type ReviewAuditLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReviewAuditLogMapper
}

func NewReviewAuditLogRepository(db *gorm.DB) contract.ReviewAuditLogRepository {
	return &ReviewAuditLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewReviewAuditLogMapper(),
	}
}

func (r *ReviewAuditLogRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ReviewAuditLogRepositoryImpl) Create(ctx context.Context, log *entity.ReviewAuditLog) error {
	m := r.mapper.ToModel(log)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*log = *r.mapper.ToEntity(m)
	return nil
}

func (r *ReviewAuditLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReviewAuditLog, error) {
	var models []*model.ReviewAuditLog
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ReviewAuditLogRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ReviewAuditLog{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
