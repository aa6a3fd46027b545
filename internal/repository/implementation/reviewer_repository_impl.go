package implementation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"qa-review-be/internal/entity"
	"qa-review-be/internal/mapper"
	"qa-review-be/internal/model"
	"qa-review-be/internal/repository/contract"
	"qa-review-be/internal/repository/specification"
)

type ReviewerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReviewerMapper
}

func NewReviewerRepository(db *gorm.DB) contract.ReviewerRepository {
	return &ReviewerRepositoryImpl{
		db:     db,
		mapper: mapper.NewReviewerMapper(),
	}
}

func (r *ReviewerRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ReviewerRepositoryImpl) Create(ctx context.Context, reviewer *entity.Reviewer) error {
	m := r.mapper.ToModel(reviewer)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*reviewer = *r.mapper.ToEntity(m)
	return nil
}

func (r *ReviewerRepositoryImpl) Update(ctx context.Context, reviewer *entity.Reviewer) error {
	m := r.mapper.ToModel(reviewer)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*reviewer = *r.mapper.ToEntity(m)
	return nil
}

func (r *ReviewerRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Reviewer, error) {
	var m model.Reviewer
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ReviewerRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Reviewer, error) {
	var models []*model.Reviewer
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ReviewerRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Reviewer{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
