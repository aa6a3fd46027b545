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

type ReviewSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReviewSessionMapper
}

func NewReviewSessionRepository(db *gorm.DB) contract.ReviewSessionRepository {
	return &ReviewSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewReviewSessionMapper(),
	}
}

func (r *ReviewSessionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ReviewSessionRepositoryImpl) Create(ctx context.Context, session *entity.ReviewSession) error {
	m := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ToEntity(m)
	return nil
}

func (r *ReviewSessionRepositoryImpl) Update(ctx context.Context, session *entity.ReviewSession) error {
	m := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ToEntity(m)
	return nil
}

func (r *ReviewSessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ReviewSession, error) {
	var m model.ReviewSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ReviewSessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReviewSession, error) {
	var models []*model.ReviewSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ReviewSession, 0, len(models))
	for _, m := range models {
		entities = append(entities, r.mapper.ToEntity(m))
	}
	return entities, nil
}
