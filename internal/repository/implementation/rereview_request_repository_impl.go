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

type RereviewRequestRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RereviewRequestMapper
}

func NewRereviewRequestRepository(db *gorm.DB) contract.RereviewRequestRepository {
	return &RereviewRequestRepositoryImpl{
		db:     db,
		mapper: mapper.NewRereviewRequestMapper(),
	}
}

func (r *RereviewRequestRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RereviewRequestRepositoryImpl) Create(ctx context.Context, request *entity.RereviewRequest) error {
	m := r.mapper.ToModel(request)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(m)
	return nil
}

func (r *RereviewRequestRepositoryImpl) Update(ctx context.Context, request *entity.RereviewRequest) error {
	m := r.mapper.ToModel(request)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(m)
	return nil
}

func (r *RereviewRequestRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RereviewRequest, error) {
	var m model.RereviewRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RereviewRequestRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RereviewRequest, error) {
	var models []*model.RereviewRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
