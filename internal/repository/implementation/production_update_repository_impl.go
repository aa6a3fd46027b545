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

type ProductionUpdateRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProductionUpdateMapper
}

func NewProductionUpdateRepository(db *gorm.DB) contract.ProductionUpdateRepository {
	return &ProductionUpdateRepositoryImpl{
		db:     db,
		mapper: mapper.NewProductionUpdateMapper(),
	}
}

func (r *ProductionUpdateRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProductionUpdateRepositoryImpl) Create(ctx context.Context, update *entity.ProductionUpdate) error {
	m := r.mapper.ToModel(update)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*update = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProductionUpdateRepositoryImpl) Update(ctx context.Context, update *entity.ProductionUpdate) error {
	m := r.mapper.ToModel(update)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*update = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProductionUpdateRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ProductionUpdate, error) {
	var m model.ProductionUpdate
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ProductionUpdateRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProductionUpdate, error) {
	var models []*model.ProductionUpdate
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ProductionUpdateRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ProductionUpdate{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
