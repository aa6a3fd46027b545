package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"qa-review-be/internal/constant"
	"qa-review-be/internal/entity"
	"qa-review-be/internal/mapper"
	"qa-review-be/internal/model"
	"qa-review-be/internal/repository/contract"
	"qa-review-be/internal/repository/specification"
)

type ReviewRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReviewMapper
}

func NewReviewRepository(db *gorm.DB) contract.ReviewRepository {
	return &ReviewRepositoryImpl{
		db:     db,
		mapper: mapper.NewReviewMapper(),
	}
}

func (r *ReviewRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ReviewRepositoryImpl) Create(ctx context.Context, review *entity.Review) error {
	m := r.mapper.ToModel(review)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*review = *r.mapper.ToEntity(m)
	return nil
}

func (r *ReviewRepositoryImpl) Update(ctx context.Context, review *entity.Review) error {
	m := r.mapper.ToModel(review)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*review = *r.mapper.ToEntity(m)
	return nil
}

func (r *ReviewRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Review, error) {
	var m model.Review
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ReviewRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Review, error) {
	var models []*model.Review
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ReviewRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Review{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ReviewRepositoryImpl) NextVersion(ctx context.Context, queueItemId, reviewerId uuid.UUID) (int, error) {
	var next int
	err := r.db.WithContext(ctx).
		Model(&model.Review{}).
		Select("COALESCE(MAX(version), 0) + 1").
		Where("response_queue_id = ? AND reviewer_id = ?", queueItemId, reviewerId).
		Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}

func (r *ReviewRepositoryImpl) FindCurrentSubmittedWithIntent(ctx context.Context) ([]*contract.ReviewWithIntent, error) {
	var reviews []*model.Review
	err := r.db.WithContext(ctx).
		Where("is_current = ? AND status = ?", true, constant.StatusSubmitted).
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	if len(reviews) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(reviews))
	for _, rev := range reviews {
		ids = append(ids, rev.ResponseQueueId)
	}

	var items []*model.ResponseQueue
	if err := r.db.WithContext(ctx).Select("id", "intent").Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	intentById := make(map[uuid.UUID]string, len(items))
	for _, item := range items {
		intentById[item.Id] = item.Intent
	}

	result := make([]*contract.ReviewWithIntent, 0, len(reviews))
	for _, rev := range reviews {
		result = append(result, &contract.ReviewWithIntent{
			Review: r.mapper.ToEntity(rev),
			Intent: intentById[rev.ResponseQueueId],
		})
	}
	return result, nil
}
