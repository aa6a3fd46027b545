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

type ResponseQueueRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ResponseQueueMapper
}

func NewResponseQueueRepository(db *gorm.DB) contract.ResponseQueueRepository {
	return &ResponseQueueRepositoryImpl{
		db:     db,
		mapper: mapper.NewResponseQueueMapper(),
	}
}

func (r *ResponseQueueRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ResponseQueueRepositoryImpl) Create(ctx context.Context, item *entity.ResponseQueue) error {
	m := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(m)
	return nil
}

func (r *ResponseQueueRepositoryImpl) Update(ctx context.Context, item *entity.ResponseQueue) error {
	m := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(m)
	return nil
}

func (r *ResponseQueueRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ResponseQueue, error) {
	var m model.ResponseQueue
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ResponseQueueRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ResponseQueue, error) {
	var models []*model.ResponseQueue
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ResponseQueueRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ResponseQueue{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ResponseQueueRepositoryImpl) FindRereviewCandidates(ctx context.Context, intent string, reviewerId uuid.UUID, limit int) ([]*entity.ResponseQueue, error) {
	var models []*model.ResponseQueue
	err := r.db.WithContext(ctx).
		Model(&model.ResponseQueue{}).
		Select("DISTINCT response_queue.*").
		Joins("JOIN rereview_requests ON rereview_requests.response_queue_id = response_queue.id").
		Where("response_queue.intent = ?", intent).
		Where("response_queue.status = ?", constant.StatusPending).
		Where("rereview_requests.requested_by = ?", reviewerId).
		Where("rereview_requests.status = ?", constant.RereviewApproved).
		Order("response_queue.created_at ASC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ResponseQueueRepositoryImpl) FindUnreviewedCandidates(ctx context.Context, intent string, limit int) ([]*entity.ResponseQueue, error) {
	var models []*model.ResponseQueue
	err := r.db.WithContext(ctx).
		Model(&model.ResponseQueue{}).
		Select("response_queue.*").
		Joins("LEFT JOIN reviews ON reviews.response_queue_id = response_queue.id").
		Where("response_queue.intent = ?", intent).
		Where("response_queue.status = ?", constant.StatusPending).
		Where("reviews.id IS NULL").
		Order("response_queue.created_at ASC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
