package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"qa-review-be/internal/config"
	"qa-review-be/internal/dto"
	"qa-review-be/internal/entity"
	"qa-review-be/internal/pkg/apperr"
	"qa-review-be/internal/pkg/logger"
	"qa-review-be/internal/production"
	"qa-review-be/internal/repository/specification"
	"qa-review-be/internal/repository/unitofwork"
)

// IProductionService reconciles reviewed segment edits back onto the
// production content tables.
type IProductionService interface {
	// Reconcile runs inside the caller's unit of work. Returns nil, nil when
	// nothing needed writing (a legitimate no-op).
	Reconcile(ctx context.Context, uow unitofwork.UnitOfWork, item *entity.ResponseQueue, review *entity.Review) (*entity.ProductionUpdate, error)

	// FetchSourceData returns the clinician-facing source evidence for a
	// queue item: formatted provenance for intents that declare a formatter,
	// else the raw lookup row.
	FetchSourceData(ctx context.Context, queueItemId uuid.UUID) (*dto.SourceDataResponse, error)
}

type productionService struct {
	uowFactory unitofwork.RepositoryFactory
	registry   *production.Registry
	cfg        config.ProductionConfig
	logger     logger.ILogger
}

func NewProductionService(
	uowFactory unitofwork.RepositoryFactory,
	registry *production.Registry,
	cfg config.ProductionConfig,
	logger logger.ILogger,
) IProductionService {
	return &productionService{
		uowFactory: uowFactory,
		registry:   registry,
		cfg:        cfg,
		logger:     logger,
	}
}

func (s *productionService) Reconcile(ctx context.Context, uow unitofwork.UnitOfWork, item *entity.ResponseQueue, review *entity.Review) (*entity.ProductionUpdate, error) {
	const op = "production.reconcile"

	mapping, ok := s.registry.Lookup(item.Intent)
	if !ok {
		return nil, apperr.NotFound(op, "no production mapping for intent "+item.Intent)
	}

	lookup, err := mapping.ResolveLookup(item.Slots)
	if err != nil {
		return nil, apperr.NotFound(op, err.Error())
	}

	store := uow.ProductionStore()

	current, err := store.FetchRecord(ctx, mapping.FullTable(), lookup, s.cfg.LockRows)
	if err != nil {
		return nil, apperr.Persistence(op, err)
	}
	if current == nil {
		return nil, apperr.NotFound(op, "no production record for lookup key")
	}

	// Pre-image restricted to the mapped columns.
	original := make(map[string]interface{})
	for _, col := range mapping.MappedColumns() {
		if v, ok := current[col]; ok {
			original[col] = v
		}
	}

	// Stage the post-image: suggestion wins, else the original generated
	// segment text. Display-only segments are skipped.
	updated := make(map[string]interface{})
	for segmentId, score := range review.SegmentScores {
		col := mapping.SegmentColumns[segmentId]
		if col == "" {
			continue
		}
		if score.Suggestion != "" {
			updated[col] = score.Suggestion
			continue
		}
		if text, ok := item.SegmentText(segmentId); ok {
			updated[col] = text
		}
	}

	if len(updated) == 0 {
		s.logger.Info("production", "no mapped fields to update", map[string]interface{}{
			"queue_item_id": item.Id,
			"intent":        item.Intent,
		})
		return nil, nil
	}

	rows, err := store.UpdateRecord(ctx, mapping.FullTable(), lookup, updated)
	if err != nil {
		return nil, apperr.Persistence(op, err)
	}
	if rows == 0 {
		// The record changed or vanished between fetch and write.
		return nil, apperr.StateConflict(op, "production record no longer matches lookup key")
	}
	if rows > 1 {
		s.logger.Warn("production", "lookup key matched multiple rows", map[string]interface{}{
			"table":  mapping.FullTable(),
			"intent": item.Intent,
			"rows":   rows,
		})
	}

	record := &entity.ProductionUpdate{
		Id:           uuid.New(),
		ReviewId:     review.Id,
		Intent:       item.Intent,
		TargetTable:  mapping.FullTable(),
		OriginalData: original,
		UpdatedData:  updated,
		UpdatedBy:    review.ReviewerId,
		UpdatedAt:    time.Now(),
	}
	if err := uow.ProductionUpdateRepository().Create(ctx, record); err != nil {
		return nil, apperr.Persistence(op, err)
	}

	s.logger.Info("production", "production record updated", map[string]interface{}{
		"table":   mapping.FullTable(),
		"intent":  item.Intent,
		"columns": len(updated),
	})

	return record, nil
}

func (s *productionService) FetchSourceData(ctx context.Context, queueItemId uuid.UUID) (*dto.SourceDataResponse, error) {
	const op = "production.fetchSource"

	uow := s.uowFactory.NewUnitOfWork(ctx)

	item, err := uow.ResponseQueueRepository().FindOne(ctx, specification.ByID{ID: queueItemId})
	if err != nil {
		return nil, apperr.Persistence(op, err)
	}
	if item == nil {
		return nil, apperr.NotFound(op, "queue item not found")
	}

	mapping, ok := s.registry.Lookup(item.Intent)
	if !ok {
		return nil, apperr.NotFound(op, "no source mapping for intent "+item.Intent)
	}

	lookup, err := mapping.ResolveLookup(item.Slots)
	if err != nil {
		return nil, apperr.NotFound(op, err.Error())
	}

	record, err := uow.ProductionStore().FetchRecord(ctx, mapping.FullTable(), lookup, false)
	if err != nil {
		return nil, apperr.Persistence(op, err)
	}
	if record == nil {
		return nil, apperr.NotFound(op, "no source record for lookup key")
	}

	if mapping.FormatSource != nil {
		record = mapping.FormatSource(record)
	}

	return &dto.SourceDataResponse{
		Intent: item.Intent,
		Data:   record,
	}, nil
}
