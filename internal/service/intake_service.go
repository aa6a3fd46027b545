package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"qa-review-be/internal/constant"
	"qa-review-be/internal/dto"
	"qa-review-be/internal/entity"
	"qa-review-be/internal/pkg/apperr"
	"qa-review-be/internal/pkg/logger"
	"qa-review-be/internal/repository/unitofwork"
	"qa-review-be/pkg/answer"
)

// IIntakeService asks the answer service for a candidate response and
// enqueues it for human review.
type IIntakeService interface {
	Generate(ctx context.Context, req *dto.GenerateRequest) (*dto.QueueItemResponse, error)
}

type intakeService struct {
	uowFactory   unitofwork.RepositoryFactory
	answerClient answer.Client
	logger       logger.ILogger
}

func NewIntakeService(uowFactory unitofwork.RepositoryFactory, answerClient answer.Client, logger logger.ILogger) IIntakeService {
	return &intakeService{
		uowFactory:   uowFactory,
		answerClient: answerClient,
		logger:       logger,
	}
}

func (s *intakeService) Generate(ctx context.Context, req *dto.GenerateRequest) (*dto.QueueItemResponse, error) {
	const op = "queue.generate"

	generated, err := s.answerClient.Generate(ctx, req.Intent, req.Slots)
	if err != nil {
		s.logger.Error("intake", "answer generation failed", map[string]interface{}{
			"intent": req.Intent,
			"error":  err.Error(),
		})
		return nil, apperr.Persistence(op, err)
	}
	if len(generated.Segments) == 0 {
		return nil, apperr.StateConflict(op, "answer service produced no segments")
	}

	segments := make([]entity.Segment, 0, len(generated.Segments))
	for _, seg := range generated.Segments {
		segments = append(segments, entity.Segment{Id: seg.Id, Text: seg.Text})
	}

	now := time.Now()
	item := &entity.ResponseQueue{
		Id:               uuid.New(),
		Intent:           req.Intent,
		QueryText:        req.QueryText,
		Slots:            req.Slots,
		Segments:         segments,
		SourceReferences: generated.SourceReferences,
		GeneratedAt:      now,
		Status:           constant.StatusPending,
		CreatedAt:        now,
	}
	if generated.ServiceVersion != "" {
		version := generated.ServiceVersion
		item.GeneratedByServiceVersion = &version
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ResponseQueueRepository().Create(ctx, item); err != nil {
		return nil, apperr.Persistence(op, err)
	}

	s.logger.Info("intake", "queued generated response", map[string]interface{}{
		"queue_item_id": item.Id,
		"intent":        item.Intent,
		"segments":      len(segments),
	})

	return queueItemToResponse(item), nil
}
