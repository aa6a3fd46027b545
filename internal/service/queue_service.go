package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"qa-review-be/internal/config"
	"qa-review-be/internal/dto"
	"qa-review-be/internal/entity"
	"qa-review-be/internal/pkg/apperr"
	"qa-review-be/internal/pkg/logger"
	"qa-review-be/internal/repository/unitofwork"
)

// candidateBatch bounds how many queue rows each selection tier pulls before
// the claim filter runs.
const candidateBatch = 20

// IQueueService selects the next item a reviewer should look at.
type IQueueService interface {
	// Next returns the highest-priority reviewable item for this reviewer:
	// pending items with an approved rereview request by them first, then
	// never-reviewed pending items, both oldest first. Found=false when the
	// queue is exhausted for this intent.
	Next(ctx context.Context, intent string, reviewerId uuid.UUID) (*dto.NextResponse, error)
}

type queueService struct {
	uowFactory unitofwork.RepositoryFactory
	claims     *cache.Cache
	cfg        config.ReviewConfig
	logger     logger.ILogger
}

func NewQueueService(uowFactory unitofwork.RepositoryFactory, cfg config.ReviewConfig, logger logger.ILogger) IQueueService {
	var claims *cache.Cache
	if cfg.ClaimTTL > 0 {
		claims = cache.New(cfg.ClaimTTL, cfg.ClaimTTL)
	}
	return &queueService{
		uowFactory: uowFactory,
		claims:     claims,
		cfg:        cfg,
		logger:     logger,
	}
}

func (s *queueService) Next(ctx context.Context, intent string, reviewerId uuid.UUID) (*dto.NextResponse, error) {
	const op = "queue.next"

	uow := s.uowFactory.NewUnitOfWork(ctx)
	queueRepo := uow.ResponseQueueRepository()

	candidates, err := queueRepo.FindRereviewCandidates(ctx, intent, reviewerId, candidateBatch)
	if err != nil {
		return nil, apperr.Persistence(op, err)
	}
	if item := s.claim(candidates, reviewerId); item != nil {
		return &dto.NextResponse{Found: true, Item: queueItemToResponse(item)}, nil
	}

	candidates, err = queueRepo.FindUnreviewedCandidates(ctx, intent, candidateBatch)
	if err != nil {
		return nil, apperr.Persistence(op, err)
	}
	if item := s.claim(candidates, reviewerId); item != nil {
		return &dto.NextResponse{Found: true, Item: queueItemToResponse(item)}, nil
	}

	return &dto.NextResponse{Found: false}, nil
}

// claim returns the first candidate not leased to another reviewer, taking
// the lease for this one. With no TTL configured every candidate passes.
func (s *queueService) claim(candidates []*entity.ResponseQueue, reviewerId uuid.UUID) *entity.ResponseQueue {
	for _, item := range candidates {
		if s.claims == nil {
			return item
		}
		key := item.Id.String()
		if holder, found := s.claims.Get(key); found && holder.(uuid.UUID) != reviewerId {
			continue
		}
		s.claims.SetDefault(key, reviewerId)
		return item
	}
	return nil
}

func queueItemToResponse(item *entity.ResponseQueue) *dto.QueueItemResponse {
	segments := make([]dto.SegmentResponse, 0, len(item.Segments))
	for _, seg := range item.Segments {
		segments = append(segments, dto.SegmentResponse{Id: seg.Id, Text: seg.Text})
	}
	return &dto.QueueItemResponse{
		Id:               item.Id,
		Intent:           item.Intent,
		QueryText:        item.QueryText,
		Slots:            item.Slots,
		Segments:         segments,
		SourceReferences: item.SourceReferences,
		Status:           item.Status,
		CreatedAt:        item.CreatedAt,
	}
}
