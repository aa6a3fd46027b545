package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"qa-review-be/internal/dto"
	"qa-review-be/internal/entity"
	"qa-review-be/internal/pkg/apperr"
	"qa-review-be/internal/pkg/logger"
	"qa-review-be/internal/repository/specification"
	"qa-review-be/internal/repository/unitofwork"
)

// ISessionService manages review session lifecycle. A reviewer has at most
// one open session at a time.
type ISessionService interface {
	Open(ctx context.Context, reviewerId uuid.UUID) (*dto.OpenSessionResponse, error)
	Close(ctx context.Context, sessionId, reviewerId uuid.UUID) error
	Stats(ctx context.Context, sessionId, reviewerId uuid.UUID) (*dto.SessionStatsResponse, error)
}

type sessionService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewSessionService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) ISessionService {
	return &sessionService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (s *sessionService) Open(ctx context.Context, reviewerId uuid.UUID) (*dto.OpenSessionResponse, error) {
	const op = "session.open"

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperr.Persistence(op, err)
	}
	defer func() { _ = uow.Rollback() }()

	reviewer, err := uow.ReviewerRepository().FindOne(ctx, specification.ByID{ID: reviewerId})
	if err != nil {
		return nil, apperr.Persistence(op, err)
	}
	if reviewer == nil {
		return nil, apperr.NotFound(op, "reviewer not found")
	}
	if !reviewer.IsActive {
		return nil, apperr.Authorization(op, "reviewer account is deactivated")
	}

	// Close any session left dangling by a crashed or abandoned client.
	dangling, err := uow.ReviewSessionRepository().FindOne(ctx,
		specification.ByReviewer{ReviewerID: reviewerId},
		specification.OpenSession{},
	)
	if err != nil {
		return nil, apperr.Persistence(op, err)
	}
	now := time.Now()
	if dangling != nil {
		dangling.SessionEnd = &now
		if err := uow.ReviewSessionRepository().Update(ctx, dangling); err != nil {
			return nil, apperr.Persistence(op, err)
		}
		s.logger.Warn("session", "closed dangling session", map[string]interface{}{
			"session_id":  dangling.Id,
			"reviewer_id": reviewerId,
		})
	}

	session := &entity.ReviewSession{
		Id:           uuid.New(),
		ReviewerId:   reviewerId,
		SessionStart: now,
	}
	if err := uow.ReviewSessionRepository().Create(ctx, session); err != nil {
		return nil, apperr.Persistence(op, err)
	}

	reviewer.LastLogin = &now
	if err := uow.ReviewerRepository().Update(ctx, reviewer); err != nil {
		return nil, apperr.Persistence(op, err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperr.Persistence(op, err)
	}

	return &dto.OpenSessionResponse{
		SessionId:    session.Id,
		SessionStart: session.SessionStart,
	}, nil
}

func (s *sessionService) Close(ctx context.Context, sessionId, reviewerId uuid.UUID) error {
	const op = "session.close"

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return apperr.Persistence(op, err)
	}
	defer func() { _ = uow.Rollback() }()

	session, err := uow.ReviewSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return apperr.Persistence(op, err)
	}
	if session == nil {
		return apperr.NotFound(op, "session not found")
	}
	if session.ReviewerId != reviewerId {
		return apperr.Authorization(op, "session belongs to another reviewer")
	}
	if session.SessionEnd != nil {
		return apperr.StateConflict(op, "session already closed")
	}

	now := time.Now()
	session.SessionEnd = &now
	if err := uow.ReviewSessionRepository().Update(ctx, session); err != nil {
		return apperr.Persistence(op, err)
	}

	if err := uow.Commit(); err != nil {
		return apperr.Persistence(op, err)
	}
	return nil
}

func (s *sessionService) Stats(ctx context.Context, sessionId, reviewerId uuid.UUID) (*dto.SessionStatsResponse, error) {
	const op = "session.stats"

	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ReviewSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, apperr.Persistence(op, err)
	}
	if session == nil {
		return nil, apperr.NotFound(op, "session not found")
	}
	if session.ReviewerId != reviewerId {
		return nil, apperr.Authorization(op, "session belongs to another reviewer")
	}

	reviewer, err := uow.ReviewerRepository().FindOne(ctx, specification.ByID{ID: reviewerId})
	if err != nil {
		return nil, apperr.Persistence(op, err)
	}
	if reviewer == nil {
		return nil, apperr.NotFound(op, "reviewer not found")
	}

	return &dto.SessionStatsResponse{
		SessionId:        session.Id,
		ReviewsCompleted: session.ReviewsCompleted,
		ReviewsFlagged:   session.ReviewsFlagged,
		ReviewsDrafted:   session.ReviewsDrafted,
		ReviewsSkipped:   session.ReviewsSkipped,
		TotalSubmitted:   reviewer.TotalReviewsSubmitted,
		TotalFlagged:     reviewer.TotalReviewsFlagged,
		TotalDrafts:      reviewer.TotalDraftsSaved,
	}, nil
}
