package service

import (
	"context"

	"github.com/google/uuid"

	"qa-review-be/internal/constant"
	"qa-review-be/internal/dto"
	"qa-review-be/internal/entity"
	"qa-review-be/internal/pkg/apperr"
	"qa-review-be/internal/pkg/logger"
	"qa-review-be/internal/repository/specification"
	"qa-review-be/internal/repository/unitofwork"
)

// IAdminService is the read-mostly reporting surface plus reviewer account
// management.
type IAdminService interface {
	DashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
	FlaggedItems(ctx context.Context) ([]*dto.FlaggedItemResponse, error)
	Reviewers(ctx context.Context) ([]*dto.ReviewerStatsResponse, error)
	SetReviewerActive(ctx context.Context, reviewerId uuid.UUID, isActive bool) (*dto.ReviewerStatsResponse, error)
	ProductionUpdates(ctx context.Context, limit, offset int) ([]*dto.ProductionUpdateResponse, error)
	MarkProductionUpdateRolledBack(ctx context.Context, updateId uuid.UUID, reason string) (*dto.ProductionUpdateResponse, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (s *adminService) DashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	const op = "admin.dashboard"

	uow := s.uowFactory.NewUnitOfWork(ctx)

	counts := make(map[string]int64, 4)
	for _, status := range []string{constant.StatusPending, constant.StatusDraft, constant.StatusFlagged, constant.StatusSubmitted} {
		count, err := uow.ResponseQueueRepository().Count(ctx, specification.ByStatus{Status: status})
		if err != nil {
			return nil, apperr.Persistence(op, err)
		}
		counts[status] = count
	}

	reviews, err := uow.ReviewRepository().FindCurrentSubmittedWithIntent(ctx)
	if err != nil {
		return nil, apperr.Persistence(op, err)
	}

	sums := make(map[string]float64)
	tallies := make(map[string]int)
	for _, rw := range reviews {
		sums[rw.Intent] += rw.Review.AverageScore()
		tallies[rw.Intent]++
	}
	averages := make(map[string]float64, len(sums))
	for intent, sum := range sums {
		averages[intent] = sum / float64(tallies[intent])
	}

	reviewerCount, err := uow.ReviewerRepository().Count(ctx)
	if err != nil {
		return nil, apperr.Persistence(op, err)
	}
	writeCount, err := uow.ProductionUpdateRepository().Count(ctx)
	if err != nil {
		return nil, apperr.Persistence(op, err)
	}

	return &dto.DashboardStatsResponse{
		QueueCountsByStatus:  counts,
		AverageScoreByIntent: averages,
		TotalReviewers:       reviewerCount,
		TotalProductionWrite: writeCount,
	}, nil
}

func (s *adminService) FlaggedItems(ctx context.Context) ([]*dto.FlaggedItemResponse, error) {
	const op = "admin.flagged"

	uow := s.uowFactory.NewUnitOfWork(ctx)

	reviews, err := uow.ReviewRepository().FindAll(ctx,
		specification.ByStatus{Status: constant.StatusFlagged},
		specification.IsCurrent{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, apperr.Persistence(op, err)
	}

	out := make([]*dto.FlaggedItemResponse, 0, len(reviews))
	for _, review := range reviews {
		item, err := uow.ResponseQueueRepository().FindOne(ctx, specification.ByID{ID: review.ResponseQueueId})
		if err != nil {
			return nil, apperr.Persistence(op, err)
		}
		reviewer, err := uow.ReviewerRepository().FindOne(ctx, specification.ByID{ID: review.ReviewerId})
		if err != nil {
			return nil, apperr.Persistence(op, err)
		}
		if item == nil || reviewer == nil {
			s.logger.Warn("admin", "flagged review with missing relations", map[string]interface{}{
				"review_id": review.Id,
			})
			continue
		}

		reason := ""
		if review.FlagReason != nil {
			reason = *review.FlagReason
		}
		out = append(out, &dto.FlaggedItemResponse{
			QueueItemId:  item.Id,
			Intent:       item.Intent,
			QueryText:    item.QueryText,
			FlagReason:   reason,
			ReviewerId:   reviewer.Id,
			ReviewerName: reviewer.FullName,
			FlaggedAt:    review.CreatedAt,
		})
	}
	return out, nil
}

func (s *adminService) Reviewers(ctx context.Context) ([]*dto.ReviewerStatsResponse, error) {
	const op = "admin.reviewers"

	uow := s.uowFactory.NewUnitOfWork(ctx)

	reviewers, err := uow.ReviewerRepository().FindAll(ctx, specification.OrderBy{Field: "created_at"})
	if err != nil {
		return nil, apperr.Persistence(op, err)
	}

	out := make([]*dto.ReviewerStatsResponse, 0, len(reviewers))
	for _, reviewer := range reviewers {
		out = append(out, reviewerToResponse(reviewer))
	}
	return out, nil
}

func (s *adminService) SetReviewerActive(ctx context.Context, reviewerId uuid.UUID, isActive bool) (*dto.ReviewerStatsResponse, error) {
	const op = "admin.setReviewerActive"

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

	reviewer.IsActive = isActive
	if err := uow.ReviewerRepository().Update(ctx, reviewer); err != nil {
		return nil, apperr.Persistence(op, err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperr.Persistence(op, err)
	}
	return reviewerToResponse(reviewer), nil
}

func (s *adminService) ProductionUpdates(ctx context.Context, limit, offset int) ([]*dto.ProductionUpdateResponse, error) {
	const op = "admin.productionUpdates"

	if limit <= 0 || limit > 100 {
		limit = 50
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	records, err := uow.ProductionUpdateRepository().FindAll(ctx,
		specification.OrderBy{Field: "updated_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, apperr.Persistence(op, err)
	}

	out := make([]*dto.ProductionUpdateResponse, 0, len(records))
	for _, record := range records {
		out = append(out, productionUpdateToResponse(record))
	}
	return out, nil
}

// MarkProductionUpdateRolledBack records that a production write was manually
// reverted. It does not touch the production tables itself.
func (s *adminService) MarkProductionUpdateRolledBack(ctx context.Context, updateId uuid.UUID, reason string) (*dto.ProductionUpdateResponse, error) {
	const op = "admin.markRolledBack"

	if reason == "" {
		return nil, apperr.Validation(op, "rollback reason is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperr.Persistence(op, err)
	}
	defer func() { _ = uow.Rollback() }()

	record, err := uow.ProductionUpdateRepository().FindOne(ctx, specification.ByID{ID: updateId})
	if err != nil {
		return nil, apperr.Persistence(op, err)
	}
	if record == nil {
		return nil, apperr.NotFound(op, "production update not found")
	}
	if record.RolledBack {
		return nil, apperr.StateConflict(op, "production update already marked rolled back")
	}

	record.RolledBack = true
	record.RollbackReason = &reason
	if err := uow.ProductionUpdateRepository().Update(ctx, record); err != nil {
		return nil, apperr.Persistence(op, err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperr.Persistence(op, err)
	}
	return productionUpdateToResponse(record), nil
}

func reviewerToResponse(reviewer *entity.Reviewer) *dto.ReviewerStatsResponse {
	return &dto.ReviewerStatsResponse{
		Id:                    reviewer.Id,
		Email:                 reviewer.Email,
		FullName:              reviewer.FullName,
		Specialization:        reviewer.Specialization,
		Role:                  reviewer.Role,
		IsActive:              reviewer.IsActive,
		LastLogin:             reviewer.LastLogin,
		TotalReviewsSubmitted: reviewer.TotalReviewsSubmitted,
		TotalReviewsFlagged:   reviewer.TotalReviewsFlagged,
		TotalDraftsSaved:      reviewer.TotalDraftsSaved,
	}
}
