package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"qa-review-be/internal/config"
	"qa-review-be/internal/constant"
	"qa-review-be/internal/dto"
	"qa-review-be/internal/entity"
	"qa-review-be/internal/pkg/apperr"
	"qa-review-be/internal/pkg/logger"
	"qa-review-be/internal/repository/specification"
	"qa-review-be/internal/repository/unitofwork"
)

// IReviewService is the review workflow engine: every operation commits all
// of its side effects through a single unit of work or none of them.
type IReviewService interface {
	Skip(ctx context.Context, queueItemId, reviewerId, sessionId uuid.UUID) error
	SaveDraft(ctx context.Context, queueItemId, reviewerId uuid.UUID, req *dto.SaveDraftRequest) (*dto.ReviewResponse, error)
	Flag(ctx context.Context, queueItemId, reviewerId uuid.UUID, req *dto.FlagRequest) (*dto.ReviewResponse, error)
	Submit(ctx context.Context, queueItemId, reviewerId uuid.UUID, req *dto.SubmitRequest) (*dto.SubmitResponse, error)
	RequestRereview(ctx context.Context, reviewerId uuid.UUID, req *dto.RequestRereviewRequest) (*dto.RereviewResponse, error)
}

type reviewService struct {
	uowFactory        unitofwork.RepositoryFactory
	productionService IProductionService
	publisherService  IPublisherService
	cfg               config.ReviewConfig
	logger            logger.ILogger
}

func NewReviewService(
	uowFactory unitofwork.RepositoryFactory,
	productionService IProductionService,
	publisherService IPublisherService,
	cfg config.ReviewConfig,
	logger logger.ILogger,
) IReviewService {
	return &reviewService{
		uowFactory:        uowFactory,
		productionService: productionService,
		publisherService:  publisherService,
		cfg:               cfg,
		logger:            logger,
	}
}

func (s *reviewService) Skip(ctx context.Context, queueItemId, reviewerId, sessionId uuid.UUID) error {
	const op = "review.skip"

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return apperr.Persistence(op, err)
	}
	defer func() { _ = uow.Rollback() }()

	if err := s.bumpSession(ctx, uow, sessionId, reviewerId, func(sess *entity.ReviewSession) {
		sess.ReviewsSkipped++
	}); err != nil {
		return err
	}

	audit := &entity.ReviewAuditLog{
		Id:         uuid.New(),
		ReviewerId: reviewerId,
		Action:     constant.ActionSkipped,
		Changes:    map[string]interface{}{"queue_item_id": queueItemId.String()},
		Timestamp:  time.Now(),
	}
	if err := uow.ReviewAuditLogRepository().Create(ctx, audit); err != nil {
		return apperr.Persistence(op, err)
	}

	if err := uow.Commit(); err != nil {
		return apperr.Persistence(op, err)
	}
	return nil
}

func (s *reviewService) SaveDraft(ctx context.Context, queueItemId, reviewerId uuid.UUID, req *dto.SaveDraftRequest) (*dto.ReviewResponse, error) {
	const op = "review.saveDraft"

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperr.Persistence(op, err)
	}
	defer func() { _ = uow.Rollback() }()

	item, err := uow.ResponseQueueRepository().FindOne(ctx, specification.ByID{ID: queueItemId})
	if err != nil {
		return nil, apperr.Persistence(op, err)
	}
	if item == nil {
		return nil, apperr.NotFound(op, "queue item not found")
	}
	previousStatus := item.Status

	existing, err := uow.ReviewRepository().FindOne(ctx,
		specification.ByQueueItem{QueueItemID: queueItemId},
		specification.ByReviewer{ReviewerID: reviewerId},
		specification.ByStatus{Status: constant.StatusDraft},
	)
	if err != nil {
		return nil, apperr.Persistence(op, err)
	}

	var review *entity.Review
	if existing != nil {
		existing.SegmentScores = toSegmentScores(req.Scores)
		existing.OverallNotes = req.Notes
		if err := uow.ReviewRepository().Update(ctx, existing); err != nil {
			return nil, apperr.Persistence(op, err)
		}
		review = existing
	} else {
		review, err = s.createReview(ctx, uow, item, reviewerId, req.Scores, req.Notes, constant.StatusDraft, nil)
		if err != nil {
			return nil, err
		}
	}

	item.Status = constant.StatusDraft
	item.AssignedTo = &reviewerId
	if err := uow.ResponseQueueRepository().Update(ctx, item); err != nil {
		return nil, apperr.Persistence(op, err)
	}

	if err := s.bumpSession(ctx, uow, req.SessionId, reviewerId, func(sess *entity.ReviewSession) {
		sess.ReviewsDrafted++
	}); err != nil {
		return nil, err
	}
	if err := s.bumpReviewer(ctx, uow, reviewerId, func(r *entity.Reviewer) {
		r.TotalDraftsSaved++
	}); err != nil {
		return nil, err
	}

	if err := s.writeAudit(ctx, uow, review.Id, reviewerId, constant.ActionSavedDraft, previousStatus, constant.StatusDraft, map[string]interface{}{
		"segments_scored": len(req.Scores),
	}); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, apperr.Persistence(op, err)
	}
	return reviewToResponse(review), nil
}

func (s *reviewService) Flag(ctx context.Context, queueItemId, reviewerId uuid.UUID, req *dto.FlagRequest) (*dto.ReviewResponse, error) {
	const op = "review.flag"

	if req.Reason == "" {
		return nil, apperr.Validation(op, "flag reason is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperr.Persistence(op, err)
	}
	defer func() { _ = uow.Rollback() }()

	item, err := uow.ResponseQueueRepository().FindOne(ctx, specification.ByID{ID: queueItemId})
	if err != nil {
		return nil, apperr.Persistence(op, err)
	}
	if item == nil {
		return nil, apperr.NotFound(op, "queue item not found")
	}
	previousStatus := item.Status

	reason := req.Reason
	review, err := s.createReview(ctx, uow, item, reviewerId, req.Scores, req.Notes, constant.StatusFlagged, &reason)
	if err != nil {
		return nil, err
	}

	item.Status = constant.StatusFlagged
	item.AssignedTo = &reviewerId
	if err := uow.ResponseQueueRepository().Update(ctx, item); err != nil {
		return nil, apperr.Persistence(op, err)
	}

	if err := s.bumpSession(ctx, uow, req.SessionId, reviewerId, func(sess *entity.ReviewSession) {
		sess.ReviewsFlagged++
	}); err != nil {
		return nil, err
	}

	var reviewerName string
	if err := s.bumpReviewer(ctx, uow, reviewerId, func(r *entity.Reviewer) {
		r.TotalReviewsFlagged++
		reviewerName = r.FullName
	}); err != nil {
		return nil, err
	}

	if err := s.writeAudit(ctx, uow, review.Id, reviewerId, constant.ActionFlagged, previousStatus, constant.StatusFlagged, map[string]interface{}{
		"reason": req.Reason,
	}); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, apperr.Persistence(op, err)
	}

	s.publisherService.PublishReviewFlagged(dto.ReviewFlaggedMessage{
		QueueItemId:  item.Id,
		ReviewId:     review.Id,
		ReviewerId:   reviewerId,
		ReviewerName: reviewerName,
		Intent:       item.Intent,
		QueryText:    item.QueryText,
		Reason:       req.Reason,
	})

	return reviewToResponse(review), nil
}

func (s *reviewService) Submit(ctx context.Context, queueItemId, reviewerId uuid.UUID, req *dto.SubmitRequest) (*dto.SubmitResponse, error) {
	const op = "review.submit"

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperr.Persistence(op, err)
	}
	defer func() { _ = uow.Rollback() }()

	item, err := uow.ResponseQueueRepository().FindOne(ctx, specification.ByID{ID: queueItemId})
	if err != nil {
		return nil, apperr.Persistence(op, err)
	}
	if item == nil {
		return nil, apperr.NotFound(op, "queue item not found")
	}
	previousStatus := item.Status

	review, err := s.createReview(ctx, uow, item, reviewerId, req.Scores, req.Notes, constant.StatusSubmitted, nil)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	review.SubmittedAt = &now
	if err := uow.ReviewRepository().Update(ctx, review); err != nil {
		return nil, apperr.Persistence(op, err)
	}

	item.Status = constant.StatusSubmitted
	item.AssignedTo = &reviewerId
	if err := uow.ResponseQueueRepository().Update(ctx, item); err != nil {
		return nil, apperr.Persistence(op, err)
	}

	if err := s.bumpSession(ctx, uow, req.SessionId, reviewerId, func(sess *entity.ReviewSession) {
		sess.ReviewsCompleted++
	}); err != nil {
		return nil, err
	}
	if err := s.bumpReviewer(ctx, uow, reviewerId, func(r *entity.Reviewer) {
		r.TotalReviewsSubmitted++
	}); err != nil {
		return nil, err
	}

	if err := s.resolveRereviewRequests(ctx, uow, queueItemId, reviewerId); err != nil {
		return nil, err
	}

	if err := s.writeAudit(ctx, uow, review.Id, reviewerId, constant.ActionSubmitted, previousStatus, constant.StatusSubmitted, map[string]interface{}{
		"segments_scored": len(req.Scores),
		"average_score":   review.AverageScore(),
	}); err != nil {
		return nil, err
	}

	result := &dto.SubmitResponse{Review: reviewToResponse(review)}

	if s.cfg.StrictSubmit {
		// Reconcile inside the same transaction: a production failure rolls
		// back the review itself.
		record, err := s.productionService.Reconcile(ctx, uow, item, review)
		if err != nil {
			return nil, err
		}
		if err := uow.Commit(); err != nil {
			return nil, apperr.Persistence(op, err)
		}
		if record != nil {
			result.ProductionUpdate = productionUpdateToResponse(record)
		}
		return result, nil
	}

	if err := uow.Commit(); err != nil {
		return nil, apperr.Persistence(op, err)
	}

	// Legacy mode: the review is already durable, so a reconciler failure
	// surfaces as a warning on the response instead of an error.
	record, err := s.reconcileAfterCommit(ctx, item, review)
	if err != nil {
		s.logger.Error("review", "production reconcile failed after submit", map[string]interface{}{
			"queue_item_id": item.Id,
			"review_id":     review.Id,
			"error":         err.Error(),
		})
		result.Warning = "review submitted, but the production update failed"
		return result, nil
	}
	if record != nil {
		result.ProductionUpdate = productionUpdateToResponse(record)
	}
	return result, nil
}

func (s *reviewService) reconcileAfterCommit(ctx context.Context, item *entity.ResponseQueue, review *entity.Review) (*entity.ProductionUpdate, error) {
	const op = "review.submit"

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperr.Persistence(op, err)
	}
	defer func() { _ = uow.Rollback() }()

	record, err := s.productionService.Reconcile(ctx, uow, item, review)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, apperr.Persistence(op, err)
	}
	return record, nil
}

func (s *reviewService) RequestRereview(ctx context.Context, reviewerId uuid.UUID, req *dto.RequestRereviewRequest) (*dto.RereviewResponse, error) {
	const op = "review.requestRereview"

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperr.Persistence(op, err)
	}
	defer func() { _ = uow.Rollback() }()

	review, err := uow.ReviewRepository().FindOne(ctx, specification.ByID{ID: req.ReviewId})
	if err != nil {
		return nil, apperr.Persistence(op, err)
	}
	if review == nil {
		return nil, apperr.NotFound(op, "review not found")
	}
	if review.ReviewerId != reviewerId {
		return nil, apperr.Authorization(op, "only the original reviewer can request a rereview")
	}
	if review.Status != constant.StatusSubmitted {
		return nil, apperr.StateConflict(op, "only submitted reviews can be rereviewed")
	}

	item, err := uow.ResponseQueueRepository().FindOne(ctx, specification.ByID{ID: review.ResponseQueueId})
	if err != nil {
		return nil, apperr.Persistence(op, err)
	}
	if item == nil {
		return nil, apperr.NotFound(op, "queue item not found")
	}

	// Requests are auto-approved under current policy.
	request := &entity.RereviewRequest{
		Id:               uuid.New(),
		ResponseQueueId:  item.Id,
		OriginalReviewId: review.Id,
		RequestedBy:      reviewerId,
		Reason:           req.Reason,
		Status:           constant.RereviewApproved,
		ApprovedBy:       &reviewerId,
		CreatedAt:        time.Now(),
	}
	if err := uow.RereviewRequestRepository().Create(ctx, request); err != nil {
		return nil, apperr.Persistence(op, err)
	}

	previousStatus := item.Status
	item.Status = constant.StatusPending
	if err := uow.ResponseQueueRepository().Update(ctx, item); err != nil {
		return nil, apperr.Persistence(op, err)
	}

	review.IsCurrent = false
	if err := uow.ReviewRepository().Update(ctx, review); err != nil {
		return nil, apperr.Persistence(op, err)
	}

	if err := s.writeAudit(ctx, uow, review.Id, reviewerId, constant.ActionRereviewRequested, previousStatus, constant.StatusPending, map[string]interface{}{
		"reason": req.Reason,
	}); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, apperr.Persistence(op, err)
	}

	return &dto.RereviewResponse{
		RequestId:   request.Id,
		QueueItemId: item.Id,
		Status:      request.Status,
	}, nil
}

// createReview materializes the next review version for this (item, reviewer)
// track and demotes whatever version was current before it.
func (s *reviewService) createReview(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	item *entity.ResponseQueue,
	reviewerId uuid.UUID,
	scores map[string]dto.SegmentScoreInput,
	notes *string,
	status string,
	flagReason *string,
) (*entity.Review, error) {
	const op = "review.create"

	current, err := uow.ReviewRepository().FindOne(ctx,
		specification.ByQueueItem{QueueItemID: item.Id},
		specification.ByReviewer{ReviewerID: reviewerId},
		specification.IsCurrent{},
	)
	if err != nil {
		return nil, apperr.Persistence(op, err)
	}
	if current != nil {
		current.IsCurrent = false
		if err := uow.ReviewRepository().Update(ctx, current); err != nil {
			return nil, apperr.Persistence(op, err)
		}
	}

	version, err := uow.ReviewRepository().NextVersion(ctx, item.Id, reviewerId)
	if err != nil {
		return nil, apperr.Persistence(op, err)
	}

	review := &entity.Review{
		Id:              uuid.New(),
		ResponseQueueId: item.Id,
		ReviewerId:      reviewerId,
		Version:         version,
		IsCurrent:       true,
		SegmentScores:   toSegmentScores(scores),
		OverallNotes:    notes,
		FlagReason:      flagReason,
		Status:          status,
		CreatedAt:       time.Now(),
	}
	if err := uow.ReviewRepository().Create(ctx, review); err != nil {
		return nil, apperr.Persistence(op, err)
	}
	return review, nil
}

// bumpSession increments session counters. The session must belong to the
// acting reviewer.
func (s *reviewService) bumpSession(ctx context.Context, uow unitofwork.UnitOfWork, sessionId, reviewerId uuid.UUID, bump func(*entity.ReviewSession)) error {
	const op = "review.session"

	sess, err := uow.ReviewSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return apperr.Persistence(op, err)
	}
	if sess == nil {
		return apperr.NotFound(op, "review session not found")
	}
	if sess.ReviewerId != reviewerId {
		return apperr.Authorization(op, "session belongs to another reviewer")
	}

	bump(sess)
	if err := uow.ReviewSessionRepository().Update(ctx, sess); err != nil {
		return apperr.Persistence(op, err)
	}
	return nil
}

func (s *reviewService) bumpReviewer(ctx context.Context, uow unitofwork.UnitOfWork, reviewerId uuid.UUID, bump func(*entity.Reviewer)) error {
	const op = "review.reviewer"

	reviewer, err := uow.ReviewerRepository().FindOne(ctx, specification.ByID{ID: reviewerId})
	if err != nil {
		return apperr.Persistence(op, err)
	}
	if reviewer == nil {
		return apperr.NotFound(op, "reviewer not found")
	}

	bump(reviewer)
	if err := uow.ReviewerRepository().Update(ctx, reviewer); err != nil {
		return apperr.Persistence(op, err)
	}
	return nil
}

// resolveRereviewRequests closes out this reviewer's approved requests once
// the item has been re-submitted, so the selector stops prioritizing it.
func (s *reviewService) resolveRereviewRequests(ctx context.Context, uow unitofwork.UnitOfWork, queueItemId, reviewerId uuid.UUID) error {
	const op = "review.rereview"

	requests, err := uow.RereviewRequestRepository().FindAll(ctx,
		specification.ByQueueItem{QueueItemID: queueItemId},
		specification.Filter("requested_by", reviewerId),
		specification.ByStatus{Status: constant.RereviewApproved},
	)
	if err != nil {
		return apperr.Persistence(op, err)
	}

	now := time.Now()
	for _, request := range requests {
		request.Status = constant.RereviewResolved
		request.ResolvedAt = &now
		if err := uow.RereviewRequestRepository().Update(ctx, request); err != nil {
			return apperr.Persistence(op, err)
		}
	}
	return nil
}

func (s *reviewService) writeAudit(ctx context.Context, uow unitofwork.UnitOfWork, reviewId uuid.UUID, reviewerId uuid.UUID, action, previousStatus, newStatus string, changes map[string]interface{}) error {
	const op = "review.audit"

	id := reviewId
	audit := &entity.ReviewAuditLog{
		Id:             uuid.New(),
		ReviewId:       &id,
		ReviewerId:     reviewerId,
		Action:         action,
		PreviousStatus: &previousStatus,
		NewStatus:      &newStatus,
		Changes:        changes,
		Timestamp:      time.Now(),
	}
	if err := uow.ReviewAuditLogRepository().Create(ctx, audit); err != nil {
		return apperr.Persistence(op, err)
	}
	return nil
}

func toSegmentScores(in map[string]dto.SegmentScoreInput) map[string]entity.SegmentScore {
	out := make(map[string]entity.SegmentScore, len(in))
	for id, score := range in {
		out[id] = entity.SegmentScore{Score: score.Score, Suggestion: score.Suggestion}
	}
	return out
}

func toScoreInputs(in map[string]entity.SegmentScore) map[string]dto.SegmentScoreInput {
	out := make(map[string]dto.SegmentScoreInput, len(in))
	for id, score := range in {
		out[id] = dto.SegmentScoreInput{Score: score.Score, Suggestion: score.Suggestion}
	}
	return out
}

func reviewToResponse(review *entity.Review) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		Id:           review.Id,
		QueueItemId:  review.ResponseQueueId,
		ReviewerId:   review.ReviewerId,
		Version:      review.Version,
		IsCurrent:    review.IsCurrent,
		Status:       review.Status,
		Scores:       toScoreInputs(review.SegmentScores),
		Notes:        review.OverallNotes,
		FlagReason:   review.FlagReason,
		AverageScore: review.AverageScore(),
		CreatedAt:    review.CreatedAt,
		SubmittedAt:  review.SubmittedAt,
	}
}

func productionUpdateToResponse(record *entity.ProductionUpdate) *dto.ProductionUpdateResponse {
	return &dto.ProductionUpdateResponse{
		Id:           record.Id,
		ReviewId:     record.ReviewId,
		Intent:       record.Intent,
		TargetTable:  record.TargetTable,
		OriginalData: record.OriginalData,
		UpdatedData:  record.UpdatedData,
		RolledBack:   record.RolledBack,
		UpdatedAt:    record.UpdatedAt,
	}
}
