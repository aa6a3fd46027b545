package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"qa-review-be/internal/dto"
	"qa-review-be/internal/pkg/apperr"
	"qa-review-be/internal/pkg/serverutils"
	"qa-review-be/internal/service"
)

type IReviewController interface {
	RegisterRoutes(r fiber.Router)
	Next(ctx *fiber.Ctx) error
	Skip(ctx *fiber.Ctx) error
	SaveDraft(ctx *fiber.Ctx) error
	Flag(ctx *fiber.Ctx) error
	Submit(ctx *fiber.Ctx) error
	RequestRereview(ctx *fiber.Ctx) error
	Source(ctx *fiber.Ctx) error
}

type reviewController struct {
	reviewService     service.IReviewService
	queueService      service.IQueueService
	productionService service.IProductionService
}

func NewReviewController(
	reviewService service.IReviewService,
	queueService service.IQueueService,
	productionService service.IProductionService,
) IReviewController {
	return &reviewController{
		reviewService:     reviewService,
		queueService:      queueService,
		productionService: productionService,
	}
}

func (c *reviewController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/review/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("next", c.Next)
	h.Post("rereview", c.RequestRereview)
	h.Post(":id/skip", c.Skip)
	h.Post(":id/draft", c.SaveDraft)
	h.Post(":id/flag", c.Flag)
	h.Post(":id/submit", c.Submit)
	h.Get(":id/source", c.Source)
}

func reviewerIdFromLocals(ctx *fiber.Ctx) uuid.UUID {
	idStr, _ := ctx.Locals("reviewer_id").(string)
	id, _ := uuid.Parse(idStr)
	return id
}

func (c *reviewController) Next(ctx *fiber.Ctx) error {
	reviewerId := reviewerIdFromLocals(ctx)

	intent := ctx.Query("intent")
	if intent == "" {
		return apperr.Validation("queue.next", "intent query parameter is required")
	}

	res, err := c.queueService.Next(ctx.Context(), intent, reviewerId)
	if err != nil {
		return err
	}

	if !res.Found {
		return ctx.JSON(serverutils.SuccessResponse("Queue exhausted for intent", res))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get next item", res))
}

func (c *reviewController) Skip(ctx *fiber.Ctx) error {
	reviewerId := reviewerIdFromLocals(ctx)
	queueItemId, _ := uuid.Parse(ctx.Params("id"))

	var req dto.SkipRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.reviewService.Skip(ctx.Context(), queueItemId, reviewerId, req.SessionId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success skip item", nil))
}

func (c *reviewController) SaveDraft(ctx *fiber.Ctx) error {
	reviewerId := reviewerIdFromLocals(ctx)
	queueItemId, _ := uuid.Parse(ctx.Params("id"))

	var req dto.SaveDraftRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.reviewService.SaveDraft(ctx.Context(), queueItemId, reviewerId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save draft", res))
}

func (c *reviewController) Flag(ctx *fiber.Ctx) error {
	reviewerId := reviewerIdFromLocals(ctx)
	queueItemId, _ := uuid.Parse(ctx.Params("id"))

	var req dto.FlagRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.reviewService.Flag(ctx.Context(), queueItemId, reviewerId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success flag item", res))
}

func (c *reviewController) Submit(ctx *fiber.Ctx) error {
	reviewerId := reviewerIdFromLocals(ctx)
	queueItemId, _ := uuid.Parse(ctx.Params("id"))

	var req dto.SubmitRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.reviewService.Submit(ctx.Context(), queueItemId, reviewerId, &req)
	if err != nil {
		return err
	}

	if res.Warning != "" {
		return ctx.JSON(serverutils.SuccessResponseWithWarning("Success submit review", res, res.Warning))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success submit review", res))
}

func (c *reviewController) RequestRereview(ctx *fiber.Ctx) error {
	reviewerId := reviewerIdFromLocals(ctx)

	var req dto.RequestRereviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.reviewService.RequestRereview(ctx.Context(), reviewerId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success request rereview", res))
}

func (c *reviewController) Source(ctx *fiber.Ctx) error {
	queueItemId, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.productionService.FetchSourceData(ctx.Context(), queueItemId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get source data", res))
}
