package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"qa-review-be/internal/dto"
	"qa-review-be/internal/pkg/serverutils"
	"qa-review-be/internal/service"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	Dashboard(ctx *fiber.Ctx) error
	Flagged(ctx *fiber.Ctx) error
	Reviewers(ctx *fiber.Ctx) error
	SetReviewerActive(ctx *fiber.Ctx) error
	ProductionUpdates(ctx *fiber.Ctx) error
	RollbackProductionUpdate(ctx *fiber.Ctx) error
}

type adminController struct {
	adminService service.IAdminService
}

func NewAdminController(adminService service.IAdminService) IAdminController {
	return &adminController{
		adminService: adminService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.AdminMiddleware)
	h.Get("dashboard", c.Dashboard)
	h.Get("flagged", c.Flagged)
	h.Get("reviewers", c.Reviewers)
	h.Put("reviewers/:id/active", c.SetReviewerActive)
	h.Get("production-updates", c.ProductionUpdates)
	h.Post("production-updates/:id/rollback", c.RollbackProductionUpdate)
}

func (c *adminController) Dashboard(ctx *fiber.Ctx) error {
	res, err := c.adminService.DashboardStats(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get dashboard stats", res))
}

func (c *adminController) Flagged(ctx *fiber.Ctx) error {
	res, err := c.adminService.FlaggedItems(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get flagged items", res))
}

func (c *adminController) Reviewers(ctx *fiber.Ctx) error {
	res, err := c.adminService.Reviewers(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get reviewers", res))
}

func (c *adminController) SetReviewerActive(ctx *fiber.Ctx) error {
	reviewerId, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpdateReviewerActiveRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.SetReviewerActive(ctx.Context(), reviewerId, *req.IsActive)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update reviewer", res))
}

func (c *adminController) ProductionUpdates(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.adminService.ProductionUpdates(ctx.Context(), limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get production updates", res))
}

func (c *adminController) RollbackProductionUpdate(ctx *fiber.Ctx) error {
	updateId, _ := uuid.Parse(ctx.Params("id"))

	var req dto.RollbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.MarkProductionUpdateRolledBack(ctx.Context(), updateId, req.Reason)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success mark production update rolled back", res))
}
