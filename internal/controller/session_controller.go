package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"qa-review-be/internal/pkg/serverutils"
	"qa-review-be/internal/service"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Open(ctx *fiber.Ctx) error
	Close(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
}

type sessionController struct {
	sessionService service.ISessionService
}

func NewSessionController(sessionService service.ISessionService) ISessionController {
	return &sessionController{
		sessionService: sessionService,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("open", c.Open)
	h.Post(":id/close", c.Close)
	h.Get(":id/stats", c.Stats)
}

func (c *sessionController) Open(ctx *fiber.Ctx) error {
	reviewerId := reviewerIdFromLocals(ctx)

	res, err := c.sessionService.Open(ctx.Context(), reviewerId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success open session", res))
}

func (c *sessionController) Close(ctx *fiber.Ctx) error {
	reviewerId := reviewerIdFromLocals(ctx)
	sessionId, _ := uuid.Parse(ctx.Params("id"))

	if err := c.sessionService.Close(ctx.Context(), sessionId, reviewerId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success close session", nil))
}

func (c *sessionController) Stats(ctx *fiber.Ctx) error {
	reviewerId := reviewerIdFromLocals(ctx)
	sessionId, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.sessionService.Stats(ctx.Context(), sessionId, reviewerId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get session stats", res))
}
