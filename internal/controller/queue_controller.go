package controller

import (
	"github.com/gofiber/fiber/v2"

	"qa-review-be/internal/dto"
	"qa-review-be/internal/pkg/serverutils"
	"qa-review-be/internal/service"
)

type IQueueController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
}

type queueController struct {
	intakeService service.IIntakeService
}

func NewQueueController(intakeService service.IIntakeService) IQueueController {
	return &queueController{
		intakeService: intakeService,
	}
}

func (c *queueController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/queue/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("generate", c.Generate)
}

func (c *queueController) Generate(ctx *fiber.Ctx) error {
	var req dto.GenerateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.intakeService.Generate(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success enqueue generated response", res))
}
