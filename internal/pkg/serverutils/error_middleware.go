package serverutils

import (
	"github.com/gofiber/fiber/v2"

	"qa-review-be/internal/pkg/apperr"
	"qa-review-be/internal/pkg/logger"
)

// ErrorHandlerMiddleware maps service errors to HTTP statuses. Clients get
// the operation message only; persistence details stay in the server log.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if fe, ok := err.(*fiber.Error); ok {
			return ctx.Status(fe.Code).JSON(ErrorResponse(fe.Message))
		}

		if ae, ok := err.(*apperr.Error); ok {
			switch ae.Kind {
			case apperr.KindValidation:
				return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(ae.Message))
			case apperr.KindNotFound:
				return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(ae.Message))
			case apperr.KindAuthorization:
				return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(ae.Message))
			case apperr.KindStateConflict:
				return ctx.Status(fiber.StatusConflict).JSON(ErrorResponse(ae.Message))
			case apperr.KindPersistence:
				log.Error("http", "persistence failure", map[string]interface{}{
					"op":    ae.Op,
					"error": ae.Error(),
					"path":  ctx.Path(),
				})
				return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("internal error"))
			}
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"error": err.Error(),
			"path":  ctx.Path(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("internal error"))
	}
}
