package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"rescueos-be/internal/pkg/apperr"
)

// ErrorHandlerMiddleware converts errors escaping the handlers into the
// response envelope. Domain error kinds map onto HTTP statuses; anything
// else is reported as a generic retryable failure without leaking internals.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			status := statusForKind(appErr.Kind)
			if len(appErr.Fields) > 0 {
				return ctx.Status(status).JSON(FieldErrorResponse(status, appErr.Message, appErr.Fields))
			}
			return ctx.Status(status).JSON(ErrorResponse(status, appErr.Message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse(500, "Something went wrong. Please try again."))
	}
}

func statusForKind(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation:
		return fiber.StatusBadRequest
	case apperr.KindForbidden:
		return fiber.StatusForbidden
	case apperr.KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
