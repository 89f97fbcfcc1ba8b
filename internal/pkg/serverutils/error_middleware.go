// FILE: internal/pkg/serverutils/error_middleware.go
package serverutils

import (
	"errors"

	"ocs-provisioning-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// statusForKind maps the engine error taxonomy onto HTTP status codes.
var statusForKind = map[apperror.Kind]int{
	apperror.KindNotFound:          fiber.StatusNotFound,
	apperror.KindConflict:          fiber.StatusConflict,
	apperror.KindInvalidTransition: fiber.StatusConflict,
	apperror.KindInvalidState:      fiber.StatusConflict,
	apperror.KindValidation:        fiber.StatusUnprocessableEntity,
	apperror.KindUnavailable:       fiber.StatusServiceUnavailable,
	apperror.KindInternal:          fiber.StatusInternalServerError,
}

// ErrorHandlerMiddleware converts service errors bubbling out of handlers
// into taxonomy-shaped JSON responses.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			status := statusForKind[appErr.Kind]
			if status == 0 {
				status = fiber.StatusInternalServerError
			}
			return ctx.Status(status).JSON(APIError{
				Success: false,
				Code:    status,
				Message: appErr.Message,
				Kind:    string(appErr.Kind),
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, err.Error()))
	}
}
