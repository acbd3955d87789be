package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"project-management-api/domain/services"
	"project-management-api/pkg/logger"
	"project-management-api/pkg/utils"
)

// handleServiceError turns a service error into its JSON response. Anything
// that is not an *services.AppError is logged and hidden behind the generic
// message.
func handleServiceError(c *fiber.Ctx, err error) error {
	ctx := c.UserContext()

	var appErr *services.AppError
	if !errors.As(err, &appErr) {
		logger.ErrorContext(ctx, "Unexpected error", "path", c.Path(), "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	switch {
	case errors.Is(err, services.ErrValidation):
		return utils.ValidationErrorResponse(c, appErr.Message, nil)
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFoundResponse(c, appErr.Message)
	case errors.Is(err, services.ErrConflict):
		return utils.ConflictResponse(c, appErr.Message)
	case errors.Is(err, services.ErrInvalidCredentials):
		// clients already depend on 500 here
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.ErrCodeInvalidCredentials, appErr.Message, nil)
	default:
		logger.ErrorContext(ctx, "Unmapped service error", "error", err)
		return utils.InternalServerErrorResponse(c)
	}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
