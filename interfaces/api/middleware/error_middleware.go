package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"project-management-api/pkg/logger"
	"project-management-api/pkg/utils"
)

// ErrorHandler answers errors that escape a handler. Fiber errors keep their
// status; everything else becomes the generic 500.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if !errors.As(err, &fe) {
			logger.ErrorContext(c.UserContext(), "Unhandled error", "path", c.Path(), "error", err)
			return utils.InternalServerErrorResponse(c)
		}

		errCode := utils.ErrCodeInternalError
		switch fe.Code {
		case fiber.StatusBadRequest, fiber.StatusRequestEntityTooLarge:
			errCode = utils.ErrCodeBadRequest
		case fiber.StatusUnauthorized:
			errCode = utils.ErrCodeUnauthorized
		case fiber.StatusForbidden:
			errCode = utils.ErrCodeForbidden
		case fiber.StatusNotFound, fiber.StatusMethodNotAllowed:
			errCode = utils.ErrCodeNotFound
		case fiber.StatusConflict:
			errCode = utils.ErrCodeConflict
		}

		message := fe.Message
		if fe.Code >= fiber.StatusInternalServerError {
			logger.ErrorContext(c.UserContext(), "Server error", "path", c.Path(), "error", err)
			message = utils.GenericErrorMessage
		}

		return utils.ErrorResponse(c, fe.Code, errCode, message, nil)
	}
}
