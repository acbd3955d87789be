package utils

import (
	"github.com/gofiber/fiber/v2"
)

// Success bodies are the bare payloads the frontend consumes; only errors get
// an envelope.

type ErrorBody struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

type MessageBody struct {
	Message string `json:"message"`
}

const (
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeForbidden     = "FORBIDDEN"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeConflict      = "CONFLICT"
	ErrCodeInternalError = "INTERNAL_ERROR"
	ErrCodeBadRequest    = "BAD_REQUEST"

	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
)

// GenericErrorMessage is the only text a client ever sees for an unexpected failure.
const GenericErrorMessage = "Something went wrong! Please try after some time."

// ========== Success Responses ==========

func SuccessResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

func CreatedResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func MessageResponse(c *fiber.Ctx, message string) error {
	return SuccessResponse(c, MessageBody{Message: message})
}

// ========== Error Responses ==========

func ErrorResponse(c *fiber.Ctx, statusCode int, code, message string, details any) error {
	return c.Status(statusCode).JSON(ErrorBody{
		Success: false,
		Code:    code,
		Error:   message,
		Details: details,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, message string, details any) error {
	if message == "" {
		message = "Validation failed"
	}
	return ErrorResponse(c, fiber.StatusBadRequest, ErrCodeValidation, message, details)
}

func BadRequestResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, fiber.StatusBadRequest, ErrCodeBadRequest, message, nil)
}

func UnauthorizedResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Unauthorized"
	}
	return ErrorResponse(c, fiber.StatusUnauthorized, ErrCodeUnauthorized, message, nil)
}

func NotFoundResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return ErrorResponse(c, fiber.StatusNotFound, ErrCodeNotFound, message, nil)
}

// ConflictResponse answers 400, not 409: clients of this API treat a
// duplicate registration as a plain bad request.
func ConflictResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, fiber.StatusBadRequest, ErrCodeConflict, message, nil)
}

func InternalServerErrorResponse(c *fiber.Ctx) error {
	return ErrorResponse(c, fiber.StatusInternalServerError, ErrCodeInternalError, GenericErrorMessage, nil)
}
