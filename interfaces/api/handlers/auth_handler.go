package handlers

import (
	"github.com/gofiber/fiber/v2"

	"project-management-api/domain/dto"
	"project-management-api/domain/services"
	"project-management-api/pkg/logger"
	"project-management-api/pkg/utils"
)

type AuthHandler struct {
	userService services.UserService
}

func NewAuthHandler(userService services.UserService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, "Name, email, password and confirmpassword are required fields.", errors)
	}

	logger.InfoContext(ctx, "Registration attempt", "email", req.Email)

	token, user, err := h.userService.Register(ctx, &req)
	if err != nil {
		logger.WarnContext(ctx, "Registration failed", "email", req.Email, "error", err)
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.UserToAuthResponse(user, token, "user register successfully"))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, "Email and password are required", errors)
	}

	logger.InfoContext(ctx, "Login attempt", "email", req.Email)

	token, user, err := h.userService.Login(ctx, &req)
	if err != nil {
		logger.WarnContext(ctx, "Login failed", "email", req.Email, "error", err)
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.UserToAuthResponse(user, token, "You have logged In successfully"))
}

// UpdateSettings changes name and/or password of the user in the path.
// The token only has to be valid; it is not matched against :userId.
func (h *AuthHandler) UpdateSettings(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return utils.ValidationErrorResponse(c, "Invalid user ID", nil)
	}

	var req dto.UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := h.userService.UpdateSettings(ctx, userID, &req); err != nil {
		logger.WarnContext(ctx, "Settings update failed", "user_id", userID, "error", err)
		return handleServiceError(c, err)
	}

	return utils.MessageResponse(c, "Name and password updated successfully")
}
