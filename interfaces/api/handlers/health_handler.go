package handlers

import (
	"github.com/gofiber/fiber/v2"

	"project-management-api/domain/dto"
	"project-management-api/pkg/utils"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, dto.HealthResponse{
		Status:  "SUCCESS",
		Message: "All Good",
	})
}
