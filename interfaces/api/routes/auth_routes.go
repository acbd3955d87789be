package routes

import (
	"github.com/gofiber/fiber/v2"

	"project-management-api/interfaces/api/handlers"
	"project-management-api/interfaces/api/middleware"
)

func SetupAuthRoutes(router fiber.Router, h *handlers.Handlers, jwtSecret string) {
	auth := router.Group("/auth")

	auth.Post("/register", h.AuthHandler.Register)
	auth.Post("/login", h.AuthHandler.Login)

	auth.Put("/settings/:userId", middleware.Protected(jwtSecret), h.AuthHandler.UpdateSettings)
}
