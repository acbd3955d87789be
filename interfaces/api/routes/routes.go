package routes

import (
	"github.com/gofiber/fiber/v2"

	"project-management-api/interfaces/api/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, jwtSecret string) {
	SetupHealthRoutes(app, h)
	SetupAuthRoutes(app, h, jwtSecret)
	SetupTaskRoutes(app, h, jwtSecret)
}
