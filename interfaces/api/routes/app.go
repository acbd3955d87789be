package routes

import (
	"github.com/gofiber/fiber/v2"

	"project-management-api/interfaces/api/handlers"
	"project-management-api/interfaces/api/middleware"
	"project-management-api/pkg/config"
)

// NewApp builds the Fiber application with the middleware stack and all routes.
func NewApp(cfg *config.Config, h *handlers.Handlers) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.Server.BodyLimit,
	})

	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware())
	app.Use(middleware.RecoverMiddleware())
	app.Use(middleware.CorsMiddleware(cfg.CORS))

	SetupRoutes(app, h, cfg.JWT.Secret)

	return app
}
