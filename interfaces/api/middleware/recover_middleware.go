package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"project-management-api/pkg/logger"
)

// RecoverMiddleware turns a panic into an error for ErrorHandler.
func RecoverMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			logger.ErrorContext(c.UserContext(), "Recovered from panic", "path", c.Path(), "panic", fmt.Sprint(e))
		},
	})
}
