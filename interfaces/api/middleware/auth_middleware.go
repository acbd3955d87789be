package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"project-management-api/pkg/logger"
	"project-management-api/pkg/utils"
)

// Protected validates the bearer token and stores the caller in locals.
// The request never reaches the next handler without a valid token.
func Protected(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return utils.UnauthorizedResponse(c, "Missing authorization header")
		}

		token := utils.ExtractTokenFromHeader(authHeader)
		if token == "" {
			return utils.UnauthorizedResponse(c, "Invalid authorization header format")
		}

		userCtx, err := utils.ValidateToken(token, jwtSecret)
		if err != nil {
			logger.WarnContext(ctx, "Token validation failed", "error", err)
			switch {
			case errors.Is(err, utils.ErrExpiredToken):
				return utils.UnauthorizedResponse(c, "Token has expired")
			case errors.Is(err, utils.ErrMissingToken):
				return utils.UnauthorizedResponse(c, "Missing token")
			default:
				return utils.UnauthorizedResponse(c, "Invalid token")
			}
		}

		c.Locals(utils.UserLocalsKey, userCtx)
		c.SetUserContext(logger.ContextWithUserID(ctx, userCtx.ID.String()))

		return c.Next()
	}
}
