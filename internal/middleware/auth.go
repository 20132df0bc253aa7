package middleware

import (
	"errors"

	"github.com/avillalba/email-blacklist-api/internal/dto"
	"github.com/avillalba/email-blacklist-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

// BearerProtected rejects requests whose Authorization header is not exactly
// "Bearer <static token>".
func BearerProtected(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := auth.AuthorizeHeader(c.Get(fiber.HeaderAuthorization)); err != nil {
			msg := "invalid token"
			if errors.Is(err, services.ErrMissingToken) {
				msg = "missing or malformed authorization header"
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: msg,
			})
		}
		return c.Next()
	}
}
