package handlers

import (
	"errors"

	"github.com/avillalba/email-blacklist-api/internal/dto"
	"github.com/avillalba/email-blacklist-api/internal/services"
	"github.com/avillalba/email-blacklist-api/internal/validation"
	"github.com/gofiber/fiber/v2"
)

// TokenIssuer is the part of the auth service the login handler needs.
type TokenIssuer interface {
	Login(username, password string) (string, error)
}

type AuthHandler struct {
	auth TokenIssuer
}

func NewAuthHandler(auth TokenIssuer) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: services.ErrMissingCredentials.Error(),
		})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	token, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingCredentials):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: "internal server error",
			})
		}
	}

	return c.JSON(dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		User:        req.Username,
	})
}
