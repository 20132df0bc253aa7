package handlers

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/avillalba/email-blacklist-api/internal/dto"
	"github.com/avillalba/email-blacklist-api/internal/models"
	"github.com/avillalba/email-blacklist-api/internal/services"
	"github.com/avillalba/email-blacklist-api/internal/validation"
	"github.com/gofiber/fiber/v2"
)

// BlacklistStore is the persistence surface the handlers are written against;
// the GORM-backed service is the production implementation.
type BlacklistStore interface {
	Add(email, appUUID string, reason *string) (*models.BlacklistEntry, error)
	FindByEmail(email string) (*models.BlacklistEntry, error)
}

type BlacklistHandler struct {
	store BlacklistStore
}

func NewBlacklistHandler(store BlacklistStore) *BlacklistHandler {
	return &BlacklistHandler{store: store}
}

func (h *BlacklistHandler) Add(c *fiber.Ctx) error {
	var req dto.AddBlacklistRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid request body",
		})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if !validation.ValidEmail(req.Email) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid email address",
		})
	}
	if !validation.ValidUUID(req.AppUUID) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "app_uuid must be a valid UUID",
		})
	}
	if !validation.ValidReason(req.BlockedReason) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: fmt.Sprintf("blocked_reason must be at most %d characters", validation.MaxReasonLength),
		})
	}

	if _, err := h.store.Add(req.Email, req.AppUUID, req.BlockedReason); err != nil {
		if errors.Is(err, services.ErrDuplicateEntry) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{
		Message: fmt.Sprintf("%s added to blacklist", req.Email),
	})
}

func (h *BlacklistHandler) Status(c *fiber.Ctx) error {
	email := c.Params("email")
	if decoded, err := url.PathUnescape(email); err == nil {
		email = decoded
	}
	if !validation.ValidEmail(email) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid email address",
		})
	}

	entry, err := h.store.FindByEmail(email)
	if err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			// Absence is a valid answer, not an error.
			return c.JSON(dto.BlacklistStatusResponse{
				Blacklisted: false,
				Email:       email,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "internal server error",
		})
	}

	return c.JSON(dto.BlacklistStatusResponse{
		Blacklisted: true,
		Email:       entry.Email,
		Reason:      entry.BlockedReason,
		AppUUID:     entry.AppUUID,
	})
}
