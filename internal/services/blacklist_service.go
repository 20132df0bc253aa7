package services

import (
	"errors"
	"fmt"

	"github.com/avillalba/email-blacklist-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrDuplicateEntry = errors.New("email is already blacklisted for this application")
	ErrEntryNotFound  = errors.New("blacklist entry not found")
)

type BlacklistService struct {
	db *gorm.DB
}

func NewBlacklistService(db *gorm.DB) *BlacklistService {
	return &BlacklistService{db: db}
}

// Add persists a new entry for (email, appUUID). Uniqueness of the pair is
// enforced by the engine's constraint in the same INSERT, so two concurrent
// calls for the same pair yield exactly one success and one ErrDuplicateEntry.
func (s *BlacklistService) Add(email, appUUID string, reason *string) (*models.BlacklistEntry, error) {
	entry := models.BlacklistEntry{
		ID:            uuid.New(),
		Email:         email,
		AppUUID:       appUUID,
		BlockedReason: reason,
	}

	if err := s.db.Create(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEntry
		}
		return nil, fmt.Errorf("failed to create blacklist entry: %w", err)
	}
	return &entry, nil
}

// FindByEmail returns the oldest entry for the given email regardless of
// application. Lookup is by email alone: "is this email blocked by anyone",
// not "blocked by this app".
func (s *BlacklistService) FindByEmail(email string) (*models.BlacklistEntry, error) {
	var entry models.BlacklistEntry
	err := s.db.Where("email = ?", email).Order("created_at, id").First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to query blacklist: %w", err)
	}
	return &entry, nil
}
