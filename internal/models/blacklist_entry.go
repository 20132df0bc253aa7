package models

import (
	"time"

	"github.com/google/uuid"
)

// BlacklistEntry marks one email as blocked for one application. The composite
// unique index makes a repeated (email, app_uuid) insert fail at the engine,
// so concurrent inserts of the same pair can never both succeed.
type BlacklistEntry struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email         string    `gorm:"size:255;not null;uniqueIndex:idx_blacklist_email_app" json:"email"`
	AppUUID       string    `gorm:"size:36;not null;uniqueIndex:idx_blacklist_email_app" json:"app_uuid"`
	BlockedReason *string   `gorm:"size:255" json:"blocked_reason,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func (BlacklistEntry) TableName() string {
	return "blacklist_entries"
}
