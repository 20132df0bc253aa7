package dto

type AddBlacklistRequest struct {
	Email         string  `json:"email" validate:"required"`
	AppUUID       string  `json:"app_uuid" validate:"required"`
	BlockedReason *string `json:"blocked_reason"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// BlacklistStatusResponse answers "is this email blocked by anyone". Reason
// and AppUUID are only present when an entry was found.
type BlacklistStatusResponse struct {
	Blacklisted bool    `json:"blacklisted"`
	Email       string  `json:"email"`
	Reason      *string `json:"reason,omitempty"`
	AppUUID     string  `json:"app_uuid,omitempty"`
}
