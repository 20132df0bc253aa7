package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        string `json:"user"`
}

// ErrorResponse is the body of every non-2xx reply: a single human-readable
// message under the "error" key.
type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status bool   `json:"status"`
	DB     string `json:"db,omitempty"`
}
