package services

import (
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/avillalba/email-blacklist-api/internal/config"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMissingToken       = errors.New("missing or malformed authorization header")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthService validates the single configured admin credential pair and
// guards routes with the process-wide static bearer token. The admin password
// is hashed once at construction so login never compares plaintext.
type AuthService struct {
	username     string
	passwordHash []byte
	token        string
}

func NewAuthService(cfg *config.Config) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		username:     cfg.AdminUsername,
		passwordHash: hash,
		token:        cfg.BearerToken,
	}, nil
}

// Login returns the static bearer token when the credentials match the
// configured admin pair. The same token value is valid for the lifetime of
// the process; nothing is minted per login.
func (s *AuthService) Login(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrMissingCredentials
	}
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) != 1 {
		// keep timing uniform across unknown usernames
		bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.token, nil
}

// AuthorizeHeader checks an Authorization header value of the exact form
// "Bearer <token>" against the static token.
func (s *AuthService) AuthorizeHeader(header string) error {
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return ErrMissingToken
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(s.token)) != 1 {
		return ErrInvalidToken
	}
	return nil
}
