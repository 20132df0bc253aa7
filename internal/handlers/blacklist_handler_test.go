package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avillalba/email-blacklist-api/internal/models"
	"github.com/avillalba/email-blacklist-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockBlacklistStore struct {
	MockAdd         func(email, appUUID string, reason *string) (*models.BlacklistEntry, error)
	MockFindByEmail func(email string) (*models.BlacklistEntry, error)
}

func (m *MockBlacklistStore) Add(email, appUUID string, reason *string) (*models.BlacklistEntry, error) {
	if m.MockAdd != nil {
		return m.MockAdd(email, appUUID, reason)
	}
	return &models.BlacklistEntry{Email: email, AppUUID: appUUID, BlockedReason: reason}, nil
}

func (m *MockBlacklistStore) FindByEmail(email string) (*models.BlacklistEntry, error) {
	if m.MockFindByEmail != nil {
		return m.MockFindByEmail(email)
	}
	return nil, services.ErrEntryNotFound
}

func newBlacklistApp(store BlacklistStore) *fiber.App {
	app := fiber.New()
	h := NewBlacklistHandler(store)
	app.Post("/blacklists", h.Add)
	app.Get("/blacklists/:email", h.Status)
	return app
}

func TestBlacklistHandlerAdd(t *testing.T) {
	validBody := `{"email":"test@example.com","app_uuid":"123e4567-e89b-12d3-a456-426614174000","blocked_reason":"Test reason"}`

	t.Run("successful add", func(t *testing.T) {
		called := false
		app := newBlacklistApp(&MockBlacklistStore{
			MockAdd: func(email, appUUID string, reason *string) (*models.BlacklistEntry, error) {
				called = true
				assert.Equal(t, "test@example.com", email)
				assert.Equal(t, "123e4567-e89b-12d3-a456-426614174000", appUUID)
				require.NotNil(t, reason)
				assert.Equal(t, "Test reason", *reason)
				return &models.BlacklistEntry{Email: email, AppUUID: appUUID, BlockedReason: reason}, nil
			},
		})

		resp := postJSON(t, app, "/blacklists", []byte(validBody), nil)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.True(t, called)
		assert.Contains(t, decodeBody(t, resp)["message"], "test@example.com")
	})

	t.Run("duplicate pair", func(t *testing.T) {
		app := newBlacklistApp(&MockBlacklistStore{
			MockAdd: func(email, appUUID string, reason *string) (*models.BlacklistEntry, error) {
				return nil, services.ErrDuplicateEntry
			},
		})

		resp := postJSON(t, app, "/blacklists", []byte(validBody), nil)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.NotEmpty(t, decodeBody(t, resp)["error"])
	})

	t.Run("store failure", func(t *testing.T) {
		app := newBlacklistApp(&MockBlacklistStore{
			MockAdd: func(email, appUUID string, reason *string) (*models.BlacklistEntry, error) {
				return nil, assert.AnError
			},
		})

		resp := postJSON(t, app, "/blacklists", []byte(validBody), nil)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})

	t.Run("validation failures skip the store", func(t *testing.T) {
		tests := []struct {
			name string
			body string
		}{
			{"invalid email", `{"email":"invalid-email","app_uuid":"123e4567-e89b-12d3-a456-426614174000"}`},
			{"invalid uuid", `{"email":"test@example.com","app_uuid":"invalid-uuid"}`},
			{"missing email", `{"app_uuid":"123e4567-e89b-12d3-a456-426614174000"}`},
			{"missing app_uuid", `{"email":"test@example.com"}`},
			{"reason too long", `{"email":"test@example.com","app_uuid":"123e4567-e89b-12d3-a456-426614174000","blocked_reason":"` + strings.Repeat("a", 256) + `"}`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				app := newBlacklistApp(&MockBlacklistStore{
					MockAdd: func(email, appUUID string, reason *string) (*models.BlacklistEntry, error) {
						assert.Fail(t, "store must not be called on validation failure")
						return nil, assert.AnError
					},
				})

				resp := postJSON(t, app, "/blacklists", []byte(tt.body), nil)
				assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
				assert.NotEmpty(t, decodeBody(t, resp)["error"])
			})
		}
	})

	t.Run("uuid error mentions uuid", func(t *testing.T) {
		app := newBlacklistApp(&MockBlacklistStore{})

		resp := postJSON(t, app, "/blacklists", []byte(`{"email":"test@example.com","app_uuid":"invalid-uuid"}`), nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		msg, _ := decodeBody(t, resp)["error"].(string)
		assert.True(t, strings.Contains(msg, "uuid") || strings.Contains(msg, "UUID"))
	})
}

func TestBlacklistHandlerStatus(t *testing.T) {
	t.Run("blacklisted email", func(t *testing.T) {
		reason := "Spam"
		app := newBlacklistApp(&MockBlacklistStore{
			MockFindByEmail: func(email string) (*models.BlacklistEntry, error) {
				assert.Equal(t, "blocked@example.com", email)
				return &models.BlacklistEntry{
					Email:         email,
					AppUUID:       "123e4567-e89b-12d3-a456-426614174000",
					BlockedReason: &reason,
				}, nil
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/blacklists/blocked@example.com", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, true, body["blacklisted"])
		assert.Equal(t, "blocked@example.com", body["email"])
		assert.Equal(t, "Spam", body["reason"])
		assert.Equal(t, "123e4567-e89b-12d3-a456-426614174000", body["app_uuid"])
	})

	t.Run("email not blacklisted", func(t *testing.T) {
		app := newBlacklistApp(&MockBlacklistStore{})

		req := httptest.NewRequest(http.MethodGet, "/blacklists/notblocked@example.com", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, false, body["blacklisted"])
		assert.Equal(t, "notblocked@example.com", body["email"])
		assert.NotContains(t, body, "reason")
	})

	t.Run("invalid email in path", func(t *testing.T) {
		app := newBlacklistApp(&MockBlacklistStore{
			MockFindByEmail: func(email string) (*models.BlacklistEntry, error) {
				assert.Fail(t, "store must not be called for an invalid email")
				return nil, assert.AnError
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/blacklists/invalid-email", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("store failure", func(t *testing.T) {
		app := newBlacklistApp(&MockBlacklistStore{
			MockFindByEmail: func(email string) (*models.BlacklistEntry, error) {
				return nil, assert.AnError
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/blacklists/fails@example.com", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}
