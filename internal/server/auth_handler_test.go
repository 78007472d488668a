package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/FlyRocketToMars/RocktheInterview/internal/config"
)

// newTestAuthHandler builds a handler backed by a nil database. Only the
// pre-database paths (decoding, validation) are exercised here; the full
// flows are covered by the router integration tests.
func newTestAuthHandler() *AuthHandler {
	userSvc := NewUserService(nil, &config.PasswordConfig{BcryptCost: 10})
	jwtSvc := NewJWTService(&config.JWTConfig{
		Secret:          "test-secret-key-for-jwt-signing-minimum-32-bytes",
		ExpirationHours: 24,
	})
	return NewAuthHandler(userSvc, jwtSvc)
}

func postJSON(t *testing.T, body any) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestAuthHandler_Register_InvalidJSON(t *testing.T) {
	handler := newTestAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	handler.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}

func TestAuthHandler_Register_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		reqBody map[string]string
	}{
		{"missing name", map[string]string{"email": "test@example.com", "password": "password123"}},
		{"empty name", map[string]string{"name": "", "email": "test@example.com", "password": "password123"}},
		{"invalid email", map[string]string{"name": "Test User", "email": "not-an-email", "password": "password123"}},
		{"missing email", map[string]string{"name": "Test User", "password": "password123"}},
		{"password too short", map[string]string{"name": "Test User", "email": "test@example.com", "password": "short"}},
		{"missing password", map[string]string{"name": "Test User", "email": "test@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestAuthHandler()
			w := httptest.NewRecorder()
			handler.Register(w, postJSON(t, tt.reqBody))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "validation error")
		})
	}
}

func TestAuthHandler_Login_InvalidJSON(t *testing.T) {
	handler := newTestAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	handler.Login(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}

func TestAuthHandler_Login_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		reqBody map[string]string
	}{
		{"missing email", map[string]string{"password": "password123"}},
		{"invalid email format", map[string]string{"email": "not-an-email", "password": "password123"}},
		{"missing password", map[string]string{"email": "test@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestAuthHandler()
			w := httptest.NewRecorder()
			handler.Login(w, postJSON(t, tt.reqBody))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "validation error")
		})
	}
}

func TestAuthHandler_UpdatePassword_InvalidJSON(t *testing.T) {
	handler := newTestAuthHandler()

	req := httptest.NewRequest(http.MethodPut, "/users/me/password", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	handler.UpdatePasswordWithUserID(w, req, uuid.New())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}

func TestAuthHandler_UpdatePassword_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		reqBody map[string]string
	}{
		{"missing current password", map[string]string{"new_password": "newpassword123"}},
		{"missing new password", map[string]string{"current_password": "oldpassword"}},
		{"new password too short", map[string]string{"current_password": "oldpassword", "new_password": "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestAuthHandler()
			w := httptest.NewRecorder()
			handler.UpdatePasswordWithUserID(w, postJSON(t, tt.reqBody), uuid.New())

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "validation error")
		})
	}
}

func TestValidationMessage(t *testing.T) {
	handler := newTestAuthHandler()

	err := handler.validator.Struct(&struct {
		Email string `validate:"required,email"`
	}{Email: "nope"})
	assert.Equal(t, "validation error: Email - email", validationMessage(err))

	assert.Equal(t, "validation error: invalid request", validationMessage(assert.AnError))
}
