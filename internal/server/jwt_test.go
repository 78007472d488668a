package server

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FlyRocketToMars/RocktheInterview/internal/config"
)

func newTestJWTService(hours int) *JWTService {
	return NewJWTService(&config.JWTConfig{
		Secret:          "unit-test-secret",
		ExpirationHours: hours,
	})
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestJWTService(24)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)
	assert.Equal(t, 3, len(strings.Split(token, ".")))

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID, claims.GetUserID())
	assert.Equal(t, tokenIssuer, claims.Issuer)

	expiresIn := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, 24*time.Hour, expiresIn, float64(time.Minute))
}

func TestJWTService_ValidateToken_Errors(t *testing.T) {
	svc := newTestJWTService(24)

	t.Run("empty token", func(t *testing.T) {
		_, err := svc.ValidateToken("")
		assert.ErrorContains(t, err, "empty")
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-jwt")
		assert.ErrorContains(t, err, "malformed")
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTService(&config.JWTConfig{Secret: "other-secret", ExpirationHours: 24})
		token, err := other.GenerateToken(uuid.New())
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		past := time.Now().Add(-2 * time.Hour)
		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
			UserID: uuid.New(),
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
				IssuedAt:  jwt.NewNumericDate(past),
			},
		})
		signed, err := expired.SignedString([]byte("unit-test-secret"))
		require.NoError(t, err)

		_, err = svc.ValidateToken(signed)
		assert.ErrorContains(t, err, "expired")
	})

	t.Run("rejects non-HMAC algorithm", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: uuid.New()})
		token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})
}

func TestJWTService_AsTokenValidator(t *testing.T) {
	svc := newTestJWTService(1)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)

	validator := svc.AsTokenValidator()
	claims, err := validator.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.GetUserID())

	_, err = validator.ValidateToken("garbage")
	assert.Error(t, err)
}
