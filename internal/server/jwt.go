// Package server provides the HTTP REST API for the interview prep service.
package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/FlyRocketToMars/RocktheInterview/internal/config"
	"github.com/FlyRocketToMars/RocktheInterview/internal/server/middleware"
)

const tokenIssuer = "rocktheinterview"

// Claims carries the authenticated user ID alongside the registered JWT
// claims.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	jwt.RegisteredClaims
}

// GetUserID implements middleware.UserIDGetter.
func (c *Claims) GetUserID() uuid.UUID {
	return c.UserID
}

// JWTService signs and validates access tokens.
type JWTService struct {
	secret   []byte
	lifetime time.Duration
}

// NewJWTService creates a JWT service from the given configuration.
func NewJWTService(cfg *config.JWTConfig) *JWTService {
	return &JWTService{
		secret:   []byte(cfg.Secret),
		lifetime: time.Duration(cfg.ExpirationHours) * time.Hour,
	}
}

// GenerateToken issues a signed HS256 token for the given user.
func (s *JWTService) GenerateToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses a token string and returns its claims. Only HMAC
// signatures are accepted.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token string is empty")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, fmt.Errorf("token expired: %w", err)
	case errors.Is(err, jwt.ErrTokenMalformed):
		return nil, fmt.Errorf("malformed token: %w", err)
	case errors.Is(err, jwt.ErrSignatureInvalid):
		return nil, fmt.Errorf("invalid token signature: %w", err)
	case err != nil:
		return nil, fmt.Errorf("failed to parse token: %w", err)
	case !token.Valid:
		return nil, fmt.Errorf("token is not valid")
	}

	return claims, nil
}

// AsTokenValidator adapts the service to the middleware's validator
// interface without an import cycle.
func (s *JWTService) AsTokenValidator() middleware.TokenValidator {
	return tokenValidatorFunc(func(tokenString string) (middleware.UserIDGetter, error) {
		claims, err := s.ValidateToken(tokenString)
		if err != nil {
			return nil, err
		}
		return claims, nil
	})
}

type tokenValidatorFunc func(string) (middleware.UserIDGetter, error)

func (f tokenValidatorFunc) ValidateToken(tokenString string) (middleware.UserIDGetter, error) {
	return f(tokenString)
}
