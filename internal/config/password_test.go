package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPasswordConfig(t *testing.T) {
	tests := []struct {
		name     string
		cost     string
		pepper   string
		wantErr  bool
		wantCost int
	}{
		{"defaults", "", "", false, 12},
		{"explicit cost", "10", "", false, 10},
		{"max cost", "14", "", false, 14},
		{"with pepper", "", "secret-pepper", false, 12},
		{"cost too low", "9", "", true, 0},
		{"cost too high", "15", "", true, 0},
		{"non-numeric cost", "fast", "", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BCRYPT_COST", tt.cost)
			t.Setenv("PASSWORD_PEPPER", tt.pepper)

			cfg, err := NewPasswordConfig()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCost, cfg.BcryptCost)
			assert.Equal(t, tt.pepper, cfg.Pepper)
		})
	}
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	assert.True(t, cfg.VerifyPassword("correct horse battery staple", hash))
	assert.False(t, cfg.VerifyPassword("wrong password", hash))
	assert.False(t, cfg.VerifyPassword("", hash))
}

func TestPasswordConfig_HashesAreSalted(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	first, err := cfg.HashPassword("same password")
	require.NoError(t, err)
	second, err := cfg.HashPassword("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, cfg.VerifyPassword("same password", first))
	assert.True(t, cfg.VerifyPassword("same password", second))
}

func TestPasswordConfig_Pepper(t *testing.T) {
	peppered := &PasswordConfig{BcryptCost: 10, Pepper: "global-secret"}
	plain := &PasswordConfig{BcryptCost: 10}

	hash, err := peppered.HashPassword("password123")
	require.NoError(t, err)

	assert.True(t, peppered.VerifyPassword("password123", hash))
	assert.False(t, plain.VerifyPassword("password123", hash),
		"hash made with a pepper must not verify without it")

	rotated := &PasswordConfig{BcryptCost: 10, Pepper: "different-secret"}
	assert.False(t, rotated.VerifyPassword("password123", hash))
}

func TestPasswordConfig_LongPassword(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	// bcrypt rejects inputs over 72 bytes
	_, err := cfg.HashPassword(strings.Repeat("a", 100))
	assert.Error(t, err)
}
