package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTConfig(t *testing.T) {
	tests := []struct {
		name      string
		secret    string
		hours     string
		wantErr   bool
		wantHours int
	}{
		{"defaults", "test-secret", "", false, 24},
		{"custom expiration", "test-secret", "72", false, 72},
		{"one hour minimum", "test-secret", "1", false, 1},
		{"missing secret", "", "", true, 0},
		{"zero hours", "test-secret", "0", true, 0},
		{"negative hours", "test-secret", "-5", true, 0},
		{"non-numeric hours", "test-secret", "soon", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", tt.secret)
			t.Setenv("JWT_EXPIRATION_HOURS", tt.hours)

			cfg, err := NewJWTConfig()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.secret, cfg.Secret)
			assert.Equal(t, tt.wantHours, cfg.ExpirationHours)
		})
	}
}
