package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		want         string
	}{
		{
			name:         "returns default when env not set",
			key:          "TEST_KEY_1",
			defaultValue: "default",
			envValue:     "",
			want:         "default",
		},
		{
			name:         "returns env value when set",
			key:          "TEST_KEY_2",
			defaultValue: "default",
			envValue:     "custom",
			want:         "custom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			got := GetEnvOrDefault(tt.key, tt.defaultValue)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJWTSecretManagement(t *testing.T) {
	newSecret := []byte("test-secret")

	t.Run("set and restore JWT secret", func(t *testing.T) {
		original := GetJWTSecret()

		restore := SetJWTSecret(newSecret)
		assert.Equal(t, newSecret, GetJWTSecret())

		restore()
		assert.Equal(t, original, GetJWTSecret())
	})
}

func TestLoadToolsConfig(t *testing.T) {
	t.Run("embedded defaults", func(t *testing.T) {
		cfg, err := LoadToolsConfig("")
		assert.NoError(t, err)
		assert.Len(t, cfg.Tools, 2)
		assert.Equal(t, "search_beaches", cfg.Tools[0].Name)
		assert.Equal(t, "get_forecast", cfg.Tools[1].Name)
	})

	t.Run("missing override file", func(t *testing.T) {
		_, err := LoadToolsConfig("does/not/exist.json")
		assert.Error(t, err)
	})
}
