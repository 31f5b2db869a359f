package config

import (
	"sync"
)

var (
	jwtSecretMu sync.RWMutex
	// JWTSecret is the secret key used to sign JWTs
	// In production, this should be loaded from environment variables
	JWTSecret = []byte(GetEnvOrDefault("JWT_SECRET", "your-256-bit-secret"))
)

// SetJWTSecret temporarily changes the JWT secret and returns a function to restore it
// This is primarily used for testing
func SetJWTSecret(secret []byte) func() {
	jwtSecretMu.Lock()
	previous := JWTSecret
	JWTSecret = secret
	jwtSecretMu.Unlock()

	return func() {
		jwtSecretMu.Lock()
		JWTSecret = previous
		jwtSecretMu.Unlock()
	}
}

// GetJWTSecret returns the current JWT secret in a thread-safe manner
func GetJWTSecret() []byte {
	jwtSecretMu.RLock()
	defer jwtSecretMu.RUnlock()
	return JWTSecret
}

// GetClientID returns the OAuth client id accepted by the token endpoint
func GetClientID() string {
	return GetEnvOrDefault("SHORECAST_CLIENT_ID", "shorecast-cli")
}

// GetClientSecret returns the OAuth client secret accepted by the token endpoint
func GetClientSecret() string {
	return GetEnvOrDefault("SHORECAST_CLIENT_SECRET", "dev-secret")
}

// GetClientScopes returns the scopes granted to an authenticated client
func GetClientScopes() []string {
	return []string{"agent:invoke"}
}
