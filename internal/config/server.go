package config

import "time"

// GetHost returns the host the HTTP server binds to
func GetHost() string {
	return GetEnvOrDefault("HOST", "0.0.0.0")
}

// GetPort returns the port the HTTP server binds to
func GetPort() string {
	return GetEnvOrDefault("PORT", "8080")
}

// GetPublicURL returns the externally reachable base URL advertised on the
// agent card
func GetPublicURL() string {
	return GetEnvOrDefault("PUBLIC_URL", "http://"+GetHost()+":"+GetPort()+"/")
}

// GetShutdownTimeout returns how long in-flight requests may drain on shutdown
func GetShutdownTimeout() time.Duration {
	return parseEnvDuration("SHUTDOWN_TIMEOUT", 15*time.Second)
}
