package config

import "time"

// GetSessionTTL returns how long idle session history is retained
func GetSessionTTL() time.Duration {
	return parseEnvDuration("SESSION_TTL", 1*time.Hour)
}

// GetHistoryLimit returns the maximum number of messages kept per session.
// Oldest messages are dropped first.
func GetHistoryLimit() int {
	return parseEnvInt("SESSION_HISTORY_LIMIT", 40)
}
