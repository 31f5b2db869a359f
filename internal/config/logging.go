package config

import (
	"strings"

	"github.com/rs/zerolog"
)

// GetLogLevel maps LOG_LEVEL to a zerolog level, defaulting to info.
func GetLogLevel() zerolog.Level {
	switch strings.ToLower(GetEnvOrDefault("LOG_LEVEL", "info")) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
