package config

import (
	"time"

	"github.com/rs/zerolog/log"
)

type RateLimitConfig struct {
	Enabled bool
	MaxHits int
	Window  time.Duration
}

func GetRateLimitConfig(key string) RateLimitConfig {
	enabled := GetEnvOrDefault("RATELIMIT_ENABLED", "false") == "true"

	configs := map[string]RateLimitConfig{
		"global": {
			Enabled: enabled,
			MaxHits: parseEnvInt("RATELIMIT_GLOBAL", 1000), // 1000 requests per minute globally
			Window:  time.Minute,
		},
		"oauth_token": {
			Enabled: enabled,
			MaxHits: parseEnvInt("RATELIMIT_OAUTH_TOKEN", 30), // 30 requests per minute
			Window:  time.Minute,
		},
		"agent_invoke": {
			Enabled: enabled,
			MaxHits: parseEnvInt("RATELIMIT_AGENT_INVOKE", 60), // 60 requests per minute
			Window:  time.Minute,
		},
		"agent_stream": {
			Enabled: enabled,
			MaxHits: parseEnvInt("RATELIMIT_AGENT_STREAM", 30), // 30 upgrades per minute
			Window:  time.Minute,
		},
	}

	if config, exists := configs[key]; exists {
		return config
	}

	log.Warn().Str("key", key).Msg("No rate limit config found for key")
	return RateLimitConfig{Enabled: false}
}
