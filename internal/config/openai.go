package config

// GetOpenAIKey returns the OpenAI API key, empty when unset
func GetOpenAIKey() string {
	return GetEnvOrDefault("OPENAI_KEY", "")
}

// GetOpenAIBaseURL returns an override for the OpenAI API base URL.
// Empty means the SDK default.
func GetOpenAIBaseURL() string {
	return GetEnvOrDefault("OPENAI_BASE_URL", "")
}

// GetOpenAIModel returns the chat model used by the agent loop
func GetOpenAIModel() string {
	return GetEnvOrDefault("OPENAI_MODEL", "gpt-4o")
}
