package config

// GetForecastAPIURL returns the base URL of the weather forecast API.
// Empty disables the get_forecast tool.
func GetForecastAPIURL() string {
	return GetEnvOrDefault("FORECAST_API_URL", "")
}

// GetForecastAPIKey returns the API key for the weather forecast API
func GetForecastAPIKey() string {
	return GetEnvOrDefault("FORECAST_API_KEY", "")
}
