package config

// GetPlacesAPIURL returns the base URL of the beach directory API.
// Empty disables the search_beaches tool.
func GetPlacesAPIURL() string {
	return GetEnvOrDefault("PLACES_API_URL", "")
}

// GetPlacesAPIKey returns the API key for the beach directory API
func GetPlacesAPIKey() string {
	return GetEnvOrDefault("PLACES_API_KEY", "")
}
