package forecast

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"

	"github.com/coastline-labs/shorecast/internal/config"
	"github.com/rs/zerolog/log"
)

// Service talks to the weather forecast API used by the get_forecast tool.
type Service struct {
	mu      sync.RWMutex
	client  *http.Client
	baseURL string
	apiKey  string
}

type ForecastResponse struct {
	Location         string  `json:"location"`
	Date             string  `json:"date"`
	Summary          string  `json:"summary"`
	TemperatureC     float64 `json:"temperature_c"`
	PrecipitationPct int     `json:"precipitation_pct"`
	WindMps          float64 `json:"wind_mps"`
	WaveM            float64 `json:"wave_m"`
}

func NewService() *Service {
	baseURL := config.GetForecastAPIURL()

	if baseURL == "" {
		log.Warn().Msg("Forecast service not configured - get_forecast tool disabled")
		return nil
	}

	return &Service{
		client:  &http.Client{},
		baseURL: baseURL,
		apiKey:  config.GetForecastAPIKey(),
	}
}

// Forecast fetches weather and sea conditions for a coastal location.
// An empty date means today.
func (s *Service) Forecast(ctx context.Context, location, date string) (*ForecastResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := url.Values{}
	query.Set("location", location)
	if date != "" {
		query.Set("date", date)
	}

	reqURL := fmt.Sprintf("%s/v1/forecast?%s", s.baseURL, query.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if s.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("forecast request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Error().
			Int("status", resp.StatusCode).
			Str("location", location).
			Msg("Forecast API returned non-OK status")
		return nil, fmt.Errorf("forecast API returned status %d", resp.StatusCode)
	}

	var forecastResp ForecastResponse
	if err := json.Unmarshal(body, &forecastResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &forecastResp, nil
}
