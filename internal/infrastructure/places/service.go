package places

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/coastline-labs/shorecast/internal/config"
	"github.com/rs/zerolog/log"
)

// Service talks to the beach directory API used by the search_beaches tool.
type Service struct {
	mu      sync.RWMutex
	client  *http.Client
	baseURL string
	apiKey  string
}

type SearchRequest struct {
	Region      string `json:"region"`
	BBQRequired bool   `json:"bbq_required"`
	MaxResults  int    `json:"max_results"`
}

type SearchResponse struct {
	Beaches []Beach `json:"beaches"`
}

type Beach struct {
	Name        string   `json:"name"`
	Area        string   `json:"area"`
	Facilities  []string `json:"facilities"`
	Fee         string   `json:"fee"`
	Reservation string   `json:"reservation"`
	Access      string   `json:"access"`
	URL         string   `json:"url,omitempty"`
}

func NewService() *Service {
	baseURL := config.GetPlacesAPIURL()

	if baseURL == "" {
		log.Warn().Msg("Places service not configured - search_beaches tool disabled")
		return nil
	}

	return &Service{
		client:  &http.Client{},
		baseURL: baseURL,
		apiKey:  config.GetPlacesAPIKey(),
	}
}

// Search queries the beach directory for BBQ-capable beaches in a region.
func (s *Service) Search(ctx context.Context, region string, bbqRequired bool) (*SearchResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	req := SearchRequest{
		Region:      region,
		BBQRequired: bbqRequired,
		MaxResults:  5,
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/beaches/search", s.baseURL)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("beach directory request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Error().
			Int("status", resp.StatusCode).
			Str("region", region).
			Msg("Beach directory returned non-OK status")
		return nil, fmt.Errorf("beach directory returned status %d", resp.StatusCode)
	}

	var searchResp SearchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &searchResp, nil
}
