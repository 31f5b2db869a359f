package openai

import (
	"sync"

	"github.com/coastline-labs/shorecast/internal/config"
	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"
)

type Service struct {
	mu     sync.RWMutex
	client *openai.Client
	model  string
}

func NewService() *Service {
	key := config.GetOpenAIKey()
	if key == "" {
		log.Warn().Msg("OpenAI service not configured - OPENAI_KEY missing")
		return nil
	}

	cfg := openai.DefaultConfig(key)
	if base := config.GetOpenAIBaseURL(); base != "" {
		cfg.BaseURL = base
		log.Info().Str("base_url", base).Msg("OpenAI base URL overridden")
	}

	return &Service{
		client: openai.NewClientWithConfig(cfg),
		model:  config.GetOpenAIModel(),
	}
}

func (s *Service) GetClient() *openai.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.client
}

func (s *Service) Model() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.model
}
