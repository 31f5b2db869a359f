package services

import (
	"fmt"
	"sync"

	"github.com/coastline-labs/shorecast/internal/infrastructure/forecast"
	openaiinfra "github.com/coastline-labs/shorecast/internal/infrastructure/openai"
	"github.com/coastline-labs/shorecast/internal/infrastructure/places"
	"github.com/coastline-labs/shorecast/internal/infrastructure/redis"
	"github.com/coastline-labs/shorecast/internal/services/agent"
	"github.com/coastline-labs/shorecast/internal/services/memory"
	"github.com/coastline-labs/shorecast/internal/services/tools"
	"github.com/rs/zerolog/log"
)

var (
	// Mutex for thread-safe initialization
	servicesMu sync.RWMutex
)

type Services struct {
	agentService    *agent.Service
	forecastService *forecast.Service
	memoryService   *memory.Service
	openAIService   *openaiinfra.Service
	placesService   *places.Service
	redisService    *redis.Service
	toolService     *tools.Service
}

// InitializeServices initializes all required services
func InitializeServices() (*Services, error) {
	servicesMu.Lock()
	defer servicesMu.Unlock()

	log.Info().Msg("Initializing core services")

	// Redis is optional; memory falls back to in-process storage
	redisService := redis.NewService()

	// Tool backends are optional; unconfigured backends disable their tool
	placesService := places.NewService()
	forecastService := forecast.NewService()

	toolService, err := tools.NewService(placesService, forecastService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tool service: %w", err)
	}
	toolExecutor := tools.NewToolExecutor(placesService, forecastService)

	memoryService := memory.NewService(redisService)

	// OpenAI service is required
	openAIService := openaiinfra.NewService()
	if openAIService == nil {
		return nil, fmt.Errorf("OpenAI service is required for core functionality - set OPENAI_KEY")
	}

	agentService, err := agent.NewService(openAIService, toolService, toolExecutor, memoryService)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize agent service")
		return nil, fmt.Errorf("failed to initialize agent service: %w", err)
	}

	log.Info().
		Int("tool_count", len(toolService.GetTools())).
		Msg("All services initialized successfully")

	return &Services{
		agentService:    agentService,
		forecastService: forecastService,
		memoryService:   memoryService,
		openAIService:   openAIService,
		placesService:   placesService,
		redisService:    redisService,
		toolService:     toolService,
	}, nil
}

// GetAgentService returns the agent service
func (s *Services) GetAgentService() *agent.Service {
	return s.agentService
}

// GetMemoryService returns the session memory service
func (s *Services) GetMemoryService() *memory.Service {
	return s.memoryService
}

// GetToolService returns the tool service
func (s *Services) GetToolService() *tools.Service {
	return s.toolService
}

// Close releases held connections
func (s *Services) Close() {
	if s.redisService != nil {
		if err := s.redisService.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis connection")
		}
	}
}
