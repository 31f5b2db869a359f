package tools

import (
	"encoding/json"
	"sync"

	"github.com/coastline-labs/shorecast/internal/config"
	"github.com/coastline-labs/shorecast/internal/infrastructure/forecast"
	"github.com/coastline-labs/shorecast/internal/infrastructure/places"
	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"
)

// Service holds the tool definitions advertised to the model. A tool is
// only registered when its backing service is configured, so the agent
// degrades to a model-only answer when no backend is available.
type Service struct {
	tools []openai.Tool
	mu    sync.RWMutex
}

func NewService(placesService *places.Service, forecastService *forecast.Service) (*Service, error) {
	toolsConfig, err := config.LoadToolsConfig("")
	if err != nil {
		return nil, err
	}

	var tools []openai.Tool
	for _, toolDef := range toolsConfig.Tools {
		switch toolDef.Name {
		case "search_beaches":
			if placesService == nil {
				continue
			}
		case "get_forecast":
			if forecastService == nil {
				continue
			}
		}

		params, err := json.Marshal(toolDef.Parameters)
		if err != nil {
			return nil, err
		}

		tools = append(tools, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        toolDef.Name,
				Description: toolDef.Description,
				Parameters:  json.RawMessage(params),
			},
		})
	}

	if len(tools) == 0 {
		log.Warn().Msg("No tool backends configured - agent runs in model-only mode")
	}

	return &Service{
		tools: tools,
	}, nil
}

func (s *Service) GetTools() []openai.Tool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tools
}
