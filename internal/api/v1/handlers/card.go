package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/coastline-labs/shorecast/internal/config"
	"github.com/coastline-labs/shorecast/internal/services/tools"
	"github.com/rs/zerolog/log"
)

// AgentCard is the machine-readable description served from the
// well-known endpoint so other agents can discover this one.
type AgentCard struct {
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	URL          string            `json:"url"`
	Version      string            `json:"version"`
	Capabilities AgentCapabilities `json:"capabilities"`
	Skills       []AgentSkill      `json:"skills"`
}

type AgentCapabilities struct {
	Streaming bool `json:"streaming"`
}

type AgentSkill struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Examples    []string `json:"examples"`
}

const agentVersion = "1.0.0"

// HandleAgentCard serves the agent card. The forecast skill is only
// advertised when its tool backend is configured.
func HandleAgentCard(toolService *tools.Service, w http.ResponseWriter, r *http.Request) {
	hasForecast := false
	for _, tool := range toolService.GetTools() {
		if tool.Function != nil && tool.Function.Name == "get_forecast" {
			hasForecast = true
		}
	}

	card := AgentCard{
		Name:        "Shorecast",
		Description: "Finds beaches where barbecue is possible and reports fees, facilities, reservation procedures, access and weather conditions.",
		URL:         config.GetPublicURL(),
		Version:     agentVersion,
		Capabilities: AgentCapabilities{
			Streaming: true,
		},
		Skills: []AgentSkill{
			{
				ID:          "bbq_beach_search",
				Name:        "BBQ Beach Search",
				Description: "Searches for beaches where barbecue is possible and provides fees, facilities, reservation and access details.",
				Tags:        []string{"bbq", "beach", "outdoor", "recreation"},
				Examples: []string{
					"Find a beach in Kanagawa where I can have a barbecue",
					"Which beaches around Shonan allow BBQ?",
					"Is there a beach with BBQ equipment rental in Chiba?",
					"How do I reserve a BBQ spot at a beach?",
				},
			},
		},
	}

	if hasForecast {
		card.Skills = append(card.Skills, AgentSkill{
			ID:          "beach_forecast",
			Name:        "Beach Forecast",
			Description: "Checks weather and sea conditions for a coastal location before a visit.",
			Tags:        []string{"weather", "forecast", "sea", "beach"},
			Examples: []string{
				"What's the weather at Yuigahama this Saturday?",
				"Will the waves be calm at Zushi tomorrow?",
			},
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(card); err != nil {
		log.Error().Err(err).Msg("Failed to encode agent card")
	}
}
