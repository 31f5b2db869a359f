package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/coastline-labs/shorecast/internal/infrastructure/forecast"
	"github.com/coastline-labs/shorecast/internal/infrastructure/places"
	"github.com/coastline-labs/shorecast/internal/services/tools/models"
	"github.com/rs/zerolog/log"
)

type ToolExecutor struct {
	placesService   *places.Service
	forecastService *forecast.Service
}

func NewToolExecutor(
	placesService *places.Service,
	forecastService *forecast.Service,
) *ToolExecutor {
	return &ToolExecutor{
		placesService:   placesService,
		forecastService: forecastService,
	}
}

// ExecuteToolCall dispatches a model tool call to its backend and renders
// a plain-text result for the conversation.
func (e *ToolExecutor) ExecuteToolCall(ctx context.Context, tool models.ToolCall) (string, error) {
	log.Info().Str("tool", tool.Function.Name).Msg("Executing tool call")

	if tool.Type != "function" {
		return "", fmt.Errorf("unsupported tool type: %s", tool.Type)
	}

	switch tool.Function.Name {
	case "search_beaches":
		var params models.BeachSearchParams
		if err := json.Unmarshal([]byte(tool.Function.Arguments), &params); err != nil {
			log.Error().Err(err).Msg("Failed to parse beach search parameters")
			return "", fmt.Errorf("invalid parameters: %w", err)
		}
		if params.Region == "" {
			return "", fmt.Errorf("invalid parameters: region is required")
		}

		result, err := e.placesService.Search(ctx, params.Region, params.BBQRequired)
		if err != nil {
			return "", fmt.Errorf("beach search failed: %w", err)
		}

		if len(result.Beaches) == 0 {
			return "No matching beaches found.", nil
		}

		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("Found %d matching beaches:\n", len(result.Beaches)))
		for _, beach := range result.Beaches {
			sb.WriteString(fmt.Sprintf("\nName: %s\nArea: %s\nFacilities: %s\nFee: %s\nReservation: %s\nAccess: %s\n",
				beach.Name,
				beach.Area,
				strings.Join(beach.Facilities, ", "),
				beach.Fee,
				beach.Reservation,
				beach.Access,
			))
			if beach.URL != "" {
				sb.WriteString(fmt.Sprintf("More info: %s\n", beach.URL))
			}
		}

		response := sb.String()
		log.Debug().Str("response", response).Msg("Beach search response")
		return response, nil

	case "get_forecast":
		var params models.ForecastParams
		if err := json.Unmarshal([]byte(tool.Function.Arguments), &params); err != nil {
			return "", fmt.Errorf("invalid parameters: %w", err)
		}
		if params.Location == "" {
			return "", fmt.Errorf("invalid parameters: location is required")
		}

		resp, err := e.forecastService.Forecast(ctx, params.Location, params.Date)
		if err != nil {
			return "", fmt.Errorf("forecast lookup failed: %w", err)
		}

		response := fmt.Sprintf(
			"Forecast for %s on %s: %s. Temperature %.1f°C, precipitation %d%%, wind %.1f m/s, waves %.1f m.",
			resp.Location,
			resp.Date,
			resp.Summary,
			resp.TemperatureC,
			resp.PrecipitationPct,
			resp.WindMps,
			resp.WaveM,
		)

		log.Debug().Str("response", response).Msg("Forecast response")
		return response, nil

	default:
		return "", fmt.Errorf("unknown function: %s", tool.Function.Name)
	}
}
