package agent

import (
	"encoding/json"
	"net/http"

	agentsvc "github.com/coastline-labs/shorecast/internal/services/agent"
	"github.com/coastline-labs/shorecast/pkg/httpext"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// InvokeRequest is the body of a blocking agent call
type InvokeRequest struct {
	Query     string `json:"query" validate:"required"`
	SessionID string `json:"session_id" validate:"required"`
}

// HandleInvoke runs one blocking agent turn. The terminal envelope is
// always returned with HTTP 200; agent failures travel inside the
// envelope, not as transport errors.
func HandleInvoke(agentService *agentsvc.Service, w http.ResponseWriter, r *http.Request) {
	var req InvokeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("Client sent malformed JSON request")
		httpext.JsonError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	// use a single instance of Validate, it caches struct info
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.Struct(req); err != nil {
		log.Warn().Err(err).Msg("Request validation failed")
		httpext.JsonError(w, "query and session_id are required", http.StatusBadRequest)
		return
	}

	log.Info().
		Str("session_id", req.SessionID).
		Str("client_ip", r.RemoteAddr).
		Msg("Received agent invoke request")

	envelope, err := agentService.Invoke(r.Context(), req.Query, req.SessionID)
	if err != nil {
		log.Warn().Err(err).Str("session_id", req.SessionID).Msg("Rejected invalid agent invocation")
		httpext.JsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		log.Error().Err(err).Msg("Failed to encode envelope response")
		httpext.JsonError(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}

	log.Info().
		Str("session_id", req.SessionID).
		Str("status", string(envelope.Status)).
		Msg("Agent invoke request processed")
}
