package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/coastline-labs/shorecast/internal/services/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleAgentCard(t *testing.T) {
	toolService, err := tools.NewService(nil, nil)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/.well-known/agent.json", nil)
	w := httptest.NewRecorder()

	HandleAgentCard(toolService, w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var card AgentCard
	require.NoError(t, json.NewDecoder(w.Body).Decode(&card))

	assert.Equal(t, "Shorecast", card.Name)
	assert.True(t, card.Capabilities.Streaming)
	require.NotEmpty(t, card.Skills)
	assert.Equal(t, "bbq_beach_search", card.Skills[0].ID)
	assert.NotEmpty(t, card.Skills[0].Examples)

	// Forecast backend is not configured, so its skill is not advertised
	for _, skill := range card.Skills {
		assert.NotEqual(t, "beach_forecast", skill.ID)
	}
}
