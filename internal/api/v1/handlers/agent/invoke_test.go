package agent

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	openaiinfra "github.com/coastline-labs/shorecast/internal/infrastructure/openai"
	agentsvc "github.com/coastline-labs/shorecast/internal/services/agent"
	"github.com/coastline-labs/shorecast/internal/services/agent/models"
	"github.com/coastline-labs/shorecast/internal/services/memory"
	"github.com/coastline-labs/shorecast/internal/services/tools"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAgentService(t *testing.T, reply string) *agentsvc.Service {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ResponseFormat *struct {
				Type string `json:"type"`
			} `json:"response_format"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		content := reply
		if req.ResponseFormat != nil {
			payload, _ := json.Marshal(map[string]string{"status": "completed", "message": reply})
			content = string(payload)
		}

		json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{
					Role:    openai.ChatMessageRoleAssistant,
					Content: content,
				}},
			},
		})
	}))
	t.Cleanup(server.Close)

	t.Setenv("OPENAI_KEY", "test-key")
	t.Setenv("OPENAI_BASE_URL", server.URL+"/v1")

	openAIService := openaiinfra.NewService()
	require.NotNil(t, openAIService)

	toolService, err := tools.NewService(nil, nil)
	require.NoError(t, err)

	service, err := agentsvc.NewService(openAIService, toolService, tools.NewToolExecutor(nil, nil), memory.NewService(nil))
	require.NoError(t, err)
	return service
}

func TestHandleInvoke(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{
			name:           "valid request",
			body:           `{"query":"find a BBQ beach in Kanagawa","session_id":"session-1"}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing query",
			body:           `{"session_id":"session-1"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing session id",
			body:           `{"query":"find a beach"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed JSON",
			body:           `{not json`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	service := newAgentService(t, "Morito Beach allows BBQ.")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/agent/invoke", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			HandleInvoke(service, w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var envelope models.Envelope
				require.NoError(t, json.NewDecoder(w.Body).Decode(&envelope))
				assert.Equal(t, models.StatusCompleted, envelope.Status)
				assert.True(t, envelope.Final)
				assert.Equal(t, "Morito Beach allows BBQ.", envelope.Message)
			}
		})
	}
}
