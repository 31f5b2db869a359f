package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/coastline-labs/shorecast/internal/connections"
	"github.com/coastline-labs/shorecast/internal/services"
	"github.com/coastline-labs/shorecast/internal/services/agent/models"
	"github.com/gorilla/websocket"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeModelServer answers every completion with a fixed reply and labels
// classifier turns completed
func fakeModelServer(t *testing.T, reply string) *httptest.Server {
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
	return server
}

func fetchToken(t *testing.T, serverURL string) string {
	t.Helper()
	resp, err := http.Post(serverURL+"/v1/oauth/token", "application/json", strings.NewReader(`{
		"grant_type": "client_credentials",
		"client_id": "test-client",
		"client_secret": "test-secret"
	}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tokenResp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tokenResp))
	require.NotEmpty(t, tokenResp.AccessToken)
	return tokenResp.AccessToken
}

func TestMainServer(t *testing.T) {
	model := fakeModelServer(t, "Morito Beach in Hayama allows BBQ.")
	t.Setenv("OPENAI_KEY", "test-key")
	t.Setenv("OPENAI_BASE_URL", model.URL+"/v1")
	t.Setenv("SHORECAST_CLIENT_ID", "test-client")
	t.Setenv("SHORECAST_CLIENT_SECRET", "test-secret")

	svcs, err := services.InitializeServices()
	require.NoError(t, err)
	defer svcs.Close()

	manager := connections.NewManager(connections.DefaultTimeouts)
	server := httptest.NewServer(setupRouter(svcs, manager))
	defer server.Close()

	t.Run("agent card endpoint", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/.well-known/agent.json")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("invoke requires auth", func(t *testing.T) {
		resp, err := http.Post(server.URL+"/v1/agent/invoke", "application/json",
			strings.NewReader(`{"query":"find a beach","session_id":"session-1"}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("authorized invoke returns terminal envelope", func(t *testing.T) {
		token := fetchToken(t, server.URL)

		req, err := http.NewRequest(http.MethodPost, server.URL+"/v1/agent/invoke",
			strings.NewReader(`{"query":"find a BBQ beach in Kanagawa","session_id":"session-1"}`))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var envelope models.Envelope
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
		assert.Equal(t, models.StatusCompleted, envelope.Status)
		assert.True(t, envelope.Final)
		assert.Equal(t, "Morito Beach in Hayama allows BBQ.", envelope.Message)
	})

	t.Run("streaming endpoint ends with final envelope", func(t *testing.T) {
		token := fetchToken(t, server.URL)

		wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/v1/agent/stream"
		header := http.Header{}
		header.Add("Authorization", "Bearer "+token)

		ws, _, err := websocket.DefaultDialer.Dial(wsURL, header)
		require.NoError(t, err)
		defer ws.Close()

		require.NoError(t, ws.WriteJSON(map[string]string{
			"query":      "find a BBQ beach in Kanagawa",
			"session_id": "session-ws",
		}))

		terminal := 0
		for {
			var envelope models.Envelope
			require.NoError(t, ws.ReadJSON(&envelope))
			if envelope.Status.Terminal() {
				terminal++
				assert.True(t, envelope.Final)
				break
			}
			assert.Equal(t, models.StatusWorking, envelope.Status)
		}
		assert.Equal(t, 1, terminal)
	})

	t.Run("streaming rejects empty session with error envelope", func(t *testing.T) {
		token := fetchToken(t, server.URL)

		wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/v1/agent/stream"
		header := http.Header{}
		header.Add("Authorization", "Bearer "+token)

		ws, _, err := websocket.DefaultDialer.Dial(wsURL, header)
		require.NoError(t, err)
		defer ws.Close()

		require.NoError(t, ws.WriteJSON(map[string]string{"query": "find a beach"}))

		var envelope models.Envelope
		require.NoError(t, ws.ReadJSON(&envelope))
		assert.Equal(t, models.StatusError, envelope.Status)
		assert.True(t, envelope.Final)
	})

	t.Run("invalid endpoint", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/invalid")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
