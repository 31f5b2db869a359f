package oauth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	oauthsvc "github.com/coastline-labs/shorecast/internal/services/oauth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleToken(t *testing.T) {
	t.Setenv("SHORECAST_CLIENT_ID", "test-client")
	t.Setenv("SHORECAST_CLIENT_SECRET", "test-secret")

	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{
			name:           "valid client credentials",
			body:           `{"grant_type":"client_credentials","client_id":"test-client","client_secret":"test-secret"}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wrong secret",
			body:           `{"grant_type":"client_credentials","client_id":"test-client","client_secret":"nope"}`,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unsupported grant type",
			body:           `{"grant_type":"password"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body",
			body:           `{not json`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/oauth/token", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			HandleToken(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp TokenResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, "Bearer", resp.TokenType)
				assert.NotEmpty(t, resp.AccessToken)
				assert.Greater(t, resp.ExpiresIn, 0)

				// The issued token must validate against the oauth service
				result := oauthsvc.ValidateToken(resp.AccessToken)
				assert.True(t, result.Valid)
			}
		})
	}
}

func TestHandleTokenRejectsGet(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/oauth/token", nil)
	w := httptest.NewRecorder()

	HandleToken(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
