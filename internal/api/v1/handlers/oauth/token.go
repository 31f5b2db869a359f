package oauth

import (
	"encoding/json"
	"net/http"

	"github.com/coastline-labs/shorecast/internal/services/oauth"
	"github.com/coastline-labs/shorecast/pkg/httpext"
	"github.com/rs/zerolog/log"
)

type TokenRequest struct {
	GrantType    string `json:"grant_type"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// HandleToken issues a client-credentials access token
func HandleToken(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httpext.JsonError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpext.JsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.GrantType != "client_credentials" {
		httpext.JsonError(w, "Invalid grant type", http.StatusBadRequest)
		return
	}

	if !oauth.ValidateCredentials(req.ClientID, req.ClientSecret) {
		log.Warn().Str("client_id", req.ClientID).Msg("Rejected token request with invalid credentials")
		httpext.JsonError(w, "Invalid client credentials", http.StatusUnauthorized)
		return
	}

	token, lifetime, err := oauth.IssueToken()
	if err != nil {
		log.Error().Err(err).Msg("Failed to sign access token")
		httpext.JsonError(w, "Failed to issue token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(lifetime.Seconds()),
	}); err != nil {
		log.Error().Err(err).Msg("Failed to encode token response")
	}
}
