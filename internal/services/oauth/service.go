package oauth

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/coastline-labs/shorecast/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const tokenLifetime = 15 * time.Minute

type CustomClaims struct {
	jwt.RegisteredClaims
	GrantType string   `json:"gty"`
	Scopes    []string `json:"scp"`
}

type TokenValidationResult struct {
	Valid     bool
	GrantType string
	ExpiresAt time.Time
	Scopes    []string
}

// ExtractToken pulls the bearer token out of the Authorization header
func ExtractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		log.Warn().Msg("Malformed Authorization header")
		return ""
	}

	return parts[1]
}

// ValidateCredentials checks a client id/secret pair against the
// configured client using constant-time comparison.
func ValidateCredentials(clientID, clientSecret string) bool {
	idMatch := subtle.ConstantTimeCompare([]byte(clientID), []byte(config.GetClientID())) == 1
	secretMatch := subtle.ConstantTimeCompare([]byte(clientSecret), []byte(config.GetClientSecret())) == 1
	return idMatch && secretMatch
}

// IssueToken signs a short-lived access token for an authenticated client
func IssueToken() (string, time.Duration, error) {
	claims := CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ID:        uuid.New().String(),
		},
		GrantType: "client_credentials",
		Scopes:    config.GetClientScopes(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(config.GetJWTSecret())
	if err != nil {
		return "", 0, err
	}

	return signed, tokenLifetime, nil
}

// ValidateToken parses and verifies an access token
func ValidateToken(tokenString string) TokenValidationResult {
	result := TokenValidationResult{Valid: false}

	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return config.GetJWTSecret(), nil
	})

	if err != nil {
		log.Debug().Err(err).Msg("Failed to parse token")
		return result
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		log.Debug().Msg("Invalid token claims")
		return result
	}

	if claims.GrantType != "client_credentials" {
		log.Debug().Str("grant_type", claims.GrantType).Msg("Invalid grant type in token")
		return result
	}

	result.Valid = true
	result.GrantType = claims.GrantType
	result.ExpiresAt = claims.ExpiresAt.Time
	result.Scopes = claims.Scopes
	return result
}

// HasScope reports whether the validated token carries a scope
func (r TokenValidationResult) HasScope(scope string) bool {
	for _, s := range r.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}
