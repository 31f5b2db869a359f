package handlers

import (
	"net/http"

	v1agent "github.com/coastline-labs/shorecast/internal/api/v1/handlers/agent"
	v1oauth "github.com/coastline-labs/shorecast/internal/api/v1/handlers/oauth"
	v1ws "github.com/coastline-labs/shorecast/internal/api/v1/handlers/websocket"
	v1mware "github.com/coastline-labs/shorecast/internal/api/v1/middleware"
	"github.com/coastline-labs/shorecast/internal/connections"
	"github.com/coastline-labs/shorecast/internal/services"
	"github.com/gorilla/mux"
)

func RegisterRoutes(router *mux.Router, services *services.Services, manager *connections.Manager) {
	// Agent card is public so other agents can discover this one
	router.HandleFunc("/.well-known/agent.json", func(w http.ResponseWriter, r *http.Request) {
		HandleAgentCard(services.GetToolService(), w, r)
	}).Methods("GET")

	v1 := router.PathPrefix("/v1").Subrouter()

	// OAuth v1 routes (no auth required)
	v1oauthRouter := v1.PathPrefix("/oauth").Subrouter()
	v1oauthRouter.Handle("/token", v1mware.RateLimit("oauth_token")(http.HandlerFunc(v1oauth.HandleToken))).Methods("POST")

	// Protected v1 agent routes (require auth)
	v1agentRouter := v1.PathPrefix("/agent").Subrouter()
	v1agentRouter.Use(v1mware.RequireAuth())
	v1agentRouter.Use(v1mware.RequireScope("agent:invoke"))

	v1agentRouter.Handle("/invoke", v1mware.RateLimit("agent_invoke")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v1agent.HandleInvoke(services.GetAgentService(), w, r)
	}))).Methods("POST")

	v1agentRouter.Handle("/stream", v1mware.RateLimit("agent_stream")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v1ws.HandleAgentStream(services.GetAgentService(), manager, w, r)
	}))).Methods("GET")
}
