package websocket

import (
	"net/http"
	"sync"

	"github.com/coastline-labs/shorecast/internal/connections"
	agentsvc "github.com/coastline-labs/shorecast/internal/services/agent"
	"github.com/coastline-labs/shorecast/internal/services/agent/models"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var (
	upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			// TODO: Implement proper origin checking based on configuration
			return true
		},
	}
)

// StreamRequest is one streaming invocation sent by the client
type StreamRequest struct {
	Query     string `json:"query"`
	SessionID string `json:"session_id"`
}

// HandleAgentStream upgrades the connection and serves streaming agent
// invocations. Each client frame starts one turn; the server answers
// with working envelopes followed by exactly one final envelope.
func HandleAgentStream(agentService *agentsvc.Service, manager *connections.Manager, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	manager.AddConnection(conn)
	defer manager.RemoveConnection(conn)

	timeouts := manager.GetTimeouts()

	// gorilla/websocket allows one concurrent writer per connection
	var writeMu sync.Mutex
	writeJSON := func(v interface{}) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		_ = conn.SetWriteDeadline(connections.WriteDeadline(timeouts))
		return conn.WriteJSON(v)
	}

	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(connections.ReadDeadline(timeouts))
	})

	done := make(chan struct{})
	defer close(done)

	go func() {
		ticker := connections.PingTicker(timeouts)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				writeMu.Lock()
				_ = conn.SetWriteDeadline(connections.WriteDeadline(timeouts))
				err := conn.WriteMessage(websocket.PingMessage, nil)
				writeMu.Unlock()
				if err != nil {
					return
				}
			}
		}
	}()

	for {
		// The pong handler only runs while a read is in flight, so the
		// deadline set there goes stale during a long agent turn. Re-arm
		// it before every read instead of relying on the last pong.
		_ = conn.SetReadDeadline(connections.ReadDeadline(timeouts))

		var req StreamRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Msg("Unexpected WebSocket closure")
			}
			return
		}

		stream, err := agentService.Stream(r.Context(), req.Query, req.SessionID)
		if err != nil {
			// Invalid input still terminates the turn with one final envelope
			if writeErr := writeJSON(models.Errored(err.Error())); writeErr != nil {
				return
			}
			continue
		}

		for envelope := range stream {
			if err := writeJSON(envelope); err != nil {
				log.Warn().Err(err).Msg("Failed to write envelope to WebSocket client")
				return
			}
		}
	}
}
