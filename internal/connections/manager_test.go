package connections

import (
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

func TestManager(t *testing.T) {
	t.Run("basic add and remove connection", func(t *testing.T) {
		manager := NewManager(DefaultTimeouts)
		conn := &websocket.Conn{}

		manager.AddConnection(conn)
		assert.True(t, manager.HasConnection(conn))
		assert.Equal(t, 1, manager.GetConnectionCount())

		manager.RemoveConnection(conn)
		assert.False(t, manager.HasConnection(conn))
		assert.Equal(t, 0, manager.GetConnectionCount())
	})

	t.Run("concurrent connection operations", func(t *testing.T) {
		manager := NewManager(DefaultTimeouts)
		concurrentOps := 100

		conns := make([]*websocket.Conn, concurrentOps)
		for i := range conns {
			conns[i] = &websocket.Conn{}
		}

		var wg sync.WaitGroup
		wg.Add(concurrentOps)
		for i := 0; i < concurrentOps; i++ {
			go func(conn *websocket.Conn) {
				defer wg.Done()
				manager.AddConnection(conn)
			}(conns[i])
		}
		wg.Wait()

		assert.Equal(t, concurrentOps, manager.GetConnectionCount())
	})

	t.Run("timeout helpers", func(t *testing.T) {
		timeouts := TimeoutConfig{
			PongWait:   30 * time.Second,
			PingPeriod: 27 * time.Second,
			WriteWait:  10 * time.Second,
		}
		manager := NewManager(timeouts)
		assert.Equal(t, timeouts, manager.GetTimeouts())

		now := time.Now()
		assert.WithinDuration(t, now.Add(timeouts.PongWait), ReadDeadline(timeouts), time.Second)
		assert.WithinDuration(t, now.Add(timeouts.WriteWait), WriteDeadline(timeouts), time.Second)

		ticker := PingTicker(timeouts)
		ticker.Stop()
	})
}
