package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/coastline-labs/shorecast/internal/config"
	"github.com/coastline-labs/shorecast/internal/infrastructure/redis"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const keyPrefix = "shorecast:session:"

// maxTxRetries bounds retries of the optimistic append transaction when
// a concurrent writer touches the same session
const maxTxRetries = 3

// Message is a single entry of a session's conversation history
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Store persists conversation history keyed by the caller's opaque
// session id
type Store interface {
	Append(ctx context.Context, sessionID string, msgs ...Message) error
	History(ctx context.Context, sessionID string) ([]Message, error)
	Clear(ctx context.Context, sessionID string) error
}

type RedisStore struct {
	redisService *redis.Service
	limit        int
}

type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]Message
	limit    int
}

// Service owns session conversation memory. It prefers Redis and falls
// back to an in-process store when Redis is not reachable.
type Service struct {
	store Store
}

func NewService(redisService *redis.Service) *Service {
	limit := config.GetHistoryLimit()

	var store Store
	if redisService != nil {
		ctx := context.Background()
		if err := redisService.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("Redis unreachable - session memory falls back to in-process storage")
			store = newMemoryStore(limit)
		} else {
			store = &RedisStore{redisService: redisService, limit: limit}
		}
	} else {
		store = newMemoryStore(limit)
	}

	return &Service{store: store}
}

func newMemoryStore(limit int) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string][]Message),
		limit:    limit,
	}
}

// Append adds messages to a session's history, dropping the oldest
// entries beyond the configured limit.
func (s *Service) Append(ctx context.Context, sessionID string, msgs ...Message) error {
	return s.store.Append(ctx, sessionID, msgs...)
}

// History returns the session's history, empty for unknown sessions.
func (s *Service) History(ctx context.Context, sessionID string) ([]Message, error) {
	return s.store.History(ctx, sessionID)
}

// Clear removes a session's history.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.store.Clear(ctx, sessionID)
}

func trim(history []Message, limit int) []Message {
	if limit > 0 && len(history) > limit {
		return history[len(history)-limit:]
	}
	return history
}

// Redis store implementation. History is stored as one JSON blob per
// session with the configured TTL refreshed on every write. Append runs
// as an optimistic WATCH transaction so concurrent turns on the same
// session cannot overwrite each other's messages.
func (rs *RedisStore) Append(ctx context.Context, sessionID string, msgs ...Message) error {
	key := keyPrefix + sessionID

	txf := func(tx *goredis.Tx) error {
		var history []Message
		data, err := tx.Get(ctx, key).Result()
		if err != nil && err != goredis.Nil {
			return err
		}
		if err == nil {
			if err := json.Unmarshal([]byte(data), &history); err != nil {
				return err
			}
		}

		history = trim(append(history, msgs...), rs.limit)
		payload, err := json.Marshal(history)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, string(payload), config.GetSessionTTL())
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxTxRetries; attempt++ {
		err := rs.redisService.Watch(ctx, txf, key)
		if err != goredis.TxFailedErr {
			return err
		}
		log.Debug().Str("session_id", sessionID).Int("attempt", attempt+1).Msg("Session append transaction conflicted, retrying")
	}
	return goredis.TxFailedErr
}

func (rs *RedisStore) History(ctx context.Context, sessionID string) ([]Message, error) {
	data, err := rs.redisService.Get(ctx, keyPrefix+sessionID)
	if err != nil {
		if redis.IsNil(err) {
			return nil, nil
		}
		return nil, err
	}

	var history []Message
	if err := json.Unmarshal([]byte(data), &history); err != nil {
		return nil, err
	}

	return history, nil
}

func (rs *RedisStore) Clear(ctx context.Context, sessionID string) error {
	return rs.redisService.Delete(ctx, keyPrefix+sessionID)
}

// In-process store implementation
func (ms *MemoryStore) Append(ctx context.Context, sessionID string, msgs ...Message) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.sessions[sessionID] = trim(append(ms.sessions[sessionID], msgs...), ms.limit)
	return nil
}

func (ms *MemoryStore) History(ctx context.Context, sessionID string) ([]Message, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	history, exists := ms.sessions[sessionID]
	if !exists {
		return nil, nil
	}
	out := make([]Message, len(history))
	copy(out, history)
	return out, nil
}

func (ms *MemoryStore) Clear(ctx context.Context, sessionID string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	delete(ms.sessions, sessionID)
	return nil
}
