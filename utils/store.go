package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// KVStore is a typed key-value store for JSON-serialized blobs. An absent
// key is "no value", not an error: Get reports presence through its boolean.
// A blob that no longer parses is cleared and reported as absent, so a
// corrupt entry degrades to "no saved value" instead of failing every read.
type KVStore interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Clear(ctx context.Context, key string) error
}

// RedisKVStore implements KVStore on a Redis client.
type RedisKVStore struct {
	Client *redis.Client
}

func NewRedisKVStore(client *redis.Client) *RedisKVStore {
	return &RedisKVStore{Client: client}
}

func (s *RedisKVStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := s.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		GetLogger().Warn("Clearing malformed stored value",
			zap.String("key", key), zap.Error(err))
		s.Client.Del(ctx, key)
		return false, nil
	}
	return true, nil
}

func (s *RedisKVStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %q: %w", key, err)
	}
	if err := s.Client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store key %q: %w", key, err)
	}
	return nil
}

func (s *RedisKVStore) Clear(ctx context.Context, key string) error {
	if err := s.Client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to clear key %q: %w", key, err)
	}
	return nil
}

// Store key builders. Carts and last-appointment snapshots are keyed per
// user, booking sessions per session.
func CartKey(userID string) string            { return "cart:" + userID }
func LastAppointmentKey(userID string) string { return "lastAppointment:" + userID }
func BookingSessionKey(sessionID string) string {
	return "bookingSession:" + sessionID
}
