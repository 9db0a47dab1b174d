package broker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Storage is the narrow persistence seam behind an ActiveBrokerCache.
// Implementations are expected to be encrypted at rest where the platform
// offers it. Get returns "" for an absent key.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// MemoryStorage is an in-process Storage, mainly for tests and for hosts
// without a durable store.
type MemoryStorage struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStorage builds an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

// Get returns the stored value or "".
func (s *MemoryStorage) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key], nil
}

// Put stores value under key.
func (s *MemoryStorage) Put(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Remove deletes key. Removing an absent key is a no-op.
func (s *MemoryStorage) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// ErrStorageUnavailable wraps transport-level failures of the Redis
// storage.
var ErrStorageUnavailable = errors.New("broker metadata storage unavailable")

// RedisStorage persists broker metadata in Redis under a namespace
// prefix. Each cache side must use its own prefix.
type RedisStorage struct {
	redis  redis.UniversalClient
	prefix string
}

// NewRedisStorage builds a RedisStorage for one namespace.
func NewRedisStorage(redisClient redis.UniversalClient, prefix string) *RedisStorage {
	if prefix == "" {
		prefix = "nabroker"
	}
	return &RedisStorage{redis: redisClient, prefix: prefix}
}

func (s *RedisStorage) key(key string) string {
	return s.prefix + ":" + key
}

// Get returns the stored value or "" when the key is absent.
func (s *RedisStorage) Get(ctx context.Context, key string) (string, error) {
	value, err := s.redis.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return value, nil
}

// Put stores value under key.
func (s *RedisStorage) Put(ctx context.Context, key, value string) error {
	if err := s.redis.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

// Remove deletes key.
func (s *RedisStorage) Remove(ctx context.Context, key string) error {
	if err := s.redis.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}
