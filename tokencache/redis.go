package tokencache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ErrRedisUnavailable wraps transport-level Redis failures.
var ErrRedisUnavailable = errors.New("token cache redis unavailable")

// RedisCache stores one JSON-encoded record per account in Redis.
type RedisCache struct {
	redis  redis.UniversalClient
	prefix string
}

// NewRedisCache builds a RedisCache; an empty prefix selects "natc".
func NewRedisCache(redisClient redis.UniversalClient, prefix string) *RedisCache {
	if prefix == "" {
		prefix = "natc"
	}
	return &RedisCache{redis: redisClient, prefix: prefix}
}

func (c *RedisCache) key(homeAccountID string) string {
	return c.prefix + ":" + homeAccountID
}

// Save stores the newest record per account from the given list.
func (c *RedisCache) Save(ctx context.Context, records []Record) error {
	if len(records) == 0 {
		return errors.New("empty record list")
	}
	seen := make(map[string]struct{}, len(records))
	for _, record := range records {
		if record.HomeAccountID == "" {
			return errors.New("record missing home account id")
		}
		if _, ok := seen[record.HomeAccountID]; ok {
			continue
		}
		seen[record.HomeAccountID] = struct{}{}

		encoded, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("encode token record: %w", err)
		}
		if err := c.redis.Set(ctx, c.key(record.HomeAccountID), encoded, 0).Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
		}
	}
	return nil
}

// Get returns the account's current record.
func (c *RedisCache) Get(ctx context.Context, homeAccountID string) (*Record, error) {
	data, err := c.redis.Get(ctx, c.key(homeAccountID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}

	record := &Record{}
	if err := json.Unmarshal(data, record); err != nil {
		return nil, fmt.Errorf("decode token record: %w", err)
	}
	return record, nil
}

// Remove drops the account's record.
func (c *RedisCache) Remove(ctx context.Context, homeAccountID string) error {
	if err := c.redis.Del(ctx, c.key(homeAccountID)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}
