package geocode

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "geocode:"

// RedisStore persists the geocode cache in Redis, one JSON value per parcel,
// for deployments where several pipeline hosts share a cache.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore connects a store to the given Redis instance.
func NewRedisStore(addr, password string, db int) *RedisStore {
	return &RedisStore{
		rdb: redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db}),
	}
}

// Ping verifies connectivity.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// Load scans all cached parcels into memory.
func (s *RedisStore) Load(ctx context.Context) (map[string]Result, error) {
	entries := map[string]Result{}

	iter := s.rdb.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		val, err := s.rdb.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("load geocode cache key %s: %w", key, err)
		}
		var r Result
		if err := json.Unmarshal([]byte(val), &r); err != nil {
			return nil, fmt.Errorf("parse geocode cache key %s: %w", key, err)
		}
		entries[key[len(redisKeyPrefix):]] = r
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan geocode cache: %w", err)
	}
	return entries, nil
}

// Flush writes every entry back. Entries are immutable once written, so
// rewriting existing keys is harmless.
func (s *RedisStore) Flush(ctx context.Context, entries map[string]Result) error {
	pipe := s.rdb.Pipeline()
	for parcel, r := range entries {
		data, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("encode geocode cache entry %s: %w", parcel, err)
		}
		pipe.Set(ctx, redisKeyPrefix+parcel, string(data), 0)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("flush geocode cache: %w", err)
	}
	return nil
}
