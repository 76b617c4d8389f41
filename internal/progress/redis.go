package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	apperrors "gradebench-backend/internal/errors"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "gradebench:sync:progress:"

// inflightTTL bounds records of runs that die without reaching a terminal
// phase, so the store never grows without limit.
const inflightTTL = 24 * time.Hour

// RedisStore is a Store backed by Redis, for multi-instance deployments
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed store with the given terminal-record TTL
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// NewRedisClient connects to Redis and verifies the connection
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// Put replaces the stored record; terminal records carry the retention TTL
func (s *RedisStore) Put(ctx context.Context, record Record) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal progress record: %w", err)
	}
	ttl := inflightTTL
	if record.Terminal() {
		ttl = s.ttl
	}
	return s.client.Set(ctx, redisKeyPrefix+Key(record.Actor, record.Target), payload, ttl).Err()
}

// Get returns the latest snapshot or ErrProgressNotFound after expiry
func (s *RedisStore) Get(ctx context.Context, actor, target string) (*Record, error) {
	payload, err := s.client.Get(ctx, redisKeyPrefix+Key(actor, target)).Bytes()
	if err == redis.Nil {
		return nil, apperrors.ErrProgressNotFound
	}
	if err != nil {
		return nil, err
	}
	var record Record
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("unmarshal progress record: %w", err)
	}
	return &record, nil
}

// Delete removes a record
func (s *RedisStore) Delete(ctx context.Context, actor, target string) error {
	return s.client.Del(ctx, redisKeyPrefix+Key(actor, target)).Err()
}
