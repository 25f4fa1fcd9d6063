package sessionstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/culturahub/portal/internal/core/ports"
)

const (
	defaultRedisTimeout = 5 * time.Second
	redisKeyPrefix      = "portal:session:"
)

// RedisConfig captures the settings for establishing a Redis connection.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Timeout  time.Duration
}

// ConnectRedis initialises a Redis client and validates connectivity with a
// ping. A default timeout is applied when none is provided.
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRedisTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// Redis keeps the token under portal:session:<key>, without expiry; validity
// is decided by the backend, not by the store.
// Connectivity failures behave like an empty slot.
type Redis struct {
	client *redis.Client
	key    string
	log    zerolog.Logger
}

var (
	_ ports.SessionStore = (*Redis)(nil)
	_ ports.Pinger       = (*Redis)(nil)
)

// NewRedis wraps client. A nil client yields a store where every call is a no-op.
func NewRedis(client *redis.Client, key string, log zerolog.Logger) *Redis {
	return &Redis{
		client: client,
		key:    redisKeyPrefix + key,
		log:    log.With().Str("component", "sessionstore").Str("backend", "redis").Logger(),
	}
}

func (r *Redis) Get(ctx context.Context) (string, bool) {
	if r == nil || r.client == nil {
		return "", false
	}
	token, err := r.client.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false
	}
	if err != nil {
		r.log.Warn().Err(err).Msg("session read failed")
		return "", false
	}
	return token, true
}

func (r *Redis) Set(ctx context.Context, token string) {
	if r == nil || r.client == nil {
		return
	}
	if err := r.client.Set(ctx, r.key, token, 0).Err(); err != nil {
		r.log.Warn().Err(err).Msg("session write failed")
	}
}

func (r *Redis) Clear(ctx context.Context) {
	if r == nil || r.client == nil {
		return
	}
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		r.log.Warn().Err(err).Msg("session delete failed")
	}
}

// Ping reports Redis reachability for the readiness probe.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.client == nil {
		return errors.New("redis client not configured")
	}
	return r.client.Ping(ctx).Err()
}
