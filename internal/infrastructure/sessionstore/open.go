package sessionstore

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/culturahub/portal/internal/core/ports"
)

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Options selects and configures a backend.
type Options struct {
	Backend  string
	Key      string
	FilePath string
	Redis    RedisConfig
	Mongo    MongoConfig
}

// Factory returns the token slot of one portal client. Every slot lives on
// the same backend under its own key; an empty client id yields the base slot.
type Factory func(clientID string) ports.SessionStore

// ScopedKey derives the slot key of a client from the configured base key.
func ScopedKey(key, clientID string) string {
	if clientID == "" {
		return key
	}
	return key + ":" + clientID
}

// Open builds the configured backend and returns a factory of per-client
// slots on it. An unreachable Redis or MongoDB does not fail startup: every
// slot degrades to an always-empty one and the failure is logged. The
// returned close function releases any connection.
func Open(ctx context.Context, opts Options, log zerolog.Logger) (Factory, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	switch opts.Backend {
	case BackendMemory:
		return func(string) ports.SessionStore { return NewMemory() }, noop, nil

	case BackendFile, "":
		return func(id string) ports.SessionStore {
			return NewFile(opts.FilePath, ScopedKey(opts.Key, id), log)
		}, noop, nil

	case BackendRedis:
		client, err := ConnectRedis(ctx, opts.Redis)
		if err != nil {
			log.Error().Err(err).Str("addr", opts.Redis.Addr).Msg("session store unavailable, continuing without persistence")
			return func(id string) ports.SessionStore {
				return NewRedis(nil, ScopedKey(opts.Key, id), log)
			}, noop, nil
		}
		return func(id string) ports.SessionStore {
			return NewRedis(client, ScopedKey(opts.Key, id), log)
		}, func(context.Context) error { return client.Close() }, nil

	case BackendMongo:
		client, db, err := ConnectMongo(ctx, opts.Mongo)
		if err != nil {
			log.Error().Err(err).Str("database", opts.Mongo.Database).Msg("session store unavailable, continuing without persistence")
			return func(id string) ports.SessionStore {
				return NewMongo(nil, ScopedKey(opts.Key, id), log)
			}, noop, nil
		}
		return func(id string) ports.SessionStore {
			return NewMongo(db, ScopedKey(opts.Key, id), log)
		}, client.Disconnect, nil
	}

	return nil, nil, fmt.Errorf("sessionstore: unknown backend %q", opts.Backend)
}
