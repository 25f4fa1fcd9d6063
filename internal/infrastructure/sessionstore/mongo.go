package sessionstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/culturahub/portal/internal/core/ports"
)

const (
	defaultMongoTimeout = 10 * time.Second
	sessionCollection   = "client_sessions"
)

// MongoConfig captures the minimal settings required to establish a MongoDB connection.
type MongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// ConnectMongo establishes a MongoDB client, verifies connectivity with a
// ping, and returns both the client and the selected database.
func ConnectMongo(ctx context.Context, cfg MongoConfig) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultMongoTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}

type mongoSession struct {
	Key       string `bson:"_id"`
	Token     string `bson:"token"`
	UpdatedAt int64  `bson:"updated_at"`
}

// Mongo keeps the token as a single document keyed by the session key.
type Mongo struct {
	db   *mongo.Database
	coll *mongo.Collection
	key  string
	log  zerolog.Logger
}

var (
	_ ports.SessionStore = (*Mongo)(nil)
	_ ports.Pinger       = (*Mongo)(nil)
)

// NewMongo returns a store over the client_sessions collection of db.
func NewMongo(db *mongo.Database, key string, log zerolog.Logger) *Mongo {
	m := &Mongo{
		db:  db,
		key: key,
		log: log.With().Str("component", "sessionstore").Str("backend", "mongo").Logger(),
	}
	if db != nil {
		m.coll = db.Collection(sessionCollection)
	}
	return m
}

func (m *Mongo) Get(ctx context.Context) (string, bool) {
	if m.coll == nil {
		return "", false
	}
	var doc mongoSession
	err := m.coll.FindOne(ctx, bson.M{"_id": m.key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false
	}
	if err != nil {
		m.log.Warn().Err(err).Msg("session read failed")
		return "", false
	}
	return doc.Token, true
}

func (m *Mongo) Set(ctx context.Context, token string) {
	if m.coll == nil {
		return
	}
	doc := mongoSession{Key: m.key, Token: token, UpdatedAt: time.Now().UTC().Unix()}
	_, err := m.coll.ReplaceOne(ctx, bson.M{"_id": m.key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		m.log.Warn().Err(err).Msg("session write failed")
	}
}

func (m *Mongo) Clear(ctx context.Context) {
	if m.coll == nil {
		return
	}
	if _, err := m.coll.DeleteOne(ctx, bson.M{"_id": m.key}); err != nil {
		m.log.Warn().Err(err).Msg("session delete failed")
	}
}

// Ping reports MongoDB reachability for the readiness probe.
func (m *Mongo) Ping(ctx context.Context) error {
	if m.db == nil {
		return errors.New("mongo database not configured")
	}
	return m.db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}
