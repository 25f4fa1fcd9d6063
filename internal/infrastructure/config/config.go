package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=3000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// APIBaseURL is the content backend origin. The default only suits local
	// development against cmd/mockapi.
	APIBaseURL string `env:"API_BASE_URL, default=http://localhost:5000/api"`

	NotificationsCapacity int `env:"NOTIFICATIONS_CAPACITY, default=50"`

	Session SessionConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	MockAPI MockAPIConfig
}

// SessionConfig selects the token slot backend. Every caller gets its own
// slot under Key; ClientIdle is how long an unused caller stays in memory.
type SessionConfig struct {
	Backend    string        `env:"SESSION_BACKEND,     default=file"`
	Key        string        `env:"SESSION_KEY,         default=token"`
	File       string        `env:"SESSION_FILE,        default=.portal/storage.json"`
	ClientIdle time.Duration `env:"SESSION_CLIENT_IDLE, default=30m"`
}

type MongoConfig struct {
	URI      string        `env:"MONGO_URI,     default=mongodb://localhost:27017"`
	Database string        `env:"MONGO_DB,      default=portal"`
	Timeout  time.Duration `env:"MONGO_TIMEOUT, default=10s"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB,       default=0"`
	Timeout  time.Duration `env:"REDIS_TIMEOUT,  default=5s"`
}

// MockAPIConfig configures cmd/mockapi, the development content backend.
type MockAPIConfig struct {
	Port      string        `env:"MOCKAPI_PORT,       default=5000"`
	JWTSecret string        `env:"MOCKAPI_JWT_SECRET, default=dev-secret"`
	TokenTTL  time.Duration `env:"MOCKAPI_TOKEN_TTL,  default=24h"`
}

// IsDevelopment reports whether the process runs in the development environment.
func (c *Config) IsDevelopment() bool { return c.Env == "development" }

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadFrom(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadFrom reads configuration through an arbitrary lookuper (tests use
// envconfig.MapLookuper).
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	return &cfg, nil
}
