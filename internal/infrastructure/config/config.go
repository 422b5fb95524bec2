package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// minSecretLength is the shortest signing secret the service will start with.
const minSecretLength = 32

type Config struct {
	Port        string `env:"PORT,         default=3001"`
	Env         string `env:"ENV,          default=development"`
	LogLevel    string `env:"LOG_LEVEL,    default=info"`
	JWTSecret   string `env:"JWT_SECRET"`
	FrontOrigin string `env:"FRONT_ORIGIN, default=http://localhost:3000"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=portfolio"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD, default="`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
// A missing or short JWT_SECRET is a hard error: the process must refuse to
// start rather than issue weakly signed tokens.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if len(cfg.JWTSecret) < minSecretLength {
		return nil, fmt.Errorf("config: JWT_SECRET is missing or too short (>= %d chars required)", minSecretLength)
	}
	return &cfg, nil
}
