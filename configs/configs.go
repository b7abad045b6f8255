// Package configs provides environment based configuration for the application.
package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const envPrefix = "ACCOUNT_KEEPER_"

const (
	StoreTypeLocal  = "local"
	StoreTypeGorm   = "gorm"
	StoreTypeRedis  = "redis"
	StoreTypeBadger = "badger"
)

type Config struct {
	// -- Server --

	Host string `env:"HOST"`
	Port int    `env:"PORT" envDefault:"3000"`

	// Maximum time a request may take before the server answers 503
	ServerRequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" envDefault:"60s"`

	// Sustained rate of account writes (create, update, remove) per second.
	// Zero or less disables the limit.
	MaxWriteRate  float64 `env:"MAX_WRITE_RATE" envDefault:"50"`
	MaxWriteBurst int     `env:"MAX_WRITE_BURST" envDefault:"10"`

	// -- Idempotency middleware --

	DisableIdempotencyMiddleware bool `env:"DISABLE_IDEMPOTENCY_MIDDLEWARE" envDefault:"false"`

	// Which store keeps used idempotency keys: local, shared (the gorm
	// database, requires STORE_TYPE=gorm) or redis
	IdempotencyMiddlewareDatabaseType string `env:"IDEMPOTENCY_MIDDLEWARE_DATABASE_TYPE" envDefault:"local"`

	// Redis URL for idempotency keys, defaults to REDIS_URL
	IdempotencyMiddlewareRedisURL string `env:"IDEMPOTENCY_MIDDLEWARE_REDIS_URL"`

	// -- Logging --

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// -- Storage --

	// Which datastore keeps the account snapshot: local, gorm, redis or badger
	StoreType string `env:"STORE_TYPE" envDefault:"gorm"`

	// Key under which the account snapshot is stored
	StoreKey string `env:"STORE_KEY" envDefault:"accounts"`

	DatabaseDSN             string `env:"DATABASE_DSN" envDefault:"accounts.db"`
	DatabaseType            string `env:"DATABASE_TYPE" envDefault:"sqlite"`
	DatabaseConnectAttempts int    `env:"DATABASE_CONNECT_ATTEMPTS" envDefault:"5"`

	RedisURL string `env:"REDIS_URL"`

	BadgerPath string `env:"BADGER_PATH" envDefault:"accounts.badger"`
}

type Options struct {
	EnvFilePath string
}

// Parse reads the configuration from environment variables, after loading
// an optional ".env" file.
func Parse() (*Config, error) {
	return ParseConfig(&Options{EnvFilePath: ".env"})
}

// ParseConfig reads the configuration from environment variables.
// Variables in opts.EnvFilePath, when the file exists, do not override
// ones already set in the environment.
func ParseConfig(opts *Options) (*Config, error) {
	if opts != nil && opts.EnvFilePath != "" {
		if err := godotenv.Load(opts.EnvFilePath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("unable to load env file %s: %w", opts.EnvFilePath, err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, err
	}

	switch cfg.StoreType {
	case StoreTypeLocal, StoreTypeGorm, StoreTypeBadger:
	case StoreTypeRedis:
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("store type set to redis but %sREDIS_URL is empty", envPrefix)
		}
	default:
		return nil, fmt.Errorf("store type '%s' not supported", cfg.StoreType)
	}

	if !cfg.DisableIdempotencyMiddleware {
		switch cfg.IdempotencyMiddlewareDatabaseType {
		case "local":
		case "shared":
			if cfg.StoreType != StoreTypeGorm {
				return nil, fmt.Errorf("shared idempotency store requires store type %s", StoreTypeGorm)
			}
		case "redis":
			if cfg.IdempotencyMiddlewareRedisURL == "" {
				cfg.IdempotencyMiddlewareRedisURL = cfg.RedisURL
			}
			if cfg.IdempotencyMiddlewareRedisURL == "" {
				return nil, fmt.Errorf("idempotency middleware db set to redis but Redis URL is empty")
			}
		default:
			return nil, fmt.Errorf("idempotency store type '%s' not supported", cfg.IdempotencyMiddlewareDatabaseType)
		}
	}

	if cfg.StoreKey == "" {
		return nil, fmt.Errorf("%sSTORE_KEY must not be empty", envPrefix)
	}

	return &cfg, nil
}

// ConfigureLogger sets up the package level logrus logger.
func ConfigureLogger(level string) {
	log.SetFormatter(&log.JSONFormatter{})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.WithFields(log.Fields{"level": level}).Warn("Unknown log level, using info")
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}
