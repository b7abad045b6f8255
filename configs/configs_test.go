package configs

import (
	"os"
	"path"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
)

func TestParseConfig(t *testing.T) {
	t.Setenv("ACCOUNT_KEEPER_PORT", "8080")
	t.Setenv("ACCOUNT_KEEPER_STORE_TYPE", "badger")
	t.Setenv("ACCOUNT_KEEPER_BADGER_PATH", "/tmp/accounts")
	t.Setenv("ACCOUNT_KEEPER_SERVER_REQUEST_TIMEOUT", "5s")

	cfg, err := ParseConfig(nil)

	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 8080 {
		t.Errorf(`expected "Port" to equal 8080, got %d`, cfg.Port)
	}

	if cfg.StoreType != StoreTypeBadger {
		t.Errorf(`expected "StoreType" to equal "badger", got "%s"`, cfg.StoreType)
	}

	if cfg.BadgerPath != "/tmp/accounts" {
		t.Errorf(`expected "BadgerPath" to equal "/tmp/accounts", got "%s"`, cfg.BadgerPath)
	}

	if cfg.ServerRequestTimeout != 5*time.Second {
		t.Errorf(`expected "ServerRequestTimeout" to equal 5s, got %s`, cfg.ServerRequestTimeout)
	}

	if cfg.StoreKey != "accounts" {
		t.Errorf(`expected default "StoreKey" to equal "accounts", got "%s"`, cfg.StoreKey)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(&Options{EnvFilePath: path.Join(t.TempDir(), "missing.env")})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.StoreType != StoreTypeGorm || cfg.DatabaseType != "sqlite" || cfg.DatabaseDSN != "accounts.db" {
		t.Errorf("unexpected storage defaults: %+v", cfg)
	}
}

func TestParseConfigEnvFile(t *testing.T) {
	envFile := path.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(envFile, []byte("ACCOUNT_KEEPER_STORE_KEY=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	// godotenv sets the variable in the process environment
	t.Cleanup(func() { os.Unsetenv("ACCOUNT_KEEPER_STORE_KEY") })

	cfg, err := ParseConfig(&Options{EnvFilePath: envFile})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.StoreKey != "from-file" {
		t.Errorf(`expected "StoreKey" to equal "from-file", got "%s"`, cfg.StoreKey)
	}
}

func TestParseConfigErrors(t *testing.T) {
	t.Run("unsupported store type", func(t *testing.T) {
		t.Setenv("ACCOUNT_KEEPER_STORE_TYPE", "floppy")
		if _, err := ParseConfig(nil); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("shared idempotency store without gorm", func(t *testing.T) {
		t.Setenv("ACCOUNT_KEEPER_STORE_TYPE", "local")
		t.Setenv("ACCOUNT_KEEPER_IDEMPOTENCY_MIDDLEWARE_DATABASE_TYPE", "shared")
		if _, err := ParseConfig(nil); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("redis without url", func(t *testing.T) {
		t.Setenv("ACCOUNT_KEEPER_STORE_TYPE", "redis")
		if _, err := ParseConfig(nil); err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestIdempotencyRedisURLFallback(t *testing.T) {
	t.Setenv("ACCOUNT_KEEPER_REDIS_URL", "redis://localhost:6379")
	t.Setenv("ACCOUNT_KEEPER_IDEMPOTENCY_MIDDLEWARE_DATABASE_TYPE", "redis")

	cfg, err := ParseConfig(nil)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.IdempotencyMiddlewareRedisURL != "redis://localhost:6379" {
		t.Errorf(`expected idempotency redis URL to fall back to REDIS_URL, got "%s"`, cfg.IdempotencyMiddlewareRedisURL)
	}
}

func TestConfigureLogger(t *testing.T) {
	defer log.SetLevel(log.GetLevel())

	ConfigureLogger("debug")
	if log.GetLevel() != log.DebugLevel {
		t.Errorf("expected debug level, got %s", log.GetLevel())
	}

	ConfigureLogger("not-a-level")
	if log.GetLevel() != log.InfoLevel {
		t.Errorf("expected fallback to info level, got %s", log.GetLevel())
	}
}
