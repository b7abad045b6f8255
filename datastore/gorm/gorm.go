package gorm

import (
	"fmt"
	"time"

	"github.com/flow-hydraulics/account-keeper/configs"
	"github.com/flow-hydraulics/account-keeper/migrations"
	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/jpillora/backoff"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// New opens the configured database and brings its schema up to date.
// Opening is retried with exponential backoff up to cfg.DatabaseConnectAttempts times.
func New(cfg *configs.Config) (*gorm.DB, error) {
	d, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	b := &backoff.Backoff{
		Min:    100 * time.Millisecond,
		Max:    10 * time.Second,
		Factor: 2,
		Jitter: true,
	}

	attempts := cfg.DatabaseConnectAttempts
	if attempts < 1 {
		attempts = 1
	}

	var db *gorm.DB
	for {
		db, err = gorm.Open(d, options())
		if err == nil {
			break
		}
		if int(b.Attempt())+1 >= attempts {
			return nil, fmt.Errorf("unable to open database: %w", err)
		}
		wait := b.Duration()
		log.
			WithFields(log.Fields{"error": err, "type": cfg.DatabaseType, "retryIn": wait}).
			Warn("Could not open database, retrying")
		time.Sleep(wait)
	}

	m := gormigrate.New(db, gormigrate.DefaultOptions, migrations.List())
	if err := m.Migrate(); err != nil {
		Close(db)
		return nil, fmt.Errorf("unable to migrate database: %w", err)
	}

	return db, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Warn("unable to close database")
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warnf("unable to close database: %s", err)
	}
}
