package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/flow-hydraulics/account-keeper/accounts"
	"github.com/flow-hydraulics/account-keeper/configs"
	"github.com/flow-hydraulics/account-keeper/datastore"
	"github.com/flow-hydraulics/account-keeper/datastore/badger"
	"github.com/flow-hydraulics/account-keeper/datastore/gorm"
	"github.com/flow-hydraulics/account-keeper/datastore/local"
	"github.com/flow-hydraulics/account-keeper/datastore/redis"
	"github.com/flow-hydraulics/account-keeper/handlers"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	gormio "gorm.io/gorm"
)

const version = "0.1.0"

const (
	idempotencyKeyExpiry     = 1 * time.Hour
	idempotencyPruneInterval = 10 * time.Minute
)

var (
	sha1ver   string // sha1 revision used to build the program
	buildTime string // when the executable was built
)

func main() {
	var printVersion bool

	// If we should just print the version number and exit
	flag.BoolVar(&printVersion, "version", false, "if true, print version and exit")
	flag.Parse()

	if printVersion {
		fmt.Printf("v%s build on %s from sha1 %s\n", version, buildTime, sha1ver)
		os.Exit(0)
	}

	cfg, err := configs.Parse()
	if err != nil {
		panic(err)
	}

	if err := runServer(cfg); err != nil {
		log.Fatal(err)
	}

	os.Exit(0)
}

// openDatastore returns the configured datastore, the gorm database when one
// was opened and a function releasing the datastore's resources.
func openDatastore(cfg *configs.Config) (datastore.Store, *gormio.DB, func(), error) {
	switch cfg.StoreType {
	case configs.StoreTypeLocal:
		log.Warn("Using the local datastore, accounts will not survive a restart")
		return local.NewStore(), nil, func() {}, nil

	case configs.StoreTypeGorm:
		db, err := gorm.New(cfg)
		if err != nil {
			return nil, nil, nil, err
		}
		return gorm.NewStore(db), db, func() {
			gorm.Close(db)
			log.Info("Closed database")
		}, nil

	case configs.StoreTypeRedis:
		pool := redis.NewPool(cfg.RedisURL)
		return redis.NewStore(pool), nil, func() {
			if err := pool.Close(); err != nil {
				log.Warn(err)
			}
			log.Info("Closed Redis pool")
		}, nil

	case configs.StoreTypeBadger:
		s, err := badger.NewStore(cfg.BadgerPath)
		if err != nil {
			return nil, nil, nil, err
		}
		return s, nil, func() {
			if err := s.Close(); err != nil {
				log.Warn(err)
			}
			log.Info("Closed badger datastore")
		}, nil
	}

	return nil, nil, nil, fmt.Errorf("store type '%s' not supported", cfg.StoreType)
}

// runServer serves the API until interrupted. Errors during startup are
// returned after the datastore has been released.
func runServer(cfg *configs.Config) error {
	configs.ConfigureLogger(cfg.LogLevel)

	log.Info("Starting server")

	store, db, closeStore, err := openDatastore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	// Services
	accountService := accounts.NewService(store, accounts.WithStoreKey(cfg.StoreKey))
	if err := accountService.Load(); err != nil {
		return fmt.Errorf("error loading accounts: %w", err)
	}
	log.WithFields(log.Fields{"count": accountService.Count(), "store": cfg.StoreType}).Info("Loaded accounts")

	// HTTP handling
	accountHandler := handlers.NewAccounts(accountService)

	r := mux.NewRouter()

	// Catch the api version
	rv := r.PathPrefix("/{apiVersion}").Subrouter()

	// Debug
	rv.Handle("/debug", handlers.Debug(handlers.BuildInfo{
		Version:   version,
		Sha1Ver:   sha1ver,
		BuildTime: buildTime,
		StoreType: cfg.StoreType,
	})).Methods(http.MethodGet)

	// Health
	rv.HandleFunc("/health/ready", handlers.HandleHealthReady).Methods(http.MethodGet)
	rv.Handle("/health/liveness", handlers.Liveness(func() (interface{}, error) {
		return map[string]int{"accounts": accountService.Count()}, nil
	})).Methods(http.MethodGet)

	// Accounts
	rv.Handle("/accounts", accountHandler.List()).Methods(http.MethodGet)           // list
	rv.Handle("/accounts", accountHandler.Create()).Methods(http.MethodPost)        // create
	rv.Handle("/accounts/{id}", accountHandler.Details()).Methods(http.MethodGet)   // details
	rv.Handle("/accounts/{id}", accountHandler.Update()).Methods(http.MethodPut)    // update
	rv.Handle("/accounts/{id}", accountHandler.Remove()).Methods(http.MethodDelete) // remove

	// Marks
	rv.Handle("/marks/encode", handlers.EncodeMarks()).Methods(http.MethodPost)
	rv.Handle("/marks/decode", handlers.DecodeMarks()).Methods(http.MethodPost)

	h := http.TimeoutHandler(r, cfg.ServerRequestTimeout, "request timed out")
	h = handlers.UseJson(h)

	if cfg.MaxWriteRate > 0 {
		h = handlers.UseRateLimit(h, rate.NewLimiter(rate.Limit(cfg.MaxWriteRate), cfg.MaxWriteBurst))
	}

	// Setup idempotency key middleware if it's enabled
	if !cfg.DisableIdempotencyMiddleware {
		var is handlers.IdempotencyStore
		switch cfg.IdempotencyMiddlewareDatabaseType {
		// Shared SQL/Gorm store (same as for the accounts)
		case handlers.IdempotencyStoreTypeShared.String():
			gis := handlers.NewIdempotencyStoreGorm(db)
			pruneCtx, stopPrune := context.WithCancel(context.Background())
			defer stopPrune()
			go gis.PruneEvery(pruneCtx, idempotencyPruneInterval)
			is = gis
		// Redis, separate from the accounts
		case handlers.IdempotencyStoreTypeRedis.String():
			pool := redis.NewPool(cfg.IdempotencyMiddlewareRedisURL)
			defer func() {
				log.Info("Closing idempotency Redis pool..")
				if err := pool.Close(); err != nil {
					log.Warn(err)
				}
			}()
			is = handlers.NewIdempotencyStoreRedis(pool)
		default:
			is = handlers.NewIdempotencyStoreLocal()
		}

		h = handlers.UseIdempotency(h, handlers.IdempotencyHandlerOptions{
			Expiry:      idempotencyKeyExpiry,
			IgnorePaths: []string{"/marks"}, // Mark conversion is read-only
		}, is)
	}

	h = handlers.UseCors(h)
	h = handlers.UseLogging(h)
	h = handlers.UseCompress(h)

	// Server boilerplate
	srv := &http.Server{
		Handler:      h,
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		WriteTimeout: 0, // Disabled, set cfg.ServerRequestTimeout instead
		ReadTimeout:  0, // Disabled, set cfg.ServerRequestTimeout instead
	}

	// Run our server in a goroutine so that it doesn't block.
	go func() {
		log.
			WithFields(log.Fields{
				"host": cfg.Host,
				"port": cfg.Port,
			}).
			Info("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Warn(err)
		}
	}()

	// Trap interrupt and gracefully shutdown the server
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)

	// Block until we receive our signal.
	sig := <-c

	log.Infof("Got signal: %s. Shutting down..", sig)

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warnf("Error in server shutdown: %s", err)
	}

	// Save once more in case the last write failed
	if err := accountService.Save(); err != nil {
		log.Warnf("Error saving accounts on shutdown: %s", err)
	}

	return nil
}
