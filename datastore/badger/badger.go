// Package badger provides an embedded datastore backed by BadgerDB.
package badger

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
	log "github.com/sirupsen/logrus"
)

// keyPrefix is the prefix for store keys in BadgerDB.
const keyPrefix = "store:"

// Store is a persistent datastore in a BadgerDB directory.
type Store struct {
	db *badger.DB
}

// NewStore opens (or creates) a BadgerDB at path.
func NewStore(path string) (*Store, error) {
	return open(badger.DefaultOptions(path))
}

// NewMemoryStore opens a BadgerDB that lives only in memory.
func NewMemoryStore() (*Store, error) {
	return open(badger.DefaultOptions("").WithInMemory(true))
}

func open(opts badger.Options) (*Store, error) {
	opts = opts.WithLogger(log.WithField("component", "badger"))

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	return &Store{db: db}, nil
}

func makeKey(key string) []byte {
	return []byte(keyPrefix + key)
}

func (s *Store) Get(key string) ([]byte, bool, error) {
	var (
		blob  []byte
		found bool
	)

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(makeKey(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		found = true
		blob, err = item.ValueCopy(nil)
		return err
	})

	if err != nil {
		return nil, false, fmt.Errorf("failed to get key: %w", err)
	}

	return blob, found, nil
}

func (s *Store) Set(key string, blob []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(makeKey(key), blob)
	})

	if err != nil {
		return fmt.Errorf("failed to set key: %w", err)
	}

	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
