package accounts

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/flow-hydraulics/account-keeper/datastore"
	"github.com/flow-hydraulics/account-keeper/errors"
	log "github.com/sirupsen/logrus"
)

// DefaultStoreKey is the datastore key of the persisted collection.
const DefaultStoreKey = "accounts"

// Service owns the account collection and is the only way to change it.
// Every change is written to the datastore before the call returns.
type Service struct {
	mu       sync.Mutex
	store    datastore.Store
	key      string
	logger   *log.Logger
	accounts []Account
}

// NewService initiates a new account service with an empty collection.
// Call Load to rehydrate it from the datastore.
func NewService(store datastore.Store, opts ...ServiceOption) *Service {
	svc := &Service{
		store:    store,
		key:      DefaultStoreKey,
		logger:   log.StandardLogger(),
		accounts: []Account{},
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc
}

// Load replaces the collection with the snapshot stored in the datastore.
// The collection stays empty when nothing has been stored yet or when the
// stored snapshot can not be decoded.
func (s *Service) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts = []Account{}

	blob, found, err := s.store.Get(s.key)
	if err != nil {
		return fmt.Errorf("unable to read accounts: %w", err)
	}

	if !found {
		s.logger.WithFields(log.Fields{"key": s.key}).Debug("No stored accounts")
		return nil
	}

	snap := snapshot{}
	if err := json.Unmarshal(blob, &snap); err != nil {
		return fmt.Errorf("unable to decode stored accounts: %w", err)
	}

	if snap.Accounts != nil {
		s.accounts = snap.Accounts
	}

	s.logger.
		WithFields(log.Fields{"key": s.key, "count": len(s.accounts)}).
		Debug("Loaded accounts")

	return nil
}

// Save writes the current collection to the datastore.
func (s *Service) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save()
}

func (s *Service) save() error {
	blob, err := json.Marshal(snapshot{Accounts: s.accounts})
	if err != nil {
		return fmt.Errorf("unable to encode accounts: %w", err)
	}

	if err := s.store.Set(s.key, blob); err != nil {
		s.logger.
			WithFields(log.Fields{"error": err, "key": s.key}).
			Warn("Error while saving accounts")
		return fmt.Errorf("unable to persist accounts: %w", err)
	}

	return nil
}

// Create appends a to the end of the collection. Uniqueness of a.ID is not checked.
func (s *Service) Create(a Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts = append(s.accounts, a.Clone())

	s.logger.WithFields(log.Fields{"id": a.ID}).Trace("Create account")
	return s.save()
}

// Update replaces the first account with the same ID as a, keeping its
// position. Nothing is replaced when there is no such account, but the
// collection is saved either way.
func (s *Service) Update(a Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.accounts {
		if s.accounts[i].ID == a.ID {
			s.accounts[i] = a.Clone()
			break
		}
	}

	s.logger.WithFields(log.Fields{"id": a.ID}).Trace("Update account")
	return s.save()
}

// Remove drops every account with the given ID.
func (s *Service) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.accounts = kept

	s.logger.WithFields(log.Fields{"id": id}).Trace("Remove account")
	return s.save()
}

// List returns a copy of the collection in order, paged by limit and offset.
func (s *Service) List(limit, offset int) []Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := datastore.ParseListOptions(limit, offset)

	start := o.Offset
	if start > len(s.accounts) {
		start = len(s.accounts)
	}
	end := len(s.accounts)
	if o.Limit >= 0 && o.Limit < end-start {
		end = start + o.Limit
	}

	result := make([]Account, 0, end-start)
	for _, a := range s.accounts[start:end] {
		result = append(result, a.Clone())
	}

	return result
}

// Count returns the number of accounts in the collection.
func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.accounts)
}

// Details returns the first account with the given ID.
func (s *Service) Details(id string) (Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.accounts {
		if a.ID == id {
			return a.Clone(), nil
		}
	}

	return Account{}, errors.NotFound("account")
}
