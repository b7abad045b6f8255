// Package redis provides a datastore backed by Redis.
package redis

import (
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
)

const DefaultPrefix = "accountkeeper"

// Store keeps snapshots as plain Redis string values.
type Store struct {
	pool   *redis.Pool
	prefix string
}

func NewStore(pool *redis.Pool) *Store {
	return &Store{pool: pool, prefix: DefaultPrefix}
}

// NewPool returns a connection pool dialing the given redis:// URL.
func NewPool(url string) *redis.Pool {
	return &redis.Pool{
		MaxIdle:     8,
		IdleTimeout: 5 * time.Minute,
		Dial: func() (redis.Conn, error) {
			return redis.DialURL(url)
		},
	}
}

func (s *Store) prefixedKey(key string) string {
	return fmt.Sprintf("%s:%s", s.prefix, key)
}

func (s *Store) Get(key string) ([]byte, bool, error) {
	conn := s.pool.Get()
	defer conn.Close()

	b, err := redis.Bytes(conn.Do("GET", s.prefixedKey(key)))
	if err == redis.ErrNil {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}

	return b, true, nil
}

func (s *Store) Set(key string, blob []byte) error {
	conn := s.pool.Get()
	defer conn.Close()

	res, err := redis.String(conn.Do("SET", s.prefixedKey(key), blob))
	if err != nil {
		return err
	}

	if res != "OK" {
		return fmt.Errorf("failed to set key: %v", res)
	}

	return nil
}
