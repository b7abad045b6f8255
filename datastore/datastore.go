// Package datastore provides reload-durable key-value storage for
// serialized snapshots.
package datastore

// Store persists opaque blobs under string keys.
type Store interface {
	// Get returns the blob stored under key. found is false when
	// nothing has been stored yet.
	Get(key string) (blob []byte, found bool, err error)

	// Set stores blob under key, replacing any previous value.
	Set(key string, blob []byte) error
}

type ListOptions struct {
	Limit  int
	Offset int
}

const DefaultLimit = 1000

func ParseListOptions(limit, offset int) ListOptions {
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < 0 {
		limit = -1
		offset = 0
	}
	if offset < 0 {
		offset = 0
	}
	return ListOptions{Limit: limit, Offset: offset}
}
