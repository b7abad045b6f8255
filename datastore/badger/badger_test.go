package badger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	s, err := NewMemoryStore()
	require.NoError(t, err)
	defer s.Close()

	_, found, err := s.Get("accounts")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set("accounts", []byte(`{"accounts":[]}`)))

	got, found, err := s.Get("accounts")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"accounts":[]}`, string(got))
}

func TestStoreReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set("accounts", []byte(`{"accounts":[{"id":"a"}]}`)))
	require.NoError(t, s.Close())

	s, err = NewStore(dir)
	require.NoError(t, err)
	defer s.Close()

	got, found, err := s.Get("accounts")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"accounts":[{"id":"a"}]}`, string(got))
}
