package gorm

import (
	"path"
	"testing"

	"github.com/flow-hydraulics/account-keeper/configs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *configs.Config {
	t.Helper()
	return &configs.Config{
		DatabaseType:            "sqlite",
		DatabaseDSN:             path.Join(t.TempDir(), "test.db"),
		DatabaseConnectAttempts: 1,
	}
}

func TestStore(t *testing.T) {
	cfg := testConfig(t)

	db, err := New(cfg)
	require.NoError(t, err)

	s := NewStore(db)

	_, found, err := s.Get("accounts")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set("accounts", []byte(`{"accounts":[]}`)))
	require.NoError(t, s.Set("accounts", []byte(`{"accounts":[{"id":"1"}]}`)))

	got, found, err := s.Get("accounts")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"accounts":[{"id":"1"}]}`, string(got))

	Close(db)

	t.Run("survives reopening", func(t *testing.T) {
		db, err := New(cfg)
		require.NoError(t, err)
		defer Close(db)

		got, found, err := NewStore(db).Get("accounts")
		require.NoError(t, err)
		assert.True(t, found)
		assert.JSONEq(t, `{"accounts":[{"id":"1"}]}`, string(got))
	})
}

func TestNewUnsupportedType(t *testing.T) {
	cfg := testConfig(t)
	cfg.DatabaseType = "oracle"

	_, err := New(cfg)
	assert.EqualError(t, err, "database type 'oracle' not supported")
}
