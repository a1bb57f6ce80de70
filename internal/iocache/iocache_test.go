package iocache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)
	now := time.Now().Unix()

	require.NoError(t, store.Set("log:abc:0:100::false", []byte("payload"), now))

	value, ts, err := store.Get("log:abc:0:100::false")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), value)
	assert.Equal(t, now, ts)
}

func TestStoreGetMissingKey(t *testing.T) {
	store := newTestStore(t)
	_, _, err := store.Get("absent")
	assert.Error(t, err)
}

func TestStoreSetReplaces(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set("key", []byte("old"), 1))
	require.NoError(t, store.Set("key", []byte("new"), 2))

	value, ts, err := store.Get("key")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), value)
	assert.Equal(t, int64(2), ts)
}

func TestStoreClear(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set("key", []byte("value"), 1))
	require.NoError(t, store.Clear())

	_, _, err := store.Get("key")
	assert.Error(t, err)

	status, err := store.Status()
	require.NoError(t, err)
	assert.Zero(t, status.TotalEntries)
}

func TestStoreStatus(t *testing.T) {
	store := newTestStore(t)

	status, err := store.Status()
	require.NoError(t, err)
	assert.Zero(t, status.TotalEntries)
	assert.NotEmpty(t, status.Path)

	require.NoError(t, store.Set("a", []byte("1"), 100))
	require.NoError(t, store.Set("b", []byte("2"), 200))

	status, err = store.Status()
	require.NoError(t, err)
	assert.Equal(t, int64(2), status.TotalEntries)
	assert.Equal(t, time.Unix(100, 0), status.OldestEntryTime)
	assert.Equal(t, time.Unix(200, 0), status.LastEntryTime)
}
