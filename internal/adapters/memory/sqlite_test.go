package memory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, opts ...Option) *SQLiteMemory {
	t.Helper()
	store, err := NewSQLiteMemory(filepath.Join(t.TempDir(), "memory.db"), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestAppendAndRecent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "first"))
	require.NoError(t, store.Append(ctx, "second"))
	require.NoError(t, store.Append(ctx, "third"))

	notes, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"third", "second"}, notes)

	all, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"third", "second", "first"}, all)
}

func TestRecent_EmptyAndZeroLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	notes, err := store.Recent(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, notes)

	require.NoError(t, store.Append(ctx, "note"))
	notes, err = store.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestSessionsAreIsolated(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "memory.db")
	ctx := context.Background()

	first, err := NewSQLiteMemory(dbPath)
	require.NoError(t, err)
	require.NoError(t, first.Append(ctx, "belongs to first"))
	require.NoError(t, first.Close())

	second, err := NewSQLiteMemory(dbPath)
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	assert.NotEqual(t, first.SessionID(), second.SessionID())
	notes, err := second.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, notes, "new session must not see other sessions' notes")
}

func TestResumeSession(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "memory.db")
	ctx := context.Background()

	first, err := NewSQLiteMemory(dbPath)
	require.NoError(t, err)
	sessionID := first.SessionID()
	require.NoError(t, first.Append(ctx, "persisted"))
	require.NoError(t, first.Close())

	resumed, err := NewSQLiteMemory(dbPath, WithSessionID(sessionID))
	require.NoError(t, err)
	defer func() { _ = resumed.Close() }()

	notes, err := resumed.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"persisted"}, notes)
}
