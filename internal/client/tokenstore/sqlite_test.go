package tokenstore

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:tokenstore_"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestRead_EmptyStoreReturnsAbsent(t *testing.T) {
	store := NewSQLiteStore(setupDB(t))

	token, err := store.Read(context.Background())
	require.NoError(t, err)
	require.Empty(t, token)
}

func TestSaveRead_RoundTrip(t *testing.T) {
	store := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "T1"))

	token, err := store.Read(ctx)
	require.NoError(t, err)
	require.Equal(t, "T1", token)
}

func TestSave_OverwritesExisting(t *testing.T) {
	store := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "T1"))
	require.NoError(t, store.Save(ctx, "T2"))

	token, err := store.Read(ctx)
	require.NoError(t, err)
	require.Equal(t, "T2", token)
}

func TestClear_RemovesTokenAndIsIdempotent(t *testing.T) {
	store := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "T1"))
	require.NoError(t, store.Clear(ctx))

	token, err := store.Read(ctx)
	require.NoError(t, err)
	require.Empty(t, token)

	// clearing an already empty store must not fail
	require.NoError(t, store.Clear(ctx))
}

func TestInitDatabase_AppliesMigrations(t *testing.T) {
	ctx := context.Background()
	db, err := InitDatabase(ctx, "file:tokenstore_migrate?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := NewSQLiteStore(db)
	require.NoError(t, store.Save(ctx, "T1"))

	token, err := store.Read(ctx)
	require.NoError(t, err)
	require.Equal(t, "T1", token)
}
