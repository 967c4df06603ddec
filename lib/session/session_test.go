package session

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"homehealth-dashboard/lib/session/db"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func openTestDB(t testing.TB) *sql.DB {
	sqlite, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	sqlite.SetMaxOpenConns(1)
	_, err = sqlite.Exec(db.Schema)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { sqlite.Close() })
	return sqlite
}

func testStore(t *testing.T, store Store) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	{
		_, found, err := store.Get(ctx)
		require.NoError(t, err)
		require.False(t, found)
	}
	{
		saved := time.Unix(1_700_000_000, 0)
		err := store.Set(ctx, Credentials{Token: "tok-1", Username: "admin", SavedAt: saved})
		require.NoError(t, err)

		creds, found, err := store.Get(ctx)
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, "tok-1", creds.Token)
		require.Equal(t, "admin", creds.Username)
		require.Equal(t, saved.Unix(), creds.SavedAt.Unix())
	}
	{
		err := store.Set(ctx, Credentials{Token: "tok-2", Username: "admin"})
		require.NoError(t, err)

		creds, found, err := store.Get(ctx)
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, "tok-2", creds.Token)
	}
	{
		require.NoError(t, store.Clear(ctx))
		_, found, err := store.Get(ctx)
		require.NoError(t, err)
		require.False(t, found)

		// clearing twice is fine
		require.NoError(t, store.Clear(ctx))
	}
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore())
}

func TestSQLStore(t *testing.T) {
	testStore(t, NewSQLStore(openTestDB(t), ""))
}

func TestSQLStoreNamespaces(t *testing.T) {
	sqlite := openTestDB(t)
	ctx := context.Background()

	staging := NewSQLStore(sqlite, "staging")
	production := NewSQLStore(sqlite, "production")

	require.NoError(t, staging.Set(ctx, Credentials{Token: "staging-token", Username: "alice"}))

	_, found, err := production.Get(ctx)
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, production.Set(ctx, Credentials{Token: "prod-token", Username: "bob"}))
	require.NoError(t, staging.Clear(ctx))

	creds, found, err := production.Get(ctx)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "bob", creds.Username)
}
