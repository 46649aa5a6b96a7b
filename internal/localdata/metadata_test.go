package localdata

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:localdata_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM metadata`)
	require.NoError(t, err)
	return db
}

func TestRepository_GetMissingKey(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))

	v, err := repo.Get(context.Background(), "token")
	require.NoError(t, err)
	require.Nil(t, v, "absent key must yield nil without error")
}

func TestRepository_SetGetOverwrite(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "token", []byte("abc")))

	v, err := repo.Get(ctx, "token")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), v)

	require.NoError(t, repo.Set(ctx, "token", []byte("def")))
	v, err = repo.Get(ctx, "token")
	require.NoError(t, err)
	require.Equal(t, []byte("def"), v)
}

func TestRepository_Replace(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "token", []byte("old")))
	require.NoError(t, repo.Set(ctx, "stale", []byte("x")))

	require.NoError(t, repo.Replace(ctx, "token", []byte("new")))

	v, err := repo.Get(ctx, "token")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), v)

	v, err = repo.Get(ctx, "stale")
	require.NoError(t, err)
	require.Nil(t, v, "replace must drop every other key")
}

func TestRepository_Delete(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "token", []byte("abc")))
	require.NoError(t, repo.Delete(ctx, "token"))

	v, err := repo.Get(ctx, "token")
	require.NoError(t, err)
	require.Nil(t, v)

	// Deleting an absent key is not an error.
	require.NoError(t, repo.Delete(ctx, "token"))
}

func TestRepository_Clear(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "token", []byte("abc")))
	require.NoError(t, repo.Set(ctx, "other", []byte("x")))
	require.NoError(t, repo.Clear(ctx))

	for _, k := range []string{"token", "other"} {
		v, err := repo.Get(ctx, k)
		require.NoError(t, err)
		require.Nil(t, v)
	}
}

func TestInitDatabase_AppliesMigrations(t *testing.T) {
	dir := t.TempDir()
	db, err := InitDatabase(context.Background(), dir+"/test.db")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewSQLiteRepository(db)
	require.NoError(t, repo.Set(context.Background(), "token", []byte("abc")))
}
