package items

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE data_items (
  id      INTEGER PRIMARY KEY AUTOINCREMENT,
  title   TEXT NOT NULL,
  content TEXT NOT NULL,
  user_id INTEGER
);`)
	require.NoError(t, err)
	return db
}

func TestCreate_FillsGeneratedID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	created, err := r.Create(ctx, &Item{Title: "t", Content: "c", UserID: 1})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	second, err := r.Create(ctx, &Item{Title: "t2", Content: "c2", UserID: 1})
	require.NoError(t, err)
	assert.Greater(t, second.ID, created.ID)
}

func TestListByUser_ScopedToOwner(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := r.Create(ctx, &Item{Title: "mine", Content: "a", UserID: 1})
	require.NoError(t, err)
	_, err = r.Create(ctx, &Item{Title: "also mine", Content: "b", UserID: 1})
	require.NoError(t, err)
	_, err = r.Create(ctx, &Item{Title: "not mine", Content: "c", UserID: 2})
	require.NoError(t, err)

	mine, err := r.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "mine", mine[0].Title)
	assert.Equal(t, "also mine", mine[1].Title)

	theirs, err := r.ListByUser(ctx, 2)
	require.NoError(t, err)
	require.Len(t, theirs, 1)
	assert.Equal(t, "not mine", theirs[0].Title)
}

func TestListByUser_EmptyIsNotNil(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	items, err := r.ListByUser(context.Background(), 99)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestCreateIfAbsent_IsIdempotent(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	seed := &Item{ID: 1, Title: "Test Item 1", Content: "This is a test content", UserID: 1}
	require.NoError(t, r.CreateIfAbsent(ctx, seed))
	require.NoError(t, r.CreateIfAbsent(ctx, &Item{ID: 1, Title: "changed", Content: "changed", UserID: 1}))

	items, err := r.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Test Item 1", items[0].Title)
}
