package store

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brennanwilkes/Numeronym-Generator/pkg/lexicon"
	"github.com/brennanwilkes/Numeronym-Generator/pkg/numeronym"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	// Ensure single connection to avoid separate in-memory DBs per connection.
	db.SetMaxOpenConns(1)
	if err := InitDB(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func fixture(t *testing.T) *lexicon.Index {
	t.Helper()
	b := lexicon.NewBuilder()
	for _, w := range []string{"good", "home", "gone", "hood", "app", "go", "od"} {
		require.NoError(t, b.Add(w))
	}
	return b.Build()
}

func solve(t *testing.T, ix *lexicon.Index, raw string) numeronym.Result {
	t.Helper()
	n, err := numeronym.ParseNumber(raw)
	require.NoError(t, err)
	res, err := numeronym.Solve(n, ix)
	require.NoError(t, err)
	return res
}

func TestInitDBTwice(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, InitDB(db))
}

func TestSaveAndLoad(t *testing.T) {
	db := setupTestDB(t)
	ix := fixture(t)
	res := solve(t, ix, "2504663277")

	id, err := SaveResult(db, res, ix)
	require.NoError(t, err)
	assert.Positive(t, id)

	paths, err := LoadPaths(db, "2504663277")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"good", "app"}, {"go", "od", "app"}}, paths)

	n, err := CountPaths(db, "2504663277")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var words string
	require.NoError(t, db.QueryRow(`SELECT words FROM spans WHERE position = 0 AND length = 4`).Scan(&words))
	assert.Equal(t, "good home gone hood", words)
}

func TestSaveReplacesPaths(t *testing.T) {
	db := setupTestDB(t)
	ix := fixture(t)
	res := solve(t, ix, "2504663277")

	id1, err := SaveResult(db, res, ix)
	require.NoError(t, err)

	res.Paths = res.Paths[1:]
	id2, err := SaveResult(db, res, ix)
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	paths, err := LoadPaths(db, "2504663277")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"go", "od", "app"}}, paths)

	var spans int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM spans`).Scan(&spans))
	assert.Equal(t, 3, spans)
}

func TestLoadUnknownNumber(t *testing.T) {
	db := setupTestDB(t)

	paths, err := LoadPaths(db, "0000000000")
	require.NoError(t, err)
	assert.Empty(t, paths)

	n, err := CountPaths(db, "0000000000")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestArchiveSave(t *testing.T) {
	db := setupTestDB(t)
	ix := fixture(t)
	a := NewArchive(db, ix)

	full := solve(t, ix, "2504663277")
	empty := solve(t, ix, "2500000000")
	require.NoError(t, a.Save(context.Background(), full, empty))

	n, err := CountPaths(db, "2504663277")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var numbers int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM numbers`).Scan(&numbers))
	assert.Equal(t, 2, numbers)
}

func TestArchiveSaveRollsBack(t *testing.T) {
	db := setupTestDB(t)
	ix := fixture(t)
	a := NewArchive(db, ix)

	full := solve(t, ix, "2504663277")
	err := a.Save(context.Background(), full, numeronym.Result{})
	require.Error(t, err)

	var numbers int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM numbers`).Scan(&numbers))
	assert.Zero(t, numbers)
}
