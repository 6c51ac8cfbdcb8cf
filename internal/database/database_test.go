package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.db")

	db, err := NewConnection(path)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(db))
	require.NoError(t, RunMigrations(db))

	// Schema is in place
	_, err = db.Exec(`INSERT INTO urls (id, url) VALUES ('abc123', 'http://example.com')`)
	assert.NoError(t, err)

	var hits int64
	require.NoError(t, db.QueryRow(`SELECT hits FROM urls WHERE id = 'abc123'`).Scan(&hits))
	assert.Equal(t, int64(0), hits)
}

func TestReopenExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.db")

	db, err := NewConnection(path)
	require.NoError(t, err)
	require.NoError(t, RunMigrations(db))
	_, err = db.Exec(`INSERT INTO urls (id, url) VALUES ('abc123', 'http://example.com')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// A second startup against the same file keeps existing rows
	db, err = NewConnection(path)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, RunMigrations(db))

	var url string
	require.NoError(t, db.QueryRow(`SELECT url FROM urls WHERE id = 'abc123'`).Scan(&url))
	assert.Equal(t, "http://example.com", url)
}
