package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSQLiteConnection_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "catalog.db")

	db, err := NewSQLiteConnection(path)
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	assert.NoError(t, db.Exec("SELECT 1").Error)
	assert.FileExists(t, path)
}

func TestNewPostgresConnection_RequiresDSN(t *testing.T) {
	_, err := NewPostgresConnection("")
	assert.ErrorIs(t, err, ErrMissingDSN)
}
