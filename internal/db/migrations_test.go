package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateFreshDatabase(t *testing.T) {
	database, err := Open(":memory:")
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, Migrate(database))

	version, err := Version(database)
	require.NoError(t, err)
	assert.Equal(t, len(migrations), version)

	// Both tables exist and are usable.
	_, err = database.Exec(`INSERT INTO locations (name) VALUES ('Pantry')`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO items (name, location_id) VALUES ('Rice', 1)`)
	require.NoError(t, err)
}

func TestMigrateIsIdempotent(t *testing.T) {
	database, err := Open(":memory:")
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))

	version, err := Version(database)
	require.NoError(t, err)
	assert.Equal(t, len(migrations), version)

	var applied int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied))
	assert.Equal(t, len(migrations), applied)
}

func TestVersionOnFreshDatabase(t *testing.T) {
	database, err := Open(":memory:")
	require.NoError(t, err)
	defer database.Close()

	version, err := Version(database)
	require.NoError(t, err)
	assert.Equal(t, 0, version)
}

func TestQuantityCheckConstraint(t *testing.T) {
	database := NewTestDB(t)

	_, err := database.Exec(`INSERT INTO items (name, quantity) VALUES ('Milk', -1)`)
	assert.Error(t, err)
}
