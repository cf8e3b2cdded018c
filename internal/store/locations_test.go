package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homestock/internal/db"
)

func TestCreateAndListLocations(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	_, err := CreateLocation(ctx, database, "Pantry")
	require.NoError(t, err)
	_, err = CreateLocation(ctx, database, "Fridge")
	require.NoError(t, err)

	locations, err := ListLocations(ctx, database)
	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, "Fridge", locations[0].Name)
	assert.Equal(t, "Pantry", locations[1].Name)
}

func TestCreateLocationEmptyName(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	_, err := CreateLocation(ctx, database, "  ")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestCreateLocationDuplicateName(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	_, err := CreateLocation(ctx, database, "Pantry")
	require.NoError(t, err)

	_, err = CreateLocation(ctx, database, "Pantry")
	require.Error(t, err)
	assert.True(t, IsConflict(err))

	// The failed insert left the count unchanged.
	locations, err := ListLocations(ctx, database)
	require.NoError(t, err)
	assert.Len(t, locations, 1)
}

func TestLocationNamesAreCaseSensitive(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	_, err := CreateLocation(ctx, database, "Pantry")
	require.NoError(t, err)
	_, err = CreateLocation(ctx, database, "pantry")
	require.NoError(t, err)

	locations, err := ListLocations(ctx, database)
	require.NoError(t, err)
	assert.Len(t, locations, 2)
}

func TestDeleteLocationUnassignsItems(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	loc, err := CreateLocation(ctx, database, "Fridge")
	require.NoError(t, err)
	other, err := CreateLocation(ctx, database, "Pantry")
	require.NoError(t, err)

	eggs, err := CreateItem(ctx, database, ItemInput{Name: "Eggs", LocationID: &loc.ID})
	require.NoError(t, err)
	rice, err := CreateItem(ctx, database, ItemInput{Name: "Rice", LocationID: &other.ID})
	require.NoError(t, err)

	require.NoError(t, DeleteLocation(ctx, database, loc.ID))

	// The location is gone.
	locations, err := ListLocations(ctx, database)
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "Pantry", locations[0].Name)

	// Its items survive, unassigned; other items keep their location.
	got, err := GetItem(ctx, database, eggs.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.LocationID)

	kept, err := GetItem(ctx, database, rice.ID)
	require.NoError(t, err)
	require.NotNil(t, kept.LocationID)
	assert.Equal(t, other.ID, *kept.LocationID)
}

func TestDeleteLocationMissingID(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	assert.NoError(t, DeleteLocation(ctx, database, 404))
}
