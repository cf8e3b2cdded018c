package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homestock/internal/model"
)

func ptr[T any](v T) *T { return &v }

func TestRankMatchIndexOrdering(t *testing.T) {
	items := []model.Item{
		{ID: 1, Name: "Almond Milk"},
		{ID: 2, Name: "Milk"},
	}

	results := Rank(items, "milk")
	require.Len(t, results, 2)

	// "Milk" matches at index 0, "Almond Milk" at index 7.
	assert.Equal(t, "Milk", results[0].Name)
	assert.Equal(t, "Almond Milk", results[1].Name)
}

func TestRankMatchesBrand(t *testing.T) {
	items := []model.Item{
		{ID: 1, Name: "Cookies", Brand: ptr("Oreo")},
		{ID: 2, Name: "Oreo Bites"},
		{ID: 3, Name: "Crackers"},
	}

	results := Rank(items, "oreo")
	require.Len(t, results, 2)

	// Both match at index 0 (one in name, one in brand); the tie breaks on
	// case-folded name.
	assert.Equal(t, "Cookies", results[0].Name)
	assert.Equal(t, "Oreo Bites", results[1].Name)
}

func TestRankUsesBestFieldIndex(t *testing.T) {
	items := []model.Item{
		{ID: 1, Name: "Dark Chocolate", Brand: ptr("Choco Dream")},
		{ID: 2, Name: "Biscuits", Brand: ptr("Milka Choco")},
	}

	// Item 1: name index 5, brand index 0 → best 0.
	// Item 2: no name match, brand index 6 → best 6.
	results := Rank(items, "choco")
	require.Len(t, results, 2)
	assert.Equal(t, int64(1), results[0].ID)
	assert.Equal(t, int64(2), results[1].ID)
}

func TestRankExcludesNonMatches(t *testing.T) {
	items := []model.Item{
		{ID: 1, Name: "Milk"},
		{ID: 2, Name: "Bread"},
	}

	results := Rank(items, "milk")
	require.Len(t, results, 1)
	assert.Equal(t, "Milk", results[0].Name)
}

func TestRankIsCaseInsensitive(t *testing.T) {
	items := []model.Item{{ID: 1, Name: "MILK"}}

	assert.Len(t, Rank(items, "milk"), 1)
	assert.Len(t, Rank(items, "MiLk"), 1)
}

func TestGroupByLocation(t *testing.T) {
	fridge := model.Location{ID: 1, Name: "Fridge"}
	pantry := model.Location{ID: 2, Name: "Pantry"}

	items := []model.Item{
		{ID: 1, Name: "Eggs", LocationID: &fridge.ID},
		{ID: 2, Name: "Rice"},
	}

	groups := GroupByLocation(items, []model.Location{fridge, pantry})
	require.Len(t, groups, 2)

	// Pantry holds nothing, so it is omitted entirely.
	assert.Equal(t, "Fridge", groups[0].Label)
	require.Len(t, groups[0].Items, 1)
	assert.Equal(t, "Eggs", groups[0].Items[0].Name)

	assert.Equal(t, UnassignedLabel, groups[1].Label)
	require.Len(t, groups[1].Items, 1)
	assert.Equal(t, "Rice", groups[1].Items[0].Name)
}

func TestGroupByLocationOmitsEmptyUnassigned(t *testing.T) {
	fridge := model.Location{ID: 1, Name: "Fridge"}
	items := []model.Item{{ID: 1, Name: "Eggs", LocationID: &fridge.ID}}

	groups := GroupByLocation(items, []model.Location{fridge})
	require.Len(t, groups, 1)
	assert.Equal(t, "Fridge", groups[0].Label)
}

func TestGroupByLocationDanglingReference(t *testing.T) {
	// A reference to a location that is not in the snapshot resolves to
	// Unassigned at read time.
	items := []model.Item{{ID: 1, Name: "Lost", LocationID: ptr(int64(99))}}

	groups := GroupByLocation(items, nil)
	require.Len(t, groups, 1)
	assert.Equal(t, UnassignedLabel, groups[0].Label)
}

func TestGroupByLocationPreservesItemOrder(t *testing.T) {
	fridge := model.Location{ID: 1, Name: "Fridge"}
	items := []model.Item{
		{ID: 1, Name: "Butter", LocationID: &fridge.ID},
		{ID: 2, Name: "Cheese", LocationID: &fridge.ID},
		{ID: 3, Name: "Eggs", LocationID: &fridge.ID},
	}

	groups := GroupByLocation(items, []model.Location{fridge})
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Items, 3)
	assert.Equal(t, "Butter", groups[0].Items[0].Name)
	assert.Equal(t, "Cheese", groups[0].Items[1].Name)
	assert.Equal(t, "Eggs", groups[0].Items[2].Name)
}

func TestComposeDispatch(t *testing.T) {
	fridge := model.Location{ID: 1, Name: "Fridge"}
	items := []model.Item{{ID: 1, Name: "Milk", LocationID: &fridge.ID}}
	locations := []model.Location{fridge}

	grouped := Compose(items, locations, "")
	assert.NotEmpty(t, grouped.Groups)
	assert.Empty(t, grouped.Results)

	searched := Compose(items, locations, "milk")
	assert.Empty(t, searched.Groups)
	assert.NotEmpty(t, searched.Results)

	// Whitespace-only queries count as empty.
	blank := Compose(items, locations, "   ")
	assert.NotEmpty(t, blank.Groups)
}

func TestComposeIsDeterministic(t *testing.T) {
	fridge := model.Location{ID: 1, Name: "Fridge"}
	items := []model.Item{
		{ID: 1, Name: "Milk", Brand: ptr("Arla"), LocationID: &fridge.ID},
		{ID: 2, Name: "Almond Milk"},
	}
	locations := []model.Location{fridge}

	first := Compose(items, locations, "")
	second := Compose(items, locations, "")
	assert.Equal(t, first, second)

	firstSearch := Compose(items, locations, "milk")
	secondSearch := Compose(items, locations, "milk")
	assert.Equal(t, firstSearch, secondSearch)
}
