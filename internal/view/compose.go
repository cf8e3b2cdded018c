// Package view derives the display structure for the browser client from a
// snapshot of items and locations. It is pure: composing the same snapshot
// twice yields identical output, and nothing here touches storage.
package view

import (
	"sort"
	"strings"

	"homestock/internal/model"
)

// UnassignedLabel is the display label for items without a location.
const UnassignedLabel = "Unassigned"

// Group is one location's worth of items, in storage order.
type Group struct {
	Label string       `json:"label"`
	Items []model.Item `json:"items"`
}

// View is the composed display structure: grouped by location when the
// query is empty, a single ranked list otherwise.
type View struct {
	Query   string       `json:"query"`
	Groups  []Group      `json:"groups,omitempty"`
	Results []model.Item `json:"results,omitempty"`
}

// Compose builds the view for the given snapshot and search query.
func Compose(items []model.Item, locations []model.Location, query string) View {
	query = strings.TrimSpace(query)
	if query == "" {
		return View{Groups: GroupByLocation(items, locations)}
	}
	return View{Query: query, Results: Rank(items, query)}
}

// GroupByLocation partitions items into one group per location that holds
// at least one item, in the order the locations are supplied, followed by
// an Unassigned group if non-empty. Items referencing a location that is
// not in the supplied list are treated as unassigned. Item order within a
// group is preserved as given.
func GroupByLocation(items []model.Item, locations []model.Location) []Group {
	known := make(map[int64][]model.Item, len(locations))
	for _, loc := range locations {
		known[loc.ID] = nil
	}

	var unassigned []model.Item
	for _, item := range items {
		if item.LocationID == nil {
			unassigned = append(unassigned, item)
			continue
		}
		if _, ok := known[*item.LocationID]; !ok {
			unassigned = append(unassigned, item)
			continue
		}
		known[*item.LocationID] = append(known[*item.LocationID], item)
	}

	var groups []Group
	for _, loc := range locations {
		if len(known[loc.ID]) == 0 {
			continue
		}
		groups = append(groups, Group{Label: loc.Name, Items: known[loc.ID]})
	}
	if len(unassigned) > 0 {
		groups = append(groups, Group{Label: UnassignedLabel, Items: unassigned})
	}
	return groups
}

// Rank filters items to those whose name or brand contains the query
// (case-insensitive) and orders them by relevance: the lowest index at
// which the query starts across the two fields wins, ties broken by
// case-folded name. Non-matching items are excluded.
func Rank(items []model.Item, query string) []model.Item {
	query = strings.ToLower(query)

	type ranked struct {
		item  model.Item
		index int
		name  string
	}

	var matches []ranked
	for _, item := range items {
		index := matchIndex(item, query)
		if index < 0 {
			continue
		}
		matches = append(matches, ranked{
			item:  item,
			index: index,
			name:  strings.ToLower(item.Name),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].index != matches[j].index {
			return matches[i].index < matches[j].index
		}
		return matches[i].name < matches[j].name
	})

	results := make([]model.Item, len(matches))
	for i, m := range matches {
		results[i] = m.item
	}
	return results
}

// matchIndex returns the lowest index at which query starts within the
// item's name or brand (case-folded), or -1 if neither field matches.
func matchIndex(item model.Item, query string) int {
	index := strings.Index(strings.ToLower(item.Name), query)

	if item.Brand != nil {
		brandIndex := strings.Index(strings.ToLower(*item.Brand), query)
		if index < 0 || (brandIndex >= 0 && brandIndex < index) {
			index = brandIndex
		}
	}
	return index
}
