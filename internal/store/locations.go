package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"homestock/internal/model"
)

// CreateLocation creates a new location. The name must be non-empty and
// unique across all locations; a duplicate fails with a ConflictError and
// leaves no partial state.
func CreateLocation(ctx context.Context, db *sql.DB, name string) (*model.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO locations (name) VALUES (?)`, name,
	)
	if isUniqueViolation(err) {
		return nil, &ConflictError{Field: "location", Value: name}
	}
	if err != nil {
		return nil, fmt.Errorf("creating location: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting location id: %w", err)
	}

	return &model.Location{ID: id, Name: name}, nil
}

// ListLocations returns all locations ordered by name ascending.
func ListLocations(ctx context.Context, db *sql.DB) ([]model.Location, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name FROM locations ORDER BY name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing locations: %w", err)
	}
	defer rows.Close()

	var locations []model.Location
	for rows.Next() {
		var loc model.Location
		if err := rows.Scan(&loc.ID, &loc.Name); err != nil {
			return nil, fmt.Errorf("scanning location: %w", err)
		}
		locations = append(locations, loc)
	}
	return locations, rows.Err()
}

// DeleteLocation removes a location and unassigns every item that pointed
// to it. Both effects commit as one unit: a reader never sees the location
// gone with items still referencing it, or the reverse. Items themselves
// are never deleted here.
func DeleteLocation(ctx context.Context, db *sql.DB, id int64) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// Unassign before deleting: foreign keys are enforced, so the location
	// row cannot go away while items still point at it.
	if _, err := tx.ExecContext(ctx,
		`UPDATE items SET location_id = NULL WHERE location_id = ?`, id,
	); err != nil {
		return fmt.Errorf("unassigning items: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM locations WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting location: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing location deletion: %w", err)
	}
	return nil
}
