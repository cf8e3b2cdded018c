package db

import (
	"database/sql"
	"fmt"
)

// migrations is the ordered list of schema changes. Each entry runs in its
// own transaction and is recorded in schema_migrations, so a step is applied
// exactly once. Append new migrations at the end; never edit applied ones.
var migrations = []string{
	// Base items table.
	`CREATE TABLE IF NOT EXISTS items (
	    id       INTEGER PRIMARY KEY AUTOINCREMENT,
	    name     TEXT NOT NULL,
	    quantity INTEGER NOT NULL DEFAULT 1 CHECK (quantity >= 0),
	    added_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,

	// Locations, with the nullable reference on items. Location names are
	// unique; inserting a duplicate must fail outright.
	`CREATE TABLE IF NOT EXISTS locations (
	    id   INTEGER PRIMARY KEY AUTOINCREMENT,
	    name TEXT NOT NULL UNIQUE
	)`,
	`ALTER TABLE items ADD COLUMN location_id INTEGER REFERENCES locations(id)`,

	// Package metadata and brand.
	`ALTER TABLE items ADD COLUMN package_size REAL`,
	`ALTER TABLE items ADD COLUMN package_unit TEXT`,
	`ALTER TABLE items ADD COLUMN brand TEXT`,

	// Index for the location grouping reads.
	`CREATE INDEX IF NOT EXISTS idx_items_location_id ON items(location_id)`,
}

// Migrate applies all pending migrations. A schema_migrations row marks each
// applied step, so running Migrate on an up-to-date database is a no-op.
func Migrate(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
	    version    INTEGER PRIMARY KEY,
	    applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations: %w", err)
	}

	var current int
	err = db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current)
	if err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	for i := current; i < len(migrations); i++ {
		version := i + 1
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("beginning migration %d: %w", version, err)
		}
		if _, err := tx.Exec(migrations[i]); err != nil {
			tx.Rollback()
			return fmt.Errorf("running migration %d: %w", version, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations (version) VALUES (?)`, version); err != nil {
			tx.Rollback()
			return fmt.Errorf("recording migration %d: %w", version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration %d: %w", version, err)
		}
	}

	return nil
}

// Version returns the highest applied migration version, or 0 for a fresh
// database.
func Version(db *sql.DB) (int, error) {
	var exists int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'schema_migrations'`,
	).Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("checking schema_migrations: %w", err)
	}
	if exists == 0 {
		return 0, nil
	}

	var version int
	err = db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return version, nil
}
