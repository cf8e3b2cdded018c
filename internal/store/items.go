package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"homestock/internal/model"
)

// ItemInput carries the caller-supplied fields for creating or editing an
// item. Nil pointers mean "absent".
type ItemInput struct {
	Name        string
	Quantity    *int64
	LocationID  *int64
	PackageSize *float64
	PackageUnit *string
	Brand       *string
}

// normalize trims and validates an item input in place. Invalid package
// units and non-positive package sizes are discarded rather than rejected;
// an empty name or an unknown location fails the whole operation.
func (in *ItemInput) normalize(ctx context.Context, db *sql.DB) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	if in.Brand != nil {
		brand := strings.TrimSpace(*in.Brand)
		if brand == "" {
			in.Brand = nil
		} else {
			in.Brand = &brand
		}
	}

	if in.PackageUnit != nil && !model.ValidPackageUnit(*in.PackageUnit) {
		in.PackageUnit = nil
	}
	if in.PackageSize != nil && *in.PackageSize <= 0 {
		in.PackageSize = nil
	}

	if in.LocationID != nil {
		var exists int
		err := db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM locations WHERE id = ?`, *in.LocationID,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("checking location: %w", err)
		}
		if exists == 0 {
			return &ValidationError{Field: "location_id", Reason: "no such location"}
		}
	}

	return nil
}

// CreateItem creates a new item and returns the stored record.
func CreateItem(ctx context.Context, db *sql.DB, in ItemInput) (*model.Item, error) {
	if err := in.normalize(ctx, db); err != nil {
		return nil, err
	}

	quantity := int64(1)
	if in.Quantity != nil {
		quantity = *in.Quantity
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO items (name, quantity, location_id, package_size, package_unit, brand)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		in.Name, quantity, in.LocationID, in.PackageSize, in.PackageUnit, in.Brand,
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting item id: %w", err)
	}

	return GetItem(ctx, db, id)
}

// GetItem returns an item by ID, with its location name joined in.
// Returns nil if no item matches.
func GetItem(ctx context.Context, db *sql.DB, id int64) (*model.Item, error) {
	item := &model.Item{}
	err := db.QueryRowContext(ctx,
		`SELECT i.id, i.name, i.quantity, i.location_id, l.name,
		        i.package_size, i.package_unit, i.brand, i.added_at
		 FROM items i
		 LEFT JOIN locations l ON l.id = i.location_id
		 WHERE i.id = ?`, id,
	).Scan(scanItemDest(item)...)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return item, nil
}

// ListItems returns all items, each with its location display name joined
// in, ordered by name ascending (case-folded).
func ListItems(ctx context.Context, db *sql.DB) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT i.id, i.name, i.quantity, i.location_id, l.name,
		        i.package_size, i.package_unit, i.brand, i.added_at
		 FROM items i
		 LEFT JOIN locations l ON l.id = i.location_id
		 ORDER BY i.name COLLATE NOCASE ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		if err := rows.Scan(scanItemDest(&item)...); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// scanItemDest returns the scan destinations for an item row as selected by
// GetItem and ListItems.
func scanItemDest(item *model.Item) []any {
	return []any{
		&item.ID, &item.Name, &item.Quantity, &item.LocationID, &item.LocationName,
		&item.PackageSize, &item.PackageUnit, &item.Brand, &item.AddedAt,
	}
}

// UpdateItemQuantity sets an item's quantity. Updating an id that matches no
// row is not an error. Storage trusts the caller to supply a non-negative
// value; the client clamps decrements at zero before they get here.
func UpdateItemQuantity(ctx context.Context, db *sql.DB, id, quantity int64) error {
	_, err := db.ExecContext(ctx,
		`UPDATE items SET quantity = ? WHERE id = ?`, quantity, id,
	)
	if err != nil {
		return fmt.Errorf("updating item quantity: %w", err)
	}
	return nil
}

// UpdateItemFields updates an item's editable fields by identity, applying
// the same validation as CreateItem. The quantity is left untouched.
func UpdateItemFields(ctx context.Context, db *sql.DB, id int64, in ItemInput) (*model.Item, error) {
	if err := in.normalize(ctx, db); err != nil {
		return nil, err
	}

	_, err := db.ExecContext(ctx,
		`UPDATE items SET name = ?, location_id = ?, package_size = ?, package_unit = ?, brand = ?
		 WHERE id = ?`,
		in.Name, in.LocationID, in.PackageSize, in.PackageUnit, in.Brand, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating item: %w", err)
	}

	return GetItem(ctx, db, id)
}

// DeleteItem removes an item by identity. Deleting an absent id is not an
// error.
func DeleteItem(ctx context.Context, db *sql.DB, id int64) error {
	_, err := db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	return nil
}

// ListDistinctBrands returns the alphabetically sorted set of non-empty
// brand values currently in use. Brands are a projection over live item
// rows, never a table of their own.
func ListDistinctBrands(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT DISTINCT brand FROM items
		 WHERE brand IS NOT NULL AND brand != ''
		 ORDER BY brand ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing brands: %w", err)
	}
	defer rows.Close()

	var brands []string
	for rows.Next() {
		var brand string
		if err := rows.Scan(&brand); err != nil {
			return nil, fmt.Errorf("scanning brand: %w", err)
		}
		brands = append(brands, brand)
	}
	return brands, rows.Err()
}
