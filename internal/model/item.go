package model

import "time"

// Item represents a tracked inventory unit. The location reference is
// optional; a nil LocationID means the item is unassigned.
type Item struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Quantity     int64     `json:"quantity"`
	LocationID   *int64    `json:"location_id"`
	LocationName *string   `json:"location_name"`
	PackageSize  *float64  `json:"package_size"`
	PackageUnit  *string   `json:"package_unit"`
	Brand        *string   `json:"brand"`
	AddedAt      time.Time `json:"added_at"`
}

// Package units accepted for package_size.
const (
	UnitGram       = "g"
	UnitKilogram   = "kg"
	UnitLiter      = "l"
	UnitMilliliter = "ml"
)

// ValidPackageUnit reports whether unit is one of the accepted package units.
func ValidPackageUnit(unit string) bool {
	switch unit {
	case UnitGram, UnitKilogram, UnitLiter, UnitMilliliter:
		return true
	}
	return false
}
