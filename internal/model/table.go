package model

import "time"

// Table locations. A table sits in exactly one location and the set is
// fixed at the schema level.
const (
	LocationIndoors  = "indoors"
	LocationOutdoors = "outdoors"
	LocationBalcony  = "balcony"
	LocationPrivate  = "private"
)

// Table statuses. The status column is a denormalized projection of the
// table's active reservations (plus the explicit maintenance override);
// it is rewritten by the lifecycle service whenever a reservation
// referencing the table changes state.
const (
	TableAvailable   = "available"
	TableOccupied    = "occupied"
	TableReserved    = "reserved"
	TableMaintenance = "maintenance"
)

// Table represents a physical dining table as stored in the `tables`
// table. Tables are referenced by reservations through their natural key
// TableNumber rather than the numeric ID.
//
// Fields:
//  ID          – primary key identifier.
//  TableNumber – unique human-assigned label (e.g. "T01").
//  Capacity    – number of seats, 1–20.
//  Location    – one of the Location* constants.
//  Status      – one of the Table* status constants.
//  Description – optional free-form note about the table.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type Table struct {
	ID          uint64    `json:"id"`          // tables.id
	TableNumber string    `json:"tableNumber"` // tables.table_number
	Capacity    uint32    `json:"capacity"`    // tables.capacity
	Location    string    `json:"location"`    // tables.location
	Status      string    `json:"status"`      // tables.status
	Description *string   `json:"description,omitempty"` // tables.description (nullable)
	CreatedAt   time.Time `json:"createdAt"`   // tables.created_at
	UpdatedAt   time.Time `json:"updatedAt"`   // tables.updated_at
}

// ValidLocation reports whether s is one of the accepted table locations.
func ValidLocation(s string) bool {
	switch s {
	case LocationIndoors, LocationOutdoors, LocationBalcony, LocationPrivate:
		return true
	}
	return false
}

// ValidTableStatus reports whether s is one of the accepted table statuses.
func ValidTableStatus(s string) bool {
	switch s {
	case TableAvailable, TableOccupied, TableReserved, TableMaintenance:
		return true
	}
	return false
}
