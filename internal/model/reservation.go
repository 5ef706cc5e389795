package model

import "time"

// Reservation statuses. Pending, confirmed and seated are the
// non-terminal states that keep a table occupied for a slot; completed
// and cancelled are terminal and permit no further transitions.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationSeated    = "seated"
	ReservationCompleted = "completed"
	ReservationCancelled = "cancelled"
)

// Reservation records a customer booking of a table for a specific slot
// (date + time pair). It corresponds to a row in the `reservations`
// table. The table is referenced by its natural key TableNumber.
//
// Fields:
//  ID              – primary key identifier.
//  CustomerName    – name on the booking.
//  CustomerEmail   – contact email, also used for customer filtering.
//  CustomerPhone   – contact phone number.
//  TableNumber     – natural key of the reserved table.
//  ReservationDate – calendar date in YYYY-MM-DD form.
//  ReservationTime – time of day in HH:MM form.
//  PartySize       – number of guests, at least 1.
//  Status          – one of the Reservation* constants, starts at pending.
//  SpecialRequests – optional free-form note from the customer.
//  CreatedAt       – creation timestamp.
//  UpdatedAt       – last update timestamp.
type Reservation struct {
	ID              uint64    `json:"id"`              // reservations.id
	CustomerName    string    `json:"customerName"`    // reservations.customer_name
	CustomerEmail   string    `json:"customerEmail"`   // reservations.customer_email
	CustomerPhone   string    `json:"customerPhone"`   // reservations.customer_phone
	TableNumber     string    `json:"tableNumber"`     // reservations.table_number
	ReservationDate string    `json:"reservationDate"` // reservations.reservation_date
	ReservationTime string    `json:"reservationTime"` // reservations.reservation_time
	PartySize       uint32    `json:"partySize"`       // reservations.party_size
	Status          string    `json:"status"`          // reservations.status
	SpecialRequests *string   `json:"specialRequests,omitempty"` // reservations.special_requests (nullable)
	CreatedAt       time.Time `json:"createdAt"`       // reservations.created_at
	UpdatedAt       time.Time `json:"updatedAt"`       // reservations.updated_at
}

// ValidReservationStatus reports whether s is a known reservation status.
func ValidReservationStatus(s string) bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationSeated,
		ReservationCompleted, ReservationCancelled:
		return true
	}
	return false
}

// ActiveStatus reports whether s is a non-terminal status, i.e. one that
// still occupies the table for its slot.
func ActiveStatus(s string) bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationSeated:
		return true
	}
	return false
}

// TerminalStatus reports whether s is completed or cancelled.
func TerminalStatus(s string) bool {
	return s == ReservationCompleted || s == ReservationCancelled
}
