// Package queue defines the reservation events exchanged over the
// message broker and the background consumer that records them.
package queue

// Event kinds carried in ReservationEvent.Kind.
const (
	KindCreated       = "created"
	KindStatusChanged = "status_changed"
)

// ReservationEvent is published whenever a reservation is created or
// changes status. It carries enough information for downstream
// consumers to log or notify without querying the primary database.
type ReservationEvent struct {
	Kind            string `json:"kind"`
	ReservationID   uint64 `json:"reservation_id"`
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	TableNumber     string `json:"table_number"`
	ReservationDate string `json:"reservation_date"`
	ReservationTime string `json:"reservation_time"`
	PartySize       uint32 `json:"party_size"`
	Status          string `json:"status"`
	OldStatus       string `json:"old_status,omitempty"`
	OccurredAt      string `json:"occurred_at"`
}
