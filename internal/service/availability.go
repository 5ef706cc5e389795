package service

import (
	"context"
	"time"

	"github.com/dinehall/restaurant-reservation/internal/model"
	"github.com/dinehall/restaurant-reservation/internal/repository"
)

// AvailabilityService computes the set of tables free for a requested
// slot. Availability is derived on demand from the current reservation
// set rather than kept as a cached calendar: a linear scan per request
// buys always-consistent reads, and reservation volume per slot is
// small. The service holds no state of its own.
type AvailabilityService struct {
	Tables       *repository.TableRepo
	Reservations *repository.ReservationRepo
}

// NewAvailabilityService constructs an AvailabilityService with the
// provided repositories. Both must be non-nil.
func NewAvailabilityService(tables *repository.TableRepo, reservations *repository.ReservationRepo) *AvailabilityService {
	if tables == nil || reservations == nil {
		panic("nil repository passed to NewAvailabilityService")
	}
	return &AvailabilityService{Tables: tables, Reservations: reservations}
}

// FindAvailableTables returns the tables free for the (date, time,
// partySize) request, in table-number order. A table qualifies when its
// capacity is at least partySize, it is not under maintenance, and no
// pending, confirmed or seated reservation occupies it at exactly that
// slot. The occupied/reserved status values on the table rows do not
// exclude a table by themselves; only reservations at the requested
// slot do.
func (s *AvailabilityService) FindAvailableTables(ctx context.Context, date, timeOfDay string, partySize int) ([]model.Table, error) {
	if err := ValidateSlot(date, timeOfDay); err != nil {
		return nil, err
	}
	if partySize < 1 {
		return nil, invalid("partySize", "must be at least 1")
	}
	candidates, err := s.Tables.ListByMinCapacity(ctx, uint32(partySize))
	if err != nil {
		return nil, err
	}
	taken, err := s.Reservations.ActiveNumbersForSlot(ctx, date, timeOfDay)
	if err != nil {
		return nil, err
	}
	return FilterAvailable(candidates, taken), nil
}

// FilterAvailable returns the tables whose number does not appear in
// taken, preserving the input order.
func FilterAvailable(tables []model.Table, taken []string) []model.Table {
	occupied := make(map[string]struct{}, len(taken))
	for _, n := range taken {
		occupied[n] = struct{}{}
	}
	out := make([]model.Table, 0, len(tables))
	for _, t := range tables {
		if _, ok := occupied[t.TableNumber]; !ok {
			out = append(out, t)
		}
	}
	return out
}

// ValidateSlot checks that date is a YYYY-MM-DD calendar date and
// timeOfDay a HH:MM time of day. Both are required.
func ValidateSlot(date, timeOfDay string) error {
	if date == "" {
		return invalid("date", "required")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return invalid("date", "must be YYYY-MM-DD")
	}
	if timeOfDay == "" {
		return invalid("time", "required")
	}
	if _, err := time.Parse("15:04", timeOfDay); err != nil {
		return invalid("time", "must be HH:MM")
	}
	return nil
}
