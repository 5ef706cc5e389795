package service

import (
	"testing"

	"github.com/dinehall/restaurant-reservation/internal/model"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{model.ReservationPending, model.ReservationConfirmed, true},
		{model.ReservationPending, model.ReservationCancelled, true},
		{model.ReservationPending, model.ReservationSeated, false},
		{model.ReservationPending, model.ReservationCompleted, false},
		{model.ReservationConfirmed, model.ReservationSeated, true},
		{model.ReservationConfirmed, model.ReservationCancelled, true},
		{model.ReservationConfirmed, model.ReservationCompleted, false},
		{model.ReservationConfirmed, model.ReservationPending, false},
		{model.ReservationSeated, model.ReservationCompleted, true},
		{model.ReservationSeated, model.ReservationCancelled, true},
		{model.ReservationSeated, model.ReservationConfirmed, false},
		{model.ReservationCompleted, model.ReservationCancelled, false},
		{model.ReservationCompleted, model.ReservationCompleted, false},
		{model.ReservationCancelled, model.ReservationPending, false},
		{model.ReservationCancelled, model.ReservationConfirmed, false},
		{"bogus", model.ReservationConfirmed, false},
	}
	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestProjectedTableStatus(t *testing.T) {
	cases := []struct {
		seated, otherActive int
		want                string
	}{
		{0, 0, model.TableAvailable},
		{0, 1, model.TableReserved},
		{0, 3, model.TableReserved},
		{1, 0, model.TableOccupied},
		{1, 2, model.TableOccupied},
		{2, 1, model.TableOccupied},
	}
	for _, c := range cases {
		if got := ProjectedTableStatus(c.seated, c.otherActive); got != c.want {
			t.Errorf("ProjectedTableStatus(%d, %d) = %q, want %q", c.seated, c.otherActive, got, c.want)
		}
	}
}

func TestPlanTransition(t *testing.T) {
	cases := []struct {
		current, next string
		want          TransitionOutcome
	}{
		// Re-issued terminal statuses absorb idempotently.
		{model.ReservationCancelled, model.ReservationCancelled, TransitionNoop},
		{model.ReservationCompleted, model.ReservationCompleted, TransitionNoop},
		// A repeated non-terminal status is not a no-op.
		{model.ReservationPending, model.ReservationPending, TransitionInvalid},
		{model.ReservationSeated, model.ReservationSeated, TransitionInvalid},
		// Adjacent moves proceed to the write and reprojection.
		{model.ReservationPending, model.ReservationConfirmed, TransitionApply},
		{model.ReservationConfirmed, model.ReservationSeated, TransitionApply},
		{model.ReservationSeated, model.ReservationCompleted, TransitionApply},
		{model.ReservationPending, model.ReservationCancelled, TransitionApply},
		// Terminal states permit no further moves.
		{model.ReservationCompleted, model.ReservationCancelled, TransitionInvalid},
		{model.ReservationCancelled, model.ReservationConfirmed, TransitionInvalid},
		// Skipping a state is rejected.
		{model.ReservationPending, model.ReservationSeated, TransitionInvalid},
	}
	for _, c := range cases {
		if got := PlanTransition(c.current, c.next); got != c.want {
			t.Errorf("PlanTransition(%q, %q) = %v, want %v", c.current, c.next, got, c.want)
		}
	}
}

func TestNextTableStatus(t *testing.T) {
	cases := []struct {
		current             string
		seated, otherActive int
		want                string
		write               bool
	}{
		// Maintenance overrides are never clobbered by the projection.
		{model.TableMaintenance, 1, 0, model.TableMaintenance, false},
		{model.TableMaintenance, 0, 0, model.TableMaintenance, false},
		// Unchanged projections need no write.
		{model.TableAvailable, 0, 0, model.TableAvailable, false},
		{model.TableReserved, 0, 1, model.TableReserved, false},
		{model.TableOccupied, 1, 0, model.TableOccupied, false},
		// Changed projections are written alongside the reservation.
		{model.TableAvailable, 0, 2, model.TableReserved, true},
		{model.TableReserved, 1, 0, model.TableOccupied, true},
		{model.TableOccupied, 0, 1, model.TableReserved, true},
		{model.TableReserved, 0, 0, model.TableAvailable, true},
	}
	for _, c := range cases {
		got, write := NextTableStatus(c.current, c.seated, c.otherActive)
		if got != c.want || write != c.write {
			t.Errorf("NextTableStatus(%q, %d, %d) = (%q, %v), want (%q, %v)",
				c.current, c.seated, c.otherActive, got, write, c.want, c.write)
		}
	}
}

func validDraft() model.Reservation {
	return model.Reservation{
		CustomerName:    "John Doe",
		CustomerEmail:   "john@example.com",
		CustomerPhone:   "123-456-7890",
		TableNumber:     "T01",
		ReservationDate: "2024-06-01",
		ReservationTime: "18:00",
		PartySize:       2,
	}
}

func TestValidateDraft(t *testing.T) {
	draft := validDraft()
	if err := ValidateDraft(&draft); err != nil {
		t.Fatalf("valid draft rejected: %v", err)
	}

	mutations := []struct {
		name   string
		mutate func(*model.Reservation)
	}{
		{"missing name", func(r *model.Reservation) { r.CustomerName = "  " }},
		{"missing email", func(r *model.Reservation) { r.CustomerEmail = "" }},
		{"missing phone", func(r *model.Reservation) { r.CustomerPhone = "" }},
		{"missing table", func(r *model.Reservation) { r.TableNumber = "" }},
		{"missing date", func(r *model.Reservation) { r.ReservationDate = "" }},
		{"bad date", func(r *model.Reservation) { r.ReservationDate = "01/06/2024" }},
		{"missing time", func(r *model.Reservation) { r.ReservationTime = "" }},
		{"bad time", func(r *model.Reservation) { r.ReservationTime = "6pm" }},
		{"zero party", func(r *model.Reservation) { r.PartySize = 0 }},
	}
	for _, m := range mutations {
		draft := validDraft()
		m.mutate(&draft)
		err := ValidateDraft(&draft)
		if err == nil {
			t.Errorf("%s: expected validation error, got nil", m.name)
			continue
		}
		if !IsValidation(err) {
			t.Errorf("%s: expected ValidationError, got %v", m.name, err)
		}
	}
}

func TestValidateDraftNormalizes(t *testing.T) {
	draft := validDraft()
	draft.CustomerEmail = "  John@Example.COM "
	draft.CustomerName = " John Doe  "
	if err := ValidateDraft(&draft); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.CustomerEmail != "john@example.com" {
		t.Errorf("email not normalized: %q", draft.CustomerEmail)
	}
	if draft.CustomerName != "John Doe" {
		t.Errorf("name not trimmed: %q", draft.CustomerName)
	}
}
