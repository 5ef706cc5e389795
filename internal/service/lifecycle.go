package service

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dinehall/restaurant-reservation/internal/model"
	"github.com/dinehall/restaurant-reservation/internal/repository"
)

// transitions maps each reservation status to the statuses reachable
// from it. Completed and cancelled are terminal and absent from the map.
var transitions = map[string][]string{
	model.ReservationPending:   {model.ReservationConfirmed, model.ReservationCancelled},
	model.ReservationConfirmed: {model.ReservationSeated, model.ReservationCancelled},
	model.ReservationSeated:    {model.ReservationCompleted, model.ReservationCancelled},
}

// CanTransition reports whether moving a reservation from one status to
// another is permitted by the state machine.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionOutcome classifies a requested status update before any
// row is written.
type TransitionOutcome int

const (
	// TransitionApply means the move is legal: the reservation row is
	// updated and the table projection rewritten afterwards.
	TransitionApply TransitionOutcome = iota
	// TransitionNoop means the reservation already holds the requested
	// terminal status; nothing is written.
	TransitionNoop
	// TransitionInvalid means the move is not adjacent in the state
	// machine and must be rejected.
	TransitionInvalid
)

// PlanTransition decides what moving a reservation from current to
// next must do. Re-issuing a terminal status the reservation already
// holds is an idempotent no-op (a double cancel neither errors nor
// touches the table again); any other non-adjacent move is invalid.
func PlanTransition(current, next string) TransitionOutcome {
	if current == next && model.TerminalStatus(next) {
		return TransitionNoop
	}
	if !CanTransition(current, next) {
		return TransitionInvalid
	}
	return TransitionApply
}

// ProjectedTableStatus derives a table's status from the reservations
// that currently reference it: any seated reservation makes the table
// occupied, otherwise any pending or confirmed one makes it reserved,
// otherwise it is available. The projection is written alongside every
// reservation change so listings stay consistent without a join.
func ProjectedTableStatus(seated, otherActive int) string {
	switch {
	case seated > 0:
		return model.TableOccupied
	case otherActive > 0:
		return model.TableReserved
	default:
		return model.TableAvailable
	}
}

// NextTableStatus returns the status a table should carry given its
// current status and active reservation counts, and whether a write is
// needed. A maintenance override is kept untouched, and an unchanged
// projection needs no write.
func NextTableStatus(current string, seated, otherActive int) (string, bool) {
	if current == model.TableMaintenance {
		return current, false
	}
	status := ProjectedTableStatus(seated, otherActive)
	return status, status != current
}

// EventPublisher receives lifecycle notifications. Publishing is
// best-effort: implementations log failures and the lifecycle never
// blocks or fails a request on the broker.
type EventPublisher interface {
	ReservationCreated(ctx context.Context, res model.Reservation)
	ReservationStatusChanged(ctx context.Context, res model.Reservation, oldStatus string)
}

// LifecycleService owns reservation status transitions and the
// corresponding table-status side effects. Every mutation runs in a
// single transaction covering both the reservation write and the table
// projection write, so no intermediate state where a reservation exists
// but its table still reads available is ever visible.
type LifecycleService struct {
	Tables       *repository.TableRepo
	Reservations *repository.ReservationRepo
	Events       EventPublisher // may be nil when no broker is configured
}

// NewLifecycleService constructs a LifecycleService. The repositories
// must be non-nil; events may be nil.
func NewLifecycleService(tables *repository.TableRepo, reservations *repository.ReservationRepo, events EventPublisher) *LifecycleService {
	if tables == nil || reservations == nil {
		panic("nil repository passed to NewLifecycleService")
	}
	return &LifecycleService{Tables: tables, Reservations: reservations, Events: events}
}

// ValidateDraft checks the required reservation fields before any
// database work. It mutates the draft only to trim and normalize text
// fields.
func ValidateDraft(draft *model.Reservation) error {
	draft.CustomerName = strings.TrimSpace(draft.CustomerName)
	draft.CustomerEmail = strings.ToLower(strings.TrimSpace(draft.CustomerEmail))
	draft.CustomerPhone = strings.TrimSpace(draft.CustomerPhone)
	draft.TableNumber = strings.TrimSpace(draft.TableNumber)
	if draft.CustomerName == "" {
		return invalid("customerName", "required")
	}
	if draft.CustomerEmail == "" {
		return invalid("customerEmail", "required")
	}
	if draft.CustomerPhone == "" {
		return invalid("customerPhone", "required")
	}
	if draft.TableNumber == "" {
		return invalid("tableNumber", "required")
	}
	if err := ValidateSlot(draft.ReservationDate, draft.ReservationTime); err != nil {
		return err
	}
	if draft.PartySize < 1 {
		return invalid("partySize", "must be at least 1")
	}
	return nil
}

// Create validates the draft, takes the requested slot and persists the
// reservation with status pending. The referenced table row is locked
// for the duration of the transaction, which serializes concurrent
// creates on the same table: after the lock is acquired the active
// count for the slot is re-checked, so of two racing creators exactly
// one succeeds and the other receives repository.ErrSlotTaken. The
// table-status projection is rewritten in the same transaction.
func (s *LifecycleService) Create(ctx context.Context, draft model.Reservation) (model.Reservation, error) {
	if err := ValidateDraft(&draft); err != nil {
		return model.Reservation{}, err
	}
	draft.Status = model.ReservationPending

	tx, err := s.Reservations.DB().BeginTx(ctx, nil)
	if err != nil {
		return model.Reservation{}, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	table, err := s.Tables.GetByNumberForUpdateTx(ctx, tx, draft.TableNumber)
	if err != nil {
		return model.Reservation{}, err
	}
	if table.Status == model.TableMaintenance {
		return model.Reservation{}, invalid("tableNumber", "table is under maintenance")
	}
	if table.Capacity < draft.PartySize {
		return model.Reservation{}, invalid("partySize", "exceeds table capacity")
	}
	active, err := s.Reservations.CountActiveForSlotTx(ctx, tx, draft.TableNumber, draft.ReservationDate, draft.ReservationTime)
	if err != nil {
		return model.Reservation{}, err
	}
	if active > 0 {
		return model.Reservation{}, repository.ErrSlotTaken
	}
	if err := s.Reservations.CreateTx(ctx, tx, &draft); err != nil {
		return model.Reservation{}, err
	}
	if err := s.reprojectTableTx(ctx, tx, table); err != nil {
		return model.Reservation{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Reservation{}, err
	}
	committed = true

	if s.Events != nil {
		s.Events.ReservationCreated(ctx, draft)
	}
	return draft, nil
}

// UpdateStatus moves a reservation to newStatus, enforcing the state
// machine, and rewrites the table projection in the same transaction.
// Re-issuing a terminal status the reservation already holds is a no-op
// success, so a double cancel neither errors nor touches the table
// again. Any other non-adjacent move returns ErrInvalidTransition.
func (s *LifecycleService) UpdateStatus(ctx context.Context, id uint64, newStatus string) (model.Reservation, error) {
	if !model.ValidReservationStatus(newStatus) {
		return model.Reservation{}, invalid("status", "unknown status")
	}

	tx, err := s.Reservations.DB().BeginTx(ctx, nil)
	if err != nil {
		return model.Reservation{}, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	cur, err := s.Reservations.GetByIDForUpdateTx(ctx, tx, id)
	if err != nil {
		return model.Reservation{}, err
	}
	switch PlanTransition(cur.Status, newStatus) {
	case TransitionNoop:
		if err := tx.Commit(); err != nil {
			return model.Reservation{}, err
		}
		committed = true
		return cur, nil
	case TransitionInvalid:
		return model.Reservation{}, ErrInvalidTransition
	}
	updated, err := s.Reservations.UpdateStatusTx(ctx, tx, id, newStatus)
	if err != nil {
		return model.Reservation{}, err
	}
	table, err := s.Tables.GetByNumberForUpdateTx(ctx, tx, updated.TableNumber)
	if err != nil {
		// The table may have been removed out of band; the reservation
		// update itself still stands.
		if err != repository.ErrTableNotFound {
			return model.Reservation{}, err
		}
	} else if err := s.reprojectTableTx(ctx, tx, table); err != nil {
		return model.Reservation{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Reservation{}, err
	}
	committed = true

	if s.Events != nil {
		s.Events.ReservationStatusChanged(ctx, updated, cur.Status)
	}
	return updated, nil
}

// Cancel moves a reservation to cancelled. It is shorthand for
// UpdateStatus(id, cancelled) and shares its idempotence on an already
// cancelled reservation.
func (s *LifecycleService) Cancel(ctx context.Context, id uint64) (model.Reservation, error) {
	return s.UpdateStatus(ctx, id, model.ReservationCancelled)
}

// reprojectTableTx recomputes the table's derived status from its
// remaining reservations and writes it, unless the table is under an
// explicit maintenance override, which the lifecycle never clobbers.
// The passed table must have been read under FOR UPDATE in this
// transaction so the projection cannot race a concurrent mutation.
func (s *LifecycleService) reprojectTableTx(ctx context.Context, tx *sql.Tx, table model.Table) error {
	if table.Status == model.TableMaintenance {
		return nil
	}
	seated, otherActive, err := s.Reservations.ActiveCountsByTableTx(ctx, tx, table.TableNumber)
	if err != nil {
		return err
	}
	status, write := NextTableStatus(table.Status, seated, otherActive)
	if !write {
		return nil
	}
	return s.Tables.UpdateStatusByNumberTx(ctx, tx, table.TableNumber, status)
}
