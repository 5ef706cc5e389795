package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dinehall/restaurant-reservation/internal/model"
)

// ReservationRepo provides data access to the `reservations` table.
// Reservations reference tables by their natural key (table_number) and
// identify a seating period by the (reservation_date, reservation_time)
// pair, stored exactly as the client supplies them (YYYY-MM-DD / HH:MM).
// Methods with a Tx suffix run inside a caller-supplied transaction;
// the caller must commit or roll back.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given
// database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// DB exposes the underlying handle so callers can open transactions.
func (r *ReservationRepo) DB() *sql.DB { return r.db }

const reservationColumns = `id, customer_name, customer_email, customer_phone, table_number,
reservation_date, reservation_time, party_size, status, special_requests, created_at, updated_at`

func scanReservation(row interface{ Scan(...interface{}) error }) (model.Reservation, error) {
	var res model.Reservation
	var special sql.NullString
	err := row.Scan(&res.ID, &res.CustomerName, &res.CustomerEmail, &res.CustomerPhone,
		&res.TableNumber, &res.ReservationDate, &res.ReservationTime, &res.PartySize,
		&res.Status, &special, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return model.Reservation{}, err
	}
	if special.Valid {
		s := special.String
		res.SpecialRequests = &s
	}
	return res, nil
}

// CreateTx inserts a new reservation within the scope of an existing
// transaction and populates the generated ID and timestamps on the
// provided model. Status should already be set (pending on creation).
func (r *ReservationRepo) CreateTx(ctx context.Context, tx *sql.Tx, res *model.Reservation) error {
	var special sql.NullString
	if res.SpecialRequests != nil && strings.TrimSpace(*res.SpecialRequests) != "" {
		special = sql.NullString{String: strings.TrimSpace(*res.SpecialRequests), Valid: true}
	}
	result, err := tx.ExecContext(ctx,
		`INSERT INTO reservations
		 (customer_name, customer_email, customer_phone, table_number,
		  reservation_date, reservation_time, party_size, status, special_requests)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		res.CustomerName, res.CustomerEmail, res.CustomerPhone, res.TableNumber,
		res.ReservationDate, res.ReservationTime, res.PartySize, res.Status, special)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	res.ID = uint64(id)
	// Query back the full row to populate timestamps and defaults
	row := tx.QueryRowContext(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE id = ?`, res.ID)
	got, err := scanReservation(row)
	if err != nil {
		return err
	}
	*res = got
	return nil
}

// GetByID fetches a reservation by its primary key. Returns
// ErrReservationNotFound when no row matches.
func (r *ReservationRepo) GetByID(ctx context.Context, id uint64) (model.Reservation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE id = ? LIMIT 1`, id)
	res, err := scanReservation(row)
	if err == sql.ErrNoRows {
		return model.Reservation{}, ErrReservationNotFound
	}
	return res, err
}

// GetByIDForUpdateTx fetches a reservation by id inside a transaction,
// locking the row so concurrent status updates on the same reservation
// serialize.
func (r *ReservationRepo) GetByIDForUpdateTx(ctx context.Context, tx *sql.Tx, id uint64) (model.Reservation, error) {
	row := tx.QueryRowContext(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE id = ? LIMIT 1 FOR UPDATE`, id)
	res, err := scanReservation(row)
	if err == sql.ErrNoRows {
		return model.Reservation{}, ErrReservationNotFound
	}
	return res, err
}

// UpdateStatusTx sets the status of a reservation within a transaction
// and returns the updated row.
func (r *ReservationRepo) UpdateStatusTx(ctx context.Context, tx *sql.Tx, id uint64, status string) (model.Reservation, error) {
	if _, err := tx.ExecContext(ctx,
		`UPDATE reservations SET status = ? WHERE id = ?`, status, id); err != nil {
		return model.Reservation{}, err
	}
	row := tx.QueryRowContext(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE id = ?`, id)
	res, err := scanReservation(row)
	if err == sql.ErrNoRows {
		return model.Reservation{}, ErrReservationNotFound
	}
	return res, err
}

// ActiveNumbersForSlot returns the table numbers occupied at exactly the
// given (date, time) slot, i.e. those referenced by a reservation in a
// non-terminal status. The availability engine subtracts this set from
// the capacity-eligible tables.
func (r *ReservationRepo) ActiveNumbersForSlot(ctx context.Context, date, timeOfDay string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT table_number FROM reservations
		 WHERE reservation_date = ? AND reservation_time = ?
		   AND status IN (?,?,?)`,
		date, timeOfDay,
		model.ReservationPending, model.ReservationConfirmed, model.ReservationSeated)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var numbers []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		numbers = append(numbers, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return numbers, nil
}

// CountActiveForSlotTx counts non-terminal reservations for the exact
// (tableNumber, date, time) tuple within a transaction. The lifecycle
// service calls this after locking the table row; a non-zero result
// means the slot is already taken.
func (r *ReservationRepo) CountActiveForSlotTx(ctx context.Context, tx *sql.Tx, tableNumber, date, timeOfDay string) (int, error) {
	var n int
	err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reservations
		 WHERE table_number = ? AND reservation_date = ? AND reservation_time = ?
		   AND status IN (?,?,?)`,
		tableNumber, date, timeOfDay,
		model.ReservationPending, model.ReservationConfirmed, model.ReservationSeated,
	).Scan(&n)
	return n, err
}

// ActiveCountsByTableTx returns, within a transaction, how many seated
// and how many other non-terminal (pending or confirmed) reservations
// currently reference the table. The lifecycle service derives the
// table's status projection from these two counts.
func (r *ReservationRepo) ActiveCountsByTableTx(ctx context.Context, tx *sql.Tx, tableNumber string) (seated, otherActive int, err error) {
	err = tx.QueryRowContext(ctx,
		`SELECT
		   COALESCE(SUM(status = ?), 0),
		   COALESCE(SUM(status IN (?,?)), 0)
		 FROM reservations WHERE table_number = ?`,
		model.ReservationSeated,
		model.ReservationPending, model.ReservationConfirmed,
		tableNumber,
	).Scan(&seated, &otherActive)
	return seated, otherActive, err
}

// CountActiveByTable counts non-terminal reservations referencing the
// table. Used to block deleting a table that is still booked.
func (r *ReservationRepo) CountActiveByTable(ctx context.Context, tableNumber string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reservations
		 WHERE table_number = ? AND status IN (?,?,?)`,
		tableNumber,
		model.ReservationPending, model.ReservationConfirmed, model.ReservationSeated,
	).Scan(&n)
	return n, err
}

// ReservationFilter narrows List results. Zero-valued fields are
// ignored; Status set to "all" is treated as unset.
type ReservationFilter struct {
	Date          string // exact reservation_date match
	Status        string // exact status match
	CustomerEmail string // exact customer_email match
}

// List returns reservations matching the filter, newest slot first
// (date descending, then time descending).
func (r *ReservationRepo) List(ctx context.Context, f ReservationFilter) ([]model.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE 1=1`
	args := make([]interface{}, 0, 3)
	if f.Date != "" {
		query += ` AND reservation_date = ?`
		args = append(args, f.Date)
	}
	if f.Status != "" && f.Status != "all" {
		query += ` AND status = ?`
		args = append(args, f.Status)
	}
	if f.CustomerEmail != "" {
		query += ` AND customer_email = ?`
		args = append(args, strings.ToLower(strings.TrimSpace(f.CustomerEmail)))
	}
	query += ` ORDER BY reservation_date DESC, reservation_time DESC`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReservations(rows)
}

// ListRecent returns the most recently created reservations, newest
// first, up to limit rows.
func (r *ReservationRepo) ListRecent(ctx context.Context, limit int) ([]model.Reservation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+reservationColumns+` FROM reservations ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReservations(rows)
}

// ListBetweenDates returns all reservations whose date falls in the
// inclusive [from, to] range. The analytics endpoint aggregates over
// this window in memory.
func (r *ReservationRepo) ListBetweenDates(ctx context.Context, from, to string) ([]model.Reservation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+reservationColumns+` FROM reservations
		 WHERE reservation_date >= ? AND reservation_date <= ?`,
		from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReservations(rows)
}

// CountByDate returns the number of reservations on the given date.
func (r *ReservationRepo) CountByDate(ctx context.Context, date string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reservations WHERE reservation_date = ?`, date).Scan(&n)
	return n, err
}

// CountByDateAndStatuses returns the number of reservations on the given
// date whose status is in the supplied set.
func (r *ReservationRepo) CountByDateAndStatuses(ctx context.Context, date string, statuses ...string) (int, error) {
	if len(statuses) == 0 {
		return 0, nil
	}
	query := `SELECT COUNT(*) FROM reservations WHERE reservation_date = ? AND status IN (`
	args := make([]interface{}, 0, len(statuses)+1)
	args = append(args, date)
	for i, s := range statuses {
		if i > 0 {
			query += ","
		}
		query += "?"
		args = append(args, s)
	}
	query += `)`
	var n int
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&n)
	return n, err
}

func collectReservations(rows *sql.Rows) ([]model.Reservation, error) {
	out := make([]model.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteAll truncates the reservations collection. Only the demo seeder
// uses this.
func (r *ReservationRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM reservations`)
	return err
}
