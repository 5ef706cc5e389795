package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dinehall/restaurant-reservation/internal/model"
)

// TableRepo provides data access to the `tables` table. Tables carry a
// natural key (table_number) in addition to their numeric primary key;
// reservations reference tables through the natural key, so several
// methods here look rows up by number rather than id.
type TableRepo struct {
	db *sql.DB
}

// NewTableRepo returns a new TableRepo bound to the given database.
func NewTableRepo(db *sql.DB) *TableRepo { return &TableRepo{db: db} }

// DB exposes the underlying handle so callers can open transactions that
// span tables and reservations.
func (r *TableRepo) DB() *sql.DB { return r.db }

const tableColumns = `id, table_number, capacity, location, status, description, created_at, updated_at`

func scanTable(row interface{ Scan(...interface{}) error }) (model.Table, error) {
	var t model.Table
	var desc sql.NullString
	err := row.Scan(&t.ID, &t.TableNumber, &t.Capacity, &t.Location, &t.Status,
		&desc, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return model.Table{}, err
	}
	if desc.Valid {
		d := desc.String
		t.Description = &d
	}
	return t, nil
}

// Create inserts a new table and populates the generated ID and
// timestamps on the provided model. Table numbers are unique; a
// duplicate insert returns ErrTableNumberExists.
func (r *TableRepo) Create(ctx context.Context, t *model.Table) error {
	var desc sql.NullString
	if t.Description != nil && strings.TrimSpace(*t.Description) != "" {
		desc = sql.NullString{String: strings.TrimSpace(*t.Description), Valid: true}
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO tables (table_number, capacity, location, status, description) VALUES (?,?,?,?,?)`,
		t.TableNumber, t.Capacity, t.Location, t.Status, desc)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrTableNumberExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	// Query back the full row to populate timestamps and defaults
	got, err := r.GetByID(ctx, t.ID)
	if err != nil {
		return err
	}
	*t = got
	return nil
}

// GetByID fetches a table by its primary key. Returns ErrTableNotFound
// when no row matches.
func (r *TableRepo) GetByID(ctx context.Context, id uint64) (model.Table, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+tableColumns+` FROM tables WHERE id = ? LIMIT 1`, id)
	t, err := scanTable(row)
	if err == sql.ErrNoRows {
		return model.Table{}, ErrTableNotFound
	}
	return t, err
}

// GetByNumber fetches a table by its natural key. Returns
// ErrTableNotFound when no row matches.
func (r *TableRepo) GetByNumber(ctx context.Context, tableNumber string) (model.Table, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+tableColumns+` FROM tables WHERE table_number = ? LIMIT 1`, tableNumber)
	t, err := scanTable(row)
	if err == sql.ErrNoRows {
		return model.Table{}, ErrTableNotFound
	}
	return t, err
}

// GetByNumberForUpdateTx fetches a table by number inside a transaction
// and locks the row with SELECT ... FOR UPDATE. The lock serializes
// concurrent reservation creates on the same table, which is what closes
// the check-then-create race on a slot. The caller must commit or roll
// back the transaction.
func (r *TableRepo) GetByNumberForUpdateTx(ctx context.Context, tx *sql.Tx, tableNumber string) (model.Table, error) {
	row := tx.QueryRowContext(ctx,
		`SELECT `+tableColumns+` FROM tables WHERE table_number = ? LIMIT 1 FOR UPDATE`, tableNumber)
	t, err := scanTable(row)
	if err == sql.ErrNoRows {
		return model.Table{}, ErrTableNotFound
	}
	return t, err
}

// List returns all tables ordered by table number.
func (r *TableRepo) List(ctx context.Context) ([]model.Table, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+tableColumns+` FROM tables ORDER BY table_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTables(rows)
}

// ListByMinCapacity returns tables whose capacity is at least partySize
// and whose status is not maintenance, in table-number order. This is
// the candidate set for an availability query; tables marked occupied or
// reserved are intentionally not filtered here because only active
// reservations at the requested slot decide availability.
func (r *TableRepo) ListByMinCapacity(ctx context.Context, partySize uint32) ([]model.Table, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+tableColumns+` FROM tables WHERE capacity >= ? AND status <> ? ORDER BY table_number`,
		partySize, model.TableMaintenance)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTables(rows)
}

func collectTables(rows *sql.Rows) ([]model.Table, error) {
	out := make([]model.Table, 0)
	for rows.Next() {
		t, err := scanTable(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites the mutable columns of a table identified by id and
// returns the updated row. Returns ErrTableNotFound when no row matches
// and ErrTableNumberExists when the new number collides.
func (r *TableRepo) Update(ctx context.Context, id uint64, t *model.Table) (model.Table, error) {
	var desc sql.NullString
	if t.Description != nil && strings.TrimSpace(*t.Description) != "" {
		desc = sql.NullString{String: strings.TrimSpace(*t.Description), Valid: true}
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE tables SET table_number = ?, capacity = ?, location = ?, status = ?, description = ? WHERE id = ?`,
		t.TableNumber, t.Capacity, t.Location, t.Status, desc, id)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return model.Table{}, ErrTableNumberExists
		}
		return model.Table{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// RowsAffected is 0 both for a missing row and a no-op update,
		// so confirm existence explicitly.
		if _, err := r.GetByID(ctx, id); err != nil {
			return model.Table{}, err
		}
	}
	return r.GetByID(ctx, id)
}

// UpdateStatus sets only the status column of a table identified by id.
// Used for explicit admin overrides such as marking a table maintenance.
func (r *TableRepo) UpdateStatus(ctx context.Context, id uint64, status string) (model.Table, error) {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE tables SET status = ? WHERE id = ?`, status, id); err != nil {
		return model.Table{}, err
	}
	return r.GetByID(ctx, id)
}

// UpdateStatusByNumberTx sets the status of a table identified by its
// natural key inside a transaction. The lifecycle service uses this to
// write the derived status projection in the same transaction as the
// reservation change it reflects.
func (r *TableRepo) UpdateStatusByNumberTx(ctx context.Context, tx *sql.Tx, tableNumber, status string) error {
	res, err := tx.ExecContext(ctx,
		`UPDATE tables SET status = ? WHERE table_number = ?`, status, tableNumber)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// A missing table here means the reservation references a number
		// that no longer exists; surface it rather than silently dropping
		// the side effect.
		var exists bool
		if scanErr := tx.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM tables WHERE table_number = ?)`, tableNumber,
		).Scan(&exists); scanErr != nil {
			return scanErr
		}
		if !exists {
			return ErrTableNotFound
		}
	}
	return nil
}

// Delete removes a table by id. Returns ErrTableNotFound when no row
// matches. Callers must first verify the table has no active
// reservations; see ReservationRepo.CountActiveByTable.
func (r *TableRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tables WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrTableNotFound
	}
	return nil
}

// CountAll returns the total number of tables.
func (r *TableRepo) CountAll(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tables`).Scan(&n)
	return n, err
}

// CountByStatus returns the number of tables currently in the given
// status.
func (r *TableRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tables WHERE status = ?`, status).Scan(&n)
	return n, err
}

// DeleteAll truncates the tables collection. Only the demo seeder uses
// this.
func (r *TableRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tables`)
	return err
}
