package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dinehall/restaurant-reservation/internal/model"
	"github.com/dinehall/restaurant-reservation/internal/utils"
)

// UserRepo provides data access to the `users` table. It covers both
// self-service registration (customers) and the admin-managed staff
// records with their salary/rank fields.
type UserRepo struct{ DB *sql.DB }

// NewUserRepo returns a new UserRepo bound to the given database.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userColumns = `id, username, email, password_hash, role, salary, rank_name,
join_date, is_active, phone, address, created_at, updated_at`

func scanUser(row interface{ Scan(...interface{}) error }) (model.User, error) {
	var u model.User
	var phone, address sql.NullString
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role,
		&u.Salary, &u.Rank, &u.JoinDate, &u.IsActive, &phone, &address,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return model.User{}, err
	}
	if phone.Valid {
		p := phone.String
		u.Phone = &p
	}
	if address.Valid {
		a := address.String
		u.Address = &a
	}
	return u, nil
}

// Create inserts a customer or staff account, hashing the password with
// bcrypt at the given cost, and returns the new user's ID. Username and
// email are unique; a duplicate insert returns ErrUserExists.
func (r *UserRepo) Create(ctx context.Context, u *model.User, password string, cost int) (uint64, error) {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Username = strings.TrimSpace(u.Username)
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	var phone, address sql.NullString
	if u.Phone != nil && *u.Phone != "" {
		phone = sql.NullString{String: *u.Phone, Valid: true}
	}
	if u.Address != nil && *u.Address != "" {
		address = sql.NullString{String: *u.Address, Valid: true}
	}
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO users (username, email, password_hash, role, salary, rank_name, is_active, phone, address)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		u.Username, u.Email, hash, u.Role, u.Salary, u.Rank, u.IsActive, phone, address)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrUserExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ? LIMIT 1`, email)
	return scanUser(row)
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ? LIMIT 1`, id)
	return scanUser(row)
}

// ListStaff returns all staff and admin accounts ordered by username.
func (r *UserRepo) ListStaff(ctx context.Context) ([]model.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE role IN (?,?) ORDER BY username`,
		model.RoleStaff, model.RoleAdmin)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// StaffUpdate carries the mutable staff fields for UpdateStaff. Nil
// pointers leave the current value untouched.
type StaffUpdate struct {
	Salary   *uint32
	Rank     *string
	IsActive *bool
	Phone    *string
	Address  *string
}

// UpdateStaff applies a partial update to a staff member and returns the
// updated row. Returns ErrUserNotFound when the id does not resolve.
func (r *UserRepo) UpdateStaff(ctx context.Context, id uint64, upd StaffUpdate) (model.User, error) {
	cur, err := r.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, err
	}
	if upd.Salary != nil {
		cur.Salary = *upd.Salary
	}
	if upd.Rank != nil {
		cur.Rank = *upd.Rank
	}
	if upd.IsActive != nil {
		cur.IsActive = *upd.IsActive
	}
	if upd.Phone != nil {
		cur.Phone = upd.Phone
	}
	if upd.Address != nil {
		cur.Address = upd.Address
	}
	var phone, address sql.NullString
	if cur.Phone != nil && *cur.Phone != "" {
		phone = sql.NullString{String: *cur.Phone, Valid: true}
	}
	if cur.Address != nil && *cur.Address != "" {
		address = sql.NullString{String: *cur.Address, Valid: true}
	}
	_, err = r.DB.ExecContext(ctx,
		`UPDATE users SET salary = ?, rank_name = ?, is_active = ?, phone = ?, address = ? WHERE id = ?`,
		cur.Salary, cur.Rank, cur.IsActive, phone, address, id)
	if err != nil {
		return model.User{}, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a user by id. Returns ErrUserNotFound when no row
// matches.
func (r *UserRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}

// DeleteAll truncates the users collection. Only the demo seeder uses
// this.
func (r *UserRepo) DeleteAll(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM users`)
	return err
}
