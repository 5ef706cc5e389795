package model

import "time"

// User roles. Customers book tables, staff run the floor, admins manage
// tables, staff accounts and analytics.
const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleAdmin    = "admin"
)

// Staff ranks used by the staff-management endpoints.
const (
	RankJunior    = "junior"
	RankSenior    = "senior"
	RankManager   = "manager"
	RankExecutive = "executive"
)

// User represents an application user record as stored in the `users`
// table. The staff-specific fields (Salary, Rank, JoinDate, Phone,
// Address) carry their zero values for customer accounts. The password
// hash never leaves the repository layer; handlers define separate
// response types.
//
// Fields:
//  ID           – primary key identifier.
//  Username     – unique display name.
//  Email        – unique, lowercased email address.
//  PasswordHash – bcrypt hashed password.
//  Role         – one of the Role* constants.
//  Salary       – annual salary for staff accounts.
//  Rank         – one of the Rank* constants for staff accounts.
//  JoinDate     – when a staff member joined.
//  IsActive     – whether the account is active.
//  Phone        – optional contact phone.
//  Address      – optional postal address.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    // users.id
	Username     string    // users.username
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	Role         string    // users.role
	Salary       uint32    // users.salary
	Rank         string    // users.rank
	JoinDate     time.Time // users.join_date
	IsActive     bool      // users.is_active
	Phone        *string   // users.phone (nullable)
	Address      *string   // users.address (nullable)
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}

// ValidRole reports whether s is a known user role.
func ValidRole(s string) bool {
	return s == RoleCustomer || s == RoleStaff || s == RoleAdmin
}

// ValidRank reports whether s is a known staff rank.
func ValidRank(s string) bool {
	switch s {
	case RankJunior, RankSenior, RankManager, RankExecutive:
		return true
	}
	return false
}

// RefreshToken models an entry in the `refresh_tokens` table. Only the
// SHA-256 hash of the raw token is stored.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owner of the token.
//  TokenHash – SHA-256 hex digest of the token value.
//  ExpiresAt – expiration timestamp of the token.
//  RevokedAt – when the token was revoked (null if still active).
//  CreatedAt – timestamp of creation.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	UserID    uint64     // refresh_tokens.user_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt time.Time  // refresh_tokens.created_at
}
