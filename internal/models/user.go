package models

import "time"

// UserRole mirrors domain.UserRole for DB storage.
type UserRole string

// User is the database representation of a customer or administrator.
type User struct {
	UserID            string   `db:"user_id"`
	Username          string   `db:"username"`
	FirstName         string   `db:"first_name"`
	LastName          string   `db:"last_name"`
	Email             string   `db:"email"`
	Role              UserRole `db:"role"`
	PasswordHash      string   `db:"password_hash"`
	TransactionPin    string   `db:"transaction_pin"` // bcrypt hash, nullable
	IsTransferBlocked bool     `db:"is_transfer_blocked"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"` // Nullable, soft delete
}
