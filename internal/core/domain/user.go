package domain

import "time"

// UserRole distinguishes customers from administrators.
type UserRole string

const (
	RoleCustomer UserRole = "CUSTOMER"
	RoleAdmin    UserRole = "ADMIN"
)

// User represents a bank customer or administrator in the domain.
// TransactionPin holds the bcrypt hash of the 4-digit transfer PIN; an empty
// value means no PIN has been configured yet. IsTransferBlocked is an
// administrative flag that unconditionally prevents outgoing transfers.
type User struct {
	UserID            string   `json:"userID"` // Primary Key (UUID)
	Username          string   `json:"username"`
	FirstName         string   `json:"firstName"`
	LastName          string   `json:"lastName"`
	Email             string   `json:"email"`
	Role              UserRole `json:"role"`
	PasswordHash      string   `json:"-"`
	TransactionPin    string   `json:"-"` // bcrypt hash, empty when unset
	IsTransferBlocked bool     `json:"isTransferBlocked"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// FullName returns the display name used in transfer descriptions.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
