package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType defines the product type of a customer account.
type AccountType string

const (
	Checking     AccountType = "CHECKING"
	Savings      AccountType = "SAVINGS"
	FixedDeposit AccountType = "FIXED_DEPOSIT"
	Prestige     AccountType = "PRESTIGE"
	Business     AccountType = "BUSINESS"
	Investment   AccountType = "INVESTMENT"
)

// AccountStatus indicates the lifecycle state of an account.
type AccountStatus string

const (
	AccountActive AccountStatus = "ACTIVE"
	AccountFrozen AccountStatus = "FROZEN"
	AccountClosed AccountStatus = "CLOSED"
)

// Account represents a customer account within the core domain.
// Each user owns at most one account. The balance is never negative and is
// mutated only through the ledger; every mutation is paired with exactly one
// Transaction row. Accounts are never deleted; ClosedAt marks end of life.
type Account struct {
	AccountID     string          `json:"accountID"`     // Primary Key (UUID)
	UserID        string          `json:"userID"`        // FK -> users.user_id (owning user)
	AccountNumber string          `json:"accountNumber"` // External-facing numeric string, unique
	RoutingNumber string          `json:"routingNumber"`
	AccountType   AccountType     `json:"accountType"`
	Status        AccountStatus   `json:"status"`
	Balance       decimal.Decimal `json:"balance"` // Two fractional digits, >= 0
	OpenedAt      time.Time       `json:"openedAt"`
	ClosedAt      *time.Time      `json:"closedAt,omitempty"`
	AuditFields
}

// IsActive reports whether the account can participate in money movement.
func (a Account) IsActive() bool {
	return a.Status == AccountActive
}
