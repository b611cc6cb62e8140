package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType mirrors domain.AccountType for DB storage.
type AccountType string

// AccountStatus mirrors domain.AccountStatus for DB storage.
type AccountStatus string

// Account is the database representation of a customer account.
type Account struct {
	AccountID     string          `db:"account_id"`
	UserID        string          `db:"user_id"`
	AccountNumber string          `db:"account_number"`
	RoutingNumber string          `db:"routing_number"`
	AccountType   AccountType     `db:"account_type"`
	Status        AccountStatus   `db:"status"`
	Balance       decimal.Decimal `db:"balance"`
	OpenedAt      time.Time       `db:"opened_at"`
	ClosedAt      *time.Time      `db:"closed_at"` // Nullable
	AuditFields
}
