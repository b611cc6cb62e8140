package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors domain.TransactionType for DB storage.
type TransactionType string

// TransactionStatus mirrors domain.TransactionStatus for DB storage.
type TransactionStatus string

// Transaction is the database representation of a ledger record.
// Rows are append-only; no transaction is ever edited or deleted.
type Transaction struct {
	TransactionID    string            `db:"transaction_id"`
	AccountID        string            `db:"account_id"`
	UserID           string            `db:"user_id"`
	Amount           decimal.Decimal   `db:"amount"`
	Type             TransactionType   `db:"type"`
	Status           TransactionStatus `db:"status"`
	Reference        string            `db:"reference"`
	Description      string            `db:"description"`
	Category         string            `db:"category"`
	RecipientBank    string            `db:"recipient_bank"`    // Nullable
	RecipientAccount string            `db:"recipient_account"` // Nullable
	SwiftCode        string            `db:"swift_code"`        // Nullable
	PinVerified      bool              `db:"pin_verified"`
	IsFraudSuspected bool              `db:"is_fraud_suspected"`
	Date             time.Time         `db:"date"`
	AuditFields
}
