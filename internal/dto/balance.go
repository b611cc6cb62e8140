package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Adjustment directions for the admin balance path.
const (
	DirectionCredit = "CREDIT"
	DirectionDebit  = "DEBIT"
)

// BalanceAdjustmentRequest is an admin-initiated direct credit or debit of a
// customer account, outside the normal transfer flow.
type BalanceAdjustmentRequest struct {
	UserID      string  `json:"userId" binding:"required"`
	Amount      string  `json:"amount" binding:"required,amountfmt"`
	FromAccount string  `json:"fromAccount" binding:"required"` // Free-text source label, e.g. "Admin Reserve Account"
	Direction   string  `json:"direction" binding:"required,oneof=CREDIT DEBIT"`
	Notes       *string `json:"notes"`
}

// BalanceAdjustmentResult confirms a committed adjustment.
type BalanceAdjustmentResult struct {
	Success    bool            `json:"success"`
	Reference  string          `json:"reference"`
	NewBalance decimal.Decimal `json:"newBalance"`
}

// TransactionReceipt is the payload handed to the email collaborator after a
// committed adjustment. Delivery is best-effort.
type TransactionReceipt struct {
	Type       string
	Amount     decimal.Decimal
	Reference  string
	Notes      string
	NewBalance decimal.Decimal
	Date       time.Time
}
