package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/signordemola/belize-app/internal/core/domain"
)

// LedgerEntry is a validated money-movement intent handed to the ledger
// writer. One routine backs three shapes:
//   - credit-only: DestinationAccountID empty and Type is a credit type
//     (admin top-up);
//   - debit+credit pair: DestinationAccountID set, both legs COMPLETED and
//     sharing Reference (internal transfer);
//   - debit-only: DestinationAccountID empty and Type is a debit type, Status
//     typically PENDING (outbound external transfer) or COMPLETED (bill pay,
//     admin deduction).
type LedgerEntry struct {
	SourceAccountID      string
	SourceUserID         string
	DestinationAccountID string // Empty for single-leg entries
	DestinationUserID    string

	Amount    decimal.Decimal
	Reference string

	Type   domain.TransactionType   // Classification of the source leg
	Status domain.TransactionStatus // Settlement status of the source leg

	Description string // Source leg description
	Category    string

	CreditDescription string // Destination leg, internal transfers only
	CreditCategory    string

	RecipientBank    string
	RecipientAccount string
	SwiftCode        string
	PinVerified      bool

	// Notifications are written best-effort after the commit; their failure
	// never undoes the money movement.
	Notifications []domain.Notification

	InitiatedBy string // UserID recorded in audit fields
}

// LedgerSvcFacade is the atomic balance+transaction commit routine. Callers
// are responsible for preconditions; the writer only guards against
// infrastructure failure and the in-transaction balance re-check.
type LedgerSvcFacade interface {
	PostEntry(ctx context.Context, entry LedgerEntry) ([]domain.Transaction, error)
}
