package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger entry. Direction (credit or debit) is
// implied by the type, never by a signed amount.
type TransactionType string

const (
	Deposit               TransactionType = "DEPOSIT"
	Withdrawal            TransactionType = "WITHDRAWAL"
	TransferBelize        TransactionType = "TRANSFER_BELIZE"
	TransferUSBank        TransactionType = "TRANSFER_US_BANK"
	TransferInternational TransactionType = "TRANSFER_INTERNATIONAL"
	BillPayment           TransactionType = "BILL_PAYMENT"
	MobileDeposit         TransactionType = "MOBILE_DEPOSIT"
)

// IsCredit reports whether the type increases the balance of the account it
// is recorded against.
func (t TransactionType) IsCredit() bool {
	return t == Deposit || t == MobileDeposit
}

// TransactionStatus indicates the settlement state of a transaction.
type TransactionStatus string

const (
	StatusPending    TransactionStatus = "PENDING"
	StatusProcessing TransactionStatus = "PROCESSING"
	StatusCompleted  TransactionStatus = "COMPLETED"
)

// Transaction is a single immutable ledger record describing one balance
// mutation of one account. The two legs of an internal transfer share one
// Reference so they can be correlated.
type Transaction struct {
	TransactionID    string            `json:"transactionID"` // Primary Key (UUID)
	AccountID        string            `json:"accountID"`     // FK -> accounts.account_id
	UserID           string            `json:"userID"`        // Denormalized owner for query convenience
	Amount           decimal.Decimal   `json:"amount"`        // Always positive
	Type             TransactionType   `json:"type"`
	Status           TransactionStatus `json:"status"`
	Reference        string            `json:"reference"`
	Description      string            `json:"description"`
	Category         string            `json:"category"`
	RecipientBank    string            `json:"recipientBank,omitempty"`
	RecipientAccount string            `json:"recipientAccount,omitempty"`
	SwiftCode        string            `json:"swiftCode,omitempty"`
	PinVerified      bool              `json:"pinVerified"`
	IsFraudSuspected bool              `json:"isFraudSuspected"`
	Date             time.Time         `json:"date"`
	AuditFields
}
