package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/signordemola/belize-app/internal/core/domain"
)

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     string               `json:"accountID"`
	AccountNumber string               `json:"accountNumber"`
	RoutingNumber string               `json:"routingNumber"`
	AccountType   domain.AccountType   `json:"accountType"`
	Status        domain.AccountStatus `json:"status"`
	Balance       decimal.Decimal      `json:"balance"`
	OpenedAt      time.Time            `json:"openedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		AccountNumber: acc.AccountNumber,
		RoutingNumber: acc.RoutingNumber,
		AccountType:   acc.AccountType,
		Status:        acc.Status,
		Balance:       acc.Balance,
		OpenedAt:      acc.OpenedAt,
	}
}

// ListTransactionsParams defines query parameters for the account statement.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// TransactionResponse defines the data returned for a ledger record.
type TransactionResponse struct {
	TransactionID    string                   `json:"transactionID"`
	AccountID        string                   `json:"accountID"`
	Amount           decimal.Decimal          `json:"amount"`
	Type             domain.TransactionType   `json:"type"`
	Status           domain.TransactionStatus `json:"status"`
	Reference        string                   `json:"reference"`
	Description      string                   `json:"description"`
	Category         string                   `json:"category"`
	RecipientBank    string                   `json:"recipientBank,omitempty"`
	RecipientAccount string                   `json:"recipientAccount,omitempty"`
	SwiftCode        string                   `json:"swiftCode,omitempty"`
	Date             time.Time                `json:"date"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse.
func ToTransactionResponse(txn domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:    txn.TransactionID,
		AccountID:        txn.AccountID,
		Amount:           txn.Amount,
		Type:             txn.Type,
		Status:           txn.Status,
		Reference:        txn.Reference,
		Description:      txn.Description,
		Category:         txn.Category,
		RecipientBank:    txn.RecipientBank,
		RecipientAccount: txn.RecipientAccount,
		SwiftCode:        txn.SwiftCode,
		Date:             txn.Date,
	}
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		out[i] = ToTransactionResponse(txn)
	}
	return out
}

// ListTransactionsResponse is a page of an account statement.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}
