package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/signordemola/belize-app/internal/core/domain"
)

// LedgerRepositoryFacade persists money movement. SaveTransfer is the single
// atomic unit of the subsystem: balance mutations and transaction rows either
// all commit or none do.
type LedgerRepositoryFacade interface {
	// SaveTransfer applies the signed balance deltas in balanceChanges and
	// appends the given transaction rows in one database transaction. The
	// balance check re-runs against the locked rows, so a concurrent transfer
	// that would drive a balance negative fails with
	// apperrors.ErrInsufficientFunds and leaves no partial state.
	SaveTransfer(ctx context.Context, transactions []domain.Transaction, balanceChanges map[string]decimal.Decimal) error

	FindTransactionsByReference(ctx context.Context, reference string) ([]domain.Transaction, error)
	ListTransactionsByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}
