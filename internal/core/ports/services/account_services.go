package services

import (
	"context"

	"github.com/signordemola/belize-app/internal/core/domain"
	"github.com/signordemola/belize-app/internal/dto"
)

// AccountSvcFacade defines account lifecycle and statement operations.
type AccountSvcFacade interface {
	// OpenAccount creates an account with zero balance for the given user.
	OpenAccount(ctx context.Context, userID string, accountType domain.AccountType) (*domain.Account, error)
	GetAccountForUser(ctx context.Context, userID string) (*domain.Account, error)
	// GetAccountByID returns the account only when it belongs to the
	// requester; otherwise it reports not-found to obscure existence.
	GetAccountByID(ctx context.Context, requesterUserID string, accountID string) (*domain.Account, error)
	ListTransactions(ctx context.Context, requesterUserID string, accountID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}
