package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/signordemola/belize-app/internal/apperrors"
	"github.com/signordemola/belize-app/internal/core/domain"
	portsrepo "github.com/signordemola/belize-app/internal/core/ports/repositories"
	portssvc "github.com/signordemola/belize-app/internal/core/ports/services"
	"github.com/signordemola/belize-app/internal/dto"
	"github.com/signordemola/belize-app/internal/middleware"
	"github.com/signordemola/belize-app/internal/utils"
)

const (
	accountNumberDigits = 10
	maxStatementLimit   = 100
)

// accountService provides account lifecycle and statement operations.
type accountService struct {
	accountRepo   portsrepo.AccountRepositoryFacade
	ledgerRepo    portsrepo.LedgerRepositoryFacade
	routingNumber string
}

// NewAccountService creates a new account service. routingNumber is the
// institution-wide ABA routing number stamped on every account.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, ledgerRepo portsrepo.LedgerRepositoryFacade, routingNumber string) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo:   accountRepo,
		ledgerRepo:    ledgerRepo,
		routingNumber: routingNumber,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// OpenAccount creates a zero-balance account for the user. Account number
// collisions are retried a few times before giving up.
func (s *accountService) OpenAccount(ctx context.Context, userID string, accountType domain.AccountType) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	for attempt := 0; attempt < 3; attempt++ {
		number, err := utils.GenerateNumericString(accountNumberDigits)
		if err != nil {
			return nil, fmt.Errorf("failed to generate account number: %w", err)
		}

		account := domain.Account{
			AccountID:     uuid.NewString(),
			UserID:        userID,
			AccountNumber: number,
			RoutingNumber: s.routingNumber,
			AccountType:   accountType,
			Status:        domain.AccountActive,
			Balance:       decimal.Zero,
			OpenedAt:      now,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}

		if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				logger.Warn("Account number collision, retrying", slog.Int("attempt", attempt+1))
				continue
			}
			logger.Error("Failed to save account", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to save account: %w", err)
		}

		logger.Info("Account opened",
			slog.String("account_id", account.AccountID),
			slog.String("account_type", string(accountType)),
		)
		return &account, nil
	}

	return nil, fmt.Errorf("%w: could not allocate a unique account number", apperrors.ErrInternal)
}

func (s *accountService) GetAccountForUser(ctx context.Context, userID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account for user %s", apperrors.ErrNotFound, userID)
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	return account, nil
}

// GetAccountByID returns the account only when it belongs to the requester.
// A foreign account reports not-found rather than forbidden so callers cannot
// probe for account IDs.
func (s *accountService) GetAccountByID(ctx context.Context, requesterUserID string, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	if account.UserID != requesterUserID {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return account, nil
}

// ListTransactions returns one page of the account statement, newest first.
func (s *accountService) ListTransactions(ctx context.Context, requesterUserID string, accountID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	if _, err := s.GetAccountByID(ctx, requesterUserID, accountID); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > maxStatementLimit {
		limit = maxStatementLimit
	}

	transactions, nextToken, err := s.ledgerRepo.ListTransactionsByAccountID(ctx, accountID, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(transactions),
		NextToken:    nextToken,
	}, nil
}
