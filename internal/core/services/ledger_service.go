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
	"github.com/signordemola/belize-app/internal/middleware"
)

var (
	ErrMissingReference     = errors.New("ledger entry reference is required")
	ErrMissingSourceAccount = errors.New("ledger entry source account is required")
)

// defaultCommitTimeout bounds the atomic commit when no timeout is configured.
const defaultCommitTimeout = 5 * time.Second

// ledgerService is the single write path for money movement. Every credit,
// debit and transfer in the system goes through PostEntry, which commits the
// balance mutation and the transaction rows as one unit.
type ledgerService struct {
	ledgerRepo       portsrepo.LedgerRepositoryFacade
	notificationRepo portsrepo.NotificationRepositoryFacade
	commitTimeout    time.Duration
}

// NewLedgerService creates a new ledger service. commitTimeout bounds the
// atomic commit step; a non-positive value falls back to the default.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, notificationRepo portsrepo.NotificationRepositoryFacade, commitTimeout time.Duration) portssvc.LedgerSvcFacade {
	if commitTimeout <= 0 {
		commitTimeout = defaultCommitTimeout
	}
	return &ledgerService{
		ledgerRepo:       ledgerRepo,
		notificationRepo: notificationRepo,
		commitTimeout:    commitTimeout,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// PostEntry builds the transaction legs for the entry, commits them together
// with the balance deltas, and then writes any notifications best-effort.
// On error nothing is persisted; the caller may retry.
func (s *ledgerService) PostEntry(ctx context.Context, entry portssvc.LedgerEntry) ([]domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateEntry(entry); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     entry.InitiatedBy,
		LastUpdatedAt: now,
		LastUpdatedBy: entry.InitiatedBy,
	}

	status := entry.Status
	if status == "" {
		status = domain.StatusCompleted
	}

	transactions := make([]domain.Transaction, 0, 2)
	balanceChanges := make(map[string]decimal.Decimal, 2)

	if entry.DestinationAccountID != "" {
		// Debit+credit pair: both legs settle immediately and share the
		// reference so they can be correlated.
		debitLeg := domain.Transaction{
			TransactionID:    uuid.NewString(),
			AccountID:        entry.SourceAccountID,
			UserID:           entry.SourceUserID,
			Amount:           entry.Amount,
			Type:             entry.Type,
			Status:           domain.StatusCompleted,
			Reference:        entry.Reference,
			Description:      entry.Description,
			Category:         entry.Category,
			RecipientBank:    entry.RecipientBank,
			RecipientAccount: entry.RecipientAccount,
			PinVerified:      entry.PinVerified,
			Date:             now,
			AuditFields:      audit,
		}
		creditLeg := domain.Transaction{
			TransactionID: uuid.NewString(),
			AccountID:     entry.DestinationAccountID,
			UserID:        entry.DestinationUserID,
			Amount:        entry.Amount,
			Type:          domain.Deposit,
			Status:        domain.StatusCompleted,
			Reference:     entry.Reference,
			Description:   entry.CreditDescription,
			Category:      entry.CreditCategory,
			Date:          now,
			AuditFields:   audit,
		}
		transactions = append(transactions, debitLeg, creditLeg)
		balanceChanges[entry.SourceAccountID] = entry.Amount.Neg()
		balanceChanges[entry.DestinationAccountID] = entry.Amount
	} else {
		// Single leg: direction comes from the transaction type.
		leg := domain.Transaction{
			TransactionID:    uuid.NewString(),
			AccountID:        entry.SourceAccountID,
			UserID:           entry.SourceUserID,
			Amount:           entry.Amount,
			Type:             entry.Type,
			Status:           status,
			Reference:        entry.Reference,
			Description:      entry.Description,
			Category:         entry.Category,
			RecipientBank:    entry.RecipientBank,
			RecipientAccount: entry.RecipientAccount,
			SwiftCode:        entry.SwiftCode,
			PinVerified:      entry.PinVerified,
			Date:             now,
			AuditFields:      audit,
		}
		transactions = append(transactions, leg)
		if entry.Type.IsCredit() {
			balanceChanges[entry.SourceAccountID] = entry.Amount
		} else {
			balanceChanges[entry.SourceAccountID] = entry.Amount.Neg()
		}
	}

	// The commit carries an upper bound so a hung store cannot hold the
	// account row locks for as long as the caller keeps the request open.
	// Past the deadline the transaction aborts and nothing is persisted.
	commitCtx, cancel := context.WithTimeout(ctx, s.commitTimeout)
	defer cancel()

	if err := s.ledgerRepo.SaveTransfer(commitCtx, transactions, balanceChanges); err != nil {
		logger.Error("Failed to commit ledger entry",
			slog.String("reference", entry.Reference),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to commit ledger entry: %w", err)
	}

	logger.Info("Ledger entry committed",
		slog.String("reference", entry.Reference),
		slog.Int("legs", len(transactions)),
	)

	// Notifications ride outside the transaction: a failed insert would abort
	// the commit if it ran inside, and losing a notification is acceptable
	// where losing money movement is not.
	if len(entry.Notifications) > 0 {
		notifications := make([]domain.Notification, len(entry.Notifications))
		for i, n := range entry.Notifications {
			if n.NotificationID == "" {
				n.NotificationID = uuid.NewString()
			}
			if n.CreatedAt.IsZero() {
				n.CreatedAt = now
			}
			notifications[i] = n
		}
		if err := s.notificationRepo.SaveNotifications(ctx, notifications); err != nil {
			logger.Error("Failed to write notifications after commit",
				slog.String("reference", entry.Reference),
				slog.String("error", err.Error()),
			)
		}
	}

	return transactions, nil
}

func validateEntry(entry portssvc.LedgerEntry) error {
	if !entry.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if entry.Amount.Exponent() < -2 {
		return fmt.Errorf("%w: amount must have at most 2 decimal places", apperrors.ErrValidation)
	}
	if entry.Reference == "" {
		return ErrMissingReference
	}
	if entry.SourceAccountID == "" {
		return ErrMissingSourceAccount
	}
	if entry.DestinationAccountID != "" && entry.DestinationAccountID == entry.SourceAccountID {
		return fmt.Errorf("%w: source and destination accounts must differ", apperrors.ErrValidation)
	}
	return nil
}
