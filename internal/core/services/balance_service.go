package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/signordemola/belize-app/internal/apperrors"
	"github.com/signordemola/belize-app/internal/core/domain"
	portsrepo "github.com/signordemola/belize-app/internal/core/ports/repositories"
	portssvc "github.com/signordemola/belize-app/internal/core/ports/services"
	"github.com/signordemola/belize-app/internal/dto"
	"github.com/signordemola/belize-app/internal/middleware"
	"github.com/signordemola/belize-app/internal/utils"
)

// balanceService is the admin-only direct credit/debit path. It bypasses PIN
// and ownership checks but never the non-negative balance invariant, and it
// re-checks the acting user's role against the database rather than trusting
// the token alone.
type balanceService struct {
	userRepo    portsrepo.UserRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
	ledgerSvc   portssvc.LedgerSvcFacade
	emailSender portssvc.EmailSender
}

// NewBalanceService creates a new balance adjustment service.
func NewBalanceService(userRepo portsrepo.UserRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, ledgerSvc portssvc.LedgerSvcFacade, emailSender portssvc.EmailSender) portssvc.BalanceSvcFacade {
	return &balanceService{
		userRepo:    userRepo,
		accountRepo: accountRepo,
		ledgerSvc:   ledgerSvc,
		emailSender: emailSender,
	}
}

var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

// AdjustBalance applies an administrative credit or debit to the target
// user's account. The NewBalance in the result is derived from the balance
// read during authorization, so a mutation committed concurrently between
// that read and the ledger commit is not reflected; it is display-only, and
// the committed ledger state stays authoritative.
func (s *balanceService) AdjustBalance(ctx context.Context, adminUserID string, req dto.BalanceAdjustmentRequest) (*dto.BalanceAdjustmentResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	if req.Direction != dto.DirectionCredit && req.Direction != dto.DirectionDebit {
		return nil, newFieldError("direction", "Direction must be CREDIT or DEBIT.")
	}

	admin, err := s.userRepo.FindUserByID(ctx, adminUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up acting user: %w", err)
	}
	if admin.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: balance adjustments require the ADMIN role", apperrors.ErrForbidden)
	}

	target, err := s.userRepo.FindUserByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, req.UserID)
		}
		return nil, fmt.Errorf("failed to look up target user: %w", err)
	}

	account, err := s.accountRepo.FindAccountByUserID(ctx, target.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account for user %s", apperrors.ErrNotFound, target.UserID)
		}
		return nil, fmt.Errorf("failed to look up target account: %w", err)
	}
	if !account.IsActive() {
		return nil, fmt.Errorf("%w: account is not active", apperrors.ErrValidation)
	}

	if req.Direction == dto.DirectionDebit && account.Balance.LessThan(amount) {
		return nil, apperrors.ErrInsufficientFunds
	}

	reference := utils.BalanceAdjustmentReference(req.Direction)

	entry := portssvc.LedgerEntry{
		SourceAccountID: account.AccountID,
		SourceUserID:    target.UserID,
		Amount:          amount,
		Reference:       reference,
		PinVerified:     false,
		InitiatedBy:     admin.UserID,
	}

	if req.Direction == dto.DirectionCredit {
		entry.Type = domain.Deposit
		entry.Status = domain.StatusCompleted
		entry.Description = fmt.Sprintf("Incoming transfer from %s", req.FromAccount)
		entry.Category = "Admin Balance Addition"
		entry.RecipientBank = req.FromAccount
		entry.Notifications = []domain.Notification{
			{
				UserID:   target.UserID,
				Type:     "INCOMING_TRANSFER",
				Message:  fmt.Sprintf("$%s has been deposited into your account.", amount.StringFixed(2)),
				Priority: domain.PriorityHigh,
			},
		}
	} else {
		entry.Type = domain.Withdrawal
		entry.Status = domain.StatusCompleted
		entry.Description = fmt.Sprintf("Outgoing transfer to %s", req.FromAccount)
		entry.Category = "Admin Balance Deduction"
		entry.RecipientBank = req.FromAccount
		entry.Notifications = []domain.Notification{
			{
				UserID:   target.UserID,
				Type:     "OUTGOING_TRANSFER",
				Message:  fmt.Sprintf("$%s has been debited from your account.", amount.StringFixed(2)),
				Priority: domain.PriorityHigh,
			},
		}
	}

	if _, err := s.ledgerSvc.PostEntry(ctx, entry); err != nil {
		return nil, err
	}

	newBalance := account.Balance.Add(amount)
	if req.Direction == dto.DirectionDebit {
		newBalance = account.Balance.Sub(amount)
	}

	logger.Info("Balance adjustment committed",
		slog.String("reference", reference),
		slog.String("target_user_id", target.UserID),
		slog.String("direction", req.Direction),
	)

	// Receipt delivery is best-effort: the adjustment has committed, so an
	// email failure is logged and swallowed.
	notes := "Admin balance adjustment"
	if req.Notes != nil && *req.Notes != "" {
		notes = *req.Notes
	}
	receipt := dto.TransactionReceipt{
		Type:       string(entry.Type),
		Amount:     amount,
		Reference:  reference,
		Notes:      notes,
		NewBalance: newBalance,
		Date:       time.Now().UTC(),
	}
	if err := s.emailSender.SendTransactionReceipt(ctx, target.Email, receipt); err != nil {
		logger.Error("Failed to send transaction receipt",
			slog.String("reference", reference),
			slog.String("error", err.Error()),
		)
	}

	return &dto.BalanceAdjustmentResult{
		Success:    true,
		Reference:  reference,
		NewBalance: newBalance,
	}, nil
}
