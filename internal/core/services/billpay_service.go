package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/signordemola/belize-app/internal/core/domain"
	portsrepo "github.com/signordemola/belize-app/internal/core/ports/repositories"
	portssvc "github.com/signordemola/belize-app/internal/core/ports/services"
	"github.com/signordemola/belize-app/internal/dto"
	"github.com/signordemola/belize-app/internal/middleware"
	"github.com/signordemola/belize-app/internal/utils"
)

// billPayService pays billers through the same PIN-gated ladder as transfers.
// Bill payments settle immediately as a single debit leg.
type billPayService struct {
	userRepo    portsrepo.UserRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
	ledgerSvc   portssvc.LedgerSvcFacade
}

// NewBillPayService creates a new bill pay service.
func NewBillPayService(userRepo portsrepo.UserRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, ledgerSvc portssvc.LedgerSvcFacade) portssvc.BillPaySvcFacade {
	return &billPayService{
		userRepo:    userRepo,
		accountRepo: accountRepo,
		ledgerSvc:   ledgerSvc,
	}
}

var _ portssvc.BillPaySvcFacade = (*billPayService)(nil)

func (s *billPayService) PayBill(ctx context.Context, requesterUserID string, req dto.BillPayRequest) (*dto.TransferResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	if err := validatePin(req.Pin); err != nil {
		return nil, err
	}
	if !bankNameRegex.MatchString(req.BillerName) {
		return nil, newFieldError("billerName", "Biller name must be 2-100 characters (letters, numbers, spaces, & and - only).")
	}
	if !billerNumberRegex.MatchString(req.BillerAccountNumber) {
		return nil, newFieldError("billerAccountNumber", "Biller account number must be 4-20 digits.")
	}

	user, source, err := authorizeDebit(ctx, s.userRepo, s.accountRepo, requesterUserID, req.FromAccountID, amount, req.Pin)
	if err != nil {
		return nil, err
	}

	reference := utils.NewReference("BILL")

	entry := portssvc.LedgerEntry{
		SourceAccountID:  source.AccountID,
		SourceUserID:     user.UserID,
		Amount:           amount,
		Reference:        reference,
		Type:             domain.BillPayment,
		Status:           domain.StatusCompleted,
		Description:      fmt.Sprintf("Bill payment to %s", req.BillerName),
		Category:         "Bill Payment",
		RecipientBank:    req.BillerName,
		RecipientAccount: req.BillerAccountNumber,
		PinVerified:      true,
		InitiatedBy:      user.UserID,
		Notifications: []domain.Notification{
			{
				UserID:   user.UserID,
				Type:     "BILL_PAYMENT",
				Message:  fmt.Sprintf("You paid $%s to %s.", amount.StringFixed(2), req.BillerName),
				Priority: domain.PriorityNormal,
			},
		},
	}

	if _, err := s.ledgerSvc.PostEntry(ctx, entry); err != nil {
		return nil, err
	}

	logger.Info("Bill payment committed",
		slog.String("reference", reference),
		slog.String("source_account_id", source.AccountID),
	)

	return &dto.TransferResult{
		Success:   true,
		Reference: reference,
		Message:   "Bill payment completed successfully!",
	}, nil
}
