package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/signordemola/belize-app/internal/apperrors"
	"github.com/signordemola/belize-app/internal/core/domain"
	portsrepo "github.com/signordemola/belize-app/internal/core/ports/repositories"
	portssvc "github.com/signordemola/belize-app/internal/core/ports/services"
	"github.com/signordemola/belize-app/internal/dto"
	"github.com/signordemola/belize-app/internal/middleware"
	"github.com/signordemola/belize-app/internal/utils"
)

// Rejection reasons for customer-initiated debits. Each maps to exactly one
// precondition, checked in a fixed order with no state mutated on failure.
var (
	ErrTransferBlocked       = errors.New("transfers are currently blocked for this account")
	ErrPinNotSet             = errors.New("transaction PIN not set")
	ErrInvalidPin            = errors.New("invalid transaction PIN")
	ErrSourceAccountNotFound = errors.New("source account not found")
	ErrRecipientNotFound     = errors.New("recipient account not found")
	ErrSameAccount           = errors.New("cannot transfer to the same account")
)

// transferService authorizes and executes the three customer transfer kinds.
type transferService struct {
	userRepo    portsrepo.UserRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
	ledgerSvc   portssvc.LedgerSvcFacade
}

// NewTransferService creates a new transfer service.
func NewTransferService(userRepo portsrepo.UserRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, ledgerSvc portssvc.LedgerSvcFacade) portssvc.TransferSvcFacade {
	return &transferService{
		userRepo:    userRepo,
		accountRepo: accountRepo,
		ledgerSvc:   ledgerSvc,
	}
}

var _ portssvc.TransferSvcFacade = (*transferService)(nil)

// TransferInternal moves money between two accounts held at this institution.
// Both legs settle immediately under one shared reference.
func (s *transferService) TransferInternal(ctx context.Context, requesterUserID string, req dto.InternalTransferRequest) (*dto.TransferResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	if err := validatePin(req.Pin); err != nil {
		return nil, err
	}
	if err := validateMemo(req.Reference); err != nil {
		return nil, err
	}

	user, source, err := authorizeDebit(ctx, s.userRepo, s.accountRepo, requesterUserID, req.FromAccount, amount, req.Pin)
	if err != nil {
		return nil, err
	}

	recipient, err := s.accountRepo.FindAccountByNumber(ctx, req.RecipientAccount)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrRecipientNotFound
		}
		return nil, fmt.Errorf("failed to look up recipient account: %w", err)
	}
	if !recipient.IsActive() {
		return nil, ErrRecipientNotFound
	}
	if recipient.AccountID == source.AccountID || recipient.UserID == user.UserID {
		return nil, ErrSameAccount
	}

	recipientUser, err := s.userRepo.FindUserByID(ctx, recipient.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up recipient user: %w", err)
	}

	reference := utils.NewReference("TRF")
	description := fmt.Sprintf("Payment to %s (Belize Bank)", recipientUser.FullName())
	creditDescription := fmt.Sprintf("Deposit from %s (Belize Bank)", user.FullName())
	if req.Reference != "" {
		description = fmt.Sprintf("%s: %s", description, req.Reference)
		creditDescription = fmt.Sprintf("%s: %s", creditDescription, req.Reference)
	}

	entry := portssvc.LedgerEntry{
		SourceAccountID:      source.AccountID,
		SourceUserID:         user.UserID,
		DestinationAccountID: recipient.AccountID,
		DestinationUserID:    recipient.UserID,
		Amount:               amount,
		Reference:            reference,
		Type:                 domain.TransferBelize,
		Status:               domain.StatusCompleted,
		Description:          description,
		Category:             "Transfer",
		CreditDescription:    creditDescription,
		CreditCategory:       "Incoming Transfer",
		RecipientBank:        "Belize Bank Inc.",
		RecipientAccount:     recipient.AccountNumber,
		PinVerified:          true,
		InitiatedBy:          user.UserID,
		Notifications: []domain.Notification{
			{
				UserID:   user.UserID,
				Type:     "TRANSFER_SENT",
				Message:  fmt.Sprintf("You sent $%s to %s.", amount.StringFixed(2), recipientUser.FullName()),
				Priority: domain.PriorityHigh,
			},
			{
				UserID:   recipient.UserID,
				Type:     "TRANSFER_RECEIVED",
				Message:  fmt.Sprintf("$%s has been deposited into your account by %s.", amount.StringFixed(2), user.FullName()),
				Priority: domain.PriorityHigh,
			},
		},
	}

	if _, err := s.ledgerSvc.PostEntry(ctx, entry); err != nil {
		return nil, err
	}

	logger.Info("Internal transfer committed",
		slog.String("reference", reference),
		slog.String("source_account_id", source.AccountID),
		slog.String("recipient_account_id", recipient.AccountID),
	)

	return &dto.TransferResult{
		Success:   true,
		Reference: reference,
		Message:   "Transfer completed successfully!",
	}, nil
}

// TransferUSBank debits the source account and records a single PENDING
// outbound leg; settlement happens out of band.
func (s *transferService) TransferUSBank(ctx context.Context, requesterUserID string, req dto.USBankTransferRequest) (*dto.TransferResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	if err := validatePin(req.Pin); err != nil {
		return nil, err
	}
	if err := validateMemo(req.Reference); err != nil {
		return nil, err
	}
	if !bankNameRegex.MatchString(req.BankName) {
		return nil, newFieldError("bankName", "Bank name must be 2-100 characters (letters, numbers, spaces, & and - only).")
	}
	if !accountNumberRegex.MatchString(req.AccountNumber) {
		return nil, newFieldError("accountNumber", "Account number must be 8-17 digits.")
	}
	if !nameRegex.MatchString(req.AccountHolderName) {
		return nil, newFieldError("accountHolderName", "Account holder name must be 2-100 letters.")
	}

	user, source, err := authorizeDebit(ctx, s.userRepo, s.accountRepo, requesterUserID, req.FromAccountID, amount, req.Pin)
	if err != nil {
		return nil, err
	}

	reference := utils.NewReference("USB")
	description := fmt.Sprintf("Transfer to %s at %s", req.AccountHolderName, req.BankName)
	if req.Reference != "" {
		description = fmt.Sprintf("%s: %s", description, req.Reference)
	}

	entry := portssvc.LedgerEntry{
		SourceAccountID:  source.AccountID,
		SourceUserID:     user.UserID,
		Amount:           amount,
		Reference:        reference,
		Type:             domain.TransferUSBank,
		Status:           domain.StatusPending,
		Description:      description,
		Category:         "Transfer",
		RecipientBank:    req.BankName,
		RecipientAccount: req.AccountNumber,
		PinVerified:      true,
		InitiatedBy:      user.UserID,
		Notifications: []domain.Notification{
			{
				UserID:   user.UserID,
				Type:     "TRANSFER_SENT",
				Message:  fmt.Sprintf("You initiated a US bank transfer of $%s to %s.", amount.StringFixed(2), req.AccountHolderName),
				Priority: domain.PriorityHigh,
			},
		},
	}

	if _, err := s.ledgerSvc.PostEntry(ctx, entry); err != nil {
		return nil, err
	}

	logger.Info("US bank transfer initiated",
		slog.String("reference", reference),
		slog.String("source_account_id", source.AccountID),
	)

	return &dto.TransferResult{
		Success:   true,
		Reference: reference,
		Message:   "US Bank transfer initiated successfully!",
	}, nil
}

// TransferInternational debits the source account and records a single
// PENDING outbound leg addressed via SWIFT.
func (s *transferService) TransferInternational(ctx context.Context, requesterUserID string, req dto.InternationalTransferRequest) (*dto.TransferResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	if err := validatePin(req.Pin); err != nil {
		return nil, err
	}
	if err := validateMemo(req.Reference); err != nil {
		return nil, err
	}
	if !nameRegex.MatchString(req.RecipientName) {
		return nil, newFieldError("recipientName", "Recipient name must be 2-100 letters.")
	}
	if !bankNameRegex.MatchString(req.BankName) {
		return nil, newFieldError("bankName", "Bank name must be 2-100 characters (letters, numbers, spaces, & and - only).")
	}
	if !swiftCodeRegex.MatchString(req.SwiftCode) {
		return nil, newFieldError("swiftCode", "SWIFT code must be 8 or 11 characters (e.g. BELZBZBZ).")
	}
	if !accountNumberRegex.MatchString(req.AccountNumber) {
		return nil, newFieldError("accountNumber", "Account number must be 8-17 digits.")
	}
	if req.IBAN != "" && !ibanRegex.MatchString(req.IBAN) {
		return nil, newFieldError("iban", "IBAN format is invalid.")
	}

	user, source, err := authorizeDebit(ctx, s.userRepo, s.accountRepo, requesterUserID, req.FromAccountID, amount, req.Pin)
	if err != nil {
		return nil, err
	}

	reference := utils.NewReference("INTL")
	description := fmt.Sprintf("International transfer to %s at %s, %s", req.RecipientName, req.BankName, req.Country)
	if req.Reference != "" {
		description = fmt.Sprintf("%s: %s", description, req.Reference)
	}

	entry := portssvc.LedgerEntry{
		SourceAccountID:  source.AccountID,
		SourceUserID:     user.UserID,
		Amount:           amount,
		Reference:        reference,
		Type:             domain.TransferInternational,
		Status:           domain.StatusPending,
		Description:      description,
		Category:         "Transfer",
		RecipientBank:    req.BankName,
		RecipientAccount: req.AccountNumber,
		SwiftCode:        req.SwiftCode,
		PinVerified:      true,
		InitiatedBy:      user.UserID,
		Notifications: []domain.Notification{
			{
				UserID:   user.UserID,
				Type:     "TRANSFER_SENT",
				Message:  fmt.Sprintf("You initiated an international transfer of $%s to %s.", amount.StringFixed(2), req.RecipientName),
				Priority: domain.PriorityHigh,
			},
		},
	}

	if _, err := s.ledgerSvc.PostEntry(ctx, entry); err != nil {
		return nil, err
	}

	logger.Info("International transfer initiated",
		slog.String("reference", reference),
		slog.String("source_account_id", source.AccountID),
		slog.String("swift_code", req.SwiftCode),
	)

	return &dto.TransferResult{
		Success:   true,
		Reference: reference,
		Message:   "International transfer initiated successfully!",
	}, nil
}
