package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/signordemola/belize-app/internal/apperrors"
	"github.com/signordemola/belize-app/internal/core/domain"
	portsrepo "github.com/signordemola/belize-app/internal/core/ports/repositories"
	"github.com/signordemola/belize-app/internal/utils"
)

// Format rules for the security-critical input subset. The UI layer validates
// these too, but its checks are not authoritative.
var (
	amountRegex        = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
	pinRegex           = regexp.MustCompile(`^\d{4}$`)
	referenceRegex     = regexp.MustCompile(`^[a-zA-Z0-9\s]{0,50}$`)
	accountNumberRegex = regexp.MustCompile(`^\d{8,17}$`)
	billerNumberRegex  = regexp.MustCompile(`^\d{4,20}$`)
	nameRegex          = regexp.MustCompile(`^[a-zA-Z\s]{2,100}$`)
	bankNameRegex      = regexp.MustCompile(`^[a-zA-Z0-9\s&-]{2,100}$`)
	swiftCodeRegex     = regexp.MustCompile(`^[A-Z]{6}[A-Z0-9]{2}([A-Z0-9]{3})?$`)
	ibanRegex          = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]{1,30}$`)
)

// FieldError is a validation failure tied to a specific input field. It
// unwraps to apperrors.ErrValidation so handlers can dispatch on the kind
// while still surfacing the field-specific message.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

func (e *FieldError) Unwrap() error {
	return apperrors.ErrValidation
}

func newFieldError(field, message string) error {
	return &FieldError{Field: field, Message: message}
}

// parseAmount enforces the currency-precision amount format (positive, at
// most two decimal places) and returns the parsed decimal.
func parseAmount(raw string) (decimal.Decimal, error) {
	if !amountRegex.MatchString(raw) {
		return decimal.Zero, newFieldError("amount", "Amount must be a positive number with up to 2 decimal places.")
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, newFieldError("amount", "Amount must be greater than 0.")
	}
	return amount, nil
}

func validatePin(pin string) error {
	if !pinRegex.MatchString(pin) {
		return newFieldError("pin", "PIN must be exactly 4 digits.")
	}
	return nil
}

func validateMemo(memo string) error {
	if !referenceRegex.MatchString(memo) {
		return newFieldError("reference", "Reference must be alphanumeric and up to 50 characters.")
	}
	return nil
}

// authorizeDebit runs the ordered precondition ladder shared by every
// customer-initiated debit. Checks run in the documented order and stop at
// the first failure; the transfer-block check comes before any PIN handling
// so a blocked user never learns whether a PIN was even set. No state is
// mutated on rejection.
func authorizeDebit(
	ctx context.Context,
	userRepo portsrepo.UserRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	requesterUserID string,
	sourceAccountID string,
	amount decimal.Decimal,
	pin string,
) (*domain.User, *domain.Account, error) {
	user, err := userRepo.FindUserByID(ctx, requesterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, requesterUserID)
		}
		return nil, nil, fmt.Errorf("failed to look up requester: %w", err)
	}

	if user.IsTransferBlocked {
		return nil, nil, ErrTransferBlocked
	}
	if user.TransactionPin == "" {
		return nil, nil, ErrPinNotSet
	}
	if !utils.CheckPinHash(pin, user.TransactionPin) {
		return nil, nil, ErrInvalidPin
	}

	account, err := accountRepo.FindAccountByID(ctx, sourceAccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, ErrSourceAccountNotFound
		}
		return nil, nil, fmt.Errorf("failed to look up source account: %w", err)
	}
	if account.UserID != user.UserID {
		return nil, nil, ErrSourceAccountNotFound
	}
	if !account.IsActive() {
		return nil, nil, fmt.Errorf("%w: account is not active", apperrors.ErrValidation)
	}

	if account.Balance.LessThan(amount) {
		return nil, nil, apperrors.ErrInsufficientFunds
	}

	return user, account, nil
}
