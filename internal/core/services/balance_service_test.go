package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/signordemola/belize-app/internal/apperrors"
	"github.com/signordemola/belize-app/internal/core/domain"
	portssvc "github.com/signordemola/belize-app/internal/core/ports/services"
	"github.com/signordemola/belize-app/internal/core/services"
	"github.com/signordemola/belize-app/internal/dto"
)

type BalanceServiceTestSuite struct {
	suite.Suite
	userRepo    *MockUserRepository
	accountRepo *MockAccountRepository
	ledgerSvc   *MockLedgerService
	emailSender *MockEmailSender
	service     portssvc.BalanceSvcFacade
	ctx         context.Context

	admin         domain.User
	target        domain.User
	targetAccount domain.Account
}

func (s *BalanceServiceTestSuite) SetupTest() {
	s.userRepo = new(MockUserRepository)
	s.accountRepo = new(MockAccountRepository)
	s.ledgerSvc = new(MockLedgerService)
	s.emailSender = new(MockEmailSender)
	s.service = services.NewBalanceService(s.userRepo, s.accountRepo, s.ledgerSvc, s.emailSender)
	s.ctx = context.Background()

	s.admin = domain.User{
		UserID:   "user-admin",
		Username: "adminuser",
		Role:     domain.RoleAdmin,
	}
	s.target = domain.User{
		UserID:    "user-target",
		Username:  "targetuser",
		FirstName: "Terry",
		LastName:  "Target",
		Email:     "terry@example.com",
		Role:      domain.RoleCustomer,
	}
	s.targetAccount = domain.Account{
		AccountID: "acct-target",
		UserID:    "user-target",
		Status:    domain.AccountActive,
		Balance:   decimal.RequireFromString("400.00"),
	}
}

func (s *BalanceServiceTestSuite) creditRequest() dto.BalanceAdjustmentRequest {
	return dto.BalanceAdjustmentRequest{
		UserID:      s.target.UserID,
		Amount:      "150.00",
		FromAccount: "Admin Reserve Account",
		Direction:   dto.DirectionCredit,
	}
}

func (s *BalanceServiceTestSuite) TestAdjustBalance_CreditSuccess() {
	s.userRepo.On("FindUserByID", s.ctx, s.admin.UserID).Return(&s.admin, nil)
	s.userRepo.On("FindUserByID", s.ctx, s.target.UserID).Return(&s.target, nil)
	s.accountRepo.On("FindAccountByUserID", s.ctx, s.target.UserID).Return(&s.targetAccount, nil)

	var captured portssvc.LedgerEntry
	s.ledgerSvc.On("PostEntry", s.ctx, mock.MatchedBy(func(entry portssvc.LedgerEntry) bool {
		captured = entry
		return true
	})).Return([]domain.Transaction{}, nil)

	var receipt dto.TransactionReceipt
	s.emailSender.On("SendTransactionReceipt", s.ctx, s.target.Email, mock.AnythingOfType("dto.TransactionReceipt")).
		Run(func(args mock.Arguments) {
			receipt = args.Get(2).(dto.TransactionReceipt)
		}).Return(nil)

	result, err := s.service.AdjustBalance(s.ctx, s.admin.UserID, s.creditRequest())

	s.Require().NoError(err)
	s.True(result.Success)
	s.Regexp(`^BALANCE_CREDIT_\d+$`, result.Reference)
	s.True(result.NewBalance.Equal(decimal.RequireFromString("550.00")))

	s.Equal(domain.Deposit, captured.Type)
	s.Equal(domain.StatusCompleted, captured.Status)
	s.Empty(captured.DestinationAccountID)
	s.Equal("Incoming transfer from Admin Reserve Account", captured.Description)
	s.Equal("Admin Balance Addition", captured.Category)
	s.False(captured.PinVerified)
	s.Equal(s.admin.UserID, captured.InitiatedBy)
	s.Require().Len(captured.Notifications, 1)
	s.Equal("INCOMING_TRANSFER", captured.Notifications[0].Type)

	s.Equal(result.Reference, receipt.Reference)
	s.Equal("Admin balance adjustment", receipt.Notes)
	s.True(receipt.NewBalance.Equal(result.NewBalance))

	s.emailSender.AssertExpectations(s.T())
}

func (s *BalanceServiceTestSuite) TestAdjustBalance_DebitSuccess() {
	s.userRepo.On("FindUserByID", s.ctx, s.admin.UserID).Return(&s.admin, nil)
	s.userRepo.On("FindUserByID", s.ctx, s.target.UserID).Return(&s.target, nil)
	s.accountRepo.On("FindAccountByUserID", s.ctx, s.target.UserID).Return(&s.targetAccount, nil)

	var captured portssvc.LedgerEntry
	s.ledgerSvc.On("PostEntry", s.ctx, mock.MatchedBy(func(entry portssvc.LedgerEntry) bool {
		captured = entry
		return true
	})).Return([]domain.Transaction{}, nil)
	s.emailSender.On("SendTransactionReceipt", s.ctx, s.target.Email, mock.Anything).Return(nil)

	req := s.creditRequest()
	req.Direction = dto.DirectionDebit
	notes := "Chargeback reversal"
	req.Notes = &notes
	result, err := s.service.AdjustBalance(s.ctx, s.admin.UserID, req)

	s.Require().NoError(err)
	s.Regexp(`^BALANCE_DEBIT_\d+$`, result.Reference)
	s.True(result.NewBalance.Equal(decimal.RequireFromString("250.00")))

	s.Equal(domain.Withdrawal, captured.Type)
	s.Equal("Admin Balance Deduction", captured.Category)
	s.Require().Len(captured.Notifications, 1)
	s.Equal("OUTGOING_TRANSFER", captured.Notifications[0].Type)
}

func (s *BalanceServiceTestSuite) TestAdjustBalance_DebitExceedingBalance() {
	s.userRepo.On("FindUserByID", s.ctx, s.admin.UserID).Return(&s.admin, nil)
	s.userRepo.On("FindUserByID", s.ctx, s.target.UserID).Return(&s.target, nil)
	s.accountRepo.On("FindAccountByUserID", s.ctx, s.target.UserID).Return(&s.targetAccount, nil)

	req := s.creditRequest()
	req.Direction = dto.DirectionDebit
	req.Amount = "400.01"
	result, err := s.service.AdjustBalance(s.ctx, s.admin.UserID, req)

	s.Nil(result)
	s.ErrorIs(err, apperrors.ErrInsufficientFunds)
	s.ledgerSvc.AssertNotCalled(s.T(), "PostEntry", mock.Anything, mock.Anything)
	s.emailSender.AssertNotCalled(s.T(), "SendTransactionReceipt", mock.Anything, mock.Anything, mock.Anything)
}

func (s *BalanceServiceTestSuite) TestAdjustBalance_NonAdminActor() {
	// Role comes from the database, not the token.
	customer := s.target
	s.userRepo.On("FindUserByID", s.ctx, customer.UserID).Return(&customer, nil)

	result, err := s.service.AdjustBalance(s.ctx, customer.UserID, s.creditRequest())

	s.Nil(result)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.ledgerSvc.AssertNotCalled(s.T(), "PostEntry", mock.Anything, mock.Anything)
}

func (s *BalanceServiceTestSuite) TestAdjustBalance_TargetUserNotFound() {
	s.userRepo.On("FindUserByID", s.ctx, s.admin.UserID).Return(&s.admin, nil)
	s.userRepo.On("FindUserByID", s.ctx, s.target.UserID).Return(nil, apperrors.ErrNotFound)

	_, err := s.service.AdjustBalance(s.ctx, s.admin.UserID, s.creditRequest())

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *BalanceServiceTestSuite) TestAdjustBalance_InactiveAccount() {
	s.targetAccount.Status = domain.AccountFrozen
	s.userRepo.On("FindUserByID", s.ctx, s.admin.UserID).Return(&s.admin, nil)
	s.userRepo.On("FindUserByID", s.ctx, s.target.UserID).Return(&s.target, nil)
	s.accountRepo.On("FindAccountByUserID", s.ctx, s.target.UserID).Return(&s.targetAccount, nil)

	_, err := s.service.AdjustBalance(s.ctx, s.admin.UserID, s.creditRequest())

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *BalanceServiceTestSuite) TestAdjustBalance_InvalidDirection() {
	req := s.creditRequest()
	req.Direction = "SIDEWAYS"

	_, err := s.service.AdjustBalance(s.ctx, s.admin.UserID, req)

	s.ErrorIs(err, apperrors.ErrValidation)
	s.userRepo.AssertNotCalled(s.T(), "FindUserByID", mock.Anything, mock.Anything)
}

func (s *BalanceServiceTestSuite) TestAdjustBalance_EmailFailureIsSwallowed() {
	s.userRepo.On("FindUserByID", s.ctx, s.admin.UserID).Return(&s.admin, nil)
	s.userRepo.On("FindUserByID", s.ctx, s.target.UserID).Return(&s.target, nil)
	s.accountRepo.On("FindAccountByUserID", s.ctx, s.target.UserID).Return(&s.targetAccount, nil)
	s.ledgerSvc.On("PostEntry", s.ctx, mock.AnythingOfType("services.LedgerEntry")).
		Return([]domain.Transaction{}, nil)
	s.emailSender.On("SendTransactionReceipt", s.ctx, s.target.Email, mock.Anything).
		Return(errors.New("smtp: connection refused"))

	result, err := s.service.AdjustBalance(s.ctx, s.admin.UserID, s.creditRequest())

	// The adjustment committed; receipt delivery is best-effort.
	s.Require().NoError(err)
	s.True(result.Success)
}

func TestBalanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BalanceServiceTestSuite))
}
