package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/signordemola/belize-app/internal/apperrors"
	"github.com/signordemola/belize-app/internal/core/domain"
	portssvc "github.com/signordemola/belize-app/internal/core/ports/services"
	"github.com/signordemola/belize-app/internal/core/services"
	"github.com/signordemola/belize-app/internal/dto"
	"github.com/signordemola/belize-app/internal/utils"
)

type BillPayServiceTestSuite struct {
	suite.Suite
	userRepo    *MockUserRepository
	accountRepo *MockAccountRepository
	ledgerSvc   *MockLedgerService
	service     portssvc.BillPaySvcFacade
	ctx         context.Context

	payer        domain.User
	payerAccount domain.Account
}

func (s *BillPayServiceTestSuite) SetupSuite() {
	hash, err := utils.HashPin("1234")
	s.Require().NoError(err)
	s.payer = domain.User{
		UserID:         "user-payer",
		FirstName:      "Alice",
		LastName:       "Smith",
		Role:           domain.RoleCustomer,
		TransactionPin: hash,
	}
}

func (s *BillPayServiceTestSuite) SetupTest() {
	s.userRepo = new(MockUserRepository)
	s.accountRepo = new(MockAccountRepository)
	s.ledgerSvc = new(MockLedgerService)
	s.service = services.NewBillPayService(s.userRepo, s.accountRepo, s.ledgerSvc)
	s.ctx = context.Background()

	s.payer.IsTransferBlocked = false
	s.payerAccount = domain.Account{
		AccountID: "acct-payer",
		UserID:    "user-payer",
		Status:    domain.AccountActive,
		Balance:   decimal.RequireFromString("300.00"),
	}
}

func (s *BillPayServiceTestSuite) request() dto.BillPayRequest {
	return dto.BillPayRequest{
		FromAccountID:       s.payerAccount.AccountID,
		BillerName:          "Belize Electricity Limited",
		BillerAccountNumber: "44021887",
		Amount:              "89.95",
		Pin:                 "1234",
	}
}

func (s *BillPayServiceTestSuite) TestPayBill_Success() {
	s.userRepo.On("FindUserByID", s.ctx, s.payer.UserID).Return(&s.payer, nil)
	s.accountRepo.On("FindAccountByID", s.ctx, s.payerAccount.AccountID).Return(&s.payerAccount, nil)

	var captured portssvc.LedgerEntry
	s.ledgerSvc.On("PostEntry", s.ctx, mock.MatchedBy(func(entry portssvc.LedgerEntry) bool {
		captured = entry
		return true
	})).Return([]domain.Transaction{}, nil)

	result, err := s.service.PayBill(s.ctx, s.payer.UserID, s.request())

	s.Require().NoError(err)
	s.True(result.Success)
	s.Regexp(`^BILL_\d+_[0-9A-F]+$`, result.Reference)
	s.Equal("Bill payment completed successfully!", result.Message)

	s.Equal(domain.BillPayment, captured.Type)
	s.Equal(domain.StatusCompleted, captured.Status)
	s.Empty(captured.DestinationAccountID)
	s.Equal("Bill payment to Belize Electricity Limited", captured.Description)
	s.Equal("Bill Payment", captured.Category)
	s.Equal("44021887", captured.RecipientAccount)
	s.Require().Len(captured.Notifications, 1)
	s.Equal("BILL_PAYMENT", captured.Notifications[0].Type)
	s.Equal(domain.PriorityNormal, captured.Notifications[0].Priority)
}

func (s *BillPayServiceTestSuite) TestPayBill_InvalidBillerAccountNumber() {
	for _, number := range []string{"123", "123456789012345678901", "44-021-887"} {
		req := s.request()
		req.BillerAccountNumber = number

		result, err := s.service.PayBill(s.ctx, s.payer.UserID, req)

		s.Nil(result, "biller number %q", number)
		s.ErrorIs(err, apperrors.ErrValidation, "biller number %q", number)
	}
	s.userRepo.AssertNotCalled(s.T(), "FindUserByID", mock.Anything, mock.Anything)
}

func (s *BillPayServiceTestSuite) TestPayBill_BlockedUser() {
	blocked := s.payer
	blocked.IsTransferBlocked = true
	s.userRepo.On("FindUserByID", s.ctx, s.payer.UserID).Return(&blocked, nil)

	_, err := s.service.PayBill(s.ctx, s.payer.UserID, s.request())

	s.ErrorIs(err, services.ErrTransferBlocked)
	s.ledgerSvc.AssertNotCalled(s.T(), "PostEntry", mock.Anything, mock.Anything)
}

func (s *BillPayServiceTestSuite) TestPayBill_InsufficientFunds() {
	s.payerAccount.Balance = decimal.RequireFromString("50.00")
	s.userRepo.On("FindUserByID", s.ctx, s.payer.UserID).Return(&s.payer, nil)
	s.accountRepo.On("FindAccountByID", s.ctx, s.payerAccount.AccountID).Return(&s.payerAccount, nil)

	_, err := s.service.PayBill(s.ctx, s.payer.UserID, s.request())

	s.ErrorIs(err, apperrors.ErrInsufficientFunds)
}

func TestBillPayServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BillPayServiceTestSuite))
}
