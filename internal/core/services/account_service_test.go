package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/signordemola/belize-app/internal/apperrors"
	"github.com/signordemola/belize-app/internal/core/domain"
	portssvc "github.com/signordemola/belize-app/internal/core/ports/services"
	"github.com/signordemola/belize-app/internal/core/services"
	"github.com/signordemola/belize-app/internal/dto"
)

const testRoutingNumber = "211691185"

type AccountServiceTestSuite struct {
	suite.Suite
	accountRepo *MockAccountRepository
	ledgerRepo  *MockLedgerRepository
	service     portssvc.AccountSvcFacade
	ctx         context.Context
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.accountRepo = new(MockAccountRepository)
	s.ledgerRepo = new(MockLedgerRepository)
	s.service = services.NewAccountService(s.accountRepo, s.ledgerRepo, testRoutingNumber)
	s.ctx = context.Background()
}

func (s *AccountServiceTestSuite) TestOpenAccount_Success() {
	var saved domain.Account
	s.accountRepo.On("SaveAccount", s.ctx, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Account)
		}).Return(nil).Once()

	account, err := s.service.OpenAccount(s.ctx, "user-1", domain.Checking)

	s.Require().NoError(err)
	s.Equal("user-1", account.UserID)
	s.Equal(domain.Checking, account.AccountType)
	s.Equal(domain.AccountActive, account.Status)
	s.True(account.Balance.IsZero())
	s.Equal(testRoutingNumber, account.RoutingNumber)
	s.Regexp(`^[1-9]\d{9}$`, account.AccountNumber)
	s.Equal(saved.AccountID, account.AccountID)
	s.accountRepo.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestOpenAccount_RetriesOnNumberCollision() {
	s.accountRepo.On("SaveAccount", s.ctx, mock.AnythingOfType("domain.Account")).
		Return(apperrors.ErrDuplicate).Twice()
	s.accountRepo.On("SaveAccount", s.ctx, mock.AnythingOfType("domain.Account")).
		Return(nil).Once()

	account, err := s.service.OpenAccount(s.ctx, "user-1", domain.Savings)

	s.Require().NoError(err)
	s.NotNil(account)
	s.accountRepo.AssertNumberOfCalls(s.T(), "SaveAccount", 3)
}

func (s *AccountServiceTestSuite) TestOpenAccount_GivesUpAfterRepeatedCollisions() {
	s.accountRepo.On("SaveAccount", s.ctx, mock.AnythingOfType("domain.Account")).
		Return(apperrors.ErrDuplicate)

	account, err := s.service.OpenAccount(s.ctx, "user-1", domain.Savings)

	s.Nil(account)
	s.ErrorIs(err, apperrors.ErrInternal)
	s.accountRepo.AssertNumberOfCalls(s.T(), "SaveAccount", 3)
}

func (s *AccountServiceTestSuite) TestGetAccountByID_ForeignAccountReportsNotFound() {
	account := &domain.Account{AccountID: "acct-1", UserID: "user-other", Status: domain.AccountActive}
	s.accountRepo.On("FindAccountByID", s.ctx, "acct-1").Return(account, nil)

	result, err := s.service.GetAccountByID(s.ctx, "user-1", "acct-1")

	s.Nil(result)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *AccountServiceTestSuite) TestListTransactions_ClampsLimit() {
	account := &domain.Account{AccountID: "acct-1", UserID: "user-1", Status: domain.AccountActive}
	s.accountRepo.On("FindAccountByID", s.ctx, "acct-1").Return(account, nil)
	s.ledgerRepo.On("ListTransactionsByAccountID", s.ctx, "acct-1", 100, (*string)(nil)).
		Return([]domain.Transaction{}, nil, nil)

	resp, err := s.service.ListTransactions(s.ctx, "user-1", "acct-1", dto.ListTransactionsParams{Limit: 5000})

	s.Require().NoError(err)
	s.Empty(resp.Transactions)
	s.ledgerRepo.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestListTransactions_DefaultsLimit() {
	account := &domain.Account{AccountID: "acct-1", UserID: "user-1", Status: domain.AccountActive}
	s.accountRepo.On("FindAccountByID", s.ctx, "acct-1").Return(account, nil)

	token := "eyJ0b2tlbiJ9"
	s.ledgerRepo.On("ListTransactionsByAccountID", s.ctx, "acct-1", 20, (*string)(nil)).
		Return([]domain.Transaction{{TransactionID: "txn-1", AccountID: "acct-1"}}, &token, nil)

	resp, err := s.service.ListTransactions(s.ctx, "user-1", "acct-1", dto.ListTransactionsParams{})

	s.Require().NoError(err)
	s.Len(resp.Transactions, 1)
	s.Require().NotNil(resp.NextToken)
	s.Equal(token, *resp.NextToken)
}

func (s *AccountServiceTestSuite) TestListTransactions_ForeignAccountRejected() {
	account := &domain.Account{AccountID: "acct-1", UserID: "user-other", Status: domain.AccountActive}
	s.accountRepo.On("FindAccountByID", s.ctx, "acct-1").Return(account, nil)

	resp, err := s.service.ListTransactions(s.ctx, "user-1", "acct-1", dto.ListTransactionsParams{})

	s.Nil(resp)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.ledgerRepo.AssertNotCalled(s.T(), "ListTransactionsByAccountID", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
