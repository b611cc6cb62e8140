package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/signordemola/belize-app/internal/apperrors"
	portssvc "github.com/signordemola/belize-app/internal/core/ports/services"
	"github.com/signordemola/belize-app/internal/core/services"
	"github.com/signordemola/belize-app/internal/dto"
	"github.com/signordemola/belize-app/internal/handlers"
	"github.com/signordemola/belize-app/internal/platform/config"
	"github.com/signordemola/belize-app/internal/utils"
)

// --- Mock TransferService ---

type MockTransferService struct {
	mock.Mock
}

func (m *MockTransferService) TransferInternal(ctx context.Context, requesterUserID string, req dto.InternalTransferRequest) (*dto.TransferResult, error) {
	args := m.Called(ctx, requesterUserID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TransferResult), args.Error(1)
}

func (m *MockTransferService) TransferUSBank(ctx context.Context, requesterUserID string, req dto.USBankTransferRequest) (*dto.TransferResult, error) {
	args := m.Called(ctx, requesterUserID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TransferResult), args.Error(1)
}

func (m *MockTransferService) TransferInternational(ctx context.Context, requesterUserID string, req dto.InternationalTransferRequest) (*dto.TransferResult, error) {
	args := m.Called(ctx, requesterUserID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TransferResult), args.Error(1)
}

var _ portssvc.TransferSvcFacade = (*MockTransferService)(nil)

// --- Mock BillPayService ---

type MockBillPayService struct {
	mock.Mock
}

func (m *MockBillPayService) PayBill(ctx context.Context, requesterUserID string, req dto.BillPayRequest) (*dto.TransferResult, error) {
	args := m.Called(ctx, requesterUserID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TransferResult), args.Error(1)
}

var _ portssvc.BillPaySvcFacade = (*MockBillPayService)(nil)

// --- Test Suite ---

type TransferHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	transferService *MockTransferService
	billPayService  *MockBillPayService
	jwtSecret       string
}

func (suite *TransferHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.transferService = new(MockTransferService)
	suite.billPayService = new(MockBillPayService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // Skip swagger registration
	}
	serviceContainer := &portssvc.ServiceContainer{
		Transfer: suite.transferService,
		BillPay:  suite.billPayService,
	}
	handlers.RegisterRoutes(suite.router, cfg, serviceContainer)
}

func (suite *TransferHandlerTestSuite) generateTestToken(userID string) string {
	token, err := utils.GenerateJWT(userID, "CUSTOMER", suite.jwtSecret, time.Hour, "test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *TransferHandlerTestSuite) postJSON(path string, token string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TransferHandlerTestSuite) internalRequest() dto.InternalTransferRequest {
	return dto.InternalTransferRequest{
		FromAccount:      "acct-sender",
		RecipientAccount: "1000000002",
		Amount:           "100.00",
		Pin:              "1234",
	}
}

func (suite *TransferHandlerTestSuite) TestTransferInternal_Success() {
	userID := "user-sender"
	expected := &dto.TransferResult{
		Success:   true,
		Reference: "TRF_1700000000000_ABCD1234",
		Message:   "Transfer completed successfully!",
	}
	suite.transferService.On("TransferInternal",
		mock.Anything,
		userID,
		mock.AnythingOfType("dto.InternalTransferRequest"),
	).Return(expected, nil).Once()

	w := suite.postJSON("/api/v1/transfers/internal", suite.generateTestToken(userID), suite.internalRequest())

	suite.Equal(http.StatusOK, w.Code)

	var result dto.TransferResult
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &result))
	suite.True(result.Success)
	suite.Equal(expected.Reference, result.Reference)
	suite.transferService.AssertExpectations(suite.T())
}

func (suite *TransferHandlerTestSuite) TestTransferInternal_Unauthenticated() {
	w := suite.postJSON("/api/v1/transfers/internal", "", suite.internalRequest())

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.transferService.AssertNotCalled(suite.T(), "TransferInternal", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransferHandlerTestSuite) TestTransferInternal_MissingFields() {
	// Binding rejects the request before the service is reached.
	w := suite.postJSON("/api/v1/transfers/internal", suite.generateTestToken("user-sender"), map[string]string{
		"amount": "100.00",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.transferService.AssertNotCalled(suite.T(), "TransferInternal", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransferHandlerTestSuite) TestTransferInternal_ErrorStatusMapping() {
	cases := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"transfer blocked", services.ErrTransferBlocked, http.StatusForbidden},
		{"pin not set", services.ErrPinNotSet, http.StatusBadRequest},
		{"invalid pin", services.ErrInvalidPin, http.StatusForbidden},
		{"source account not found", services.ErrSourceAccountNotFound, http.StatusNotFound},
		{"recipient not found", services.ErrRecipientNotFound, http.StatusNotFound},
		{"same account", services.ErrSameAccount, http.StatusBadRequest},
		{"insufficient funds", apperrors.ErrInsufficientFunds, http.StatusBadRequest},
		{"validation failure", apperrors.ErrValidation, http.StatusBadRequest},
		{"infrastructure failure", apperrors.NewAppError(500, "db down", nil), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			suite.transferService.On("TransferInternal", mock.Anything, mock.Anything, mock.Anything).
				Return(nil, tc.serviceErr).Once()

			w := suite.postJSON("/api/v1/transfers/internal", suite.generateTestToken("user-sender"), suite.internalRequest())

			suite.Equal(tc.wantStatus, w.Code)

			var resp handlers.ErrorResponse
			suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
			suite.NotEmpty(resp.Error)
		})
	}
}

func (suite *TransferHandlerTestSuite) TestTransferUSBank_Success() {
	userID := "user-sender"
	expected := &dto.TransferResult{
		Success:   true,
		Reference: "USB_1700000000000_ABCD1234",
		Message:   "US Bank transfer initiated successfully!",
	}
	suite.transferService.On("TransferUSBank", mock.Anything, userID, mock.AnythingOfType("dto.USBankTransferRequest")).
		Return(expected, nil).Once()

	w := suite.postJSON("/api/v1/transfers/us-bank", suite.generateTestToken(userID), dto.USBankTransferRequest{
		FromAccountID:     "acct-sender",
		BankName:          "Chase Bank",
		AccountNumber:     "123456789012",
		AccountHolderName: "Carol White",
		Amount:            "250.00",
		Pin:               "1234",
	})

	suite.Equal(http.StatusOK, w.Code)
	suite.transferService.AssertExpectations(suite.T())
}

func (suite *TransferHandlerTestSuite) TestTransferInternational_Success() {
	userID := "user-sender"
	expected := &dto.TransferResult{
		Success:   true,
		Reference: "INTL_1700000000000_ABCD1234",
		Message:   "International transfer initiated successfully!",
	}
	suite.transferService.On("TransferInternational", mock.Anything, userID, mock.AnythingOfType("dto.InternationalTransferRequest")).
		Return(expected, nil).Once()

	w := suite.postJSON("/api/v1/transfers/international", suite.generateTestToken(userID), dto.InternationalTransferRequest{
		FromAccountID: "acct-sender",
		RecipientName: "Hans Mueller",
		BankName:      "Deutsche Bank",
		SwiftCode:     "DEUTDEFF",
		AccountNumber: "987654321012",
		Country:       "Germany",
		Currency:      "EUR",
		Amount:        "300.00",
		Pin:           "1234",
	})

	suite.Equal(http.StatusOK, w.Code)
	suite.transferService.AssertExpectations(suite.T())
}

func (suite *TransferHandlerTestSuite) TestPayBill_Success() {
	userID := "user-payer"
	expected := &dto.TransferResult{
		Success:   true,
		Reference: "BILL_1700000000000_ABCD1234",
		Message:   "Bill payment completed successfully!",
	}
	suite.billPayService.On("PayBill", mock.Anything, userID, mock.AnythingOfType("dto.BillPayRequest")).
		Return(expected, nil).Once()

	w := suite.postJSON("/api/v1/bill-payments", suite.generateTestToken(userID), dto.BillPayRequest{
		FromAccountID:       "acct-payer",
		BillerName:          "Belize Electricity Limited",
		BillerAccountNumber: "44021887",
		Amount:              "89.95",
		Pin:                 "1234",
	})

	suite.Equal(http.StatusOK, w.Code)
	suite.billPayService.AssertExpectations(suite.T())
}

func (suite *TransferHandlerTestSuite) TestPayBill_InsufficientFunds() {
	suite.billPayService.On("PayBill", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrInsufficientFunds).Once()

	w := suite.postJSON("/api/v1/bill-payments", suite.generateTestToken("user-payer"), dto.BillPayRequest{
		FromAccountID:       "acct-payer",
		BillerName:          "Belize Electricity Limited",
		BillerAccountNumber: "44021887",
		Amount:              "89.95",
		Pin:                 "1234",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestTransferHandler(t *testing.T) {
	suite.Run(t, new(TransferHandlerTestSuite))
}
