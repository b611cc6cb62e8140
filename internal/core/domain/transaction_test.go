package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/signordemola/belize-app/internal/core/domain"
)

func TestTransactionType_IsCredit(t *testing.T) {
	tests := []struct {
		txType domain.TransactionType
		want   bool
	}{
		{domain.Deposit, true},
		{domain.MobileDeposit, true},
		{domain.Withdrawal, false},
		{domain.TransferBelize, false},
		{domain.TransferUSBank, false},
		{domain.TransferInternational, false},
		{domain.BillPayment, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.txType), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.txType.IsCredit())
		})
	}
}

func TestAccount_IsActive(t *testing.T) {
	tests := []struct {
		name   string
		status domain.AccountStatus
		want   bool
	}{
		{"active account", domain.AccountActive, true},
		{"frozen account", domain.AccountFrozen, false},
		{"closed account", domain.AccountClosed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := domain.Account{Status: tt.status}
			assert.Equal(t, tt.want, account.IsActive())
		})
	}
}

func TestUser_FullName(t *testing.T) {
	user := domain.User{FirstName: "Alice", LastName: "Smith"}
	assert.Equal(t, "Alice Smith", user.FullName())
}
