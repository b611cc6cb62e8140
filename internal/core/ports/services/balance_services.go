package services

import (
	"context"

	"github.com/signordemola/belize-app/internal/dto"
)

// BalanceSvcFacade lets an administrator directly credit or debit a customer
// account, bypassing PIN and ownership checks but not the insufficient-funds
// invariant.
type BalanceSvcFacade interface {
	AdjustBalance(ctx context.Context, adminUserID string, req dto.BalanceAdjustmentRequest) (*dto.BalanceAdjustmentResult, error)
}
