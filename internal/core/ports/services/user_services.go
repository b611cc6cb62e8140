package services

import (
	"context"

	"github.com/signordemola/belize-app/internal/core/domain"
	"github.com/signordemola/belize-app/internal/dto"
)

// UserSvcFacade defines user management operations.
type UserSvcFacade interface {
	// RegisterUser creates the user and opens their account with zero balance.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	SetTransactionPin(ctx context.Context, userID string, pin string) error
	// SetTransferBlock toggles the administrative transfer block; the acting
	// user must have the ADMIN role.
	SetTransferBlock(ctx context.Context, adminUserID string, targetUserID string, blocked bool) error
}
