package repositories

import (
	"context"
	"time"

	"github.com/signordemola/belize-app/internal/core/domain"
)

// UserRepositoryFacade defines persistence operations for users.
type UserRepositoryFacade interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateTransactionPin(ctx context.Context, userID string, pinHash string, updatedAt time.Time) error
	UpdateTransferBlock(ctx context.Context, userID string, blocked bool, updatedBy string, updatedAt time.Time) error
}
