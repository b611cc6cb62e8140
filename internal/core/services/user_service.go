package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/signordemola/belize-app/internal/apperrors"
	"github.com/signordemola/belize-app/internal/core/domain"
	portsrepo "github.com/signordemola/belize-app/internal/core/ports/repositories"
	portssvc "github.com/signordemola/belize-app/internal/core/ports/services"
	"github.com/signordemola/belize-app/internal/dto"
	"github.com/signordemola/belize-app/internal/middleware"
	"github.com/signordemola/belize-app/internal/utils"
)

var ErrUsernameTaken = errors.New("username is already taken")

// userService provides user management operations.
type userService struct {
	userRepo   portsrepo.UserRepositoryFacade
	accountSvc portssvc.AccountSvcFacade
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, accountSvc portssvc.AccountSvcFacade) portssvc.UserSvcFacade {
	return &userService{
		userRepo:   userRepo,
		accountSvc: accountSvc,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// RegisterUser creates a customer and opens their account with zero balance.
func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !nameRegex.MatchString(req.FirstName) {
		return nil, newFieldError("firstName", "First name must be 2-100 letters.")
	}
	if !nameRegex.MatchString(req.LastName) {
		return nil, newFieldError("lastName", "Last name must be 2-100 letters.")
	}

	if _, err := s.userRepo.FindUserByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Role:         domain.RoleCustomer,
		PasswordHash: passwordHash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	user.CreatedBy = user.UserID
	user.LastUpdatedBy = user.UserID

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		logger.Error("Failed to save user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	if _, err := s.accountSvc.OpenAccount(ctx, user.UserID, req.AccountType); err != nil {
		// The user row exists but has no account yet; surface the failure so
		// the caller retries registration support-side.
		logger.Error("Failed to open account for new user",
			slog.String("user_id", user.UserID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to open account: %w", err)
	}

	logger.Info("User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, userID)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// SetTransactionPin configures or replaces the user's transaction PIN.
func (s *userService) SetTransactionPin(ctx context.Context, userID string, pin string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validatePin(pin); err != nil {
		return err
	}

	pinHash, err := utils.HashPin(pin)
	if err != nil {
		return fmt.Errorf("failed to hash PIN: %w", err)
	}

	if err := s.userRepo.UpdateTransactionPin(ctx, userID, pinHash, time.Now().UTC()); err != nil {
		logger.Error("Failed to update transaction PIN", slog.String("error", err.Error()))
		return fmt.Errorf("failed to update transaction PIN: %w", err)
	}

	logger.Info("Transaction PIN updated", slog.String("user_id", userID))
	return nil
}

// SetTransferBlock toggles the administrative transfer block. The acting
// user's role is re-checked against the database.
func (s *userService) SetTransferBlock(ctx context.Context, adminUserID string, targetUserID string, blocked bool) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	admin, err := s.userRepo.FindUserByID(ctx, adminUserID)
	if err != nil {
		return fmt.Errorf("failed to look up acting user: %w", err)
	}
	if admin.Role != domain.RoleAdmin {
		return fmt.Errorf("%w: transfer blocks require the ADMIN role", apperrors.ErrForbidden)
	}

	if _, err := s.userRepo.FindUserByID(ctx, targetUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: user %s", apperrors.ErrNotFound, targetUserID)
		}
		return fmt.Errorf("failed to look up target user: %w", err)
	}

	if err := s.userRepo.UpdateTransferBlock(ctx, targetUserID, blocked, adminUserID, time.Now().UTC()); err != nil {
		logger.Error("Failed to update transfer block", slog.String("error", err.Error()))
		return fmt.Errorf("failed to update transfer block: %w", err)
	}

	logger.Info("Transfer block updated",
		slog.String("target_user_id", targetUserID),
		slog.Bool("blocked", blocked),
	)
	return nil
}
