package dto

import (
	"github.com/signordemola/belize-app/internal/core/domain"
)

// LoginRequest carries the credentials for the login endpoint.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the signed JWT on successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// RegisterUserRequest creates a customer and opens their account.
type RegisterUserRequest struct {
	Username    string             `json:"username" binding:"required,min=6,max=50"`
	Password    string             `json:"password" binding:"required,min=8,max=50"`
	FirstName   string             `json:"firstName" binding:"required,min=2,max=100"`
	LastName    string             `json:"lastName" binding:"required,min=2,max=100"`
	Email       string             `json:"email" binding:"required,email"`
	AccountType domain.AccountType `json:"accountType" binding:"required,oneof=CHECKING SAVINGS FIXED_DEPOSIT PRESTIGE BUSINESS INVESTMENT"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID            string          `json:"userID"`
	Username          string          `json:"username"`
	FirstName         string          `json:"firstName"`
	LastName          string          `json:"lastName"`
	Email             string          `json:"email"`
	Role              domain.UserRole `json:"role"`
	IsTransferBlocked bool            `json:"isTransferBlocked"`
}

// ToUserResponse converts a domain.User to UserResponse.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:            u.UserID,
		Username:          u.Username,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		Email:             u.Email,
		Role:              u.Role,
		IsTransferBlocked: u.IsTransferBlocked,
	}
}

// SetPinRequest configures or replaces the transaction PIN.
type SetPinRequest struct {
	Pin string `json:"pin" binding:"required"`
}

// TransferBlockRequest toggles the administrative transfer block on a user.
type TransferBlockRequest struct {
	Blocked bool `json:"blocked"`
}
