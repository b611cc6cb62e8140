package mapping

import (
	"github.com/signordemola/belize-app/internal/core/domain"
	"github.com/signordemola/belize-app/internal/models"
)

// ToModelUser converts a domain.User to its DB representation.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:            d.UserID,
		Username:          d.Username,
		FirstName:         d.FirstName,
		LastName:          d.LastName,
		Email:             d.Email,
		Role:              models.UserRole(d.Role),
		PasswordHash:      d.PasswordHash,
		TransactionPin:    d.TransactionPin,
		IsTransferBlocked: d.IsTransferBlocked,
		AuditFields:       ToModelAuditFields(d.AuditFields),
		DeletedAt:         d.DeletedAt,
	}
}

// ToDomainUser converts a DB user row to the domain representation.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:            m.UserID,
		Username:          m.Username,
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		Email:             m.Email,
		Role:              domain.UserRole(m.Role),
		PasswordHash:      m.PasswordHash,
		TransactionPin:    m.TransactionPin,
		IsTransferBlocked: m.IsTransferBlocked,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
		DeletedAt:         m.DeletedAt,
	}
}
