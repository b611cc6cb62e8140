package mapping

import (
	"github.com/signordemola/belize-app/internal/core/domain"
	"github.com/signordemola/belize-app/internal/models"
)

// ToModelAccount converts a domain.Account to its DB representation.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:     d.AccountID,
		UserID:        d.UserID,
		AccountNumber: d.AccountNumber,
		RoutingNumber: d.RoutingNumber,
		AccountType:   models.AccountType(d.AccountType),
		Status:        models.AccountStatus(d.Status),
		Balance:       d.Balance,
		OpenedAt:      d.OpenedAt,
		ClosedAt:      d.ClosedAt,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a DB account row to the domain representation.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:     m.AccountID,
		UserID:        m.UserID,
		AccountNumber: m.AccountNumber,
		RoutingNumber: m.RoutingNumber,
		AccountType:   domain.AccountType(m.AccountType),
		Status:        domain.AccountStatus(m.Status),
		Balance:       m.Balance,
		OpenedAt:      m.OpenedAt,
		ClosedAt:      m.ClosedAt,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
