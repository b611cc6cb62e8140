package mapping

import (
	"github.com/signordemola/belize-app/internal/core/domain"
	"github.com/signordemola/belize-app/internal/models"
)

// ToModelTransaction converts a domain.Transaction to its DB representation.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:    d.TransactionID,
		AccountID:        d.AccountID,
		UserID:           d.UserID,
		Amount:           d.Amount,
		Type:             models.TransactionType(d.Type),
		Status:           models.TransactionStatus(d.Status),
		Reference:        d.Reference,
		Description:      d.Description,
		Category:         d.Category,
		RecipientBank:    d.RecipientBank,
		RecipientAccount: d.RecipientAccount,
		SwiftCode:        d.SwiftCode,
		PinVerified:      d.PinVerified,
		IsFraudSuspected: d.IsFraudSuspected,
		Date:             d.Date,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a DB transaction row to the domain representation.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:    m.TransactionID,
		AccountID:        m.AccountID,
		UserID:           m.UserID,
		Amount:           m.Amount,
		Type:             domain.TransactionType(m.Type),
		Status:           domain.TransactionStatus(m.Status),
		Reference:        m.Reference,
		Description:      m.Description,
		Category:         m.Category,
		RecipientBank:    m.RecipientBank,
		RecipientAccount: m.RecipientAccount,
		SwiftCode:        m.SwiftCode,
		PinVerified:      m.PinVerified,
		IsFraudSuspected: m.IsFraudSuspected,
		Date:             m.Date,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactions converts a slice of DB transaction rows.
func ToDomainTransactions(ms []models.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		out[i] = ToDomainTransaction(m)
	}
	return out
}
