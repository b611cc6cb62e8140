package mapping

import (
	"github.com/signordemola/belize-app/internal/core/domain"
	"github.com/signordemola/belize-app/internal/models"
)

// ToModelNotification converts a domain.Notification to its DB representation.
func ToModelNotification(d domain.Notification) models.Notification {
	return models.Notification{
		NotificationID: d.NotificationID,
		UserID:         d.UserID,
		Type:           d.Type,
		Message:        d.Message,
		Priority:       string(d.Priority),
		Read:           d.Read,
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainNotification converts a DB notification row to the domain representation.
func ToDomainNotification(m models.Notification) domain.Notification {
	return domain.Notification{
		NotificationID: m.NotificationID,
		UserID:         m.UserID,
		Type:           m.Type,
		Message:        m.Message,
		Priority:       domain.NotificationPriority(m.Priority),
		Read:           m.Read,
		CreatedAt:      m.CreatedAt,
	}
}
