package dto

import (
	"time"

	"github.com/signordemola/belize-app/internal/core/domain"
)

// NotificationResponse defines the data returned for a notification.
type NotificationResponse struct {
	NotificationID string    `json:"notificationID"`
	Type           string    `json:"type"`
	Message        string    `json:"message"`
	Priority       string    `json:"priority"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToNotificationResponses converts a slice of domain notifications.
func ToNotificationResponses(ns []domain.Notification) []NotificationResponse {
	out := make([]NotificationResponse, len(ns))
	for i, n := range ns {
		out[i] = NotificationResponse{
			NotificationID: n.NotificationID,
			Type:           n.Type,
			Message:        n.Message,
			Priority:       string(n.Priority),
			Read:           n.Read,
			CreatedAt:      n.CreatedAt,
		}
	}
	return out
}
