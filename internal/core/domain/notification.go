package domain

import "time"

// NotificationPriority orders notifications for display.
type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "LOW"
	PriorityNormal NotificationPriority = "NORMAL"
	PriorityHigh   NotificationPriority = "HIGH"
)

// Notification is a best-effort side-effect record informing a user about
// activity on their account. Its loss is not safety-critical.
type Notification struct {
	NotificationID string               `json:"notificationID"` // Primary Key (UUID)
	UserID         string               `json:"userID"`
	Type           string               `json:"type"`
	Message        string               `json:"message"`
	Priority       NotificationPriority `json:"priority"`
	Read           bool                 `json:"read"`
	CreatedAt      time.Time            `json:"createdAt"`
}
