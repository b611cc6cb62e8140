package models

import "time"

// Notification is the database representation of a user notification.
type Notification struct {
	NotificationID string    `db:"notification_id"`
	UserID         string    `db:"user_id"`
	Type           string    `db:"type"`
	Message        string    `db:"message"`
	Priority       string    `db:"priority"`
	Read           bool      `db:"read"`
	CreatedAt      time.Time `db:"created_at"`
}
