package repositories

import (
	"context"

	"github.com/signordemola/belize-app/internal/core/domain"
)

// NotificationRepositoryFacade persists user notifications. Writes are a
// best-effort side channel: callers log failures and continue.
type NotificationRepositoryFacade interface {
	SaveNotifications(ctx context.Context, notifications []domain.Notification) error
	ListNotificationsByUser(ctx context.Context, userID string, limit int) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, userID string, notificationID string) error
	MarkAllNotificationsRead(ctx context.Context, userID string) error
}
