package services

import (
	"context"

	"github.com/signordemola/belize-app/internal/core/domain"
)

// NotificationSvcFacade exposes the notification inbox.
type NotificationSvcFacade interface {
	ListNotifications(ctx context.Context, userID string, limit int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, userID string, notificationID string) error
	MarkAllRead(ctx context.Context, userID string) error
}
