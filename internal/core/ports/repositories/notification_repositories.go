package repositories

import (
	"context"

	"github.com/fairsplit/fairsplit/internal/core/domain"
)

// NotificationRepositoryFacade persists and reads user notifications.
type NotificationRepositoryFacade interface {
	// SaveNotification inserts a notification row.
	SaveNotification(ctx context.Context, n domain.Notification) error

	// ListForUser retrieves a user's notifications, newest first.
	ListForUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Notification, error)

	// MarkRead marks a notification as read.
	MarkRead(ctx context.Context, notificationID string, userID string) error
}
