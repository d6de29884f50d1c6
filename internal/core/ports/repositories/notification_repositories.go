package repositories

import (
	"context"

	"github.com/quocbank/qbank_backend/internal/core/domain"
)

// NotificationRepository stores the in-app notification feed.
type NotificationRepository interface {
	// SaveNotification persists a new notification.
	SaveNotification(ctx context.Context, n domain.Notification) error

	// ListNotificationsByUserID retrieves notifications, newest first.
	ListNotificationsByUserID(ctx context.Context, userID string, limit int, unreadOnly bool) ([]domain.Notification, error)

	// CountUnreadByUserID counts unread notifications for a user.
	CountUnreadByUserID(ctx context.Context, userID string) (int, error)

	// FindNotificationByID retrieves one notification.
	FindNotificationByID(ctx context.Context, notificationID string) (*domain.Notification, error)

	// MarkNotificationRead marks one notification as read.
	MarkNotificationRead(ctx context.Context, notificationID string) error

	// MarkAllRead marks every unread notification of a user as read.
	MarkAllRead(ctx context.Context, userID string) error

	// DeleteNotification removes one notification.
	DeleteNotification(ctx context.Context, notificationID string) error

	// DeleteAllRead removes every read notification of a user.
	DeleteAllRead(ctx context.Context, userID string) error
}
