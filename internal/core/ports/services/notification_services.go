package services

import (
	"context"

	"github.com/quocbank/qbank_backend/internal/core/domain"
)

// NotificationDispatcherSvc is the sink used by the money-moving services.
// Dispatch runs post-commit and is fire-and-forget: failures are logged and
// never surface to the operation that triggered them.
type NotificationDispatcherSvc interface {
	Dispatch(ctx context.Context, userID string, nType domain.NotificationType, title string, message string)
}

// NotificationFeedSvc defines the user-facing feed operations
type NotificationFeedSvc interface {
	// ListNotifications retrieves the caller's feed, newest first.
	ListNotifications(ctx context.Context, userID string, limit int, unreadOnly bool) ([]domain.Notification, error)

	// CountUnread counts the caller's unread notifications.
	CountUnread(ctx context.Context, userID string) (int, error)

	// MarkRead marks one of the caller's notifications as read.
	MarkRead(ctx context.Context, userID string, notificationID string) error

	// MarkAllRead marks all of the caller's notifications as read.
	MarkAllRead(ctx context.Context, userID string) error

	// Delete removes one of the caller's notifications.
	Delete(ctx context.Context, userID string, notificationID string) error

	// DeleteAllRead removes all of the caller's read notifications.
	DeleteAllRead(ctx context.Context, userID string) error
}

// NotificationSvcFacade combines all notification-related service interfaces
type NotificationSvcFacade interface {
	NotificationDispatcherSvc
	NotificationFeedSvc
}
