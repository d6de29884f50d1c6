package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/quocbank/qbank_backend/internal/apperrors"
	"github.com/quocbank/qbank_backend/internal/core/domain"
	portsrepo "github.com/quocbank/qbank_backend/internal/core/ports/repositories"
	portssvc "github.com/quocbank/qbank_backend/internal/core/ports/services"
	"github.com/quocbank/qbank_backend/internal/middleware"
)

// notificationService stores and serves the in-app notification feed.
type notificationService struct {
	notificationRepo portsrepo.NotificationRepository
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(notificationRepo portsrepo.NotificationRepository) portssvc.NotificationSvcFacade {
	return &notificationService{notificationRepo: notificationRepo}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

// Dispatch records a notification for a user. It is called after the money
// movement has committed; a failure here is logged and deliberately swallowed
// so it can never fail the operation it describes.
func (s *notificationService) Dispatch(ctx context.Context, userID string, nType domain.NotificationType, title string, message string) {
	logger := middleware.GetLoggerFromCtx(ctx)

	n := domain.Notification{
		NotificationID: uuid.NewString(),
		UserID:         userID,
		Type:           nType,
		Title:          title,
		Message:        message,
		IsRead:         false,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.notificationRepo.SaveNotification(ctx, n); err != nil {
		logger.Error("Failed to save notification", slog.String("error", err.Error()), slog.String("user_id", userID), slog.String("type", string(nType)))
		return
	}
	logger.Debug("Notification dispatched", slog.String("notification_id", n.NotificationID), slog.String("user_id", userID))
}

// ListNotifications retrieves the caller's feed, newest first.
func (s *notificationService) ListNotifications(ctx context.Context, userID string, limit int, unreadOnly bool) ([]domain.Notification, error) {
	return s.notificationRepo.ListNotificationsByUserID(ctx, userID, limit, unreadOnly)
}

// CountUnread counts the caller's unread notifications.
func (s *notificationService) CountUnread(ctx context.Context, userID string) (int, error) {
	return s.notificationRepo.CountUnreadByUserID(ctx, userID)
}

// ownedNotification loads a notification and verifies the caller owns it.
func (s *notificationService) ownedNotification(ctx context.Context, userID, notificationID string) (*domain.Notification, error) {
	n, err := s.notificationRepo.FindNotificationByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if n.UserID != userID {
		return nil, fmt.Errorf("%w: notification %s", apperrors.ErrForbidden, notificationID)
	}
	return n, nil
}

// MarkRead marks one of the caller's notifications as read.
func (s *notificationService) MarkRead(ctx context.Context, userID string, notificationID string) error {
	if _, err := s.ownedNotification(ctx, userID, notificationID); err != nil {
		return err
	}
	return s.notificationRepo.MarkNotificationRead(ctx, notificationID)
}

// MarkAllRead marks all of the caller's notifications as read.
func (s *notificationService) MarkAllRead(ctx context.Context, userID string) error {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

// Delete removes one of the caller's notifications.
func (s *notificationService) Delete(ctx context.Context, userID string, notificationID string) error {
	if _, err := s.ownedNotification(ctx, userID, notificationID); err != nil {
		return err
	}
	return s.notificationRepo.DeleteNotification(ctx, notificationID)
}

// DeleteAllRead removes all of the caller's read notifications.
func (s *notificationService) DeleteAllRead(ctx context.Context, userID string) error {
	return s.notificationRepo.DeleteAllRead(ctx, userID)
}
