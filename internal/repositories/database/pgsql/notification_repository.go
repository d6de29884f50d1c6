package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quocbank/qbank_backend/internal/apperrors"
	"github.com/quocbank/qbank_backend/internal/core/domain"
	portsrepo "github.com/quocbank/qbank_backend/internal/core/ports/repositories"
	"github.com/quocbank/qbank_backend/internal/models"
)

type PgxNotificationRepository struct {
	pool *pgxpool.Pool
}

// newPgxNotificationRepository creates a new repository for the notification feed.
func newPgxNotificationRepository(pool *pgxpool.Pool) portsrepo.NotificationRepository {
	return &PgxNotificationRepository{pool: pool}
}

var _ portsrepo.NotificationRepository = (*PgxNotificationRepository)(nil)

const notificationColumns = `notification_id, user_id, type, title, message, data, is_read, created_at`

func toDomainNotification(m models.Notification) domain.Notification {
	return domain.Notification{
		NotificationID: m.NotificationID,
		UserID:         m.UserID,
		Type:           domain.NotificationType(m.Type),
		Title:          m.Title,
		Message:        m.Message,
		Data:           m.Data,
		IsRead:         m.IsRead,
		CreatedAt:      m.CreatedAt,
	}
}

// SaveNotification persists a new notification.
func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, n domain.Notification) error {
	query := `
		INSERT INTO notifications (` + notificationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		n.NotificationID, n.UserID, string(n.Type), n.Title, n.Message, n.Data, n.IsRead, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save notification %s: %w", n.NotificationID, err)
	}
	return nil
}

// ListNotificationsByUserID retrieves notifications, newest first.
func (r *PgxNotificationRepository) ListNotificationsByUserID(ctx context.Context, userID string, limit int, unreadOnly bool) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE user_id = $1`
	if unreadOnly {
		query += ` AND is_read = FALSE`
	}
	query += ` ORDER BY created_at DESC, notification_id DESC LIMIT $2;`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications for user %s: %w", userID, err)
	}
	defer rows.Close()

	notifications := []domain.Notification{}
	for rows.Next() {
		var m models.Notification
		if err := rows.Scan(&m.NotificationID, &m.UserID, &m.Type, &m.Title, &m.Message, &m.Data, &m.IsRead, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, toDomainNotification(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}
	return notifications, nil
}

// CountUnreadByUserID counts unread notifications for a user.
func (r *PgxNotificationRepository) CountUnreadByUserID(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE;`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications for user %s: %w", userID, err)
	}
	return count, nil
}

// FindNotificationByID retrieves one notification.
func (r *PgxNotificationRepository) FindNotificationByID(ctx context.Context, notificationID string) (*domain.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE notification_id = $1;`

	var m models.Notification
	err := r.pool.QueryRow(ctx, query, notificationID).Scan(
		&m.NotificationID, &m.UserID, &m.Type, &m.Title, &m.Message, &m.Data, &m.IsRead, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: notification %s", apperrors.ErrNotFound, notificationID)
		}
		return nil, fmt.Errorf("failed to find notification %s: %w", notificationID, err)
	}
	d := toDomainNotification(m)
	return &d, nil
}

// MarkNotificationRead marks one notification as read.
func (r *PgxNotificationRepository) MarkNotificationRead(ctx context.Context, notificationID string) error {
	cmdTag, err := r.pool.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE notification_id = $1;`, notificationID)
	if err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", notificationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: notification %s", apperrors.ErrNotFound, notificationID)
	}
	return nil
}

// MarkAllRead marks every unread notification of a user as read.
func (r *PgxNotificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	_, err := r.pool.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND is_read = FALSE;`, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notifications read for user %s: %w", userID, err)
	}
	return nil
}

// DeleteNotification removes one notification.
func (r *PgxNotificationRepository) DeleteNotification(ctx context.Context, notificationID string) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM notifications WHERE notification_id = $1;`, notificationID)
	if err != nil {
		return fmt.Errorf("failed to delete notification %s: %w", notificationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: notification %s", apperrors.ErrNotFound, notificationID)
	}
	return nil
}

// DeleteAllRead removes every read notification of a user.
func (r *PgxNotificationRepository) DeleteAllRead(ctx context.Context, userID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM notifications WHERE user_id = $1 AND is_read = TRUE;`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete read notifications for user %s: %w", userID, err)
	}
	return nil
}
