package dto

import (
	"time"

	"github.com/quocbank/qbank_backend/internal/core/domain"
)

// ListNotificationsParams defines query parameters for the feed.
type ListNotificationsParams struct {
	Limit      int  `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	UnreadOnly bool `form:"unreadOnly"`
}

// NotificationResponse defines the data returned for one notification.
type NotificationResponse struct {
	NotificationID string                  `json:"notificationID"`
	Type           domain.NotificationType `json:"type"`
	Title          string                  `json:"title"`
	Message        string                  `json:"message"`
	IsRead         bool                    `json:"isRead"`
	CreatedAt      time.Time               `json:"createdAt"`
}

// ToListNotificationsResponse converts notifications to their DTOs.
func ToListNotificationsResponse(notifications []domain.Notification) []NotificationResponse {
	res := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		res[i] = NotificationResponse{
			NotificationID: n.NotificationID,
			Type:           n.Type,
			Title:          n.Title,
			Message:        n.Message,
			IsRead:         n.IsRead,
			CreatedAt:      n.CreatedAt,
		}
	}
	return res
}

// UnreadCountResponse reports the caller's unread notification count.
type UnreadCountResponse struct {
	Count int `json:"count"`
}
