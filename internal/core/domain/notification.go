package domain

import "time"

// NotificationType categorizes a notification for the feed.
type NotificationType string

const (
	NotifyTransaction NotificationType = "TRANSACTION"
	NotifySavings     NotificationType = "SAVINGS"
	NotifyBill        NotificationType = "BILL"
	NotifySystem      NotificationType = "SYSTEM"
)

// Notification is a fire-and-forget side record delivered after commit.
// Creation failures are logged and never roll back the financial mutation
// they describe.
type Notification struct {
	NotificationID string           `json:"notificationID"` // Primary Key (UUID)
	UserID         string           `json:"userID"`
	Type           NotificationType `json:"type"`
	Title          string           `json:"title"`
	Message        string           `json:"message"`
	Data           string           `json:"data"` // optional JSON payload
	IsRead         bool             `json:"isRead"`
	CreatedAt      time.Time        `json:"createdAt"`
}
