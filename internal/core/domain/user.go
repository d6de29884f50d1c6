package domain

// User represents an account owner. Authentication is handled by the external
// identity provider; the engine only needs the display identity.
type User struct {
	UserID    string `json:"userID"`   // Primary Key (UUID)
	Username  string `json:"username"` // Unique login name
	FullName  string `json:"fullName"` // Display name used in transfer snapshots
	AvatarURL string `json:"avatarUrl"`
	AuditFields
}
