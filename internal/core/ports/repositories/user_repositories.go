package repositories

import (
	"context"

	"github.com/quocbank/qbank_backend/internal/core/domain"
)

// UserRepository reads account-owner identities. User records are created by
// the external identity provider, never by this engine.
type UserRepository interface {
	// FindUserByID retrieves a user by ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
}
