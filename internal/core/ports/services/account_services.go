package services

import (
	"context"

	"github.com/quocbank/qbank_backend/internal/core/domain"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetMyAccount retrieves the caller's ACTIVE payment account.
	GetMyAccount(ctx context.Context, userID string) (*domain.Account, error)

	// GetAccountSummary retrieves the caller's account together with the
	// aggregate balance of its open savings accounts.
	GetAccountSummary(ctx context.Context, userID string) (*domain.AccountSummary, error)

	// LookupRecipient resolves a destination account number to its owner's
	// display name for pre-transfer confirmation.
	LookupRecipient(ctx context.Context, userID string, accountNumber string) (*domain.Recipient, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
}
