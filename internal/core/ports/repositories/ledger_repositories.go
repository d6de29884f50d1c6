package repositories

import (
	"context"
	"time"

	"github.com/quocbank/qbank_backend/internal/core/domain"
)

// LedgerRepository owns the atomic transfer unit and the immutable
// transaction records it produces. Every mutation it performs is a single
// store transaction; no partial application is observable outside a commit.
type LedgerRepository interface {
	// ExecuteTransfer runs the full transfer unit: resolve the caller's
	// ACTIVE account and the destination under row locks, re-validate
	// balance and status, debit, credit, and record one SUCCESS
	// transaction. Business rule violations abort with zero mutation.
	ExecuteTransfer(ctx context.Context, cmd domain.TransferCommand, now time.Time) (*domain.TransferOutcome, error)

	// ListTransactionsByAccountID retrieves the account's transaction
	// history (sent and received), newest first, with cursor pagination.
	ListTransactionsByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}
