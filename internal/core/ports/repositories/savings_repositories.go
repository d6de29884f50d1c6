package repositories

import (
	"context"
	"time"

	"github.com/quocbank/qbank_backend/internal/core/domain"
)

// SavingsRepository owns the savings sub-ledger and its atomic units.
type SavingsRepository interface {
	// OpenSavingsAccount runs the creation unit: resolve the caller's
	// ACTIVE account under lock, re-validate balance, debit the principal
	// and create the SavingsAccount with the rate snapshotted from the
	// current tenor table.
	OpenSavingsAccount(ctx context.Context, cmd domain.OpenSavingsCommand, now time.Time) (*domain.SavingsAccount, error)

	// WithdrawFromSavings runs the withdrawal unit: lock the savings row
	// and the main account row, verify ownership and ACTIVE status, settle
	// principal/interest/penalty and credit the main account. An emptied
	// savings account transitions to CLOSED.
	WithdrawFromSavings(ctx context.Context, cmd domain.SavingsWithdrawalCommand, now time.Time) (*domain.SavingsWithdrawalOutcome, error)

	// FindSavingsByID retrieves one savings account.
	FindSavingsByID(ctx context.Context, savingsID string) (*domain.SavingsAccount, error)

	// ListSavingsByAccountID retrieves open savings accounts, newest first.
	ListSavingsByAccountID(ctx context.Context, accountID string) ([]domain.SavingsAccount, error)

	// TotalActiveSavingsBalance sums balances of the account's ACTIVE savings.
	TotalActiveSavingsBalance(ctx context.Context, accountID string) (int64, error)
}
