package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/quocbank/qbank_backend/internal/core/domain"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindActiveAccountByUserID retrieves the caller's ACTIVE account.
	FindActiveAccountByUserID(ctx context.Context, userID string) (*domain.Account, error)

	// FindActiveAccountByNumber retrieves an ACTIVE account by its 10-digit number.
	FindActiveAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error
}

// AccountTransactionSupport defines the ledger primitives available inside a
// store transaction. These are the only operations that mutate balance.
type AccountTransactionSupport interface {
	// FindAccountByIDForUpdate selects one account and locks its row.
	FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error)

	// AdjustBalanceInTx applies a signed delta to an account balance. The
	// caller must hold the row lock; a negative result is rejected by the
	// store constraint.
	AdjustBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, delta int64, userID string, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}
