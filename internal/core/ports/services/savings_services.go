package services

import (
	"context"

	"github.com/quocbank/qbank_backend/internal/core/domain"
)

// SavingsReaderSvc defines read operations for savings data
type SavingsReaderSvc interface {
	// ListRates returns the current tenor rate table.
	ListRates(ctx context.Context) []domain.SavingsRate

	// ListSavings retrieves the caller's open savings accounts with
	// to-date interest projections.
	ListSavings(ctx context.Context, userID string) ([]domain.SavingsProjection, error)

	// GetSavings retrieves one of the caller's savings accounts with its
	// to-date projection.
	GetSavings(ctx context.Context, userID string, savingsID string) (*domain.SavingsProjection, error)
}

// SavingsWriterSvc defines the money-moving savings operations
type SavingsWriterSvc interface {
	// OpenSavings validates and runs the open unit: debit the main account
	// and create the savings account with a snapshotted rate.
	OpenSavings(ctx context.Context, cmd domain.OpenSavingsCommand) (*domain.SavingsAccount, error)

	// Withdraw validates and runs the withdrawal unit, settling principal,
	// interest and any early-withdrawal penalty.
	Withdraw(ctx context.Context, cmd domain.SavingsWithdrawalCommand) (*domain.SavingsWithdrawalOutcome, error)
}

// SavingsSvcFacade combines all savings-related service interfaces
type SavingsSvcFacade interface {
	SavingsReaderSvc
	SavingsWriterSvc
}
