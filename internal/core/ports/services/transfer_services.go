package services

import (
	"context"

	"github.com/quocbank/qbank_backend/internal/core/domain"
)

// TransferWriterSvc defines the money-moving transfer operation
type TransferWriterSvc interface {
	// ExecuteTransfer validates and runs one peer-to-peer transfer as a
	// single atomic unit, then dispatches notifications post-commit.
	ExecuteTransfer(ctx context.Context, cmd domain.TransferCommand) (*domain.TransferOutcome, error)
}

// TransferReaderSvc defines read operations for transaction history
type TransferReaderSvc interface {
	// ListTransactions retrieves the caller's transaction history, newest
	// first, with cursor pagination.
	ListTransactions(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransferSvcFacade combines all transfer-related service interfaces
type TransferSvcFacade interface {
	TransferWriterSvc
	TransferReaderSvc
}
