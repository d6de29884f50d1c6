package services

import (
	"context"

	"github.com/quocbank/qbank_backend/internal/core/domain"
)

// BillReaderSvc defines read operations for bill data
type BillReaderSvc interface {
	// ListProviders retrieves active providers, optionally filtered by category.
	ListProviders(ctx context.Context, category string) ([]domain.BillProvider, error)

	// ListPayments retrieves the caller's settled payments, newest first.
	ListPayments(ctx context.Context, userID string, limit int) ([]domain.BillPayment, error)

	// ListTemplates retrieves the caller's saved templates.
	ListTemplates(ctx context.Context, userID string) ([]domain.BillTemplate, error)
}

// BillWriterSvc defines write operations for bill data
type BillWriterSvc interface {
	// PayBill validates and runs one bill payment as a single atomic unit,
	// then dispatches a notification post-commit.
	PayBill(ctx context.Context, cmd domain.BillPaymentCommand) (*domain.BillPaymentOutcome, error)

	// CreateTemplate saves a provider/customer pairing for reuse.
	CreateTemplate(ctx context.Context, userID string, providerID string, customerCode string, templateName string) (*domain.BillTemplate, error)

	// DeleteTemplate removes one of the caller's templates.
	DeleteTemplate(ctx context.Context, userID string, templateID string) error
}

// BillSvcFacade combines all bill-related service interfaces
type BillSvcFacade interface {
	BillReaderSvc
	BillWriterSvc
}
