package repositories

import (
	"context"
	"time"

	"github.com/quocbank/qbank_backend/internal/core/domain"
)

// BillRepository covers providers, bill payments and saved templates.
type BillRepository interface {
	// ListProviders retrieves active providers, optionally filtered by category.
	ListProviders(ctx context.Context, category string) ([]domain.BillProvider, error)

	// FindProviderByID retrieves a provider regardless of active flag.
	FindProviderByID(ctx context.Context, providerID string) (*domain.BillProvider, error)

	// ExecuteBillPayment runs the full payment unit: resolve provider and
	// the caller's ACTIVE account under lock, re-validate balance, debit,
	// create the BillPayment and its self-referencing transaction, and
	// cross-link the two.
	ExecuteBillPayment(ctx context.Context, cmd domain.BillPaymentCommand, now time.Time) (*domain.BillPaymentOutcome, error)

	// ListPaymentsByAccountID retrieves settled payments, newest first.
	ListPaymentsByAccountID(ctx context.Context, accountID string, limit int) ([]domain.BillPayment, error)

	// SaveTemplate persists a saved provider/customer pairing.
	SaveTemplate(ctx context.Context, template domain.BillTemplate) error

	// ListTemplatesByAccountID retrieves saved templates, newest first.
	ListTemplatesByAccountID(ctx context.Context, accountID string) ([]domain.BillTemplate, error)

	// FindTemplateByID retrieves one template.
	FindTemplateByID(ctx context.Context, templateID string) (*domain.BillTemplate, error)

	// DeleteTemplate removes a template.
	DeleteTemplate(ctx context.Context, templateID string) error
}
