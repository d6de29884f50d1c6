package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quocbank/qbank_backend/internal/apperrors"
	"github.com/quocbank/qbank_backend/internal/core/domain"
	portsrepo "github.com/quocbank/qbank_backend/internal/core/ports/repositories"
	"github.com/quocbank/qbank_backend/internal/models"
)

type PgxBillRepository struct {
	BaseRepository
	accounts portsrepo.AccountRepositoryFacade
}

// newPgxBillRepository creates a new repository for providers, payments and templates.
func newPgxBillRepository(pool *pgxpool.Pool, accounts portsrepo.AccountRepositoryFacade) portsrepo.BillRepository {
	return &PgxBillRepository{BaseRepository: BaseRepository{Pool: pool}, accounts: accounts}
}

var _ portsrepo.BillRepository = (*PgxBillRepository)(nil)

const providerColumns = `provider_id, name, category, logo, description, is_active, created_at, created_by, last_updated_at, last_updated_by`
const paymentColumns = `payment_id, account_id, provider_id, customer_code, amount, bill_month, description, status, transaction_id, paid_at, created_at, created_by, last_updated_at, last_updated_by`
const templateColumns = `template_id, account_id, provider_id, customer_code, name, created_at, created_by, last_updated_at, last_updated_by`

func toDomainProvider(m models.BillProvider) domain.BillProvider {
	return domain.BillProvider{
		ProviderID:  m.ProviderID,
		Name:        m.Name,
		Category:    m.Category,
		Logo:        m.Logo,
		Description: m.Description,
		IsActive:    m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func scanProvider(row pgx.Row) (*domain.BillProvider, error) {
	var m models.BillProvider
	err := row.Scan(
		&m.ProviderID,
		&m.Name,
		&m.Category,
		&m.Logo,
		&m.Description,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	d := toDomainProvider(m)
	return &d, nil
}

func toDomainPayment(m models.BillPayment) domain.BillPayment {
	return domain.BillPayment{
		PaymentID:     m.PaymentID,
		AccountID:     m.AccountID,
		ProviderID:    m.ProviderID,
		CustomerCode:  m.CustomerCode,
		Amount:        m.Amount,
		BillMonth:     m.BillMonth,
		Description:   m.Description,
		Status:        domain.BillPaymentStatus(m.Status),
		TransactionID: m.TransactionID,
		PaidAt:        m.PaidAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func toDomainTemplate(m models.BillTemplate) domain.BillTemplate {
	return domain.BillTemplate{
		TemplateID:   m.TemplateID,
		AccountID:    m.AccountID,
		ProviderID:   m.ProviderID,
		CustomerCode: m.CustomerCode,
		Name:         m.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// ListProviders retrieves active providers, optionally filtered by category.
func (r *PgxBillRepository) ListProviders(ctx context.Context, category string) ([]domain.BillProvider, error) {
	query := `SELECT ` + providerColumns + ` FROM bill_providers WHERE is_active = TRUE`
	args := []any{}
	if category != "" {
		query += ` AND category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bill providers: %w", err)
	}
	defer rows.Close()

	providers := []domain.BillProvider{}
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill provider row: %w", err)
		}
		providers = append(providers, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bill provider rows: %w", err)
	}
	return providers, nil
}

// FindProviderByID retrieves a provider regardless of active flag.
func (r *PgxBillRepository) FindProviderByID(ctx context.Context, providerID string) (*domain.BillProvider, error) {
	query := `SELECT ` + providerColumns + ` FROM bill_providers WHERE provider_id = $1;`

	p, err := scanProvider(r.Pool.QueryRow(ctx, query, providerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: bill provider %s", apperrors.ErrNotFound, providerID)
		}
		return nil, fmt.Errorf("failed to find bill provider %s: %w", providerID, err)
	}
	return p, nil
}

// ExecuteBillPayment runs the whole payment as one store transaction: lock the
// payer's row, re-validate, debit, append the self-referencing ledger record
// and the cross-linked payment record.
func (r *PgxBillRepository) ExecuteBillPayment(ctx context.Context, cmd domain.BillPaymentCommand, now time.Time) (*domain.BillPaymentOutcome, error) {
	provider, err := r.FindProviderByID(ctx, cmd.ProviderID)
	if err != nil {
		return nil, err
	}
	if !provider.IsActive {
		return nil, fmt.Errorf("%w: bill provider %s is inactive", apperrors.ErrConflict, provider.ProviderID)
	}

	main, err := r.accounts.FindActiveAccountByUserID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	main, err = r.accounts.FindAccountByIDForUpdate(ctx, tx, main.AccountID)
	if err != nil {
		return nil, err
	}
	if !main.IsActive() {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrAccountInactive, main.AccountID)
	}
	if main.Balance < cmd.Amount {
		return nil, fmt.Errorf("%w: balance %d, requested %d", apperrors.ErrInsufficientFunds, main.Balance, cmd.Amount)
	}

	if err := r.accounts.AdjustBalanceInTx(ctx, tx, main.AccountID, -cmd.Amount, cmd.UserID, now); err != nil {
		return nil, err
	}

	// The ledger record is self-referencing: for a bill payment the money
	// leaves the account without a counterparty account.
	txn := domain.Transaction{
		TransactionID: uuid.New().String(),
		FromAccountID: main.AccountID,
		ToAccountID:   main.AccountID,
		Amount:        cmd.Amount,
		Message:       fmt.Sprintf("Thanh toán %s - %s", provider.Name, cmd.CustomerCode),
		Status:        domain.TransactionSuccess,
		CreatedAt:     now,
	}
	if err := insertTransaction(ctx, tx, txn); err != nil {
		return nil, err
	}

	paidAt := now
	payment := domain.BillPayment{
		PaymentID:     uuid.New().String(),
		AccountID:     main.AccountID,
		ProviderID:    provider.ProviderID,
		CustomerCode:  cmd.CustomerCode,
		Amount:        cmd.Amount,
		BillMonth:     cmd.BillMonth,
		Description:   cmd.Description,
		Status:        domain.BillPaymentSuccess,
		TransactionID: &txn.TransactionID,
		PaidAt:        &paidAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     cmd.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: cmd.UserID,
		},
	}

	insert := `
		INSERT INTO bill_payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err = tx.Exec(ctx, insert,
		payment.PaymentID, payment.AccountID, payment.ProviderID, payment.CustomerCode,
		payment.Amount, payment.BillMonth, payment.Description, string(payment.Status),
		payment.TransactionID, payment.PaidAt,
		payment.CreatedAt, payment.CreatedBy, payment.LastUpdatedAt, payment.LastUpdatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert bill payment %s: %w", payment.PaymentID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	main.Balance -= cmd.Amount
	return &domain.BillPaymentOutcome{
		Payment:     payment,
		Transaction: txn,
		Provider:    *provider,
		Account:     *main,
	}, nil
}

// ListPaymentsByAccountID retrieves settled payments, newest first. Templates
// never appear here; they live in their own table.
func (r *PgxBillRepository) ListPaymentsByAccountID(ctx context.Context, accountID string, limit int) ([]domain.BillPayment, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT ` + paymentColumns + `
		FROM bill_payments
		WHERE account_id = $1
		ORDER BY created_at DESC, payment_id DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query bill payments for account %s: %w", accountID, err)
	}
	defer rows.Close()

	payments := []domain.BillPayment{}
	for rows.Next() {
		var m models.BillPayment
		err := rows.Scan(
			&m.PaymentID, &m.AccountID, &m.ProviderID, &m.CustomerCode,
			&m.Amount, &m.BillMonth, &m.Description, &m.Status,
			&m.TransactionID, &m.PaidAt,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill payment row: %w", err)
		}
		payments = append(payments, toDomainPayment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bill payment rows: %w", err)
	}
	return payments, nil
}

// SaveTemplate persists a saved provider/customer pairing.
func (r *PgxBillRepository) SaveTemplate(ctx context.Context, template domain.BillTemplate) error {
	query := `
		INSERT INTO bill_templates (` + templateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		template.TemplateID, template.AccountID, template.ProviderID, template.CustomerCode, template.Name,
		template.CreatedAt, template.CreatedBy, template.LastUpdatedAt, template.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save bill template %s: %w", template.TemplateID, err)
	}
	return nil
}

// ListTemplatesByAccountID retrieves saved templates, newest first.
func (r *PgxBillRepository) ListTemplatesByAccountID(ctx context.Context, accountID string) ([]domain.BillTemplate, error) {
	query := `
		SELECT ` + templateColumns + `
		FROM bill_templates
		WHERE account_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bill templates for account %s: %w", accountID, err)
	}
	defer rows.Close()

	templates := []domain.BillTemplate{}
	for rows.Next() {
		var m models.BillTemplate
		err := rows.Scan(
			&m.TemplateID, &m.AccountID, &m.ProviderID, &m.CustomerCode, &m.Name,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill template row: %w", err)
		}
		templates = append(templates, toDomainTemplate(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bill template rows: %w", err)
	}
	return templates, nil
}

// FindTemplateByID retrieves one template.
func (r *PgxBillRepository) FindTemplateByID(ctx context.Context, templateID string) (*domain.BillTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM bill_templates WHERE template_id = $1;`

	var m models.BillTemplate
	err := r.Pool.QueryRow(ctx, query, templateID).Scan(
		&m.TemplateID, &m.AccountID, &m.ProviderID, &m.CustomerCode, &m.Name,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: bill template %s", apperrors.ErrNotFound, templateID)
		}
		return nil, fmt.Errorf("failed to find bill template %s: %w", templateID, err)
	}
	d := toDomainTemplate(m)
	return &d, nil
}

// DeleteTemplate removes a template.
func (r *PgxBillRepository) DeleteTemplate(ctx context.Context, templateID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM bill_templates WHERE template_id = $1;`, templateID)
	if err != nil {
		return fmt.Errorf("failed to delete bill template %s: %w", templateID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: bill template %s", apperrors.ErrNotFound, templateID)
	}
	return nil
}
