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

type PgxSavingsRepository struct {
	BaseRepository
	accounts portsrepo.AccountRepositoryFacade
}

// newPgxSavingsRepository creates a new repository owning the savings units.
func newPgxSavingsRepository(pool *pgxpool.Pool, accounts portsrepo.AccountRepositoryFacade) portsrepo.SavingsRepository {
	return &PgxSavingsRepository{BaseRepository: BaseRepository{Pool: pool}, accounts: accounts}
}

var _ portsrepo.SavingsRepository = (*PgxSavingsRepository)(nil)

const savingsColumns = `savings_id, account_id, savings_type, balance, rate_percent, start_date, maturity_date, status, auto_renew, created_at, created_by, last_updated_at, last_updated_by`

func toDomainSavings(m models.SavingsAccount) domain.SavingsAccount {
	return domain.SavingsAccount{
		SavingsID:    m.SavingsID,
		AccountID:    m.AccountID,
		SavingsType:  domain.SavingsType(m.SavingsType),
		Balance:      m.Balance,
		RatePercent:  m.RatePercent,
		StartDate:    m.StartDate,
		MaturityDate: m.MaturityDate,
		Status:       domain.SavingsStatus(m.Status),
		AutoRenew:    m.AutoRenew,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func scanSavings(row pgx.Row) (*domain.SavingsAccount, error) {
	var m models.SavingsAccount
	err := row.Scan(
		&m.SavingsID,
		&m.AccountID,
		&m.SavingsType,
		&m.Balance,
		&m.RatePercent,
		&m.StartDate,
		&m.MaturityDate,
		&m.Status,
		&m.AutoRenew,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	d := toDomainSavings(m)
	return &d, nil
}

// OpenSavingsAccount debits the principal from the main account and creates
// the savings account in one store transaction. The annual rate is snapshotted
// from the current tenor table at this moment.
func (r *PgxSavingsRepository) OpenSavingsAccount(ctx context.Context, cmd domain.OpenSavingsCommand, now time.Time) (*domain.SavingsAccount, error) {
	rate, ok := domain.InterestRateFor(cmd.SavingsType)
	if !ok {
		return nil, fmt.Errorf("%w: unknown savings type %s", apperrors.ErrValidation, cmd.SavingsType)
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

	sa := domain.SavingsAccount{
		SavingsID:    uuid.New().String(),
		AccountID:    main.AccountID,
		SavingsType:  cmd.SavingsType,
		Balance:      cmd.Amount,
		RatePercent:  rate,
		StartDate:    now,
		MaturityDate: domain.MaturityDateFor(now, cmd.SavingsType),
		Status:       domain.SavingsActive,
		AutoRenew:    cmd.AutoRenew,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     cmd.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: cmd.UserID,
		},
	}

	query := `
		INSERT INTO savings_accounts (` + savingsColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, query,
		sa.SavingsID, sa.AccountID, string(sa.SavingsType), sa.Balance, sa.RatePercent,
		sa.StartDate, sa.MaturityDate, string(sa.Status), sa.AutoRenew,
		sa.CreatedAt, sa.CreatedBy, sa.LastUpdatedAt, sa.LastUpdatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert savings account %s: %w", sa.SavingsID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &sa, nil
}

// WithdrawFromSavings settles a withdrawal in one store transaction: lock the
// savings row then the main account row, verify ownership and status, compute
// the settlement and move principal plus realized interest back to the main
// account. An emptied savings account transitions to CLOSED.
func (r *PgxSavingsRepository) WithdrawFromSavings(ctx context.Context, cmd domain.SavingsWithdrawalCommand, now time.Time) (*domain.SavingsWithdrawalOutcome, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	query := `SELECT ` + savingsColumns + ` FROM savings_accounts WHERE savings_id = $1 FOR UPDATE;`
	sa, err := scanSavings(tx.QueryRow(ctx, query, cmd.SavingsID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: savings account %s", apperrors.ErrNotFound, cmd.SavingsID)
		}
		return nil, fmt.Errorf("failed to lock savings account %s: %w", cmd.SavingsID, err)
	}

	main, err := r.accounts.FindAccountByIDForUpdate(ctx, tx, sa.AccountID)
	if err != nil {
		return nil, err
	}
	if main.UserID != cmd.UserID {
		return nil, fmt.Errorf("%w: savings account %s", apperrors.ErrForbidden, cmd.SavingsID)
	}
	if sa.Status != domain.SavingsActive {
		return nil, fmt.Errorf("%w: savings account %s is %s", apperrors.ErrConflict, sa.SavingsID, sa.Status)
	}
	if !main.IsActive() {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrAccountInactive, main.AccountID)
	}

	settlement, err := domain.SettleWithdrawal(*sa, cmd.Amount, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	sa.Balance -= settlement.Principal
	if settlement.Closes {
		sa.Status = domain.SavingsClosed
	}
	sa.LastUpdatedAt = now
	sa.LastUpdatedBy = cmd.UserID

	update := `
		UPDATE savings_accounts
		SET balance = $2, status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE savings_id = $1;
	`
	if _, err := tx.Exec(ctx, update, sa.SavingsID, sa.Balance, string(sa.Status), now, cmd.UserID); err != nil {
		return nil, fmt.Errorf("failed to update savings account %s: %w", sa.SavingsID, err)
	}

	if err := r.accounts.AdjustBalanceInTx(ctx, tx, main.AccountID, settlement.Principal+settlement.Interest, cmd.UserID, now); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	main.Balance += settlement.Principal + settlement.Interest
	return &domain.SavingsWithdrawalOutcome{
		Settlement: settlement,
		Savings:    *sa,
		Account:    *main,
	}, nil
}

// FindSavingsByID retrieves one savings account.
func (r *PgxSavingsRepository) FindSavingsByID(ctx context.Context, savingsID string) (*domain.SavingsAccount, error) {
	query := `SELECT ` + savingsColumns + ` FROM savings_accounts WHERE savings_id = $1;`

	sa, err := scanSavings(r.Pool.QueryRow(ctx, query, savingsID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: savings account %s", apperrors.ErrNotFound, savingsID)
		}
		return nil, fmt.Errorf("failed to find savings account %s: %w", savingsID, err)
	}
	return sa, nil
}

// ListSavingsByAccountID retrieves the account's open savings, newest first.
func (r *PgxSavingsRepository) ListSavingsByAccountID(ctx context.Context, accountID string) ([]domain.SavingsAccount, error) {
	query := `
		SELECT ` + savingsColumns + `
		FROM savings_accounts
		WHERE account_id = $1 AND status = $2
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, string(domain.SavingsActive))
	if err != nil {
		return nil, fmt.Errorf("failed to query savings for account %s: %w", accountID, err)
	}
	defer rows.Close()

	list := []domain.SavingsAccount{}
	for rows.Next() {
		sa, err := scanSavings(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan savings row: %w", err)
		}
		list = append(list, *sa)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating savings rows: %w", err)
	}
	return list, nil
}

// TotalActiveSavingsBalance sums balances of the account's ACTIVE savings.
func (r *PgxSavingsRepository) TotalActiveSavingsBalance(ctx context.Context, accountID string) (int64, error) {
	query := `
		SELECT COALESCE(SUM(balance), 0)
		FROM savings_accounts
		WHERE account_id = $1 AND status = $2;
	`
	var total int64
	if err := r.Pool.QueryRow(ctx, query, accountID, string(domain.SavingsActive)).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum savings balances for account %s: %w", accountID, err)
	}
	return total, nil
}
