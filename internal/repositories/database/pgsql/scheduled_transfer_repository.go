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

type PgxScheduledTransferRepository struct {
	BaseRepository
	accounts portsrepo.AccountRepositoryFacade
}

// newPgxScheduledTransferRepository creates a new repository for recurring transfers.
func newPgxScheduledTransferRepository(pool *pgxpool.Pool, accounts portsrepo.AccountRepositoryFacade) portsrepo.ScheduledTransferRepository {
	return &PgxScheduledTransferRepository{BaseRepository: BaseRepository{Pool: pool}, accounts: accounts}
}

var _ portsrepo.ScheduledTransferRepository = (*PgxScheduledTransferRepository)(nil)

const scheduleColumns = `schedule_id, from_account_id, to_account_number, to_account_name, amount, frequency, start_date, end_date, next_run_date, message, status, last_run_at, run_count, created_at, created_by, last_updated_at, last_updated_by`

func toDomainSchedule(m models.ScheduledTransfer) domain.ScheduledTransfer {
	return domain.ScheduledTransfer{
		ScheduleID:      m.ScheduleID,
		FromAccountID:   m.FromAccountID,
		ToAccountNumber: m.ToAccountNumber,
		ToAccountName:   m.ToAccountName,
		Amount:          m.Amount,
		Frequency:       domain.Frequency(m.Frequency),
		StartDate:       m.StartDate,
		EndDate:         m.EndDate,
		NextRunDate:     m.NextRunDate,
		Message:         m.Message,
		Status:          domain.ScheduleStatus(m.Status),
		LastRunAt:       m.LastRunAt,
		RunCount:        m.RunCount,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func scanSchedule(row pgx.Row) (*domain.ScheduledTransfer, error) {
	var m models.ScheduledTransfer
	err := row.Scan(
		&m.ScheduleID,
		&m.FromAccountID,
		&m.ToAccountNumber,
		&m.ToAccountName,
		&m.Amount,
		&m.Frequency,
		&m.StartDate,
		&m.EndDate,
		&m.NextRunDate,
		&m.Message,
		&m.Status,
		&m.LastRunAt,
		&m.RunCount,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	d := toDomainSchedule(m)
	return &d, nil
}

// SaveScheduledTransfer persists a new schedule entry.
func (r *PgxScheduledTransferRepository) SaveScheduledTransfer(ctx context.Context, st domain.ScheduledTransfer) error {
	query := `
		INSERT INTO scheduled_transfers (` + scheduleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.Pool.Exec(ctx, query,
		st.ScheduleID, st.FromAccountID, st.ToAccountNumber, st.ToAccountName,
		st.Amount, string(st.Frequency), st.StartDate, st.EndDate, st.NextRunDate,
		st.Message, string(st.Status), st.LastRunAt, st.RunCount,
		st.CreatedAt, st.CreatedBy, st.LastUpdatedAt, st.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save scheduled transfer %s: %w", st.ScheduleID, err)
	}
	return nil
}

// FindScheduleByID retrieves one schedule entry.
func (r *PgxScheduledTransferRepository) FindScheduleByID(ctx context.Context, scheduleID string) (*domain.ScheduledTransfer, error) {
	query := `SELECT ` + scheduleColumns + ` FROM scheduled_transfers WHERE schedule_id = $1;`

	st, err := scanSchedule(r.Pool.QueryRow(ctx, query, scheduleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: scheduled transfer %s", apperrors.ErrNotFound, scheduleID)
		}
		return nil, fmt.Errorf("failed to find scheduled transfer %s: %w", scheduleID, err)
	}
	return st, nil
}

// ListSchedulesByAccountID retrieves ACTIVE and PAUSED entries ordered by
// next run date.
func (r *PgxScheduledTransferRepository) ListSchedulesByAccountID(ctx context.Context, accountID string) ([]domain.ScheduledTransfer, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM scheduled_transfers
		WHERE from_account_id = $1 AND status IN ($2, $3)
		ORDER BY next_run_date;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, string(domain.ScheduleActive), string(domain.SchedulePaused))
	if err != nil {
		return nil, fmt.Errorf("failed to query scheduled transfers for account %s: %w", accountID, err)
	}
	defer rows.Close()

	schedules := []domain.ScheduledTransfer{}
	for rows.Next() {
		st, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scheduled transfer row: %w", err)
		}
		schedules = append(schedules, *st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating scheduled transfer rows: %w", err)
	}
	return schedules, nil
}

// UpdateScheduleStatus transitions a schedule between statuses. The WHERE
// clause enforces the state machine: zero rows affected means the entry is
// missing or not in the expected status.
func (r *PgxScheduledTransferRepository) UpdateScheduleStatus(ctx context.Context, scheduleID string, from, to domain.ScheduleStatus, userID string, now time.Time) error {
	query := `
		UPDATE scheduled_transfers
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE schedule_id = $1 AND status = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, scheduleID, string(from), string(to), now, userID)
	if err != nil {
		return fmt.Errorf("failed to update scheduled transfer %s status: %w", scheduleID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		if _, findErr := r.FindScheduleByID(ctx, scheduleID); findErr != nil {
			return findErr
		}
		return fmt.Errorf("%w: scheduled transfer %s is not %s", apperrors.ErrConflict, scheduleID, from)
	}
	return nil
}

// ListDueSchedules selects every ACTIVE entry whose next run date has arrived,
// joined with the owning user for notification dispatch.
func (r *PgxScheduledTransferRepository) ListDueSchedules(ctx context.Context, now time.Time) ([]domain.DueSchedule, error) {
	query := `
		SELECT st.schedule_id, st.from_account_id, st.to_account_number, st.to_account_name,
		       st.amount, st.frequency, st.start_date, st.end_date, st.next_run_date,
		       st.message, st.status, st.last_run_at, st.run_count,
		       st.created_at, st.created_by, st.last_updated_at, st.last_updated_by,
		       a.user_id
		FROM scheduled_transfers st
		JOIN accounts a ON a.account_id = st.from_account_id
		WHERE st.status = $1 AND st.next_run_date <= $2
		ORDER BY st.next_run_date;
	`
	rows, err := r.Pool.Query(ctx, query, string(domain.ScheduleActive), now)
	if err != nil {
		return nil, fmt.Errorf("failed to query due scheduled transfers: %w", err)
	}
	defer rows.Close()

	due := []domain.DueSchedule{}
	for rows.Next() {
		var m models.ScheduledTransfer
		var ownerUserID string
		err := rows.Scan(
			&m.ScheduleID, &m.FromAccountID, &m.ToAccountNumber, &m.ToAccountName,
			&m.Amount, &m.Frequency, &m.StartDate, &m.EndDate, &m.NextRunDate,
			&m.Message, &m.Status, &m.LastRunAt, &m.RunCount,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
			&ownerUserID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan due scheduled transfer row: %w", err)
		}
		due = append(due, domain.DueSchedule{ScheduledTransfer: toDomainSchedule(m), OwnerUserID: ownerUserID})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating due scheduled transfer rows: %w", err)
	}
	return due, nil
}

// ExecuteDueTransfer runs one due entry as a single store transaction. The
// claim query re-selects the row FOR UPDATE SKIP LOCKED with the ACTIVE and
// due conditions rechecked, so a concurrent scan or a just-paused entry is a
// claim miss rather than a double execution. Business failures roll the unit
// back and the entry stays due.
func (r *PgxScheduledTransferRepository) ExecuteDueTransfer(ctx context.Context, scheduleID string, now time.Time) (*domain.ScheduledRunOutcome, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	claim := `
		SELECT ` + scheduleColumns + `
		FROM scheduled_transfers
		WHERE schedule_id = $1 AND status = $2 AND next_run_date <= $3
		FOR UPDATE SKIP LOCKED;
	`
	st, err := scanSchedule(tx.QueryRow(ctx, claim, scheduleID, string(domain.ScheduleActive), now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: scheduled transfer %s is no longer claimable", apperrors.ErrConflict, scheduleID)
		}
		return nil, fmt.Errorf("failed to claim scheduled transfer %s: %w", scheduleID, err)
	}

	// Resolve the destination before locking account rows so the locks can
	// be taken in ascending ID order.
	var toAccountID string
	err = tx.QueryRow(ctx, `SELECT account_id FROM accounts WHERE account_number = $1;`, st.ToAccountNumber).Scan(&toAccountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no account with number %s", apperrors.ErrNotFound, st.ToAccountNumber)
		}
		return nil, fmt.Errorf("failed to resolve destination %s: %w", st.ToAccountNumber, err)
	}

	first, second := st.FromAccountID, toAccountID
	if second < first {
		first, second = second, first
	}
	locked := make(map[string]*domain.Account, 2)
	for _, id := range []string{first, second} {
		acc, lockErr := r.accounts.FindAccountByIDForUpdate(ctx, tx, id)
		if lockErr != nil {
			return nil, lockErr
		}
		locked[id] = acc
	}
	from, to := locked[st.FromAccountID], locked[toAccountID]

	if !from.IsActive() {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrAccountInactive, from.AccountID)
	}
	if !to.IsActive() {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrAccountInactive, to.AccountID)
	}
	if from.Balance < st.Amount {
		return nil, fmt.Errorf("%w: balance %d, requested %d", apperrors.ErrInsufficientFunds, from.Balance, st.Amount)
	}

	if err := r.accounts.AdjustBalanceInTx(ctx, tx, from.AccountID, -st.Amount, from.UserID, now); err != nil {
		return nil, err
	}
	if err := r.accounts.AdjustBalanceInTx(ctx, tx, to.AccountID, st.Amount, from.UserID, now); err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		TransactionID: uuid.New().String(),
		FromAccountID: from.AccountID,
		ToAccountID:   to.AccountID,
		Amount:        st.Amount,
		Message:       st.Message,
		Status:        domain.TransactionSuccess,
		CreatedAt:     now,
	}
	if err := insertTransaction(ctx, tx, txn); err != nil {
		return nil, err
	}

	// Advance by one calendar unit, or freeze the run date and complete the
	// schedule once the next occurrence falls past the end date.
	next := domain.NextRunAfter(st.NextRunDate, st.Frequency)
	if st.EndDate != nil && next.After(*st.EndDate) {
		st.Status = domain.ScheduleCompleted
	} else {
		st.NextRunDate = next
	}
	st.RunCount++
	st.LastRunAt = &now
	st.LastUpdatedAt = now
	st.LastUpdatedBy = from.UserID

	update := `
		UPDATE scheduled_transfers
		SET next_run_date = $2, status = $3, run_count = $4, last_run_at = $5, last_updated_at = $6, last_updated_by = $7
		WHERE schedule_id = $1;
	`
	_, err = tx.Exec(ctx, update, st.ScheduleID, st.NextRunDate, string(st.Status), st.RunCount, st.LastRunAt, st.LastUpdatedAt, st.LastUpdatedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to reschedule scheduled transfer %s: %w", st.ScheduleID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return &domain.ScheduledRunOutcome{
		Schedule:    *st,
		Transaction: txn,
		OwnerUserID: from.UserID,
	}, nil
}
