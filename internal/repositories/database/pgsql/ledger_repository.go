package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quocbank/qbank_backend/internal/apperrors"
	"github.com/quocbank/qbank_backend/internal/core/domain"
	portsrepo "github.com/quocbank/qbank_backend/internal/core/ports/repositories"
	"github.com/quocbank/qbank_backend/internal/models"
	"github.com/quocbank/qbank_backend/internal/utils/pagination"
)

type PgxLedgerRepository struct {
	BaseRepository
	accounts portsrepo.AccountRepositoryFacade
}

// newPgxLedgerRepository creates a new repository owning the transfer unit.
func newPgxLedgerRepository(pool *pgxpool.Pool, accounts portsrepo.AccountRepositoryFacade) portsrepo.LedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}, accounts: accounts}
}

var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

const transactionColumns = `transaction_id, from_account_id, to_account_id, amount, message, status, created_at`

func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		FromAccountID: m.FromAccountID,
		ToAccountID:   m.ToAccountID,
		Amount:        m.Amount,
		Message:       m.Message,
		Status:        domain.TransactionStatus(m.Status),
		CreatedAt:     m.CreatedAt,
	}
}

// insertTransaction appends one immutable ledger record within a transaction.
func insertTransaction(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := tx.Exec(ctx, query,
		txn.TransactionID,
		txn.FromAccountID,
		txn.ToAccountID,
		txn.Amount,
		txn.Message,
		string(txn.Status),
		txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}

// ExecuteTransfer runs the whole transfer as one store transaction: resolve
// both accounts, lock their rows, re-validate under the lock, move the money
// and append the ledger record. Any business rule failure rolls the unit back.
func (r *PgxLedgerRepository) ExecuteTransfer(ctx context.Context, cmd domain.TransferCommand, now time.Time) (*domain.TransferOutcome, error) {
	from, err := r.accounts.FindActiveAccountByUserID(ctx, cmd.FromUserID)
	if err != nil {
		return nil, err
	}
	to, err := r.accounts.FindActiveAccountByNumber(ctx, cmd.ToAccountNumber)
	if err != nil {
		return nil, err
	}
	if from.AccountID == to.AccountID {
		return nil, fmt.Errorf("%w: cannot transfer to the same account", apperrors.ErrValidation)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	// Lock rows in ascending account ID order so concurrent opposite-direction
	// transfers cannot deadlock.
	first, second := from.AccountID, to.AccountID
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
	from, to = locked[from.AccountID], locked[to.AccountID]

	// Re-validate under the lock; the pre-lock reads may be stale.
	if !from.IsActive() {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrAccountInactive, from.AccountID)
	}
	if !to.IsActive() {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrAccountInactive, to.AccountID)
	}
	if from.Balance < cmd.Amount {
		return nil, fmt.Errorf("%w: balance %d, requested %d", apperrors.ErrInsufficientFunds, from.Balance, cmd.Amount)
	}

	if err := r.accounts.AdjustBalanceInTx(ctx, tx, from.AccountID, -cmd.Amount, cmd.FromUserID, now); err != nil {
		return nil, err
	}
	if err := r.accounts.AdjustBalanceInTx(ctx, tx, to.AccountID, cmd.Amount, cmd.FromUserID, now); err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		TransactionID: uuid.New().String(),
		FromAccountID: from.AccountID,
		ToAccountID:   to.AccountID,
		Amount:        cmd.Amount,
		Message:       cmd.Message,
		Status:        domain.TransactionSuccess,
		CreatedAt:     now,
	}
	if err := insertTransaction(ctx, tx, txn); err != nil {
		return nil, err
	}

	fromUser, err := findUserRow(ctx, tx, from.UserID)
	if err != nil {
		return nil, err
	}
	toUser, err := findUserRow(ctx, tx, to.UserID)
	if err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	from.Balance -= cmd.Amount
	to.Balance += cmd.Amount
	return &domain.TransferOutcome{
		Transaction: txn,
		FromAccount: *from,
		ToAccount:   *to,
		FromUser:    *fromUser,
		ToUser:      *toUser,
	}, nil
}

// ListTransactionsByAccountID retrieves sent and received records for an
// account, newest first, using a (created_at, transaction_id) keyset cursor.
func (r *PgxLedgerRepository) ListTransactionsByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE (from_account_id = $1 OR to_account_id = $1)
	`
	args := []any{accountID}
	if nextToken != nil && *nextToken != "" {
		createdAt, id, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` AND (created_at, transaction_id) < ($2, $3)`
		args = append(args, createdAt, id)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, transaction_id DESC LIMIT %d;`, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions for account %s: %w", accountID, err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(&m.TransactionID, &m.FromAccountID, &m.ToAccountID, &m.Amount, &m.Message, &m.Status, &m.CreatedAt); err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transactions = append(transactions, toDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	var newToken *string
	if len(transactions) > limit {
		transactions = transactions[:limit]
		last := transactions[len(transactions)-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.TransactionID)
		newToken = &token
	}
	return transactions, newToken, nil
}
