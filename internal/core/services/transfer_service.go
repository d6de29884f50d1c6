package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/quocbank/qbank_backend/internal/core/domain"
	portsrepo "github.com/quocbank/qbank_backend/internal/core/ports/repositories"
	portssvc "github.com/quocbank/qbank_backend/internal/core/ports/services"
	"github.com/quocbank/qbank_backend/internal/middleware"
	"github.com/quocbank/qbank_backend/internal/utils"
)

var (
	ErrAmountNotPositive = errors.New("amount must be positive")
	ErrTransferOverLimit = errors.New("amount exceeds the single transfer limit")
	ErrInvalidAccountNo  = errors.New("destination account number must be 10 digits")
)

// defaultTransferMessage is used when the sender leaves the message empty.
const defaultTransferMessage = "Chuyển tiền"

// transferService validates transfers and orchestrates the atomic unit plus
// post-commit notifications.
type transferService struct {
	ledgerRepo  portsrepo.LedgerRepository
	accountRepo portsrepo.AccountRepositoryFacade
	notifier    portssvc.NotificationDispatcherSvc
}

// NewTransferService creates a new TransferService.
func NewTransferService(ledgerRepo portsrepo.LedgerRepository, accountRepo portsrepo.AccountRepositoryFacade, notifier portssvc.NotificationDispatcherSvc) portssvc.TransferSvcFacade {
	return &transferService{
		ledgerRepo:  ledgerRepo,
		accountRepo: accountRepo,
		notifier:    notifier,
	}
}

var _ portssvc.TransferSvcFacade = (*transferService)(nil)

func validAccountNumber(n string) bool {
	if len(n) != 10 {
		return false
	}
	for _, c := range n {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// ExecuteTransfer runs one peer-to-peer transfer. Validation happens here;
// balance and status are re-checked inside the repository unit under row
// locks, so a stale pre-check can never double-spend.
func (s *transferService) ExecuteTransfer(ctx context.Context, cmd domain.TransferCommand) (*domain.TransferOutcome, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if cmd.Amount <= 0 {
		return nil, ErrAmountNotPositive
	}
	if cmd.Amount > domain.TransferLimit {
		return nil, fmt.Errorf("%w: %d", ErrTransferOverLimit, cmd.Amount)
	}
	if !validAccountNumber(cmd.ToAccountNumber) {
		return nil, ErrInvalidAccountNo
	}
	if cmd.Message == "" {
		cmd.Message = defaultTransferMessage
	}

	outcome, err := s.ledgerRepo.ExecuteTransfer(ctx, cmd, time.Now().UTC())
	if err != nil {
		logger.Warn("Transfer failed", slog.String("error", err.Error()), slog.String("user_id", cmd.FromUserID))
		return nil, err
	}

	logger.Info("Transfer completed",
		slog.String("transaction_id", outcome.Transaction.TransactionID),
		slog.String("from_account_id", outcome.FromAccount.AccountID),
		slog.String("to_account_id", outcome.ToAccount.AccountID),
		slog.Int64("amount", cmd.Amount))

	amountStr := utils.FormatVND(cmd.Amount)
	s.notifier.Dispatch(ctx, outcome.FromAccount.UserID, domain.NotifyTransaction,
		"Chuyển tiền thành công",
		fmt.Sprintf("Bạn đã chuyển %s đến %s", amountStr, outcome.ToUser.FullName))
	s.notifier.Dispatch(ctx, outcome.ToAccount.UserID, domain.NotifyTransaction,
		"Nhận tiền",
		fmt.Sprintf("Bạn đã nhận %s từ %s", amountStr, outcome.FromUser.FullName))

	return outcome, nil
}

// ListTransactions retrieves the caller's transaction history.
func (s *transferService) ListTransactions(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	acc, err := s.accountRepo.FindActiveAccountByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return s.ledgerRepo.ListTransactionsByAccountID(ctx, acc.AccountID, limit, nextToken)
}
