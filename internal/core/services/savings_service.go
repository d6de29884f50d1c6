package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/quocbank/qbank_backend/internal/apperrors"
	"github.com/quocbank/qbank_backend/internal/core/domain"
	portsrepo "github.com/quocbank/qbank_backend/internal/core/ports/repositories"
	portssvc "github.com/quocbank/qbank_backend/internal/core/ports/services"
	"github.com/quocbank/qbank_backend/internal/middleware"
	"github.com/quocbank/qbank_backend/internal/utils"
)

var (
	ErrUnknownSavingsType = errors.New("unknown savings type")
	ErrDepositOutOfRange  = errors.New("deposit amount is outside the allowed range")
)

// savingsService validates savings operations and orchestrates the atomic
// open and withdrawal units.
type savingsService struct {
	savingsRepo portsrepo.SavingsRepository
	accountRepo portsrepo.AccountRepositoryFacade
	notifier    portssvc.NotificationDispatcherSvc
}

// NewSavingsService creates a new SavingsService.
func NewSavingsService(savingsRepo portsrepo.SavingsRepository, accountRepo portsrepo.AccountRepositoryFacade, notifier portssvc.NotificationDispatcherSvc) portssvc.SavingsSvcFacade {
	return &savingsService{
		savingsRepo: savingsRepo,
		accountRepo: accountRepo,
		notifier:    notifier,
	}
}

var _ portssvc.SavingsSvcFacade = (*savingsService)(nil)

// ListRates returns the current tenor rate table.
func (s *savingsService) ListRates(ctx context.Context) []domain.SavingsRate {
	return domain.RateTable()
}

// OpenSavings validates and runs the open unit, then notifies the owner.
func (s *savingsService) OpenSavings(ctx context.Context, cmd domain.OpenSavingsCommand) (*domain.SavingsAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, ok := domain.InterestRateFor(cmd.SavingsType); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSavingsType, cmd.SavingsType)
	}
	if cmd.Amount < domain.SavingsMinDeposit || cmd.Amount > domain.SavingsMaxDeposit {
		return nil, fmt.Errorf("%w: %d", ErrDepositOutOfRange, cmd.Amount)
	}

	sa, err := s.savingsRepo.OpenSavingsAccount(ctx, cmd, time.Now().UTC())
	if err != nil {
		logger.Warn("Savings open failed", slog.String("error", err.Error()), slog.String("user_id", cmd.UserID))
		return nil, err
	}

	logger.Info("Savings account opened",
		slog.String("savings_id", sa.SavingsID),
		slog.String("savings_type", string(sa.SavingsType)),
		slog.Int64("amount", cmd.Amount))

	s.notifier.Dispatch(ctx, cmd.UserID, domain.NotifySavings,
		"Mở sổ tiết kiệm thành công",
		fmt.Sprintf("Bạn đã gửi %s vào sổ tiết kiệm %s", utils.FormatVND(cmd.Amount), sa.SavingsType))

	return sa, nil
}

// Withdraw validates and runs the withdrawal unit, then notifies the owner.
// The notification mentions the penalty when the withdrawal forfeited one.
func (s *savingsService) Withdraw(ctx context.Context, cmd domain.SavingsWithdrawalCommand) (*domain.SavingsWithdrawalOutcome, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if cmd.Amount < 0 {
		return nil, ErrAmountNotPositive
	}

	outcome, err := s.savingsRepo.WithdrawFromSavings(ctx, cmd, time.Now().UTC())
	if err != nil {
		logger.Warn("Savings withdrawal failed", slog.String("error", err.Error()), slog.String("savings_id", cmd.SavingsID))
		return nil, err
	}

	logger.Info("Savings withdrawal completed",
		slog.String("savings_id", cmd.SavingsID),
		slog.Int64("principal", outcome.Settlement.Principal),
		slog.Int64("interest", outcome.Settlement.Interest),
		slog.Int64("penalty", outcome.Settlement.Penalty))

	message := fmt.Sprintf("Bạn đã rút %s (lãi %s) từ sổ tiết kiệm",
		utils.FormatVND(outcome.Settlement.Principal), utils.FormatVND(outcome.Settlement.Interest))
	if outcome.Settlement.Penalty > 0 {
		message = fmt.Sprintf("%s, phí rút trước hạn %s", message, utils.FormatVND(outcome.Settlement.Penalty))
	}
	s.notifier.Dispatch(ctx, cmd.UserID, domain.NotifySavings, "Rút tiền tiết kiệm", message)

	return outcome, nil
}

// ListSavings retrieves the caller's open savings with to-date projections.
func (s *savingsService) ListSavings(ctx context.Context, userID string) ([]domain.SavingsProjection, error) {
	acc, err := s.accountRepo.FindActiveAccountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	list, err := s.savingsRepo.ListSavingsByAccountID(ctx, acc.AccountID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	projections := make([]domain.SavingsProjection, 0, len(list))
	for _, sa := range list {
		projections = append(projections, domain.ProjectSavings(sa, now))
	}
	return projections, nil
}

// GetSavings retrieves one of the caller's savings accounts with projection.
func (s *savingsService) GetSavings(ctx context.Context, userID string, savingsID string) (*domain.SavingsProjection, error) {
	sa, err := s.savingsRepo.FindSavingsByID(ctx, savingsID)
	if err != nil {
		return nil, err
	}
	acc, err := s.accountRepo.FindAccountByID(ctx, sa.AccountID)
	if err != nil {
		return nil, err
	}
	if acc.UserID != userID {
		return nil, fmt.Errorf("%w: savings account %s", apperrors.ErrForbidden, savingsID)
	}
	p := domain.ProjectSavings(*sa, time.Now().UTC())
	return &p, nil
}
