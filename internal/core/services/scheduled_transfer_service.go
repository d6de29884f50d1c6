package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/quocbank/qbank_backend/internal/apperrors"
	"github.com/quocbank/qbank_backend/internal/core/domain"
	portsrepo "github.com/quocbank/qbank_backend/internal/core/ports/repositories"
	portssvc "github.com/quocbank/qbank_backend/internal/core/ports/services"
	"github.com/quocbank/qbank_backend/internal/middleware"
	"github.com/quocbank/qbank_backend/internal/utils"
)

var (
	ErrUnknownFrequency = errors.New("unknown schedule frequency")
	ErrStartDateInPast  = errors.New("start date must not be in the past")
	ErrEndBeforeStart   = errors.New("end date must be after the start date")
	ErrScheduleSelfRef  = errors.New("cannot schedule a transfer to your own account")
)

// scheduledTransferService manages recurring transfer definitions and runs
// the due-scan.
type scheduledTransferService struct {
	scheduledRepo portsrepo.ScheduledTransferRepository
	accountRepo   portsrepo.AccountRepositoryFacade
	userRepo      portsrepo.UserRepository
	notifier      portssvc.NotificationDispatcherSvc
}

// NewScheduledTransferService creates a new ScheduledTransferService.
func NewScheduledTransferService(scheduledRepo portsrepo.ScheduledTransferRepository, accountRepo portsrepo.AccountRepositoryFacade, userRepo portsrepo.UserRepository, notifier portssvc.NotificationDispatcherSvc) portssvc.ScheduledTransferSvcFacade {
	return &scheduledTransferService{
		scheduledRepo: scheduledRepo,
		accountRepo:   accountRepo,
		userRepo:      userRepo,
		notifier:      notifier,
	}
}

var _ portssvc.ScheduledTransferSvcFacade = (*scheduledTransferService)(nil)

// CreateSchedule validates and persists a new recurring transfer. The
// destination display name is snapshotted now; later renames do not affect
// the entry.
func (s *scheduledTransferService) CreateSchedule(ctx context.Context, cmd domain.CreateScheduleCommand) (*domain.ScheduledTransfer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	if !domain.ValidFrequency(cmd.Frequency) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFrequency, cmd.Frequency)
	}
	if cmd.Amount <= 0 {
		return nil, ErrAmountNotPositive
	}
	if cmd.Amount > domain.TransferLimit {
		return nil, fmt.Errorf("%w: %d", ErrTransferOverLimit, cmd.Amount)
	}
	if cmd.StartDate.Before(now.Truncate(24 * time.Hour)) {
		return nil, ErrStartDateInPast
	}
	if cmd.EndDate != nil && !cmd.EndDate.After(cmd.StartDate) {
		return nil, ErrEndBeforeStart
	}

	from, err := s.accountRepo.FindActiveAccountByUserID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	to, err := s.accountRepo.FindActiveAccountByNumber(ctx, cmd.ToAccountNumber)
	if err != nil {
		return nil, err
	}
	if to.AccountID == from.AccountID {
		return nil, ErrScheduleSelfRef
	}
	owner, err := s.userRepo.FindUserByID(ctx, to.UserID)
	if err != nil {
		return nil, err
	}

	message := cmd.Message
	if message == "" {
		message = defaultTransferMessage
	}
	st := domain.ScheduledTransfer{
		ScheduleID:      uuid.NewString(),
		FromAccountID:   from.AccountID,
		ToAccountNumber: to.AccountNumber,
		ToAccountName:   owner.FullName,
		Amount:          cmd.Amount,
		Frequency:       cmd.Frequency,
		StartDate:       cmd.StartDate,
		EndDate:         cmd.EndDate,
		NextRunDate:     cmd.StartDate,
		Message:         message,
		Status:          domain.ScheduleActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     cmd.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: cmd.UserID,
		},
	}
	if err := s.scheduledRepo.SaveScheduledTransfer(ctx, st); err != nil {
		return nil, err
	}

	logger.Info("Scheduled transfer created",
		slog.String("schedule_id", st.ScheduleID),
		slog.String("frequency", string(st.Frequency)),
		slog.Time("next_run_date", st.NextRunDate))
	return &st, nil
}

// ListSchedules retrieves the caller's ACTIVE and PAUSED entries.
func (s *scheduledTransferService) ListSchedules(ctx context.Context, userID string) ([]domain.ScheduledTransfer, error) {
	acc, err := s.accountRepo.FindActiveAccountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.scheduledRepo.ListSchedulesByAccountID(ctx, acc.AccountID)
}

// GetSchedule retrieves one of the caller's entries.
func (s *scheduledTransferService) GetSchedule(ctx context.Context, userID string, scheduleID string) (*domain.ScheduledTransfer, error) {
	st, err := s.ownedSchedule(ctx, userID, scheduleID)
	if err != nil {
		return nil, err
	}
	return st, nil
}

// ownedSchedule loads a schedule and verifies the caller owns its source account.
func (s *scheduledTransferService) ownedSchedule(ctx context.Context, userID, scheduleID string) (*domain.ScheduledTransfer, error) {
	st, err := s.scheduledRepo.FindScheduleByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	acc, err := s.accountRepo.FindAccountByID(ctx, st.FromAccountID)
	if err != nil {
		return nil, err
	}
	if acc.UserID != userID {
		return nil, fmt.Errorf("%w: scheduled transfer %s", apperrors.ErrForbidden, scheduleID)
	}
	return st, nil
}

// PauseSchedule transitions one of the caller's entries ACTIVE -> PAUSED.
func (s *scheduledTransferService) PauseSchedule(ctx context.Context, userID string, scheduleID string) error {
	if _, err := s.ownedSchedule(ctx, userID, scheduleID); err != nil {
		return err
	}
	return s.scheduledRepo.UpdateScheduleStatus(ctx, scheduleID, domain.ScheduleActive, domain.SchedulePaused, userID, time.Now().UTC())
}

// ResumeSchedule transitions one of the caller's entries PAUSED -> ACTIVE.
func (s *scheduledTransferService) ResumeSchedule(ctx context.Context, userID string, scheduleID string) error {
	if _, err := s.ownedSchedule(ctx, userID, scheduleID); err != nil {
		return err
	}
	return s.scheduledRepo.UpdateScheduleStatus(ctx, scheduleID, domain.SchedulePaused, domain.ScheduleActive, userID, time.Now().UTC())
}

// CancelSchedule transitions one of the caller's entries ACTIVE -> CANCELLED.
func (s *scheduledTransferService) CancelSchedule(ctx context.Context, userID string, scheduleID string) error {
	if _, err := s.ownedSchedule(ctx, userID, scheduleID); err != nil {
		return err
	}
	return s.scheduledRepo.UpdateScheduleStatus(ctx, scheduleID, domain.ScheduleActive, domain.ScheduleCancelled, userID, time.Now().UTC())
}

// RunDueSchedules executes every entry due at now. Each entry runs in its own
// store transaction; one failure is logged, reported to the owner and never
// stops the scan. A claim miss (another scan holds the row, or the entry
// changed state) is skipped silently.
func (s *scheduledTransferService) RunDueSchedules(ctx context.Context, now time.Time) (int, int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	due, err := s.scheduledRepo.ListDueSchedules(ctx, now)
	if err != nil {
		return 0, 0, err
	}
	if len(due) == 0 {
		return 0, 0, nil
	}
	logger.Info("Due-scan started", slog.Int("due_count", len(due)))

	executed, failed := 0, 0
	for _, entry := range due {
		outcome, err := s.scheduledRepo.ExecuteDueTransfer(ctx, entry.ScheduleID, now)
		if err != nil {
			if errors.Is(err, apperrors.ErrConflict) {
				logger.Debug("Scheduled transfer claim miss", slog.String("schedule_id", entry.ScheduleID))
				continue
			}
			failed++
			logger.Warn("Scheduled transfer failed",
				slog.String("schedule_id", entry.ScheduleID),
				slog.String("error", err.Error()))
			s.notifier.Dispatch(ctx, entry.OwnerUserID, domain.NotifyTransaction,
				"Chuyển tiền định kỳ thất bại",
				fmt.Sprintf("Không thể chuyển %s đến %s: %s", utils.FormatVND(entry.Amount), entry.ToAccountName, failureReason(err)))
			continue
		}

		executed++
		message := fmt.Sprintf("Đã chuyển %s đến %s theo lịch", utils.FormatVND(entry.Amount), entry.ToAccountName)
		if outcome.Schedule.Status == domain.ScheduleCompleted {
			message += ". Lịch chuyển tiền đã hoàn thành"
		}
		s.notifier.Dispatch(ctx, outcome.OwnerUserID, domain.NotifyTransaction, "Chuyển tiền định kỳ thành công", message)
	}

	logger.Info("Due-scan finished", slog.Int("executed", executed), slog.Int("failed", failed))
	return executed, failed, nil
}

// failureReason maps a unit error to the owner-facing reason.
func failureReason(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		return "số dư không đủ"
	case errors.Is(err, apperrors.ErrAccountInactive):
		return "tài khoản không hoạt động"
	case errors.Is(err, apperrors.ErrNotFound):
		return "không tìm thấy tài khoản nhận"
	default:
		return "lỗi hệ thống"
	}
}
