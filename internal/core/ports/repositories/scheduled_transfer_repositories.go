package repositories

import (
	"context"
	"time"

	"github.com/quocbank/qbank_backend/internal/core/domain"
)

// ScheduledTransferRepository manages recurring transfer definitions and the
// per-entry execute-and-reschedule unit used by the due-scan.
type ScheduledTransferRepository interface {
	// SaveScheduledTransfer persists a new schedule entry.
	SaveScheduledTransfer(ctx context.Context, st domain.ScheduledTransfer) error

	// FindScheduleByID retrieves one schedule entry.
	FindScheduleByID(ctx context.Context, scheduleID string) (*domain.ScheduledTransfer, error)

	// ListSchedulesByAccountID retrieves the account's ACTIVE and PAUSED
	// entries ordered by next run date.
	ListSchedulesByAccountID(ctx context.Context, accountID string) ([]domain.ScheduledTransfer, error)

	// UpdateScheduleStatus transitions a schedule from one status to
	// another; it fails with a conflict if the entry is not currently in
	// the expected status.
	UpdateScheduleStatus(ctx context.Context, scheduleID string, from, to domain.ScheduleStatus, userID string, now time.Time) error

	// ListDueSchedules selects every ACTIVE entry whose next run date has
	// arrived, joined with the owning user for notification dispatch.
	ListDueSchedules(ctx context.Context, now time.Time) ([]domain.DueSchedule, error)

	// ExecuteDueTransfer runs one due entry as a single unit: re-claim the
	// row under a skip-locked lock (guarding against concurrent scans),
	// re-check that it is still ACTIVE and due, perform the transfer in
	// the same transaction and advance or complete the schedule. Business
	// failures roll the whole unit back, leaving the entry due for the
	// next scan. A claim miss returns ErrConflict.
	ExecuteDueTransfer(ctx context.Context, scheduleID string, now time.Time) (*domain.ScheduledRunOutcome, error)
}
