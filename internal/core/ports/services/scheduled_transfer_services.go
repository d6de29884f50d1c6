package services

import (
	"context"
	"time"

	"github.com/quocbank/qbank_backend/internal/core/domain"
)

// ScheduledTransferReaderSvc defines read operations for schedule data
type ScheduledTransferReaderSvc interface {
	// ListSchedules retrieves the caller's ACTIVE and PAUSED entries
	// ordered by next run date.
	ListSchedules(ctx context.Context, userID string) ([]domain.ScheduledTransfer, error)

	// GetSchedule retrieves one of the caller's entries.
	GetSchedule(ctx context.Context, userID string, scheduleID string) (*domain.ScheduledTransfer, error)
}

// ScheduledTransferWriterSvc defines lifecycle operations for schedule data
type ScheduledTransferWriterSvc interface {
	// CreateSchedule validates and persists a new recurring transfer.
	CreateSchedule(ctx context.Context, cmd domain.CreateScheduleCommand) (*domain.ScheduledTransfer, error)

	// PauseSchedule transitions one of the caller's entries ACTIVE -> PAUSED.
	PauseSchedule(ctx context.Context, userID string, scheduleID string) error

	// ResumeSchedule transitions one of the caller's entries PAUSED -> ACTIVE.
	ResumeSchedule(ctx context.Context, userID string, scheduleID string) error

	// CancelSchedule transitions one of the caller's entries to CANCELLED.
	CancelSchedule(ctx context.Context, userID string, scheduleID string) error
}

// ScheduledTransferRunnerSvc is the due-scan executor invoked by the
// background ticker and the manual trigger route.
type ScheduledTransferRunnerSvc interface {
	// RunDueSchedules executes every entry due at now, each in its own
	// transaction. One entry's failure never stops the scan; it reports
	// how many entries succeeded and how many failed.
	RunDueSchedules(ctx context.Context, now time.Time) (executed int, failed int, err error)
}

// ScheduledTransferSvcFacade combines all schedule-related service interfaces
type ScheduledTransferSvcFacade interface {
	ScheduledTransferReaderSvc
	ScheduledTransferWriterSvc
	ScheduledTransferRunnerSvc
}
