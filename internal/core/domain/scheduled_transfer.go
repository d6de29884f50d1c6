package domain

import "time"

// Frequency is the recurrence interval of a scheduled transfer.
type Frequency string

const (
	Daily   Frequency = "DAILY"
	Weekly  Frequency = "WEEKLY"
	Monthly Frequency = "MONTHLY"
)

// ValidFrequency reports whether f is a known recurrence interval.
func ValidFrequency(f Frequency) bool {
	switch f {
	case Daily, Weekly, Monthly:
		return true
	}
	return false
}

// ScheduleStatus is the state of a scheduled transfer.
//
// ACTIVE <-> PAUSED are user-controlled; CANCELLED (user) and COMPLETED
// (automatic on end-date exhaustion) are terminal. Only ACTIVE entries are
// selected by the due-scan.
type ScheduleStatus string

const (
	ScheduleActive    ScheduleStatus = "ACTIVE"
	SchedulePaused    ScheduleStatus = "PAUSED"
	ScheduleCancelled ScheduleStatus = "CANCELLED"
	ScheduleCompleted ScheduleStatus = "COMPLETED"
)

// ScheduledTransfer is a recurring transfer definition. ToAccountNumber and
// ToAccountName are denormalized snapshots taken at creation time.
type ScheduledTransfer struct {
	ScheduleID      string         `json:"scheduleID"` // Primary Key (UUID)
	FromAccountID   string         `json:"fromAccountID"`
	ToAccountNumber string         `json:"toAccountNumber"`
	ToAccountName   string         `json:"toAccountName"`
	Amount          int64          `json:"amount"` // VND
	Frequency       Frequency      `json:"frequency"`
	StartDate       time.Time      `json:"startDate"`
	EndDate         *time.Time     `json:"endDate"` // nil for open-ended
	NextRunDate     time.Time      `json:"nextRunDate"`
	Message         string         `json:"message"`
	Status          ScheduleStatus `json:"status"`
	LastRunAt       *time.Time     `json:"lastRunAt"`
	RunCount        int            `json:"runCount"`
	AuditFields
}

// NextRunAfter advances a run date by one calendar unit. Month arithmetic
// follows time.AddDate normalization (Jan 31 + 1 month = Mar 3), keeping the
// schedule deterministic across month-end boundaries.
func NextRunAfter(current time.Time, f Frequency) time.Time {
	switch f {
	case Daily:
		return current.AddDate(0, 0, 1)
	case Weekly:
		return current.AddDate(0, 0, 7)
	case Monthly:
		return current.AddDate(0, 1, 0)
	}
	return current
}
