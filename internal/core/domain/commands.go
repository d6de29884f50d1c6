package domain

import "time"

// Command and outcome value objects for the atomic ledger units. The store
// layer resolves and re-validates every referenced row under lock inside one
// transaction; outcomes carry post-commit state for notification dispatch.

// TransferCommand describes one peer-to-peer transfer.
type TransferCommand struct {
	FromUserID      string // caller identity from the identity provider
	ToAccountNumber string // 10-digit destination account number
	Amount          int64  // VND
	Message         string
}

// TransferOutcome is the committed result of a transfer.
type TransferOutcome struct {
	Transaction Transaction
	FromAccount Account // post-commit balance
	ToAccount   Account // post-commit balance
	ToUser      User    // recipient identity for notifications
	FromUser    User    // sender identity for notifications
}

// BillPaymentCommand describes one bill payment.
type BillPaymentCommand struct {
	UserID       string
	ProviderID   string
	CustomerCode string
	Amount       int64 // VND
	BillMonth    string
	Description  string
}

// BillPaymentOutcome is the committed result of a bill payment.
type BillPaymentOutcome struct {
	Payment     BillPayment
	Transaction Transaction
	Provider    BillProvider
	Account     Account // post-commit balance
}

// OpenSavingsCommand describes opening a savings account.
type OpenSavingsCommand struct {
	UserID      string
	SavingsType SavingsType
	Amount      int64 // VND principal
	AutoRenew   bool
}

// SavingsWithdrawalCommand describes a withdrawal from savings.
// A zero Amount withdraws the full balance.
type SavingsWithdrawalCommand struct {
	UserID    string
	SavingsID string
	Amount    int64 // VND
}

// SavingsWithdrawalOutcome is the committed result of a withdrawal.
type SavingsWithdrawalOutcome struct {
	Settlement WithdrawalSettlement
	Savings    SavingsAccount // post-commit state
	Account    Account        // post-commit balance
}

// CreateScheduleCommand describes a new recurring transfer definition.
type CreateScheduleCommand struct {
	UserID          string
	ToAccountNumber string
	Amount          int64 // VND
	Frequency       Frequency
	StartDate       time.Time
	EndDate         *time.Time // nil for open-ended
	Message         string
}

// Recipient is the public view of a destination account, exposed for
// pre-transfer lookup.
type Recipient struct {
	AccountNumber string `json:"accountNumber"`
	FullName      string `json:"fullName"`
}

// AccountSummary pairs the payment account with the aggregate balance of its
// open savings accounts.
type AccountSummary struct {
	Account
	TotalSavingsBalance int64 `json:"totalSavingsBalance"`
}

// DueSchedule is a scheduled transfer selected by the due-scan, joined with
// the owning user for notification dispatch.
type DueSchedule struct {
	ScheduledTransfer
	OwnerUserID string
}

// ScheduledRunOutcome is the committed result of executing one due entry.
type ScheduledRunOutcome struct {
	Schedule    ScheduledTransfer // post-commit state
	Transaction Transaction
	OwnerUserID string
}
