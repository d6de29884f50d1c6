// Package models holds the database row representations of domain entities.
// Repositories map between these and the core domain types.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditFields embeds the standard audit columns.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by"`
}

// User is a row in the users table.
type User struct {
	UserID    string `db:"user_id"`
	Username  string `db:"username"`
	FullName  string `db:"full_name"`
	AvatarURL string `db:"avatar_url"`
	AuditFields
}

// Account is a row in the accounts table. Balance is VND minor units; the
// table carries a CHECK (balance >= 0) constraint as a final backstop.
type Account struct {
	AccountID     string `db:"account_id"`
	UserID        string `db:"user_id"`
	AccountNumber string `db:"account_number"`
	Balance       int64  `db:"balance"`
	AccountType   string `db:"account_type"`
	Status        string `db:"status"`
	AuditFields
}

// Transaction is a row in the transactions table. Rows are insert-only.
type Transaction struct {
	TransactionID string    `db:"transaction_id"`
	FromAccountID string    `db:"from_account_id"`
	ToAccountID   string    `db:"to_account_id"`
	Amount        int64     `db:"amount"`
	Message       string    `db:"message"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
}

// SavingsAccount is a row in the savings_accounts table.
type SavingsAccount struct {
	SavingsID    string          `db:"savings_id"`
	AccountID    string          `db:"account_id"`
	SavingsType  string          `db:"savings_type"`
	Balance      int64           `db:"balance"`
	RatePercent  decimal.Decimal `db:"rate_percent"`
	StartDate    time.Time       `db:"start_date"`
	MaturityDate *time.Time      `db:"maturity_date"`
	Status       string          `db:"status"`
	AutoRenew    bool            `db:"auto_renew"`
	AuditFields
}

// BillProvider is a row in the bill_providers table.
type BillProvider struct {
	ProviderID  string `db:"provider_id"`
	Name        string `db:"name"`
	Category    string `db:"category"`
	Logo        string `db:"logo"`
	Description string `db:"description"`
	IsActive    bool   `db:"is_active"`
	AuditFields
}

// BillPayment is a row in the bill_payments table.
type BillPayment struct {
	PaymentID     string     `db:"payment_id"`
	AccountID     string     `db:"account_id"`
	ProviderID    string     `db:"provider_id"`
	CustomerCode  string     `db:"customer_code"`
	Amount        int64      `db:"amount"`
	BillMonth     string     `db:"bill_month"`
	Description   string     `db:"description"`
	Status        string     `db:"status"`
	TransactionID *string    `db:"transaction_id"`
	PaidAt        *time.Time `db:"paid_at"`
	AuditFields
}

// BillTemplate is a row in the bill_templates table.
type BillTemplate struct {
	TemplateID   string `db:"template_id"`
	AccountID    string `db:"account_id"`
	ProviderID   string `db:"provider_id"`
	CustomerCode string `db:"customer_code"`
	Name         string `db:"name"`
	AuditFields
}

// ScheduledTransfer is a row in the scheduled_transfers table.
type ScheduledTransfer struct {
	ScheduleID      string     `db:"schedule_id"`
	FromAccountID   string     `db:"from_account_id"`
	ToAccountNumber string     `db:"to_account_number"`
	ToAccountName   string     `db:"to_account_name"`
	Amount          int64      `db:"amount"`
	Frequency       string     `db:"frequency"`
	StartDate       time.Time  `db:"start_date"`
	EndDate         *time.Time `db:"end_date"`
	NextRunDate     time.Time  `db:"next_run_date"`
	Message         string     `db:"message"`
	Status          string     `db:"status"`
	LastRunAt       *time.Time `db:"last_run_at"`
	RunCount        int        `db:"run_count"`
	AuditFields
}

// Notification is a row in the notifications table.
type Notification struct {
	NotificationID string    `db:"notification_id"`
	UserID         string    `db:"user_id"`
	Type           string    `db:"type"`
	Title          string    `db:"title"`
	Message        string    `db:"message"`
	Data           string    `db:"data"`
	IsRead         bool      `db:"is_read"`
	CreatedAt      time.Time `db:"created_at"`
}
