package domain

import "time"

// BillProvider is a service provider bills can be paid against.
type BillProvider struct {
	ProviderID  string `json:"providerID"` // Primary Key (UUID)
	Name        string `json:"name"`
	Category    string `json:"category"` // e.g. ELECTRICITY, WATER, INTERNET
	Logo        string `json:"logo"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
	AuditFields
}

// BillPaymentStatus is the state of a bill payment record.
type BillPaymentStatus string

const (
	BillPaymentSuccess BillPaymentStatus = "SUCCESS"
)

// BillPayment records one settled bill. It is cross-linked to the
// self-referencing Transaction created in the same atomic unit.
type BillPayment struct {
	PaymentID     string            `json:"paymentID"` // Primary Key (UUID)
	AccountID     string            `json:"accountID"` // FK -> accounts.account_id
	ProviderID    string            `json:"providerID"`
	CustomerCode  string            `json:"customerCode"`
	Amount        int64             `json:"amount"` // VND, > 0
	BillMonth     string            `json:"billMonth"` // billing period, e.g. "2025-08"
	Description   string            `json:"description"`
	Status        BillPaymentStatus `json:"status"`
	TransactionID *string           `json:"transactionID"` // set after the ledger record is created
	PaidAt        *time.Time        `json:"paidAt"`
	AuditFields
}

// BillTemplate stores a provider/customer pairing for later reuse. It is a
// distinct entity, never deducted against balance and never part of payment
// history or settlement queries.
type BillTemplate struct {
	TemplateID   string `json:"templateID"` // Primary Key (UUID)
	AccountID    string `json:"accountID"`
	ProviderID   string `json:"providerID"`
	CustomerCode string `json:"customerCode"`
	Name         string `json:"name"` // user-chosen label
	AuditFields
}
