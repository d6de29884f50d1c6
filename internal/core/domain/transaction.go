package domain

import "time"

// TransactionStatus is the terminal state of a recorded money movement.
type TransactionStatus string

const (
	TransactionSuccess TransactionStatus = "SUCCESS"
	TransactionFailed  TransactionStatus = "FAILED"
)

// Transaction is the immutable record of one completed money movement.
// For bill payments the from and to account are the same account.
// A SUCCESS transaction is never updated after creation.
type Transaction struct {
	TransactionID string            `json:"transactionID"` // Primary Key (UUID)
	FromAccountID string            `json:"fromAccountID"` // FK -> accounts.account_id
	ToAccountID   string            `json:"toAccountID"`   // FK -> accounts.account_id
	Amount        int64             `json:"amount"`        // VND, > 0
	Message       string            `json:"message"`
	Status        TransactionStatus `json:"status"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// TransferLimit is the upper bound for a single transfer, in VND.
const TransferLimit int64 = 1_000_000_000

// BillPaymentLimit is the upper bound for a single bill payment, in VND.
const BillPaymentLimit int64 = 100_000_000
