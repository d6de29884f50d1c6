package domain

// AccountType distinguishes the payment account from savings sub-accounts.
type AccountType string

const (
	Payment AccountType = "PAYMENT"
	Savings AccountType = "SAVINGS"
)

// AccountStatus is the lifecycle state of an account.
type AccountStatus string

const (
	AccountActive AccountStatus = "ACTIVE"
	AccountFrozen AccountStatus = "FROZEN"
)

// Account represents a customer account within the core domain.
// Balance is held in VND minor units and is only ever mutated through the
// ledger primitives inside a committed store transaction.
type Account struct {
	AccountID     string        `json:"accountID"`     // Primary Key (UUID)
	UserID        string        `json:"userID"`        // FK -> users.user_id (owner)
	AccountNumber string        `json:"accountNumber"` // Unique 10-digit number
	Balance       int64         `json:"balance"`       // VND, never negative after commit
	AccountType   AccountType   `json:"accountType"`
	Status        AccountStatus `json:"status"`
	AuditFields
}

// IsActive reports whether the account can participate in operations.
func (a Account) IsActive() bool {
	return a.Status == AccountActive
}
