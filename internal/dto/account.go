package dto

import (
	"time"

	"github.com/quocbank/qbank_backend/internal/core/domain"
)

// AccountResponse defines the data returned for the caller's account.
type AccountResponse struct {
	AccountID     string               `json:"accountID"`
	AccountNumber string               `json:"accountNumber"`
	Balance       int64                `json:"balance"`
	AccountType   domain.AccountType   `json:"accountType"`
	Status        domain.AccountStatus `json:"status"`
	CreatedAt     time.Time            `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		AccountNumber: acc.AccountNumber,
		Balance:       acc.Balance,
		AccountType:   acc.AccountType,
		Status:        acc.Status,
		CreatedAt:     acc.CreatedAt,
	}
}

// AccountSummaryResponse adds the aggregate savings balance.
type AccountSummaryResponse struct {
	AccountResponse
	TotalSavingsBalance int64 `json:"totalSavingsBalance"`
}

// ToAccountSummaryResponse converts a domain.AccountSummary to its DTO.
func ToAccountSummaryResponse(s *domain.AccountSummary) AccountSummaryResponse {
	return AccountSummaryResponse{
		AccountResponse:     ToAccountResponse(&s.Account),
		TotalSavingsBalance: s.TotalSavingsBalance,
	}
}

// RecipientResponse defines the data returned by a recipient lookup.
type RecipientResponse struct {
	AccountNumber string `json:"accountNumber"`
	FullName      string `json:"fullName"`
}
