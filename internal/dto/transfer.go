package dto

import (
	"time"

	"github.com/quocbank/qbank_backend/internal/core/domain"
)

// CreateTransferRequest defines the data needed to run a transfer.
type CreateTransferRequest struct {
	ToAccountNumber string `json:"toAccountNumber" binding:"required,accountnumber"`
	Amount          int64  `json:"amount" binding:"required,gt=0"`
	Message         string `json:"message" binding:"max=200"`
}

// TransferResponse defines the data returned for a completed transfer.
type TransferResponse struct {
	TransactionID     string    `json:"transactionID"`
	Amount            int64     `json:"amount"`
	Message           string    `json:"message"`
	ToAccountNumber   string    `json:"toAccountNumber"`
	RecipientFullName string    `json:"recipientFullName"`
	Balance           int64     `json:"balance"` // sender balance after commit
	CreatedAt         time.Time `json:"createdAt"`
}

// ToTransferResponse converts a domain.TransferOutcome to its DTO.
func ToTransferResponse(o *domain.TransferOutcome) TransferResponse {
	return TransferResponse{
		TransactionID:     o.Transaction.TransactionID,
		Amount:            o.Transaction.Amount,
		Message:           o.Transaction.Message,
		ToAccountNumber:   o.ToAccount.AccountNumber,
		RecipientFullName: o.ToUser.FullName,
		Balance:           o.FromAccount.Balance,
		CreatedAt:         o.Transaction.CreatedAt,
	}
}

// TransactionResponse defines one transaction history entry. Direction is
// derived from the caller's account: SENT or RECEIVED.
type TransactionResponse struct {
	TransactionID string                   `json:"transactionID"`
	FromAccountID string                   `json:"fromAccountID"`
	ToAccountID   string                   `json:"toAccountID"`
	Amount        int64                    `json:"amount"`
	Message       string                   `json:"message"`
	Status        domain.TransactionStatus `json:"status"`
	Direction     string                   `json:"direction"`
	CreatedAt     time.Time                `json:"createdAt"`
}

// ListTransactionsParams defines query parameters for transaction history.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse wraps a page of history.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToListTransactionsResponse converts transactions, deriving the direction
// relative to the caller's account.
func ToListTransactionsResponse(txns []domain.Transaction, callerAccountID string, nextToken *string) ListTransactionsResponse {
	res := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		direction := "RECEIVED"
		if t.FromAccountID == callerAccountID {
			direction = "SENT"
		}
		res[i] = TransactionResponse{
			TransactionID: t.TransactionID,
			FromAccountID: t.FromAccountID,
			ToAccountID:   t.ToAccountID,
			Amount:        t.Amount,
			Message:       t.Message,
			Status:        t.Status,
			Direction:     direction,
			CreatedAt:     t.CreatedAt,
		}
	}
	return ListTransactionsResponse{Transactions: res, NextToken: nextToken}
}
