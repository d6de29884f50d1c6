package dto

import (
	"time"

	"github.com/quocbank/qbank_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SavingsRateResponse is one row of the rate table.
type SavingsRateResponse struct {
	SavingsType domain.SavingsType `json:"savingsType"`
	RatePercent decimal.Decimal    `json:"ratePercent"`
}

// ToListSavingsRatesResponse converts the rate table to its DTOs.
func ToListSavingsRatesResponse(rates []domain.SavingsRate) []SavingsRateResponse {
	res := make([]SavingsRateResponse, len(rates))
	for i, r := range rates {
		res[i] = SavingsRateResponse{SavingsType: r.SavingsType, RatePercent: r.RatePercent}
	}
	return res
}

// OpenSavingsRequest defines the data needed to open a savings account.
type OpenSavingsRequest struct {
	SavingsType domain.SavingsType `json:"savingsType" binding:"required,oneof=FLEXIBLE FIXED_1M FIXED_3M FIXED_6M FIXED_12M"`
	Amount      int64              `json:"amount" binding:"required,gt=0"`
	AutoRenew   bool               `json:"autoRenew"`
}

// SavingsResponse defines the data returned for a savings account.
type SavingsResponse struct {
	SavingsID       string               `json:"savingsID"`
	SavingsType     domain.SavingsType   `json:"savingsType"`
	Balance         int64                `json:"balance"`
	RatePercent     decimal.Decimal      `json:"ratePercent"`
	StartDate       time.Time            `json:"startDate"`
	MaturityDate    *time.Time           `json:"maturityDate"`
	Status          domain.SavingsStatus `json:"status"`
	AutoRenew       bool                 `json:"autoRenew"`
	AccruedInterest int64                `json:"accruedInterest"`
	DaysElapsed     int                  `json:"daysElapsed"`
}

// ToSavingsResponse converts a domain.SavingsProjection to its DTO.
func ToSavingsResponse(p *domain.SavingsProjection) SavingsResponse {
	return SavingsResponse{
		SavingsID:       p.SavingsID,
		SavingsType:     p.SavingsType,
		Balance:         p.Balance,
		RatePercent:     p.RatePercent,
		StartDate:       p.StartDate,
		MaturityDate:    p.MaturityDate,
		Status:          p.Status,
		AutoRenew:       p.AutoRenew,
		AccruedInterest: p.AccruedInterest,
		DaysElapsed:     p.DaysElapsed,
	}
}

// ToListSavingsResponse converts projections to their DTOs.
func ToListSavingsResponse(projections []domain.SavingsProjection) []SavingsResponse {
	res := make([]SavingsResponse, len(projections))
	for i := range projections {
		res[i] = ToSavingsResponse(&projections[i])
	}
	return res
}

// WithdrawSavingsRequest defines the data needed to withdraw from savings.
// A zero or omitted amount withdraws the full balance.
type WithdrawSavingsRequest struct {
	Amount int64 `json:"amount" binding:"omitempty,gte=0"`
}

// WithdrawSavingsResponse defines the settlement returned after a withdrawal.
type WithdrawSavingsResponse struct {
	SavingsID   string               `json:"savingsID"`
	Principal   int64                `json:"principal"`
	Interest    int64                `json:"interest"`
	Penalty     int64                `json:"penalty"`
	DaysElapsed int                  `json:"daysElapsed"`
	Status      domain.SavingsStatus `json:"status"`
	Balance     int64                `json:"balance"` // main account balance after commit
}

// ToWithdrawSavingsResponse converts a domain.SavingsWithdrawalOutcome to its DTO.
func ToWithdrawSavingsResponse(o *domain.SavingsWithdrawalOutcome) WithdrawSavingsResponse {
	return WithdrawSavingsResponse{
		SavingsID:   o.Savings.SavingsID,
		Principal:   o.Settlement.Principal,
		Interest:    o.Settlement.Interest,
		Penalty:     o.Settlement.Penalty,
		DaysElapsed: o.Settlement.DaysElapsed,
		Status:      o.Savings.Status,
		Balance:     o.Account.Balance,
	}
}
