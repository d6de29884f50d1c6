package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SavingsType is the tenor of a savings product.
type SavingsType string

const (
	SavingsFlexible SavingsType = "FLEXIBLE" // on-demand, no maturity
	SavingsFixed1M  SavingsType = "FIXED_1M"
	SavingsFixed3M  SavingsType = "FIXED_3M"
	SavingsFixed6M  SavingsType = "FIXED_6M"
	SavingsFixed12M SavingsType = "FIXED_12M"
)

// SavingsStatus is the lifecycle state of a savings account.
type SavingsStatus string

const (
	SavingsActive SavingsStatus = "ACTIVE"
	SavingsClosed SavingsStatus = "CLOSED"
)

// Deposit bounds for opening a savings account, in VND.
const (
	SavingsMinDeposit int64 = 1_000_000
	SavingsMaxDeposit int64 = 1_000_000_000
)

// interestRates maps tenor to annual interest rate in percent. The rate is
// snapshotted onto the SavingsAccount at creation; later table changes never
// affect existing accounts.
var interestRates = map[SavingsType]decimal.Decimal{
	SavingsFlexible: decimal.NewFromFloat(0.5),
	SavingsFixed1M:  decimal.NewFromFloat(3.5),
	SavingsFixed3M:  decimal.NewFromFloat(4.5),
	SavingsFixed6M:  decimal.NewFromFloat(5.5),
	SavingsFixed12M: decimal.NewFromFloat(6.5),
}

// InterestRateFor returns the current annual rate (percent) for a tenor.
func InterestRateFor(t SavingsType) (decimal.Decimal, bool) {
	rate, ok := interestRates[t]
	return rate, ok
}

// SavingsRate is one row of the public rate table.
type SavingsRate struct {
	SavingsType SavingsType     `json:"savingsType"`
	RatePercent decimal.Decimal `json:"ratePercent"`
}

// RateTable returns the current rate table in ascending tenor order.
func RateTable() []SavingsRate {
	order := []SavingsType{SavingsFlexible, SavingsFixed1M, SavingsFixed3M, SavingsFixed6M, SavingsFixed12M}
	table := make([]SavingsRate, 0, len(order))
	for _, t := range order {
		table = append(table, SavingsRate{SavingsType: t, RatePercent: interestRates[t]})
	}
	return table
}

// SavingsAccount is a savings sub-ledger linked 1:1 to a source Account.
// RatePercent is fixed at creation regardless of later rate-table changes.
type SavingsAccount struct {
	SavingsID    string          `json:"savingsID"` // Primary Key (UUID)
	AccountID    string          `json:"accountID"` // FK -> accounts.account_id (source)
	SavingsType  SavingsType     `json:"savingsType"`
	Balance      int64           `json:"balance"`     // VND principal pool
	RatePercent  decimal.Decimal `json:"ratePercent"` // annual rate, snapshotted
	StartDate    time.Time       `json:"startDate"`
	MaturityDate *time.Time      `json:"maturityDate"` // nil for FLEXIBLE
	Status       SavingsStatus   `json:"status"`
	AutoRenew    bool            `json:"autoRenew"`
	AuditFields
}

// MaturityDateFor computes the maturity date by calendar offset from start.
// Month arithmetic follows time.AddDate normalization: an out-of-range day
// rolls into the following month (Jan 31 + 1 month = Mar 3).
func MaturityDateFor(start time.Time, t SavingsType) *time.Time {
	var m time.Time
	switch t {
	case SavingsFixed1M:
		m = start.AddDate(0, 1, 0)
	case SavingsFixed3M:
		m = start.AddDate(0, 3, 0)
	case SavingsFixed6M:
		m = start.AddDate(0, 6, 0)
	case SavingsFixed12M:
		m = start.AddDate(1, 0, 0)
	default:
		return nil
	}
	return &m
}

// SimpleInterest computes interest in VND for a principal held days days at
// an annual rate given in percent: principal * rate * days / (365 * 100).
// The result is truncated to whole VND.
func SimpleInterest(principal int64, ratePercent decimal.Decimal, days int) int64 {
	if principal <= 0 || days <= 0 {
		return 0
	}
	interest := decimal.NewFromInt(principal).
		Mul(ratePercent).
		Mul(decimal.NewFromInt(int64(days))).
		Div(decimal.NewFromInt(365 * 100))
	return interest.Floor().IntPart()
}

// SavingsProjection pairs a savings account with the interest it has accrued
// to date at the snapshotted rate. Listing and detail views use it; the
// projection is informational and never mutates the ledger.
type SavingsProjection struct {
	SavingsAccount
	AccruedInterest int64 `json:"accruedInterest"` // VND, to date
	DaysElapsed     int   `json:"daysElapsed"`
}

// ProjectSavings computes the to-date projection for sa at time now.
func ProjectSavings(sa SavingsAccount, now time.Time) SavingsProjection {
	days := DaysBetween(sa.StartDate, now)
	return SavingsProjection{
		SavingsAccount:  sa,
		AccruedInterest: SimpleInterest(sa.Balance, sa.RatePercent, days),
		DaysElapsed:     days,
	}
}

// WithdrawalSettlement is the outcome of settling a savings withdrawal.
// Interest is newly created money credited to the main account; it is never
// deducted from the remaining principal.
type WithdrawalSettlement struct {
	Principal   int64 // VND withdrawn from the savings balance
	Interest    int64 // VND realized interest
	Penalty     int64 // VND forfeited for early withdrawal, zero otherwise
	DaysElapsed int
	Closes      bool // withdrawal empties the savings balance
}

// SettleWithdrawal computes the settlement for withdrawing amount from sa at
// time now. A zero amount means full balance. Interest accrues on the entire
// balance at the snapshotted rate; withdrawing a fixed tenor before maturity
// realizes interest at the flexible base rate instead, with the shortfall
// recorded as the penalty.
func SettleWithdrawal(sa SavingsAccount, amount int64, now time.Time) (WithdrawalSettlement, error) {
	if amount == 0 {
		amount = sa.Balance
	}
	if amount < 0 || amount > sa.Balance {
		return WithdrawalSettlement{}, fmt.Errorf("withdrawal amount %d exceeds savings balance %d", amount, sa.Balance)
	}

	days := DaysBetween(sa.StartDate, now)
	interest := SimpleInterest(sa.Balance, sa.RatePercent, days)

	var penalty int64
	if sa.MaturityDate != nil && now.Before(*sa.MaturityDate) {
		baseRate := interestRates[SavingsFlexible]
		baseInterest := SimpleInterest(sa.Balance, baseRate, days)
		penalty = interest - baseInterest
		interest = baseInterest
	}

	return WithdrawalSettlement{
		Principal:   amount,
		Interest:    interest,
		Penalty:     penalty,
		DaysElapsed: days,
		Closes:      amount == sa.Balance,
	}, nil
}
