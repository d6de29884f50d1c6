package dto

import (
	"time"

	"github.com/quocbank/qbank_backend/internal/core/domain"
)

// CreateScheduledTransferRequest defines the data needed to create a
// recurring transfer.
type CreateScheduledTransferRequest struct {
	ToAccountNumber string           `json:"toAccountNumber" binding:"required,accountnumber"`
	Amount          int64            `json:"amount" binding:"required,gt=0"`
	Frequency       domain.Frequency `json:"frequency" binding:"required,oneof=DAILY WEEKLY MONTHLY"`
	StartDate       time.Time        `json:"startDate" binding:"required"`
	EndDate         *time.Time       `json:"endDate"`
	Message         string           `json:"message" binding:"max=200"`
}

// ScheduledTransferResponse defines the data returned for a schedule entry.
type ScheduledTransferResponse struct {
	ScheduleID      string                `json:"scheduleID"`
	ToAccountNumber string                `json:"toAccountNumber"`
	ToAccountName   string                `json:"toAccountName"`
	Amount          int64                 `json:"amount"`
	Frequency       domain.Frequency      `json:"frequency"`
	StartDate       time.Time             `json:"startDate"`
	EndDate         *time.Time            `json:"endDate"`
	NextRunDate     time.Time             `json:"nextRunDate"`
	Message         string                `json:"message"`
	Status          domain.ScheduleStatus `json:"status"`
	LastRunAt       *time.Time            `json:"lastRunAt"`
	RunCount        int                   `json:"runCount"`
}

// ToScheduledTransferResponse converts a domain.ScheduledTransfer to its DTO.
func ToScheduledTransferResponse(st *domain.ScheduledTransfer) ScheduledTransferResponse {
	return ScheduledTransferResponse{
		ScheduleID:      st.ScheduleID,
		ToAccountNumber: st.ToAccountNumber,
		ToAccountName:   st.ToAccountName,
		Amount:          st.Amount,
		Frequency:       st.Frequency,
		StartDate:       st.StartDate,
		EndDate:         st.EndDate,
		NextRunDate:     st.NextRunDate,
		Message:         st.Message,
		Status:          st.Status,
		LastRunAt:       st.LastRunAt,
		RunCount:        st.RunCount,
	}
}

// ToListScheduledTransfersResponse converts schedule entries to their DTOs.
func ToListScheduledTransfersResponse(entries []domain.ScheduledTransfer) []ScheduledTransferResponse {
	res := make([]ScheduledTransferResponse, len(entries))
	for i := range entries {
		res[i] = ToScheduledTransferResponse(&entries[i])
	}
	return res
}

// RunSchedulesResponse reports the outcome of a due-scan pass.
type RunSchedulesResponse struct {
	Executed int `json:"executed"`
	Failed   int `json:"failed"`
}
