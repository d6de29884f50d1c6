package dto

import (
	"time"

	"github.com/quocbank/qbank_backend/internal/core/domain"
)

// ProviderResponse defines the data returned for a bill provider.
type ProviderResponse struct {
	ProviderID  string `json:"providerID"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Logo        string `json:"logo"`
	Description string `json:"description"`
}

// ToListProvidersResponse converts providers to their DTOs.
func ToListProvidersResponse(providers []domain.BillProvider) []ProviderResponse {
	res := make([]ProviderResponse, len(providers))
	for i, p := range providers {
		res[i] = ProviderResponse{
			ProviderID:  p.ProviderID,
			Name:        p.Name,
			Category:    p.Category,
			Logo:        p.Logo,
			Description: p.Description,
		}
	}
	return res
}

// PayBillRequest defines the data needed to pay a bill.
type PayBillRequest struct {
	ProviderID   string `json:"providerID" binding:"required,uuid"`
	CustomerCode string `json:"customerCode" binding:"required,max=50"`
	Amount       int64  `json:"amount" binding:"required,gt=0"`
	BillMonth    string `json:"billMonth" binding:"max=7"`
	Description  string `json:"description" binding:"max=200"`
}

// BillPaymentResponse defines the data returned for a settled payment.
type BillPaymentResponse struct {
	PaymentID     string     `json:"paymentID"`
	ProviderID    string     `json:"providerID"`
	CustomerCode  string     `json:"customerCode"`
	Amount        int64      `json:"amount"`
	BillMonth     string     `json:"billMonth"`
	Description   string     `json:"description"`
	Status        string     `json:"status"`
	TransactionID *string    `json:"transactionID"`
	PaidAt        *time.Time `json:"paidAt"`
}

// ToBillPaymentResponse converts a domain.BillPayment to its DTO.
func ToBillPaymentResponse(p *domain.BillPayment) BillPaymentResponse {
	return BillPaymentResponse{
		PaymentID:     p.PaymentID,
		ProviderID:    p.ProviderID,
		CustomerCode:  p.CustomerCode,
		Amount:        p.Amount,
		BillMonth:     p.BillMonth,
		Description:   p.Description,
		Status:        string(p.Status),
		TransactionID: p.TransactionID,
		PaidAt:        p.PaidAt,
	}
}

// PayBillOutcomeResponse adds the post-commit balance to the payment.
type PayBillOutcomeResponse struct {
	BillPaymentResponse
	ProviderName string `json:"providerName"`
	Balance      int64  `json:"balance"`
}

// ToPayBillOutcomeResponse converts a domain.BillPaymentOutcome to its DTO.
func ToPayBillOutcomeResponse(o *domain.BillPaymentOutcome) PayBillOutcomeResponse {
	return PayBillOutcomeResponse{
		BillPaymentResponse: ToBillPaymentResponse(&o.Payment),
		ProviderName:        o.Provider.Name,
		Balance:             o.Account.Balance,
	}
}

// ToListBillPaymentsResponse converts payments to their DTOs.
func ToListBillPaymentsResponse(payments []domain.BillPayment) []BillPaymentResponse {
	res := make([]BillPaymentResponse, len(payments))
	for i := range payments {
		res[i] = ToBillPaymentResponse(&payments[i])
	}
	return res
}

// CreateBillTemplateRequest defines the data needed to save a template.
type CreateBillTemplateRequest struct {
	ProviderID   string `json:"providerID" binding:"required,uuid"`
	CustomerCode string `json:"customerCode" binding:"required,max=50"`
	Name         string `json:"name" binding:"max=100"`
}

// BillTemplateResponse defines the data returned for a saved template.
type BillTemplateResponse struct {
	TemplateID   string    `json:"templateID"`
	ProviderID   string    `json:"providerID"`
	CustomerCode string    `json:"customerCode"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToBillTemplateResponse converts a domain.BillTemplate to its DTO.
func ToBillTemplateResponse(t *domain.BillTemplate) BillTemplateResponse {
	return BillTemplateResponse{
		TemplateID:   t.TemplateID,
		ProviderID:   t.ProviderID,
		CustomerCode: t.CustomerCode,
		Name:         t.Name,
		CreatedAt:    t.CreatedAt,
	}
}

// ToListBillTemplatesResponse converts templates to their DTOs.
func ToListBillTemplatesResponse(templates []domain.BillTemplate) []BillTemplateResponse {
	res := make([]BillTemplateResponse, len(templates))
	for i := range templates {
		res[i] = ToBillTemplateResponse(&templates[i])
	}
	return res
}
