package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quocbank/qbank_backend/internal/core/domain"
	portssvc "github.com/quocbank/qbank_backend/internal/core/ports/services"
	"github.com/quocbank/qbank_backend/internal/dto"
	"github.com/quocbank/qbank_backend/internal/middleware"
)

const defaultBillPaymentLimit = 20

// billHandler handles HTTP requests related to bill payments.
type billHandler struct {
	billService portssvc.BillSvcFacade
}

func newBillHandler(bs portssvc.BillSvcFacade) *billHandler {
	return &billHandler{
		billService: bs,
	}
}

// registerBillRoutes registers routes related to bills.
func registerBillRoutes(rg *gin.RouterGroup, billService portssvc.BillSvcFacade, limitMW gin.HandlerFunc) {
	h := newBillHandler(billService)

	bills := rg.Group("/bills")
	{
		bills.GET("/providers", h.listProviders)
		bills.POST("/pay", limitMW, h.payBill)
		bills.GET("/payments", h.listPayments)
		bills.POST("/templates", h.createTemplate)
		bills.GET("/templates", h.listTemplates)
		bills.DELETE("/templates/:templateID", h.deleteTemplate)
	}
}

// listProviders returns active bill providers, optionally filtered by category.
func (h *billHandler) listProviders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	providers, err := h.billService.ListProviders(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, logger, err, "Failed to list providers")
		return
	}

	c.JSON(http.StatusOK, dto.ToListProvidersResponse(providers))
}

// payBill runs one bill payment.
func (h *billHandler) payBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.PayBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PayBill", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	outcome, err := h.billService.PayBill(c.Request.Context(), domain.BillPaymentCommand{
		UserID:       userID,
		ProviderID:   req.ProviderID,
		CustomerCode: req.CustomerCode,
		Amount:       req.Amount,
		BillMonth:    req.BillMonth,
		Description:  req.Description,
	})
	if err != nil {
		respondError(c, logger, err, "Failed to pay bill")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPayBillOutcomeResponse(outcome))
}

// listPayments returns the caller's settled payments, newest first.
func (h *billHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	payments, err := h.billService.ListPayments(c.Request.Context(), userID, defaultBillPaymentLimit)
	if err != nil {
		respondError(c, logger, err, "Failed to list payments")
		return
	}

	c.JSON(http.StatusOK, dto.ToListBillPaymentsResponse(payments))
}

// createTemplate saves a provider/customer pairing for reuse.
func (h *billHandler) createTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.CreateBillTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBillTemplate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	template, err := h.billService.CreateTemplate(c.Request.Context(), userID, req.ProviderID, req.CustomerCode, req.Name)
	if err != nil {
		respondError(c, logger, err, "Failed to create template")
		return
	}

	c.JSON(http.StatusCreated, dto.ToBillTemplateResponse(template))
}

// listTemplates returns the caller's saved templates.
func (h *billHandler) listTemplates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	templates, err := h.billService.ListTemplates(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list templates")
		return
	}

	c.JSON(http.StatusOK, dto.ToListBillTemplatesResponse(templates))
}

// deleteTemplate removes one of the caller's templates.
func (h *billHandler) deleteTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.billService.DeleteTemplate(c.Request.Context(), userID, c.Param("templateID")); err != nil {
		respondError(c, logger, err, "Failed to delete template")
		return
	}

	c.Status(http.StatusNoContent)
}
