package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/quocbank/qbank_backend/internal/core/ports/services"
	"github.com/quocbank/qbank_backend/internal/dto"
	"github.com/quocbank/qbank_backend/internal/middleware"
)

// accountHandler handles HTTP requests related to the caller's account.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("/me", h.getMyAccount)
		accounts.GET("/summary", h.getAccountSummary)
		accounts.GET("/lookup", h.lookupRecipient)
	}
}

// getMyAccount returns the caller's payment account, provisioning one on
// first access.
func (h *accountHandler) getMyAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	account, err := h.accountService.GetMyAccount(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve account")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// getAccountSummary returns the caller's account with the aggregate balance
// of their open savings accounts.
func (h *accountHandler) getAccountSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	summary, err := h.accountService.GetAccountSummary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve account summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountSummaryResponse(summary))
}

// lookupRecipient resolves an account number to its owner's display name for
// pre-transfer confirmation.
func (h *accountHandler) lookupRecipient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	accountNumber := c.Query("accountNumber")
	if accountNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "accountNumber query parameter is required"})
		return
	}

	recipient, err := h.accountService.LookupRecipient(c.Request.Context(), userID, accountNumber)
	if err != nil {
		respondError(c, logger, err, "Failed to look up recipient")
		return
	}

	logger.Info("Recipient lookup succeeded", slog.String("account_number", recipient.AccountNumber))
	c.JSON(http.StatusOK, dto.RecipientResponse{
		AccountNumber: recipient.AccountNumber,
		FullName:      recipient.FullName,
	})
}
