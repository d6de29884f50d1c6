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

// transferHandler handles HTTP requests for transfers and history.
type transferHandler struct {
	transferService portssvc.TransferSvcFacade
	accountService  portssvc.AccountSvcFacade
}

func newTransferHandler(ts portssvc.TransferSvcFacade, as portssvc.AccountSvcFacade) *transferHandler {
	return &transferHandler{
		transferService: ts,
		accountService:  as,
	}
}

// registerTransferRoutes registers routes related to transfers.
func registerTransferRoutes(rg *gin.RouterGroup, transferService portssvc.TransferSvcFacade, accountService portssvc.AccountSvcFacade, limitMW gin.HandlerFunc) {
	h := newTransferHandler(transferService, accountService)

	rg.POST("/transfers", limitMW, h.createTransfer)
	rg.GET("/transactions", h.listTransactions)
}

// createTransfer runs one peer-to-peer transfer.
func (h *transferHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	outcome, err := h.transferService.ExecuteTransfer(c.Request.Context(), domain.TransferCommand{
		FromUserID:      userID,
		ToAccountNumber: req.ToAccountNumber,
		Amount:          req.Amount,
		Message:         req.Message,
	})
	if err != nil {
		respondError(c, logger, err, "Failed to execute transfer")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransferResponse(outcome))
}

// listTransactions returns the caller's transaction history, newest first,
// with cursor pagination.
func (h *transferHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	account, err := h.accountService.GetMyAccount(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve account")
		return
	}

	txns, nextToken, err := h.transferService.ListTransactions(c.Request.Context(), userID, params.Limit, params.NextToken)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns, account.AccountID, nextToken))
}
