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

// savingsHandler handles HTTP requests related to savings accounts.
type savingsHandler struct {
	savingsService portssvc.SavingsSvcFacade
}

func newSavingsHandler(ss portssvc.SavingsSvcFacade) *savingsHandler {
	return &savingsHandler{
		savingsService: ss,
	}
}

// registerSavingsRoutes registers routes related to savings.
func registerSavingsRoutes(rg *gin.RouterGroup, savingsService portssvc.SavingsSvcFacade, limitMW gin.HandlerFunc) {
	h := newSavingsHandler(savingsService)

	savings := rg.Group("/savings")
	{
		savings.GET("/rates", h.listRates)
		savings.POST("", limitMW, h.openSavings)
		savings.GET("", h.listSavings)
		savings.GET("/:savingsID", h.getSavings)
		savings.POST("/:savingsID/withdraw", limitMW, h.withdraw)
	}
}

// listRates returns the current tenor rate table.
func (h *savingsHandler) listRates(c *gin.Context) {
	rates := h.savingsService.ListRates(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListSavingsRatesResponse(rates))
}

// openSavings opens a savings account funded from the main account.
func (h *savingsHandler) openSavings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.OpenSavingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for OpenSavings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	savings, err := h.savingsService.OpenSavings(c.Request.Context(), domain.OpenSavingsCommand{
		UserID:      userID,
		SavingsType: req.SavingsType,
		Amount:      req.Amount,
		AutoRenew:   req.AutoRenew,
	})
	if err != nil {
		respondError(c, logger, err, "Failed to open savings account")
		return
	}

	projection := domain.ProjectSavings(*savings, savings.StartDate)
	c.JSON(http.StatusCreated, dto.ToSavingsResponse(&projection))
}

// listSavings returns the caller's open savings accounts with to-date
// interest projections.
func (h *savingsHandler) listSavings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	projections, err := h.savingsService.ListSavings(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list savings accounts")
		return
	}

	c.JSON(http.StatusOK, dto.ToListSavingsResponse(projections))
}

// getSavings returns one of the caller's savings accounts.
func (h *savingsHandler) getSavings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	projection, err := h.savingsService.GetSavings(c.Request.Context(), userID, c.Param("savingsID"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve savings account")
		return
	}

	c.JSON(http.StatusOK, dto.ToSavingsResponse(projection))
}

// withdraw settles a withdrawal from one of the caller's savings accounts.
func (h *savingsHandler) withdraw(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.WithdrawSavingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for WithdrawSavings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	outcome, err := h.savingsService.Withdraw(c.Request.Context(), domain.SavingsWithdrawalCommand{
		UserID:    userID,
		SavingsID: c.Param("savingsID"),
		Amount:    req.Amount,
	})
	if err != nil {
		respondError(c, logger, err, "Failed to withdraw from savings")
		return
	}

	c.JSON(http.StatusOK, dto.ToWithdrawSavingsResponse(outcome))
}
