package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quocbank/qbank_backend/internal/core/domain"
	portssvc "github.com/quocbank/qbank_backend/internal/core/ports/services"
	"github.com/quocbank/qbank_backend/internal/dto"
	"github.com/quocbank/qbank_backend/internal/middleware"
)

// scheduledTransferHandler handles HTTP requests for recurring transfers.
type scheduledTransferHandler struct {
	scheduledService portssvc.ScheduledTransferSvcFacade
}

func newScheduledTransferHandler(ss portssvc.ScheduledTransferSvcFacade) *scheduledTransferHandler {
	return &scheduledTransferHandler{
		scheduledService: ss,
	}
}

// registerScheduledTransferRoutes registers routes related to recurring transfers.
func registerScheduledTransferRoutes(rg *gin.RouterGroup, scheduledService portssvc.ScheduledTransferSvcFacade) {
	h := newScheduledTransferHandler(scheduledService)

	schedules := rg.Group("/scheduled-transfers")
	{
		schedules.POST("", h.createSchedule)
		schedules.GET("", h.listSchedules)
		schedules.GET("/:scheduleID", h.getSchedule)
		schedules.POST("/:scheduleID/pause", h.pauseSchedule)
		schedules.POST("/:scheduleID/resume", h.resumeSchedule)
		schedules.DELETE("/:scheduleID", h.cancelSchedule)
		schedules.POST("/run", h.runDueSchedules)
	}
}

// createSchedule persists a new recurring transfer.
func (h *scheduledTransferHandler) createSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.CreateScheduledTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateScheduledTransfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	schedule, err := h.scheduledService.CreateSchedule(c.Request.Context(), domain.CreateScheduleCommand{
		UserID:          userID,
		ToAccountNumber: req.ToAccountNumber,
		Amount:          req.Amount,
		Frequency:       req.Frequency,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Message:         req.Message,
	})
	if err != nil {
		respondError(c, logger, err, "Failed to create scheduled transfer")
		return
	}

	c.JSON(http.StatusCreated, dto.ToScheduledTransferResponse(schedule))
}

// listSchedules returns the caller's ACTIVE and PAUSED entries.
func (h *scheduledTransferHandler) listSchedules(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	schedules, err := h.scheduledService.ListSchedules(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list scheduled transfers")
		return
	}

	c.JSON(http.StatusOK, dto.ToListScheduledTransfersResponse(schedules))
}

// getSchedule returns one of the caller's entries.
func (h *scheduledTransferHandler) getSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	schedule, err := h.scheduledService.GetSchedule(c.Request.Context(), userID, c.Param("scheduleID"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve scheduled transfer")
		return
	}

	c.JSON(http.StatusOK, dto.ToScheduledTransferResponse(schedule))
}

// pauseSchedule transitions an entry ACTIVE -> PAUSED.
func (h *scheduledTransferHandler) pauseSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.scheduledService.PauseSchedule(c.Request.Context(), userID, c.Param("scheduleID")); err != nil {
		respondError(c, logger, err, "Failed to pause scheduled transfer")
		return
	}

	c.Status(http.StatusNoContent)
}

// resumeSchedule transitions an entry PAUSED -> ACTIVE.
func (h *scheduledTransferHandler) resumeSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.scheduledService.ResumeSchedule(c.Request.Context(), userID, c.Param("scheduleID")); err != nil {
		respondError(c, logger, err, "Failed to resume scheduled transfer")
		return
	}

	c.Status(http.StatusNoContent)
}

// cancelSchedule transitions an entry to CANCELLED.
func (h *scheduledTransferHandler) cancelSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.scheduledService.CancelSchedule(c.Request.Context(), userID, c.Param("scheduleID")); err != nil {
		respondError(c, logger, err, "Failed to cancel scheduled transfer")
		return
	}

	c.Status(http.StatusNoContent)
}

// runDueSchedules triggers a due-scan pass immediately. The background ticker
// runs the same scan; this route exists for operations tooling.
func (h *scheduledTransferHandler) runDueSchedules(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := requireUserID(c, logger); !ok {
		return
	}

	executed, failed, err := h.scheduledService.RunDueSchedules(c.Request.Context(), time.Now().UTC())
	if err != nil {
		respondError(c, logger, err, "Failed to run due schedules")
		return
	}

	logger.Info("Due-scan pass completed",
		slog.Int("executed", executed),
		slog.Int("failed", failed))
	c.JSON(http.StatusOK, dto.RunSchedulesResponse{Executed: executed, Failed: failed})
}
