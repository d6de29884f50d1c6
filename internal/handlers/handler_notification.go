package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/quocbank/qbank_backend/internal/core/ports/services"
	"github.com/quocbank/qbank_backend/internal/dto"
	"github.com/quocbank/qbank_backend/internal/middleware"
)

// notificationHandler handles HTTP requests for the notification feed.
type notificationHandler struct {
	notificationService portssvc.NotificationSvcFacade
}

func newNotificationHandler(ns portssvc.NotificationSvcFacade) *notificationHandler {
	return &notificationHandler{
		notificationService: ns,
	}
}

// registerNotificationRoutes registers routes related to notifications.
func registerNotificationRoutes(rg *gin.RouterGroup, notificationService portssvc.NotificationSvcFacade) {
	h := newNotificationHandler(notificationService)

	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.GET("/unread-count", h.countUnread)
		notifications.POST("/:notificationID/read", h.markRead)
		notifications.POST("/read-all", h.markAllRead)
		notifications.DELETE("/:notificationID", h.deleteNotification)
		notifications.DELETE("/read", h.deleteAllRead)
	}
}

// listNotifications returns the caller's feed, newest first.
func (h *notificationHandler) listNotifications(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var params dto.ListNotificationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	notifications, err := h.notificationService.ListNotifications(c.Request.Context(), userID, params.Limit, params.UnreadOnly)
	if err != nil {
		respondError(c, logger, err, "Failed to list notifications")
		return
	}

	c.JSON(http.StatusOK, dto.ToListNotificationsResponse(notifications))
}

// countUnread returns the caller's unread notification count.
func (h *notificationHandler) countUnread(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	count, err := h.notificationService.CountUnread(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to count unread notifications")
		return
	}

	c.JSON(http.StatusOK, dto.UnreadCountResponse{Count: count})
}

// markRead marks one notification as read.
func (h *notificationHandler) markRead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), userID, c.Param("notificationID")); err != nil {
		respondError(c, logger, err, "Failed to mark notification as read")
		return
	}

	c.Status(http.StatusNoContent)
}

// markAllRead marks all of the caller's notifications as read.
func (h *notificationHandler) markAllRead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.notificationService.MarkAllRead(c.Request.Context(), userID); err != nil {
		respondError(c, logger, err, "Failed to mark notifications as read")
		return
	}

	c.Status(http.StatusNoContent)
}

// deleteNotification removes one notification.
func (h *notificationHandler) deleteNotification(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.notificationService.Delete(c.Request.Context(), userID, c.Param("notificationID")); err != nil {
		respondError(c, logger, err, "Failed to delete notification")
		return
	}

	c.Status(http.StatusNoContent)
}

// deleteAllRead removes all of the caller's read notifications.
func (h *notificationHandler) deleteAllRead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.notificationService.DeleteAllRead(c.Request.Context(), userID); err != nil {
		respondError(c, logger, err, "Failed to delete read notifications")
		return
	}

	c.Status(http.StatusNoContent)
}
