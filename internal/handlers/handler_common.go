package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quocbank/qbank_backend/internal/apperrors"
	"github.com/quocbank/qbank_backend/internal/core/services"
	"github.com/quocbank/qbank_backend/internal/middleware"
)

// clientValidationErrs are service-level rule violations that map to 400.
var clientValidationErrs = []error{
	services.ErrAmountNotPositive,
	services.ErrTransferOverLimit,
	services.ErrInvalidAccountNo,
	services.ErrBillOverLimit,
	services.ErrCustomerCodeEmpty,
	services.ErrUnknownSavingsType,
	services.ErrDepositOutOfRange,
	services.ErrUnknownFrequency,
	services.ErrStartDateInPast,
	services.ErrEndBeforeStart,
	services.ErrScheduleSelfRef,
}

// respondError maps a service error to an HTTP status. Raw store errors stay
// in the logs; clients only see the mapped message.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	for _, sentinel := range clientValidationErrs {
		if errors.Is(err, sentinel) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInsufficientFunds):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden), errors.Is(err, apperrors.ErrAccountInactive):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// requireUserID pulls the authenticated user ID or aborts with 401.
func requireUserID(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}
