package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "moneta/internal/errors"
	"moneta/internal/pagination"
	"moneta/internal/services"
)

// AlertHandler handles financial alert requests.
type AlertHandler struct {
	alertService services.AlertServicer
}

// NewAlertHandler creates a new AlertHandler.
func NewAlertHandler(alertService services.AlertServicer) *AlertHandler {
	return &AlertHandler{alertService: alertService}
}

// GetAlerts handles listing the user's budget alerts.
// @Summary     Get alerts
// @Description Get a paginated list of the user's budget threshold alerts, newest first
// @Tags        alerts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page        query int  false "Page number (default 1)"
// @Param       page_size   query int  false "Items per page (default 20, max 100)"
// @Param       undismissed query bool false "Only return alerts the user has not dismissed"
// @Success     200 {object} pagination.PageResponse[models.FinancialAlert] "Paginated alerts"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /alerts [get]
func (h *AlertHandler) GetAlerts(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	undismissedOnly := false
	switch c.Query("undismissed") {
	case "", "false":
	case "true":
		undismissedOnly = true
	default:
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "undismissed must be 'true' or 'false'"))
		return
	}

	result, err := h.alertService.GetUserAlerts(userID, page, undismissedOnly)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DismissAlert handles dismissing an alert from the user's feed. The alert
// record is kept so the same condition does not re-alert within its period.
// @Summary     Dismiss alert
// @Description Mark an alert as dismissed. Dismissed alerts still suppress duplicate notifications.
// @Tags        alerts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Alert ID"
// @Success     200 {object} MessageResponse "Alert dismissed"
// @Failure     400 {object} ErrorResponse "Invalid alert ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Alert not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /alerts/{id}/dismiss [post]
func (h *AlertHandler) DismissAlert(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	alertID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.alertService.DismissAlert(userID, alertID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Alert dismissed"})
}
