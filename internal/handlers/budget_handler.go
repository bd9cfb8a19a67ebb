package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "moneta/internal/errors"
	"moneta/internal/logger"
	"moneta/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
	alertService  services.AlertServicer
	auditService  services.AuditServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, alertService services.AlertServicer, auditService services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, alertService: alertService, auditService: auditService}
}

// CreateBudgetRequest represents the request payload for creating a budget.
type CreateBudgetRequest struct {
	WorkspaceID *uint  `json:"workspace_id"`
	Category    string `json:"category" binding:"required,min=1,max=100"`
	AmountLimit int64  `json:"amount_limit" binding:"required,gte=0"`
	Year        int    `json:"year" binding:"required"`
	Month       int    `json:"month" binding:"required,month"`
}

// UpdateBudgetRequest represents the request payload for updating a budget's limit.
type UpdateBudgetRequest struct {
	AmountLimit int64 `json:"amount_limit" binding:"required,gte=0"`
}

// parsePeriodQuery reads the year and month query parameters, defaulting to
// the current calendar month in UTC when both are omitted.
func parsePeriodQuery(c *gin.Context) (int, int, error) {
	yearStr, monthStr := c.Query("year"), c.Query("month")
	if yearStr == "" && monthStr == "" {
		now := time.Now().UTC()
		return now.Year(), int(now.Month()), nil
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return 0, 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid year")
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return 0, 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid month")
	}
	return year, month, nil
}

// parseWorkspaceQuery reads the optional workspace_id query parameter.
// Absent means the user's personal scope.
func parseWorkspaceQuery(c *gin.Context) (*uint, error) {
	v := c.Query("workspace_id")
	if v == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid workspace_id")
	}
	wsID := uint(id)
	return &wsID, nil
}

// CreateBudget handles the creation of a new monthly budget.
// @Summary     Create a budget
// @Description Create a monthly spending limit for a category
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateBudgetRequest true "Budget details"
// @Success     201 {object} models.Budget "Budget created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Workspace not found"
// @Failure     409 {object} ErrorResponse "Budget already exists for this category and period"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget, err := h.budgetService.CreateBudget(userID, req.WorkspaceID, req.Category, req.AmountLimit, req.Year, req.Month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_BUDGET", "budget", budget.ID, c.ClientIP(),
		map[string]interface{}{"category": req.Category, "amount_limit": req.AmountLimit, "year": req.Year, "month": req.Month})

	c.JSON(http.StatusCreated, gin.H{"budget": budget})
}

// GetBudgets handles listing budgets for a scope and period.
// @Summary     Get budgets
// @Description Get the budgets for a workspace (or personal scope) and period
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       workspace_id query int false "Workspace ID (omit for personal budgets)"
// @Param       year         query int false "Year (defaults to current UTC year)"
// @Param       month        query int false "Month 1-12 (defaults to current UTC month)"
// @Success     200 {object} map[string][]models.Budget "Budgets"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Workspace not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [get]
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	workspaceID, err := parseWorkspaceQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	year, month, err := parsePeriodQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgets, err := h.budgetService.GetWorkspaceBudgets(userID, workspaceID, year, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgets": budgets})
}

// GetBudgetStatuses handles computing the spend status of every budget in a
// scope and period. Evaluating statuses also runs the alert trigger policy,
// so reading the dashboard is what raises threshold alerts.
// @Summary     Get budget statuses
// @Description Compute spent amount, percentage used, and alert tier for each budget in the period
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       workspace_id query int false "Workspace ID (omit for personal budgets)"
// @Param       year         query int false "Year (defaults to current UTC year)"
// @Param       month        query int false "Month 1-12 (defaults to current UTC month)"
// @Success     200 {object} map[string][]budget.Status "Budget statuses"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Workspace not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/status [get]
func (h *BudgetHandler) GetBudgetStatuses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	workspaceID, err := parseWorkspaceQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	year, month, err := parsePeriodQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	statuses, err := h.budgetService.GetBudgetStatuses(userID, workspaceID, year, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	// Alert evaluation must not fail the status read.
	if _, err := h.alertService.EvaluateStatuses(userID, statuses); err != nil {
		logger.Get().Errorw("alert evaluation failed",
			"user_id", userID,
			"year", year,
			"month", month,
			"error", err.Error(),
		)
	}

	c.JSON(http.StatusOK, gin.H{"statuses": statuses})
}

// UpdateBudget handles updating a budget's monthly limit.
// @Summary     Update budget limit
// @Description Update the monthly spending limit of a budget
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                 true "Budget ID"
// @Param       request body UpdateBudgetRequest true "New limit"
// @Success     200 {object} models.Budget "Updated budget"
// @Failure     400 {object} ErrorResponse "Invalid input or budget ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id} [put]
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget, err := h.budgetService.UpdateBudgetLimit(userID, budgetID, req.AmountLimit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_BUDGET", "budget", budgetID, c.ClientIP(),
		map[string]interface{}{"amount_limit": req.AmountLimit})

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// DeleteBudget handles deleting a budget.
// @Summary     Delete budget
// @Description Delete a budget by ID (soft delete)
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Budget ID"
// @Success     200 {object} MessageResponse "Budget deleted"
// @Failure     400 {object} ErrorResponse "Invalid budget ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.budgetService.DeleteBudget(userID, budgetID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_BUDGET", "budget", budgetID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Budget deleted successfully"})
}
