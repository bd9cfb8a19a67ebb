package services

import (
	"errors"

	"gorm.io/gorm"

	"moneta/internal/budget"
	apperrors "moneta/internal/errors"
	"moneta/internal/models"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db                 *gorm.DB
	workspaceService   WorkspaceServicer
	transactionService TransactionServicer
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB, workspaceService WorkspaceServicer, transactionService TransactionServicer) BudgetServicer {
	return &budgetService{
		db:                 db,
		workspaceService:   workspaceService,
		transactionService: transactionService,
	}
}

// validatePeriod rejects malformed year/month before any computation.
func validatePeriod(year, month int) error {
	if month < 1 || month > 12 {
		return apperrors.ErrInvalidPeriod
	}
	if year < 1900 || year > 9999 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "year is out of range")
	}
	return nil
}

// CreateBudget creates a spending limit for a category in one calendar month.
// At most one budget may exist per (workspace, category, year, month).
func (s *budgetService) CreateBudget(userID uint, workspaceID *uint, category string, amountLimit int64, year, month int) (*models.Budget, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if amountLimit < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount limit must not be negative")
	}

	if err := s.workspaceService.RequireMembership(userID, workspaceID); err != nil {
		return nil, err
	}

	if s.budgetExists(userID, workspaceID, category, year, month) {
		return nil, apperrors.ErrBudgetExists
	}

	b := &models.Budget{
		UserID:      userID,
		WorkspaceID: workspaceID,
		Category:    category,
		Year:        year,
		Month:       month,
		AmountLimit: amountLimit,
	}

	if err := s.db.Create(b).Error; err != nil {
		// A concurrent create may have hit the unique index first.
		if s.budgetExists(userID, workspaceID, category, year, month) {
			return nil, apperrors.ErrBudgetExists
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return b, nil
}

// budgetExists reports whether a budget already covers the key.
func (s *budgetService) budgetExists(userID uint, workspaceID *uint, category string, year, month int) bool {
	query := s.db.Model(&models.Budget{}).
		Where("category = ? AND year = ? AND month = ?", category, year, month)
	query = scopeToWorkspace(query, userID, workspaceID)

	var count int64
	query.Count(&count)
	return count > 0
}

// GetWorkspaceBudgets returns the budgets for one workspace and period.
func (s *budgetService) GetWorkspaceBudgets(userID uint, workspaceID *uint, year, month int) ([]models.Budget, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}
	if err := s.workspaceService.RequireMembership(userID, workspaceID); err != nil {
		return nil, err
	}

	query := s.db.Model(&models.Budget{}).Where("year = ? AND month = ?", year, month)
	query = scopeToWorkspace(query, userID, workspaceID)

	var budgets []models.Budget
	if err := query.Order("category").Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budgets, nil
}

// GetBudgetByID returns a budget by ID if it belongs to the user.
func (s *budgetService) GetBudgetByID(userID, budgetID uint) (*models.Budget, error) {
	var b models.Budget
	if err := s.db.Where("id = ? AND user_id = ?", budgetID, userID).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &b, nil
}

// UpdateBudgetLimit changes a budget's spending limit.
func (s *budgetService) UpdateBudgetLimit(userID, budgetID uint, amountLimit int64) (*models.Budget, error) {
	if amountLimit < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount limit must not be negative")
	}

	b, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(b).Update("amount_limit", amountLimit).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return b, nil
}

// DeleteBudget soft-deletes a budget.
func (s *budgetService) DeleteBudget(userID, budgetID uint) error {
	b, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(b).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetBudgetStatuses derives the per-category spend status for every budget in
// the workspace and period: fetch budgets and expense transactions, aggregate
// spend per category, and combine. The derivation itself is pure; nothing is
// stored.
func (s *budgetService) GetBudgetStatuses(userID uint, workspaceID *uint, year, month int) ([]budget.Status, error) {
	budgets, err := s.GetWorkspaceBudgets(userID, workspaceID, year, month)
	if err != nil {
		return nil, err
	}

	expenses, err := s.transactionService.GetExpensesForPeriod(userID, workspaceID, budget.Period{Year: year, Month: month})
	if err != nil {
		return nil, err
	}

	return budget.ComputeStatuses(budgets, expenses), nil
}

// scopeToWorkspace filters a budget query to one workspace, or to the user's
// personal (NULL workspace) scope.
func scopeToWorkspace(query *gorm.DB, userID uint, workspaceID *uint) *gorm.DB {
	if workspaceID != nil {
		return query.Where("workspace_id = ?", *workspaceID)
	}
	return query.Where("user_id = ? AND workspace_id IS NULL", userID)
}
