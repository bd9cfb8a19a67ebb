package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"moneta/internal/budget"
	apperrors "moneta/internal/errors"
	"moneta/internal/models"
	"moneta/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db               *gorm.DB
	workspaceService WorkspaceServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, workspaceService WorkspaceServicer) TransactionServicer {
	return &transactionService{
		db:               db,
		workspaceService: workspaceService,
	}
}

// CreateTransaction records a new income or expense transaction.
func (s *transactionService) CreateTransaction(
	userID uint,
	workspaceID *uint,
	transactionType models.TransactionType,
	category string,
	amount int64,
	description string,
	date time.Time,
) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if transactionType != models.TransactionTypeIncome && transactionType != models.TransactionTypeExpense {
		return nil, apperrors.ErrInvalidTransactionType
	}

	if err := s.workspaceService.RequireMembership(userID, workspaceID); err != nil {
		return nil, err
	}

	// Default date to now if not provided
	if date.IsZero() {
		date = time.Now().UTC()
	}

	transaction := &models.Transaction{
		UserID:      userID,
		WorkspaceID: workspaceID,
		Type:        transactionType,
		Category:    category,
		Amount:      amount,
		Description: description,
		Date:        date,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, nil
}

// GetUserTransactions retrieves a paginated, filtered list of the user's transactions.
func (s *transactionService) GetUserTransactions(userID uint, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	base = applyTransactionFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Order("date DESC").Scopes(pagination.Paginate(page)).Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetTransactionByID returns a transaction by ID if it belongs to the user.
func (s *transactionService) GetTransactionByID(userID, transactionID uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// DeleteTransaction soft-deletes a transaction.
func (s *transactionService) DeleteTransaction(userID, transactionID uint) error {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetExpensesForPeriod loads the expense transactions in the workspace and
// period, reduced to the shape the aggregator consumes. A nil workspace ID
// scopes to the user's personal transactions.
func (s *transactionService) GetExpensesForPeriod(userID uint, workspaceID *uint, period budget.Period) ([]budget.Expense, error) {
	if err := s.workspaceService.RequireMembership(userID, workspaceID); err != nil {
		return nil, err
	}

	start, end := period.Resolve()

	query := s.db.Model(&models.Transaction{}).
		Where("type = ? AND date BETWEEN ? AND ?", models.TransactionTypeExpense, start, end)
	if workspaceID != nil {
		query = query.Where("workspace_id = ?", *workspaceID)
	} else {
		query = query.Where("user_id = ? AND workspace_id IS NULL", userID)
	}

	var rows []models.Transaction
	if err := query.Select("category", "amount").Find(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	expenses := make([]budget.Expense, 0, len(rows))
	for _, row := range rows {
		expenses = append(expenses, budget.Expense{Category: row.Category, Amount: row.Amount})
	}
	return expenses, nil
}

// applyTransactionFilters adds the optional filter clauses to a query.
func applyTransactionFilters(query *gorm.DB, filter TransactionFilter) *gorm.DB {
	if filter.FromDate != nil {
		query = query.Where("date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("date <= ?", *filter.ToDate)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.WorkspaceID != nil {
		query = query.Where("workspace_id = ?", *filter.WorkspaceID)
	}
	return query
}
