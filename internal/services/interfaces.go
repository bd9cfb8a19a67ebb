package services

import (
	"time"

	"moneta/internal/budget"
	"moneta/internal/models"
	"moneta/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID uint, tokenHash string) error
	GetRefreshTokenHash(userID uint) (string, error)
}

// WorkspaceServicer defines the contract for workspace-related business logic.
type WorkspaceServicer interface {
	CreateWorkspace(ownerID uint, name string, wsType models.WorkspaceType, currency string) (*models.Workspace, error)
	GetUserWorkspaces(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Workspace], error)
	GetWorkspaceByID(userID, workspaceID uint) (*models.Workspace, error)
	UpdateWorkspace(userID, workspaceID uint, name string, currency string) (*models.Workspace, error)
	DeleteWorkspace(userID, workspaceID uint) error
	JoinWorkspace(userID uint, inviteCode string) (*models.Workspace, error)
	RequireMembership(userID uint, workspaceID *uint) error
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate    *time.Time
	ToDate      *time.Time
	Type        *models.TransactionType
	Category    *string
	WorkspaceID *uint
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID uint, workspaceID *uint, transactionType models.TransactionType, category string, amount int64, description string, date time.Time) (*models.Transaction, error)
	GetUserTransactions(userID uint, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID uint) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID uint) error
	GetExpensesForPeriod(userID uint, workspaceID *uint, period budget.Period) ([]budget.Expense, error)
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	CreateBudget(userID uint, workspaceID *uint, category string, amountLimit int64, year, month int) (*models.Budget, error)
	GetWorkspaceBudgets(userID uint, workspaceID *uint, year, month int) ([]models.Budget, error)
	GetBudgetByID(userID, budgetID uint) (*models.Budget, error)
	UpdateBudgetLimit(userID, budgetID uint, amountLimit int64) (*models.Budget, error)
	DeleteBudget(userID, budgetID uint) error
	GetBudgetStatuses(userID uint, workspaceID *uint, year, month int) ([]budget.Status, error)
}

// AlertServicer defines the contract for the alert trigger policy and
// alert access.
type AlertServicer interface {
	EvaluateBudget(userID uint, status budget.Status) (*models.FinancialAlert, error)
	EvaluateStatuses(userID uint, statuses []budget.Status) ([]models.FinancialAlert, error)
	GetUserAlerts(userID uint, page pagination.PageRequest, undismissedOnly bool) (*pagination.PageResponse[models.FinancialAlert], error)
	DismissAlert(userID, alertID uint) error
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
