package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"moneta/internal/models"
	"moneta/internal/uuid"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestWorkspace creates a family workspace owned by the user, with the
// owner added as a member.
func CreateTestWorkspace(t *testing.T, db *gorm.DB, ownerID uint) *models.Workspace {
	t.Helper()

	workspace := &models.Workspace{
		OwnerID:    ownerID,
		Name:       fmt.Sprintf("Test Workspace %d", nextID()),
		Type:       models.WorkspaceTypeFamily,
		Currency:   "USD",
		InviteCode: uuid.New(),
	}
	if err := db.Create(workspace).Error; err != nil {
		t.Fatalf("failed to create test workspace: %v", err)
	}

	member := &models.WorkspaceMember{
		WorkspaceID: workspace.ID,
		UserID:      ownerID,
		Role:        models.WorkspaceRoleOwner,
	}
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("failed to create test workspace member: %v", err)
	}
	return workspace
}

// CreateTestBudget creates a budget of 1000.00 for the category in the given
// workspace (nil for personal scope) for January 2025.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID uint, workspaceID *uint, category string) *models.Budget {
	t.Helper()
	return CreateTestBudgetForPeriod(t, db, userID, workspaceID, category, 2025, 1, 100000)
}

// CreateTestBudgetForPeriod creates a budget with an explicit period and limit (in cents).
func CreateTestBudgetForPeriod(t *testing.T, db *gorm.DB, userID uint, workspaceID *uint, category string, year, month int, limit int64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:      userID,
		WorkspaceID: workspaceID,
		Category:    category,
		Year:        year,
		Month:       month,
		AmountLimit: limit,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestExpense creates an expense transaction (amount in cents) dated
// inside January 2025, matching the default test budget period.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID uint, workspaceID *uint, category string, amount int64) *models.Transaction {
	t.Helper()
	date := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	return CreateTestTransaction(t, db, userID, workspaceID, models.TransactionTypeExpense, category, amount, date)
}

// CreateTestTransaction creates a transaction of the given type, category and amount (in cents).
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID uint, workspaceID *uint, txType models.TransactionType, category string, amount int64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:      userID,
		WorkspaceID: workspaceID,
		Type:        txType,
		Category:    category,
		Amount:      amount,
		Date:        date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}
