package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a financial transaction in the system.
// Amount is stored in minor currency units (cents).
type Transaction struct {
	Base
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	WorkspaceID *uint           `gorm:"index" json:"workspace_id,omitempty"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Category    string          `gorm:"not null;index" json:"category"`
	Amount      int64           `gorm:"type:bigint;not null" json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `gorm:"not null;index" json:"date"`

	// Relationships
	Workspace *Workspace `gorm:"foreignKey:WorkspaceID" json:"workspace,omitempty"`
}
