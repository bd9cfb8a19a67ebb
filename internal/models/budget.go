package models

// Budget represents a monthly spending limit for one category in one workspace.
// AmountLimit is stored in minor currency units (cents).
//
// At most one budget may exist per (workspace, category, year, month), and
// deleting a budget must allow recreating it, so uniqueness is enforced by
// two partial indexes scoped to live rows: idx_budget_key covers workspace
// budgets, and idx_budget_personal_key covers personal (NULL workspace)
// budgets per user. Unique indexes treat NULLs as distinct values, so the
// personal scope needs its own index.
type Budget struct {
	Base
	UserID      uint   `gorm:"not null;index;uniqueIndex:idx_budget_personal_key,where:workspace_id IS NULL AND deleted_at IS NULL" json:"user_id"`
	WorkspaceID *uint  `gorm:"uniqueIndex:idx_budget_key,where:deleted_at IS NULL" json:"workspace_id,omitempty"`
	Category    string `gorm:"not null;uniqueIndex:idx_budget_key;uniqueIndex:idx_budget_personal_key" json:"category"`
	Year        int    `gorm:"not null;uniqueIndex:idx_budget_key;uniqueIndex:idx_budget_personal_key" json:"year"`
	Month       int    `gorm:"not null;uniqueIndex:idx_budget_key;uniqueIndex:idx_budget_personal_key" json:"month"`
	AmountLimit int64  `gorm:"type:bigint;not null" json:"amount_limit"`

	// Relationships
	Workspace *Workspace `gorm:"foreignKey:WorkspaceID" json:"workspace,omitempty"`
}
