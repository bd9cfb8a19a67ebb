package models

import "time"

// AlertPriority represents the urgency of a financial alert
type AlertPriority string

const (
	AlertPriorityMedium AlertPriority = "medium"
	AlertPriorityHigh   AlertPriority = "high"
)

// AlertTypeBudgetExceeded is the alert type for budget threshold crossings.
const AlertTypeBudgetExceeded = "budget_exceeded"

// FinancialAlert is a one-time notification of a budget threshold crossing.
//
// The composite unique index over (user, workspace, category, year, month,
// tier) is the dedup guarantee: concurrent evaluations of the same budget
// cannot both insert an alert for the same key. WorkspaceID is 0 rather than
// NULL for personal budgets so the index covers them too.
type FinancialAlert struct {
	Base
	UserID      uint          `gorm:"not null;uniqueIndex:idx_alert_key" json:"user_id"`
	WorkspaceID uint          `gorm:"not null;default:0;uniqueIndex:idx_alert_key" json:"workspace_id"`
	Category    string        `gorm:"not null;uniqueIndex:idx_alert_key" json:"category"`
	Year        int           `gorm:"not null;uniqueIndex:idx_alert_key" json:"year"`
	Month       int           `gorm:"not null;uniqueIndex:idx_alert_key" json:"month"`
	Tier        string        `gorm:"not null;uniqueIndex:idx_alert_key" json:"tier"`
	AlertType   string        `gorm:"not null" json:"alert_type"`
	Title       string        `gorm:"not null" json:"title"`
	Message     string        `gorm:"not null" json:"message"`
	Priority    AlertPriority `gorm:"not null" json:"priority"`
	DismissedAt *time.Time    `json:"dismissed_at,omitempty"`
}

// Dismissed reports whether the user has dismissed this alert.
func (a *FinancialAlert) Dismissed() bool {
	return a.DismissedAt != nil
}
