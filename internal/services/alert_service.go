package services

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"moneta/internal/budget"
	apperrors "moneta/internal/errors"
	"moneta/internal/logger"
	"moneta/internal/models"
	"moneta/internal/pagination"
)

// alertService implements the alert trigger policy: it classifies budget
// statuses into tiers and emits at most one FinancialAlert per
// (user, workspace, category, period, tier) key.
type alertService struct {
	db *gorm.DB
}

// NewAlertService creates a new AlertServicer.
func NewAlertService(db *gorm.DB) AlertServicer {
	return &alertService{db: db}
}

// alertKeyColumns is the composite dedup key backed by idx_alert_key.
var alertKeyColumns = []clause.Column{
	{Name: "user_id"},
	{Name: "workspace_id"},
	{Name: "category"},
	{Name: "year"},
	{Name: "month"},
	{Name: "tier"},
}

// EvaluateBudget applies the trigger policy to one budget status. It returns
// the alert it created, or nil when the tier does not trigger or an alert of
// the same or higher tier already covers the key. The existence lookup is an
// optimization; the insert-on-conflict against the unique index is what makes
// concurrent evaluations emit exactly one alert.
func (s *alertService) EvaluateBudget(userID uint, status budget.Status) (*models.FinancialAlert, error) {
	tier := status.Tier
	if tier == budget.TierNone {
		return nil, nil
	}

	b := status.Budget
	var workspaceID uint
	if b.WorkspaceID != nil {
		workspaceID = *b.WorkspaceID
	}

	covered, err := s.alertCovered(userID, workspaceID, b.Category, b.Year, b.Month, tier)
	if err != nil {
		return nil, err
	}
	if covered {
		return nil, nil
	}

	alert := &models.FinancialAlert{
		UserID:      userID,
		WorkspaceID: workspaceID,
		Category:    b.Category,
		Year:        b.Year,
		Month:       b.Month,
		Tier:        string(tier),
		AlertType:   models.AlertTypeBudgetExceeded,
		Title:       budget.AlertTitle(b.Category, tier),
		Message:     budget.AlertMessage(b.Category, status.Ratio),
		Priority:    tier.Priority(),
	}

	result := s.db.Clauses(clause.OnConflict{Columns: alertKeyColumns, DoNothing: true}).Create(alert)
	if result.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		// A concurrent evaluation inserted the alert first.
		return nil, nil
	}

	return alert, nil
}

// alertCovered reports whether an alert of the given tier or higher already
// exists for the key. A prior critical alert suppresses a later warning;
// tiers are never walked back.
func (s *alertService) alertCovered(userID, workspaceID uint, category string, year, month int, tier budget.Tier) (bool, error) {
	tiers := []string{string(budget.TierCritical)}
	if tier == budget.TierWarning {
		tiers = append(tiers, string(budget.TierWarning))
	}

	var count int64
	err := s.db.Model(&models.FinancialAlert{}).
		Where("user_id = ? AND workspace_id = ? AND category = ? AND year = ? AND month = ? AND tier IN ?",
			userID, workspaceID, category, year, month, tiers).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return count > 0, nil
}

// EvaluateStatuses applies the trigger policy to each status, returning the
// alerts it created. A failed alert write is reported but never blocks the
// remaining evaluations; callers keep the already-computed statuses either
// way, since alerting is a side effect of display, not a precondition.
func (s *alertService) EvaluateStatuses(userID uint, statuses []budget.Status) ([]models.FinancialAlert, error) {
	var created []models.FinancialAlert
	var firstErr error

	for _, status := range statuses {
		alert, err := s.EvaluateBudget(userID, status)
		if err != nil {
			logger.Get().Errorw("alert evaluation failed",
				"user_id", userID,
				"category", status.Budget.Category,
				"tier", status.Tier,
				"error", err,
			)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if alert != nil {
			created = append(created, *alert)
		}
	}

	return created, firstErr
}

// GetUserAlerts returns a paginated list of the user's alerts, newest first.
func (s *alertService) GetUserAlerts(userID uint, page pagination.PageRequest, undismissedOnly bool) (*pagination.PageResponse[models.FinancialAlert], error) {
	page.Defaults()

	base := s.db.Model(&models.FinancialAlert{}).Where("user_id = ?", userID)
	if undismissedOnly {
		base = base.Where("dismissed_at IS NULL")
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var alerts []models.FinancialAlert
	if err := base.Order("created_at DESC").Scopes(pagination.Paginate(page)).Find(&alerts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(alerts, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// DismissAlert marks an alert as read. Dismissal never deletes the record;
// the alert row keeps suppressing duplicates for the rest of the period.
func (s *alertService) DismissAlert(userID, alertID uint) error {
	var alert models.FinancialAlert
	if err := s.db.Where("id = ? AND user_id = ?", alertID, userID).First(&alert).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAlertNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if alert.Dismissed() {
		return nil
	}

	now := time.Now().UTC()
	if err := s.db.Model(&alert).Update("dismissed_at", now).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
