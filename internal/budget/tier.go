package budget

import (
	"fmt"

	"moneta/internal/models"
)

// Tier is the alerting severity derived from the uncapped spend ratio.
type Tier string

const (
	TierNone     Tier = "none"
	TierWarning  Tier = "warning"
	TierCritical Tier = "critical"
)

// Threshold ratios for tier classification.
const (
	WarningThreshold  = 0.80
	CriticalThreshold = 1.00
)

// Classify maps an uncapped spend ratio to an alert tier. A zero or negative
// limit produces ratio 0 and therefore never triggers.
func Classify(ratio float64) Tier {
	switch {
	case ratio >= CriticalThreshold:
		return TierCritical
	case ratio >= WarningThreshold:
		return TierWarning
	default:
		return TierNone
	}
}

// rank orders tiers for severity comparison.
func (t Tier) rank() int {
	switch t {
	case TierWarning:
		return 1
	case TierCritical:
		return 2
	default:
		return 0
	}
}

// AtLeast reports whether t is the same severity as other or higher.
func (t Tier) AtLeast(other Tier) bool {
	return t.rank() >= other.rank()
}

// Priority maps a triggering tier to an alert priority.
func (t Tier) Priority() models.AlertPriority {
	if t == TierCritical {
		return models.AlertPriorityHigh
	}
	return models.AlertPriorityMedium
}

// AlertTitle builds the alert title for a category crossing into tier t.
func AlertTitle(category string, t Tier) string {
	if t == TierCritical {
		return fmt.Sprintf("Budget exceeded: %s", category)
	}
	return fmt.Sprintf("Budget warning: %s", category)
}

// AlertMessage builds the alert body. The percentage is the uncapped spend
// ratio rounded to one decimal place; wording differs between the exceeded
// and approaching cases.
func AlertMessage(category string, ratio float64) string {
	pct := ratio * 100
	if ratio >= CriticalThreshold {
		return fmt.Sprintf("Spending in %q reached %.1f%% of the monthly limit. This budget is exceeded.", category, pct)
	}
	return fmt.Sprintf("Spending in %q reached %.1f%% of the monthly limit. You are approaching this budget.", category, pct)
}
