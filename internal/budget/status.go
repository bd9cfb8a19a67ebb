package budget

import "moneta/internal/models"

// Status is the derived, never-persisted view of a budget for one period:
// the stored limit combined with aggregated spend.
type Status struct {
	Budget     models.Budget `json:"budget"`
	Spent      int64         `json:"spent"`
	Remaining  int64         `json:"remaining"`
	Percentage float64       `json:"percentage"`
	Ratio      float64       `json:"-"`
	Tier       Tier          `json:"tier"`
}

// ComputeStatus derives the status of a single budget from the per-category
// spend totals. Remaining may go negative on overspend and is never clamped.
// Percentage is capped at 100 for display; Ratio keeps the uncapped value the
// alert policy needs. A limit of zero or less defines both as 0, avoiding
// division by zero.
func ComputeStatus(b models.Budget, totals map[string]int64) Status {
	spent := totals[b.Category]

	var ratio float64
	if b.AmountLimit > 0 {
		ratio = float64(spent) / float64(b.AmountLimit)
	}

	percentage := ratio * 100
	if percentage > 100 {
		percentage = 100
	}

	return Status{
		Budget:     b,
		Spent:      spent,
		Remaining:  b.AmountLimit - spent,
		Percentage: percentage,
		Ratio:      ratio,
		Tier:       Classify(ratio),
	}
}

// ComputeStatuses aggregates the expenses and derives a status for every
// budget, in input order. Expenses in categories without a budget contribute
// to no status.
func ComputeStatuses(budgets []models.Budget, expenses []Expense) []Status {
	totals := SumByCategory(expenses)
	statuses := make([]Status, 0, len(budgets))
	for _, b := range budgets {
		statuses = append(statuses, ComputeStatus(b, totals))
	}
	return statuses
}
