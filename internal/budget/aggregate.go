package budget

// Expense is the minimal transaction shape the aggregator consumes: callers
// are responsible for filtering to expense-typed transactions in the target
// workspace and period before aggregation.
type Expense struct {
	Category string
	Amount   int64
}

// SumByCategory reduces expenses into a map from category to total spent, in
// minor currency units. Integer addition keeps fractional currency exact.
// Categories absent from the input are absent from the map; empty input
// yields an empty map.
func SumByCategory(expenses []Expense) map[string]int64 {
	totals := make(map[string]int64, len(expenses))
	for _, e := range expenses {
		totals[e.Category] += e.Amount
	}
	return totals
}
