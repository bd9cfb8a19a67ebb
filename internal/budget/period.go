// Package budget implements the budget tracking engine: period resolution,
// spend aggregation, budget status derivation, and alert tier classification.
// Everything in this package is a pure function over its inputs; persistence
// lives in the services layer.
package budget

import "time"

// Period identifies one calendar month.
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// Resolve returns the inclusive date range covering the period's calendar
// month in UTC: the first instant of the first day through the last instant
// of the last day. Variable month lengths and leap years fall out of
// time.AddDate. Months outside 1-12 are a caller contract violation.
func (p Period) Resolve() (start, end time.Time) {
	start = time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// Contains reports whether t falls within the period's date range.
func (p Period) Contains(t time.Time) bool {
	start, end := p.Resolve()
	return !t.Before(start) && !t.After(end)
}
