package budget

import (
	"testing"
	"time"
)

func TestPeriodResolve(t *testing.T) {
	t.Run("january", func(t *testing.T) {
		start, end := Period{Year: 2025, Month: 1}.Resolve()
		if !start.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected start: %v", start)
		}
		if end.Day() != 31 || end.Month() != time.January {
			t.Errorf("expected Jan 31, got %v", end)
		}
	})

	t.Run("february_leap_year", func(t *testing.T) {
		_, end := Period{Year: 2024, Month: 2}.Resolve()
		if end.Day() != 29 || end.Month() != time.February || end.Year() != 2024 {
			t.Errorf("expected Feb 29 2024, got %v", end)
		}
	})

	t.Run("february_non_leap_year", func(t *testing.T) {
		_, end := Period{Year: 2023, Month: 2}.Resolve()
		if end.Day() != 28 || end.Month() != time.February {
			t.Errorf("expected Feb 28 2023, got %v", end)
		}
	})

	t.Run("thirty_day_month", func(t *testing.T) {
		_, end := Period{Year: 2025, Month: 4}.Resolve()
		if end.Day() != 30 {
			t.Errorf("expected Apr 30, got %v", end)
		}
	})

	t.Run("december_stays_in_year", func(t *testing.T) {
		start, end := Period{Year: 2025, Month: 12}.Resolve()
		if start.Year() != 2025 || end.Year() != 2025 || end.Day() != 31 {
			t.Errorf("expected Dec 1..31 2025, got %v..%v", start, end)
		}
	})

	t.Run("range_is_inclusive", func(t *testing.T) {
		p := Period{Year: 2025, Month: 6}
		if !p.Contains(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)) {
			t.Error("expected first day to be contained")
		}
		if !p.Contains(time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)) {
			t.Error("expected last day to be contained")
		}
		if p.Contains(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)) {
			t.Error("expected next month to be excluded")
		}
	})
}
