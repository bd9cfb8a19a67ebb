package budget

import "testing"

func TestSumByCategory(t *testing.T) {
	t.Run("sums_per_category", func(t *testing.T) {
		totals := SumByCategory([]Expense{
			{Category: "Food", Amount: 1250},
			{Category: "Transport", Amount: 300},
			{Category: "Food", Amount: 750},
		})

		if totals["Food"] != 2000 {
			t.Errorf("expected Food total 2000, got %d", totals["Food"])
		}
		if totals["Transport"] != 300 {
			t.Errorf("expected Transport total 300, got %d", totals["Transport"])
		}
	})

	t.Run("empty_input_yields_empty_map", func(t *testing.T) {
		totals := SumByCategory(nil)
		if len(totals) != 0 {
			t.Errorf("expected empty map, got %v", totals)
		}
	})

	t.Run("absent_categories_are_absent", func(t *testing.T) {
		totals := SumByCategory([]Expense{{Category: "Food", Amount: 100}})
		if _, ok := totals["Rent"]; ok {
			t.Error("expected no entry for Rent")
		}
	})

	t.Run("conservation", func(t *testing.T) {
		expenses := []Expense{
			{Category: "Food", Amount: 1999},
			{Category: "Rent", Amount: 150000},
			{Category: "Food", Amount: 1},
			{Category: "Fun", Amount: 4550},
		}

		var want int64
		for _, e := range expenses {
			want += e.Amount
		}

		var got int64
		for _, total := range SumByCategory(expenses) {
			got += total
		}

		if got != want {
			t.Errorf("expected total %d conserved, got %d", want, got)
		}
	})
}
