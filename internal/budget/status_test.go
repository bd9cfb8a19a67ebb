package budget

import (
	"reflect"
	"testing"

	"moneta/internal/models"
)

func TestComputeStatus(t *testing.T) {
	t.Run("warning_at_eighty_percent", func(t *testing.T) {
		b := models.Budget{Category: "Food", AmountLimit: 100000}
		status := ComputeStatus(b, map[string]int64{"Food": 80000})

		if status.Spent != 80000 {
			t.Errorf("expected spent 80000, got %d", status.Spent)
		}
		if status.Remaining != 20000 {
			t.Errorf("expected remaining 20000, got %d", status.Remaining)
		}
		if status.Percentage != 80.0 {
			t.Errorf("expected percentage 80.0, got %f", status.Percentage)
		}
		if status.Tier != TierWarning {
			t.Errorf("expected tier warning, got %s", status.Tier)
		}
	})

	t.Run("overspend_caps_display_keeps_ratio", func(t *testing.T) {
		b := models.Budget{Category: "Food", AmountLimit: 100000}
		status := ComputeStatus(b, map[string]int64{"Food": 150000})

		if status.Percentage != 100 {
			t.Errorf("expected displayed percentage capped at 100, got %f", status.Percentage)
		}
		if status.Ratio != 1.5 {
			t.Errorf("expected uncapped ratio 1.5, got %f", status.Ratio)
		}
		if status.Remaining != -50000 {
			t.Errorf("expected remaining -50000, got %d", status.Remaining)
		}
		if status.Tier != TierCritical {
			t.Errorf("expected tier critical, got %s", status.Tier)
		}
	})

	t.Run("zero_limit_is_not_an_error", func(t *testing.T) {
		b := models.Budget{Category: "Misc", AmountLimit: 0}
		status := ComputeStatus(b, map[string]int64{"Misc": 5000})

		if status.Percentage != 0 {
			t.Errorf("expected percentage 0 for zero limit, got %f", status.Percentage)
		}
		if status.Ratio != 0 {
			t.Errorf("expected ratio 0 for zero limit, got %f", status.Ratio)
		}
		if status.Remaining != -5000 {
			t.Errorf("expected remaining -5000, got %d", status.Remaining)
		}
		if status.Tier != TierNone {
			t.Errorf("expected tier none for zero limit, got %s", status.Tier)
		}
	})

	t.Run("no_spend_means_full_remaining", func(t *testing.T) {
		b := models.Budget{Category: "Travel", AmountLimit: 30000}
		status := ComputeStatus(b, map[string]int64{})

		if status.Spent != 0 || status.Remaining != 30000 || status.Percentage != 0 {
			t.Errorf("unexpected status for untouched budget: %+v", status)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		b := models.Budget{Category: "Food", AmountLimit: 100000}
		totals := map[string]int64{"Food": 43213}

		first := ComputeStatus(b, totals)
		second := ComputeStatus(b, totals)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("expected identical results, got %+v and %+v", first, second)
		}
	})
}

func TestComputeStatuses(t *testing.T) {
	t.Run("unbudgeted_categories_contribute_nothing", func(t *testing.T) {
		budgets := []models.Budget{
			{Category: "Food", AmountLimit: 50000},
			{Category: "Transport", AmountLimit: 20000},
		}
		expenses := []Expense{
			{Category: "Food", Amount: 10000},
			{Category: "Rent", Amount: 120000},
		}

		statuses := ComputeStatuses(budgets, expenses)
		if len(statuses) != 2 {
			t.Fatalf("expected 2 statuses, got %d", len(statuses))
		}
		if statuses[0].Spent != 10000 {
			t.Errorf("expected Food spent 10000, got %d", statuses[0].Spent)
		}
		if statuses[1].Spent != 0 {
			t.Errorf("expected Transport spent 0, got %d", statuses[1].Spent)
		}
	})

	t.Run("preserves_budget_order", func(t *testing.T) {
		budgets := []models.Budget{
			{Category: "B", AmountLimit: 100},
			{Category: "A", AmountLimit: 100},
		}

		statuses := ComputeStatuses(budgets, nil)
		if statuses[0].Budget.Category != "B" || statuses[1].Budget.Category != "A" {
			t.Errorf("expected input order preserved, got %+v", statuses)
		}
	})
}
