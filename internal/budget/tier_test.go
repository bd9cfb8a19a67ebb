package budget

import (
	"strings"
	"testing"

	"moneta/internal/models"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name  string
		ratio float64
		want  Tier
	}{
		{"well_under", 0.5, TierNone},
		{"just_below_warning", 0.7999, TierNone},
		{"at_warning", 0.80, TierWarning},
		{"between", 0.95, TierWarning},
		{"at_critical", 1.00, TierCritical},
		{"far_over", 2.0, TierCritical},
		{"zero_limit_ratio", 0, TierNone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.ratio); got != tc.want {
				t.Errorf("Classify(%v) = %s, want %s", tc.ratio, got, tc.want)
			}
		})
	}
}

func TestTierAtLeast(t *testing.T) {
	if !TierCritical.AtLeast(TierWarning) {
		t.Error("critical should be at least warning")
	}
	if !TierWarning.AtLeast(TierWarning) {
		t.Error("warning should be at least warning")
	}
	if TierWarning.AtLeast(TierCritical) {
		t.Error("warning should not be at least critical")
	}
	if !TierNone.AtLeast(TierNone) {
		t.Error("none should be at least none")
	}
}

func TestTierPriority(t *testing.T) {
	if TierCritical.Priority() != models.AlertPriorityHigh {
		t.Errorf("expected high priority for critical, got %s", TierCritical.Priority())
	}
	if TierWarning.Priority() != models.AlertPriorityMedium {
		t.Errorf("expected medium priority for warning, got %s", TierWarning.Priority())
	}
}

func TestAlertMessage(t *testing.T) {
	t.Run("approaching", func(t *testing.T) {
		msg := AlertMessage("Food", 0.80)
		if !strings.Contains(msg, "80.0%") {
			t.Errorf("expected message to contain 80.0%%, got %q", msg)
		}
		if !strings.Contains(msg, "Food") {
			t.Errorf("expected message to contain category, got %q", msg)
		}
		if strings.Contains(msg, "exceeded") {
			t.Errorf("approaching message should not say exceeded: %q", msg)
		}
	})

	t.Run("exceeded", func(t *testing.T) {
		msg := AlertMessage("Food", 1.5)
		if !strings.Contains(msg, "150.0%") {
			t.Errorf("expected message to contain 150.0%%, got %q", msg)
		}
		if !strings.Contains(msg, "exceeded") {
			t.Errorf("expected exceeded wording, got %q", msg)
		}
	})

	t.Run("wordings_differ", func(t *testing.T) {
		if AlertMessage("Food", 0.9) == AlertMessage("Food", 1.1) {
			t.Error("expected distinct wording for warning and critical")
		}
	})
}
