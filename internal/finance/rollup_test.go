package finance

import (
	"testing"

	"spendwise/internal/models"
	"spendwise/internal/testutil"
)

func TestComputeMonthRollup(t *testing.T) {
	t.Run("empty_state", func(t *testing.T) {
		roll := ComputeMonthRollup(models.DefaultState(), "2026-01")

		testutil.AssertDecimalEq(t, roll.Income, "0")
		testutil.AssertDecimalEq(t, roll.Expenses, "0")
		testutil.AssertDecimalEq(t, roll.NetAfterTarget, "0")
		testutil.AssertDecimalEq(t, roll.SafeWeeklySpendTarget, "0")
		if roll.ActiveSubGroupName != AllSubscriptionsLabel {
			t.Errorf("expected %q, got %q", AllSubscriptionsLabel, roll.ActiveSubGroupName)
		}
	})

	t.Run("sums_income_for_month", func(t *testing.T) {
		state := testutil.NewState(
			[]models.WorkLog{
				testutil.NewWeeklyWork(t, "2026-01-05", "500"),
				testutil.NewMonthlyWork(t, "2026-01", "1200"),
				testutil.NewMonthlyWork(t, "2026-02", "999"),
			},
			nil, nil,
		)

		roll := ComputeMonthRollup(state, "2026-01")
		testutil.AssertDecimalEq(t, roll.WorkIncome, "1700")
		testutil.AssertDecimalEq(t, roll.OtherIncome, "0")
		testutil.AssertDecimalEq(t, roll.Income, "1700")
	})

	t.Run("straddling_week_counts_in_both_months", func(t *testing.T) {
		state := testutil.NewState(
			[]models.WorkLog{testutil.NewWeeklyWork(t, "2026-01-28", "500")},
			nil, nil,
		)

		jan := ComputeMonthRollup(state, "2026-01")
		feb := ComputeMonthRollup(state, "2026-02")
		testutil.AssertDecimalEq(t, jan.WorkIncome, "500")
		testutil.AssertDecimalEq(t, feb.WorkIncome, "500")
	})

	t.Run("fixed_savings_with_zero_income", func(t *testing.T) {
		state := models.DefaultState()
		state.Subs = []models.Subscription{testutil.NewSubscription(t, "50", true)}
		state.Settings.SavingsMode = models.SavingsModeFixed
		state.Settings.SavingsValue = testutil.Dec(t, "100")

		roll := ComputeMonthRollup(state, "2026-01")
		testutil.AssertDecimalEq(t, roll.SavingsTarget, "100")
		testutil.AssertDecimalEq(t, roll.NetAfterTarget, "-150")
		testutil.AssertDecimalEq(t, roll.SafeWeeklySpendTarget, "0")
		testutil.AssertDecimalEq(t, roll.SafeMonthlySpendSuggested, "0")
	})

	t.Run("percent_savings", func(t *testing.T) {
		state := testutil.NewState(
			[]models.WorkLog{testutil.NewMonthlyWork(t, "2026-01", "2000")},
			nil, nil,
		)
		state.Settings.SavingsMode = models.SavingsModePercent
		state.Settings.SavingsValue = testutil.Dec(t, "20")

		roll := ComputeMonthRollup(state, "2026-01")
		testutil.AssertDecimalEq(t, roll.SavingsTarget, "400")
		testutil.AssertDecimalEq(t, roll.SuggestedSavings, "240")
		if roll.SuggestedSavingsPct != 12 {
			t.Errorf("expected suggested savings pct 12, got %d", roll.SuggestedSavingsPct)
		}
		testutil.AssertDecimalEq(t, roll.NetAfterTarget, "1600")
		testutil.AssertDecimalEq(t, roll.NetAfterSuggested, "1760")
		testutil.AssertDecimalEq(t, roll.SafeWeeklySpendTarget, "400")
		testutil.AssertDecimalEq(t, roll.SafeWeeklySpendSuggested, "440")
	})

	t.Run("grouped_subscriptions_filter_expenses", func(t *testing.T) {
		a := testutil.NewSubscription(t, "10", true)
		b := testutil.NewSubscription(t, "20", true)
		c := testutil.NewSubscription(t, "40", true)
		g := testutil.NewSubGroup(t, a.ID, b.ID)

		state := testutil.NewState(nil,
			[]models.Subscription{a, b, c},
			[]models.SubGroup{g},
		)
		state.Settings.ActiveSubGroupID = &g.ID

		roll := ComputeMonthRollup(state, "2026-01")
		testutil.AssertDecimalEq(t, roll.SubsMonthly, "30")
		testutil.AssertDecimalEq(t, roll.Expenses, "30")
		if roll.ActiveSubGroupName != g.Name {
			t.Errorf("expected group name %q, got %q", g.Name, roll.ActiveSubGroupName)
		}
	})

	t.Run("net_arithmetic", func(t *testing.T) {
		state := testutil.NewState(
			[]models.WorkLog{testutil.NewMonthlyWork(t, "2026-01", "3000")},
			[]models.Subscription{testutil.NewSubscription(t, "150", true)},
			nil,
		)
		state.Settings.SavingsMode = models.SavingsModeFixed
		state.Settings.SavingsValue = testutil.Dec(t, "500")

		roll := ComputeMonthRollup(state, "2026-01")

		wantNet := roll.Income.Sub(roll.Expenses).Sub(roll.SavingsTarget)
		if !roll.NetAfterTarget.Equal(wantNet) {
			t.Errorf("expected net %s, got %s", wantNet, roll.NetAfterTarget)
		}
		testutil.AssertDecimalEq(t, roll.NetAfterTarget, "2350")
		testutil.AssertDecimalEq(t, roll.SafeWeeklySpendTarget, "587.5")

		// Suggested figures derive from the fixed reference pct, not the
		// user's target.
		testutil.AssertDecimalEq(t, roll.SuggestedSavings, "360")
		testutil.AssertDecimalEq(t, roll.NetAfterSuggested, "2490")
	})

	t.Run("legacy_aliases_match", func(t *testing.T) {
		state := testutil.NewState(
			[]models.WorkLog{testutil.NewMonthlyWork(t, "2026-01", "1000")},
			nil, nil,
		)
		state.Settings.SavingsValue = testutil.Dec(t, "200")

		roll := ComputeMonthRollup(state, "2026-01")
		if !roll.Net.Equal(roll.NetAfterTarget) {
			t.Error("expected Net alias to equal NetAfterTarget")
		}
		if !roll.SafeWeeklySpend.Equal(roll.SafeWeeklySpendTarget) {
			t.Error("expected SafeWeeklySpend alias to equal SafeWeeklySpendTarget")
		}
	})

	t.Run("idempotent_over_same_snapshot", func(t *testing.T) {
		state := testutil.NewState(
			[]models.WorkLog{
				testutil.NewWeeklyWork(t, "2026-01-05", "321.45"),
				testutil.NewMonthlyWork(t, "2026-01", "1234.56"),
			},
			[]models.Subscription{testutil.NewSubscription(t, "19.99", true)},
			nil,
		)

		first := ComputeMonthRollup(state, "2026-01")
		second := ComputeMonthRollup(state, "2026-01")
		if !first.Income.Equal(second.Income) || !first.NetAfterTarget.Equal(second.NetAfterTarget) {
			t.Error("expected identical rollups from the same snapshot")
		}
	})
}
