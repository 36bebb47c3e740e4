package finance

import (
	"github.com/shopspring/decimal"

	"spendwise/internal/models"
)

// suggestedSavingsPct is a fixed reference policy, not user-configurable:
// 12% of income, shown alongside the user's own target.
const suggestedSavingsPct = 12

var (
	hundred       = decimal.NewFromInt(100)
	weeksPerMonth = decimal.NewFromInt(4)
	suggestedPct  = decimal.NewFromInt(suggestedSavingsPct)
)

// ComputeMonthRollup derives every monthly aggregate figure for the given
// month key from a state snapshot. It is referentially transparent: the
// result depends only on its inputs, so callers can safely roll several
// months from one snapshot (e.g. a trend series).
//
// Weekly spend guidance divides by a fixed four weeks per month; that is a
// deliberate calendar approximation, not a computed week count. The savings
// target is not clamped against income — a target above income produces a
// negative net, which is a valid state surfaced to the user, not an error.
func ComputeMonthRollup(state models.StoreState, monthKey string) models.MonthRollup {
	workIncome := decimal.Zero
	for _, w := range state.Work {
		if InMonth(w, monthKey) {
			workIncome = workIncome.Add(w.Amount)
		}
	}

	// Reserved for future income sources; always present in the output.
	otherIncome := decimal.Zero
	income := workIncome.Add(otherIncome)

	subsMonthly := decimal.Zero
	for _, s := range EffectiveActiveSet(state.Subs, state.SubGroups, state.Settings) {
		subsMonthly = subsMonthly.Add(s.MonthlyAmount)
	}
	expenses := subsMonthly

	savingsMode := state.Settings.SavingsMode
	savingsValue := state.Settings.SavingsValue

	var savingsTarget decimal.Decimal
	if savingsMode == models.SavingsModePercent {
		savingsTarget = income.Mul(savingsValue).Div(hundred)
	} else {
		savingsTarget = savingsValue
	}

	suggestedSavings := income.Mul(suggestedPct).Div(hundred)

	netAfterTarget := income.Sub(expenses).Sub(savingsTarget)
	netAfterSuggested := income.Sub(expenses).Sub(suggestedSavings)

	safeWeeklyTarget := floorZero(netAfterTarget.Div(weeksPerMonth))
	safeWeeklySuggested := floorZero(netAfterSuggested.Div(weeksPerMonth))
	safeMonthlySuggested := floorZero(netAfterSuggested)

	return models.MonthRollup{
		WorkIncome:  workIncome,
		OtherIncome: otherIncome,
		Income:      income,

		SubsMonthly: subsMonthly,
		Expenses:    expenses,

		SavingsMode:         savingsMode,
		SavingsValue:        savingsValue,
		SavingsTarget:       savingsTarget,
		SuggestedSavings:    suggestedSavings,
		SuggestedSavingsPct: suggestedSavingsPct,

		Net:               netAfterTarget,
		NetAfterTarget:    netAfterTarget,
		NetAfterSuggested: netAfterSuggested,

		SafeWeeklySpend:           safeWeeklyTarget,
		SafeWeeklySpendTarget:     safeWeeklyTarget,
		SafeWeeklySpendSuggested:  safeWeeklySuggested,
		SafeMonthlySpendSuggested: safeMonthlySuggested,

		ActiveSubGroupName: ActiveGroupName(state.SubGroups, state.Settings),
	}
}

func floorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
