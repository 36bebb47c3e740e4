package models

import "github.com/shopspring/decimal"

// MonthRollup is the full set of derived monthly financial figures for one
// month key. It is recomputed on demand from the store state and is never a
// source of truth, except when frozen verbatim inside a ReportEntry.
//
// All monetary values are full-precision decimals; rounding to two places
// happens at the presentation boundary so chained figures (safe weekly
// spend derived from net) do not compound rounding error.
//
// Net mirrors NetAfterTarget and SafeWeeklySpend mirrors
// SafeWeeklySpendTarget; both aliases are kept for dashboard and report
// wording parity.
type MonthRollup struct {
	// Income
	WorkIncome  decimal.Decimal `json:"work_income"`
	OtherIncome decimal.Decimal `json:"other_income"`
	Income      decimal.Decimal `json:"income"`

	// Expenses. Subscriptions are the only expense category, so Expenses
	// currently equals SubsMonthly.
	SubsMonthly decimal.Decimal `json:"subs_monthly"`
	Expenses    decimal.Decimal `json:"expenses"`

	// Savings
	SavingsMode         SavingsMode     `json:"savings_mode"`
	SavingsValue        decimal.Decimal `json:"savings_value"`
	SavingsTarget       decimal.Decimal `json:"savings_target"`
	SuggestedSavings    decimal.Decimal `json:"suggested_savings"`
	SuggestedSavingsPct int             `json:"suggested_savings_pct"`

	// Net and spend guidance
	Net               decimal.Decimal `json:"net"`
	NetAfterTarget    decimal.Decimal `json:"net_after_target"`
	NetAfterSuggested decimal.Decimal `json:"net_after_suggested"`

	SafeWeeklySpend           decimal.Decimal `json:"safe_weekly_spend"`
	SafeWeeklySpendTarget     decimal.Decimal `json:"safe_weekly_spend_target"`
	SafeWeeklySpendSuggested  decimal.Decimal `json:"safe_weekly_spend_suggested"`
	SafeMonthlySpendSuggested decimal.Decimal `json:"safe_monthly_spend_suggested"`

	ActiveSubGroupName string `json:"active_sub_group_name"`
}
