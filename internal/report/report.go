// Package report defines the boundary with the document-rendering
// collaborators. The core's whole contract with a renderer is a
// fully-populated payload whose numeric fields are already stringified to
// two decimal places; layout and byte-level PDF/DOCX encoding live on the
// other side of the Renderer interface.
package report

import (
	"context"
	"strconv"

	"spendwise/internal/models"
)

// Fields carries the pre-stringified figures a document template consumes.
type Fields struct {
	Month                    string `json:"month"`
	Income                   string `json:"income"`
	Expenses                 string `json:"expenses"`
	SubsMonthly              string `json:"subs_monthly"`
	SavingsTarget            string `json:"savings_target"`
	SuggestedSavings         string `json:"suggested_savings"`
	SuggestedSavingsPct      string `json:"suggested_savings_pct"`
	NetAfterTarget           string `json:"net_after_target"`
	NetAfterSuggested        string `json:"net_after_suggested"`
	SafeWeeklySpendTarget    string `json:"safe_weekly_spend_target"`
	SafeWeeklySpendSuggested string `json:"safe_weekly_spend_suggested"`
	ActiveSubGroupName       string `json:"active_sub_group_name"`
}

// Payload is the input handed to a renderer.
type Payload struct {
	Month  string `json:"month"`
	Fields Fields `json:"fields"`
}

// Renderer produces a binary document from a payload. PDF and DOCX
// generators implement this outside the core.
type Renderer interface {
	Render(ctx context.Context, p Payload) ([]byte, error)
}

// BuildPayload freezes a rollup into renderer input. Rounding to two
// places happens here, at the presentation boundary, never inside the
// rollup.
func BuildPayload(month string, roll models.MonthRollup) Payload {
	return Payload{
		Month: month,
		Fields: Fields{
			Month:                    month,
			Income:                   roll.Income.StringFixed(2),
			Expenses:                 roll.Expenses.StringFixed(2),
			SubsMonthly:              roll.SubsMonthly.StringFixed(2),
			SavingsTarget:            roll.SavingsTarget.StringFixed(2),
			SuggestedSavings:         roll.SuggestedSavings.StringFixed(2),
			SuggestedSavingsPct:      strconv.Itoa(roll.SuggestedSavingsPct),
			NetAfterTarget:           roll.NetAfterTarget.StringFixed(2),
			NetAfterSuggested:        roll.NetAfterSuggested.StringFixed(2),
			SafeWeeklySpendTarget:    roll.SafeWeeklySpendTarget.StringFixed(2),
			SafeWeeklySpendSuggested: roll.SafeWeeklySpendSuggested.StringFixed(2),
			ActiveSubGroupName:       roll.ActiveSubGroupName,
		},
	}
}
