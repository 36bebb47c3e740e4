package models

import "github.com/shopspring/decimal"

// SavingsMode selects how the monthly savings target is computed.
type SavingsMode string

const (
	SavingsModeFixed   SavingsMode = "fixed"
	SavingsModePercent SavingsMode = "percent"
)

// Settings is the process-wide configuration singleton. SavingsValue is a
// dollar amount in fixed mode and a percentage in [0,100] in percent mode.
// A nil ActiveSubGroupID means each subscription's own active flag governs
// expense totals; a set id layers the group as an additional filter.
type Settings struct {
	ID               uint            `gorm:"primaryKey" json:"-"`
	SavingsMode      SavingsMode     `gorm:"not null" json:"savings_mode"`
	SavingsValue     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"savings_value"`
	ActiveSubGroupID *string         `gorm:"type:uuid" json:"active_sub_group_id"`
}

// DefaultSettings returns the initial settings: fixed mode, zero target,
// no active group.
func DefaultSettings() Settings {
	return Settings{
		ID:           1,
		SavingsMode:  SavingsModeFixed,
		SavingsValue: decimal.Zero,
	}
}
