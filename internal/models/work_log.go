package models

import "github.com/shopspring/decimal"

// PeriodMode distinguishes weekly income entries from monthly ones.
type PeriodMode string

const (
	PeriodModeWeekly  PeriodMode = "weekly"
	PeriodModeMonthly PeriodMode = "monthly"
)

// WorkLog is a single income entry. Monthly entries carry the first day
// of their month as DateISO; weekly entries keep the exact start date the
// user picked, with an optional EndISO for the end of the week range.
// Entries are never mutated in place: they are created and deleted only.
type WorkLog struct {
	Base
	Mode    PeriodMode      `gorm:"not null" json:"mode"`
	DateISO string          `gorm:"column:date_iso;not null" json:"date_iso"`
	EndISO  string          `gorm:"column:end_iso" json:"end_iso,omitempty"`
	Amount  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Hours   *float64        `json:"hours,omitempty"`
	Note    string          `json:"note,omitempty"`
}
