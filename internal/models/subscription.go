package models

import "github.com/shopspring/decimal"

// Subscription is a recurring monthly expense. MonthlyAmount is always a
// per-month figure; no weekly or annual normalization happens elsewhere.
type Subscription struct {
	Base
	Name          string          `gorm:"not null" json:"name"`
	MonthlyAmount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"monthly_amount"`
	Active        bool            `gorm:"default:true" json:"active"`
}
