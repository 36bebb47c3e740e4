package models

// ReportEntry is a saved historical snapshot of a rollup, appended each
// time a report is exported and never mutated afterwards. Roll is a frozen
// copy of the rollup at export time, not a live recomputation.
type ReportEntry struct {
	Base
	Month string      `gorm:"not null" json:"month"`
	Roll  MonthRollup `gorm:"serializer:json" json:"roll"`
}
