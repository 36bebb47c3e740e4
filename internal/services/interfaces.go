package services

import (
	"github.com/shopspring/decimal"

	"spendwise/internal/models"
	"spendwise/internal/pagination"
	"spendwise/internal/report"
	"spendwise/internal/store"
)

// AddWorkInput carries the fields accepted when recording income.
type AddWorkInput struct {
	Mode   models.PeriodMode
	Date   string
	End    string
	Amount decimal.Decimal
	Hours  *float64
	Note   string
}

// WeekBucket is one Monday-start week of a month with the weekly income
// entries that start inside it.
type WeekBucket struct {
	WeekStart string          `json:"week_start"`
	Income    decimal.Decimal `json:"income"`
	Entries   int             `json:"entries"`
}

// TrendPoint is one month of a rollup trend series.
type TrendPoint struct {
	Month string             `json:"month"`
	Roll  models.MonthRollup `json:"roll"`
}

// WorkServicer defines the contract for income-entry business logic.
type WorkServicer interface {
	AddWork(input AddWorkInput) (models.WorkLog, error)
	ListWork(page pagination.PageRequest) pagination.PageResponse[models.WorkLog]
	WeekBuckets(monthKey string) ([]WeekBucket, error)
	DeleteWork(id string) error
}

// SubscriptionServicer defines the contract for subscription business logic.
type SubscriptionServicer interface {
	AddSub(name string, monthlyAmount decimal.Decimal, active bool) (models.Subscription, error)
	ListSubs() []models.Subscription
	ToggleSub(id string) (models.Subscription, error)
	DeleteSub(id string) error
	TopSubs(limit int) []models.Subscription
}

// GroupServicer defines the contract for subscription-group business logic.
type GroupServicer interface {
	AddGroup(name string, subIDs []string) (models.SubGroup, error)
	ListGroups() []models.SubGroup
	DeleteGroup(id string) error
	ApplyGroup(id string) (models.SubGroup, error)
	SetActiveGroup(id *string) (models.Settings, error)
}

// SettingsServicer defines the contract for settings business logic.
type SettingsServicer interface {
	GetSettings() models.Settings
	UpdateSettings(patch store.SettingsPatch) models.Settings
}

// RollupServicer defines the contract for rollup and trend computation.
type RollupServicer interface {
	Rollup(monthKey string) (models.MonthRollup, error)
	Trend(monthKey string, months int) ([]TrendPoint, error)
}

// ReportServicer defines the contract for report history.
type ReportServicer interface {
	CreateReport(monthKey string) (models.ReportEntry, error)
	ListReports(page pagination.PageRequest) pagination.PageResponse[models.ReportEntry]
	ReportPayload(id string) (report.Payload, error)
	ClearReports()
}

// StateServicer defines the contract for whole-state export, import, and
// reset.
type StateServicer interface {
	Export() models.StoreState
	Import(data []byte) (models.StoreState, []models.FieldCorrection)
	Reset()
}
