package services

import (
	apperrors "spendwise/internal/errors"
	"spendwise/internal/finance"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
	"spendwise/internal/report"
	"spendwise/internal/store"
)

// reportService manages the report history and renderer payloads.
type reportService struct {
	store *store.Store
}

// NewReportService creates a new ReportServicer.
func NewReportService(st *store.Store) ReportServicer {
	return &reportService{store: st}
}

// CreateReport computes the month's rollup and freezes it into the
// history. The entry is recorded before any export attempt, so a failed
// render still leaves the report visible for retry.
func (s *reportService) CreateReport(monthKey string) (models.ReportEntry, error) {
	if monthKey == "" {
		monthKey = finance.CurrentMonthKey()
	}
	if _, err := finance.ParseMonthKey(monthKey); err != nil {
		return models.ReportEntry{}, apperrors.ErrInvalidMonthKey
	}

	roll := finance.ComputeMonthRollup(s.store.Snapshot(), monthKey)
	return s.store.AddReportEntry(monthKey, roll), nil
}

// ListReports returns the history, newest first.
func (s *reportService) ListReports(page pagination.PageRequest) pagination.PageResponse[models.ReportEntry] {
	return pagination.Slice(s.store.Snapshot().Reports, page)
}

// ReportPayload builds the renderer input for a saved entry, with every
// figure pre-stringified to two decimal places.
func (s *reportService) ReportPayload(id string) (report.Payload, error) {
	for _, entry := range s.store.Snapshot().Reports {
		if entry.ID == id {
			return report.BuildPayload(entry.Month, entry.Roll), nil
		}
	}
	return report.Payload{}, apperrors.ErrReportNotFound
}

// ClearReports discards the whole history.
func (s *reportService) ClearReports() {
	s.store.ClearReportHistory()
}
