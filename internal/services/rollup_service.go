package services

import (
	apperrors "spendwise/internal/errors"
	"spendwise/internal/finance"
	"spendwise/internal/models"
	"spendwise/internal/store"
)

// rollupService computes monthly rollups and trend series over store
// snapshots.
type rollupService struct {
	store *store.Store
}

// NewRollupService creates a new RollupServicer.
func NewRollupService(st *store.Store) RollupServicer {
	return &rollupService{store: st}
}

// Rollup computes the full monthly aggregate for the given month key. An
// empty key means the current month.
func (s *rollupService) Rollup(monthKey string) (models.MonthRollup, error) {
	if monthKey == "" {
		monthKey = finance.CurrentMonthKey()
	}
	if _, err := finance.ParseMonthKey(monthKey); err != nil {
		return models.MonthRollup{}, apperrors.ErrInvalidMonthKey
	}
	return finance.ComputeMonthRollup(s.store.Snapshot(), monthKey), nil
}

// Trend rolls the given number of months ending at monthKey (current
// month when empty), oldest first, from one snapshot so the series is
// internally consistent.
func (s *rollupService) Trend(monthKey string, months int) ([]TrendPoint, error) {
	if monthKey == "" {
		monthKey = finance.CurrentMonthKey()
	}
	if months < 1 {
		months = 6
	}

	keys, err := finance.PrevMonthKeys(monthKey, months)
	if err != nil {
		return nil, apperrors.ErrInvalidMonthKey
	}

	snap := s.store.Snapshot()
	points := make([]TrendPoint, len(keys))
	for i, key := range keys {
		points[i] = TrendPoint{Month: key, Roll: finance.ComputeMonthRollup(snap, key)}
	}
	return points, nil
}
