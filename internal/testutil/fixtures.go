package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"spendwise/internal/models"

	"github.com/shopspring/decimal"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Dec parses a decimal literal, failing the test on malformed input.
func Dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("failed to parse decimal %q: %v", s, err)
	}
	return d
}

// NewWeeklyWork builds a weekly income entry starting on the given date.
func NewWeeklyWork(t *testing.T, dateISO, amount string) models.WorkLog {
	t.Helper()

	start, err := time.ParseInLocation("2006-01-02", dateISO, time.Local)
	if err != nil {
		t.Fatalf("failed to parse work date %q: %v", dateISO, err)
	}
	return models.WorkLog{
		Base:    models.Base{ID: models.NewID(), CreatedAt: time.Now()},
		Mode:    models.PeriodModeWeekly,
		DateISO: dateISO,
		EndISO:  start.AddDate(0, 0, 6).Format("2006-01-02"),
		Amount:  Dec(t, amount),
	}
}

// NewMonthlyWork builds a monthly income entry for the given month key.
func NewMonthlyWork(t *testing.T, monthKey, amount string) models.WorkLog {
	t.Helper()

	return models.WorkLog{
		Base:    models.Base{ID: models.NewID(), CreatedAt: time.Now()},
		Mode:    models.PeriodModeMonthly,
		DateISO: monthKey + "-01",
		Amount:  Dec(t, amount),
	}
}

// NewSubscription builds a subscription with a unique name.
func NewSubscription(t *testing.T, monthlyAmount string, active bool) models.Subscription {
	t.Helper()

	return models.Subscription{
		Base:          models.Base{ID: models.NewID(), CreatedAt: time.Now()},
		Name:          fmt.Sprintf("Test Subscription %d", nextID()),
		MonthlyAmount: Dec(t, monthlyAmount),
		Active:        active,
	}
}

// NewSubGroup builds a group over the given subscription ids.
func NewSubGroup(t *testing.T, subIDs ...string) models.SubGroup {
	t.Helper()

	return models.SubGroup{
		Base:   models.Base{ID: models.NewID(), CreatedAt: time.Now()},
		Name:   fmt.Sprintf("Test Group %d", nextID()),
		SubIDs: subIDs,
	}
}

// NewState builds a default state carrying the given entities.
func NewState(work []models.WorkLog, subs []models.Subscription, groups []models.SubGroup) models.StoreState {
	state := models.DefaultState()
	state.Work = work
	state.Subs = subs
	state.SubGroups = groups
	return state
}
