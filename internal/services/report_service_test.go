package services

import (
	"testing"

	"spendwise/internal/finance"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
	"spendwise/internal/store"
	"spendwise/internal/testutil"

	"github.com/shopspring/decimal"
)

func TestCreateReport(t *testing.T) {
	t.Run("freezes_rollup", func(t *testing.T) {
		st := store.New(models.DefaultState())
		svc := NewReportService(st)

		st.AddWork(store.WorkInput{Mode: models.PeriodModeMonthly, DateISO: "2026-01-01", Amount: decimal.NewFromInt(1000)})

		entry, err := svc.CreateReport("2026-01")
		testutil.AssertNoError(t, err)

		if entry.Month != "2026-01" {
			t.Errorf("expected month 2026-01, got %s", entry.Month)
		}
		testutil.AssertDecimalEq(t, entry.Roll.Income, "1000")

		// The frozen copy keeps its figures after the state moves on.
		st.AddWork(store.WorkInput{Mode: models.PeriodModeMonthly, DateISO: "2026-01-01", Amount: decimal.NewFromInt(500)})
		reports := st.Snapshot().Reports
		testutil.AssertDecimalEq(t, reports[0].Roll.Income, "1000")
	})

	t.Run("empty_key_means_current_month", func(t *testing.T) {
		svc := NewReportService(store.New(models.DefaultState()))

		entry, err := svc.CreateReport("")
		testutil.AssertNoError(t, err)
		if entry.Month != finance.CurrentMonthKey() {
			t.Errorf("expected current month, got %s", entry.Month)
		}
	})

	t.Run("invalid_key", func(t *testing.T) {
		svc := NewReportService(store.New(models.DefaultState()))

		_, err := svc.CreateReport("garbage")
		testutil.AssertAppError(t, err, "INVALID_MONTH_KEY")
	})
}

func TestListReports(t *testing.T) {
	st := store.New(models.DefaultState())
	svc := NewReportService(st)

	for i := 0; i < 3; i++ {
		if _, err := svc.CreateReport("2026-01"); err != nil {
			t.Fatalf("failed to create report: %v", err)
		}
	}

	page := svc.ListReports(pagination.PageRequest{Page: 1, PageSize: 2})
	if page.TotalItems != 3 || len(page.Data) != 2 {
		t.Errorf("expected 3 total and 2 on the first page, got %d and %d", page.TotalItems, len(page.Data))
	}
}

func TestReportPayload(t *testing.T) {
	t.Run("stringifies_to_two_places", func(t *testing.T) {
		st := store.New(models.DefaultState())
		svc := NewReportService(st)

		st.AddWork(store.WorkInput{Mode: models.PeriodModeMonthly, DateISO: "2026-01-01", Amount: decimal.RequireFromString("1234.5")})
		st.AddSub("Music", decimal.RequireFromString("9.99"), true)

		entry, err := svc.CreateReport("2026-01")
		testutil.AssertNoError(t, err)

		payload, err := svc.ReportPayload(entry.ID)
		testutil.AssertNoError(t, err)

		if payload.Month != "2026-01" {
			t.Errorf("expected month 2026-01, got %s", payload.Month)
		}
		if payload.Fields.Income != "1234.50" {
			t.Errorf("expected income 1234.50, got %s", payload.Fields.Income)
		}
		if payload.Fields.Expenses != "9.99" {
			t.Errorf("expected expenses 9.99, got %s", payload.Fields.Expenses)
		}
		if payload.Fields.SuggestedSavingsPct != "12" {
			t.Errorf("expected pct 12, got %s", payload.Fields.SuggestedSavingsPct)
		}
		if payload.Fields.ActiveSubGroupName != finance.AllSubscriptionsLabel {
			t.Errorf("expected %q, got %q", finance.AllSubscriptionsLabel, payload.Fields.ActiveSubGroupName)
		}
	})

	t.Run("missing_report", func(t *testing.T) {
		svc := NewReportService(store.New(models.DefaultState()))

		_, err := svc.ReportPayload("missing")
		testutil.AssertAppError(t, err, "REPORT_NOT_FOUND")
	})
}

func TestClearReports(t *testing.T) {
	st := store.New(models.DefaultState())
	svc := NewReportService(st)

	if _, err := svc.CreateReport("2026-01"); err != nil {
		t.Fatalf("failed to create report: %v", err)
	}

	svc.ClearReports()
	if got := len(st.Snapshot().Reports); got != 0 {
		t.Errorf("expected empty history, got %d", got)
	}
}
