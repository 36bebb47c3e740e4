package services

import (
	"testing"

	"spendwise/internal/models"
	"spendwise/internal/pagination"
	"spendwise/internal/store"
	"spendwise/internal/testutil"

	"github.com/shopspring/decimal"
)

func TestAddWork(t *testing.T) {
	t.Run("weekly", func(t *testing.T) {
		svc := NewWorkService(store.New(models.DefaultState()))

		w, err := svc.AddWork(AddWorkInput{
			Mode:   models.PeriodModeWeekly,
			Date:   "2026-01-05",
			End:    "2026-01-11",
			Amount: decimal.NewFromInt(500),
		})
		testutil.AssertNoError(t, err)

		if w.ID == "" {
			t.Fatal("expected a generated id")
		}
		if w.DateISO != "2026-01-05" || w.EndISO != "2026-01-11" {
			t.Errorf("expected weekly dates kept, got %s..%s", w.DateISO, w.EndISO)
		}
	})

	t.Run("monthly_normalizes_date_and_drops_end", func(t *testing.T) {
		svc := NewWorkService(store.New(models.DefaultState()))

		w, err := svc.AddWork(AddWorkInput{
			Mode:   models.PeriodModeMonthly,
			Date:   "2026-03",
			End:    "2026-03-15",
			Amount: decimal.NewFromInt(1200),
		})
		testutil.AssertNoError(t, err)

		if w.DateISO != "2026-03-01" {
			t.Errorf("expected 2026-03-01, got %s", w.DateISO)
		}
		if w.EndISO != "" {
			t.Errorf("expected no end date for monthly entries, got %s", w.EndISO)
		}
	})

	t.Run("negative_amount", func(t *testing.T) {
		svc := NewWorkService(store.New(models.DefaultState()))

		_, err := svc.AddWork(AddWorkInput{Mode: models.PeriodModeWeekly, Date: "2026-01-05", Amount: decimal.NewFromInt(-1)})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("negative_hours", func(t *testing.T) {
		svc := NewWorkService(store.New(models.DefaultState()))

		h := -2.0
		_, err := svc.AddWork(AddWorkInput{Mode: models.PeriodModeWeekly, Date: "2026-01-05", Amount: decimal.NewFromInt(10), Hours: &h})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestListWork(t *testing.T) {
	st := store.New(models.DefaultState())
	svc := NewWorkService(st)

	for i := 0; i < 25; i++ {
		st.AddWork(store.WorkInput{Mode: models.PeriodModeWeekly, DateISO: "2026-01-05", Amount: decimal.NewFromInt(int64(i))})
	}

	page := svc.ListWork(pagination.PageRequest{Page: 2, PageSize: 10})
	if page.TotalItems != 25 {
		t.Errorf("expected 25 total items, got %d", page.TotalItems)
	}
	if page.TotalPages != 3 {
		t.Errorf("expected 3 pages, got %d", page.TotalPages)
	}
	if len(page.Data) != 10 {
		t.Errorf("expected 10 items on page 2, got %d", len(page.Data))
	}
}

func TestWeekBuckets(t *testing.T) {
	t.Run("buckets_weekly_entries", func(t *testing.T) {
		st := store.New(models.DefaultState())
		svc := NewWorkService(st)

		// Both land in the week starting Monday 2026-01-05.
		st.AddWork(store.WorkInput{Mode: models.PeriodModeWeekly, DateISO: "2026-01-05", Amount: decimal.NewFromInt(300)})
		st.AddWork(store.WorkInput{Mode: models.PeriodModeWeekly, DateISO: "2026-01-07", Amount: decimal.NewFromInt(200)})
		// Monthly entries never join a week bucket.
		st.AddWork(store.WorkInput{Mode: models.PeriodModeMonthly, DateISO: "2026-01-01", Amount: decimal.NewFromInt(999)})

		buckets, err := svc.WeekBuckets("2026-01")
		testutil.AssertNoError(t, err)

		// January 2026 touches five Monday-start weeks.
		if len(buckets) != 5 {
			t.Fatalf("expected 5 buckets, got %d", len(buckets))
		}
		if buckets[1].WeekStart != "2026-01-05" {
			t.Fatalf("expected second bucket to start 2026-01-05, got %s", buckets[1].WeekStart)
		}
		testutil.AssertDecimalEq(t, buckets[1].Income, "500")
		if buckets[1].Entries != 2 {
			t.Errorf("expected 2 entries in the bucket, got %d", buckets[1].Entries)
		}
		testutil.AssertDecimalEq(t, buckets[0].Income, "0")
	})

	t.Run("invalid_month_key", func(t *testing.T) {
		svc := NewWorkService(store.New(models.DefaultState()))

		_, err := svc.WeekBuckets("garbage")
		testutil.AssertAppError(t, err, "INVALID_MONTH_KEY")
	})
}

func TestDeleteWorkService(t *testing.T) {
	st := store.New(models.DefaultState())
	svc := NewWorkService(st)

	w, err := svc.AddWork(AddWorkInput{Mode: models.PeriodModeWeekly, Date: "2026-01-05", Amount: decimal.NewFromInt(10)})
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, svc.DeleteWork(w.ID))
	testutil.AssertAppError(t, svc.DeleteWork(w.ID), "WORK_LOG_NOT_FOUND")
}
