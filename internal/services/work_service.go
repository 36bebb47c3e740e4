package services

import (
	"time"

	"github.com/shopspring/decimal"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/finance"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
	"spendwise/internal/store"
)

// workService handles income-entry business logic.
type workService struct {
	store *store.Store
}

// NewWorkService creates a new WorkServicer.
func NewWorkService(st *store.Store) WorkServicer {
	return &workService{store: st}
}

// AddWork records a new income entry. The date is canonicalized through
// the date-bucket resolver before it is stored: weekly entries keep the
// exact day, monthly entries land on the first of the month.
func (s *workService) AddWork(input AddWorkInput) (models.WorkLog, error) {
	if input.Amount.IsNegative() {
		return models.WorkLog{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "Amount must not be negative")
	}
	if input.Hours != nil && *input.Hours < 0 {
		return models.WorkLog{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "Hours must not be negative")
	}

	end := input.End
	if input.Mode == models.PeriodModeMonthly {
		end = ""
	}

	w := s.store.AddWork(store.WorkInput{
		Mode:    input.Mode,
		DateISO: finance.NormalizeWorkDate(input.Mode, input.Date),
		EndISO:  end,
		Amount:  input.Amount,
		Hours:   input.Hours,
		Note:    input.Note,
	})
	return w, nil
}

// ListWork returns income entries newest first.
func (s *workService) ListWork(page pagination.PageRequest) pagination.PageResponse[models.WorkLog] {
	return pagination.Slice(s.store.Snapshot().Work, page)
}

// WeekBuckets groups a month's weekly income entries into Monday-start
// weeks for display. Monthly entries are excluded; they have no week.
func (s *workService) WeekBuckets(monthKey string) ([]WeekBucket, error) {
	first, err := finance.ParseMonthKey(monthKey)
	if err != nil {
		return nil, apperrors.ErrInvalidMonthKey
	}

	starts := finance.WeekStartsInMonth(first)
	buckets := make([]WeekBucket, len(starts))
	for i, ws := range starts {
		buckets[i] = WeekBucket{
			WeekStart: ws.Format("2006-01-02"),
			Income:    decimal.Zero,
		}
	}

	for _, w := range s.store.Snapshot().Work {
		if w.Mode != models.PeriodModeWeekly {
			continue
		}
		day, err := time.ParseInLocation("2006-01-02", w.DateISO, time.Local)
		if err != nil {
			continue
		}
		weekStart := finance.StartOfWeekMonday(day)
		for i, ws := range starts {
			if ws.Equal(weekStart) {
				buckets[i].Income = buckets[i].Income.Add(w.Amount)
				buckets[i].Entries++
				break
			}
		}
	}
	return buckets, nil
}

// DeleteWork removes an entry by id.
func (s *workService) DeleteWork(id string) error {
	if !s.store.DeleteWork(id) {
		return apperrors.ErrWorkLogNotFound
	}
	return nil
}
