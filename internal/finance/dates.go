// Package finance holds the pure monthly rollup computation: date
// bucketing, the effective subscription set, and the rollup itself. Nothing
// in this package touches storage or performs I/O; every function is a pure
// view over a state snapshot.
package finance

import (
	"fmt"
	"regexp"
	"time"

	"spendwise/internal/models"
)

const monthKeyLayout = "2006-01"

var bareMonthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)

// MonthKeyOf returns the YYYY-MM month key of an ISO date string. Malformed
// input (shorter than a month key, or absent) falls back to the current
// month rather than failing; a broken date must not block a rollup.
func MonthKeyOf(iso string) string {
	if len(iso) < len(monthKeyLayout) {
		return CurrentMonthKey()
	}
	return iso[:len(monthKeyLayout)]
}

// CurrentMonthKey returns the month key for the local current time.
func CurrentMonthKey() string {
	return MonthKeyAt(time.Now())
}

// MonthKeyAt returns the month key for the given time.
func MonthKeyAt(t time.Time) string {
	return t.Format(monthKeyLayout)
}

// ParseMonthKey parses a YYYY-MM key into the first day of that month.
func ParseMonthKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(monthKeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month key %q: %w", key, err)
	}
	return t, nil
}

// NormalizeWorkDate canonicalizes a user-entered work date. Weekly entries
// keep the exact day the user chose. Monthly entries expand a bare YYYY-MM
// to the first of the month; full dates pass through unchanged.
func NormalizeWorkDate(mode models.PeriodMode, input string) string {
	if mode == models.PeriodModeWeekly {
		return input
	}
	if bareMonthRe.MatchString(input) {
		return input + "-01"
	}
	return input
}

// InMonth reports whether a work entry belongs to the given month key.
// A monthly entry belongs to the month its date falls in. A weekly entry
// belongs to a month if its start or its end falls there, so a week that
// straddles a month boundary counts toward both months' income. That double
// count is intentional: weekly entries are real deposits and the product
// favors visibility over exact non-overlap.
func InMonth(w models.WorkLog, monthKey string) bool {
	if w.Mode == models.PeriodModeMonthly {
		return MonthKeyOf(w.DateISO) == monthKey
	}
	if MonthKeyOf(w.DateISO) == monthKey {
		return true
	}
	return w.EndISO != "" && MonthKeyOf(w.EndISO) == monthKey
}

// PrevMonthKeys returns n consecutive month keys ending at the given key,
// oldest first. Used to build trend series by rolling the engine once per
// month.
func PrevMonthKeys(key string, n int) ([]string, error) {
	if n < 1 {
		n = 1
	}
	end, err := ParseMonthKey(key)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		keys = append(keys, MonthKeyAt(end.AddDate(0, -i, 0)))
	}
	return keys, nil
}

// StartOfWeekMonday returns the Monday starting the week containing t.
func StartOfWeekMonday(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	diff := int(day.Weekday()) - int(time.Monday)
	if diff < 0 {
		diff += 7
	}
	return day.AddDate(0, 0, -diff)
}

// WeekStartsInMonth returns the Monday start of every week touched by the
// month containing t, in order. The first Monday may fall in the previous
// month.
func WeekStartsInMonth(t time.Time) []time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)

	var starts []time.Time
	cur := StartOfWeekMonday(first)
	for !cur.After(last) {
		starts = append(starts, cur)
		cur = cur.AddDate(0, 0, 7)
	}
	return starts
}

// WeeksInMonth counts the distinct Monday-start weeks touched by the month
// containing t, never fewer than one.
func WeeksInMonth(t time.Time) int {
	if n := len(WeekStartsInMonth(t)); n > 0 {
		return n
	}
	return 1
}
