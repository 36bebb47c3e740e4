// Package store holds the process-wide state container. Every mutation
// builds a new state value and swaps it in whole under a single writer
// lock; reads hand out deep-copied snapshots. Subscribers are notified
// synchronously before an update call returns, so no consumer ever
// observes a partially-applied transition.
package store

import (
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"spendwise/internal/models"
)

// Store is an observable container for one StoreState value. Construct it
// explicitly and inject it; there is no package-level instance, so tests
// can run independent stores side by side.
type Store struct {
	mu        sync.Mutex
	state     models.StoreState
	listeners map[int]func()
	nextSub   int
}

// New creates a store seeded with the given state.
func New(initial models.StoreState) *Store {
	return &Store{
		state:     initial.Clone(),
		listeners: make(map[int]func()),
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() models.StoreState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Subscribe registers a callback invoked after every state change and
// returns its unsubscribe function.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// update applies fn to a clone of the current state, swaps the result in,
// and notifies subscribers. Notification happens outside the lock so
// subscribers may call Snapshot.
func (s *Store) update(fn func(next *models.StoreState)) {
	s.mu.Lock()
	next := s.state.Clone()
	fn(&next)
	s.state = next

	fns := make([]func(), 0, len(s.listeners))
	for _, l := range s.listeners {
		fns = append(fns, l)
	}
	s.mu.Unlock()

	for _, l := range fns {
		l()
	}
}

// WorkInput carries the validated fields for a new work entry. The date is
// stored exactly as given; callers normalize it first.
type WorkInput struct {
	Mode    models.PeriodMode
	DateISO string
	EndISO  string
	Amount  decimal.Decimal
	Hours   *float64
	Note    string
}

// AddWork prepends a new income entry and returns it.
func (s *Store) AddWork(input WorkInput) models.WorkLog {
	w := models.WorkLog{
		Base:    models.Base{ID: models.NewID(), CreatedAt: time.Now()},
		Mode:    input.Mode,
		DateISO: input.DateISO,
		EndISO:  input.EndISO,
		Amount:  clampNonNeg(input.Amount),
		Hours:   input.Hours,
		Note:    strings.TrimSpace(input.Note),
	}
	s.update(func(next *models.StoreState) {
		next.Work = append([]models.WorkLog{w}, next.Work...)
	})
	return w
}

// DeleteWork removes the entry with the given id, reporting whether it
// existed.
func (s *Store) DeleteWork(id string) bool {
	removed := false
	s.update(func(next *models.StoreState) {
		kept := next.Work[:0]
		for _, w := range next.Work {
			if w.ID == id {
				removed = true
				continue
			}
			kept = append(kept, w)
		}
		next.Work = kept
	})
	return removed
}

// AddSub appends a new subscription and returns it.
func (s *Store) AddSub(name string, monthlyAmount decimal.Decimal, active bool) models.Subscription {
	sub := models.Subscription{
		Base:          models.Base{ID: models.NewID(), CreatedAt: time.Now()},
		Name:          strings.TrimSpace(name),
		MonthlyAmount: clampNonNeg(monthlyAmount),
		Active:        active,
	}
	s.update(func(next *models.StoreState) {
		next.Subs = append(next.Subs, sub)
	})
	return sub
}

// DeleteSub removes a subscription and purges its id from every group's
// membership in the same transition, so no group ever dangles because of a
// local delete.
func (s *Store) DeleteSub(id string) bool {
	removed := false
	s.update(func(next *models.StoreState) {
		kept := next.Subs[:0]
		for _, sub := range next.Subs {
			if sub.ID == id {
				removed = true
				continue
			}
			kept = append(kept, sub)
		}
		next.Subs = kept

		for gi := range next.SubGroups {
			ids := next.SubGroups[gi].SubIDs[:0]
			for _, sid := range next.SubGroups[gi].SubIDs {
				if sid != id {
					ids = append(ids, sid)
				}
			}
			next.SubGroups[gi].SubIDs = ids
		}
	})
	return removed
}

// ToggleSub flips a subscription's active flag, reporting whether the id
// existed.
func (s *Store) ToggleSub(id string) bool {
	found := false
	s.update(func(next *models.StoreState) {
		for i := range next.Subs {
			if next.Subs[i].ID == id {
				next.Subs[i].Active = !next.Subs[i].Active
				found = true
				return
			}
		}
	})
	return found
}

// AddSubGroup prepends a new group built from the given membership.
// Duplicate and empty ids collapse; an empty name gets a default.
func (s *Store) AddSubGroup(name string, subIDs []string) models.SubGroup {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		trimmed = "My Group"
	}

	seen := make(map[string]struct{}, len(subIDs))
	ids := make([]string, 0, len(subIDs))
	for _, id := range subIDs {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	g := models.SubGroup{
		Base:   models.Base{ID: models.NewID(), CreatedAt: time.Now()},
		Name:   trimmed,
		SubIDs: ids,
	}
	s.update(func(next *models.StoreState) {
		next.SubGroups = append([]models.SubGroup{g}, next.SubGroups...)
	})
	return g
}

// DeleteSubGroup removes a group. If it was the active group, settings
// revert to manual mode in the same transition.
func (s *Store) DeleteSubGroup(id string) bool {
	removed := false
	s.update(func(next *models.StoreState) {
		kept := next.SubGroups[:0]
		for _, g := range next.SubGroups {
			if g.ID == id {
				removed = true
				continue
			}
			kept = append(kept, g)
		}
		next.SubGroups = kept

		if removed && next.Settings.ActiveSubGroupID != nil && *next.Settings.ActiveSubGroupID == id {
			next.Settings.ActiveSubGroupID = nil
		}
	})
	return removed
}

// ApplySubGroup sets every subscription's active flag to exactly match
// membership in the group and makes the group active, as one atomic
// transition. Returns false if the group does not exist, in which case
// nothing changes.
func (s *Store) ApplySubGroup(id string) bool {
	applied := false
	s.update(func(next *models.StoreState) {
		var target *models.SubGroup
		for i := range next.SubGroups {
			if next.SubGroups[i].ID == id {
				target = &next.SubGroups[i]
				break
			}
		}
		if target == nil {
			return
		}

		members := make(map[string]struct{}, len(target.SubIDs))
		for _, sid := range target.SubIDs {
			members[sid] = struct{}{}
		}
		for i := range next.Subs {
			_, in := members[next.Subs[i].ID]
			next.Subs[i].Active = in
		}

		gid := id
		next.Settings.ActiveSubGroupID = &gid
		applied = true
	})
	return applied
}

// SetActiveSubGroup selects the group used as the expense filter, or
// clears the selection when id is nil.
func (s *Store) SetActiveSubGroup(id *string) {
	s.update(func(next *models.StoreState) {
		if id == nil {
			next.Settings.ActiveSubGroupID = nil
			return
		}
		v := *id
		next.Settings.ActiveSubGroupID = &v
	})
}

// SettingsPatch is a partial settings update; nil fields are left alone.
type SettingsPatch struct {
	SavingsMode  *models.SavingsMode
	SavingsValue *decimal.Decimal
}

// UpdateSettings applies a partial patch. Savings values never go
// negative and percent values stay within [0,100].
func (s *Store) UpdateSettings(patch SettingsPatch) models.Settings {
	var out models.Settings
	s.update(func(next *models.StoreState) {
		if patch.SavingsMode != nil {
			next.Settings.SavingsMode = *patch.SavingsMode
		}
		if patch.SavingsValue != nil {
			next.Settings.SavingsValue = clampNonNeg(*patch.SavingsValue)
		}
		if next.Settings.SavingsMode == models.SavingsModePercent &&
			next.Settings.SavingsValue.GreaterThan(decimal.NewFromInt(100)) {
			next.Settings.SavingsValue = decimal.NewFromInt(100)
		}
		out = next.Settings
	})
	return out
}

// AddReportEntry freezes a rollup into the report history, newest first.
func (s *Store) AddReportEntry(month string, roll models.MonthRollup) models.ReportEntry {
	entry := models.ReportEntry{
		Base:  models.Base{ID: models.NewID(), CreatedAt: time.Now()},
		Month: month,
		Roll:  roll,
	}
	s.update(func(next *models.StoreState) {
		next.Reports = append([]models.ReportEntry{entry}, next.Reports...)
	})
	return entry
}

// ClearReportHistory discards all saved report entries.
func (s *Store) ClearReportHistory() {
	s.update(func(next *models.StoreState) {
		next.Reports = []models.ReportEntry{}
	})
}

// Replace swaps in an entirely new state, used by imports. The caller is
// responsible for sanitizing first.
func (s *Store) Replace(state models.StoreState) {
	s.update(func(next *models.StoreState) {
		*next = state.Clone()
	})
}

// ResetAll restores the default empty state.
func (s *Store) ResetAll() {
	s.update(func(next *models.StoreState) {
		*next = models.DefaultState()
	})
}

func clampNonNeg(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
