package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// FieldCorrection records a single field that failed its type or range
// constraint and was coerced to its default while loading state. The core
// never rejects malformed persisted data; it degrades and reports.
type FieldCorrection struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// SanitizeJSON decodes a loosely-typed state blob (current schema or a
// legacy camelCase export) into a well-formed StoreState. Unrecognized or
// malformed fields are replaced with defaults and reported; nothing makes
// the load fail.
func SanitizeJSON(data []byte) (StoreState, []FieldCorrection) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		return DefaultState(), []FieldCorrection{{Path: "$", Reason: "not a JSON object"}}
	}
	return SanitizeState(raw)
}

// SanitizeState coerces a decoded loose state map into a StoreState,
// then applies range normalization. Legacy field names (dateISO,
// monthlyAmount, subIds, activeSubGroupId, millisecond createdAt stamps)
// are recognized so old exports migrate without data loss.
func SanitizeState(raw map[string]any) (StoreState, []FieldCorrection) {
	sz := &sanitizer{}
	state := StoreState{
		Version:   SchemaVersion,
		Work:      sz.workLogs(raw),
		Subs:      sz.subscriptions(raw),
		SubGroups: sz.subGroups(raw),
		Reports:   sz.reports(raw),
		Settings:  sz.settings(raw),
	}

	state, rangeFixes := NormalizeState(state)
	return state, append(sz.fixes, rangeFixes...)
}

// NormalizeState enforces range constraints on an already-typed state:
// non-negative amounts, valid enum values, deduplicated group membership,
// percent savings within [0,100], nil slices replaced with empty ones.
// Repository loads run through this before the state reaches computation.
func NormalizeState(s StoreState) (StoreState, []FieldCorrection) {
	var fixes []FieldCorrection
	note := func(path, reason string) {
		fixes = append(fixes, FieldCorrection{Path: path, Reason: reason})
	}

	if s.Version != SchemaVersion {
		note("version", fmt.Sprintf("schema version %d migrated to %d", s.Version, SchemaVersion))
		s.Version = SchemaVersion
	}

	if s.Work == nil {
		s.Work = []WorkLog{}
	}
	for i := range s.Work {
		w := &s.Work[i]
		if w.ID == "" {
			w.ID = NewID()
			note(fmt.Sprintf("work[%d].id", i), "missing id regenerated")
		}
		if w.Mode != PeriodModeWeekly && w.Mode != PeriodModeMonthly {
			note(fmt.Sprintf("work[%d].mode", i), "invalid mode defaulted to monthly")
			w.Mode = PeriodModeMonthly
		}
		if w.Amount.IsNegative() {
			note(fmt.Sprintf("work[%d].amount", i), "negative amount zeroed")
			w.Amount = decimal.Zero
		}
		if w.Hours != nil && *w.Hours < 0 {
			note(fmt.Sprintf("work[%d].hours", i), "negative hours dropped")
			w.Hours = nil
		}
	}

	if s.Subs == nil {
		s.Subs = []Subscription{}
	}
	for i := range s.Subs {
		sub := &s.Subs[i]
		if sub.ID == "" {
			sub.ID = NewID()
			note(fmt.Sprintf("subs[%d].id", i), "missing id regenerated")
		}
		if sub.MonthlyAmount.IsNegative() {
			note(fmt.Sprintf("subs[%d].monthly_amount", i), "negative amount zeroed")
			sub.MonthlyAmount = decimal.Zero
		}
	}

	if s.SubGroups == nil {
		s.SubGroups = []SubGroup{}
	}
	for i := range s.SubGroups {
		g := &s.SubGroups[i]
		if g.ID == "" {
			g.ID = NewID()
			note(fmt.Sprintf("sub_groups[%d].id", i), "missing id regenerated")
		}
		if g.Name == "" {
			note(fmt.Sprintf("sub_groups[%d].name", i), "empty name defaulted")
			g.Name = "My Group"
		}
		deduped := dedupe(g.SubIDs)
		if len(deduped) != len(g.SubIDs) {
			note(fmt.Sprintf("sub_groups[%d].sub_ids", i), "duplicate ids collapsed")
		}
		g.SubIDs = deduped
	}

	if s.Reports == nil {
		s.Reports = []ReportEntry{}
	}
	for i := range s.Reports {
		if s.Reports[i].ID == "" {
			s.Reports[i].ID = NewID()
			note(fmt.Sprintf("reports[%d].id", i), "missing id regenerated")
		}
	}

	s.Settings.ID = 1
	if s.Settings.SavingsMode != SavingsModeFixed && s.Settings.SavingsMode != SavingsModePercent {
		note("settings.savings_mode", "invalid mode defaulted to fixed")
		s.Settings.SavingsMode = SavingsModeFixed
	}
	if s.Settings.SavingsValue.IsNegative() {
		note("settings.savings_value", "negative value zeroed")
		s.Settings.SavingsValue = decimal.Zero
	}
	if s.Settings.SavingsMode == SavingsModePercent && s.Settings.SavingsValue.GreaterThan(decimal.NewFromInt(100)) {
		note("settings.savings_value", "percent clamped to 100")
		s.Settings.SavingsValue = decimal.NewFromInt(100)
	}

	return s, fixes
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// sanitizer coerces loose JSON values field by field, collecting a
// correction per coerced field.
type sanitizer struct {
	fixes []FieldCorrection
}

func (sz *sanitizer) note(path, reason string) {
	sz.fixes = append(sz.fixes, FieldCorrection{Path: path, Reason: reason})
}

func (sz *sanitizer) workLogs(raw map[string]any) []WorkLog {
	items := sz.objects(raw, "work", "work")
	out := make([]WorkLog, 0, len(items))
	for i, obj := range items {
		path := fmt.Sprintf("work[%d]", i)
		w := WorkLog{
			Mode:    PeriodMode(sz.str(obj, path+".mode", "", "mode")),
			DateISO: sz.str(obj, path+".date_iso", "", "date_iso", "dateISO"),
			EndISO:  sz.str(obj, path+".end_iso", "", "end_iso", "endISO"),
			Amount:  sz.dec(obj, path+".amount", "amount"),
			Note:    sz.str(obj, path+".note", "", "note"),
		}
		w.ID = sz.str(obj, path+".id", "", "id")
		w.CreatedAt = sz.timestamp(obj, path+".created_at", "created_at", "createdAt")
		if h, ok := sz.optFloat(obj, path+".hours", "hours"); ok {
			w.Hours = &h
		}
		out = append(out, w)
	}
	return out
}

func (sz *sanitizer) subscriptions(raw map[string]any) []Subscription {
	items := sz.objects(raw, "subs", "subs")
	out := make([]Subscription, 0, len(items))
	for i, obj := range items {
		path := fmt.Sprintf("subs[%d]", i)
		s := Subscription{
			Name:          sz.str(obj, path+".name", "", "name"),
			MonthlyAmount: sz.dec(obj, path+".monthly_amount", "monthly_amount", "monthlyAmount"),
			Active:        sz.boolean(obj, path+".active", "active"),
		}
		s.ID = sz.str(obj, path+".id", "", "id")
		s.CreatedAt = sz.timestamp(obj, path+".created_at", "created_at", "createdAt")
		out = append(out, s)
	}
	return out
}

func (sz *sanitizer) subGroups(raw map[string]any) []SubGroup {
	items := sz.objects(raw, "sub_groups", "sub_groups", "subGroups")
	out := make([]SubGroup, 0, len(items))
	for i, obj := range items {
		path := fmt.Sprintf("sub_groups[%d]", i)
		g := SubGroup{
			Name:   sz.str(obj, path+".name", "", "name"),
			SubIDs: sz.strings(obj, path+".sub_ids", "sub_ids", "subIds"),
		}
		g.ID = sz.str(obj, path+".id", "", "id")
		g.CreatedAt = sz.timestamp(obj, path+".created_at", "created_at", "createdAt")
		out = append(out, g)
	}
	return out
}

func (sz *sanitizer) reports(raw map[string]any) []ReportEntry {
	items := sz.objects(raw, "reports", "reports")
	out := make([]ReportEntry, 0, len(items))
	for i, obj := range items {
		path := fmt.Sprintf("reports[%d]", i)
		r := ReportEntry{
			Month: sz.str(obj, path+".month", "", "month"),
			Roll:  sz.rollup(obj, path+".roll"),
		}
		r.ID = sz.str(obj, path+".id", "", "id")
		r.CreatedAt = sz.timestamp(obj, path+".created_at", "created_at", "createdAt")
		out = append(out, r)
	}
	return out
}

func (sz *sanitizer) settings(raw map[string]any) Settings {
	s := DefaultSettings()
	obj, ok := raw["settings"].(map[string]any)
	if !ok {
		if _, present := raw["settings"]; present {
			sz.note("settings", "not an object, defaulted")
		}
		return s
	}

	s.SavingsMode = SavingsMode(sz.str(obj, "settings.savings_mode", string(SavingsModeFixed), "savings_mode", "savingsMode"))
	s.SavingsValue = sz.dec(obj, "settings.savings_value", "savings_value", "savingsValue")

	if v := pick(obj, "active_sub_group_id", "activeSubGroupId"); v != nil {
		if id, ok := v.(string); ok && id != "" {
			s.ActiveSubGroupID = &id
		} else if _, isStr := v.(string); !isStr {
			sz.note("settings.active_sub_group_id", "not a string, cleared")
		}
	}
	return s
}

// rollup re-decodes a frozen rollup snapshot. A malformed snapshot loads
// as a zero rollup; history display tolerates it.
func (sz *sanitizer) rollup(obj map[string]any, path string) MonthRollup {
	var roll MonthRollup
	v, ok := obj["roll"].(map[string]any)
	if !ok {
		sz.note(path, "not an object, zeroed")
		return roll
	}
	data, err := json.Marshal(v)
	if err == nil {
		err = json.Unmarshal(data, &roll)
	}
	if err != nil {
		sz.note(path, "unreadable snapshot zeroed")
		return MonthRollup{}
	}
	return roll
}

func (sz *sanitizer) objects(raw map[string]any, path string, keys ...string) []map[string]any {
	v := pick(raw, keys...)
	if v == nil {
		return nil
	}
	arr, ok := v.([]any)
	if !ok {
		sz.note(path, "not an array, defaulted to empty")
		return nil
	}
	out := make([]map[string]any, 0, len(arr))
	for i, item := range arr {
		obj, ok := item.(map[string]any)
		if !ok {
			sz.note(fmt.Sprintf("%s[%d]", path, i), "not an object, dropped")
			continue
		}
		out = append(out, obj)
	}
	return out
}

func (sz *sanitizer) str(obj map[string]any, path, def string, keys ...string) string {
	v := pick(obj, keys...)
	if v == nil {
		return def
	}
	s, ok := v.(string)
	if !ok {
		sz.note(path, "not a string, defaulted")
		return def
	}
	return s
}

func (sz *sanitizer) dec(obj map[string]any, path string, keys ...string) decimal.Decimal {
	v := pick(obj, keys...)
	switch x := v.(type) {
	case nil:
		return decimal.Zero
	case float64:
		return decimal.NewFromFloat(x)
	case string:
		d, err := decimal.NewFromString(x)
		if err != nil {
			sz.note(path, "not numeric, zeroed")
			return decimal.Zero
		}
		return d
	case json.Number:
		d, err := decimal.NewFromString(x.String())
		if err != nil {
			sz.note(path, "not numeric, zeroed")
			return decimal.Zero
		}
		return d
	default:
		sz.note(path, "not numeric, zeroed")
		return decimal.Zero
	}
}

func (sz *sanitizer) strings(obj map[string]any, path string, keys ...string) []string {
	v := pick(obj, keys...)
	if v == nil {
		return []string{}
	}
	arr, ok := v.([]any)
	if !ok {
		sz.note(path, "not an array, defaulted to empty")
		return []string{}
	}
	out := make([]string, 0, len(arr))
	for i, item := range arr {
		s, ok := item.(string)
		if !ok {
			sz.note(fmt.Sprintf("%s[%d]", path, i), "not a string, dropped")
			continue
		}
		out = append(out, s)
	}
	return out
}

func (sz *sanitizer) boolean(obj map[string]any, path string, keys ...string) bool {
	v := pick(obj, keys...)
	if v == nil {
		return false
	}
	b, ok := v.(bool)
	if !ok {
		sz.note(path, "not a boolean, defaulted to false")
		return false
	}
	return b
}

func (sz *sanitizer) optFloat(obj map[string]any, path string, keys ...string) (float64, bool) {
	v := pick(obj, keys...)
	if v == nil {
		return 0, false
	}
	f, ok := v.(float64)
	if !ok {
		sz.note(path, "not numeric, dropped")
		return 0, false
	}
	return f, true
}

// timestamp accepts RFC3339 strings and legacy millisecond epochs; anything
// else falls back to the load time so display ordering stays stable.
func (sz *sanitizer) timestamp(obj map[string]any, path string, keys ...string) time.Time {
	v := pick(obj, keys...)
	switch x := v.(type) {
	case nil:
		return time.Now()
	case float64:
		return time.UnixMilli(int64(x))
	case string:
		t, err := time.Parse(time.RFC3339, x)
		if err != nil {
			sz.note(path, "unparseable timestamp defaulted")
			return time.Now()
		}
		return t
	default:
		sz.note(path, "unparseable timestamp defaulted")
		return time.Now()
	}
}

// pick returns the first present key, letting loaders accept both current
// snake_case and legacy camelCase exports.
func pick(obj map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := obj[k]; ok {
			return v
		}
	}
	return nil
}
