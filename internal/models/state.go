package models

// SchemaVersion is the current persisted-state schema version. Older
// versions load through best-effort migration: recognized fields are
// copied, everything else defaults.
const SchemaVersion = 2

// StoreState is the whole process-wide state container value. Work logs,
// groups, and reports are kept newest first; subscriptions in creation
// order. State transitions replace the entire value, never individual
// fields.
type StoreState struct {
	Version   int            `json:"version"`
	Work      []WorkLog      `json:"work"`
	Subs      []Subscription `json:"subs"`
	SubGroups []SubGroup     `json:"sub_groups"`
	Reports   []ReportEntry  `json:"reports"`
	Settings  Settings       `json:"settings"`
}

// DefaultState returns the initial empty state.
func DefaultState() StoreState {
	return StoreState{
		Version:   SchemaVersion,
		Work:      []WorkLog{},
		Subs:      []Subscription{},
		SubGroups: []SubGroup{},
		Reports:   []ReportEntry{},
		Settings:  DefaultSettings(),
	}
}

// Clone returns a deep copy of the state. Reads hand out clones so no
// caller can observe or cause a partial update.
func (s StoreState) Clone() StoreState {
	out := s

	out.Work = make([]WorkLog, len(s.Work))
	copy(out.Work, s.Work)
	for i, w := range s.Work {
		if w.Hours != nil {
			h := *w.Hours
			out.Work[i].Hours = &h
		}
	}

	out.Subs = make([]Subscription, len(s.Subs))
	copy(out.Subs, s.Subs)

	out.SubGroups = make([]SubGroup, len(s.SubGroups))
	copy(out.SubGroups, s.SubGroups)
	for i, g := range s.SubGroups {
		ids := make([]string, len(g.SubIDs))
		copy(ids, g.SubIDs)
		out.SubGroups[i].SubIDs = ids
	}

	out.Reports = make([]ReportEntry, len(s.Reports))
	copy(out.Reports, s.Reports)

	if s.Settings.ActiveSubGroupID != nil {
		id := *s.Settings.ActiveSubGroupID
		out.Settings.ActiveSubGroupID = &id
	}

	return out
}
