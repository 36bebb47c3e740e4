package finance

import (
	"sort"

	"spendwise/internal/models"
)

// AllSubscriptionsLabel is the active-group name reported when no group is
// selected or the selected group no longer exists.
const AllSubscriptionsLabel = "All subscriptions"

// FindGroup returns the group with the given id, or nil.
func FindGroup(groups []models.SubGroup, id string) *models.SubGroup {
	for i := range groups {
		if groups[i].ID == id {
			return &groups[i]
		}
	}
	return nil
}

// activeGroup resolves the settings' active group reference. A nil or
// dangling reference yields nil, which callers treat as manual mode.
func activeGroup(groups []models.SubGroup, settings models.Settings) *models.SubGroup {
	if settings.ActiveSubGroupID == nil {
		return nil
	}
	return FindGroup(groups, *settings.ActiveSubGroupID)
}

// EffectiveActiveSet returns the subscriptions that count toward expense
// totals. With no active group, each subscription's own active flag
// governs. With an active group, a subscription counts only if it is both
// flagged active and a member of the group; the group is a filter layered
// on top of the individual flag, not a replacement for it. A dangling group
// reference falls back to manual mode.
func EffectiveActiveSet(subs []models.Subscription, groups []models.SubGroup, settings models.Settings) []models.Subscription {
	g := activeGroup(groups, settings)

	out := make([]models.Subscription, 0, len(subs))
	for _, s := range subs {
		if !s.Active {
			continue
		}
		if g != nil && !g.Contains(s.ID) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// ActiveGroupName returns the name of the active group, or the
// all-subscriptions label when no group is active or the reference
// dangles.
func ActiveGroupName(groups []models.SubGroup, settings models.Settings) string {
	if g := activeGroup(groups, settings); g != nil {
		return g.Name
	}
	return AllSubscriptionsLabel
}

// TopSubscriptions ranks the effective active set by monthly amount,
// highest first, returning at most limit entries.
func TopSubscriptions(subs []models.Subscription, groups []models.SubGroup, settings models.Settings, limit int) []models.Subscription {
	eligible := EffectiveActiveSet(subs, groups, settings)
	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].MonthlyAmount.GreaterThan(eligible[j].MonthlyAmount)
	})
	if limit > 0 && len(eligible) > limit {
		eligible = eligible[:limit]
	}
	return eligible
}
