package finance

import (
	"testing"

	"spendwise/internal/models"
	"spendwise/internal/testutil"
)

func TestEffectiveActiveSet(t *testing.T) {
	t.Run("manual_mode_uses_active_flags", func(t *testing.T) {
		a := testutil.NewSubscription(t, "10", true)
		b := testutil.NewSubscription(t, "20", false)
		c := testutil.NewSubscription(t, "30", true)

		got := EffectiveActiveSet([]models.Subscription{a, b, c}, nil, models.DefaultSettings())
		if len(got) != 2 {
			t.Fatalf("expected 2 subscriptions, got %d", len(got))
		}
		if got[0].ID != a.ID || got[1].ID != c.ID {
			t.Error("expected only active subscriptions, in input order")
		}
	})

	t.Run("active_group_filters_membership", func(t *testing.T) {
		a := testutil.NewSubscription(t, "10", true)
		b := testutil.NewSubscription(t, "20", true)
		c := testutil.NewSubscription(t, "30", true)
		g := testutil.NewSubGroup(t, a.ID, b.ID)

		settings := models.DefaultSettings()
		settings.ActiveSubGroupID = &g.ID

		got := EffectiveActiveSet([]models.Subscription{a, b, c}, []models.SubGroup{g}, settings)
		if len(got) != 2 {
			t.Fatalf("expected 2 subscriptions, got %d", len(got))
		}
		for _, s := range got {
			if s.ID == c.ID {
				t.Error("expected non-member to be excluded")
			}
		}
	})

	t.Run("inactive_member_stays_excluded", func(t *testing.T) {
		a := testutil.NewSubscription(t, "10", false)
		g := testutil.NewSubGroup(t, a.ID)

		settings := models.DefaultSettings()
		settings.ActiveSubGroupID = &g.ID

		got := EffectiveActiveSet([]models.Subscription{a}, []models.SubGroup{g}, settings)
		if len(got) != 0 {
			t.Errorf("expected group membership not to override the inactive flag, got %d", len(got))
		}
	})

	t.Run("dangling_group_falls_back_to_manual_mode", func(t *testing.T) {
		a := testutil.NewSubscription(t, "10", true)
		b := testutil.NewSubscription(t, "20", false)

		missing := "no-such-group"
		settings := models.DefaultSettings()
		settings.ActiveSubGroupID = &missing

		got := EffectiveActiveSet([]models.Subscription{a, b}, nil, settings)
		if len(got) != 1 || got[0].ID != a.ID {
			t.Errorf("expected manual-mode fallback with one active subscription, got %d", len(got))
		}
	})
}

func TestActiveGroupName(t *testing.T) {
	t.Run("no_group", func(t *testing.T) {
		if got := ActiveGroupName(nil, models.DefaultSettings()); got != AllSubscriptionsLabel {
			t.Errorf("expected %q, got %q", AllSubscriptionsLabel, got)
		}
	})

	t.Run("named_group", func(t *testing.T) {
		g := testutil.NewSubGroup(t)
		settings := models.DefaultSettings()
		settings.ActiveSubGroupID = &g.ID

		if got := ActiveGroupName([]models.SubGroup{g}, settings); got != g.Name {
			t.Errorf("expected %q, got %q", g.Name, got)
		}
	})

	t.Run("dangling_reference", func(t *testing.T) {
		missing := "no-such-group"
		settings := models.DefaultSettings()
		settings.ActiveSubGroupID = &missing

		if got := ActiveGroupName(nil, settings); got != AllSubscriptionsLabel {
			t.Errorf("expected %q, got %q", AllSubscriptionsLabel, got)
		}
	})
}

func TestTopSubscriptions(t *testing.T) {
	a := testutil.NewSubscription(t, "5", true)
	b := testutil.NewSubscription(t, "25", true)
	c := testutil.NewSubscription(t, "15", true)
	d := testutil.NewSubscription(t, "40", false)

	subs := []models.Subscription{a, b, c, d}

	t.Run("ranks_by_monthly_amount", func(t *testing.T) {
		got := TopSubscriptions(subs, nil, models.DefaultSettings(), 0)
		if len(got) != 3 {
			t.Fatalf("expected 3 subscriptions, got %d", len(got))
		}
		if got[0].ID != b.ID || got[1].ID != c.ID || got[2].ID != a.ID {
			t.Error("expected descending order by monthly amount")
		}
	})

	t.Run("limit_truncates", func(t *testing.T) {
		got := TopSubscriptions(subs, nil, models.DefaultSettings(), 2)
		if len(got) != 2 {
			t.Fatalf("expected 2 subscriptions, got %d", len(got))
		}
		if got[0].ID != b.ID {
			t.Error("expected highest amount first")
		}
	})

	t.Run("respects_active_group", func(t *testing.T) {
		g := testutil.NewSubGroup(t, a.ID, c.ID)
		settings := models.DefaultSettings()
		settings.ActiveSubGroupID = &g.ID

		got := TopSubscriptions(subs, []models.SubGroup{g}, settings, 0)
		if len(got) != 2 {
			t.Fatalf("expected 2 subscriptions, got %d", len(got))
		}
		if got[0].ID != c.ID || got[1].ID != a.ID {
			t.Error("expected only group members, highest first")
		}
	})
}
