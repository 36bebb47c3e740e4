package services

import (
	"strings"

	"github.com/shopspring/decimal"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/finance"
	"spendwise/internal/models"
	"spendwise/internal/store"
)

// subscriptionService handles subscription business logic.
type subscriptionService struct {
	store *store.Store
}

// NewSubscriptionService creates a new SubscriptionServicer.
func NewSubscriptionService(st *store.Store) SubscriptionServicer {
	return &subscriptionService{store: st}
}

// AddSub creates a recurring monthly expense.
func (s *subscriptionService) AddSub(name string, monthlyAmount decimal.Decimal, active bool) (models.Subscription, error) {
	if strings.TrimSpace(name) == "" {
		return models.Subscription{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "Name must not be empty")
	}
	if monthlyAmount.IsNegative() {
		return models.Subscription{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "Monthly amount must not be negative")
	}
	return s.store.AddSub(name, monthlyAmount, active), nil
}

// ListSubs returns all subscriptions in creation order.
func (s *subscriptionService) ListSubs() []models.Subscription {
	return s.store.Snapshot().Subs
}

// ToggleSub flips a subscription's active flag and returns its new state.
func (s *subscriptionService) ToggleSub(id string) (models.Subscription, error) {
	if !s.store.ToggleSub(id) {
		return models.Subscription{}, apperrors.ErrSubscriptionNotFound
	}
	for _, sub := range s.store.Snapshot().Subs {
		if sub.ID == id {
			return sub, nil
		}
	}
	return models.Subscription{}, apperrors.ErrSubscriptionNotFound
}

// DeleteSub removes a subscription; its id is purged from every group in
// the same state transition.
func (s *subscriptionService) DeleteSub(id string) error {
	if !s.store.DeleteSub(id) {
		return apperrors.ErrSubscriptionNotFound
	}
	return nil
}

// TopSubs ranks the subscriptions currently counting toward expenses by
// monthly amount, highest first.
func (s *subscriptionService) TopSubs(limit int) []models.Subscription {
	snap := s.store.Snapshot()
	return finance.TopSubscriptions(snap.Subs, snap.SubGroups, snap.Settings, limit)
}
