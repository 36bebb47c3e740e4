package services

import (
	apperrors "spendwise/internal/errors"
	"spendwise/internal/finance"
	"spendwise/internal/models"
	"spendwise/internal/store"
)

// groupService handles subscription-group business logic.
type groupService struct {
	store *store.Store
}

// NewGroupService creates a new GroupServicer.
func NewGroupService(st *store.Store) GroupServicer {
	return &groupService{store: st}
}

// AddGroup creates a named group from a selected id set. Ids that do not
// match a live subscription are kept; groups tolerate dangling membership.
func (s *groupService) AddGroup(name string, subIDs []string) (models.SubGroup, error) {
	return s.store.AddSubGroup(name, subIDs), nil
}

// ListGroups returns all groups, newest first.
func (s *groupService) ListGroups() []models.SubGroup {
	return s.store.Snapshot().SubGroups
}

// DeleteGroup removes a group; if it was active, settings revert to
// manual active/pause mode.
func (s *groupService) DeleteGroup(id string) error {
	if !s.store.DeleteSubGroup(id) {
		return apperrors.ErrGroupNotFound
	}
	return nil
}

// ApplyGroup sets every subscription's active flag to match membership in
// the group and selects the group as the active filter, atomically.
func (s *groupService) ApplyGroup(id string) (models.SubGroup, error) {
	if !s.store.ApplySubGroup(id) {
		return models.SubGroup{}, apperrors.ErrGroupNotFound
	}
	if g := finance.FindGroup(s.store.Snapshot().SubGroups, id); g != nil {
		return *g, nil
	}
	return models.SubGroup{}, apperrors.ErrGroupNotFound
}

// SetActiveGroup selects (or clears, with nil) the group filtering expense
// totals. Selecting an unknown group is rejected here at the edit
// boundary; the resolver itself still tolerates dangling references that
// arrive through corrupted state.
func (s *groupService) SetActiveGroup(id *string) (models.Settings, error) {
	if id != nil && finance.FindGroup(s.store.Snapshot().SubGroups, *id) == nil {
		return models.Settings{}, apperrors.ErrGroupNotFound
	}
	s.store.SetActiveSubGroup(id)
	return s.store.Snapshot().Settings, nil
}
