package services

import (
	"spendwise/internal/models"
	"spendwise/internal/store"
)

// stateService handles whole-state export, import, and reset.
type stateService struct {
	store *store.Store
}

// NewStateService creates a new StateServicer.
func NewStateService(st *store.Store) StateServicer {
	return &stateService{store: st}
}

// Export returns a snapshot of the full state.
func (s *stateService) Export() models.StoreState {
	return s.store.Snapshot()
}

// Import sanitizes a loose state blob (current schema or a legacy export)
// and swaps it in wholesale. Malformed fields default rather than fail;
// the returned corrections say exactly what was coerced.
func (s *stateService) Import(data []byte) (models.StoreState, []models.FieldCorrection) {
	state, fixes := models.SanitizeJSON(data)
	s.store.Replace(state)
	return s.store.Snapshot(), fixes
}

// Reset restores the default empty state.
func (s *stateService) Reset() {
	s.store.ResetAll()
}
