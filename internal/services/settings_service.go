package services

import (
	"spendwise/internal/models"
	"spendwise/internal/store"
)

// settingsService handles settings business logic.
type settingsService struct {
	store *store.Store
}

// NewSettingsService creates a new SettingsServicer.
func NewSettingsService(st *store.Store) SettingsServicer {
	return &settingsService{store: st}
}

// GetSettings returns the current settings.
func (s *settingsService) GetSettings() models.Settings {
	return s.store.Snapshot().Settings
}

// UpdateSettings applies a partial patch and returns the result. The store
// clamps savings values on top of request validation.
func (s *settingsService) UpdateSettings(patch store.SettingsPatch) models.Settings {
	return s.store.UpdateSettings(patch)
}
