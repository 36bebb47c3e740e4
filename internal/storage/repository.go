// Package storage persists the whole store state through GORM. The state
// container remains the source of truth while the process runs; this
// repository loads it once at startup (through the domain sanitizer) and
// rewrites it wholesale after every change, mirroring the whole-container
// swap discipline on disk.
package storage

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"spendwise/internal/logger"
	"spendwise/internal/models"
)

// SchemaMeta is the single row recording the persisted schema version.
type SchemaMeta struct {
	ID      uint `gorm:"primaryKey"`
	Version int  `gorm:"not null"`
}

// TableName keeps the meta table clearly separate from entity tables.
func (SchemaMeta) TableName() string { return "schema_meta" }

// Repository loads and saves the full store state.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a Repository over an open GORM connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Load reads the persisted state, runs it through domain normalization,
// and returns the corrections that were applied. A version mismatch is a
// best-effort migration, not a failure: recognized fields are copied and
// the rest default. Missing tables or rows yield the default state.
func (r *Repository) Load() (models.StoreState, []models.FieldCorrection, error) {
	state := models.DefaultState()

	var meta SchemaMeta
	if err := r.db.First(&meta, 1).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return state, nil, fmt.Errorf("load schema version: %w", err)
		}
		meta = SchemaMeta{ID: 1, Version: models.SchemaVersion}
	}
	state.Version = meta.Version

	if err := r.db.Order("created_at DESC").Find(&state.Work).Error; err != nil {
		return state, nil, fmt.Errorf("load work logs: %w", err)
	}
	if err := r.db.Order("created_at ASC").Find(&state.Subs).Error; err != nil {
		return state, nil, fmt.Errorf("load subscriptions: %w", err)
	}
	if err := r.db.Order("created_at DESC").Find(&state.SubGroups).Error; err != nil {
		return state, nil, fmt.Errorf("load subscription groups: %w", err)
	}
	if err := r.db.Order("created_at DESC").Find(&state.Reports).Error; err != nil {
		return state, nil, fmt.Errorf("load report history: %w", err)
	}

	var settings models.Settings
	if err := r.db.First(&settings, 1).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return state, nil, fmt.Errorf("load settings: %w", err)
		}
		settings = models.DefaultSettings()
	}
	state.Settings = settings

	state, fixes := models.NormalizeState(state)
	for _, fix := range fixes {
		logger.Get().Warnw("persisted state corrected", "path", fix.Path, "reason", fix.Reason)
	}
	return state, fixes, nil
}

// Save replaces the persisted state in one transaction.
func (r *Repository) Save(state models.StoreState) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		tables := []any{
			&models.WorkLog{},
			&models.Subscription{},
			&models.SubGroup{},
			&models.ReportEntry{},
			&models.Settings{},
			&SchemaMeta{},
		}
		for _, table := range tables {
			if err := tx.Where("1 = 1").Delete(table).Error; err != nil {
				return fmt.Errorf("clear table: %w", err)
			}
		}

		if len(state.Work) > 0 {
			if err := tx.Create(state.Work).Error; err != nil {
				return fmt.Errorf("save work logs: %w", err)
			}
		}
		if len(state.Subs) > 0 {
			if err := tx.Create(state.Subs).Error; err != nil {
				return fmt.Errorf("save subscriptions: %w", err)
			}
		}
		if len(state.SubGroups) > 0 {
			if err := tx.Create(state.SubGroups).Error; err != nil {
				return fmt.Errorf("save subscription groups: %w", err)
			}
		}
		if len(state.Reports) > 0 {
			if err := tx.Create(state.Reports).Error; err != nil {
				return fmt.Errorf("save report history: %w", err)
			}
		}

		settings := state.Settings
		settings.ID = 1
		if err := tx.Create(&settings).Error; err != nil {
			return fmt.Errorf("save settings: %w", err)
		}

		meta := SchemaMeta{ID: 1, Version: models.SchemaVersion}
		if err := tx.Create(&meta).Error; err != nil {
			return fmt.Errorf("save schema version: %w", err)
		}
		return nil
	})
}
