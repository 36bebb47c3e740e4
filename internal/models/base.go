package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base contains the common columns shared by all persisted entities.
// IDs are time-ordered UUIDv7 strings so creation order survives
// export/import round trips.
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate assigns an ID if the record was inserted without one.
// The store assigns IDs itself; this hook only covers direct inserts.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = NewID()
	}
	return nil
}

// NewID returns a new UUIDv7 string, falling back to UUIDv4 if the
// system clock or entropy source misbehaves.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
