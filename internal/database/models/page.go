package models

import (
	"time"

	"gorm.io/gorm"
)

// GeneralPage is the shared base row for notes and collections. The
// page subsystem owns this metadata; the collection core only references
// pages by ID and bumps UpdatedAt on item writes.
type GeneralPage struct {
	gorm.Model
	Title     string `gorm:"size:75;not null"`
	Icon      string `gorm:"size:50"`
	Color     string `gorm:"size:50"`
	Archived  bool   `gorm:"default:false"`
	Pinned    bool   `gorm:"default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
