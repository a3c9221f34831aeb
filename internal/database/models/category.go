package models

import (
	"time"

	"gorm.io/gorm"
)

// CollectionCategory is an optional grouping bucket for items inside
// one collection. A collection with zero categories keeps its items
// ungrouped.
type CollectionCategory struct {
	gorm.Model
	CollectionID uint   `gorm:"not null;index"`
	Name         string `gorm:"size:30;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Items []Item `gorm:"foreignKey:CategoryID"`
}
