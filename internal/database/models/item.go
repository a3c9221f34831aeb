package models

import (
	"time"

	"gorm.io/gorm"
)

// Item is one record inside a collection, optionally assigned to one
// of the collection's categories. Its values are destroyed with it.
type Item struct {
	gorm.Model
	CollectionID uint  `gorm:"not null;index"`
	CategoryID   *uint `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Values []ItemValue `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
}
