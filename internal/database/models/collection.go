package models

import (
	"time"

	"gorm.io/gorm"
)

// Collection specializes a general page into a schema-defined item
// container. Exactly one template and one page per collection.
type Collection struct {
	gorm.Model
	PageID     uint `gorm:"not null;uniqueIndex"`
	TemplateID uint `gorm:"not null;uniqueIndex"`
	PinCount   int  `gorm:"default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Page       GeneralPage          `gorm:"foreignKey:PageID;constraint:OnDelete:CASCADE"`
	Template   ItemTemplate         `gorm:"foreignKey:TemplateID"`
	Categories []CollectionCategory `gorm:"foreignKey:CollectionID;constraint:OnDelete:CASCADE"`
	Items      []Item               `gorm:"foreignKey:CollectionID;constraint:OnDelete:CASCADE"`
}
