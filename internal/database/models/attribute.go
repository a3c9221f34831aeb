package models

import (
	"time"

	"gorm.io/gorm"

	core "CollectKeeper/pkg/models"
)

// Attribute is one typed field definition of an item template.
// Options is non-null iff Kind is multiselect; Symbol is used by rating
// (icon glyph) and link (display text) attributes.
type Attribute struct {
	gorm.Model
	TemplateID uint               `gorm:"not null;index"`
	Label      string             `gorm:"size:30;not null"`
	Kind       core.AttributeKind `gorm:"size:20;not null"`
	Preview    bool               `gorm:"default:false"`
	Symbol     string             `gorm:"size:50"`
	Options    StringList         `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (a *Attribute) Descriptor() core.AttributeDescriptor {
	return core.AttributeDescriptor{
		ID:      a.ID,
		Label:   a.Label,
		Kind:    a.Kind,
		Preview: a.Preview,
		Symbol:  a.Symbol,
		Options: a.Options,
	}
}
