package models

import (
	"time"

	"gorm.io/gorm"

	core "CollectKeeper/pkg/models"
)

// ItemTemplate owns an ordered list of attributes. Attribute order is
// the order of creation, so ascending attribute ID is the canonical
// positional order relied on by every reader.
type ItemTemplate struct {
	gorm.Model
	Name      string `gorm:"size:75;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Attributes []Attribute `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE"`
}

// View converts the entity to its read model, attributes in ID order.
func (t *ItemTemplate) View() core.Template {
	view := core.Template{
		ID:         t.ID,
		Name:       t.Name,
		Attributes: make([]core.AttributeDescriptor, 0, len(t.Attributes)),
	}
	for i := range t.Attributes {
		view.Attributes = append(view.Attributes, t.Attributes[i].Descriptor())
	}
	return view
}
