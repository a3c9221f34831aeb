package database

import (
	"context"

	"gorm.io/gorm"

	"CollectKeeper/internal/database/models"
	core "CollectKeeper/pkg/models"
)

// createTemplate persists a template and its attributes in draft order
// within the caller's transaction. Ascending attribute IDs encode the
// positional order every reader relies on.
func createTemplate(tx *gorm.DB, draft core.TemplateDraft) (*models.ItemTemplate, error) {
	template := models.ItemTemplate{Name: draft.Name}
	if err := tx.Create(&template).Error; err != nil {
		return nil, err
	}

	for _, attr := range draft.Attributes {
		row := models.Attribute{
			TemplateID: template.ID,
			Label:      attr.Label,
			Kind:       attr.Kind,
			Preview:    attr.Preview,
			Symbol:     attr.Symbol,
			Options:    models.StringList(attr.Options),
		}
		if err := tx.Create(&row).Error; err != nil {
			return nil, err
		}
		template.Attributes = append(template.Attributes, row)
	}

	return &template, nil
}

// GetTemplate returns the template read model, attributes in template
// order, served from the LRU cache when possible.
func (s *Store) GetTemplate(ctx context.Context, templateID uint) (core.Template, error) {
	if cached, ok := s.templates.Get(templateID); ok {
		return cached, nil
	}

	var template models.ItemTemplate
	result := s.db.WithContext(ctx).
		Preload("Attributes", func(db *gorm.DB) *gorm.DB {
			return db.Order("attributes.id ASC")
		}).
		First(&template, templateID)
	if result.Error != nil {
		return core.Template{}, result.Error
	}

	view := template.View()
	s.templates.Add(templateID, view)
	return view, nil
}

func (s *Store) invalidateTemplate(templateID uint) {
	s.templates.Remove(templateID)
}
