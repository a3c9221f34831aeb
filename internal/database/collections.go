package database

import (
	"context"

	"gorm.io/gorm"

	"CollectKeeper/internal/database/models"
	core "CollectKeeper/pkg/models"
)

// CreateCollection persists the page, the template with its attributes,
// the collection row and the initial categories as one transaction.
// Any step failing aborts all of them.
func (s *Store) CreateCollection(ctx context.Context, page core.PageDraft, template core.TemplateDraft, categories []string) (uint, error) {
	var collectionID uint

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pageRow, err := createPage(tx, page)
		if err != nil {
			return err
		}

		templateRow, err := createTemplate(tx, template)
		if err != nil {
			return err
		}

		collection := models.Collection{
			PageID:     pageRow.ID,
			TemplateID: templateRow.ID,
		}
		if err := tx.Create(&collection).Error; err != nil {
			return err
		}

		for _, name := range categories {
			category := models.CollectionCategory{
				CollectionID: collection.ID,
				Name:         name,
			}
			if err := tx.Create(&category).Error; err != nil {
				return err
			}
		}

		collectionID = collection.ID
		return nil
	})
	if err != nil {
		return 0, err
	}

	return collectionID, nil
}

func (s *Store) GetCollection(ctx context.Context, collectionID uint) (*models.Collection, error) {
	var collection models.Collection
	result := s.db.WithContext(ctx).First(&collection, collectionID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &collection, nil
}

func (s *Store) GetCollectionByPage(ctx context.Context, pageID uint) (*models.Collection, error) {
	var collection models.Collection
	result := s.db.WithContext(ctx).Where("page_id = ?", pageID).First(&collection)
	if result.Error != nil {
		return nil, result.Error
	}
	return &collection, nil
}

// DeleteCollection removes the collection together with its template,
// attributes, categories, items and values, in one transaction. The
// base page goes with it.
func (s *Store) DeleteCollection(ctx context.Context, collectionID uint) error {
	var templateID uint

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var collection models.Collection
		if err := tx.First(&collection, collectionID).Error; err != nil {
			return err
		}
		templateID = collection.TemplateID

		itemIDs := tx.Model(&models.Item{}).
			Select("id").
			Where("collection_id = ?", collectionID)
		if err := tx.Where("item_id IN (?)", itemIDs).Delete(&models.ItemValue{}).Error; err != nil {
			return err
		}
		if err := tx.Where("collection_id = ?", collectionID).Delete(&models.Item{}).Error; err != nil {
			return err
		}
		if err := tx.Where("collection_id = ?", collectionID).Delete(&models.CollectionCategory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("template_id = ?", collection.TemplateID).Delete(&models.Attribute{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.ItemTemplate{}, collection.TemplateID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Collection{}, collectionID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.GeneralPage{}, collection.PageID).Error
	})
	if err != nil {
		return err
	}

	s.invalidateTemplate(templateID)
	return nil
}

func (s *Store) AddCategory(ctx context.Context, collectionID uint, name string) (uint, error) {
	if _, err := s.GetCollection(ctx, collectionID); err != nil {
		return 0, err
	}

	category := models.CollectionCategory{
		CollectionID: collectionID,
		Name:         name,
	}
	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		return 0, err
	}
	return category.ID, nil
}

func (s *Store) Categories(ctx context.Context, collectionID uint) ([]models.CollectionCategory, error) {
	var categories []models.CollectionCategory
	result := s.db.WithContext(ctx).
		Where("collection_id = ?", collectionID).
		Order("id ASC").
		Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}
	return categories, nil
}

func (s *Store) GetCategory(ctx context.Context, collectionID, categoryID uint) (*models.CollectionCategory, error) {
	var category models.CollectionCategory
	result := s.db.WithContext(ctx).
		Where("collection_id = ? AND id = ?", collectionID, categoryID).
		First(&category)
	if result.Error != nil {
		return nil, result.Error
	}
	return &category, nil
}

// DeleteCategory removes the bucket and ungroups its items; the items
// themselves survive.
func (s *Store) DeleteCategory(ctx context.Context, collectionID, categoryID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("collection_id = ? AND id = ?", collectionID, categoryID).
			Delete(&models.CollectionCategory{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&models.Item{}).
			Where("collection_id = ? AND category_id = ?", collectionID, categoryID).
			Update("category_id", nil).Error
	})
}
