package database

import (
	"context"
	"time"

	"gorm.io/gorm"

	"CollectKeeper/internal/aggregate"
	"CollectKeeper/internal/database/models"
	core "CollectKeeper/pkg/models"
)

// ValueWrite pairs an attribute with the validated value to store for
// it. The writer persists writes in the order given, which the service
// keeps aligned to template attribute order.
type ValueWrite struct {
	AttributeID uint
	Value       core.Value
}

// InsertItem writes the item header, one value row per attribute and
// the page last-modified touch as one transaction. Nothing persists if
// any row fails.
func (s *Store) InsertItem(ctx context.Context, collectionID uint, categoryID *uint, writes []ValueWrite) (uint, error) {
	var itemID uint

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var collection models.Collection
		if err := tx.First(&collection, collectionID).Error; err != nil {
			return err
		}

		item := models.Item{
			CollectionID: collectionID,
			CategoryID:   categoryID,
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}

		for _, write := range writes {
			row, err := models.NewItemValue(item.ID, write.AttributeID, write.Value)
			if err != nil {
				return err
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		if err := touchPage(tx, collection.PageID, time.Now()); err != nil {
			return err
		}

		itemID = item.ID
		return nil
	})
	if err != nil {
		return 0, err
	}

	return itemID, nil
}

// UpdateItemValues rewrites the given attribute values of an existing
// item, nulling the unused per-kind columns, and touches the page,
// all in one transaction.
func (s *Store) UpdateItemValues(ctx context.Context, itemID uint, writes []ValueWrite) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, collection, err := itemWithCollection(tx, itemID)
		if err != nil {
			return err
		}

		for _, write := range writes {
			row, err := models.NewItemValue(item.ID, write.AttributeID, write.Value)
			if err != nil {
				return err
			}
			result := tx.Model(&models.ItemValue{}).
				Where("item_id = ? AND attribute_id = ?", item.ID, write.AttributeID).
				Updates(row.Columns())
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}

		return touchPage(tx, collection.PageID, time.Now())
	})
}

// MoveItem reassigns an item to a category, or ungroups it when
// categoryID is nil.
func (s *Store) MoveItem(ctx context.Context, itemID uint, categoryID *uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, collection, err := itemWithCollection(tx, itemID)
		if err != nil {
			return err
		}

		if categoryID != nil {
			var category models.CollectionCategory
			err := tx.Where("collection_id = ? AND id = ?", item.CollectionID, *categoryID).
				First(&category).Error
			if err != nil {
				return err
			}
		}

		err = tx.Model(&models.Item{}).
			Where("id = ?", item.ID).
			Update("category_id", categoryID).Error
		if err != nil {
			return err
		}

		return touchPage(tx, collection.PageID, time.Now())
	})
}

// DeleteItem destroys the item and all its values together.
func (s *Store) DeleteItem(ctx context.Context, itemID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, collection, err := itemWithCollection(tx, itemID)
		if err != nil {
			return err
		}

		if err := tx.Where("item_id = ?", itemID).Delete(&models.ItemValue{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Item{}, itemID).Error; err != nil {
			return err
		}

		return touchPage(tx, collection.PageID, time.Now())
	})
}

func (s *Store) GetItem(ctx context.Context, itemID uint) (*models.Item, error) {
	var item models.Item
	result := s.db.WithContext(ctx).First(&item, itemID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &item, nil
}

func itemWithCollection(tx *gorm.DB, itemID uint) (*models.Item, *models.Collection, error) {
	var item models.Item
	if err := tx.First(&item, itemID).Error; err != nil {
		return nil, nil, err
	}
	var collection models.Collection
	if err := tx.First(&collection, item.CollectionID).Error; err != nil {
		return nil, nil, err
	}
	return &item, &collection, nil
}

// itemRowsQuery is the flat read for the aggregator: one row per
// (item, value) pair with attribute and category metadata joined in.
// The ORDER BY is a contract: item ID then attribute ID is the
// positional alignment the aggregator reconstructs from.
const itemRowsQuery = `
SELECT
    i.id            AS item_id,
    i.category_id   AS category_id,
    cat.name        AS category_name,
    a.id            AS attribute_id,
    a.label         AS label,
    a.kind          AS kind,
    a.preview       AS preview,
    a.symbol        AS symbol,
    a.options       AS options_json,
    v.text_value    AS text_value,
    v.date_value    AS date_value,
    v.rating_value  AS rating_value,
    v.multi_value   AS multi_value
FROM items i
LEFT JOIN collection_categories cat
    ON cat.id = i.category_id AND cat.deleted_at IS NULL
LEFT JOIN item_values v
    ON v.item_id = i.id AND v.deleted_at IS NULL
LEFT JOIN attributes a
    ON a.id = v.attribute_id AND a.deleted_at IS NULL
WHERE i.collection_id = ? AND i.deleted_at IS NULL
ORDER BY i.id ASC, a.id ASC`

// ItemRows resolves the collection behind a page and returns its flat
// row set in aggregation order.
func (s *Store) ItemRows(ctx context.Context, pageID uint) (*models.Collection, []aggregate.ItemRow, error) {
	collection, err := s.GetCollectionByPage(ctx, pageID)
	if err != nil {
		return nil, nil, err
	}

	var rows []aggregate.ItemRow
	result := s.db.WithContext(ctx).Raw(itemRowsQuery, collection.ID).Scan(&rows)
	if result.Error != nil {
		return nil, nil, result.Error
	}

	return collection, rows, nil
}
