// Package collection is the boundary of the item schema-and-storage
// core: it composes the validator, the transactional store and the
// aggregator behind typed, categorized results.
package collection

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"CollectKeeper/internal/aggregate"
	"CollectKeeper/internal/database"
	"CollectKeeper/internal/validation"
	core "CollectKeeper/pkg/models"
)

type Service struct {
	store *database.Store
	log   zerolog.Logger
}

func NewService(store *database.Store, log zerolog.Logger) *Service {
	return &Service{store: store, log: log}
}

// CreateCollection creates the page, the template with its attributes,
// the collection and its categories as one logical operation; any step
// failing aborts all of them.
func (s *Service) CreateCollection(ctx context.Context, page core.PageDraft, template core.TemplateDraft, categories []string) (uint, error) {
	if err := validation.PageDraft(page); err != nil {
		return 0, newError(ErrValidation, "page", "create_collection", err)
	}
	if err := validation.Template(template); err != nil {
		return 0, newError(ErrValidation, "template", "create_collection", err)
	}
	for _, name := range categories {
		if err := validation.CategoryName(name); err != nil {
			return 0, newError(ErrValidation, "category", "create_collection", err)
		}
	}

	collectionID, err := s.store.CreateCollection(ctx, page, template, categories)
	if err != nil {
		return 0, classify(err, "collection", "create_collection")
	}
	return collectionID, nil
}

// GetTemplate returns the ordered attribute schema of a template.
func (s *Service) GetTemplate(ctx context.Context, templateID uint) (core.Template, error) {
	template, err := s.store.GetTemplate(ctx, templateID)
	if err != nil {
		return core.Template{}, classify(err, "template", "get_template")
	}
	return template, nil
}

// InsertItem validates one raw value per template attribute and writes
// the item atomically. Every attribute must be present: the writer
// always stores exactly one row per (item, attribute) pair.
func (s *Service) InsertItem(ctx context.Context, collectionID uint, categoryID *uint, raw map[uint]any) (uint, error) {
	const op = "insert_item"

	collection, err := s.store.GetCollection(ctx, collectionID)
	if err != nil {
		return 0, classify(err, "collection", op)
	}
	template, err := s.store.GetTemplate(ctx, collection.TemplateID)
	if err != nil {
		return 0, classify(err, "template", op)
	}

	if categoryID != nil {
		if _, err := s.store.GetCategory(ctx, collectionID, *categoryID); err != nil {
			return 0, classify(err, "category", op)
		}
	}

	writes, err := buildWrites(template, raw, true)
	if err != nil {
		return 0, newError(ErrValidation, "item", op, err)
	}

	itemID, err := s.store.InsertItem(ctx, collectionID, categoryID, writes)
	if err != nil {
		return 0, classify(err, "item", op)
	}
	return itemID, nil
}

// UpdateItem validates and rewrites the given attribute values of an
// existing item. Attributes not named in raw keep their stored values.
func (s *Service) UpdateItem(ctx context.Context, itemID uint, raw map[uint]any) error {
	const op = "update_item"

	item, err := s.store.GetItem(ctx, itemID)
	if err != nil {
		return classify(err, "item", op)
	}
	collection, err := s.store.GetCollection(ctx, item.CollectionID)
	if err != nil {
		return classify(err, "collection", op)
	}
	template, err := s.store.GetTemplate(ctx, collection.TemplateID)
	if err != nil {
		return classify(err, "template", op)
	}

	writes, err := buildWrites(template, raw, false)
	if err != nil {
		return newError(ErrValidation, "item", op, err)
	}

	if err := s.store.UpdateItemValues(ctx, itemID, writes); err != nil {
		return classify(err, "item", op)
	}
	return nil
}

// MoveItem reassigns an item to another category of its collection, or
// ungroups it when categoryID is nil.
func (s *Service) MoveItem(ctx context.Context, itemID uint, categoryID *uint) error {
	if err := s.store.MoveItem(ctx, itemID, categoryID); err != nil {
		return classify(err, "item", "move_item")
	}
	return nil
}

// DeleteItem destroys the item and its values together.
func (s *Service) DeleteItem(ctx context.Context, itemID uint) error {
	if err := s.store.DeleteItem(ctx, itemID); err != nil {
		return classify(err, "item", "delete_item")
	}
	return nil
}

// GetItemsByPage reconstructs the nested read model for a collection
// page. An unknown page is NotFound; a collection with no items yields
// an empty aggregate.
func (s *Service) GetItemsByPage(ctx context.Context, pageID uint) (*core.ItemsAggregate, error) {
	const op = "get_items_by_page"

	collection, rows, err := s.store.ItemRows(ctx, pageID)
	if err != nil {
		return nil, classify(err, "collection", op)
	}

	agg, err := aggregate.Build(collection.ID, collection.PageID, rows)
	if err != nil {
		s.log.Error().Err(err).Uint("page_id", pageID).Msg("corrupt stored value during aggregation")
		return nil, newError(ErrData, "item", op, err)
	}
	return agg, nil
}

// DeleteCollection cascades: template, attributes, categories, items
// and values all go with the collection.
func (s *Service) DeleteCollection(ctx context.Context, collectionID uint) error {
	if err := s.store.DeleteCollection(ctx, collectionID); err != nil {
		return classify(err, "collection", "delete_collection")
	}
	return nil
}

// AddCategory appends a grouping bucket to a collection.
func (s *Service) AddCategory(ctx context.Context, collectionID uint, name string) (uint, error) {
	const op = "add_category"

	if err := validation.CategoryName(name); err != nil {
		return 0, newError(ErrValidation, "category", op, err)
	}
	categoryID, err := s.store.AddCategory(ctx, collectionID, name)
	if err != nil {
		return 0, classify(err, "category", op)
	}
	return categoryID, nil
}

// Categories lists a collection's buckets in creation order.
func (s *Service) Categories(ctx context.Context, collectionID uint) ([]core.Category, error) {
	rows, err := s.store.Categories(ctx, collectionID)
	if err != nil {
		return nil, classify(err, "category", "list_categories")
	}

	categories := make([]core.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, core.Category{
			ID:           row.ID,
			CollectionID: row.CollectionID,
			Name:         row.Name,
		})
	}
	return categories, nil
}

// DeleteCategory removes a bucket; its items become ungrouped.
func (s *Service) DeleteCategory(ctx context.Context, collectionID, categoryID uint) error {
	if err := s.store.DeleteCategory(ctx, collectionID, categoryID); err != nil {
		return classify(err, "category", "delete_category")
	}
	return nil
}

// SetPageArchived toggles the archive flag on the collection's page.
func (s *Service) SetPageArchived(ctx context.Context, pageID uint, archived bool) error {
	if err := s.store.SetPageArchived(ctx, pageID, archived); err != nil {
		return classify(err, "page", "set_archived")
	}
	return nil
}

// SetPagePinned toggles the pin flag on the collection's page.
func (s *Service) SetPagePinned(ctx context.Context, pageID uint, pinned bool) error {
	if err := s.store.SetPagePinned(ctx, pageID, pinned); err != nil {
		return classify(err, "page", "set_pinned")
	}
	return nil
}

// buildWrites validates raw values against the template and aligns the
// resulting writes to template attribute order. When requireAll is set,
// every template attribute must have a value; either way a key that
// names no template attribute is rejected.
func buildWrites(template core.Template, raw map[uint]any, requireAll bool) ([]database.ValueWrite, error) {
	known := make(map[uint]bool, len(template.Attributes))
	writes := make([]database.ValueWrite, 0, len(template.Attributes))

	for _, attr := range template.Attributes {
		known[attr.ID] = true

		rawValue, ok := raw[attr.ID]
		if !ok {
			if requireAll {
				return nil, fmt.Errorf("missing value for attribute %q", attr.Label)
			}
			continue
		}

		value, err := validation.Value(attr, rawValue)
		if err != nil {
			return nil, err
		}
		writes = append(writes, database.ValueWrite{AttributeID: attr.ID, Value: value})
	}

	for id := range raw {
		if !known[id] {
			return nil, fmt.Errorf("attribute %d is not part of the template", id)
		}
	}

	return writes, nil
}

// classify maps storage errors onto the taxonomy: unresolved IDs are
// NotFound, everything else from the store is a write failure.
func classify(err error, entity, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return newError(ErrNotFound, entity, op, err)
	}
	return newError(ErrWrite, entity, op, err)
}
