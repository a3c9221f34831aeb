// Package aggregate pivots the flat (item × attribute) row set produced
// by the storage join into nested, attribute-ordered item records.
package aggregate

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	core "CollectKeeper/pkg/models"
)

// ErrMalformedValue reports a stored value that cannot be decoded for
// its declared kind. It means a prior write bypassed validation; rows
// are never silently coerced.
var ErrMalformedValue = errors.New("aggregate: malformed stored value")

// ItemRow is one row of the storage join: one (item, attribute) pair
// carrying the attribute and category metadata alongside the per-kind
// value columns. Attribute fields are nil for items that have no
// values at all (zero-attribute template).
//
// The producing query must order rows by item ID, then attribute ID;
// positional value alignment depends on it.
type ItemRow struct {
	ItemID       uint
	CategoryID   *uint
	CategoryName *string

	AttributeID *uint
	Label       *string
	Kind        *string
	Preview     *bool
	Symbol      *string
	OptionsJSON *string

	TextValue   *string
	DateValue   *string
	RatingValue *int16
	MultiValue  *string
}

// Build reconstructs the nested aggregate from an ordered flat row set.
// Attributes are collected in first-seen order, deduplicated by ID; each
// item's values accumulate in row arrival order within that item. Given
// identical input ordering the output is identical.
func Build(collectionID, pageID uint, rows []ItemRow) (*core.ItemsAggregate, error) {
	agg := &core.ItemsAggregate{
		CollectionID: collectionID,
		PageID:       pageID,
		Attributes:   []core.AttributeDescriptor{},
		Items:        []core.ItemRecord{},
	}

	seenAttrs := make(map[uint]bool)
	itemIndex := make(map[uint]int)

	for _, row := range rows {
		idx, ok := itemIndex[row.ItemID]
		if !ok {
			record := core.ItemRecord{
				ID:           row.ItemID,
				CategoryName: core.UncategorizedName,
				Values:       []core.Value{},
			}
			if row.CategoryID != nil {
				record.CategoryID = *row.CategoryID
				if row.CategoryName != nil {
					record.CategoryName = *row.CategoryName
				}
			}
			agg.Items = append(agg.Items, record)
			idx = len(agg.Items) - 1
			itemIndex[row.ItemID] = idx
		}

		if row.AttributeID == nil {
			// Item without values; keep it with an empty value list.
			continue
		}

		kind := core.AttributeKind(deref(row.Kind))
		if !kind.Valid() {
			return nil, fmt.Errorf("%w: attribute %d has unknown kind %q", ErrMalformedValue, *row.AttributeID, deref(row.Kind))
		}

		if !seenAttrs[*row.AttributeID] {
			descriptor, err := describeAttribute(row, kind)
			if err != nil {
				return nil, err
			}
			agg.Attributes = append(agg.Attributes, descriptor)
			seenAttrs[*row.AttributeID] = true
		}

		value, err := decodeValue(row, kind)
		if err != nil {
			return nil, err
		}
		agg.Items[idx].Values = append(agg.Items[idx].Values, value)
	}

	return agg, nil
}

func describeAttribute(row ItemRow, kind core.AttributeKind) (core.AttributeDescriptor, error) {
	descriptor := core.AttributeDescriptor{
		ID:      *row.AttributeID,
		Label:   deref(row.Label),
		Kind:    kind,
		Preview: row.Preview != nil && *row.Preview,
		Symbol:  deref(row.Symbol),
	}
	if row.OptionsJSON != nil && *row.OptionsJSON != "" {
		var options []string
		if err := json.Unmarshal([]byte(*row.OptionsJSON), &options); err != nil {
			return core.AttributeDescriptor{}, fmt.Errorf("%w: attribute %d options: %v", ErrMalformedValue, *row.AttributeID, err)
		}
		descriptor.Options = options
	}
	return descriptor, nil
}

// decodeValue translates one row's column layout back into the tagged
// union, exhaustively per kind.
func decodeValue(row ItemRow, kind core.AttributeKind) (core.Value, error) {
	switch kind {
	case core.KindText:
		if row.TextValue == nil {
			return core.Value{}, missingColumn(row, kind)
		}
		return core.TextValue(*row.TextValue), nil
	case core.KindLink:
		if row.TextValue == nil {
			return core.Value{}, missingColumn(row, kind)
		}
		return core.LinkValue(*row.TextValue), nil
	case core.KindImage:
		if row.TextValue == nil {
			return core.Value{}, missingColumn(row, kind)
		}
		return core.ImageValue(*row.TextValue), nil
	case core.KindDate:
		if row.DateValue == nil {
			return core.Value{}, missingColumn(row, kind)
		}
		t, err := time.Parse(core.DateLayout, *row.DateValue)
		if err != nil {
			return core.Value{}, fmt.Errorf("%w: item %d attribute %d date %q", ErrMalformedValue, row.ItemID, *row.AttributeID, *row.DateValue)
		}
		return core.DateValue(t), nil
	case core.KindRating:
		if row.RatingValue == nil {
			return core.Value{}, missingColumn(row, kind)
		}
		return core.RatingValue(int(*row.RatingValue)), nil
	case core.KindMultiselect:
		if row.MultiValue == nil {
			return core.Value{}, missingColumn(row, kind)
		}
		var selected []string
		if err := json.Unmarshal([]byte(*row.MultiValue), &selected); err != nil {
			return core.Value{}, fmt.Errorf("%w: item %d attribute %d multiselect: %v", ErrMalformedValue, row.ItemID, *row.AttributeID, err)
		}
		return core.MultiselectValue(selected), nil
	}
	return core.Value{}, fmt.Errorf("%w: unknown kind %q", ErrMalformedValue, kind)
}

func missingColumn(row ItemRow, kind core.AttributeKind) error {
	return fmt.Errorf("%w: item %d attribute %d has no %s", ErrMalformedValue, row.ItemID, *row.AttributeID, kind.Column())
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
