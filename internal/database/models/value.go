package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	core "CollectKeeper/pkg/models"
)

// StringList stores an ordered list of strings as a JSON array literal
// in a text column.
type StringList []string

// Value implements the driver.Valuer interface for database storage.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	encoded, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(encoded), nil
}

// Scan implements the sql.Scanner interface for database retrieval.
func (l *StringList) Scan(value any) error {
	if value == nil {
		*l = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("StringList: cannot scan %T", value)
		}
		bytes = []byte(s)
	}
	return json.Unmarshal(bytes, (*[]string)(l))
}

// ItemValue is one stored value, unique per (item, attribute) pair.
// Exactly one of the per-kind columns is populated; Kind names which.
// The multiselect column keeps the raw JSON array literal so readers
// can report corrupt rows instead of coercing them.
type ItemValue struct {
	gorm.Model
	ItemID      uint               `gorm:"not null;uniqueIndex:idx_item_attribute"`
	AttributeID uint               `gorm:"not null;uniqueIndex:idx_item_attribute"`
	Kind        core.AttributeKind `gorm:"size:20;not null"`
	TextValue   *string            `gorm:"size:750"`
	DateValue   *string            `gorm:"size:10"`
	RatingValue *int16
	MultiValue  *string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Attribute Attribute `gorm:"foreignKey:AttributeID;constraint:OnDelete:CASCADE"`
}

// NewItemValue maps a domain value onto its column layout.
func NewItemValue(itemID, attributeID uint, v core.Value) (ItemValue, error) {
	row := ItemValue{ItemID: itemID, AttributeID: attributeID, Kind: v.Kind()}
	switch v.Kind() {
	case core.KindText, core.KindLink, core.KindImage:
		s := v.Text()
		row.TextValue = &s
	case core.KindDate:
		s := v.Date().Format(core.DateLayout)
		row.DateValue = &s
	case core.KindRating:
		n := int16(v.Rating())
		row.RatingValue = &n
	case core.KindMultiselect:
		encoded, err := json.Marshal(v.Multi())
		if err != nil {
			return ItemValue{}, err
		}
		s := string(encoded)
		row.MultiValue = &s
	default:
		return ItemValue{}, fmt.Errorf("unknown attribute kind %q", v.Kind())
	}
	return row, nil
}

// Columns returns the full per-kind column set for an update, with the
// unused columns explicitly nulled so a kind can never leave a stale
// sibling column behind.
func (v ItemValue) Columns() map[string]any {
	return map[string]any{
		"kind":         v.Kind,
		"text_value":   v.TextValue,
		"date_value":   v.DateValue,
		"rating_value": v.RatingValue,
		"multi_value":  v.MultiValue,
	}
}
