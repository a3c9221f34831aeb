package models

// AttributeKind is the closed set of value kinds an attribute can hold.
// Adding a kind means touching Valid, Column, the validator and the
// aggregator decode step together.
type AttributeKind string

const (
	KindText        AttributeKind = "text"
	KindDate        AttributeKind = "date"
	KindRating      AttributeKind = "rating"
	KindMultiselect AttributeKind = "multiselect"
	KindLink        AttributeKind = "link"
	KindImage       AttributeKind = "image"
)

// Limits shared between the validator and the storage column widths.
const (
	MaxTextLen         = 750
	MaxLabelLen        = 30
	MaxCategoryNameLen = 30
	MinOptions         = 1
	MaxOptions         = 20
	MaxRating          = 5
	DateLayout         = "2006-01-02"
)

func (k AttributeKind) Valid() bool {
	switch k {
	case KindText, KindDate, KindRating, KindMultiselect, KindLink, KindImage:
		return true
	}
	return false
}

// Column returns the item_values column that stores values of this kind.
func (k AttributeKind) Column() string {
	switch k {
	case KindText, KindLink, KindImage:
		return "text_value"
	case KindDate:
		return "date_value"
	case KindRating:
		return "rating_value"
	case KindMultiselect:
		return "multi_value"
	}
	return ""
}

// Kinds returns every kind, in a fixed order.
func Kinds() []AttributeKind {
	return []AttributeKind{KindText, KindDate, KindRating, KindMultiselect, KindLink, KindImage}
}
