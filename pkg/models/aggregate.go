package models

// UncategorizedName is the category name reported for items that belong
// to no category bucket.
const UncategorizedName = "Uncategorized"

// AttributeDescriptor describes one template attribute as seen by
// readers: enough to render a column without loading the template row.
type AttributeDescriptor struct {
	ID      uint
	Label   string
	Kind    AttributeKind
	Preview bool
	Symbol  string
	Options []string
}

// ItemRecord is one item with its values aligned positionally to the
// aggregate's attribute list.
type ItemRecord struct {
	ID           uint
	CategoryID   uint // 0 when uncategorized
	CategoryName string
	Values       []Value
}

// ItemsAggregate is the nested read model for one collection page:
// the deduplicated attribute list in template order plus every item.
type ItemsAggregate struct {
	CollectionID uint
	PageID       uint
	Attributes   []AttributeDescriptor
	Items        []ItemRecord
}

// Template is the read model for an item template.
type Template struct {
	ID         uint
	Name       string
	Attributes []AttributeDescriptor
}
