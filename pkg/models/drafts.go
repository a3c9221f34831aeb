package models

// PageDraft carries the page metadata for a new collection. The page
// subsystem owns the full page lifecycle; the core only needs enough to
// create the base row.
type PageDraft struct {
	Title  string
	Icon   string
	Color  string
	Pinned bool
}

// AttributeDraft is one attribute definition inside a template draft.
// Options must be set iff Kind is multiselect; Symbol is only meaningful
// for rating (icon glyph) and link (display text) attributes.
type AttributeDraft struct {
	Label   string
	Kind    AttributeKind
	Preview bool
	Symbol  string
	Options []string
}

// TemplateDraft is the ordered attribute schema for a new collection.
// Attribute order is significant: it is the positional order of every
// item's values.
type TemplateDraft struct {
	Name       string
	Attributes []AttributeDraft
}
