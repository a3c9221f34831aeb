package models

import "time"

// Value is a tagged union holding exactly one variant, keyed by the
// owning attribute's kind. The zero Value is invalid; use the
// constructors so a Value can never carry two variants or a variant
// disagreeing with its kind.
type Value struct {
	kind   AttributeKind
	text   string
	date   time.Time
	rating int
	multi  []string
}

func TextValue(s string) Value {
	return Value{kind: KindText, text: s}
}

func LinkValue(s string) Value {
	return Value{kind: KindLink, text: s}
}

func ImageValue(s string) Value {
	return Value{kind: KindImage, text: s}
}

func DateValue(t time.Time) Value {
	return Value{kind: KindDate, date: t}
}

func RatingValue(n int) Value {
	return Value{kind: KindRating, rating: n}
}

func MultiselectValue(selected []string) Value {
	copied := make([]string, len(selected))
	copy(copied, selected)
	return Value{kind: KindMultiselect, multi: copied}
}

func (v Value) Kind() AttributeKind { return v.kind }

func (v Value) IsZero() bool { return v.kind == "" }

// Text returns the string payload for text, link and image values.
func (v Value) Text() string { return v.text }

func (v Value) Date() time.Time { return v.date }

func (v Value) Rating() int { return v.rating }

func (v Value) Multi() []string {
	copied := make([]string, len(v.multi))
	copy(copied, v.multi)
	return copied
}
