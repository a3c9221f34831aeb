// Package validation enforces per-kind value constraints and template
// draft constraints. It is pure: nothing here touches storage.
package validation

import (
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	core "CollectKeeper/pkg/models"
)

// Value checks a raw input against its attribute and converts it into
// the tagged union. Out-of-range ratings are rejected, not clamped.
func Value(attr core.AttributeDescriptor, raw any) (core.Value, error) {
	switch attr.Kind {
	case core.KindText, core.KindLink, core.KindImage:
		s, err := stringInput(attr, raw)
		if err != nil {
			return core.Value{}, err
		}
		switch attr.Kind {
		case core.KindLink:
			return core.LinkValue(s), nil
		case core.KindImage:
			return core.ImageValue(s), nil
		default:
			return core.TextValue(s), nil
		}

	case core.KindDate:
		s, ok := raw.(string)
		if !ok {
			return core.Value{}, fmt.Errorf("attribute %q expects a date string, got %T", attr.Label, raw)
		}
		t, err := time.Parse(core.DateLayout, s)
		if err != nil {
			return core.Value{}, fmt.Errorf("attribute %q: %q is not a valid date", attr.Label, s)
		}
		return core.DateValue(t), nil

	case core.KindRating:
		n, err := integralInput(raw)
		if err != nil {
			return core.Value{}, fmt.Errorf("attribute %q: %v", attr.Label, err)
		}
		if n < 0 || n > core.MaxRating {
			return core.Value{}, fmt.Errorf("attribute %q: rating %d outside [0,%d]", attr.Label, n, core.MaxRating)
		}
		return core.RatingValue(n), nil

	case core.KindMultiselect:
		selected, err := stringSliceInput(raw)
		if err != nil {
			return core.Value{}, fmt.Errorf("attribute %q: %v", attr.Label, err)
		}
		allowed := make(map[string]bool, len(attr.Options))
		for _, option := range attr.Options {
			allowed[option] = true
		}
		seen := make(map[string]bool, len(selected))
		for _, entry := range selected {
			if !allowed[entry] {
				return core.Value{}, fmt.Errorf("attribute %q: %q is not one of the options", attr.Label, entry)
			}
			if seen[entry] {
				return core.Value{}, fmt.Errorf("attribute %q: %q selected twice", attr.Label, entry)
			}
			seen[entry] = true
		}
		return core.MultiselectValue(selected), nil
	}

	return core.Value{}, fmt.Errorf("attribute %q has unknown kind %q", attr.Label, attr.Kind)
}

// Template checks a template draft: label lengths, known kinds, and the
// options invariant (1-20 unique options iff multiselect).
func Template(draft core.TemplateDraft) error {
	if draft.Name == "" {
		return fmt.Errorf("template name must not be empty")
	}

	for _, attr := range draft.Attributes {
		labelLen := utf8.RuneCountInString(attr.Label)
		if labelLen < 1 || labelLen > core.MaxLabelLen {
			return fmt.Errorf("attribute label %q must be 1-%d characters", attr.Label, core.MaxLabelLen)
		}
		if !attr.Kind.Valid() {
			return fmt.Errorf("attribute %q has unknown kind %q", attr.Label, attr.Kind)
		}

		if attr.Kind == core.KindMultiselect {
			if len(attr.Options) < core.MinOptions || len(attr.Options) > core.MaxOptions {
				return fmt.Errorf("attribute %q needs %d-%d options, got %d", attr.Label, core.MinOptions, core.MaxOptions, len(attr.Options))
			}
			seen := make(map[string]bool, len(attr.Options))
			for _, option := range attr.Options {
				if option == "" {
					return fmt.Errorf("attribute %q has an empty option", attr.Label)
				}
				if seen[option] {
					return fmt.Errorf("attribute %q has duplicate option %q", attr.Label, option)
				}
				seen[option] = true
			}
		} else if len(attr.Options) > 0 {
			return fmt.Errorf("attribute %q is not multiselect and must not define options", attr.Label)
		}
	}

	return nil
}

// CategoryName checks a category bucket name.
func CategoryName(name string) error {
	length := utf8.RuneCountInString(name)
	if length < 1 || length > core.MaxCategoryNameLen {
		return fmt.Errorf("category name %q must be 1-%d characters", name, core.MaxCategoryNameLen)
	}
	return nil
}

// PageDraft checks the page metadata the core is asked to create.
func PageDraft(draft core.PageDraft) error {
	if draft.Title == "" {
		return fmt.Errorf("page title must not be empty")
	}
	return nil
}

func stringInput(attr core.AttributeDescriptor, raw any) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("attribute %q expects a string, got %T", attr.Label, raw)
	}
	if utf8.RuneCountInString(s) > core.MaxTextLen {
		return "", fmt.Errorf("attribute %q: value exceeds %d characters", attr.Label, core.MaxTextLen)
	}
	return s, nil
}

func integralInput(raw any) (int, error) {
	switch n := raw.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case uint:
		return int(n), nil
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("rating must be integral, got %v", n)
		}
		return int(n), nil
	case float32:
		f := float64(n)
		if f != math.Trunc(f) {
			return 0, fmt.Errorf("rating must be integral, got %v", n)
		}
		return int(f), nil
	}
	return 0, fmt.Errorf("rating must be an integer, got %T", raw)
}

func stringSliceInput(raw any) ([]string, error) {
	switch v := raw.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, entry := range v {
			s, ok := entry.(string)
			if !ok {
				return nil, fmt.Errorf("selection entries must be strings, got %T", entry)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("expects a list of strings, got %T", raw)
}
