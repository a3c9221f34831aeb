package validation_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CollectKeeper/internal/validation"
	core "CollectKeeper/pkg/models"
)

func TestValue_Text(t *testing.T) {
	attr := core.AttributeDescriptor{ID: 1, Label: "Title", Kind: core.KindText}

	t.Run("accepts up to 750 chars", func(t *testing.T) {
		v, err := validation.Value(attr, strings.Repeat("a", 750))
		require.NoError(t, err)
		assert.Equal(t, core.KindText, v.Kind())
		assert.Len(t, v.Text(), 750)
	})

	t.Run("rejects 751 chars", func(t *testing.T) {
		_, err := validation.Value(attr, strings.Repeat("a", 751))
		assert.Error(t, err)
	})

	t.Run("rejects non-string input", func(t *testing.T) {
		_, err := validation.Value(attr, 42)
		assert.Error(t, err)
	})
}

func TestValue_Rating(t *testing.T) {
	attr := core.AttributeDescriptor{ID: 2, Label: "Stars", Kind: core.KindRating, Symbol: "star"}

	t.Run("accepts bounds", func(t *testing.T) {
		for _, n := range []int{0, 5} {
			v, err := validation.Value(attr, n)
			require.NoError(t, err)
			assert.Equal(t, n, v.Rating())
		}
	})

	t.Run("rejects 6", func(t *testing.T) {
		_, err := validation.Value(attr, 6)
		assert.Error(t, err)
	})

	t.Run("rejects negative", func(t *testing.T) {
		_, err := validation.Value(attr, -1)
		assert.Error(t, err)
	})

	t.Run("accepts integral float", func(t *testing.T) {
		v, err := validation.Value(attr, float64(4))
		require.NoError(t, err)
		assert.Equal(t, 4, v.Rating())
	})

	t.Run("rejects fractional float", func(t *testing.T) {
		_, err := validation.Value(attr, 3.5)
		assert.Error(t, err)
	})
}

func TestValue_Date(t *testing.T) {
	attr := core.AttributeDescriptor{ID: 3, Label: "Read on", Kind: core.KindDate}

	t.Run("parses calendar date", func(t *testing.T) {
		v, err := validation.Value(attr, "2024-03-09")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), v.Date())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := validation.Value(attr, "not-a-date")
		assert.Error(t, err)
	})

	t.Run("rejects impossible date", func(t *testing.T) {
		_, err := validation.Value(attr, "2024-13-40")
		assert.Error(t, err)
	})
}

func TestValue_Multiselect(t *testing.T) {
	attr := core.AttributeDescriptor{
		ID:      4,
		Label:   "Genres",
		Kind:    core.KindMultiselect,
		Options: []string{"Fiction", "Romance", "Sci-Fi"},
	}

	t.Run("accepts subset", func(t *testing.T) {
		v, err := validation.Value(attr, []string{"Fiction", "Sci-Fi"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Fiction", "Sci-Fi"}, v.Multi())
	})

	t.Run("accepts empty subset", func(t *testing.T) {
		v, err := validation.Value(attr, []string{})
		require.NoError(t, err)
		assert.Empty(t, v.Multi())
	})

	t.Run("rejects entry outside options", func(t *testing.T) {
		_, err := validation.Value(attr, []string{"Horror"})
		assert.Error(t, err)
	})

	t.Run("rejects duplicate selection", func(t *testing.T) {
		_, err := validation.Value(attr, []string{"Fiction", "Fiction"})
		assert.Error(t, err)
	})
}

func TestTemplate(t *testing.T) {
	valid := core.TemplateDraft{
		Name: "Books",
		Attributes: []core.AttributeDraft{
			{Label: "Title", Kind: core.KindText},
			{Label: "Stars", Kind: core.KindRating, Symbol: "star"},
			{Label: "Genres", Kind: core.KindMultiselect, Options: []string{"Fiction", "Romance"}},
		},
	}
	require.NoError(t, validation.Template(valid))

	t.Run("rejects empty label", func(t *testing.T) {
		draft := core.TemplateDraft{Name: "X", Attributes: []core.AttributeDraft{{Label: "", Kind: core.KindText}}}
		assert.Error(t, validation.Template(draft))
	})

	t.Run("rejects 31-char label", func(t *testing.T) {
		draft := core.TemplateDraft{Name: "X", Attributes: []core.AttributeDraft{
			{Label: strings.Repeat("a", 31), Kind: core.KindText},
		}}
		assert.Error(t, validation.Template(draft))
	})

	t.Run("rejects multiselect with zero options", func(t *testing.T) {
		draft := core.TemplateDraft{Name: "X", Attributes: []core.AttributeDraft{
			{Label: "Tags", Kind: core.KindMultiselect},
		}}
		assert.Error(t, validation.Template(draft))
	})

	t.Run("rejects multiselect with 21 options", func(t *testing.T) {
		options := make([]string, 21)
		for i := range options {
			options[i] = strings.Repeat("o", i+1)
		}
		draft := core.TemplateDraft{Name: "X", Attributes: []core.AttributeDraft{
			{Label: "Tags", Kind: core.KindMultiselect, Options: options},
		}}
		assert.Error(t, validation.Template(draft))
	})

	t.Run("accepts multiselect with 20 options", func(t *testing.T) {
		options := make([]string, 20)
		for i := range options {
			options[i] = strings.Repeat("o", i+1)
		}
		draft := core.TemplateDraft{Name: "X", Attributes: []core.AttributeDraft{
			{Label: "Tags", Kind: core.KindMultiselect, Options: options},
		}}
		assert.NoError(t, validation.Template(draft))
	})

	t.Run("rejects duplicate options", func(t *testing.T) {
		draft := core.TemplateDraft{Name: "X", Attributes: []core.AttributeDraft{
			{Label: "Tags", Kind: core.KindMultiselect, Options: []string{"a", "a"}},
		}}
		assert.Error(t, validation.Template(draft))
	})

	t.Run("rejects options on non-multiselect", func(t *testing.T) {
		draft := core.TemplateDraft{Name: "X", Attributes: []core.AttributeDraft{
			{Label: "Title", Kind: core.KindText, Options: []string{"a"}},
		}}
		assert.Error(t, validation.Template(draft))
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		draft := core.TemplateDraft{Name: "X", Attributes: []core.AttributeDraft{
			{Label: "Blob", Kind: core.AttributeKind("blob")},
		}}
		assert.Error(t, validation.Template(draft))
	})
}

func TestCategoryName(t *testing.T) {
	assert.NoError(t, validation.CategoryName("Read"))
	assert.NoError(t, validation.CategoryName(strings.Repeat("a", 30)))
	assert.Error(t, validation.CategoryName(""))
	assert.Error(t, validation.CategoryName(strings.Repeat("a", 31)))
}
