package aggregate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CollectKeeper/internal/aggregate"
	core "CollectKeeper/pkg/models"
)

func ptr[T any](v T) *T { return &v }

// bookRows is the Dune scenario: template [Text "Title", Rating
// "Stars", Multiselect "Genres"], one item in the "Read" category.
func bookRows() []aggregate.ItemRow {
	return []aggregate.ItemRow{
		{
			ItemID: 1, CategoryID: ptr(uint(7)), CategoryName: ptr("Read"),
			AttributeID: ptr(uint(10)), Label: ptr("Title"), Kind: ptr("text"),
			Preview: ptr(true), TextValue: ptr("Dune"),
		},
		{
			ItemID: 1, CategoryID: ptr(uint(7)), CategoryName: ptr("Read"),
			AttributeID: ptr(uint(11)), Label: ptr("Stars"), Kind: ptr("rating"),
			Symbol: ptr("star"), RatingValue: ptr(int16(5)),
		},
		{
			ItemID: 1, CategoryID: ptr(uint(7)), CategoryName: ptr("Read"),
			AttributeID: ptr(uint(12)), Label: ptr("Genres"), Kind: ptr("multiselect"),
			OptionsJSON: ptr(`["Fiction","Romance"]`), MultiValue: ptr(`["Fiction"]`),
		},
	}
}

func TestBuild_PivotsRowsIntoOrderedAggregate(t *testing.T) {
	agg, err := aggregate.Build(3, 9, bookRows())
	require.NoError(t, err)

	assert.Equal(t, uint(3), agg.CollectionID)
	assert.Equal(t, uint(9), agg.PageID)

	require.Len(t, agg.Attributes, 3)
	assert.Equal(t, "Title", agg.Attributes[0].Label)
	assert.True(t, agg.Attributes[0].Preview)
	assert.Equal(t, "Stars", agg.Attributes[1].Label)
	assert.Equal(t, "star", agg.Attributes[1].Symbol)
	assert.Equal(t, "Genres", agg.Attributes[2].Label)
	assert.Equal(t, []string{"Fiction", "Romance"}, agg.Attributes[2].Options)

	require.Len(t, agg.Items, 1)
	item := agg.Items[0]
	assert.Equal(t, uint(7), item.CategoryID)
	assert.Equal(t, "Read", item.CategoryName)
	require.Len(t, item.Values, 3)
	assert.Equal(t, "Dune", item.Values[0].Text())
	assert.Equal(t, 5, item.Values[1].Rating())
	assert.Equal(t, []string{"Fiction"}, item.Values[2].Multi())
}

func TestBuild_DeduplicatesAttributesAcrossItems(t *testing.T) {
	rows := bookRows()
	second := bookRows()
	for i := range second {
		second[i].ItemID = 2
		second[i].CategoryID = nil
		second[i].CategoryName = nil
	}
	rows = append(rows, second...)

	agg, err := aggregate.Build(3, 9, rows)
	require.NoError(t, err)

	assert.Len(t, agg.Attributes, 3)
	require.Len(t, agg.Items, 2)
	assert.Equal(t, core.UncategorizedName, agg.Items[1].CategoryName)
	assert.Equal(t, uint(0), agg.Items[1].CategoryID)
}

func TestBuild_IsStableOverIdenticalInput(t *testing.T) {
	first, err := aggregate.Build(3, 9, bookRows())
	require.NoError(t, err)
	second, err := aggregate.Build(3, 9, bookRows())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuild_KeepsItemWithoutValues(t *testing.T) {
	rows := []aggregate.ItemRow{{ItemID: 5}}

	agg, err := aggregate.Build(1, 2, rows)
	require.NoError(t, err)

	require.Len(t, agg.Items, 1)
	assert.Equal(t, uint(5), agg.Items[0].ID)
	assert.Empty(t, agg.Items[0].Values)
	assert.Equal(t, core.UncategorizedName, agg.Items[0].CategoryName)
	assert.Empty(t, agg.Attributes)
}

func TestBuild_EmptyInput(t *testing.T) {
	agg, err := aggregate.Build(1, 2, nil)
	require.NoError(t, err)
	assert.Empty(t, agg.Items)
	assert.Empty(t, agg.Attributes)
}

func TestBuild_DecodesDates(t *testing.T) {
	rows := []aggregate.ItemRow{{
		ItemID:      1,
		AttributeID: ptr(uint(20)), Label: ptr("Read on"), Kind: ptr("date"),
		DateValue: ptr("2023-11-05"),
	}}

	agg, err := aggregate.Build(1, 2, rows)
	require.NoError(t, err)
	require.Len(t, agg.Items[0].Values, 1)
	assert.Equal(t, time.Date(2023, 11, 5, 0, 0, 0, 0, time.UTC), agg.Items[0].Values[0].Date())
}

func TestBuild_MalformedMultiselectIsDataError(t *testing.T) {
	rows := bookRows()
	rows[2].MultiValue = ptr(`{not json`)

	_, err := aggregate.Build(3, 9, rows)
	require.Error(t, err)
	assert.ErrorIs(t, err, aggregate.ErrMalformedValue)
}

func TestBuild_MalformedDateIsDataError(t *testing.T) {
	rows := []aggregate.ItemRow{{
		ItemID:      1,
		AttributeID: ptr(uint(20)), Label: ptr("Read on"), Kind: ptr("date"),
		DateValue: ptr("yesterday"),
	}}

	_, err := aggregate.Build(1, 2, rows)
	assert.ErrorIs(t, err, aggregate.ErrMalformedValue)
}

func TestBuild_MissingColumnForKindIsDataError(t *testing.T) {
	rows := []aggregate.ItemRow{{
		ItemID:      1,
		AttributeID: ptr(uint(10)), Label: ptr("Title"), Kind: ptr("text"),
		// text_value column is missing for a text attribute
	}}

	_, err := aggregate.Build(1, 2, rows)
	assert.ErrorIs(t, err, aggregate.ErrMalformedValue)
}

func TestBuild_UnknownKindIsDataError(t *testing.T) {
	rows := []aggregate.ItemRow{{
		ItemID:      1,
		AttributeID: ptr(uint(10)), Label: ptr("Blob"), Kind: ptr("blob"),
		TextValue: ptr("x"),
	}}

	_, err := aggregate.Build(1, 2, rows)
	assert.ErrorIs(t, err, aggregate.ErrMalformedValue)
}
