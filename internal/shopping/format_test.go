package shopping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/sous/internal/category"
	"github.com/hammamikhairi/sous/internal/domain"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("Expanded")
	require.NoError(t, err)
	assert.Equal(t, FormatExpanded, f)

	f, err = ParseFormat(" compact ")
	require.NoError(t, err)
	assert.Equal(t, FormatCompact, f)

	_, err = ParseFormat("fancy")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestFormatItems(t *testing.T) {
	items := []domain.ShoppingListItem{
		{Name: "salt", Quantities: []string{"1 tsp", "0.5 tsp"}},
		{Name: "broccoli", Quantities: []string{"2"}},
		{Name: "olive oil"},
	}

	compact, err := FormatItems(items, FormatCompact)
	require.NoError(t, err)
	assert.Equal(t, []string{"broccoli", "olive oil", "salt (2)"}, compact)

	expanded, err := FormatItems(items, FormatExpanded)
	require.NoError(t, err)
	assert.Equal(t, []string{"broccoli (2)", "olive oil", "salt (1 tsp, 0.5 tsp)"}, expanded)

	_, err = FormatItems(items, Format("fancy"))
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestFormatGroups(t *testing.T) {
	l := New()
	l.AddIngredients([]domain.Ingredient{ing("garlic", "3 cloves"), ing("olive oil", ""), ing("butter", "")}, "A")

	lines, err := FormatGroups(l.GroupedItems(), FormatExpanded)
	require.NoError(t, err)
	assert.Equal(t, []string{"butter", "garlic (3 cloves)", "olive oil"}, lines)

	l.ApplyConfig(category.Parse("[produce]\nitems = [\"garlic\"]\n"))
	lines, err = FormatGroups(l.GroupedItems(), FormatExpanded)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"[produce]",
		"garlic (3 cloves)",
		"",
		"[other]",
		"butter",
		"olive oil",
	}, lines)
}

func TestFormatGroupsCompact(t *testing.T) {
	l := New()
	l.AddIngredients([]domain.Ingredient{ing("milk", "1 cup")}, "A")
	l.AddIngredients([]domain.Ingredient{ing("milk", "1 cup"), ing("garlic", "")}, "B")
	l.ApplyConfig(category.Parse("[dairy]\nitems = [\"milk\"]\n"))

	lines, err := FormatGroups(l.GroupedItems(), FormatCompact)
	require.NoError(t, err)
	assert.Equal(t, []string{"[dairy]", "milk (2)", "", "[other]", "garlic"}, lines)
}

func TestPluralize(t *testing.T) {
	tests := []struct {
		noun  string
		count int
		want  string
	}{
		{"recipe", 1, "1 recipe"},
		{"recipe", 0, "0 recipes"},
		{"recipe", 3, "3 recipes"},
		{"dish", 2, "2 dishes"},
		{"box", 2, "2 boxes"},
		{"berry", 2, "2 berries"},
		{"day", 2, "2 days"},
		{"shopping list item", 4, "4 shopping list items"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Pluralize(tt.noun, tt.count))
		})
	}
}
