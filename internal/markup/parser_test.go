package markup

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/sous/internal/domain"
)

const roastedBroccoli = `# Roasted broccoli

@author Lérè Williams
@syntax 1

{2} large [broccoli crowns], washed and trimmed
{3} large [garlic cloves], minced
{} extra virgin [olive oil]
{}[red pepper flakes]
{1/2}[lemon], for juicing

Pre-heat oven to 415 F.

Place trimmed [broccoli] in a large bowl and season with [garlic], [red pepper flakes], {}[kosher salt] and freshly ground {}[black pepper]. Toss with [olive oil] and mix until ingredients are well combined.

Remove baking sheet from oven. Squeeze [lemon] juice evenly over the broccoli. Serve warm.
`

func parseOne(t *testing.T, body string) *domain.Recipe {
	t.Helper()
	recipe, ok := Parse("# Test Recipe\n\n"+body, "test.sous")
	require.True(t, ok, "expected a recipe")
	return recipe
}

func TestParseBlockIngredient(t *testing.T) {
	tests := []struct {
		name string
		line string
		want domain.Ingredient
	}{
		{
			name: "full",
			line: "{2} large [broccoli crowns], washed and trimmed",
			want: domain.Ingredient{ID: "broccoli crowns", Quantity: "2", Descriptors: "large", Preparation: "washed and trimmed"},
		},
		{
			name: "empty quantity",
			line: "{} extra virgin [olive oil]",
			want: domain.Ingredient{ID: "olive oil", Descriptors: "extra virgin"},
		},
		{
			name: "minimal",
			line: "{}[red pepper flakes]",
			want: domain.Ingredient{ID: "red pepper flakes"},
		},
		{
			name: "fraction",
			line: "{1/2}[lemon], for juicing",
			want: domain.Ingredient{ID: "lemon", Quantity: "1/2", Preparation: "for juicing"},
		},
		{
			name: "space only descriptors",
			line: "{3 cloves} [garlic], minced",
			want: domain.Ingredient{ID: "garlic", Quantity: "3 cloves", Preparation: "minced"},
		},
		{
			name: "indented",
			line: "   \t{6 ounces}[ground beef or pork] roughly chopped to loosen",
			want: domain.Ingredient{ID: "ground beef or pork", Quantity: "6 ounces", Preparation: "roughly chopped to loosen"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipe := parseOne(t, tt.line)
			require.Len(t, recipe.Ingredients, 1)
			assert.Equal(t, tt.want, recipe.Ingredients[0])
		})
	}
}

func TestParseInlineIngredients(t *testing.T) {
	recipe := parseOne(t, "Season with {}[kosher salt] and freshly ground {}[black pepper].\nAdd {2 tablespoons}[soy sauce] to the pan.")

	assert.Equal(t, []domain.Ingredient{
		{ID: "kosher salt"},
		{ID: "black pepper"},
		{ID: "soy sauce", Quantity: "2 tablespoons"},
	}, recipe.Ingredients)
}

func TestParseBlockLineIsNotScannedInline(t *testing.T) {
	recipe := parseOne(t, "{1}[egg] beaten with {}[milk]")

	require.Len(t, recipe.Ingredients, 1)
	assert.Equal(t, "egg", recipe.Ingredients[0].ID)
}

func TestParseIgnoresNonIngredientLines(t *testing.T) {
	recipe := parseOne(t, strings.Join([]string{
		"@source https://example.com",
		"@total-time 30",
		"% {1}[comment ingredient] should not count",
		"Mention [broccoli] without markup.",
		"{1}[salt, pepper]",
		"## Steps",
		"{2}[broccoli]",
	}, "\n"))

	require.Len(t, recipe.Ingredients, 1)
	assert.Equal(t, "broccoli", recipe.Ingredients[0].ID)
	assert.Equal(t, "Test Recipe", recipe.Name)
}

func TestParseDeduplicatesFirstSeenWins(t *testing.T) {
	recipe := parseOne(t, strings.Join([]string{
		"{3 cloves} [garlic], minced",
		"{}[onion]",
		"Add [garlic] to the pan with {1 tablespoon}[garlic] powder and {1}[onion].",
		"{2} large [garlic], crushed",
	}, "\n"))

	require.Len(t, recipe.Ingredients, 2)
	assert.Equal(t, domain.Ingredient{ID: "garlic", Quantity: "3 cloves", Preparation: "minced"}, recipe.Ingredients[0])
	assert.Equal(t, domain.Ingredient{ID: "onion"}, recipe.Ingredients[1])
}

func TestParseTitle(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantOK   bool
		wantName string
	}{
		{"h1", "# Roasted Broccoli\n@author Test", true, "Roasted Broccoli"},
		{"deeper header", "### Soup", true, "Soup"},
		{"first title wins", "# First\n## Second", true, "First"},
		{"title after content", "{2}[eggs]\n# Late Title", true, "Late Title"},
		{"no space after hash", "#Hashtag\n{2}[eggs]", false, ""},
		{"attributes only", "@author Test Author\n\n{2}[broccoli]", false, ""},
		{"empty", "", false, ""},
		{"blank lines", "\n   \n\t\n", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipe, ok := Parse(tt.text, "")
			require.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Nil(t, recipe)
				return
			}
			assert.Equal(t, tt.wantName, recipe.Name)
		})
	}
}

func TestParseRoastedBroccoli(t *testing.T) {
	recipe, ok := Parse(roastedBroccoli, "cookbook/roasted-broccoli.sous")
	require.True(t, ok)

	assert.Equal(t, "Roasted broccoli", recipe.Name)
	assert.Equal(t, "cookbook/roasted-broccoli.sous", recipe.SourcePath)

	ids := make([]string, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		ids = append(ids, ing.ID)
	}
	assert.Equal(t, []string{
		"broccoli crowns",
		"garlic cloves",
		"olive oil",
		"red pepper flakes",
		"lemon",
		"kosher salt",
		"black pepper",
	}, ids)
}

func TestParseCRLF(t *testing.T) {
	recipe, ok := Parse("# Windows\r\n{1 cup}[rice]\r\n", "")
	require.True(t, ok)
	assert.Equal(t, "Windows", recipe.Name)
	require.Len(t, recipe.Ingredients, 1)
	assert.Equal(t, domain.Ingredient{ID: "rice", Quantity: "1 cup"}, recipe.Ingredients[0])
}

func TestParseBareCR(t *testing.T) {
	recipe, ok := Parse("# Soup\r{1}[salt]\r{2}[water]\r", "")
	require.True(t, ok)
	assert.Equal(t, "Soup", recipe.Name)
	assert.Equal(t, []domain.Ingredient{
		{ID: "salt", Quantity: "1"},
		{ID: "water", Quantity: "2"},
	}, recipe.Ingredients)

	assert.Equal(t, "Header\nIngredient\nIngredient\n", Summarize("# Soup\r{1}[salt]\r{2}[water]\r"))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestParseReader(t *testing.T) {
	recipe, ok, err := ParseReader(strings.NewReader(roastedBroccoli), "r.sous")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Roasted broccoli", recipe.Name)

	_, ok, err = ParseReader(failingReader{}, "bad.sous")
	require.Error(t, err)
	assert.False(t, ok)
}

func TestIngredientString(t *testing.T) {
	recipe := parseOne(t, "{2} large [broccoli crowns], washed and trimmed\n{}[salt]")
	assert.Equal(t, "2 large broccoli crowns washed and trimmed", recipe.Ingredients[0].String())
	assert.Equal(t, "salt", recipe.Ingredients[1].String())
}
