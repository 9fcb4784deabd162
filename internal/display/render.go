package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/hammamikhairi/sous/internal/domain"
)

// RenderList renders grouped shopping list items. Checked items are
// struck through and dimmed.
func RenderList(groups []domain.ItemGroup) string {
	var b strings.Builder
	for i, g := range groups {
		if i > 0 {
			b.WriteByte('\n')
		}
		if g.Tagged {
			b.WriteString(headingStyle.Render("  " + g.Category))
			b.WriteByte('\n')
		}
		for _, item := range g.Items {
			b.WriteString(renderItem(item))
			b.WriteByte('\n')
		}
	}
	if b.Len() == 0 {
		return secondaryStyle.Render("  The shopping list is empty.") + "\n"
	}
	return b.String()
}

func renderItem(item domain.ShoppingListItem) string {
	if item.Checked {
		return secondaryStyle.Render("  [x] ") + checkedStyle.Render(item.DisplayText())
	}
	line := secondaryStyle.Render("  [ ] ") + primaryStyle.Render(item.Name)
	if q := item.FormattedQuantities(); q != "" {
		line += " " + secondaryStyle.Render(q)
	}
	return line
}

// RenderRecipeList renders numbered recipe summaries.
func RenderRecipeList(recipes []domain.RecipeSummary) string {
	if len(recipes) == 0 {
		return secondaryStyle.Render("  No recipes.") + "\n"
	}
	var b strings.Builder
	for i, r := range recipes {
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			labelStyle.Render(fmt.Sprintf("%2d.", i+1)),
			primaryStyle.Render(r.Name),
			secondaryStyle.Render(fmt.Sprintf("(%s, %d ingredients)", r.ID, r.IngredientCount)),
		))
	}
	return b.String()
}

// RecipeMarkdown renders a recipe's ingredients as a numbered Markdown list.
func RecipeMarkdown(r *domain.Recipe) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", r.Name)
	if len(r.Ingredients) == 0 {
		b.WriteString("_No ingredients._\n")
		return b.String()
	}
	for i, ing := range r.Ingredients {
		fmt.Fprintf(&b, "%d. **%s**", i+1, ing.ID)
		var detail []string
		for _, part := range []string{ing.Quantity, ing.Descriptors, ing.Preparation} {
			if part != "" {
				detail = append(detail, part)
			}
		}
		if len(detail) > 0 {
			fmt.Fprintf(&b, " (%s)", strings.Join(detail, ", "))
		}
		b.WriteByte('\n')
	}
	if r.SourcePath != "" {
		fmt.Fprintf(&b, "\n`%s`\n", r.SourcePath)
	}
	return b.String()
}

// RenderRecipe renders a recipe through glamour, wrapped to width. When
// glamour fails the Markdown is returned as plain text.
func RenderRecipe(r *domain.Recipe, width int) string {
	md := RecipeMarkdown(r)

	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}
