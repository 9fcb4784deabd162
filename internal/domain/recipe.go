// Package domain defines the core types and interfaces for the cookbook
// and shopping list. All other packages depend on domain; domain depends
// on nothing.
package domain

import "strings"

// Ingredient is one ingredient reference parsed from a recipe.
// Optional fields use the empty string for "absent". Identity is ID only.
type Ingredient struct {
	ID          string
	Quantity    string // "2", "1/2", "2 tablespoons", ""
	Descriptors string // "large", "extra virgin", ""
	Preparation string // "washed and trimmed", ""
}

// SameAs reports whether two ingredients refer to the same item.
func (i Ingredient) SameAs(other Ingredient) bool {
	return i.ID == other.ID
}

// String renders the ingredient as it reads in a recipe, skipping absent parts.
func (i Ingredient) String() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{i.Quantity, i.Descriptors, i.ID, i.Preparation} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Recipe is a parsed recipe document. It is never mutated after parsing.
type Recipe struct {
	ID          string // slug assigned by the cookbook, "" straight out of the parser
	Name        string
	Ingredients []Ingredient
	SourcePath  string
}

// Summary returns the lightweight listing view of the recipe.
func (r *Recipe) Summary() RecipeSummary {
	return RecipeSummary{
		ID:              r.ID,
		Name:            r.Name,
		IngredientCount: len(r.Ingredients),
		SourcePath:      r.SourcePath,
	}
}

// RecipeSummary is a lightweight view of a recipe for listing.
type RecipeSummary struct {
	ID              string
	Name            string
	IngredientCount int
	SourcePath      string
}
