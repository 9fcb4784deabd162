package domain

import "strings"

// ShoppingListItem is one merged line of the shopping list.
// Identity is Name only.
type ShoppingListItem struct {
	Name       string
	Quantities []string // one per contributing recipe, empties omitted
	Checked    bool
}

// FormattedQuantities returns "(a, b)" or "" when there are no quantities.
func (s ShoppingListItem) FormattedQuantities() string {
	if len(s.Quantities) == 0 {
		return ""
	}
	return "(" + strings.Join(s.Quantities, ", ") + ")"
}

// DisplayText returns the name followed by its formatted quantities.
func (s ShoppingListItem) DisplayText() string {
	qty := s.FormattedQuantities()
	if qty == "" {
		return s.Name
	}
	return s.Name + " " + qty
}

// ItemGroup is a contiguous run of shopping list items sharing a category.
// Tagged is false for the single group produced when no category config
// is active.
type ItemGroup struct {
	Category string
	Tagged   bool
	Items    []ShoppingListItem
}
