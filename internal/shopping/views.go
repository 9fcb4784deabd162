package shopping

import "github.com/hammamikhairi/sous/internal/domain"

// Snapshot is an immutable copy of a List's state for presenters.
type Snapshot struct {
	Items       []domain.ShoppingListItem
	Groups      []domain.ItemGroup
	RecipeNames []string
	Remaining   int
	Total       int
	HideChecked bool
	HasConfig   bool
}

// Items returns a copy of the full item list in display order.
func (l *List) Items() []domain.ShoppingListItem {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return copyItems(l.items)
}

// RecipeNames returns the contributing recipes in the order first added.
func (l *List) RecipeNames() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]string(nil), l.recipes...)
}

// RemainingCount is the number of unchecked items.
func (l *List) RemainingCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.remaining()
}

// TotalCount is the number of items.
func (l *List) TotalCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// VisibleItems is the item list, minus checked items when hiding them.
func (l *List) VisibleItems() []domain.ShoppingListItem {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return copyItems(l.visible())
}

// GroupedItems splits the visible items into contiguous runs by category,
// in their existing order. Without a config the result is one untagged
// group; with a config and nothing visible it is empty.
func (l *List) GroupedItems() []domain.ItemGroup {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.groups(copyItems(l.visible()))
}

// Snapshot copies the whole list state in one read.
func (l *List) Snapshot() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return Snapshot{
		Items:       copyItems(l.items),
		Groups:      l.groups(copyItems(l.visible())),
		RecipeNames: append([]string(nil), l.recipes...),
		Remaining:   l.remaining(),
		Total:       len(l.items),
		HideChecked: l.hideChecked,
		HasConfig:   l.config != nil,
	}
}

func (l *List) remaining() int {
	n := 0
	for _, item := range l.items {
		if !item.Checked {
			n++
		}
	}
	return n
}

func (l *List) visible() []domain.ShoppingListItem {
	if !l.hideChecked {
		return l.items
	}
	out := make([]domain.ShoppingListItem, 0, len(l.items))
	for _, item := range l.items {
		if !item.Checked {
			out = append(out, item)
		}
	}
	return out
}

func (l *List) groups(visible []domain.ShoppingListItem) []domain.ItemGroup {
	if l.config == nil {
		return []domain.ItemGroup{{Items: visible}}
	}

	var groups []domain.ItemGroup
	for _, item := range visible {
		name, ok := l.config.CategoryFor(item.Name)
		if !ok {
			name = OtherCategory
		}
		if n := len(groups); n > 0 && groups[n-1].Category == name {
			groups[n-1].Items = append(groups[n-1].Items, item)
			continue
		}
		groups = append(groups, domain.ItemGroup{Category: name, Tagged: true, Items: []domain.ShoppingListItem{item}})
	}
	return groups
}

func copyItems(in []domain.ShoppingListItem) []domain.ShoppingListItem {
	if in == nil {
		return nil
	}
	out := make([]domain.ShoppingListItem, len(in))
	for i, item := range in {
		out[i] = item
		out[i].Quantities = append([]string(nil), item.Quantities...)
	}
	return out
}
