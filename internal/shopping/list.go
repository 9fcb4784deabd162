// Package shopping aggregates recipe ingredients into a shopping list.
//
// A List owns the ingredients each recipe contributed. Every change to the
// contributions or to the active category config re-derives the item list
// from scratch; the only state carried across a rebuild is each item's
// checked flag, matched by name.
package shopping

import (
	"sort"
	"strings"
	"sync"

	"github.com/hammamikhairi/sous/internal/category"
	"github.com/hammamikhairi/sous/internal/domain"
)

// OtherCategory labels the group of items no category lists.
const OtherCategory = "other"

// List is the shopping list aggregator. One caller mutates it at a time;
// the lock lets a presenter read snapshots from another goroutine.
type List struct {
	mu            sync.RWMutex
	contributions map[string][]domain.Ingredient
	recipes       []string
	items         []domain.ShoppingListItem
	config        *category.Config
	hideChecked   bool
}

// New creates an empty shopping list.
func New() *List {
	return &List{contributions: make(map[string][]domain.Ingredient)}
}

// AddIngredients sets recipeName's contribution, replacing anything the
// same recipe added before.
func (l *List) AddIngredients(ingredients []domain.Ingredient, recipeName string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.contributions[recipeName]; !ok {
		l.recipes = append(l.recipes, recipeName)
	}
	l.contributions[recipeName] = append([]domain.Ingredient(nil), ingredients...)
	l.rebuild()
}

// RemoveRecipe drops recipeName's contribution. Items only that recipe
// contributed disappear; shared items keep the other recipes' quantities.
func (l *List) RemoveRecipe(recipeName string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.contributions, recipeName)
	for i, name := range l.recipes {
		if name == recipeName {
			l.recipes = append(l.recipes[:i], l.recipes[i+1:]...)
			break
		}
	}
	l.rebuild()
}

// ToggleItem flips the checked flag of the item called name. It reports
// whether such an item exists; a missing item is left alone.
func (l *List) ToggleItem(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.items {
		if l.items[i].Name == name {
			l.items[i].Checked = !l.items[i].Checked
			return true
		}
	}
	return false
}

// ClearChecked removes checked items from the current list. Contributions
// are untouched, so cleared items come back on the next rebuild.
func (l *List) ClearChecked() {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.items[:0]
	for _, item := range l.items {
		if !item.Checked {
			kept = append(kept, item)
		}
	}
	l.items = kept
}

// ClearAll resets items, recipes and contributions.
func (l *List) ClearAll() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.items = nil
	l.recipes = nil
	l.contributions = make(map[string][]domain.Ingredient)
}

// ApplyConfig sets the active category config (nil for none) and re-sorts.
func (l *List) ApplyConfig(cfg *category.Config) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.config = cfg
	l.rebuild()
}

// SetHideChecked controls whether VisibleItems includes checked items.
func (l *List) SetHideChecked(hide bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.hideChecked = hide
}

// HideChecked reports the current hide setting.
func (l *List) HideChecked() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.hideChecked
}

// Config returns the active category config, or nil.
func (l *List) Config() *category.Config {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.config
}

// rebuild re-derives items from contributions and config. Caller holds mu.
func (l *List) rebuild() {
	var (
		names      []string
		quantities = make(map[string][]string)
	)
	for _, recipe := range l.recipes {
		for _, ing := range l.contributions[recipe] {
			q, seen := quantities[ing.ID]
			if !seen {
				names = append(names, ing.ID)
			}
			if ing.Quantity != "" {
				q = append(q, ing.Quantity)
			}
			quantities[ing.ID] = q
		}
	}

	checked := make(map[string]bool, len(l.items))
	for _, item := range l.items {
		checked[item.Name] = item.Checked
	}

	items := make([]domain.ShoppingListItem, 0, len(names))
	for _, name := range names {
		items = append(items, domain.ShoppingListItem{
			Name:       name,
			Quantities: quantities[name],
			Checked:    checked[name],
		})
	}

	sortItems(items, l.config)
	l.items = items
}

func sortItems(items []domain.ShoppingListItem, cfg *category.Config) {
	if cfg != nil {
		sort.SliceStable(items, func(i, j int) bool {
			ki, kj := cfg.SortKey(items[i].Name), cfg.SortKey(items[j].Name)
			if ki != kj {
				return ki.Less(kj)
			}
			return items[i].Name < items[j].Name
		})
		return
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := strings.ToLower(items[i].Name), strings.ToLower(items[j].Name)
		if a != b {
			return a < b
		}
		return items[i].Name < items[j].Name
	})
}
