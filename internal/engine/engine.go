// Package engine implements the shopping planner: it resolves what the
// user asks for against a recipe source and applies it to one shopping list.
package engine

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/hammamikhairi/sous/internal/category"
	"github.com/hammamikhairi/sous/internal/domain"
	"github.com/hammamikhairi/sous/internal/logger"
	"github.com/hammamikhairi/sous/internal/shopping"
)

// Option configures the engine.
type Option func(*Engine)

// WithConfig applies a category config to the list at construction.
func WithConfig(cfg *category.Config) Option {
	return func(e *Engine) {
		e.list.ApplyConfig(cfg)
	}
}

// WithHideChecked sets the initial hide-checked setting of the list.
func WithHideChecked(hide bool) Option {
	return func(e *Engine) {
		e.list.SetHideChecked(hide)
	}
}

// Engine manages the shopping list for a cookbook. It depends only on
// a RecipeSource and the list it owns.
type Engine struct {
	recipes domain.RecipeSource
	list    *shopping.List
	log     *logger.Logger
}

// New creates a planner with the given dependencies and options.
func New(recipes domain.RecipeSource, list *shopping.List, log *logger.Logger, opts ...Option) *Engine {
	if list == nil {
		list = shopping.New()
	}
	e := &Engine{
		recipes: recipes,
		list:    list,
		log:     log,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ListRecipes returns all available recipes.
func (e *Engine) ListRecipes(ctx context.Context) ([]domain.RecipeSummary, error) {
	return e.recipes.List(ctx)
}

// GetRecipe resolves ref to a recipe. ref is a 1-based position in the
// ListRecipes order, a recipe ID, or a recipe name (case-insensitive). A
// query matching exactly one recipe by search also resolves.
func (e *Engine) GetRecipe(ctx context.Context, ref string) (*domain.Recipe, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("empty recipe reference: %w", domain.ErrNotFound)
	}

	summaries, err := e.recipes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}

	// Out-of-range numbers may still be a recipe named "1984".
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(summaries) {
		return e.recipes.Get(ctx, summaries[n-1].ID)
	}

	if r, err := e.recipes.Get(ctx, ref); err == nil {
		return r, nil
	}

	for _, s := range summaries {
		if strings.EqualFold(s.Name, ref) {
			return e.recipes.Get(ctx, s.ID)
		}
	}

	hits, err := e.recipes.Search(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("searching recipes: %w", err)
	}
	if len(hits) == 1 {
		return e.recipes.Get(ctx, hits[0].ID)
	}

	e.log.Debug("recipe %q not resolved (%d search hits)", ref, len(hits))
	return nil, fmt.Errorf("recipe %q: %w", ref, domain.ErrNotFound)
}

// AddRecipe puts the selected ingredients of a recipe on the list,
// replacing whatever the same recipe contributed before. selection holds
// 1-based ingredient positions; empty selects every ingredient. The added
// ingredients are returned in recipe order. On ErrInvalidSelection the
// resolved recipe is still returned and the list is unchanged.
func (e *Engine) AddRecipe(ctx context.Context, ref string, selection []int) (*domain.Recipe, []domain.Ingredient, error) {
	r, err := e.GetRecipe(ctx, ref)
	if err != nil {
		return nil, nil, err
	}

	picked, err := selectIngredients(r.Ingredients, selection)
	if err != nil {
		return r, nil, fmt.Errorf("%s: %w", r.Name, err)
	}

	e.list.AddIngredients(picked, r.Name)
	e.log.Debug("added %d of %d ingredients from %q", len(picked), len(r.Ingredients), r.Name)
	return r, picked, nil
}

func selectIngredients(all []domain.Ingredient, selection []int) ([]domain.Ingredient, error) {
	if len(selection) == 0 {
		return append([]domain.Ingredient(nil), all...), nil
	}

	chosen := make(map[int]bool, len(selection))
	for _, n := range selection {
		if n < 1 || n > len(all) {
			return nil, fmt.Errorf("ingredient %d of %d: %w", n, len(all), domain.ErrInvalidSelection)
		}
		chosen[n-1] = true
	}

	idx := make([]int, 0, len(chosen))
	for i := range chosen {
		idx = append(idx, i)
	}
	sort.Ints(idx)

	out := make([]domain.Ingredient, 0, len(idx))
	for _, i := range idx {
		out = append(out, all[i])
	}
	return out, nil
}

// RemoveRecipe drops a recipe's contribution. ref is matched against the
// names on the list first, then resolved like GetRecipe. It returns the
// removed recipe name, or ErrNotFound when that recipe is not on the list.
func (e *Engine) RemoveRecipe(ctx context.Context, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	onList := e.list.RecipeNames()

	name := ""
	for _, n := range onList {
		if strings.EqualFold(n, ref) {
			name = n
			break
		}
	}
	if name == "" {
		r, err := e.GetRecipe(ctx, ref)
		if err != nil {
			return "", err
		}
		for _, n := range onList {
			if n == r.Name {
				name = n
				break
			}
		}
	}
	if name == "" {
		return "", fmt.Errorf("recipe %q is not on the list: %w", ref, domain.ErrNotFound)
	}

	e.list.RemoveRecipe(name)
	e.log.Debug("removed %q from the list", name)
	return name, nil
}

// Toggle flips the checked state of the item whose name matches name,
// case-insensitively. It returns the item after the change.
func (e *Engine) Toggle(name string) (domain.ShoppingListItem, error) {
	name = strings.TrimSpace(name)
	for _, item := range e.list.Items() {
		if !strings.EqualFold(item.Name, name) {
			continue
		}
		e.list.ToggleItem(item.Name)
		item.Checked = !item.Checked
		e.log.Debug("toggled %q, checked=%v", item.Name, item.Checked)
		return item, nil
	}
	return domain.ShoppingListItem{}, fmt.Errorf("item %q: %w", name, domain.ErrNotFound)
}

// ClearChecked removes checked items and returns how many went.
func (e *Engine) ClearChecked() int {
	before := e.list.TotalCount()
	e.list.ClearChecked()
	n := before - e.list.TotalCount()
	e.log.Debug("cleared %d checked items", n)
	return n
}

// ClearAll empties the list.
func (e *Engine) ClearAll() {
	e.list.ClearAll()
	e.log.Info("shopping list cleared")
}

// ApplyConfig sets the active category config; nil removes it.
func (e *Engine) ApplyConfig(cfg *category.Config) {
	e.list.ApplyConfig(cfg)
	e.log.Debug("category config applied, categories=%d", cfg.Len())
}

// SetHideChecked controls whether checked items are shown.
func (e *Engine) SetHideChecked(hide bool) {
	e.list.SetHideChecked(hide)
}

// Snapshot returns the current list state.
func (e *Engine) Snapshot() shopping.Snapshot {
	return e.list.Snapshot()
}
