// Package recipe provides recipe source implementations.
package recipe

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-slug"

	"github.com/hammamikhairi/sous/internal/domain"
	"github.com/hammamikhairi/sous/internal/logger"
)

// Compile-time interface check.
var _ domain.RecipeSource = (*Cookbook)(nil)

// Cookbook holds parsed recipes in memory, keyed by slug. Safe for
// concurrent reads.
type Cookbook struct {
	mu      sync.RWMutex
	order   []string
	recipes map[string]*domain.Recipe
	log     *logger.Logger
}

// NewCookbook indexes recipes in the order given. Each recipe gets a slug
// ID derived from its name; clashes get a numeric suffix.
func NewCookbook(recipes []*domain.Recipe, log *logger.Logger) *Cookbook {
	c := &Cookbook{
		recipes: make(map[string]*domain.Recipe, len(recipes)),
		log:     log,
	}
	for _, r := range recipes {
		indexed := *r
		indexed.ID = c.uniqueID(r.Name)
		c.recipes[indexed.ID] = &indexed
		c.order = append(c.order, indexed.ID)
	}
	log.Debug("indexed %d recipes", len(c.order))
	return c
}

func (c *Cookbook) uniqueID(name string) string {
	base, err := slug.Normalize(name)
	if err != nil || base == "" {
		base = "recipe"
	}
	id := base
	for n := 2; c.recipes[id] != nil; n++ {
		id = fmt.Sprintf("%s-%d", base, n)
	}
	return id
}

// Len returns the number of recipes.
func (c *Cookbook) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

// List returns summaries of all recipes in cookbook order.
func (c *Cookbook) List(ctx context.Context) ([]domain.RecipeSummary, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	c.log.Debug("listing all recipes, count=%d", len(c.order))

	out := make([]domain.RecipeSummary, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.recipes[id].Summary())
	}
	return out, nil
}

// Get returns a recipe by ID.
func (c *Cookbook) Get(ctx context.Context, id string) (*domain.Recipe, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	r, ok := c.recipes[id]
	if !ok {
		c.log.Debug("recipe not found: %s", id)
		return nil, domain.ErrNotFound
	}
	return r, nil
}

// Search returns recipes whose name or ingredient IDs contain the query.
func (c *Cookbook) Search(ctx context.Context, query string) ([]domain.RecipeSummary, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	c.log.Debug("searching recipes for: %s", q)

	var out []domain.RecipeSummary
	for _, id := range c.order {
		r := c.recipes[id]
		if matches(r, q) {
			out = append(out, r.Summary())
		}
	}
	return out, nil
}

func matches(r *domain.Recipe, query string) bool {
	if strings.Contains(strings.ToLower(r.Name), query) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing.ID), query) {
			return true
		}
	}
	return false
}
