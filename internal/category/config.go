// Package category reads shopping list category definitions.
//
// The format is a small TOML subset:
//
//	[dairy]
//	items = ["milk", "butter"]
//
//	[produce]
//	items = [
//	    "potatoes",
//	    "onions",
//	]
//
// Category order is significant: it is the order the shopping list is
// sorted in. Parsing is tolerant and never fails. A table name that
// appears twice yields two independent categories; lookups stop at the
// first one that lists an item.
package category

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Uncategorized is the label reported for items no category lists.
const Uncategorized = "uncategorized"

var (
	tableRE  = regexp.MustCompile(`^\[([^\]]+)\]$`)
	newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

// Category is one named bucket of lowercased item names.
type Category struct {
	Name  string
	Items []string
}

func (c Category) has(normalized string) bool {
	for _, item := range c.Items {
		if item == normalized {
			return true
		}
	}
	return false
}

// Config is an ordered list of categories. A nil *Config behaves as an
// empty one.
type Config struct {
	Categories []Category
}

// Parse reads category definitions from text.
func Parse(text string) *Config {
	var (
		cfg     Config
		table   string
		inTable bool
		buf     strings.Builder
		inArray bool
	)

	flush := func(raw string) {
		if inTable {
			cfg.Categories = append(cfg.Categories, Category{Name: table, Items: parseArray(raw)})
		}
	}

	for _, line := range strings.Split(newlines.Replace(text), "\n") {
		trimmed := strings.TrimSpace(line)

		if inArray {
			buf.WriteByte(' ')
			buf.WriteString(trimmed)
			if strings.Contains(trimmed, "]") {
				flush(buf.String())
				buf.Reset()
				inArray = false
			}
			continue
		}

		if m := tableRE.FindStringSubmatch(trimmed); m != nil {
			table = strings.TrimSpace(m[1])
			inTable = true
			continue
		}

		key, value, ok := strings.Cut(trimmed, "=")
		if !ok || strings.TrimSpace(key) != "items" {
			continue
		}
		value = strings.TrimSpace(value)

		switch {
		case strings.Contains(value, "[") && strings.Contains(value, "]"):
			flush(value)
		case strings.Contains(value, "["):
			buf.WriteString(value)
			inArray = true
		}
	}

	return &cfg
}

// Load reads and parses a category file. Only I/O failures are errors.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading category config: %w", err)
	}
	return Parse(string(data)), nil
}

// parseArray turns `["Milk", "butter", ""]` into lowercased, unquoted,
// non-empty elements.
func parseArray(raw string) []string {
	open := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if open < 0 || end <= open {
		return nil
	}

	var items []string
	for _, part := range strings.Split(raw[open+1:end], ",") {
		v := strings.TrimSpace(part)
		if len(v) >= 2 && strings.HasPrefix(v, `"`) && strings.HasSuffix(v, `"`) {
			v = strings.TrimSpace(v[1 : len(v)-1])
		}
		if v == "" {
			continue
		}
		items = append(items, strings.ToLower(v))
	}
	return items
}

// Len returns the number of categories.
func (c *Config) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Categories)
}

// CategoryFor returns the first category listing itemName, compared
// case-insensitively. The second result is false for uncategorized items.
func (c *Config) CategoryFor(itemName string) (string, bool) {
	idx := c.index(normalize(itemName))
	if idx == c.Len() {
		return Uncategorized, false
	}
	return c.Categories[idx].Name, true
}

// SortKey orders items by category position, uncategorized items last,
// then by normalized name.
type SortKey struct {
	Index int
	Name  string
}

// Less reports whether k sorts before other.
func (k SortKey) Less(other SortKey) bool {
	if k.Index != other.Index {
		return k.Index < other.Index
	}
	return k.Name < other.Name
}

// SortKey returns the ordering key for itemName.
func (c *Config) SortKey(itemName string) SortKey {
	normalized := normalize(itemName)
	return SortKey{Index: c.index(normalized), Name: normalized}
}

// index returns the position of the first category listing normalized,
// or Len() when none does.
func (c *Config) index(normalized string) int {
	for i, cat := range c.categories() {
		if cat.has(normalized) {
			return i
		}
	}
	return c.Len()
}

func (c *Config) categories() []Category {
	if c == nil {
		return nil
	}
	return c.Categories
}

func normalize(name string) string {
	return strings.ToLower(name)
}
