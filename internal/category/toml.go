package category

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

type table struct {
	Items []string `toml:"items"`
}

// Lint checks text against the full TOML grammar. Parse accepts far more
// than TOML does (duplicate tables, stray lines), so a Lint error is a
// warning for the author, not a reason to reject the file.
func Lint(text string) error {
	var doc map[string]any
	if err := toml.Unmarshal([]byte(text), &doc); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf("line %d, column %d: %w", row, col, err)
		}
		return err
	}

	for name, v := range doc {
		t, ok := v.(map[string]any)
		if !ok {
			return fmt.Errorf("key %q is not a category table", name)
		}
		items, ok := t["items"]
		if !ok {
			continue
		}
		list, ok := items.([]any)
		if !ok {
			return fmt.Errorf("category %q: items is not an array", name)
		}
		for _, item := range list {
			if _, ok := item.(string); !ok {
				return fmt.Errorf("category %q: item %v is not a string", name, item)
			}
		}
	}
	return nil
}

// TOML renders the categories in order, one table each. Duplicate
// category names are written out as duplicate tables.
func (c *Config) TOML() ([]byte, error) {
	var out bytes.Buffer
	for i, cat := range c.categories() {
		items := cat.Items
		if items == nil {
			items = []string{}
		}
		b, err := toml.Marshal(map[string]table{cat.Name: {Items: items}})
		if err != nil {
			return nil, fmt.Errorf("encoding category %q: %w", cat.Name, err)
		}
		if i > 0 {
			out.WriteByte('\n')
		}
		out.Write(b)
	}
	return out.Bytes(), nil
}
