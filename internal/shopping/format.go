package shopping

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/hammamikhairi/sous/internal/domain"
)

// Format selects how items are rendered as plain text lines.
type Format string

const (
	// FormatCompact shows the name and, for shared items, how many recipes use it.
	FormatCompact Format = "compact"
	// FormatExpanded shows the name and every quantity.
	FormatExpanded Format = "expanded"
)

// ErrInvalidFormat is returned for an unknown Format.
var ErrInvalidFormat = errors.New("invalid shopping list format")

// ParseFormat converts a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCompact, FormatExpanded:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
}

// FormatItems renders items as sorted text lines.
func FormatItems(items []domain.ShoppingListItem, f Format) ([]string, error) {
	lines := make([]string, 0, len(items))

	switch f {
	case FormatCompact:
		for _, item := range items {
			uses := ""
			if len(item.Quantities) > 1 {
				uses = fmt.Sprintf("(%d)", len(item.Quantities))
			}
			lines = append(lines, strings.TrimSpace(item.Name+" "+uses))
		}
	case FormatExpanded:
		for _, item := range items {
			lines = append(lines, item.DisplayText())
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, string(f))
	}

	sort.Strings(lines)
	return lines, nil
}

// FormatGroups renders groups as text lines. Tagged groups start with a
// "[category]" header and groups are separated by a blank line.
func FormatGroups(groups []domain.ItemGroup, f Format) ([]string, error) {
	var out []string
	for i, group := range groups {
		lines, err := FormatItems(group.Items, f)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			out = append(out, "")
		}
		if group.Tagged {
			out = append(out, "["+group.Category+"]")
		}
		out = append(out, lines...)
	}
	return out, nil
}

var (
	sibilantRE   = regexp.MustCompile(`[sxz]$|[^aeioudgkprt]h$`)
	consonantYRE = regexp.MustCompile(`[^aeiou]y$`)
)

// Pluralize returns "<count> <noun>" with noun pluralized for counts other than one.
func Pluralize(noun string, count int) string {
	switch {
	case count == 1:
	case sibilantRE.MatchString(noun):
		noun += "es"
	case consonantYRE.MatchString(noun):
		noun = strings.TrimSuffix(noun, "y") + "ies"
	default:
		noun += "s"
	}
	return fmt.Sprintf("%d %s", count, noun)
}
