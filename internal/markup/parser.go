// Package markup parses .sous recipe documents.
//
// A document is line oriented. Each trimmed, non-blank line is one of:
//
//	# Title                                  (first one only names the recipe)
//	@key value                               (attribute, ignored)
//	% text                                   (comment, ignored)
//	{qty} descriptors [id], preparation      (block ingredient)
//	prose with {qty}[id] inline references   (anything else)
//
// Parsing never fails: a document without a title is simply not a recipe.
package markup

import (
	"io"
	"regexp"
	"strings"
	"unicode"

	"github.com/hammamikhairi/sous/internal/domain"
)

// Extension is the file extension of recipe documents.
const Extension = ".sous"

var (
	titleRE   = regexp.MustCompile(`^(#+)\s+(.+)$`)
	attrRE    = regexp.MustCompile(`^@([\w-]+)\s+(.+)$`)
	commentRE = regexp.MustCompile(`^%\s+(.+)$`)
	blockRE   = regexp.MustCompile(`^\{([^}]*)\}([^\[]*)\[([^,\]]+)\](.*)$`)
	inlineRE  = regexp.MustCompile(`\{([^}]*)\}\[([^,\]]+)\]`)

	newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

// lines splits text on any of \n, \r\n or a lone \r.
func lines(text string) []string {
	return strings.Split(newlines.Replace(text), "\n")
}

// Kind classifies a single line of a document.
type Kind int

const (
	KindProse Kind = iota
	KindHeader
	KindAttribute
	KindComment
	KindIngredient
)

// String returns the outline label of the kind.
func (k Kind) String() string {
	switch k {
	case KindHeader:
		return "Header"
	case KindAttribute:
		return "Attribute"
	case KindComment:
		return "Comment"
	case KindIngredient:
		return "Ingredient"
	default:
		return "Prose"
	}
}

// Node is one classified line.
type Node struct {
	Kind        Kind
	Text        string // title, attribute value or comment text
	Key         string // attribute key
	Level       int    // header depth
	Ingredients []domain.Ingredient
}

// Parse turns document text into a recipe. It returns false when the
// document has no title line. Ingredients are unique by ID, in order of
// first appearance; later duplicates are dropped entirely.
func Parse(text, path string) (*domain.Recipe, bool) {
	var (
		name   string
		titled bool
		found  []domain.Ingredient
	)

	for _, line := range lines(text) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		node := classify(trimmed, !titled)
		switch node.Kind {
		case KindHeader:
			name = node.Text
			titled = true
		case KindIngredient, KindProse:
			found = append(found, node.Ingredients...)
		}
	}

	if !titled {
		return nil, false
	}

	return &domain.Recipe{
		Name:        name,
		Ingredients: dedupe(found),
		SourcePath:  path,
	}, true
}

// ParseReader reads r fully and parses it. Read errors are returned; a
// readable document without a title yields (nil, false, nil).
func ParseReader(r io.Reader, path string) (*domain.Recipe, bool, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, false, err
	}
	recipe, ok := Parse(string(data), path)
	return recipe, ok, nil
}

// classify matches a trimmed line in priority order. Title-shaped lines
// only count as headers while allowTitle is set; otherwise they fall
// through to the remaining rules.
func classify(line string, allowTitle bool) Node {
	if allowTitle {
		if m := titleRE.FindStringSubmatch(line); m != nil {
			return Node{Kind: KindHeader, Level: len(m[1]), Text: m[2]}
		}
	}

	if m := attrRE.FindStringSubmatch(line); m != nil {
		return Node{Kind: KindAttribute, Key: m[1], Text: m[2]}
	}

	if m := commentRE.FindStringSubmatch(line); m != nil {
		return Node{Kind: KindComment, Text: m[1]}
	}

	if m := blockRE.FindStringSubmatch(line); m != nil {
		ing := domain.Ingredient{
			ID:          m[3],
			Quantity:    m[1],
			Descriptors: trimDecoration(m[2]),
			Preparation: trimDecoration(m[4]),
		}
		return Node{Kind: KindIngredient, Ingredients: []domain.Ingredient{ing}}
	}

	var inline []domain.Ingredient
	for _, m := range inlineRE.FindAllStringSubmatch(line, -1) {
		inline = append(inline, domain.Ingredient{ID: m[2], Quantity: m[1]})
	}
	return Node{Kind: KindProse, Text: line, Ingredients: inline}
}

// trimDecoration strips surrounding punctuation and whitespace.
func trimDecoration(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSpace(r)
	})
}

func dedupe(in []domain.Ingredient) []domain.Ingredient {
	seen := make(map[string]bool, len(in))
	out := make([]domain.Ingredient, 0, len(in))
	for _, ing := range in {
		if seen[ing.ID] {
			continue
		}
		seen[ing.ID] = true
		out = append(out, ing)
	}
	return out
}
