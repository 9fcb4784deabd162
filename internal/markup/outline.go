package markup

import (
	"fmt"
	"strings"
)

// Paragraphs splits a document into blank-line separated paragraphs of
// classified nodes. Every title-shaped line is reported as a header here,
// not just the first.
func Paragraphs(text string) [][]Node {
	var (
		out       [][]Node
		paragraph []Node
	)
	for _, line := range lines(text) {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			paragraph = append(paragraph, classify(trimmed, true))
			continue
		}
		if len(paragraph) > 0 {
			out = append(out, paragraph)
			paragraph = nil
		}
	}
	if len(paragraph) > 0 {
		out = append(out, paragraph)
	}
	return out
}

// Summarize renders the document outline: one node kind per line, prose
// lines annotated with their inline ingredient count, and a blank line
// after each paragraph.
func Summarize(text string) string {
	var out []string
	for _, paragraph := range Paragraphs(text) {
		for _, node := range paragraph {
			label := node.Kind.String()
			if node.Kind == KindProse {
				label = fmt.Sprintf("%s (%d)", label, len(node.Ingredients))
			}
			out = append(out, label)
		}
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}
