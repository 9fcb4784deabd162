// Package conversation provides intent parsing and user notification implementations.
package conversation

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/hammamikhairi/sous/internal/domain"
	"github.com/hammamikhairi/sous/internal/logger"
)

// Compile-time interface check.
var _ domain.IntentParser = (*KeywordParser)(nil)

// KeywordParser matches REPL input to intents using keywords and simple patterns.
type KeywordParser struct {
	log      *logger.Logger
	patterns []patternRule
}

// patternRule maps a regex to an intent. For intents that take an
// argument, the first capture group becomes the payload.
type patternRule struct {
	regex  *regexp.Regexp
	intent domain.IntentType
}

var (
	addRE       = regexp.MustCompile(`(?i)^(?:add|shop)\s+(.+?)(?:\s+\[?(\d+(?:\s*,\s*\d+)*)\]?)?$`)
	selectionRE = regexp.MustCompile(`\d+`)
)

// NewKeywordParser creates a keyword-based intent parser.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	p := &KeywordParser{log: log}
	p.patterns = []patternRule{
		{regexp.MustCompile(`(?i)^(quit|exit|q|bye)$`), domain.IntentQuit},
		{regexp.MustCompile(`(?i)^(help|h|\?)$`), domain.IntentHelp},
		{regexp.MustCompile(`(?i)^(list|recipes|ls|browse)$`), domain.IntentListRecipes},
		{regexp.MustCompile(`(?i)^(items|list shopping|shopping|cart)$`), domain.IntentShowList},
		{regexp.MustCompile(`(?i)^(clear|clear checked|clean)$`), domain.IntentClearChecked},
		{regexp.MustCompile(`(?i)^(clear all|reset|start over)$`), domain.IntentClearAll},
		{regexp.MustCompile(`(?i)^(hide|hide checked)$`), domain.IntentHideChecked},
		{regexp.MustCompile(`(?i)^(unhide|show checked|show all)$`), domain.IntentShowChecked},
		{regexp.MustCompile(`(?i)^(?:show|view|open)\s+(.+)$`), domain.IntentShowRecipe},
		{regexp.MustCompile(`(?i)^(?:remove|rm|drop)\s+(.+)$`), domain.IntentRemoveRecipe},
		{regexp.MustCompile(`(?i)^(?:toggle|check|uncheck|got|x)\s+(.+)$`), domain.IntentToggleItem},
	}
	return p
}

// Parse converts user input into an intent.
func (p *KeywordParser) Parse(ctx context.Context, input string) (*domain.Intent, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return &domain.Intent{Type: domain.IntentUnknown}, nil
	}

	p.log.Debug("parsing input: %q", trimmed)

	// A bare number shows that recipe.
	if len(trimmed) <= 3 && isDigits(trimmed) {
		return &domain.Intent{Type: domain.IntentShowRecipe, Payload: trimmed}, nil
	}

	if m := addRE.FindStringSubmatch(trimmed); m != nil {
		intent := &domain.Intent{Type: domain.IntentAddRecipe, Payload: strings.TrimSpace(m[1])}
		for _, n := range selectionRE.FindAllString(m[2], -1) {
			i, err := strconv.Atoi(n)
			if err != nil {
				// Too large for an int; no recipe has that many ingredients.
				i = -1
			}
			intent.Selection = append(intent.Selection, i)
		}
		p.log.Debug("matched intent: %s, selection=%v", intent.Type, intent.Selection)
		return intent, nil
	}

	for _, rule := range p.patterns {
		m := rule.regex.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		p.log.Debug("matched intent: %s", rule.intent)
		if isArgRule(rule.intent) {
			return &domain.Intent{Type: rule.intent, Payload: strings.TrimSpace(m[1])}, nil
		}
		return &domain.Intent{Type: rule.intent}, nil
	}

	p.log.Debug("no match, returning unknown intent")
	return &domain.Intent{Type: domain.IntentUnknown, Payload: trimmed}, nil
}

// isArgRule reports whether the intent carries its argument as payload.
func isArgRule(t domain.IntentType) bool {
	switch t {
	case domain.IntentShowRecipe, domain.IntentRemoveRecipe, domain.IntentToggleItem:
		return true
	}
	return false
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
