package conversation

import (
	"context"
	"strings"
	"testing"

	"github.com/hammamikhairi/sous/internal/domain"
	"github.com/hammamikhairi/sous/internal/logger"
)

func TestKeywordParser(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	parser := NewKeywordParser(log)
	ctx := context.Background()

	tests := []struct {
		input       string
		wantType    domain.IntentType
		wantPayload string
	}{
		// Quit
		{"quit", domain.IntentQuit, ""},
		{"exit", domain.IntentQuit, ""},
		{"q", domain.IntentQuit, ""},

		// Help
		{"help", domain.IntentHelp, ""},
		{"?", domain.IntentHelp, ""},

		// Cookbook
		{"list", domain.IntentListRecipes, ""},
		{"recipes", domain.IntentListRecipes, ""},
		{"1", domain.IntentShowRecipe, "1"},
		{"12", domain.IntentShowRecipe, "12"},
		{"show 2", domain.IntentShowRecipe, "2"},
		{"show Mapo Tofu", domain.IntentShowRecipe, "Mapo Tofu"},
		{"view roasted-broccoli", domain.IntentShowRecipe, "roasted-broccoli"},

		// Shopping list
		{"items", domain.IntentShowList, ""},
		{"list shopping", domain.IntentShowList, ""},
		{"remove Mapo Tofu", domain.IntentRemoveRecipe, "Mapo Tofu"},
		{"rm 2", domain.IntentRemoveRecipe, "2"},
		{"toggle olive oil", domain.IntentToggleItem, "olive oil"},
		{"check salt", domain.IntentToggleItem, "salt"},
		{"clear checked", domain.IntentClearChecked, ""},
		{"clear", domain.IntentClearChecked, ""},
		{"clear all", domain.IntentClearAll, ""},
		{"CLEAR ALL", domain.IntentClearAll, ""},
		{"hide", domain.IntentHideChecked, ""},
		{"unhide", domain.IntentShowChecked, ""},
		{"show checked", domain.IntentShowChecked, ""},

		// Unknown
		{"flambé the cat", domain.IntentUnknown, "flambé the cat"},
		{"1234", domain.IntentUnknown, "1234"},
		{"", domain.IntentUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			intent, err := parser.Parse(ctx, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if intent.Type != tt.wantType {
				t.Errorf("input=%q: got type %s, want %s", tt.input, intent.Type, tt.wantType)
			}
			if tt.wantPayload != "" && intent.Payload != tt.wantPayload {
				t.Errorf("input=%q: got payload %q, want %q", tt.input, intent.Payload, tt.wantPayload)
			}
		})
	}
}

func TestKeywordParserAdd(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	parser := NewKeywordParser(log)
	ctx := context.Background()

	tests := []struct {
		input         string
		wantPayload   string
		wantSelection []int
	}{
		{"add 2", "2", nil},
		{"add Roasted broccoli", "Roasted broccoli", nil},
		{"add 2 1,3", "2", []int{1, 3}},
		{"add 2 [1, 3, 4]", "2", []int{1, 3, 4}},
		{"add mapo tofu 2", "mapo tofu", []int{2}},
		{"shop roasted-broccoli [5]", "roasted-broccoli", []int{5}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			intent, err := parser.Parse(ctx, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if intent.Type != domain.IntentAddRecipe {
				t.Fatalf("input=%q: got type %s, want %s", tt.input, intent.Type, domain.IntentAddRecipe)
			}
			if intent.Payload != tt.wantPayload {
				t.Errorf("input=%q: got payload %q, want %q", tt.input, intent.Payload, tt.wantPayload)
			}
			if len(intent.Selection) != len(tt.wantSelection) {
				t.Fatalf("input=%q: got selection %v, want %v", tt.input, intent.Selection, tt.wantSelection)
			}
			for i := range tt.wantSelection {
				if intent.Selection[i] != tt.wantSelection[i] {
					t.Fatalf("input=%q: got selection %v, want %v", tt.input, intent.Selection, tt.wantSelection)
				}
			}
		})
	}
}

func TestIntentTypeString(t *testing.T) {
	if got := domain.IntentClearChecked.String(); got != "clear_checked" {
		t.Fatalf("got %q", got)
	}
	if got := domain.IntentType(99).String(); got != "unknown" {
		t.Fatalf("got %q", got)
	}
}

func TestLines(t *testing.T) {
	if got := LineAdded("Mapo Tofu", 3, 3); got != "Added Mapo Tofu (3 ingredients)." {
		t.Fatalf("got %q", got)
	}
	if got := LineAdded("Mapo Tofu", 1, 3); got != "Added 1 of 3 ingredients from Mapo Tofu." {
		t.Fatalf("got %q", got)
	}
	if got := LineClearedChecked(1); got != "Cleared 1 checked item." {
		t.Fatalf("got %q", got)
	}

	help := HelpText()
	if len(help) == 0 {
		t.Fatal("empty help")
	}
	col := strings.Index(help[0], "list the")
	for _, line := range help {
		if len(line) <= col || line[col-1] != ' ' || line[col] == ' ' {
			t.Fatalf("help descriptions not aligned at column %d: %q", col, line)
		}
	}
}
