// lines.go centralises every user-facing REPL string. Edit this file to
// change the shell's voice. Keep lines short and direct.
package conversation

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/hammamikhairi/sous/internal/shopping"
)

// ── Greeting / Global ────────────────────────────────────────────

func LineWelcome(recipes int) string {
	return fmt.Sprintf("Cookbook open: %s. What are we shopping for?", shopping.Pluralize("recipe", recipes))
}

func LineBye() string {
	return "Bye."
}

func LineUnknown(input string) string {
	return fmt.Sprintf("Didn't catch that: %s. Type help for commands.", input)
}

// ── Recipes ──────────────────────────────────────────────────────

func LineNoSuchRecipe(ref string) string {
	return fmt.Sprintf("No recipe matches %q. Type list to see them all.", ref)
}

func LineInvalidSelection(recipe string, count int) string {
	return fmt.Sprintf("%s has %s; pick numbers from 1 to %d.", recipe, shopping.Pluralize("ingredient", count), count)
}

func LineHowToAdd(n int) string {
	return fmt.Sprintf("Type add %d to shop for all of it, or add %d 1,3 for some.", n, n)
}

// LineAdded confirms what went on the list.
func LineAdded(recipe string, added, total int) string {
	if added == total {
		return fmt.Sprintf("Added %s (%s).", recipe, shopping.Pluralize("ingredient", added))
	}
	return fmt.Sprintf("Added %d of %d ingredients from %s.", added, total, recipe)
}

func LineRemoved(recipe string) string {
	return fmt.Sprintf("Removed %s from the list.", recipe)
}

func LineNotOnList(ref string) string {
	return fmt.Sprintf("%s is not on the list.", ref)
}

// ── Shopping list ────────────────────────────────────────────────

func LineToggled(item string, checked bool) string {
	if checked {
		return fmt.Sprintf("Got %s.", item)
	}
	return fmt.Sprintf("Unchecked %s.", item)
}

func LineNoSuchItem(item string) string {
	return fmt.Sprintf("%s is not on the list.", item)
}

func LineClearedChecked(n int) string {
	if n == 0 {
		return "Nothing checked off yet."
	}
	return fmt.Sprintf("Cleared %s.", shopping.Pluralize("checked item", n))
}

func LineClearedAll() string {
	return "Shopping list cleared."
}

func LineHidingChecked(hide bool) string {
	if hide {
		return "Hiding checked items."
	}
	return "Showing checked items."
}

var allDone = []string{
	"That's everything. Happy shopping!",
	"All checked off. Enjoy the cooking.",
	"List complete.",
	"Nothing left to grab.",
}

// LineAllDone returns a random line for a fully checked list.
func LineAllDone() string {
	return allDone[rand.Intn(len(allDone))]
}

// ── Help ─────────────────────────────────────────────────────────

var helpRows = [][2]string{
	{"list", "list the cookbook's recipes"},
	{"show <n|id|name>", "show a recipe's ingredients (or just type the number)"},
	{"add <recipe> [1,3,...]", "put a recipe (or some of its ingredients) on the list"},
	{"remove <recipe>", "take a recipe off the list"},
	{"items", "show the shopping list"},
	{"check <item>", "check or uncheck an item"},
	{"clear checked", "drop checked items"},
	{"clear all", "empty the list"},
	{"hide / unhide", "hide or show checked items"},
	{"quit", "exit"},
}

// HelpText returns the command reference, one command per line.
func HelpText() []string {
	width := 0
	for _, row := range helpRows {
		if len(row[0]) > width {
			width = len(row[0])
		}
	}
	out := make([]string, 0, len(helpRows))
	for _, row := range helpRows {
		out = append(out, row[0]+strings.Repeat(" ", width-len(row[0])+2)+row[1])
	}
	return out
}
