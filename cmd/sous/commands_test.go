package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hammamikhairi/sous/internal/domain"
)

const (
	broccoliRecipe = `# Roasted broccoli

{2} large [broccoli crowns], washed and trimmed
{3} large [garlic cloves], minced
{} extra virgin [olive oil]
Season with {1 tsp}[salt].
`
	tofuRecipe = `# Mapo Tofu

{16 oz}[tofu]
{0.5 tsp}[salt]
{}[scallions]
`
	categoriesFile = `[produce]
items = ["broccoli crowns", "garlic cloves", "scallions"]

[spices]
items = ["salt"]
`
)

// testEnv isolates a command run from the user's environment and returns
// a cookbook directory holding two recipes.
func testEnv(t *testing.T) string {
	t.Helper()
	for _, k := range []string{"SOUS_CONFIG", "SOUS_COOKBOOK", "SOUS_CATEGORIES", "SOUS_HIDE_CHECKED", "SOUS_FORMAT", "SOUS_LOG_LEVEL", "SOUS_LOG_FILE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SOUS_LOG_LEVEL", "off")

	dir := t.TempDir()
	write(t, filepath.Join(dir, "broccoli.sous"), broccoliRecipe)
	write(t, filepath.Join(dir, "tofu.sous"), tofuRecipe)
	write(t, filepath.Join(dir, "categories.toml"), categoriesFile)
	return dir
}

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	dir := testEnv(t)

	out, err := run(t, "list", "--cookbook", dir)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	tofu := strings.Index(out, "Mapo Tofu")
	broccoli := strings.Index(out, "Roasted broccoli")
	if tofu < 0 || broccoli < 0 || tofu > broccoli {
		t.Fatalf("expected recipes sorted by name:\n%s", out)
	}
}

func TestListCommandEmptyCookbook(t *testing.T) {
	testEnv(t)

	_, err := run(t, "list", "-c", t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "no recognized recipe files found") {
		t.Fatalf("expected no-recipes error, got %v", err)
	}
}

func TestShowCommand(t *testing.T) {
	dir := testEnv(t)

	out, err := run(t, "show", "-c", dir, "mapo", "tofu")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "scallions") {
		t.Fatalf("expected ingredients in output:\n%s", out)
	}

	if _, err := run(t, "show", "-c", dir, "lasagna"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestShopCommand(t *testing.T) {
	dir := testEnv(t)

	out, err := run(t, "shop", "-c", dir, "--format", "expanded", "Roasted broccoli", "mapo-tofu")
	if err != nil {
		t.Fatalf("shop: %v", err)
	}

	want := []string{
		"broccoli crowns (2)",
		"garlic cloves (3)",
		"olive oil",
		"salt (1 tsp, 0.5 tsp)",
		"scallions",
		"tofu (16 oz)",
	}
	for _, w := range want {
		if !strings.Contains(out, w+"\n") {
			t.Fatalf("missing %q in:\n%s", w, out)
		}
	}
	if !strings.Contains(out, "2 recipes") {
		t.Fatalf("expected recipe count in:\n%s", out)
	}
}

func TestShopCommandGrouped(t *testing.T) {
	dir := testEnv(t)

	out, err := run(t, "shop", "-c", dir, "--categories", filepath.Join(dir, "categories.toml"), "1", "2")
	if err != nil {
		t.Fatalf("shop: %v", err)
	}

	wantOrder := []string{"[produce]", "broccoli crowns", "scallions", "[spices]", "salt (2)", "[other]", "olive oil", "tofu"}
	last := -1
	for _, w := range wantOrder {
		i := strings.Index(out, w)
		if i <= last {
			t.Fatalf("expected %q after position %d in:\n%s", w, last, out)
		}
		last = i
	}
}

func TestShopCommandRecipeFiles(t *testing.T) {
	dir := testEnv(t)
	extra := filepath.Join(t.TempDir(), "omelette.sous")
	write(t, extra, "# Omelette\n{2}[eggs]\n{}[salt]\n")

	out, err := run(t, "shop", "-c", dir, "-r", extra, "mapo tofu")
	if err != nil {
		t.Fatalf("shop: %v", err)
	}
	for _, w := range []string{"eggs\n", "salt\n", "tofu\n"} {
		if !strings.Contains(out, w) {
			t.Fatalf("missing %q in:\n%s", w, out)
		}
	}

	// Only --recipe files: no cookbook needed.
	out, err = run(t, "shop", "-c", t.TempDir(), "-r", extra)
	if err != nil {
		t.Fatalf("shop with files only: %v", err)
	}
	if !strings.Contains(out, "1 recipe\n") {
		t.Fatalf("expected single recipe in:\n%s", out)
	}
}

func TestShopCommandErrors(t *testing.T) {
	dir := testEnv(t)

	if _, err := run(t, "shop", "-c", dir); err == nil {
		t.Fatal("expected error without recipes")
	}
	if _, err := run(t, "shop", "-c", dir, "--format", "fancy", "1"); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if _, err := run(t, "shop", "-c", dir, "-r", filepath.Join(dir, "missing.sous")); err == nil {
		t.Fatal("expected error for missing recipe file")
	}
}

func TestSummarizeCommand(t *testing.T) {
	dir := testEnv(t)

	out, err := run(t, "summarize", filepath.Join(dir, "tofu.sous"))
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if want := "Header\n\nIngredient\nIngredient\nIngredient\n"; out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestCategoriesCommand(t *testing.T) {
	dir := testEnv(t)
	cats := filepath.Join(dir, "categories.toml")

	out, err := run(t, "categories", "--categories", cats, "SALT", "tofu")
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if out != "SALT: spices\ntofu: uncategorized\n" {
		t.Fatalf("got %q", out)
	}

	out, err = run(t, "categories", "--categories", cats)
	if err != nil {
		t.Fatalf("categories export: %v", err)
	}
	if !strings.Contains(out, "produce") || !strings.Contains(out, "garlic cloves") {
		t.Fatalf("unexpected export:\n%s", out)
	}

	if _, err := run(t, "categories"); err == nil {
		t.Fatal("expected error without a category file")
	}
}
