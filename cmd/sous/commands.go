package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/sous/internal/display"
	"github.com/hammamikhairi/sous/internal/engine"
	"github.com/hammamikhairi/sous/internal/markup"
	"github.com/hammamikhairi/sous/internal/recipe"
	"github.com/hammamikhairi/sous/internal/shopping"
)

func newListCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the recipes in the cookbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cb, err := e.loadCookbook()
			if err != nil {
				return err
			}
			summaries, err := cb.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), display.RenderRecipeList(summaries))
			return nil
		},
	}
}

func newShowCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show <recipe>",
		Short: "Show a recipe's ingredients",
		Long:  "Show a recipe by list number, id or name.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cb, err := e.loadCookbook()
			if err != nil {
				return err
			}
			eng := engine.New(cb, nil, e.log)
			r, err := eng.GetRecipe(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), display.RenderRecipe(r, display.TermWidth()))
			return nil
		},
	}
}

func newShopCmd(e *env) *cobra.Command {
	var (
		files  []string
		format string
	)

	cmd := &cobra.Command{
		Use:   "shop [recipe...]",
		Short: "Build a shopping list for the given recipes",
		Long: `Build a shopping list. Recipes are named by list number, id or name
from the cookbook; --recipe adds .sous files by path.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && len(files) == 0 {
				return fmt.Errorf("name at least one recipe or pass --recipe")
			}

			f := e.settings.ShoppingFormat()
			if format != "" {
				var err error
				if f, err = shopping.ParseFormat(format); err != nil {
					return err
				}
			}

			cfg, err := e.loadCategories()
			if err != nil {
				return err
			}

			list := shopping.New()
			list.ApplyConfig(cfg)

			if len(args) > 0 {
				cb, err := e.loadCookbook()
				if err != nil {
					return err
				}
				eng := engine.New(cb, list, e.log)
				for _, ref := range args {
					if _, _, err := eng.AddRecipe(cmd.Context(), ref, nil); err != nil {
						return err
					}
				}
			}

			extra, err := recipe.ParseFiles(files, e.log)
			if err != nil {
				return err
			}
			for _, r := range extra {
				list.AddIngredients(r.Ingredients, r.Name)
			}

			return printShoppingList(cmd, list, f)
		},
	}

	cmd.Flags().StringArrayVarP(&files, "recipe", "r", nil, "path to a .sous file (repeatable)")
	cmd.Flags().StringVar(&format, "format", "", "item format: compact or expanded (default from settings)")
	return cmd
}

func printShoppingList(cmd *cobra.Command, list *shopping.List, f shopping.Format) error {
	out := cmd.OutOrStdout()
	snap := list.Snapshot()

	lines, err := shopping.FormatGroups(snap.Groups, f)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Building shopping list for %s\n\n", shopping.Pluralize("recipe", len(snap.RecipeNames)))
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintf(out, "\nHappy shopping! %s\n", shopping.Pluralize("item", snap.Total))
	return nil
}

func newSummarizeCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "summarize <file>",
		Short: "Print the paragraph outline of a .sous file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), markup.Summarize(string(data)))
			return nil
		},
	}
}

func newCategoriesCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "categories [item...]",
		Short: "Show the category config, or which category items fall in",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := e.loadCategories()
			if err != nil {
				return err
			}
			if cfg == nil {
				return fmt.Errorf("no category file configured; pass --categories or set SOUS_CATEGORIES")
			}

			out := cmd.OutOrStdout()
			if len(args) > 0 {
				for _, item := range args {
					name, _ := cfg.CategoryFor(item)
					fmt.Fprintf(out, "%s: %s\n", item, name)
				}
				return nil
			}

			data, err := cfg.TOML()
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}
}
