package main

import (
	"errors"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/sous/internal/category"
	"github.com/hammamikhairi/sous/internal/config"
	"github.com/hammamikhairi/sous/internal/domain"
	"github.com/hammamikhairi/sous/internal/logger"
	"github.com/hammamikhairi/sous/internal/recipe"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath string
	cookbook   string
	categories string
	verbose    bool
	quiet      bool
}

// env carries what PersistentPreRunE resolved to the command bodies.
type env struct {
	flags    globalFlags
	settings *config.Settings
	log      *logger.Logger
	closers  []io.Closer
}

func newRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:   "sous",
		Short: "Browse a .sous cookbook and build shopping lists",
		Long: `sous reads a directory of .sous recipe files and turns the recipes you
pick into one merged shopping list, optionally grouped by store section.

Run without a subcommand for the interactive shell.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			e.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd.Context(), e)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&e.flags.configPath, "config", "", "settings file (default $SOUS_CONFIG or ~/.config/sous/config.toml)")
	pf.StringVarP(&e.flags.cookbook, "cookbook", "c", "", "cookbook directory (default $SOUS_COOKBOOK or .)")
	pf.StringVar(&e.flags.categories, "categories", "", "category config file (default $SOUS_CATEGORIES)")
	pf.BoolVar(&e.flags.verbose, "verbose", false, "enable verbose/debug logging")
	pf.BoolVar(&e.flags.quiet, "quiet", false, "disable all logging")

	root.AddCommand(
		newListCmd(e),
		newShowCmd(e),
		newShopCmd(e),
		newSummarizeCmd(e),
		newCategoriesCmd(e),
	)
	return root
}

// setup loads settings, applies flag overrides and opens the log.
func (e *env) setup(cmd *cobra.Command) error {
	s, err := config.Load(e.flags.configPath)
	if err != nil {
		return err
	}
	if e.flags.cookbook != "" {
		s.Cookbook = config.ExpandHome(e.flags.cookbook)
	}
	if e.flags.categories != "" {
		s.Categories = config.ExpandHome(e.flags.categories)
	}
	e.settings = s

	level := s.Level()
	if e.flags.verbose {
		level = logger.LevelVerbose
	}
	if e.flags.quiet {
		level = logger.LevelOff
	}

	logFile := s.LogFile
	if logFile == "" && cmd.Root() == cmd {
		// The interactive shell owns the terminal; keep logs out of it.
		logFile = defaultLogFile()
	}

	var out io.Writer = cmd.ErrOrStderr()
	if logFile != "" && logFile != "stderr" {
		f, err := openLog(logFile)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not open log file %s: %v (falling back to stderr)\n", logFile, err)
		} else {
			out = f
			e.closers = append(e.closers, f)
		}
	}

	// Third-party packages that use the standard logger go to the same place.
	stdlog.SetOutput(out)
	stdlog.SetFlags(stdlog.Ltime)

	e.log = logger.New(level, out)
	e.log.Debug("settings: cookbook=%s categories=%s format=%s", s.Cookbook, s.Categories, s.Format)
	return nil
}

func (e *env) close() {
	for _, c := range e.closers {
		c.Close()
	}
	e.closers = nil
}

func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "sous", "sous.log")
}

func openLog(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// loadCookbook parses the configured cookbook directory.
func (e *env) loadCookbook() (*recipe.Cookbook, error) {
	recipes, err := recipe.LoadDir(e.settings.Cookbook, e.log)
	if err != nil {
		if errors.Is(err, domain.ErrNoRecipes) {
			return nil, fmt.Errorf("no recognized recipe files found in %s", e.settings.Cookbook)
		}
		return nil, err
	}
	return recipe.NewCookbook(recipes, e.log), nil
}

// loadCategories reads the configured category file, or returns nil when
// none is configured. Lint findings are logged, never fatal.
func (e *env) loadCategories() (*category.Config, error) {
	if e.settings.Categories == "" {
		return nil, nil
	}
	cfg, err := category.Load(e.settings.Categories)
	if err != nil {
		return nil, fmt.Errorf("loading categories: %w", err)
	}
	if data, err := os.ReadFile(e.settings.Categories); err == nil {
		if err := category.Lint(string(data)); err != nil {
			e.log.Warn("%s: %v", e.settings.Categories, err)
		}
	}
	e.log.Debug("loaded %d categories from %s", cfg.Len(), e.settings.Categories)
	return cfg, nil
}
