package recipe

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hammamikhairi/sous/internal/domain"
	"github.com/hammamikhairi/sous/internal/logger"
	"github.com/hammamikhairi/sous/internal/markup"
)

// ParseCookbook walks fsys for recipe files and parses them. Hidden files
// and directories are skipped, as are files that cannot be read or have
// no title. The result is sorted by name, case-insensitively, then path.
func ParseCookbook(fsys fs.FS, log *logger.Logger) ([]*domain.Recipe, error) {
	var recipes []*domain.Recipe

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Debug("skipping %s: %v", p, err)
			if d != nil && d.IsDir() && p != "." {
				return fs.SkipDir
			}
			if p == "." {
				return err
			}
			return nil
		}
		if p != "." && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || path.Ext(p) != markup.Extension {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			log.Debug("skipping unreadable recipe %s: %v", p, err)
			return nil
		}
		r, ok := markup.Parse(string(data), p)
		if !ok {
			log.Debug("skipping untitled recipe %s", p)
			return nil
		}
		recipes = append(recipes, r)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking cookbook: %w", err)
	}

	sortRecipes(recipes)
	log.Debug("parsed %d recipes", len(recipes))
	return recipes, nil
}

// LoadDir parses the cookbook rooted at dir. It returns ErrNoRecipes when
// the directory holds no usable recipe.
func LoadDir(dir string, log *logger.Logger) ([]*domain.Recipe, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("opening cookbook: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("opening cookbook: %s is not a directory", dir)
	}

	recipes, err := ParseCookbook(os.DirFS(dir), log)
	if err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, domain.ErrNoRecipes)
	}
	for _, r := range recipes {
		r.SourcePath = filepath.Join(dir, filepath.FromSlash(r.SourcePath))
	}
	return recipes, nil
}

// ParseFiles parses explicit recipe paths, keeping their order. Any file
// that cannot be read or has no title is an error.
func ParseFiles(paths []string, log *logger.Logger) ([]*domain.Recipe, error) {
	recipes := make([]*domain.Recipe, 0, len(paths))
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return nil, fmt.Errorf("opening recipe: %w", err)
		}
		r, ok, err := markup.ParseReader(f, p)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("reading recipe %s: %w", p, err)
		}
		if !ok {
			return nil, fmt.Errorf("%s has no title: %w", p, domain.ErrNoRecipes)
		}
		log.Debug("parsed %s: %d ingredients", p, len(r.Ingredients))
		recipes = append(recipes, r)
	}
	return recipes, nil
}

func sortRecipes(recipes []*domain.Recipe) {
	sort.SliceStable(recipes, func(i, j int) bool {
		a, b := strings.ToLower(recipes[i].Name), strings.ToLower(recipes[j].Name)
		if a != b {
			return a < b
		}
		return recipes[i].SourcePath < recipes[j].SourcePath
	})
}
