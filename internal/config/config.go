// Package config loads sous settings from an optional TOML file and the
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/hammamikhairi/sous/internal/logger"
	"github.com/hammamikhairi/sous/internal/shopping"
)

// EnvPath names the environment variable holding the settings file path.
const EnvPath = "SOUS_CONFIG"

// Settings is the application configuration.
type Settings struct {
	Cookbook    string `toml:"cookbook"     env:"SOUS_COOKBOOK"     env-default:"."`
	Categories  string `toml:"categories"   env:"SOUS_CATEGORIES"`
	HideChecked bool   `toml:"hide_checked" env:"SOUS_HIDE_CHECKED" env-default:"false"`
	Format      string `toml:"format"       env:"SOUS_FORMAT"       env-default:"compact"`
	LogLevel    string `toml:"log_level"    env:"SOUS_LOG_LEVEL"    env-default:"normal"`
	LogFile     string `toml:"log_file"     env:"SOUS_LOG_FILE"`
}

// DefaultPath is ~/.config/sous/config.toml, or "" when there is no home.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "sous", "config.toml")
}

// Load reads settings. Priority: ENV > file > defaults (env-default tags).
// The file is path, else $SOUS_CONFIG, else DefaultPath. A missing file is
// an error only when it was named explicitly.
func Load(path string) (*Settings, error) {
	var s Settings

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvPath)
		explicit = path != ""
	}
	if !explicit {
		path = DefaultPath()
	}
	path = ExpandHome(path)

	if _, err := os.Stat(path); path != "" && err == nil {
		if err := cleanenv.ReadConfig(path, &s); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&s); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	s.normalize()
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &s, nil
}

func (s *Settings) normalize() {
	s.Format = strings.ToLower(strings.TrimSpace(s.Format))
	s.LogLevel = strings.ToLower(strings.TrimSpace(s.LogLevel))
	s.Cookbook = ExpandHome(strings.TrimSpace(s.Cookbook))
	s.Categories = ExpandHome(strings.TrimSpace(s.Categories))
	s.LogFile = ExpandHome(strings.TrimSpace(s.LogFile))
}

// Validate checks enumerated fields and required paths.
func (s *Settings) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Cookbook, validation.Required),
		validation.Field(&s.Format, validation.In(string(shopping.FormatCompact), string(shopping.FormatExpanded))),
		validation.Field(&s.LogLevel, validation.By(func(value any) error {
			if _, err := logger.ParseLevel(value.(string)); err != nil {
				return validation.NewError("sous.config.log_level", "must be off, normal or verbose")
			}
			return nil
		})),
	)
}

// ShoppingFormat returns the validated list format.
func (s *Settings) ShoppingFormat() shopping.Format {
	f, err := shopping.ParseFormat(s.Format)
	if err != nil {
		return shopping.FormatCompact
	}
	return f
}

// Level returns the validated log level.
func (s *Settings) Level() logger.Level {
	lvl, err := logger.ParseLevel(s.LogLevel)
	if err != nil {
		return logger.LevelNormal
	}
	return lvl
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
