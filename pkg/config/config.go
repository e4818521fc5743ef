// Package config handles loading and parsing of lazyicons configuration.
// Configuration is loaded from ~/.lazyicons/config.yaml or ./config.yaml,
// or from the file given with --config.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/marjoballabani/lazyicons/pkg/skillicons"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config is the root configuration structure for lazyicons.
type Config struct {
	UI        UIConfig        `mapstructure:"ui"`
	Defaults  DefaultsConfig  `mapstructure:"defaults"`
	Search    SearchConfig    `mapstructure:"search"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Clipboard ClipboardConfig `mapstructure:"clipboard"`
	Log       LogConfig       `mapstructure:"log"`
}

// UIConfig contains user interface configuration options.
type UIConfig struct {
	Theme ThemeConfig `mapstructure:"theme"`
	// ShowIcons toggles nerd-font glyphs in panel titles
	ShowIcons bool `mapstructure:"showIcons"`
	// NerdFontsVersion is "3" (default) or "2"; anything else disables glyphs
	NerdFontsVersion string `mapstructure:"nerdFontsVersion"`
	// HighlightStyle is the chroma style used for the generated markup
	HighlightStyle string `mapstructure:"highlightStyle"`
}

// ThemeConfig defines the color scheme for the terminal UI.
// Colors can be specified as:
//   - Named colors: "cyan", "blue", "red", "green", "yellow", "magenta", "white", "black", "default"
//   - Hex colors: "#ed8796"
//   - 256-color numbers: "0" to "255"
//   - Attributes: "bold", "underline", "reverse"
type ThemeConfig struct {
	// ActiveBorderColor is the color of the focused panel's border and title
	ActiveBorderColor []string `mapstructure:"activeBorderColor"`
	// InactiveBorderColor is the color of unfocused panel borders
	InactiveBorderColor []string `mapstructure:"inactiveBorderColor"`
	// FilterBorderColor is used for the catalog panel while a search is active
	FilterBorderColor []string `mapstructure:"filterBorderColor"`
	// OptionsTextColor is the color of help text in the footer
	OptionsTextColor []string `mapstructure:"optionsTextColor"`
	// SelectedLineBgColor is the background color of the highlighted row
	SelectedLineBgColor []string `mapstructure:"selectedLineBgColor"`
}

// DefaultsConfig seeds the output settings of every new session.
type DefaultsConfig struct {
	Theme     string `mapstructure:"theme"`
	PerLine   int    `mapstructure:"perLine"`
	Alignment string `mapstructure:"alignment"`
}

type SearchConfig struct {
	Mode string `mapstructure:"mode"`
}

// CatalogConfig points at a custom catalog. Path empty means the built-in one.
type CatalogConfig struct {
	Path  string `mapstructure:"path"`
	Query string `mapstructure:"query"`
}

type ClipboardConfig struct {
	ClearAfter time.Duration `mapstructure:"clearAfter"`
}

// LogConfig controls the debug log. The TUI owns the terminal, so logs only
// ever go to a file.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Theme: ThemeConfig{
				ActiveBorderColor:   []string{"cyan"},
				InactiveBorderColor: []string{"default"},
				FilterBorderColor:   []string{"yellow"},
				OptionsTextColor:    []string{"cyan"},
				SelectedLineBgColor: []string{"blue"},
			},
			ShowIcons:        true,
			NerdFontsVersion: "3",
			HighlightStyle:   "monokai",
		},
		Defaults: DefaultsConfig{
			Theme:     string(skillicons.ThemeDark),
			PerLine:   skillicons.DefaultPerLine,
			Alignment: string(skillicons.AlignLeft),
		},
		Search: SearchConfig{
			Mode: string(skillicons.SearchSubstring),
		},
		Catalog: CatalogConfig{
			Query: skillicons.DefaultCatalogQuery,
		},
		Clipboard: ClipboardConfig{
			ClearAfter: 2 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from file or returns defaults.
// With an explicit path that file must exist; otherwise it searches for
// config.yaml in ~/.lazyicons/ and the current directory.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	viper.Reset()

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config %s", path)
		}
		if err := viper.Unmarshal(config); err != nil {
			return nil, errors.Wrap(err, "failed to parse config")
		}
		return config, nil
	}

	// Create config directory if it doesn't exist
	home, err := os.UserHomeDir()
	if err != nil {
		return config, nil
	}

	configDir := filepath.Join(home, ".lazyicons")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return config, nil
	}
	config.Log.File = filepath.Join(configDir, "lazyicons.log")

	// Configure viper to search for config files
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)
	viper.AddConfigPath(".")

	// Read and parse config file if it exists
	if err := viper.ReadInConfig(); err == nil {
		if err := viper.Unmarshal(config); err != nil {
			return config, err
		}
	}

	return config, nil
}

// WatchConfig calls onChange with a freshly parsed config whenever the
// config file in use is written. It does nothing when no file was loaded.
func WatchConfig(onChange func(*Config)) {
	if viper.ConfigFileUsed() == "" {
		return
	}
	viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		config := DefaultConfig()
		if err := viper.Unmarshal(config); err != nil {
			return
		}
		onChange(config)
	})
	viper.WatchConfig()
}

// Settings converts the configured defaults into output settings.
func (c *Config) Settings() (skillicons.Settings, error) {
	theme, err := skillicons.ParseTheme(c.Defaults.Theme)
	if err != nil {
		return skillicons.Settings{}, errors.Wrap(err, "defaults.theme")
	}
	align, err := skillicons.ParseAlignment(c.Defaults.Alignment)
	if err != nil {
		return skillicons.Settings{}, errors.Wrap(err, "defaults.alignment")
	}
	settings := skillicons.Settings{
		Theme:     theme,
		PerLine:   c.Defaults.PerLine,
		Alignment: align,
	}
	if err := settings.Validate(); err != nil {
		return skillicons.Settings{}, errors.Wrap(err, "defaults.perLine")
	}
	return settings, nil
}

// SearchMode parses search.mode.
func (c *Config) SearchMode() (skillicons.SearchMode, error) {
	mode, err := skillicons.ParseSearchMode(c.Search.Mode)
	if err != nil {
		return "", errors.Wrap(err, "search.mode")
	}
	return mode, nil
}

// LoadCatalog returns the configured catalog, or the built-in one.
func (c *Config) LoadCatalog() (*skillicons.Catalog, error) {
	if c.Catalog.Path == "" {
		return skillicons.DefaultCatalog()
	}
	return skillicons.LoadCatalog(expandHome(c.Catalog.Path), c.Catalog.Query)
}

func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
