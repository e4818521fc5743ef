package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/marjoballabani/lazyicons/pkg/skillicons"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfig() returned nil config")
	}

	// Theme colors should be set (either from defaults or config file)
	if len(cfg.UI.Theme.ActiveBorderColor) == 0 {
		t.Error("ActiveBorderColor should have a value")
	}

	if len(cfg.UI.Theme.InactiveBorderColor) == 0 {
		t.Error("InactiveBorderColor should have a value")
	}

	if cfg.Log.File == "" {
		t.Error("Log.File should default to a file in the config directory")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
ui:
  nerdFontsVersion: "2"
  theme:
    activeBorderColor: ["#ff0000", "bold"]
defaults:
  theme: light
  perLine: 8
  alignment: center
search:
  mode: fuzzy
clipboard:
  clearAfter: 3s
catalog:
  path: /tmp/icons.json
  query: .icons[]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig(%q) error = %v", path, err)
	}

	if cfg.UI.NerdFontsVersion != "2" {
		t.Errorf("NerdFontsVersion = %q, expected %q", cfg.UI.NerdFontsVersion, "2")
	}
	if len(cfg.UI.Theme.ActiveBorderColor) != 2 {
		t.Errorf("ActiveBorderColor = %v, expected 2 values", cfg.UI.Theme.ActiveBorderColor)
	}
	// Keys missing from the file keep their defaults
	if len(cfg.UI.Theme.SelectedLineBgColor) == 0 || cfg.UI.Theme.SelectedLineBgColor[0] != "blue" {
		t.Errorf("SelectedLineBgColor = %v, expected default", cfg.UI.Theme.SelectedLineBgColor)
	}
	if !cfg.UI.ShowIcons {
		t.Error("ShowIcons should keep its default")
	}
	if cfg.Clipboard.ClearAfter != 3*time.Second {
		t.Errorf("ClearAfter = %v, expected 3s", cfg.Clipboard.ClearAfter)
	}
	if cfg.Catalog.Query != ".icons[]" {
		t.Errorf("Catalog.Query = %q", cfg.Catalog.Query)
	}

	settings, err := cfg.Settings()
	if err != nil {
		t.Fatalf("Settings() error = %v", err)
	}
	expected := skillicons.Settings{Theme: skillicons.ThemeLight, PerLine: 8, Alignment: skillicons.AlignCenter}
	if settings != expected {
		t.Errorf("Settings() = %+v, expected %+v", settings, expected)
	}

	mode, err := cfg.SearchMode()
	if err != nil || mode != skillicons.SearchFuzzy {
		t.Errorf("SearchMode() = %q, %v", mode, err)
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadConfig should fail for a missing explicit file")
	}
}

func TestConfigSettings(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"bad theme", func(c *Config) { c.Defaults.Theme = "blue" }, true},
		{"bad alignment", func(c *Config) { c.Defaults.Alignment = "right" }, true},
		{"perline too small", func(c *Config) { c.Defaults.PerLine = 0 }, true},
		{"perline too big", func(c *Config) { c.Defaults.PerLine = 21 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			_, err := cfg.Settings()
			if (err != nil) != tt.wantErr {
				t.Errorf("Settings() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigLoadCatalog(t *testing.T) {
	cfg := DefaultConfig()
	catalog, err := cfg.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if !catalog.Contains("go") {
		t.Error("built-in catalog should contain go")
	}

	path := filepath.Join(t.TempDir(), "icons.json")
	if err := os.WriteFile(path, []byte(`{"icons": ["a", "b"]}`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg.Catalog = CatalogConfig{Path: path, Query: ".icons[]"}
	catalog, err = cfg.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if catalog.Len() != 2 {
		t.Errorf("catalog.Len() = %d, expected 2", catalog.Len())
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := expandHome("~/icons.json"); got != filepath.Join(home, "icons.json") {
		t.Errorf("expandHome() = %q", got)
	}
	if got := expandHome("/abs/icons.json"); got != "/abs/icons.json" {
		t.Errorf("expandHome() = %q", got)
	}
}

func TestWatchConfigWithoutFileIsNoop(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if _, err := LoadConfig(""); err != nil {
		t.Fatal(err)
	}
	WatchConfig(func(*Config) { t.Error("onChange should not be called") })
}
