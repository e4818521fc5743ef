package gui

import (
	"strings"
	"testing"

	"github.com/marjoballabani/lazyicons/pkg/skillicons"
)

func plain(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func noHighlight(source, _ string) string {
	return source
}

func TestLeftSplit(t *testing.T) {
	tests := []struct {
		name         string
		leftHeight   int
		column       string
		wantSelected int
	}{
		{name: "catalog focused", leftHeight: 35, column: columnCatalog, wantSelected: 10},
		{name: "selected focused", leftHeight: 35, column: columnSelected, wantSelected: 20},
		{name: "tiny terminal keeps a usable selected panel", leftHeight: 8, column: columnCatalog, wantSelected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settingsEnd, selectedEnd := leftSplit(tt.leftHeight, tt.column)
			if settingsEnd != settingsHeight {
				t.Errorf("settingsEnd = %d, expected %d", settingsEnd, settingsHeight)
			}
			if got := selectedEnd - settingsEnd; got != tt.wantSelected {
				t.Errorf("selected height = %d, expected %d", got, tt.wantSelected)
			}
		})
	}
}

func TestRenderSettingsLines(t *testing.T) {
	lines := renderSettingsLines(skillicons.Settings{Theme: skillicons.ThemeLight, PerLine: 7, Alignment: skillicons.AlignCenter})
	if len(lines) != settingCount {
		t.Fatalf("got %d lines, expected %d", len(lines), settingCount)
	}

	checks := map[int]string{
		settingTheme:     "light",
		settingPerLine:   " 7 ",
		settingAlignment: "center",
	}
	for row, want := range checks {
		if !strings.Contains(plain(lines[row]), want) {
			t.Errorf("line %d = %q, expected it to contain %q", row, plain(lines[row]), want)
		}
	}
}

func TestRenderCatalogLinesMarksSelected(t *testing.T) {
	selection := skillicons.NewSelection("rust")
	lines := renderCatalogLines([]skillicons.IconID{"go", "rust"}, selection, "")

	if strings.TrimSpace(plain(lines[0])) != "go" {
		t.Errorf("unselected line = %q", lines[0])
	}
	if plain(lines[1]) == "  rust" || !strings.HasSuffix(plain(lines[1]), " rust") {
		t.Errorf("selected line should carry a marker, got %q", plain(lines[1]))
	}
}

func TestRenderSelectedLines(t *testing.T) {
	items := []skillicons.IconID{"go", "rust", "html"}

	lines := renderSelectedLines(items, -1, "")
	expected := []string{"  1. go", "  2. rust", "  3. html"}
	for i := range expected {
		if plain(lines[i]) != expected[i] {
			t.Errorf("line %d = %q, expected %q", i, plain(lines[i]), expected[i])
		}
	}

	grabbed := renderSelectedLines(items, 1, "")
	if plain(grabbed[1]) == expected[1] || !strings.HasSuffix(plain(grabbed[1]), "2. rust") {
		t.Errorf("grabbed line should be marked, got %q", plain(grabbed[1]))
	}
}

func TestRenderOutput(t *testing.T) {
	selection := skillicons.NewSelection("go", "rust")
	left := skillicons.Render(selection, skillicons.DefaultSettings())
	centered := skillicons.Render(selection, skillicons.Settings{
		Theme: skillicons.ThemeDark, PerLine: skillicons.DefaultPerLine, Alignment: skillicons.AlignCenter,
	})

	tests := []struct {
		name        string
		view        outputView
		contains    []string
		notContains []string
		copiedOn    string
	}{
		{
			name:        "empty selection shows a hint",
			view:        outputView{hasOutput: false},
			contains:    []string{"Select icons from the catalog"},
			notContains: []string{"─── URL", "─── HTML", "Copied!"},
		},
		{
			name:     "left alignment shows all three blocks",
			view:     outputView{output: left, alignment: skillicons.AlignLeft, hasOutput: true},
			contains: []string{"─── URL ───", left.URL, "─── Markdown ───", left.Badge, "─── HTML ───", left.Embed},
		},
		{
			name:        "center alignment hides the markdown block",
			view:        outputView{output: centered, alignment: skillicons.AlignCenter, hasOutput: true},
			contains:    []string{"─── HTML ───", `<p align="center">`},
			notContains: []string{"Markdown"},
		},
		{
			name:     "copied marker follows the label",
			view:     outputView{output: left, alignment: skillicons.AlignLeft, hasOutput: true, copied: copyHTML},
			copiedOn: "─── HTML ───  ",
		},
		{
			name:     "hovered icon gets a preview",
			view:     outputView{hovered: "go", summary: "5 icons"},
			contains: []string{"─── Preview ───", skillicons.IconURL("go"), "5 icons"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := plain(renderOutput(tt.view, noHighlight))
			if tt.copiedOn != "" && (strings.Count(out, "Copied!") != 1 || !strings.Contains(out, tt.copiedOn)) {
				t.Errorf("expected exactly one Copied! marker after %q:\n%s", tt.copiedOn, out)
			}
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
			for _, unwanted := range tt.notContains {
				if strings.Contains(out, unwanted) {
					t.Errorf("output should not contain %q:\n%s", unwanted, out)
				}
			}
		})
	}
}

func TestRenderCommandLog(t *testing.T) {
	if got := plain(renderCommandLog(nil)); !strings.Contains(got, "No commands yet") {
		t.Errorf("empty log = %q", got)
	}

	got := plain(renderCommandLog([]CommandExecution{
		{Timestamp: "10:00:00", Command: "copy", Description: "Copied url to clipboard", Status: "success"},
	}))
	if !strings.Contains(got, "[10:00:00] copy: Copied url to clipboard") {
		t.Errorf("log = %q", got)
	}
}

func TestVisibleLen(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"plain", 5},
		{"\033[36m←/→\033[0m", 3},
		{"\033[38;2;1;2;3mrgb\033[0m", 3},
		{"", 0},
	}
	for _, tt := range tests {
		if got := visibleLen(tt.input); got != tt.expected {
			t.Errorf("visibleLen(%q) = %d, expected %d", tt.input, got, tt.expected)
		}
	}
}

func TestHelpBarText(t *testing.T) {
	g, _ := newTestGui(t)

	bar := g.helpBarText(200)
	if visibleLen(bar) != 200 {
		t.Errorf("help bar should fill the width, got %d", visibleLen(bar))
	}
	if !strings.HasSuffix(plain(bar), "vtest ") {
		t.Errorf("version should be right-aligned, got %q", plain(bar))
	}

	_ = g.doStartFilter()
	_ = g.filterInsert('g')()
	if got := plain(g.helpBarText(200)); !strings.Contains(got, "Search catalog: g") {
		t.Errorf("filter prompt = %q", got)
	}

	_ = g.filterCommit()
	if got := plain(g.helpBarText(200)); !strings.Contains(got, "Catalog filtered: 'g'") {
		t.Errorf("filtered banner = %q", got)
	}

	_ = g.clearFilter()
	selectIcons(t, g, "go", "rust")
	_ = g.doGrab()
	if got := plain(g.helpBarText(200)); !strings.Contains(got, "-- MOVE --") {
		t.Errorf("move banner = %q", got)
	}
}

func TestOutputContentUsesNotifierLabel(t *testing.T) {
	g, _ := newTestGui(t)
	selectIcons(t, g, "go")
	g.currentColumn = columnSelected

	_ = g.doCopyURL()
	out := plain(g.outputContent())
	if !strings.Contains(out, "─── URL ───  ") || strings.Count(out, "Copied!") != 1 {
		t.Errorf("expected a Copied! marker on the URL block:\n%s", out)
	}
	if strings.Contains(out, "Preview") {
		t.Error("preview is only shown while the catalog is focused")
	}
}
