package gui

import (
	"strings"
	"testing"
)

func testPopupItems() []PopupItem {
	return []PopupItem{
		{Label: "Global", IsHeader: true},
		{Key: "q", Label: "Quit"},
		{Key: "?", Label: "Help"},
		{Label: "Catalog", IsHeader: true},
		{Key: "Space", Label: "Toggle"},
	}
}

func TestPopupNavigationSkipsHeaders(t *testing.T) {
	p := NewPopup("Keys", testPopupItems(), &Theme{}, "helpModal")

	if p.SelectedIdx != 1 {
		t.Fatalf("SelectedIdx = %d, expected first selectable item 1", p.SelectedIdx)
	}

	p.MoveDown()
	p.MoveDown()
	if got := p.GetSelectedItem().Label; got != "Toggle" {
		t.Errorf("after two moves down got %q, expected Toggle", got)
	}

	// Stays on the last item
	p.MoveDown()
	if p.SelectedIdx != 4 {
		t.Errorf("SelectedIdx = %d, expected 4", p.SelectedIdx)
	}

	p.MoveUp()
	p.MoveUp()
	p.MoveUp()
	if p.SelectedIdx != 1 {
		t.Errorf("SelectedIdx = %d, expected 1 (headers are skipped)", p.SelectedIdx)
	}

	if p.SelectableCount() != 3 {
		t.Errorf("SelectableCount() = %d, expected 3", p.SelectableCount())
	}
	if p.ViewName() != "helpModal" {
		t.Errorf("ViewName() = %q", p.ViewName())
	}
}

func TestPopupLines(t *testing.T) {
	p := NewPopup("Keys", testPopupItems(), &Theme{}, "helpModal")
	lines := strings.Split(plain(p.Lines()), "\n")

	if !strings.Contains(lines[0], "─── Global ───") {
		t.Errorf("header line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "q") || !strings.Contains(lines[1], "Quit") {
		t.Errorf("item line = %q", lines[1])
	}
	if !strings.Contains(lines[len(lines)-1], "Esc to close") {
		t.Errorf("footer = %q", lines[len(lines)-1])
	}
}
