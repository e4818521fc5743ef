package gui

import (
	"github.com/jesseduffield/gocui"
	"github.com/marjoballabani/lazyicons/pkg/session"
	"github.com/marjoballabani/lazyicons/pkg/skillicons"
)

// columnOrder is the focus cycle: left stack top to bottom, then output.
var columnOrder = []string{columnSettings, columnSelected, columnCatalog, columnOutput}

// State checking helpers

func (g *Gui) isModalOpen() bool {
	return g.modalOpen || g.helpOpen
}

// setFocus sets the current column; Layout makes it the current gocui view
func (g *Gui) setFocus(column string) error {
	g.currentColumn = column
	return g.redraw()
}

func (g *Gui) neighbourColumn(step int) string {
	for i, c := range columnOrder {
		if c == g.currentColumn {
			n := len(columnOrder)
			return columnOrder[((i+step)%n+n)%n]
		}
	}
	return columnCatalog
}

// apply runs ev through the session reducer. Failures go to the command log.
func (g *Gui) apply(command string, ev session.Event) bool {
	if err := session.Reduce(g.state, ev); err != nil {
		g.logCommand(command, err.Error(), "error")
		return false
	}
	return true
}

func (g *Gui) hoveredCatalogIcon() (skillicons.IconID, bool) {
	filtered := g.state.Filtered()
	if g.catalogIdx < 0 || g.catalogIdx >= len(filtered) {
		return "", false
	}
	return filtered[g.catalogIdx], true
}

func (g *Gui) hoveredSelectedIcon() (skillicons.IconID, bool) {
	return g.state.Selection.At(g.selectedIdx)
}

// clampCursors keeps every list cursor inside its list after a mutation
func (g *Gui) clampCursors() {
	g.catalogIdx = clampIndex(g.catalogIdx, len(g.state.Filtered()))
	g.selectedIdx = clampIndex(g.selectedIdx, g.state.Selection.Len())
	g.settingsIdx = clampIndex(g.settingsIdx, settingCount)
}

func clampIndex(idx, n int) int {
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// Help popup builder

func (g *Gui) buildHelpPopup() {
	items := []PopupItem{
		{Key: "", Label: "Global", IsHeader: true},
		{Key: "←/→ h/l", Label: "Switch panels"},
		{Key: "↑/↓ j/k", Label: "Move up/down"},
		{Key: "/", Label: "Search catalog", Action: g.doStartFilter},
		{Key: "t", Label: "Toggle theme", Action: g.doToggleTheme},
		{Key: "a", Label: "Toggle alignment", Action: g.doToggleAlignment},
		{Key: "+/-", Label: "Icons per line"},
		{Key: "c", Label: "Copy markdown", Action: g.doCopyMarkdown},
		{Key: "e", Label: "Copy HTML", Action: g.doCopyHTML},
		{Key: "u", Label: "Copy URL", Action: g.doCopyURL},
		{Key: "D", Label: "Clear selection", Action: g.doClearSelection},
		{Key: "Esc", Label: "Back / Cancel / Close"},
		{Key: "@", Label: "Command log", Action: g.doToggleModal},
		{Key: "?", Label: "This help"},
		{Key: "q", Label: "Quit", Action: g.doQuit},
		{Key: "", Label: g.getPanelName(), IsHeader: true},
	}

	switch g.currentColumn {
	case columnSettings:
		items = append(items,
			PopupItem{Key: "Space", Label: "Change setting", Action: g.activateSetting},
			PopupItem{Key: "h/l", Label: "Adjust icons per line"},
		)
	case columnSelected:
		items = append(items,
			PopupItem{Key: "m / Space", Label: "Grab / drop icon", Action: g.doGrab},
			PopupItem{Key: "J/K", Label: "Shift icon down/up"},
			PopupItem{Key: "d/x", Label: "Remove icon", Action: g.doRemove},
		)
	case columnCatalog:
		items = append(items,
			PopupItem{Key: "Space", Label: "Add / remove icon", Action: g.toggleHovered},
			PopupItem{Key: "d/x", Label: "Remove icon", Action: g.doRemove},
		)
	case columnOutput:
		items = append(items,
			PopupItem{Key: "j/k", Label: "Scroll output"},
		)
	}

	g.helpPopup = NewPopup("Keyboard Shortcuts", items, g.theme, g.views.helpModal)
}

func (g *Gui) renderHelpContent(v *gocui.View) {
	if g.helpPopup == nil {
		return
	}
	g.helpPopup.Render(v)
}

func (g *Gui) getPanelName() string {
	return getPanelNameFor(g.currentColumn)
}

func getPanelNameFor(panel string) string {
	switch panel {
	case columnSettings:
		return "Settings"
	case columnSelected:
		return "Selected"
	case columnCatalog:
		return "Catalog"
	case columnOutput:
		return "Output"
	default:
		return "Panel"
	}
}
