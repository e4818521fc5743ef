package gui

import (
	"fmt"

	"github.com/jesseduffield/gocui"
	"github.com/marjoballabani/lazyicons/pkg/session"
)

// Actions - clean handler functions without state checks.
// State checks are handled by the binding system's GetDisabledReason.

// doQuit exits the application
func (g *Gui) doQuit() error {
	return gocui.ErrQuit
}

// doEscape closes modals, cancels filter input, drops a grab or clears the query
func (g *Gui) doEscape() error {
	// Priority: help popup > command modal > filter input > move > committed filter
	if g.helpOpen {
		g.helpOpen = false
		g.helpPopup = nil
		return g.redraw()
	}
	if g.modalOpen {
		g.modalOpen = false
		return g.redraw()
	}
	if g.filterInputActive {
		return g.cancelFilterInput()
	}
	if _, ok := g.state.Dragging(); ok {
		g.apply("move", session.DragCancel{})
		g.logCommand("move", "Move cancelled", "success")
		return g.redraw()
	}
	if g.hasActiveFilter() {
		return g.clearFilter()
	}
	return nil
}

func (g *Gui) doToggleHelp() error {
	if g.helpOpen {
		g.helpOpen = false
		g.helpPopup = nil
	} else {
		g.buildHelpPopup()
		g.helpOpen = true
	}
	return g.redraw()
}

// doToggleModal toggles the command log modal
func (g *Gui) doToggleModal() error {
	g.modalOpen = !g.modalOpen
	return g.redraw()
}

// Context-specific handlers for help popup
func (g *Gui) helpMoveUp() error {
	if g.helpPopup != nil {
		g.helpPopup.MoveUp()
	}
	return g.redraw()
}

func (g *Gui) helpMoveDown() error {
	if g.helpPopup != nil {
		g.helpPopup.MoveDown()
	}
	return g.redraw()
}

func (g *Gui) helpClose() error {
	var action func() error
	if g.helpPopup != nil {
		if item := g.helpPopup.GetSelectedItem(); item != nil && item.Action != nil {
			action = item.Action
		}
	}

	g.helpOpen = false
	g.helpPopup = nil

	if action != nil {
		return action()
	}
	return g.redraw()
}

// Context-specific handlers for filter mode
func (g *Gui) filterCursorLeft() error {
	if g.filterCursorPos > 0 {
		g.filterCursorPos--
	}
	return g.redraw()
}

func (g *Gui) filterCursorRight() error {
	if g.filterCursorPos < len(g.filterInputText) {
		g.filterCursorPos++
	}
	return g.redraw()
}

// Block handler - does nothing (for modal context)
func (g *Gui) blockAction() error {
	return nil
}

// filterInsert returns a handler typing ch into the search box
func (g *Gui) filterInsert(ch rune) func() error {
	return func() error { return g.insertFilterChar(ch) }
}

// doColumnLeft switches to the previous panel, or lowers icons per line on
// the per-line row of the settings panel.
func (g *Gui) doColumnLeft() error {
	if g.currentColumn == columnSettings && g.settingsIdx == settingPerLine {
		return g.adjustPerLine(-1)()
	}
	return g.setFocus(g.neighbourColumn(-1))
}

func (g *Gui) doColumnRight() error {
	if g.currentColumn == columnSettings && g.settingsIdx == settingPerLine {
		return g.adjustPerLine(1)()
	}
	return g.setFocus(g.neighbourColumn(1))
}

func (g *Gui) doNextColumn() error {
	return g.setFocus(g.neighbourColumn(1))
}

// doCursorUp moves the cursor up in the current panel
func (g *Gui) doCursorUp() error {
	switch g.currentColumn {
	case columnSettings:
		if g.settingsIdx > 0 {
			g.settingsIdx--
		}
	case columnSelected:
		if g.selectedIdx > 0 {
			g.selectedIdx--
		}
	case columnCatalog:
		if g.catalogIdx > 0 {
			g.catalogIdx--
		}
	case columnOutput:
		if g.outputScroll > 0 {
			g.outputScroll--
		}
	}
	return g.redraw()
}

// doCursorDown moves the cursor down in the current panel
func (g *Gui) doCursorDown() error {
	switch g.currentColumn {
	case columnSettings:
		if g.settingsIdx < settingCount-1 {
			g.settingsIdx++
		}
	case columnSelected:
		if g.selectedIdx < g.state.Selection.Len()-1 {
			g.selectedIdx++
		}
	case columnCatalog:
		if g.catalogIdx < len(g.state.Filtered())-1 {
			g.catalogIdx++
		}
	case columnOutput:
		g.outputScroll++
	}
	return g.redraw()
}

// doSpace activates the row under the cursor
func (g *Gui) doSpace() error {
	switch g.currentColumn {
	case columnCatalog:
		return g.toggleHovered()
	case columnSelected:
		if _, ok := g.state.Dragging(); ok {
			return g.doDrop()
		}
		if g.state.Selection.Len() == 0 {
			return nil
		}
		return g.doGrab()
	case columnSettings:
		return g.activateSetting()
	}
	return nil
}

func (g *Gui) toggleHovered() error {
	id, ok := g.hoveredCatalogIcon()
	if !ok {
		return nil
	}
	if !g.apply("toggle", session.ToggleIcon{ID: id}) {
		return g.redraw()
	}
	if g.state.Selection.Contains(id) {
		g.logCommand("toggle", fmt.Sprintf("Added %s (%d selected)", id, g.state.Selection.Len()), "success")
	} else {
		g.logCommand("toggle", fmt.Sprintf("Removed %s (%d selected)", id, g.state.Selection.Len()), "success")
	}
	g.clampCursors()
	return g.redraw()
}

func (g *Gui) activateSetting() error {
	switch g.settingsIdx {
	case settingTheme:
		return g.doToggleTheme()
	case settingPerLine:
		return g.adjustPerLine(1)()
	case settingAlignment:
		return g.doToggleAlignment()
	}
	return nil
}

// filterCommit leaves the search box and keeps the query
func (g *Gui) filterCommit() error {
	return g.commitFilter()
}

// doStartFilter focuses the catalog and opens the search box
func (g *Gui) doStartFilter() error {
	return g.startFilter()
}

// doFilterBackspace handles backspace in filter mode
func (g *Gui) doFilterBackspace() error {
	if !g.filterInputActive {
		return nil
	}
	return g.deleteFilterChar()
}

// makeFilterCharAction creates a handler for a specific character
func (g *Gui) makeFilterCharAction(ch rune) func() error {
	return func() error {
		if !g.filterInputActive {
			return nil
		}
		return g.insertFilterChar(ch)
	}
}

// doGrab picks up the selected icon under the cursor
func (g *Gui) doGrab() error {
	g.currentColumn = columnSelected
	g.clampCursors()
	if !g.apply("move", session.DragStart{Index: g.selectedIdx}) {
		return g.redraw()
	}
	id, _ := g.state.Selection.At(g.selectedIdx)
	g.logCommand("move", fmt.Sprintf("Moving %s, j/k to pick a spot", id), "running")
	return g.redraw()
}

// doDrop puts the grabbed icon at the cursor
func (g *Gui) doDrop() error {
	from, ok := g.state.Dragging()
	if !ok {
		return nil
	}
	id, _ := g.state.Selection.At(from)
	if g.apply("move", session.DragDrop{Index: g.selectedIdx}) {
		g.logCommand("move", fmt.Sprintf("Moved %s to position %d", id, g.selectedIdx+1), "success")
	}
	return g.redraw()
}

func (g *Gui) doShiftUp() error {
	return g.shiftSelected(-1)
}

func (g *Gui) doShiftDown() error {
	return g.shiftSelected(1)
}

func (g *Gui) shiftSelected(delta int) error {
	g.clampCursors()
	to := g.selectedIdx + delta
	if to < 0 || to >= g.state.Selection.Len() {
		return nil
	}
	if g.apply("move", session.MoveIcon{From: g.selectedIdx, To: to}) {
		g.selectedIdx = to
	}
	return g.redraw()
}

// doRemove drops the hovered icon from the selection. In the catalog it
// acts on the catalog row, everywhere else on the selected list.
func (g *Gui) doRemove() error {
	id, ok := g.hoveredSelectedIcon()
	if g.currentColumn == columnCatalog {
		id, ok = g.hoveredCatalogIcon()
		ok = ok && g.state.Selection.Contains(id)
	}
	if !ok {
		return nil
	}
	if g.apply("remove", session.ToggleIcon{ID: id}) {
		g.logCommand("remove", fmt.Sprintf("Removed %s (%d selected)", id, g.state.Selection.Len()), "success")
	}
	g.clampCursors()
	return g.redraw()
}

func (g *Gui) doClearSelection() error {
	n := g.state.Selection.Len()
	if g.apply("clear", session.ClearSelection{}) {
		g.logCommand("clear", fmt.Sprintf("Removed %d icons", n), "success")
	}
	g.selectedIdx = 0
	return g.redraw()
}

func (g *Gui) doToggleTheme() error {
	if g.apply("theme", session.ToggleTheme{}) {
		g.logCommand("theme", fmt.Sprintf("Theme: %s", g.state.Settings.Theme), "success")
	}
	return g.redraw()
}

func (g *Gui) doToggleAlignment() error {
	if g.apply("align", session.ToggleAlignment{}) {
		g.logCommand("align", fmt.Sprintf("Alignment: %s", g.state.Settings.Alignment), "success")
	}
	return g.redraw()
}

func (g *Gui) adjustPerLine(delta int) func() error {
	return func() error {
		if g.apply("perline", session.AdjustPerLine{Delta: delta}) {
			g.logCommand("perline", fmt.Sprintf("Icons per line: %d", g.state.Settings.PerLine), "success")
		}
		return g.redraw()
	}
}

// Mouse click handlers

// closeHelpOnClick closes the help popup; a click outside it does nothing else.
func (g *Gui) closeHelpOnClick() bool {
	if !g.helpOpen {
		return false
	}
	g.helpOpen = false
	g.helpPopup = nil
	return true
}

// clickedLine returns the buffer line under the last mouse click in a view
func (g *Gui) clickedLine(viewName string) (int, bool) {
	v, err := g.g.View(viewName)
	if err != nil {
		return 0, false
	}
	_, cy := v.Cursor()
	_, oy := v.Origin()
	return cy + oy, true
}

func (g *Gui) doHelpClick() error {
	if g.helpPopup == nil {
		return nil
	}
	line, ok := g.clickedLine(g.views.helpModal)
	if ok && line >= 0 && line < len(g.helpPopup.Items) && !g.helpPopup.Items[line].IsHeader {
		g.helpPopup.SelectedIdx = line
	}
	return g.redraw()
}

func (g *Gui) doSettingsClick() error {
	if g.closeHelpOnClick() || g.modalOpen {
		return g.redraw()
	}
	line, ok := g.clickedLine(g.views.settings)
	if !ok {
		return g.redraw()
	}
	return g.clickSettings(line)
}

func (g *Gui) clickSettings(line int) error {
	if _, ok := g.state.Dragging(); ok {
		return nil
	}
	g.currentColumn = columnSettings
	if line >= 0 && line < settingCount {
		g.settingsIdx = line
	}
	return g.redraw()
}

func (g *Gui) doSelectedClick() error {
	if g.closeHelpOnClick() || g.modalOpen {
		return g.redraw()
	}
	line, ok := g.clickedLine(g.views.selected)
	if !ok {
		return g.redraw()
	}
	return g.clickSelected(line)
}

// clickSelected implements click-to-grab, click-to-drop on the selected list.
func (g *Gui) clickSelected(line int) error {
	if line < 0 || line >= g.state.Selection.Len() {
		g.currentColumn = columnSelected
		return g.redraw()
	}
	if _, ok := g.state.Dragging(); ok {
		g.selectedIdx = line
		return g.doDrop()
	}
	if g.currentColumn == columnSelected && g.selectedIdx == line {
		return g.doGrab()
	}
	g.currentColumn = columnSelected
	g.selectedIdx = line
	return g.redraw()
}

func (g *Gui) doCatalogClick() error {
	if g.closeHelpOnClick() || g.modalOpen {
		return g.redraw()
	}
	line, ok := g.clickedLine(g.views.catalog)
	if !ok {
		return g.redraw()
	}
	return g.clickCatalog(line)
}

// clickCatalog toggles the clicked catalog icon
func (g *Gui) clickCatalog(line int) error {
	if g.filterInputActive {
		g.filterInputActive = false
	}
	g.currentColumn = columnCatalog
	if line < 0 || line >= len(g.state.Filtered()) {
		return g.redraw()
	}
	g.catalogIdx = line
	return g.toggleHovered()
}

func (g *Gui) doOutputClick() error {
	if g.closeHelpOnClick() || g.modalOpen {
		return g.redraw()
	}
	if _, ok := g.state.Dragging(); ok {
		return nil
	}
	g.currentColumn = columnOutput
	return g.redraw()
}

func (g *Gui) doOutsideClick() error {
	if g.closeHelpOnClick() {
		return g.redraw()
	}
	return nil
}
