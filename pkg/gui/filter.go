package gui

import (
	"fmt"

	"github.com/marjoballabani/lazyicons/pkg/session"
)

// The catalog is the only filtered panel. The query lives in the session so
// rendering and the result counter always agree; the input fields here only
// track the text box while it is open.

func (g *Gui) startFilter() error {
	if g.helpOpen || g.modalOpen || g.filterInputActive {
		return nil
	}
	g.currentColumn = columnCatalog
	g.filterInputActive = true
	g.filterInputText = g.state.Query
	g.filterCursorPos = len(g.filterInputText)
	return g.redraw()
}

// commitFilter closes the text box and keeps the query applied
func (g *Gui) commitFilter() error {
	g.filterInputActive = false
	g.filterInputText = ""
	g.filterCursorPos = 0
	if g.hasActiveFilter() {
		g.logCommand("search", g.resultSummary(), "success")
	}
	return g.redraw()
}

// cancelFilterInput closes the text box and drops the query
func (g *Gui) cancelFilterInput() error {
	g.filterInputActive = false
	g.filterInputText = ""
	g.filterCursorPos = 0
	return g.setQuery("")
}

func (g *Gui) clearFilter() error {
	return g.setQuery("")
}

func (g *Gui) hasActiveFilter() bool {
	return g.state.Query != ""
}

func (g *Gui) isFiltering() bool {
	return g.filterInputActive
}

func (g *Gui) deleteFilterChar() error {
	if g.filterCursorPos > 0 && len(g.filterInputText) > 0 {
		g.filterInputText = g.filterInputText[:g.filterCursorPos-1] + g.filterInputText[g.filterCursorPos:]
		g.filterCursorPos--
	}
	return g.setQuery(g.filterInputText)
}

// insertFilterChar inserts a character at the cursor position
func (g *Gui) insertFilterChar(ch rune) error {
	g.filterInputText = g.filterInputText[:g.filterCursorPos] + string(ch) + g.filterInputText[g.filterCursorPos:]
	g.filterCursorPos += len(string(ch))
	return g.setQuery(g.filterInputText)
}

// setQuery filters the catalog live and puts the cursor on the first match
func (g *Gui) setQuery(query string) error {
	g.apply("search", session.SetQuery{Query: query})
	g.catalogIdx = 0
	return g.redraw()
}

// resultSummary is the search result counter shown under the catalog
func (g *Gui) resultSummary() string {
	n := len(g.state.Filtered())
	noun := "icons"
	if n == 1 {
		noun = "icon"
	}
	if !g.hasActiveFilter() {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("Found %d %s matching %q", n, noun, g.state.Query)
}
