package gui

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jesseduffield/gocui"
	"github.com/marjoballabani/lazyicons/pkg/gui/icons"
	"github.com/marjoballabani/lazyicons/pkg/skillicons"
)

// settingsHeight fits one row per setting plus borders
const settingsHeight = settingCount + 2

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// visibleLen is the printed width of s without ANSI escapes
func visibleLen(s string) int {
	return len([]rune(ansiPattern.ReplaceAllString(s, "")))
}

func (g *Gui) Layout(gui *gocui.Gui) error {
	maxX, maxY := gui.Size()

	// Background view (covers entire screen, behind everything)
	if v, err := gui.SetView(g.views.background, -1, -1, maxX, maxY, 0); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Frame = false
		v.BgColor = gocui.ColorDefault
		v.FgColor = gocui.ColorDefault
	}

	g.clampCursors()

	// Left column (1/3 of screen): settings, selected, catalog
	leftWidth := maxX / 3
	leftHeight := maxY - 3 // Leave room for help bar
	settingsEnd, selectedEnd := leftSplit(leftHeight, g.currentColumn)
	commandsHeight := 3

	if err := g.setPanel(gui, g.views.settings, 0, 0, leftWidth-1, settingsEnd-1); err != nil {
		return err
	}
	if v, err := gui.View(g.views.settings); err == nil {
		g.styleFrame(gui, v, g.currentColumn == columnSettings, false)
		v.Title = " " + icons.SETTINGS_ICON + " Settings "
		v.Footer = ""
		g.updateSettingsView(v)
	}

	if err := g.setPanel(gui, g.views.selected, 0, settingsEnd, leftWidth-1, selectedEnd-1); err != nil {
		return err
	}
	if v, err := gui.View(g.views.selected); err == nil {
		_, moving := g.state.Dragging()
		g.styleFrame(gui, v, g.currentColumn == columnSelected, moving)
		v.Title = " " + icons.SELECTED_ICON + " Selected "
		if moving {
			v.Title = " " + icons.SELECTED_ICON + " Selected (moving) "
		}
		n := g.state.Selection.Len()
		if n > 0 {
			v.Footer = fmt.Sprintf("%d of %d", g.selectedIdx+1, n)
		} else {
			v.Footer = "0 of 0"
		}
		g.updateSelectedView(v)
	}

	if err := g.setPanel(gui, g.views.catalog, 0, selectedEnd, leftWidth-1, maxY-3); err != nil {
		return err
	}
	if v, err := gui.View(g.views.catalog); err == nil {
		// Filter colour once the query is committed, not while typing
		g.styleFrame(gui, v, g.currentColumn == columnCatalog, g.hasActiveFilter() && !g.isFiltering())
		v.Title = " " + icons.CATALOG_ICON + " Catalog "
		filtered := g.state.Filtered()
		if g.hasActiveFilter() || g.isFiltering() {
			v.Footer = fmt.Sprintf("%d/%d matched", len(filtered), g.state.Catalog.Len())
		} else if len(filtered) > 0 {
			v.Footer = fmt.Sprintf("%d of %d", g.catalogIdx+1, len(filtered))
		} else {
			v.Footer = "0 of 0"
		}
		g.updateCatalogView(v)
	}

	// Output panel (top-right, big)
	if err := g.setPanel(gui, g.views.output, leftWidth, 0, maxX-1, maxY-commandsHeight-3); err != nil {
		return err
	}
	if v, err := gui.View(g.views.output); err == nil {
		isFocused := g.currentColumn == columnOutput
		g.styleFrame(gui, v, isFocused, false)
		v.Highlight = false
		v.Wrap = true
		v.Title = " " + icons.OUTPUT_ICON + " Output "
		if isFocused {
			v.Title = " " + icons.OUTPUT_ICON + " Output (j/k scroll) "
		}
		s := g.state.Settings
		v.Footer = fmt.Sprintf("%s · %d per line · %s", s.Theme, s.PerLine, s.Alignment)
		v.SetContent(g.outputContent())
		v.SetOrigin(0, g.outputScroll)
	}

	// Commands panel (bottom-right, single row)
	if err := g.setPanel(gui, g.views.commands, leftWidth, maxY-commandsHeight-2, maxX-1, maxY-3); err != nil {
		return err
	}
	if v, err := gui.View(g.views.commands); err == nil {
		v.Title = " " + icons.COMMAND_ICON + " Commands "
		g.updateCommandsView(v)
	}

	// Help bar (bottom, full width)
	if v, err := gui.SetView(g.views.help, 0, maxY-2, maxX-1, maxY, 0); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Frame = false
		v.BgColor = gocui.ColorDefault
		v.FgColor = gocui.ColorDefault
		v.SelBgColor = gocui.ColorDefault
		v.SelFgColor = gocui.ColorDefault
	}

	if v, err := gui.View(g.views.help); err == nil {
		g.updateHelpView(v)
	}

	// Help modal (keyboard shortcuts)
	if g.helpOpen && g.helpPopup != nil {
		modalWidth := 50
		modalHeight := len(g.helpPopup.Items) + 3
		if modalHeight > maxY-4 {
			modalHeight = maxY - 4
		}
		modalX := (maxX - modalWidth) / 2
		modalY := (maxY - modalHeight) / 2

		name := g.helpPopup.ViewName()
		if v, err := gui.SetView(name, modalX, modalY, modalX+modalWidth, modalY+modalHeight, 0); err != nil {
			if !errors.Is(err, gocui.ErrUnknownView) {
				return err
			}
			v.Title = " " + icons.KEYBOARD_ICON + " " + g.helpPopup.Title + " "
			v.TitleColor = g.theme.ActiveBorderColor
			v.FrameColor = g.theme.ActiveBorderColor
			v.FrameRunes = g.roundedFrameRunes
			v.SelBgColor = g.theme.SelectedLineBgColor
			v.SelFgColor = gocui.ColorDefault
		}

		if v, err := gui.View(name); err == nil {
			g.renderHelpContent(v)
			if _, err := gui.SetCurrentView(name); err != nil {
				return fmt.Errorf("failed to set help view: %w", err)
			}
		}

		return nil
	}
	gui.DeleteView(g.views.helpModal)

	// Modal (centered popup for command logs)
	if g.modalOpen {
		modalWidth := maxX - 10
		modalHeight := 15
		if modalHeight > maxY-6 {
			modalHeight = maxY - 6
		}
		modalX := (maxX - modalWidth) / 2
		modalY := (maxY - modalHeight) / 2

		if v, err := gui.SetView(g.views.modal, modalX, modalY, modalX+modalWidth, modalY+modalHeight, 0); err != nil {
			if !errors.Is(err, gocui.ErrUnknownView) {
				return err
			}
			v.Title = " Command Log "
			v.BgColor = gocui.ColorDefault
			v.FgColor = gocui.ColorDefault
			v.SelBgColor = gocui.ColorDefault
			v.SelFgColor = gocui.ColorDefault
			v.FrameRunes = g.roundedFrameRunes
			v.Wrap = true
		}

		if v, err := gui.View(g.views.modal); err == nil {
			v.SetContent(renderCommandLog(g.commandHistory))
			if _, err := gui.SetCurrentView(g.views.modal); err != nil {
				return fmt.Errorf("failed to set modal view: %w", err)
			}
		}

		return nil
	}
	gui.DeleteView(g.views.modal)

	if _, err := gui.SetCurrentView(g.currentColumn); err != nil {
		return fmt.Errorf("failed to set current view '%s': %w", g.currentColumn, err)
	}

	return nil
}

// leftSplit returns where the settings and selected panels end. Settings has
// a fixed height; the focused list of the other two gets the bigger share.
func leftSplit(leftHeight int, column string) (settingsEnd, selectedEnd int) {
	remaining := leftHeight - settingsHeight
	selected := remaining / 3
	if column == columnSelected {
		selected = remaining * 2 / 3
	}
	if selected < 3 {
		selected = 3
	}
	return settingsHeight, settingsHeight + selected
}

// setPanel creates or resizes one of the framed panels
func (g *Gui) setPanel(gui *gocui.Gui, name string, x0, y0, x1, y1 int) error {
	v, err := gui.SetView(name, x0, y0, x1, y1, 0)
	if err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.TitleColor = g.theme.InactiveBorderColor
		v.BgColor = gocui.ColorDefault
		v.FgColor = gocui.ColorDefault
		v.SelBgColor = g.theme.SelectedLineBgColor
		v.SelFgColor = gocui.ColorDefault
		v.FrameRunes = g.roundedFrameRunes
	}
	return nil
}

// styleFrame colours a panel border: filter colour when focused and marked,
// active colour when focused, inactive otherwise.
func (g *Gui) styleFrame(gui *gocui.Gui, v *gocui.View, isFocused, marked bool) {
	switch {
	case isFocused && marked:
		// Must set global SelFrameColor because gocui uses it for focused views
		gui.SelFrameColor = g.theme.FilterBorderColor
		gui.SelFgColor = g.theme.FilterBorderColor
		v.TitleColor = g.theme.FilterBorderColor
		v.FrameColor = g.theme.FilterBorderColor
	case isFocused:
		gui.SelFrameColor = g.theme.ActiveBorderColor
		gui.SelFgColor = g.theme.ActiveBorderColor
		v.TitleColor = g.theme.ActiveBorderColor
		v.FrameColor = g.theme.ActiveBorderColor
	default:
		v.TitleColor = g.theme.InactiveBorderColor
		v.FrameColor = g.theme.InactiveBorderColor
	}
}

func (g *Gui) updateSettingsView(v *gocui.View) {
	v.Highlight = g.currentColumn == columnSettings
	v.SetContent(strings.Join(renderSettingsLines(g.state.Settings), "\n"))
	if v.Highlight {
		v.FocusPoint(0, g.settingsIdx, true)
	}
}

func renderSettingsLines(s skillicons.Settings) []string {
	themeIcon := icons.MOON
	if s.Theme == skillicons.ThemeLight {
		themeIcon = icons.SUN
	}
	alignIcon := icons.ALIGN_LEFT
	if s.Alignment == skillicons.AlignCenter {
		alignIcon = icons.ALIGN_CENTER
	}
	return []string{
		fmt.Sprintf(" \033[33mTheme\033[0m      %s %s", s.Theme, themeIcon),
		fmt.Sprintf(" \033[33mPer line\033[0m   %s %2d %s", icons.ARROW_LEFT, s.PerLine, icons.ARROW_RIGHT),
		fmt.Sprintf(" \033[33mAlignment\033[0m  %s %s", s.Alignment, alignIcon),
	}
}

func (g *Gui) updateSelectedView(v *gocui.View) {
	items := g.state.Selection.Items()
	v.Highlight = g.currentColumn == columnSelected && len(items) > 0

	if len(items) == 0 {
		v.SetContent("\033[90m  Nothing selected yet\033[0m")
		return
	}

	from, moving := g.state.Dragging()
	if !moving {
		from = -1
	}
	v.SetContent(strings.Join(renderSelectedLines(items, from, g.getActiveColorCode()), "\n"))
	v.FocusPoint(0, g.selectedIdx, v.Highlight)
}

// renderSelectedLines numbers the selection in order. grabbed is the index
// of the icon being moved, or -1.
func renderSelectedLines(items []skillicons.IconID, grabbed int, markColor string) []string {
	lines := make([]string, len(items))
	width := len(fmt.Sprint(len(items)))
	for i, id := range items {
		if i == grabbed {
			lines[i] = fmt.Sprintf("%s%s\033[0m %*d. \033[33m%s\033[0m", markColor, icons.GRAB, width, i+1, id)
			continue
		}
		lines[i] = fmt.Sprintf("  %*d. %s", width, i+1, id)
	}
	return lines
}

func (g *Gui) updateCatalogView(v *gocui.View) {
	filtered := g.state.Filtered()
	v.Highlight = g.currentColumn == columnCatalog && len(filtered) > 0

	if len(filtered) == 0 {
		v.SetContent(fmt.Sprintf("\033[90m  No icons match %q\033[0m", g.state.Query))
		return
	}

	v.SetContent(strings.Join(renderCatalogLines(filtered, g.state.Selection, g.getActiveColorCode()), "\n"))
	v.FocusPoint(0, g.catalogIdx, v.Highlight)
}

// renderCatalogLines marks catalog entries that are already selected
func renderCatalogLines(ids []skillicons.IconID, selection *skillicons.Selection, markColor string) []string {
	lines := make([]string, len(ids))
	for i, id := range ids {
		if selection.Contains(id) {
			lines[i] = fmt.Sprintf("%s%s\033[0m %s", markColor, icons.CHECK, id)
		} else {
			lines[i] = fmt.Sprintf("  %s", id)
		}
	}
	return lines
}

func (g *Gui) outputContent() string {
	hovered := skillicons.IconID("")
	if g.currentColumn == columnCatalog {
		hovered, _ = g.hoveredCatalogIcon()
	}
	var label string
	if g.notifier != nil {
		label = g.notifier.Label()
	}
	return renderOutput(outputView{
		output:    g.state.Output(),
		alignment: g.state.Settings.Alignment,
		hasOutput: g.state.HasOutput(),
		copied:    label,
		hovered:   hovered,
		summary:   g.resultSummary(),
	}, g.highlights.Highlight)
}

// outputView is everything the output panel shows
type outputView struct {
	output    skillicons.Output
	alignment skillicons.Alignment
	hasOutput bool
	copied    string
	hovered   skillicons.IconID
	summary   string
}

func renderOutput(o outputView, highlight func(source, language string) string) string {
	var b strings.Builder

	if !o.hasOutput {
		b.WriteString(sectionHeader("Output", false))
		b.WriteString("\n")
		b.WriteString("\033[90m  Select icons from the catalog to build your badge.\033[0m\n")
		b.WriteString("\033[90m  Space adds the icon under the cursor, / searches.\033[0m\n")
	} else {
		b.WriteString(sectionHeader("URL", o.copied == copyURL))
		b.WriteString(o.output.URL)
		b.WriteString("\n\n")

		// The markdown badge cannot be centered, only the HTML form is offered
		if o.alignment != skillicons.AlignCenter {
			b.WriteString(sectionHeader("Markdown", o.copied == copyMarkdown))
			b.WriteString(highlight(o.output.Badge, "markdown"))
			b.WriteString("\n\n")
		}

		b.WriteString(sectionHeader("HTML", o.copied == copyHTML))
		b.WriteString(highlight(o.output.Embed, "html"))
		b.WriteString("\n")
	}

	if o.hovered != "" {
		b.WriteString("\n")
		b.WriteString(sectionHeader("Preview", false))
		fmt.Fprintf(&b, "  \033[33m%s\033[0m  %s\n", o.hovered, skillicons.IconURL(o.hovered))
		fmt.Fprintf(&b, "\033[90m  %s\033[0m\n", o.summary)
	}

	return b.String()
}

func sectionHeader(title string, copied bool) string {
	header := fmt.Sprintf("\033[36m─── %s ───\033[0m", title)
	if copied {
		header += fmt.Sprintf("  \033[32m%s Copied!\033[0m", icons.COPY)
	}
	return header + "\n"
}

func renderCommandLog(history []CommandExecution) string {
	var b strings.Builder
	if len(history) == 0 {
		b.WriteString("  No commands yet\n")
	} else {
		for _, cmd := range history {
			statusColor := "\033[32m" // Green
			switch cmd.Status {
			case "error":
				statusColor = "\033[31m" // Red
			case "running":
				statusColor = "\033[33m" // Yellow
			}
			fmt.Fprintf(&b, "  [%s] %s%s\033[0m: %s\n", cmd.Timestamp, statusColor, cmd.Command, cmd.Description)
		}
	}
	b.WriteString("\n")
	b.WriteString("  \033[36mPress Esc or @ to close\033[0m")
	return b.String()
}

func (g *Gui) updateCommandsView(v *gocui.View) {
	v.Clear()

	if len(g.commandHistory) == 0 {
		return
	}

	// Show last command
	cmd := g.commandHistory[len(g.commandHistory)-1]

	var statusIcon, statusColor string
	switch cmd.Status {
	case "running":
		statusIcon = icons.LOADING
		statusColor = "\033[33m" // Yellow
	case "error":
		statusIcon = icons.ERROR
		statusColor = "\033[31m" // Red
	case "success":
		statusIcon = icons.SUCCESS
		statusColor = "\033[32m" // Green
	default:
		statusIcon = "•"
		statusColor = "\033[0m"
	}

	fmt.Fprintf(v, "%s%s %s\033[0m %s",
		statusColor,
		statusIcon,
		cmd.Command,
		cmd.Description)
}

func (g *Gui) updateHelpView(v *gocui.View) {
	v.Clear()
	width, _ := v.Size()
	fmt.Fprint(v, g.helpBarText(width))
}

// helpBarText is the bottom line: the search box while typing, the mode
// banner while moving, otherwise the key hints with the version right-aligned.
func (g *Gui) helpBarText(width int) string {
	if g.filterInputActive {
		beforeCursor := g.filterInputText[:g.filterCursorPos]
		afterCursor := g.filterInputText[g.filterCursorPos:]
		// Cursor shown as reverse video - highlight char at cursor or space if at end
		cursorChar, rest := " ", ""
		if len(afterCursor) > 0 {
			cursorChar = afterCursor[:1]
			rest = afterCursor[1:]
		}
		return fmt.Sprintf(" \033[33m%s Search catalog:\033[0m %s\033[7m%s\033[0m%s  \033[90m(%s, Enter to keep, Esc to cancel)\033[0m",
			icons.SEARCH, beforeCursor, cursorChar, rest, g.resultSummary())
	}

	if _, ok := g.state.Dragging(); ok {
		return " \033[33m-- MOVE --\033[0m  \033[90m(j/k to pick a spot, m/Space to drop, Esc to cancel)\033[0m"
	}

	if g.hasActiveFilter() && g.currentColumn == columnCatalog {
		return fmt.Sprintf(" \033[33mCatalog filtered:\033[0m '%s'  \033[90m(%s, Esc to clear filter)\033[0m", g.state.Query, g.resultSummary())
	}

	helpText := " \033[36m←/→\033[0m cols  \033[36mj/k\033[0m move  \033[33mspace\033[0m toggle  \033[33mm\033[0m reorder  \033[32mc/e/u\033[0m copy  \033[35m/\033[0m search  \033[35m?\033[0m help  \033[31mq\033[0m quit"
	versionText := fmt.Sprintf("\033[90mv%s\033[0m ", g.version)

	padding := width - visibleLen(helpText) - visibleLen(versionText)
	if padding < 1 {
		padding = 1
	}
	return fmt.Sprintf("%s%*s%s", helpText, padding, "", versionText)
}
