package gui

import (
	"fmt"
	"time"

	"github.com/jesseduffield/gocui"
	"github.com/marjoballabani/lazyicons/pkg/config"
	"github.com/marjoballabani/lazyicons/pkg/gui/icons"
	"github.com/marjoballabani/lazyicons/pkg/session"
	"go.uber.org/zap"
)

// Panel names double as gocui view names.
const (
	columnSettings = "settings"
	columnSelected = "selected"
	columnCatalog  = "catalog"
	columnOutput   = "output"
)

// Copy labels shown as "Copied!" next to the matching output block.
const (
	copyMarkdown = "markdown"
	copyHTML     = "html"
	copyURL      = "url"
)

// Settings panel rows
const (
	settingTheme = iota
	settingPerLine
	settingAlignment
	settingCount
)

type CommandExecution struct {
	Timestamp   string
	Command     string
	Description string
	Status      string
}

type Gui struct {
	g        *gocui.Gui
	config   *config.Config
	state    *session.State
	notifier *session.Notifier
	logger   *zap.Logger
	version  string
	theme    *Theme

	highlights *highlighter

	// Cursor per panel
	catalogIdx   int
	selectedIdx  int
	settingsIdx  int
	outputScroll int

	// Command execution tracking
	commandHistory []CommandExecution

	// View names
	views struct {
		background string
		settings   string
		selected   string
		catalog    string
		output     string
		commands   string
		help       string
		modal      string
		helpModal  string
	}

	currentColumn string

	// Modal state
	modalOpen bool
	helpOpen  bool
	helpPopup *Popup

	// Filter input (the catalog search box)
	filterInputActive bool
	filterInputText   string
	filterCursorPos   int

	// Frame styling
	roundedFrameRunes []rune
}

func NewGui(cfg *config.Config, state *session.State, notifier *session.Notifier, logger *zap.Logger, version string) (*Gui, error) {
	g, err := gocui.NewGui(gocui.NewGuiOpts{
		OutputMode:      gocui.OutputTrue,
		SupportOverlaps: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gui: %v", err)
	}

	gui := newGui(g, cfg, state, notifier, logger, version)

	// Configure gocui
	g.Cursor = false
	g.Mouse = true
	g.InputEsc = true
	g.ShowListFooter = true

	gui.applyFrameColors()

	g.SetManagerFunc(func(g *gocui.Gui) error {
		return gui.Layout(g)
	})

	if err := gui.setKeybindings(); err != nil {
		return nil, err
	}

	// The clear timer runs on its own goroutine; redraw from the main loop
	notifier.OnChange(func(string) {
		g.Update(func(*gocui.Gui) error { return nil })
	})

	gui.logCommand("init", fmt.Sprintf("Loaded %d icons", state.Catalog.Len()), "success")

	return gui, nil
}

// newGui builds the Gui state without a terminal. g may be nil in tests.
func newGui(g *gocui.Gui, cfg *config.Config, state *session.State, notifier *session.Notifier, logger *zap.Logger, version string) *Gui {
	configureIcons(cfg.UI)

	gui := &Gui{
		g:             g,
		config:        cfg,
		state:         state,
		notifier:      notifier,
		logger:        logger,
		version:       version,
		theme:         NewTheme(cfg.UI.Theme),
		highlights:    newHighlighter(cfg.UI.HighlightStyle),
		currentColumn: columnCatalog,
	}

	gui.views.background = "background"
	gui.views.settings = columnSettings
	gui.views.selected = columnSelected
	gui.views.catalog = columnCatalog
	gui.views.output = columnOutput
	gui.views.commands = "commands"
	gui.views.help = "help"
	gui.views.modal = "modal"
	gui.views.helpModal = "helpModal"

	// Rounded frame characters: ─ │ ╭ ╮ ╰ ╯
	gui.roundedFrameRunes = []rune{'─', '│', '╭', '╮', '╰', '╯'}

	return gui
}

func configureIcons(ui config.UIConfig) {
	if !ui.ShowIcons {
		icons.SetEnabled(false)
		return
	}
	switch ui.NerdFontsVersion {
	case "2":
		icons.PatchForNerdFontsV2()
	case "3":
		// Default v3 icons, nothing to do
	default:
		icons.SetEnabled(false)
	}
}

func (g *Gui) applyFrameColors() {
	if g.g == nil {
		return
	}
	g.g.BgColor = gocui.ColorDefault
	g.g.FgColor = gocui.ColorDefault
	g.g.FrameColor = g.theme.InactiveBorderColor
	g.g.SelFrameColor = g.theme.ActiveBorderColor
	g.g.SelFgColor = g.theme.ActiveBorderColor
	g.g.Highlight = true
}

// ReloadConfig swaps in the colours of a re-read config file. Safe to call
// from any goroutine.
func (g *Gui) ReloadConfig(cfg *config.Config) {
	g.g.Update(func(*gocui.Gui) error {
		g.config.UI.Theme = cfg.UI.Theme
		g.config.UI.HighlightStyle = cfg.UI.HighlightStyle
		g.theme = NewTheme(cfg.UI.Theme)
		g.highlights.setStyle(cfg.UI.HighlightStyle)
		g.applyFrameColors()
		g.logCommand("config", "Reloaded theme colors", "success")
		return nil
	})
}

func (g *Gui) getActiveColorCode() string {
	return g.theme.GetAnsiColorCode()
}

func (g *Gui) logCommand(command, description, status string) {
	timestamp := time.Now().Format("15:04:05")

	cmdExec := CommandExecution{
		Timestamp:   timestamp,
		Command:     command,
		Description: description,
		Status:      status,
	}

	g.commandHistory = append(g.commandHistory, cmdExec)

	// Keep only last 10 commands
	if len(g.commandHistory) > 10 {
		g.commandHistory = g.commandHistory[1:]
	}

	fields := []zap.Field{zap.String("command", command), zap.String("status", status)}
	if status == "error" {
		g.logger.Warn(description, fields...)
	} else {
		g.logger.Info(description, fields...)
	}
}

// redraw re-runs Layout when attached to a terminal.
func (g *Gui) redraw() error {
	if g.g == nil {
		return nil
	}
	return g.Layout(g.g)
}

func (g *Gui) Run() error {
	defer g.g.Close()

	if err := g.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}
