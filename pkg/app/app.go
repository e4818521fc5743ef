// Package app wires configuration, logging, the icon session and the GUI
// together for lazyicons.
package app

import (
	"strings"

	"github.com/marjoballabani/lazyicons/pkg/config"
	"github.com/marjoballabani/lazyicons/pkg/gui"
	"github.com/marjoballabani/lazyicons/pkg/logging"
	"github.com/marjoballabani/lazyicons/pkg/session"
	"github.com/marjoballabani/lazyicons/pkg/skillicons"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// BuildInfo contains version information set at compile time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// App is the main application struct that holds all components.
type App struct {
	buildInfo *BuildInfo
	config    *config.Config
	logger    *zap.Logger
	catalog   *skillicons.Catalog
	settings  skillicons.Settings
	mode      skillicons.SearchMode
	gui       *gui.Gui
}

// NewApp loads the configuration and the icon catalog. configPath may be
// empty to use the default search locations. The GUI is not created yet.
func NewApp(buildInfo *BuildInfo, configPath string) (*App, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, errors.Wrap(err, "failed to set up logging")
	}

	catalog, err := cfg.LoadCatalog()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load icon catalog")
	}

	settings, err := cfg.Settings()
	if err != nil {
		return nil, errors.Wrap(err, "invalid defaults")
	}

	mode, err := cfg.SearchMode()
	if err != nil {
		return nil, err
	}

	logger.Info("starting lazyicons",
		zap.String("version", buildInfo.Version),
		zap.String("commit", buildInfo.Commit),
		zap.Int("icons", catalog.Len()),
		zap.String("searchMode", string(mode)),
	)

	return &App{
		buildInfo: buildInfo,
		config:    cfg,
		logger:    logger,
		catalog:   catalog,
		settings:  settings,
		mode:      mode,
	}, nil
}

// Settings are the output settings a new session starts with.
func (app *App) Settings() skillicons.Settings {
	return app.settings
}

// SetSettings overrides the configured defaults, e.g. from command line flags.
func (app *App) SetSettings(settings skillicons.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	app.settings = settings
	return nil
}

// Run starts the terminal UI and blocks until the user quits.
func (app *App) Run() error {
	defer app.logger.Sync() //nolint:errcheck

	state := session.NewState(app.catalog, app.settings, app.mode)
	notifier := session.NewNotifier(session.SystemClipboard{}, app.config.Clipboard.ClearAfter)
	defer notifier.Stop()

	g, err := gui.NewGui(app.config, state, notifier, app.logger, app.buildInfo.Version)
	if err != nil {
		return errors.Wrap(err, "failed to initialize GUI")
	}
	app.gui = g

	config.WatchConfig(app.gui.ReloadConfig)

	return app.gui.Run()
}

// Render builds the output for ids without starting the UI. Every id must be
// in the catalog; repeated ids are kept once, in first-seen order.
func (app *App) Render(ids []string) (skillicons.Output, error) {
	var known []skillicons.IconID
	var unknown []string
	for _, raw := range ids {
		id := skillicons.IconID(strings.TrimSpace(raw))
		if !app.catalog.Contains(id) {
			unknown = append(unknown, raw)
			continue
		}
		known = append(known, id)
	}
	if len(unknown) > 0 {
		return skillicons.Output{}, errors.Errorf("unknown icon(s): %s", strings.Join(unknown, ", "))
	}

	selection := skillicons.NewSelection(known...)
	if selection.Len() == 0 {
		return skillicons.Output{}, errors.New("no icons given")
	}

	app.logger.Debug("rendered icons", zap.Int("count", selection.Len()))
	return skillicons.Render(selection, app.settings), nil
}

// SearchCatalog lists catalog ids matching query with the configured
// search mode. An empty query lists the whole catalog.
func (app *App) SearchCatalog(query string) []skillicons.IconID {
	return skillicons.Search(app.catalog.IDs(), query, app.mode)
}
