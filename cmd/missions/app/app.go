// Package app provides the application context and dependency wiring for
// the missions CLI. It centralizes configuration, logging, and construction
// of the reconciliation pipeline.
package app

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/planetary-society/missions/internal/fetch"
	"github.com/planetary-society/missions/pkg/errors"
	"github.com/planetary-society/missions/pkg/missions"
	"github.com/planetary-society/missions/pkg/reconcile"
	"github.com/planetary-society/missions/pkg/sources"
)

// App represents the missions application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger
}

// New creates a new App instance with the given version information.
func New(version, commit, date string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("app", "failed to load configuration", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version string.
func (a *App) Version() string {
	return a.version
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Store returns the mission record store.
func (a *App) Store() *missions.Store {
	return missions.NewStore(a.config.MissionsDir)
}

// Spreadsheet loads the primary spreadsheet source, downloading the CSV
// export or falling back to the local cache. A feed that cannot be loaded
// behaves as empty; every lookup then misses.
func (a *App) Spreadsheet(ctx context.Context) *sources.Spreadsheet {
	client := fetch.NewClient(a.config.DataDir)
	data := client.Dataset(ctx, "spreadsheet", a.config.SpreadsheetURL, sources.SpreadsheetFilename)
	return sources.NewSpreadsheet(data)
}

// Secondaries loads the secondary catalog sources in merge priority order.
func (a *App) Secondaries(ctx context.Context) []sources.Source {
	client := fetch.NewClient(a.config.DataDir)
	data := client.Dataset(ctx, "nssdca", a.config.NSSDCAURL, sources.NSSDCAFilename)
	return []sources.Source{sources.NewNSSDCA(data)}
}

// Reconciler builds a reconciliation engine over the configured sources
// and store. Sources that could not be loaded degrade to empty datasets
// upstream; their lookups miss per mission rather than failing the run.
func (a *App) Reconciler(ctx context.Context, force bool) (*reconcile.Reconciler, *sources.Spreadsheet, error) {
	primary := a.Spreadsheet(ctx)

	r, err := reconcile.New(primary, a.Store(),
		reconcile.WithSecondaries(a.Secondaries(ctx)...),
		reconcile.WithForceOverwrite(force),
	)
	if err != nil {
		return nil, nil, err
	}
	return r, primary, nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}
