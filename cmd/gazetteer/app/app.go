// Package app provides the application context and dependency management
// for the gazetteer CLI. It centralizes configuration, logging, and the
// gazetteer instance behind one lazily initialized App.
package app

import (
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/gazetteer"
	"github.com/agentstation/gazetteer/pkg/errors"
	"github.com/agentstation/gazetteer/pkg/save"
	"github.com/agentstation/gazetteer/pkg/sources"
)

// App represents the gazetteer application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Gazetteer instance (lazy-initialized, singleton)
	mu        sync.RWMutex
	gazetteer gazetteer.Gazetteer
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
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

// Version returns the version information.
func (a *App) Version() string { return a.version }

// Commit returns the git commit hash.
func (a *App) Commit() string { return a.commit }

// Date returns the build date.
func (a *App) Date() string { return a.date }

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string { return a.builtBy }

// Config returns the application configuration.
func (a *App) Config() *Config { return a.config }

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger { return a.logger }

// Verbose reports whether verbose output was requested.
func (a *App) Verbose() bool { return a.config.Verbose }

// DataFile returns the path of the working gazetteer file.
func (a *App) DataFile() string { return a.config.DataFile() }

// Gazetteer returns the gazetteer instance, creating it lazily. The
// working gazetteer file is loaded when it exists; otherwise the
// instance starts empty and the file appears on the first Persist.
func (a *App) Gazetteer() (gazetteer.Gazetteer, error) {
	a.mu.RLock()
	if a.gazetteer != nil {
		g := a.gazetteer
		a.mu.RUnlock()
		return g, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.gazetteer != nil {
		return a.gazetteer, nil
	}

	g, err := gazetteer.New(a.buildGazetteerOptions()...)
	if err != nil {
		return nil, err
	}
	if path := a.config.DataFile(); path != "" {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := g.Load(path); err != nil {
				return nil, err
			}
		}
	}
	a.gazetteer = g
	return g, nil
}

// Persist writes the working gazetteer back to the data file.
func (a *App) Persist() error {
	a.mu.RLock()
	g := a.gazetteer
	a.mu.RUnlock()
	if g == nil {
		return nil
	}
	path := a.config.DataFile()
	if path == "" {
		return errors.NewValidationError("data_dir", "", "no data directory configured")
	}
	return g.Save(save.WithPath(path))
}

// buildGazetteerOptions constructs gazetteer options from the app
// configuration.
func (a *App) buildGazetteerOptions() []gazetteer.Option {
	opts := []gazetteer.Option{}
	if a.logger != nil {
		opts = append(opts, gazetteer.WithLogger(a.logger))
	}
	if a.config.Title != "" {
		opts = append(opts, gazetteer.WithTitle(a.config.Title))
	}
	if a.config.UserAgent != "" {
		opts = append(opts, gazetteer.WithUserAgent(a.config.UserAgent))
	}
	if a.config.GeoNamesUsername != "" {
		opts = append(opts, gazetteer.WithGeoNamesUsername(a.config.GeoNamesUsername))
	}
	if a.config.RequestInterval > 0 {
		opts = append(opts, gazetteer.WithRequestInterval(a.config.RequestInterval))
	}
	if len(a.config.Sources) > 0 {
		ids := make([]sources.ID, 0, len(a.config.Sources))
		for _, s := range a.config.Sources {
			ids = append(ids, sources.ID(s))
		}
		opts = append(opts, gazetteer.WithEnabledSources(ids...))
	}
	return opts
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

// WithGazetteer sets a custom gazetteer instance (useful for testing).
func WithGazetteer(g gazetteer.Gazetteer) Option {
	return func(a *App) error {
		a.gazetteer = g
		return nil
	}
}
