package gazetteer

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/gazetteer/pkg/gazetteers"
	"github.com/agentstation/gazetteer/pkg/sources"
)

// config holds the assembled configuration for a Gazetteer instance.
type config struct {
	title            string
	userAgent        string
	requestInterval  time.Duration
	geoNamesUsername string
	enabled          []sources.ID
	clock            gazetteers.Clock
	logger           *zerolog.Logger
	sources          *sources.Sources
	local            *gazetteers.Local
}

func defaultConfig() *config {
	return &config{}
}

// Option is a function that configures a Gazetteer instance.
type Option func(*config) error

// WithTitle sets the title of the local gazetteer.
func WithTitle(title string) Option {
	return func(c *config) error {
		c.title = title
		return nil
	}
}

// WithUserAgent sets the User-Agent sent to external services. Upstream
// gazetteers expect a unique, contactable identifier.
func WithUserAgent(ua string) Option {
	return func(c *config) error {
		c.userAgent = ua
		return nil
	}
}

// WithRequestInterval sets the minimum spacing between requests to a
// single external host.
func WithRequestInterval(d time.Duration) Option {
	return func(c *config) error {
		c.requestInterval = d
		return nil
	}
}

// WithGeoNamesUsername sets the registered GeoNames account name. The
// geonames source is left out when it is empty.
func WithGeoNamesUsername(username string) Option {
	return func(c *config) error {
		c.geoNamesUsername = username
		return nil
	}
}

// WithEnabledSources restricts which source adapters are constructed.
func WithEnabledSources(ids ...sources.ID) Option {
	return func(c *config) error {
		c.enabled = ids
		return nil
	}
}

// WithClock sets the clock used for journal timestamps, letting tests
// inject deterministic time.
func WithClock(clock gazetteers.Clock) Option {
	return func(c *config) error {
		c.clock = clock
		return nil
	}
}

// WithLogger sets the logger used for instance-level events. Without it
// the logger travels on the context, falling back to the package default.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

// WithSources replaces the built-in source registry entirely.
func WithSources(s *sources.Sources) Option {
	return func(c *config) error {
		c.sources = s
		return nil
	}
}

// WithLocal sets the initial local gazetteer collection.
func WithLocal(l *gazetteers.Local) Option {
	return func(c *config) error {
		c.local = l
		return nil
	}
}
