// Package registry wires the supported source adapters onto a shared
// transport client. It is separate from the adapter packages to avoid
// circular dependencies.
package registry

import (
	"time"

	"github.com/agentstation/gazetteer/internal/sources/geonames"
	"github.com/agentstation/gazetteer/internal/sources/nominatim"
	"github.com/agentstation/gazetteer/internal/sources/pleiades"
	"github.com/agentstation/gazetteer/internal/transport"
	"github.com/agentstation/gazetteer/pkg/errors"
	"github.com/agentstation/gazetteer/pkg/sources"
)

// Config selects and parameterizes the source adapters.
type Config struct {
	// UserAgent identifies the operator to upstream services.
	UserAgent string
	// RequestInterval is the minimum spacing between requests to one
	// host; zero means the transport default.
	RequestInterval time.Duration
	// GeoNamesUsername is the registered GeoNames account name. The
	// geonames source is skipped when it is empty.
	GeoNamesUsername string
	// Enabled lists the sources to construct; nil means all supported.
	Enabled []sources.ID
}

// factories maps source IDs to their constructors.
var factories = map[sources.ID]func(*transport.Client, Config) sources.Source{
	sources.PleiadesID:  func(t *transport.Client, _ Config) sources.Source { return pleiades.NewClient(t) },
	sources.NominatimID: func(t *transport.Client, _ Config) sources.Source { return nominatim.NewClient(t) },
	sources.GeoNamesID: func(t *transport.Client, cfg Config) sources.Source {
		return geonames.NewClient(t, cfg.GeoNamesUsername)
	},
}

// Has checks if a source ID has an adapter implementation.
func Has(id sources.ID) bool {
	_, ok := factories[id]
	return ok
}

// Build constructs the enabled source adapters on one shared transport
// so that the per-host rate limits apply across all of them.
func Build(cfg Config, opts ...transport.Option) (*sources.Sources, error) {
	enabled := cfg.Enabled
	if enabled == nil {
		enabled = sources.IDs()
	}

	topts := make([]transport.Option, 0, len(opts)+2)
	if cfg.UserAgent != "" {
		topts = append(topts, transport.WithUserAgent(cfg.UserAgent))
	}
	if cfg.RequestInterval > 0 {
		topts = append(topts, transport.WithRequestInterval(cfg.RequestInterval))
	}
	topts = append(topts, opts...)
	t := transport.New(topts...)

	registry := sources.NewSources()
	for _, id := range enabled {
		factory, ok := factories[id]
		if !ok {
			return nil, errors.NewValidationError("source", id.String(), "unsupported source")
		}
		if id == sources.GeoNamesID && cfg.GeoNamesUsername == "" {
			// GeoNames is unusable without an account; leaving it out is
			// friendlier than failing every request later.
			continue
		}
		registry.Set(factory(t, cfg))
	}
	return registry, nil
}
