// Package gazetteer assembles a local gazetteer of places from external
// gazetteer services. Searching and detail retrieval go through source
// adapters; every accessioned record carries its provenance journal and
// an externals crosswalk back to the documents it came from.
package gazetteer

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/gazetteer/internal/sources/registry"
	"github.com/agentstation/gazetteer/pkg/errors"
	"github.com/agentstation/gazetteer/pkg/gazetteers"
	"github.com/agentstation/gazetteer/pkg/logging"
	"github.com/agentstation/gazetteer/pkg/save"
	"github.com/agentstation/gazetteer/pkg/sources"
)

// Gazetteer manages a local gazetteer and its external sources.
type Gazetteer interface {
	// Local returns the local gazetteer collection
	Local() *gazetteers.Local

	// Sources returns the registered source adapters
	Sources() *sources.Sources

	// Search queries one external source by ID
	Search(ctx context.Context, id sources.ID, query string) ([]sources.SearchHit, error)

	// Accession fetches a detail URI through whichever source claims its
	// host and adds the resulting place to the local gazetteer
	Accession(ctx context.Context, detailURI string) (*gazetteers.Place, int, error)

	// AccessionHit accessions a search hit, falling back to the hit's
	// title and summary when the detail document lacks its own
	AccessionHit(ctx context.Context, hit sources.SearchHit) (*gazetteers.Place, int, error)

	// Persistence handles saving and loading the local gazetteer
	Persistence
}

// gazetteer is the internal implementation of the Gazetteer interface.
type gazetteer struct {
	mu      sync.RWMutex
	local   *gazetteers.Local
	sources *sources.Sources
	config  *config
}

// New creates a new Gazetteer instance with the given options.
func New(opts ...Option) (Gazetteer, error) {
	g := &gazetteer{config: defaultConfig()}
	if err := g.options(opts...); err != nil {
		return nil, err
	}

	if g.config.local != nil {
		g.local = g.config.local
	} else {
		localOpts := []gazetteers.LocalOption{}
		if g.config.clock != nil {
			localOpts = append(localOpts, gazetteers.WithClock(g.config.clock))
		}
		g.local = gazetteers.NewLocal(g.config.title, localOpts...)
	}

	if g.config.sources != nil {
		g.sources = g.config.sources
	} else {
		built, err := registry.Build(registry.Config{
			UserAgent:        g.config.userAgent,
			RequestInterval:  g.config.requestInterval,
			GeoNamesUsername: g.config.geoNamesUsername,
			Enabled:          g.config.enabled,
		})
		if err != nil {
			return nil, err
		}
		g.sources = built
	}
	return g, nil
}

// options applies the given options to the config.
func (g *gazetteer) options(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(g.config); err != nil {
			return err
		}
	}
	return nil
}

// logger resolves the instance logger, then the context logger, then the
// package default.
func (g *gazetteer) logger(ctx context.Context) *zerolog.Logger {
	if g.config.logger != nil {
		return g.config.logger
	}
	return logging.Ctx(ctx)
}

// Local returns the local gazetteer collection.
func (g *gazetteer) Local() *gazetteers.Local {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.local
}

// Sources returns the registered source adapters.
func (g *gazetteer) Sources() *sources.Sources {
	return g.sources
}

// Search queries one external source by ID.
func (g *gazetteer) Search(ctx context.Context, id sources.ID, query string) ([]sources.SearchHit, error) {
	src, ok := g.sources.Get(id)
	if !ok {
		return nil, errors.NewNotFoundError("source", id.String())
	}
	g.logger(ctx).Debug().
		Str("source", id.String()).
		Str("query", query).
		Msg("Searching external gazetteer")
	return src.Search(ctx, query)
}

// Accession fetches a detail URI and adds the resulting place.
func (g *gazetteer) Accession(ctx context.Context, detailURI string) (*gazetteers.Place, int, error) {
	return g.accession(ctx, detailURI, nil)
}

// AccessionHit accessions a search hit. The hit's title and summary
// fill in for detail documents that carry neither.
func (g *gazetteer) AccessionHit(ctx context.Context, hit sources.SearchHit) (*gazetteers.Place, int, error) {
	return g.accession(ctx, hit.DetailURI, &hit)
}

func (g *gazetteer) accession(ctx context.Context, detailURI string, hit *sources.SearchHit) (*gazetteers.Place, int, error) {
	src, ok := g.sources.ForURI(detailURI)
	if !ok {
		return nil, 0, errors.NewNotFoundError("source for URI", detailURI)
	}
	rec, err := src.FetchDetail(ctx, detailURI)
	if err != nil {
		return nil, 0, err
	}
	if hit != nil {
		if rec.Title == "" {
			rec.Title = hit.Title
		}
		if rec.Summary == "" {
			rec.Summary = hit.Summary
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	place, position, err := g.local.CreateFrom(rec)
	if err != nil {
		return nil, 0, err
	}
	g.logger(ctx).Info().
		Str("source", src.ID().String()).
		Str("uri", detailURI).
		Str("title", place.Title).
		Int("position", position).
		Msg("Accessioned place")
	return place, position, nil
}

// Save persists the local gazetteer.
func (g *gazetteer) Save(opts ...save.Option) error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return save.Gazetteer(g.local, opts...)
}

// Load replaces the local gazetteer with one read from path.
func (g *gazetteer) Load(path string) error {
	localOpts := []gazetteers.LocalOption{}
	if g.config.clock != nil {
		localOpts = append(localOpts, gazetteers.WithClock(g.config.clock))
	}
	loaded, err := save.Load(path, localOpts...)
	if err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.local = loaded
	return nil
}
