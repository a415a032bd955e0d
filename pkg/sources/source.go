// Package sources defines the normalization contract between external
// gazetteer services and the core data model. Each supported service is
// one Source implementation that searches its upstream API and converts
// detail documents into the single normalized Record shape; the core
// never branches on which service a record came from.
//
// Example usage:
//
//	src, ok := registry.Get(sources.PleiadesID)
//	if !ok {
//	    log.Fatal("pleiades not enabled")
//	}
//	hits, err := src.Search(ctx, "Zucchabar")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rec, err := src.FetchDetail(ctx, hits[0].DetailURI)
package sources

import (
	"context"
	"net/url"
	"slices"
	"sync"

	"github.com/agentstation/gazetteer/pkg/gazetteers"
)

// ID represents the identifier of an external gazetteer source.
type ID string

// String returns the string representation of a source ID.
func (id ID) String() string {
	return string(id)
}

// Supported source IDs.
const (
	PleiadesID  ID = "pleiades"
	NominatimID ID = "nominatim"
	GeoNamesID  ID = "geonames"
)

// IDs returns all known source IDs.
func IDs() []ID {
	return []ID{PleiadesID, NominatimID, GeoNamesID}
}

// IsValid returns true if the ID is one of the defined constants.
func (id ID) IsValid() bool {
	return slices.Contains(IDs(), id)
}

// SearchHit is one result row from an external gazetteer search.
type SearchHit struct {
	Title     string
	Summary   string
	DetailURI string
}

// Source is one external gazetteer service adapter. Implementations do
// all network retrieval and normalization; the core only ever sees the
// resulting Record.
type Source interface {
	// ID returns the identifier of this source
	ID() ID

	// Netlocs returns the host names whose URIs this source can resolve
	Netlocs() []string

	// Search queries the upstream service
	Search(ctx context.Context, query string) ([]SearchHit, error)

	// FetchDetail retrieves and normalizes one detail document
	FetchDetail(ctx context.Context, detailURI string) (*gazetteers.Record, error)
}

// Sources is a thread-safe container for managing source adapters.
type Sources struct {
	mu      sync.RWMutex
	sources map[ID]Source
}

// NewSources creates a new Sources instance.
func NewSources() *Sources {
	return &Sources{sources: make(map[ID]Source)}
}

// Get returns a source by ID.
func (s *Sources) Get(id ID) (Source, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	src, found := s.sources[id]
	return src, found
}

// Set registers a source by its ID.
func (s *Sources) Set(src Source) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sources[src.ID()] = src
}

// Delete removes a source by ID.
func (s *Sources) Delete(id ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sources, id)
}

// Len returns the number of registered sources.
func (s *Sources) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sources)
}

// List returns a slice of all registered sources.
func (s *Sources) List() []Source {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]Source, 0, len(s.sources))
	for _, src := range s.sources {
		list = append(list, src)
	}
	return list
}

// ForURI routes a detail URI to the source whose netlocs claim its host,
// mirroring how researchers paste URIs from any supported service.
func (s *Sources) ForURI(uri string) (Source, bool) {
	u, err := url.Parse(uri)
	if err != nil || u.Host == "" {
		return nil, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, src := range s.sources {
		if slices.Contains(src.Netlocs(), u.Host) {
			return src, true
		}
	}
	return nil, false
}
