package gazetteers

import (
	"net/url"
	"sort"

	"github.com/agentstation/gazetteer/pkg/errors"
)

// Externals is a crosswalk from external identifier URIs to the set of
// source documents (typically API responses) that asserted a link to that
// identifier. Keys are never removed; when the same key recurs, the new
// sources are unioned into the existing set.
type Externals struct {
	order []string
	sets  map[string]map[string]struct{}
}

// NewExternals creates an empty crosswalk.
func NewExternals() *Externals {
	return &Externals{sets: make(map[string]map[string]struct{})}
}

// Add records that source asserted a link to identifier. Adding the same
// pair twice has no additional effect. Both arguments must be absolute
// URIs; a key is never created without at least one backing source.
func (e *Externals) Add(identifier, source string) error {
	if err := validateURI("identifier", identifier); err != nil {
		return err
	}
	if err := validateURI("source", source); err != nil {
		return err
	}
	set, ok := e.sets[identifier]
	if !ok {
		set = make(map[string]struct{})
		e.sets[identifier] = set
		e.order = append(e.order, identifier)
	}
	set[source] = struct{}{}
	return nil
}

// MergeFrom unions every identifier/source pair from other into this
// crosswalk. Used by the merge engine.
func (e *Externals) MergeFrom(other *Externals) error {
	if other == nil {
		return nil
	}
	for _, identifier := range other.order {
		for source := range other.sets[identifier] {
			if err := e.Add(identifier, source); err != nil {
				return err
			}
		}
	}
	return nil
}

// SourcesFor returns the sorted set of sources backing identifier, or an
// empty slice if the identifier is absent.
func (e *Externals) SourcesFor(identifier string) []string {
	set, ok := e.sets[identifier]
	if !ok {
		return nil
	}
	sources := make([]string, 0, len(set))
	for source := range set {
		sources = append(sources, source)
	}
	sort.Strings(sources)
	return sources
}

// Identifiers returns all identifier URIs in first-seen order.
func (e *Externals) Identifiers() []string {
	identifiers := make([]string, len(e.order))
	copy(identifiers, e.order)
	return identifiers
}

// Len returns the number of identifiers in the crosswalk.
func (e *Externals) Len() int { return len(e.sets) }

// validateURI checks that value is an absolute URI.
func validateURI(field, value string) error {
	u, err := url.Parse(value)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return errors.NewValidationError(field, value, "not an absolute URI")
	}
	return nil
}
