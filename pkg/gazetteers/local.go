package gazetteers

import (
	"strconv"

	"github.com/agentstation/gazetteer/pkg/errors"
)

// Listing is one row of the local gazetteer's display listing. Position
// is the ephemeral 1-based index researchers use to reference a place;
// positions renumber as places are added or removed and must never be
// persisted as identity. Only the place id is permanent.
type Listing struct {
	Position int
	ID       string
	Title    string
	Summary  string
}

// Local is the ordered collection of places a researcher is building.
// It is a single mutable collection owned by one session; all mutation
// is researcher-driven and synchronous.
type Local struct {
	Title string

	clock  Clock
	places []*Place
}

// LocalOption configures a Local gazetteer.
type LocalOption func(*Local)

// WithClock sets the timestamp source used for all journals minted by
// this gazetteer. Tests use a controllable sequence.
func WithClock(clock Clock) LocalOption {
	return func(l *Local) { l.clock = clock }
}

// NewLocal creates an empty local gazetteer.
func NewLocal(title string, opts ...LocalOption) *Local {
	l := &Local{Title: normString(title), clock: SystemClock}
	for _, opt := range opts {
		opt(l)
	}
	if l.Title == "" {
		l.Title = "Local Gazetteer"
	}
	return l
}

// Clock returns the gazetteer's timestamp source.
func (l *Local) Clock() Clock { return l.clock }

// Len returns the number of places in the gazetteer.
func (l *Local) Len() int { return len(l.places) }

// Accession appends a candidate place to the end of the gazetteer and
// returns its new display position and id. Accession never deduplicates
// against existing places: duplicate detection is the researcher's
// responsibility, exercised via explicit merge.
func (l *Local) Accession(candidate *Place) (int, string, error) {
	if candidate == nil {
		return 0, "", errors.NewMalformedRecordError("", "candidate place is nil")
	}
	l.places = append(l.places, candidate)
	return len(l.places), candidate.id, nil
}

// Create accessions an empty place shell with the given title.
func (l *Local) Create(title string) (*Place, int, error) {
	if normString(title) == "" {
		return nil, 0, errors.NewMalformedRecordError("title", "a place requires a title")
	}
	p := NewPlace(l.clock, title)
	pos, _, err := l.Accession(p)
	if err != nil {
		return nil, 0, err
	}
	return p, pos, nil
}

// CreateFrom builds a place from a normalized external record and
// accessions it. The gazetteer is left unchanged if the record is
// malformed.
func (l *Local) CreateFrom(rec *Record) (*Place, int, error) {
	p, err := NewPlaceFromRecord(l.clock, rec)
	if err != nil {
		return nil, 0, err
	}
	pos, _, err := l.Accession(p)
	if err != nil {
		return nil, 0, err
	}
	return p, pos, nil
}

// Place resolves a current 1-based display position to its place.
func (l *Local) Place(position int) (*Place, error) {
	if position < 1 || position > len(l.places) {
		return nil, errors.NewNotFoundError("position", strconv.Itoa(position))
	}
	return l.places[position-1], nil
}

// ByID resolves a place by its permanent identifier.
func (l *Local) ByID(id string) (*Place, error) {
	for _, p := range l.places {
		if p.id == id {
			return p, nil
		}
	}
	return nil, errors.NewNotFoundError("place", id)
}

// PositionOf recomputes the current display position of the place with
// the given id. Positions are a view over the live sequence: re-resolve
// them before every use rather than caching across mutations.
func (l *Local) PositionOf(id string) (int, bool) {
	for i, p := range l.places {
		if p.id == id {
			return i + 1, true
		}
	}
	return 0, false
}

// Places returns the ordered place sequence. The slice is a copy; the
// places remain owned by the gazetteer.
func (l *Local) Places() []*Place {
	places := make([]*Place, len(l.places))
	copy(places, l.places)
	return places
}

// List returns the current display listing in position order.
func (l *Local) List() []Listing {
	listings := make([]Listing, 0, len(l.places))
	for i, p := range l.places {
		listings = append(listings, Listing{
			Position: i + 1,
			ID:       p.id,
			Title:    p.Title,
			Summary:  p.Summary(),
		})
	}
	return listings
}
