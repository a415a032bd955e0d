package gazetteers

import (
	"github.com/google/uuid"
)

// Place is the aggregate root representing one real-world location
// candidate. It owns its names and locations exclusively: sub-entities
// are never shared between places, and ownership transfers wholesale
// when a place is absorbed in a merge.
type Place struct {
	id           string
	Title        string
	Descriptions []Description

	names     []*Name
	locations []*Location
	externals *Externals
	journal   *Journal
	clock     Clock
}

// NewPlace creates an empty place shell with a freshly minted identifier
// and a journal opened with a "created" entry.
func NewPlace(clock Clock, title string) *Place {
	if clock == nil {
		clock = SystemClock
	}
	p := &Place{
		id:        uuid.New().String(),
		Title:     normString(title),
		externals: NewExternals(),
		journal:   newJournal(clock),
		clock:     clock,
	}
	p.journal.Append(Event{EventCreated: ""})
	return p
}

// ID returns the place's immutable identifier.
func (p *Place) ID() string { return p.id }

// Externals returns the place's crosswalk.
func (p *Place) Externals() *Externals { return p.externals }

// Journal returns the place's provenance journal.
func (p *Place) Journal() *Journal { return p.journal }

// Names returns the ordered name sequence. The slice is a copy; the
// names themselves remain owned by the place.
func (p *Place) Names() []*Name {
	names := make([]*Name, len(p.names))
	copy(names, p.names)
	return names
}

// Locations returns the ordered location sequence. The slice is a copy;
// the locations themselves remain owned by the place.
func (p *Place) Locations() []*Location {
	locations := make([]*Location, len(p.locations))
	copy(locations, p.locations)
	return locations
}

// AddName transfers ownership of a name to this place, appending it to
// the name sequence.
func (p *Place) AddName(n *Name) {
	if n == nil {
		return
	}
	p.names = append(p.names, n)
}

// AddLocation transfers ownership of a location to this place, appending
// it to the location sequence.
func (p *Place) AddLocation(l *Location) {
	if l == nil {
		return
	}
	p.locations = append(p.locations, l)
}

// AddDescription appends a description in assertion order.
func (p *Place) AddDescription(d Description) {
	p.Descriptions = append(p.Descriptions, d)
}

// Summary returns a short display summary: the preferred description if
// one is marked, otherwise the first description, otherwise empty.
func (p *Place) Summary() string {
	for _, d := range p.Descriptions {
		if d.Preferred {
			return d.Text
		}
	}
	if len(p.Descriptions) > 0 {
		return p.Descriptions[0].Text
	}
	return ""
}
