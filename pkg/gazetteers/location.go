package gazetteers

import (
	"encoding/json"

	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
)

// Geometry is one geometric assertion in GeoJSON form. Coordinate
// semantics are opaque to this package: the coordinates are carried
// verbatim from the external record through to export.
type Geometry struct {
	Type        string          `json:"type" yaml:"type"`
	Coordinates json.RawMessage `json:"coordinates,omitempty" yaml:"coordinates,omitempty"`
}

// MarshalYAML renders the geometry as structured YAML through its JSON
// form, so opaque coordinates come out as nested sequences instead of
// raw bytes.
func (g *Geometry) MarshalYAML() ([]byte, error) {
	type alias Geometry
	data, err := json.Marshal((*alias)(g))
	if err != nil {
		return nil, err
	}
	return yaml.JSONToYAML(data)
}

// UnmarshalYAML reverses MarshalYAML.
func (g *Geometry) UnmarshalYAML(data []byte) error {
	j, err := yaml.YAMLToJSON(data)
	if err != nil {
		return err
	}
	type alias Geometry
	var a alias
	if err := json.Unmarshal(j, &a); err != nil {
		return err
	}
	*g = Geometry(a)
	return nil
}

// Location records one geometric assertion about a place.
type Location struct {
	id             string
	Title          string
	Descriptions   []Description
	Geometry       *Geometry
	AccuracyRadius *float64 // meters
	Source         string

	externals *Externals
	journal   *Journal
}

// NewLocation creates a location with a freshly minted identifier and a
// journal opened with a "created" entry.
func NewLocation(clock Clock, title string) *Location {
	l := &Location{
		id:        uuid.New().String(),
		Title:     normString(title),
		externals: NewExternals(),
		journal:   newJournal(clock),
	}
	l.journal.Append(Event{EventCreated: ""})
	return l
}

// ID returns the location's immutable identifier.
func (l *Location) ID() string { return l.id }

// Externals returns the location's crosswalk.
func (l *Location) Externals() *Externals { return l.externals }

// Journal returns the location's provenance journal.
func (l *Location) Journal() *Journal { return l.journal }

// AddDescription appends a description in assertion order.
func (l *Location) AddDescription(d Description) {
	l.Descriptions = append(l.Descriptions, d)
}
