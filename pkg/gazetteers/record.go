package gazetteers

import (
	"fmt"

	"github.com/agentstation/gazetteer/pkg/errors"
)

// Record is the normalized shape every external gazetteer adapter must
// produce. The core never branches on which external service a record
// came from; that variation is fully absorbed before a record arrives
// here. Every scalar field is either populated from the external
// document or left zero.
type Record struct {
	Title        string
	Summary      string
	Descriptions []Description
	Names        []NameRecord
	Locations    []LocationRecord
	Externals    []string // external identifier URIs asserted by the document
	Source       string   // URI of the asserting source document
}

// NameRecord is one normalized name-like entry from an external document.
type NameRecord struct {
	AttestedForm   string
	RomanizedForms []string
	Language       string

	NameType                  NameType
	TranscriptionAccuracy     TranscriptionAccuracy
	AssociationCertainty      AssociationCertainty
	TranscriptionCompleteness TranscriptionCompleteness

	Externals []string
}

// LocationRecord is one normalized location-like entry from an external
// document.
type LocationRecord struct {
	Title          string
	Descriptions   []Description
	Geometry       *Geometry
	AccuracyRadius *float64
	Externals      []string
}

// validate rejects a name record that carries no form at all.
func (r NameRecord) validate() error {
	if normString(r.AttestedForm) != "" {
		return nil
	}
	for _, form := range r.RomanizedForms {
		if normString(form) != "" {
			return nil
		}
	}
	return errors.NewMalformedRecordError("attested_form",
		"a name requires an attested form or at least one romanized form")
}

// NewNameFromRecord builds a Name from a normalized record entry. The
// crosswalk is seeded with every external identifier the record exposed,
// each keyed to the record's own source URI, and the journal receives a
// "created" entry followed by a "created from" entry.
func NewNameFromRecord(clock Clock, rec NameRecord, source string) (*Name, error) {
	if err := rec.validate(); err != nil {
		return nil, err
	}
	n := newName(clock)
	n.AttestedForm = normString(rec.AttestedForm)
	for _, form := range rec.RomanizedForms {
		n.AddRomanizedForm(form)
	}
	n.Language = normLang(rec.Language)
	n.Source = source
	n.NameType = rec.NameType
	n.TranscriptionAccuracy = rec.TranscriptionAccuracy
	n.AssociationCertainty = rec.AssociationCertainty
	n.TranscriptionCompleteness = rec.TranscriptionCompleteness
	if err := seedExternals(n.externals, rec.Externals, source); err != nil {
		return nil, err
	}
	if source != "" {
		n.journal.Append(Event{EventCreatedFrom: source})
	}
	return n, nil
}

// NewLocationFromRecord builds a Location from a normalized record entry,
// with the same crosswalk seeding and two-entry journal pattern as names.
// Geometry is carried verbatim.
func NewLocationFromRecord(clock Clock, rec LocationRecord, source string) (*Location, error) {
	l := NewLocation(clock, rec.Title)
	for _, d := range rec.Descriptions {
		if d.Source == "" {
			d.Source = source
		}
		l.AddDescription(NewDescription(d.Text, d.Lang, d.Preferred, d.Source))
	}
	if rec.Geometry != nil {
		coords := make([]byte, len(rec.Geometry.Coordinates))
		copy(coords, rec.Geometry.Coordinates)
		l.Geometry = &Geometry{Type: rec.Geometry.Type, Coordinates: coords}
	}
	if rec.AccuracyRadius != nil {
		radius := *rec.AccuracyRadius
		l.AccuracyRadius = &radius
	}
	l.Source = source
	if err := seedExternals(l.externals, rec.Externals, source); err != nil {
		return nil, err
	}
	if source != "" {
		l.journal.Append(Event{EventCreatedFrom: source})
	}
	return l, nil
}

// NewPlaceFromRecord builds a Place and its owned sub-entities from a
// normalized external record. The whole record is validated before any
// entity is created, so a malformed record leaves nothing behind.
func NewPlaceFromRecord(clock Clock, rec *Record) (*Place, error) {
	if rec == nil {
		return nil, errors.NewMalformedRecordError("", "record is nil")
	}
	if normString(rec.Title) == "" {
		return nil, errors.NewMalformedRecordError("title", "record has no title")
	}
	for i, nr := range rec.Names {
		if err := nr.validate(); err != nil {
			return nil, errors.NewMalformedRecordError(
				fmt.Sprintf("names[%d]", i), err.Error())
		}
	}

	p := NewPlace(clock, rec.Title)
	for _, d := range rec.Descriptions {
		if d.Source == "" {
			d.Source = rec.Source
		}
		p.AddDescription(NewDescription(d.Text, d.Lang, d.Preferred, d.Source))
	}
	// Fall back to the search-hit summary when the detail document had no
	// description of its own.
	if len(p.Descriptions) == 0 && normString(rec.Summary) != "" {
		p.AddDescription(NewDescription(rec.Summary, LanguageUndetermined, false, rec.Source))
	}
	for _, nr := range rec.Names {
		n, err := NewNameFromRecord(clock, nr, rec.Source)
		if err != nil {
			return nil, err
		}
		p.AddName(n)
	}
	for _, lr := range rec.Locations {
		l, err := NewLocationFromRecord(clock, lr, rec.Source)
		if err != nil {
			return nil, err
		}
		p.AddLocation(l)
	}
	if err := seedExternals(p.externals, rec.Externals, rec.Source); err != nil {
		return nil, err
	}
	if rec.Source != "" {
		p.journal.Append(Event{EventCreatedFrom: rec.Source})
	}
	return p, nil
}

// seedExternals adds every identifier keyed to the record's source URI.
func seedExternals(e *Externals, identifiers []string, source string) error {
	if source == "" {
		return nil
	}
	for _, identifier := range identifiers {
		if err := e.Add(identifier, source); err != nil {
			return err
		}
	}
	return nil
}
