package gazetteers

import (
	"time"

	"github.com/agentstation/utc"

	"github.com/agentstation/gazetteer/pkg/errors"
)

// The plain form is the system's canonical interchange structure: a
// nested, order-preserving, JSON-compatible mirror of the data model.
// Journals are explicit ordered entry lists (a Go map cannot preserve
// insertion order); externals are a mapping from identifier to a sorted
// source list; geometry passes through unmodified. Round-tripping a
// plain form back into a Place reproduces every field, including
// journal order.

// PlainJournalEntry is one journal entry in interchange form. The
// timestamp is an ISO-8601 (RFC 3339) string.
type PlainJournalEntry struct {
	Timestamp string            `json:"timestamp" yaml:"timestamp"`
	Event     map[string]string `json:"event" yaml:"event"`
}

// PlainName is a name in interchange form.
type PlainName struct {
	ID                        string              `json:"id" yaml:"id"`
	AttestedForm              string              `json:"attested_form,omitempty" yaml:"attested_form,omitempty"`
	RomanizedForms            []string            `json:"romanized_forms,omitempty" yaml:"romanized_forms,omitempty"`
	Language                  string              `json:"language" yaml:"language"`
	Source                    string              `json:"source,omitempty" yaml:"source,omitempty"`
	NameType                  string              `json:"name_type,omitempty" yaml:"name_type,omitempty"`
	TranscriptionAccuracy     string              `json:"transcription_accuracy,omitempty" yaml:"transcription_accuracy,omitempty"`
	AssociationCertainty      string              `json:"association_certainty,omitempty" yaml:"association_certainty,omitempty"`
	TranscriptionCompleteness string              `json:"transcription_completeness,omitempty" yaml:"transcription_completeness,omitempty"`
	Externals                 map[string][]string `json:"externals" yaml:"externals"`
	Journal                   []PlainJournalEntry `json:"journal" yaml:"journal"`
}

// PlainLocation is a location in interchange form.
type PlainLocation struct {
	ID             string              `json:"id" yaml:"id"`
	Title          string              `json:"title" yaml:"title"`
	Descriptions   []Description       `json:"descriptions,omitempty" yaml:"descriptions,omitempty"`
	Geometry       *Geometry           `json:"geometry,omitempty" yaml:"geometry,omitempty"`
	AccuracyRadius *float64            `json:"accuracy_radius,omitempty" yaml:"accuracy_radius,omitempty"`
	Source         string              `json:"source,omitempty" yaml:"source,omitempty"`
	Externals      map[string][]string `json:"externals" yaml:"externals"`
	Journal        []PlainJournalEntry `json:"journal" yaml:"journal"`
}

// PlainPlace is a place in interchange form.
type PlainPlace struct {
	ID           string              `json:"id" yaml:"id"`
	Title        string              `json:"title" yaml:"title"`
	Descriptions []Description       `json:"descriptions,omitempty" yaml:"descriptions,omitempty"`
	Names        []PlainName         `json:"names,omitempty" yaml:"names,omitempty"`
	Locations    []PlainLocation     `json:"locations,omitempty" yaml:"locations,omitempty"`
	Externals    map[string][]string `json:"externals" yaml:"externals"`
	Journal      []PlainJournalEntry `json:"journal" yaml:"journal"`
}

// PlainLocal is a whole local gazetteer in interchange form.
type PlainLocal struct {
	Title  string       `json:"title" yaml:"title"`
	Places []PlainPlace `json:"places" yaml:"places"`
}

// ToPlain produces the interchange form of a place.
func ToPlain(p *Place) PlainPlace {
	pp := PlainPlace{
		ID:           p.id,
		Title:        p.Title,
		Descriptions: append([]Description(nil), p.Descriptions...),
		Externals:    externalsToPlain(p.externals),
		Journal:      journalToPlain(p.journal),
	}
	for _, n := range p.names {
		pp.Names = append(pp.Names, nameToPlain(n))
	}
	for _, l := range p.locations {
		pp.Locations = append(pp.Locations, locationToPlain(l))
	}
	return pp
}

// ToPlain produces the interchange form of the whole gazetteer.
func (l *Local) ToPlain() PlainLocal {
	pl := PlainLocal{Title: l.Title, Places: make([]PlainPlace, 0, len(l.places))}
	for _, p := range l.places {
		pl.Places = append(pl.Places, ToPlain(p))
	}
	return pl
}

func nameToPlain(n *Name) PlainName {
	return PlainName{
		ID:                        n.id,
		AttestedForm:              n.AttestedForm,
		RomanizedForms:            append([]string(nil), n.RomanizedForms...),
		Language:                  n.Language,
		Source:                    n.Source,
		NameType:                  n.NameType.String(),
		TranscriptionAccuracy:     n.TranscriptionAccuracy.String(),
		AssociationCertainty:      n.AssociationCertainty.String(),
		TranscriptionCompleteness: n.TranscriptionCompleteness.String(),
		Externals:                 externalsToPlain(n.externals),
		Journal:                   journalToPlain(n.journal),
	}
}

func locationToPlain(l *Location) PlainLocation {
	pl := PlainLocation{
		ID:             l.id,
		Title:          l.Title,
		Descriptions:   append([]Description(nil), l.Descriptions...),
		AccuracyRadius: l.AccuracyRadius,
		Source:         l.Source,
		Externals:      externalsToPlain(l.externals),
		Journal:        journalToPlain(l.journal),
	}
	if l.Geometry != nil {
		geom := *l.Geometry
		pl.Geometry = &geom
	}
	return pl
}

func externalsToPlain(e *Externals) map[string][]string {
	plain := make(map[string][]string, e.Len())
	for _, identifier := range e.Identifiers() {
		plain[identifier] = e.SourcesFor(identifier)
	}
	return plain
}

func journalToPlain(j *Journal) []PlainJournalEntry {
	entries := make([]PlainJournalEntry, 0, j.Len())
	for _, entry := range j.Entries() {
		event := make(map[string]string, len(entry.Event))
		for k, v := range entry.Event {
			event[k] = v
		}
		entries = append(entries, PlainJournalEntry{
			Timestamp: entry.Timestamp.Format(time.RFC3339Nano),
			Event:     event,
		})
	}
	return entries
}

// PlaceFromPlain reconstructs a place from its interchange form,
// reproducing ids, journal order, and crosswalk contents exactly.
func PlaceFromPlain(clock Clock, pp PlainPlace) (*Place, error) {
	if pp.ID == "" {
		return nil, errors.NewMalformedRecordError("id", "place has no id")
	}
	if clock == nil {
		clock = SystemClock
	}
	journal, err := journalFromPlain(clock, pp.Journal)
	if err != nil {
		return nil, err
	}
	externals, err := externalsFromPlain(pp.Externals)
	if err != nil {
		return nil, err
	}
	p := &Place{
		id:           pp.ID,
		Title:        pp.Title,
		Descriptions: append([]Description(nil), pp.Descriptions...),
		externals:    externals,
		journal:      journal,
		clock:        clock,
	}
	for _, pn := range pp.Names {
		n, err := nameFromPlain(clock, pn)
		if err != nil {
			return nil, err
		}
		p.names = append(p.names, n)
	}
	for _, pl := range pp.Locations {
		l, err := locationFromPlain(clock, pl)
		if err != nil {
			return nil, err
		}
		p.locations = append(p.locations, l)
	}
	return p, nil
}

// LocalFromPlain reconstructs a whole gazetteer from its interchange form.
func LocalFromPlain(pl PlainLocal, opts ...LocalOption) (*Local, error) {
	local := NewLocal(pl.Title, opts...)
	for _, pp := range pl.Places {
		p, err := PlaceFromPlain(local.clock, pp)
		if err != nil {
			return nil, err
		}
		if _, _, err := local.Accession(p); err != nil {
			return nil, err
		}
	}
	return local, nil
}

func nameFromPlain(clock Clock, pn PlainName) (*Name, error) {
	if pn.ID == "" {
		return nil, errors.NewMalformedRecordError("id", "name has no id")
	}
	journal, err := journalFromPlain(clock, pn.Journal)
	if err != nil {
		return nil, err
	}
	externals, err := externalsFromPlain(pn.Externals)
	if err != nil {
		return nil, err
	}
	language := pn.Language
	if language == "" {
		language = LanguageUndetermined
	}
	return &Name{
		id:                        pn.ID,
		AttestedForm:              pn.AttestedForm,
		RomanizedForms:            append([]string(nil), pn.RomanizedForms...),
		Language:                  language,
		Source:                    pn.Source,
		NameType:                  NameType(pn.NameType),
		TranscriptionAccuracy:     TranscriptionAccuracy(pn.TranscriptionAccuracy),
		AssociationCertainty:      AssociationCertainty(pn.AssociationCertainty),
		TranscriptionCompleteness: TranscriptionCompleteness(pn.TranscriptionCompleteness),
		externals:                 externals,
		journal:                   journal,
	}, nil
}

func locationFromPlain(clock Clock, pl PlainLocation) (*Location, error) {
	if pl.ID == "" {
		return nil, errors.NewMalformedRecordError("id", "location has no id")
	}
	journal, err := journalFromPlain(clock, pl.Journal)
	if err != nil {
		return nil, err
	}
	externals, err := externalsFromPlain(pl.Externals)
	if err != nil {
		return nil, err
	}
	l := &Location{
		id:             pl.ID,
		Title:          pl.Title,
		Descriptions:   append([]Description(nil), pl.Descriptions...),
		AccuracyRadius: pl.AccuracyRadius,
		Source:         pl.Source,
		externals:      externals,
		journal:        journal,
	}
	if pl.Geometry != nil {
		geom := *pl.Geometry
		l.Geometry = &geom
	}
	return l, nil
}

func journalFromPlain(clock Clock, entries []PlainJournalEntry) (*Journal, error) {
	j := newJournal(clock)
	for _, pe := range entries {
		ts, err := utc.Parse(time.RFC3339Nano, pe.Timestamp)
		if err != nil {
			return nil, errors.NewParseError("journal", "", "bad timestamp "+pe.Timestamp, err)
		}
		event := make(Event, len(pe.Event))
		for k, v := range pe.Event {
			event[k] = v
		}
		j.entries = append(j.entries, JournalEntry{Timestamp: ts, Event: event})
	}
	if len(j.entries) == 0 {
		return nil, errors.NewMalformedRecordError("journal", "journal has no entries")
	}
	return j, nil
}

func externalsFromPlain(plain map[string][]string) (*Externals, error) {
	e := NewExternals()
	for identifier, sources := range plain {
		for _, source := range sources {
			if err := e.Add(identifier, source); err != nil {
				return nil, err
			}
		}
	}
	return e, nil
}
