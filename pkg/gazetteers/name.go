package gazetteers

import (
	"github.com/google/uuid"

	"github.com/agentstation/gazetteer/pkg/errors"
)

// NameType classifies what kind of entity a name form refers to.
type NameType string

// String returns the string representation of a NameType.
func (nt NameType) String() string { return string(nt) }

// Name types attested by the supported external gazetteers.
const (
	NameTypeGeographic     NameType = "geographic"
	NameTypeAdministrative NameType = "administrative"
	NameTypeEthnic         NameType = "ethnic"
	NameTypeUnknown        NameType = "unknown"
)

// TranscriptionAccuracy grades how faithfully a form was transcribed.
type TranscriptionAccuracy string

// String returns the string representation of a TranscriptionAccuracy.
func (ta TranscriptionAccuracy) String() string { return string(ta) }

// Transcription accuracy grades.
const (
	TranscriptionAccurate   TranscriptionAccuracy = "accurate"
	TranscriptionInaccurate TranscriptionAccuracy = "inaccurate"
	TranscriptionFalse      TranscriptionAccuracy = "false"
)

// AssociationCertainty grades how certainly a name belongs to its place.
type AssociationCertainty string

// String returns the string representation of an AssociationCertainty.
func (ac AssociationCertainty) String() string { return string(ac) }

// Association certainty grades.
const (
	AssociationCertain   AssociationCertainty = "certain"
	AssociationUncertain AssociationCertainty = "uncertain"
	AssociationFalse     AssociationCertainty = "false"
)

// TranscriptionCompleteness grades how much of a form survives.
type TranscriptionCompleteness string

// String returns the string representation of a TranscriptionCompleteness.
func (tc TranscriptionCompleteness) String() string { return string(tc) }

// Transcription completeness grades.
const (
	TranscriptionComplete           TranscriptionCompleteness = "complete"
	TranscriptionReconstructable    TranscriptionCompleteness = "reconstructable"
	TranscriptionNonReconstructable TranscriptionCompleteness = "non-reconstructable"
)

// Name records one attested or romanized form of a place's name.
// At least one of AttestedForm or RomanizedForms must be non-empty.
type Name struct {
	id             string
	AttestedForm   string
	RomanizedForms []string
	Language       string // BCP-47 code, or "und"
	Source         string

	NameType                  NameType
	TranscriptionAccuracy     TranscriptionAccuracy
	AssociationCertainty      AssociationCertainty
	TranscriptionCompleteness TranscriptionCompleteness

	externals *Externals
	journal   *Journal
}

// NewName creates a name with a freshly minted identifier and a journal
// opened with a "created" entry. At least one form must be provided.
func NewName(clock Clock, attested string, romanized ...string) (*Name, error) {
	if normString(attested) == "" && len(romanized) == 0 {
		return nil, errors.NewMalformedRecordError("attested_form",
			"a name requires an attested form or at least one romanized form")
	}
	n := newName(clock)
	n.AttestedForm = normString(attested)
	for _, form := range romanized {
		n.AddRomanizedForm(form)
	}
	return n, nil
}

// newName builds the identity, crosswalk, and journal shared by every
// name construction path.
func newName(clock Clock) *Name {
	n := &Name{
		id:        uuid.New().String(),
		Language:  LanguageUndetermined,
		externals: NewExternals(),
		journal:   newJournal(clock),
	}
	n.journal.Append(Event{EventCreated: ""})
	return n
}

// ID returns the name's immutable identifier.
func (n *Name) ID() string { return n.id }

// Externals returns the name's crosswalk.
func (n *Name) Externals() *Externals { return n.externals }

// Journal returns the name's provenance journal.
func (n *Name) Journal() *Journal { return n.journal }

// AddRomanizedForm appends a romanized form, ignoring duplicates.
func (n *Name) AddRomanizedForm(form string) {
	form = normString(form)
	if form == "" {
		return
	}
	for _, existing := range n.RomanizedForms {
		if existing == form {
			return
		}
	}
	n.RomanizedForms = append(n.RomanizedForms, form)
}

// Title returns the attested form if present, otherwise the first
// romanized form.
func (n *Name) Title() string {
	if n.AttestedForm != "" {
		return n.AttestedForm
	}
	if len(n.RomanizedForms) > 0 {
		return n.RomanizedForms[0]
	}
	return ""
}
