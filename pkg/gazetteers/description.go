package gazetteers

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// LanguageUndetermined is the BCP-47 code used when no language is known.
const LanguageUndetermined = "und"

// Description is one free-text assertion about a place or location.
// Descriptions accumulate in assertion order; duplicates are tolerated
// because two sources corroborating the same string is itself a fact
// worth preserving.
type Description struct {
	Text      string `json:"text" yaml:"text"`
	Lang      string `json:"lang" yaml:"lang"`           // BCP-47 code, or "und"
	Preferred bool   `json:"preferred" yaml:"preferred"` // preferred for display
	Source    string `json:"source,omitempty" yaml:"source,omitempty"`
}

// NewDescription creates a description with normalized text and a
// validated language tag.
func NewDescription(text, lang string, preferred bool, source string) Description {
	return Description{
		Text:      normString(text),
		Lang:      normLang(lang),
		Preferred: preferred,
		Source:    source,
	}
}

// normLang validates a BCP-47 language tag, falling back to "und" for
// empty or unparseable values.
func normLang(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" || lang == LanguageUndetermined {
		return LanguageUndetermined
	}
	tag, err := language.Parse(lang)
	if err != nil || tag == language.Und {
		return LanguageUndetermined
	}
	return tag.String()
}

// normString applies unicode NFC normalization and collapses interior
// whitespace, matching how external records are normalized on intake.
func normString(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}
