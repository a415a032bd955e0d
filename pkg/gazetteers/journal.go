package gazetteers

import "github.com/agentstation/utc"

// Event kinds recorded in entity journals.
const (
	// EventCreated marks that an entity exists.
	EventCreated = "created"
	// EventCreatedFrom marks where an entity's initial content came from.
	// A later merge may add further entries of this kind for the same
	// entity without creating a second entity.
	EventCreatedFrom = "created from"
	// EventMergedFrom records the historical act of absorbing another place.
	EventMergedFrom = "merged_from"
)

// Event is a small mapping of event kind to free-text value. An empty
// value means the event carries no source (e.g. a bare "created").
type Event map[string]string

// JournalEntry is one timestamped event in a journal.
type JournalEntry struct {
	Timestamp utc.Time
	Event     Event
}

// Journal is an append-only, time-ordered log of facts about an entity.
// Timestamps are non-decreasing in insertion order; when the clock does
// not advance between appends the slice index acts as the tie-break.
// No deletion or mutation operation exists: provenance must be auditable
// and non-revisable.
type Journal struct {
	clock   Clock
	entries []JournalEntry
}

// newJournal creates an empty journal bound to the given clock.
// Entity constructors append the initial "created" entry themselves.
func newJournal(clock Clock) *Journal {
	if clock == nil {
		clock = SystemClock
	}
	return &Journal{clock: clock}
}

// Append adds (now, event) to the end of the journal. An append is never
// rejected: if the clock reports a time earlier than the current head,
// the head's timestamp is reused and insertion order carries the tie.
func (j *Journal) Append(event Event) {
	now := j.clock.Now()
	if n := len(j.entries); n > 0 {
		if last := j.entries[n-1].Timestamp; now.Before(last) {
			now = last
		}
	}
	// Copy the event so later caller mutations cannot revise history.
	copied := make(Event, len(event))
	for k, v := range event {
		copied[k] = v
	}
	j.entries = append(j.entries, JournalEntry{Timestamp: now, Event: copied})
}

// Entries returns the ordered sequence of journal entries. The returned
// slice is a copy; mutating it does not affect the journal.
func (j *Journal) Entries() []JournalEntry {
	entries := make([]JournalEntry, len(j.entries))
	copy(entries, j.entries)
	return entries
}

// Len returns the number of entries in the journal.
func (j *Journal) Len() int { return len(j.entries) }

// Created returns the timestamp and source of the first "created" entry.
func (j *Journal) Created() (utc.Time, string, bool) {
	for _, entry := range j.entries {
		if source, ok := entry.Event[EventCreated]; ok {
			return entry.Timestamp, source, true
		}
	}
	return utc.Time{}, "", false
}

// Sources returns the values of all "created from" and "merged_from"
// entries in journal order.
func (j *Journal) Sources() []string {
	var sources []string
	for _, entry := range j.entries {
		for _, kind := range []string{EventCreatedFrom, EventMergedFrom} {
			if source, ok := entry.Event[kind]; ok {
				sources = append(sources, source)
			}
		}
	}
	return sources
}
