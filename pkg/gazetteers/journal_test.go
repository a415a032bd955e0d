package gazetteers

import (
	"testing"
	"time"
)

func TestJournalAppendOrdering(t *testing.T) {
	j := newJournal(newStepClock())
	j.Append(Event{EventCreated: ""})
	j.Append(Event{EventCreatedFrom: "https://pleiades.stoa.org/places/295374/json"})
	j.Append(Event{EventMergedFrom: "Zucchabar - Miliana"})

	entries := j.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Timestamp.Before(entries[i-1].Timestamp) {
			t.Errorf("entry %d timestamp %v precedes entry %d timestamp %v",
				i, entries[i].Timestamp, i-1, entries[i-1].Timestamp)
		}
	}
	if _, ok := entries[0].Event[EventCreated]; !ok {
		t.Error("first entry should be the created event")
	}
}

func TestJournalAppendNeverRejects(t *testing.T) {
	tests := []struct {
		name  string
		clock Clock
	}{
		{"frozen clock", &frozenClock{current: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}},
		{"reversing clock", &reversingClock{current: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := newJournal(tt.clock)
			for i := 0; i < 5; i++ {
				j.Append(Event{EventCreatedFrom: "https://example.org/doc"})
			}
			entries := j.Entries()
			if len(entries) != 5 {
				t.Fatalf("expected all 5 appends recorded, got %d", len(entries))
			}
			for i := 1; i < len(entries); i++ {
				if entries[i].Timestamp.Before(entries[i-1].Timestamp) {
					t.Errorf("timestamps must be non-decreasing: entry %d precedes entry %d", i, i-1)
				}
			}
		})
	}
}

func TestJournalAppendCopiesEvent(t *testing.T) {
	j := newJournal(newStepClock())
	event := Event{EventCreatedFrom: "https://example.org/a"}
	j.Append(event)
	event[EventCreatedFrom] = "https://example.org/b"

	got := j.Entries()[0].Event[EventCreatedFrom]
	if got != "https://example.org/a" {
		t.Errorf("journal entry mutated after append: got %q", got)
	}
}

func TestJournalCreatedAndSources(t *testing.T) {
	j := newJournal(newStepClock())
	j.Append(Event{EventCreated: ""})
	j.Append(Event{EventCreatedFrom: "https://example.org/a"})
	j.Append(Event{EventMergedFrom: "Another Place"})

	if _, _, ok := j.Created(); !ok {
		t.Fatal("expected a created entry")
	}
	sources := j.Sources()
	if len(sources) != 2 {
		t.Fatalf("expected 2 sources, got %d: %v", len(sources), sources)
	}
	if sources[0] != "https://example.org/a" || sources[1] != "Another Place" {
		t.Errorf("sources out of order: %v", sources)
	}
}
