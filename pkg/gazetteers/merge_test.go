package gazetteers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/gazetteer/pkg/errors"
)

// buildMergePair accessions two places assembled from records, returning
// the gazetteer. A is "Zucchabar" (2 names, 2 locations, p1 backed by
// src1); B is "Zucchabar - Miliana" (2 names, 1 location, p1 and g1
// backed by src2).
func buildMergePair(t *testing.T) *Local {
	t.Helper()
	local := NewLocal("my sites", WithClock(newStepClock()))

	a := &Record{
		Title: "Zucchabar",
		Names: []NameRecord{
			{AttestedForm: "Ζουχάββαρι", Language: "grc"},
			{RomanizedForms: []string{"Zucchabar"}, Language: "la"},
		},
		Locations: []LocationRecord{
			{Title: "Darb Zone", Geometry: &Geometry{Type: "Point", Coordinates: []byte("[2.223758,36.304939]")}},
			{Title: "Temple", Geometry: &Geometry{Type: "Point", Coordinates: []byte("[2.2239,36.3051]")}},
		},
		Externals: []string{"https://example.org/id/p1"},
		Source:    "https://example.org/src1",
	}
	b := &Record{
		Title: "Zucchabar - Miliana",
		Names: []NameRecord{
			{RomanizedForms: []string{"Miliana"}, Language: "und"},
			{RomanizedForms: []string{"Zucchabar"}, Language: "la"},
		},
		Locations: []LocationRecord{
			{Title: "Miliana town", Geometry: &Geometry{Type: "Point", Coordinates: []byte("[2.22,36.30]")}},
		},
		Externals: []string{"https://example.org/id/p1", "https://example.org/id/g1"},
		Source:    "https://example.org/src2",
	}

	_, _, err := local.CreateFrom(a)
	require.NoError(t, err)
	_, _, err = local.CreateFrom(b)
	require.NoError(t, err)
	return local
}

func TestMergeScenario(t *testing.T) {
	local := buildMergePair(t)

	merged, err := local.Merge(2, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, local.Len())
	atOne, err := local.Place(1)
	require.NoError(t, err)
	assert.Same(t, merged, atOne)

	assert.Equal(t, "Zucchabar", merged.Title)
	assert.Len(t, merged.Names(), 4)
	assert.Len(t, merged.Locations(), 3)

	assert.ElementsMatch(t,
		[]string{"https://example.org/src1", "https://example.org/src2"},
		merged.Externals().SourcesFor("https://example.org/id/p1"))
	assert.Equal(t,
		[]string{"https://example.org/src2"},
		merged.Externals().SourcesFor("https://example.org/id/g1"))

	entries := merged.Journal().Entries()
	final := entries[len(entries)-1]
	assert.Equal(t, "Zucchabar - Miliana", final.Event[EventMergedFrom])
}

func TestMergePreservesSequenceLengths(t *testing.T) {
	local := buildMergePair(t)
	source, err := local.Place(2)
	require.NoError(t, err)
	target, err := local.Place(1)
	require.NoError(t, err)

	wantNames := len(source.Names()) + len(target.Names())
	wantLocations := len(source.Locations()) + len(target.Locations())
	wantDescriptions := len(source.Descriptions) + len(target.Descriptions)

	merged, err := local.Merge(2, 1)
	require.NoError(t, err)

	// Sequences, not sets: duplicates are preserved, never deduplicated.
	assert.Len(t, merged.Names(), wantNames)
	assert.Len(t, merged.Locations(), wantLocations)
	assert.Len(t, merged.Descriptions, wantDescriptions)
}

func TestMergePreservesSubEntityIdentity(t *testing.T) {
	local := buildMergePair(t)
	source, err := local.Place(2)
	require.NoError(t, err)

	sourceNameIDs := make([]string, 0)
	for _, n := range source.Names() {
		sourceNameIDs = append(sourceNameIDs, n.ID())
	}

	merged, err := local.Merge(2, 1)
	require.NoError(t, err)

	mergedNameIDs := make([]string, 0)
	for _, n := range merged.Names() {
		mergedNameIDs = append(mergedNameIDs, n.ID())
	}
	assert.Subset(t, mergedNameIDs, sourceNameIDs,
		"source names must move across with id preserved")

	// The absorbed shell no longer owns its sub-entities.
	assert.Empty(t, source.Names())
	assert.Empty(t, source.Locations())
}

func TestMergeDoesNotCopySourceJournal(t *testing.T) {
	local := buildMergePair(t)
	target, err := local.Place(1)
	require.NoError(t, err)
	before := target.Journal().Len()

	_, err = local.Merge(2, 1)
	require.NoError(t, err)

	// Exactly one merged_from entry: the source's own journal entries
	// stay with the absorbed sub-entities and the discarded shell.
	assert.Equal(t, before+1, target.Journal().Len())
}

func TestMergeShiftsPositions(t *testing.T) {
	local := NewLocal("my sites", WithClock(newStepClock()))
	a, _, _ := local.Create("Alpha")
	b, _, _ := local.Create("Beta")
	c, _, _ := local.Create("Gamma")

	_, err := local.Merge(1, 2)
	require.NoError(t, err)

	// Alpha was removed: Beta and Gamma shift down one position.
	assert.Equal(t, 2, local.Len())
	if pos, ok := local.PositionOf(b.ID()); assert.True(t, ok) {
		assert.Equal(t, 1, pos)
	}
	if pos, ok := local.PositionOf(c.ID()); assert.True(t, ok) {
		assert.Equal(t, 2, pos)
	}
	_, ok := local.PositionOf(a.ID())
	assert.False(t, ok, "absorbed place must no longer resolve")
}

func TestMergeSelfRejected(t *testing.T) {
	local := buildMergePair(t)

	_, err := local.Merge(1, 1)
	assert.True(t, errors.IsInvalidMerge(err), "got %v", err)
	assert.Equal(t, 2, local.Len(), "rejected merge must leave the gazetteer unchanged")
}

func TestMergeOutOfRange(t *testing.T) {
	local := buildMergePair(t)

	for _, positions := range [][2]int{{3, 1}, {1, 3}, {0, 1}} {
		_, err := local.Merge(positions[0], positions[1])
		assert.True(t, errors.IsNotFound(err), "Merge(%d, %d) = %v, want not found",
			positions[0], positions[1], err)
	}
	assert.Equal(t, 2, local.Len())
}

func TestMergeRepeatAppendsSecondEntry(t *testing.T) {
	local := NewLocal("my sites", WithClock(newStepClock()))
	local.Create("Alpha")
	local.Create("Beta")
	local.Create("Beta")

	target, err := local.Merge(2, 1)
	require.NoError(t, err)
	// The remaining duplicate is now at position 2.
	_, err = local.Merge(2, 1)
	require.NoError(t, err)

	mergedFrom := 0
	for _, entry := range target.Journal().Entries() {
		if _, ok := entry.Event[EventMergedFrom]; ok {
			mergedFrom++
		}
	}
	assert.Equal(t, 2, mergedFrom, "each merge call is itself a provenance-worthy event")
}
