package gazetteers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/gazetteer/pkg/errors"
)

func TestLocalAccession(t *testing.T) {
	local := NewLocal("my sites", WithClock(newStepClock()))

	a := NewPlace(local.Clock(), "Zucchabar")
	pos, id, err := local.Accession(a)
	require.NoError(t, err)
	assert.Equal(t, 1, pos)
	assert.Equal(t, a.ID(), id)

	b := NewPlace(local.Clock(), "Miliana")
	pos, _, err = local.Accession(b)
	require.NoError(t, err)
	assert.Equal(t, 2, pos)

	// Accession never deduplicates: the same title accessions again.
	c := NewPlace(local.Clock(), "Zucchabar")
	pos, _, err = local.Accession(c)
	require.NoError(t, err)
	assert.Equal(t, 3, pos)
	assert.Equal(t, 3, local.Len())
}

func TestLocalPlaceOutOfRange(t *testing.T) {
	local := NewLocal("my sites")
	local.Create("Zucchabar")

	for _, pos := range []int{0, -1, 2} {
		_, err := local.Place(pos)
		assert.True(t, errors.IsNotFound(err), "Place(%d) = %v, want not found", pos, err)
	}
}

func TestLocalByID(t *testing.T) {
	local := NewLocal("my sites")
	p, _, err := local.Create("Zucchabar")
	require.NoError(t, err)

	got, err := local.ByID(p.ID())
	require.NoError(t, err)
	assert.Same(t, p, got)

	_, err = local.ByID("no-such-id")
	assert.True(t, errors.IsNotFound(err))
}

func TestLocalList(t *testing.T) {
	local := NewLocal("my sites", WithClock(newStepClock()))
	a, _, err := local.Create("Zucchabar")
	require.NoError(t, err)
	a.AddDescription(NewDescription("An ancient city.", "en", true, ""))
	_, _, err = local.Create("Miliana")
	require.NoError(t, err)

	listings := local.List()
	require.Len(t, listings, 2)
	assert.Equal(t, 1, listings[0].Position)
	assert.Equal(t, "Zucchabar", listings[0].Title)
	assert.Equal(t, "An ancient city.", listings[0].Summary)
	assert.Equal(t, 2, listings[1].Position)
	assert.Equal(t, "Miliana", listings[1].Title)
}

func TestLocalDefaultTitle(t *testing.T) {
	local := NewLocal("  ")
	assert.Equal(t, "Local Gazetteer", local.Title)
}

func TestLocalCreateRequiresTitle(t *testing.T) {
	local := NewLocal("my sites")
	_, _, err := local.Create("")
	assert.True(t, errors.IsMalformedRecord(err))
	assert.Equal(t, 0, local.Len())
}

func TestPlaceJournalNeverEmpty(t *testing.T) {
	local := NewLocal("my sites", WithClock(newStepClock()))
	p, _, err := local.Create("Zucchabar")
	require.NoError(t, err)
	assert.Greater(t, p.Journal().Len(), 0)
}
