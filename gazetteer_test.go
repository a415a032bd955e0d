package gazetteer

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/gazetteer/pkg/errors"
	"github.com/agentstation/gazetteer/pkg/gazetteers"
	"github.com/agentstation/gazetteer/pkg/save"
	"github.com/agentstation/gazetteer/pkg/sources"
)

// fakeSource serves canned hits and records without the network.
type fakeSource struct {
	id      sources.ID
	netlocs []string
	hits    []sources.SearchHit
	records map[string]*gazetteers.Record
}

func (f *fakeSource) ID() sources.ID    { return f.id }
func (f *fakeSource) Netlocs() []string { return f.netlocs }

func (f *fakeSource) Search(_ context.Context, query string) ([]sources.SearchHit, error) {
	if query == "" {
		return nil, errors.NewSearchParameterError(f.id.String(), "empty query")
	}
	return f.hits, nil
}

func (f *fakeSource) FetchDetail(_ context.Context, detailURI string) (*gazetteers.Record, error) {
	rec, ok := f.records[detailURI]
	if !ok {
		return nil, errors.NewNotFoundError("record", detailURI)
	}
	clone := *rec
	return &clone, nil
}

func testSources() *sources.Sources {
	s := sources.NewSources()
	s.Set(&fakeSource{
		id:      sources.PleiadesID,
		netlocs: []string{"pleiades.stoa.org"},
		hits: []sources.SearchHit{
			{
				Title:     "Zucchabar",
				Summary:   "Ancient city of Mauretania Caesariensis",
				DetailURI: "https://pleiades.stoa.org/places/295374",
			},
		},
		records: map[string]*gazetteers.Record{
			"https://pleiades.stoa.org/places/295374": {
				Title:  "Zucchabar",
				Source: "https://pleiades.stoa.org/places/295374/json",
				Names: []gazetteers.NameRecord{
					{AttestedForm: "Zucchabar", Language: "la"},
				},
				Externals: []string{"https://pleiades.stoa.org/places/295374"},
			},
			"https://pleiades.stoa.org/places/999999": {
				Source: "https://pleiades.stoa.org/places/999999/json",
			},
		},
	})
	return s
}

func TestNewDefaults(t *testing.T) {
	g, err := New(WithSources(testSources()))
	require.NoError(t, err)
	assert.Equal(t, "Local Gazetteer", g.Local().Title)
	assert.Equal(t, 0, g.Local().Len())
}

func TestSearch(t *testing.T) {
	g, err := New(WithSources(testSources()))
	require.NoError(t, err)

	hits, err := g.Search(context.Background(), sources.PleiadesID, "Zucchabar")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Zucchabar", hits[0].Title)

	_, err = g.Search(context.Background(), "atlantis", "Zucchabar")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestAccessionRoutesByNetloc(t *testing.T) {
	g, err := New(WithSources(testSources()))
	require.NoError(t, err)

	place, position, err := g.Accession(context.Background(),
		"https://pleiades.stoa.org/places/295374")
	require.NoError(t, err)
	assert.Equal(t, 1, position)
	assert.Equal(t, "Zucchabar", place.Title)
	require.Len(t, place.Names(), 1)

	_, _, err = g.Accession(context.Background(), "https://example.org/nowhere")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestAccessionHitFallsBackToHitFields(t *testing.T) {
	g, err := New(WithSources(testSources()))
	require.NoError(t, err)

	// The detail record at 999999 has no title of its own.
	place, _, err := g.AccessionHit(context.Background(), sources.SearchHit{
		Title:     "Zucchabar (hit)",
		Summary:   "From the search listing",
		DetailURI: "https://pleiades.stoa.org/places/999999",
	})
	require.NoError(t, err)
	assert.Equal(t, "Zucchabar (hit)", place.Title)
	assert.Equal(t, "From the search listing", place.Summary())
}

func TestSaveAndLoad(t *testing.T) {
	g, err := New(WithSources(testSources()), WithTitle("Roman Africa"))
	require.NoError(t, err)

	_, _, err = g.Accession(context.Background(),
		"https://pleiades.stoa.org/places/295374")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "gazetteer.json")
	require.NoError(t, g.Save(save.WithPath(path)))

	g2, err := New(WithSources(testSources()))
	require.NoError(t, err)
	require.NoError(t, g2.Load(path))

	assert.Equal(t, "Roman Africa", g2.Local().Title)
	require.Equal(t, 1, g2.Local().Len())
	want, err := g.Local().Place(1)
	require.NoError(t, err)
	got, err := g2.Local().Place(1)
	require.NoError(t, err)
	assert.Equal(t, want.ID(), got.ID())
	assert.Equal(t, want.Journal().Entries(), got.Journal().Entries())
}
