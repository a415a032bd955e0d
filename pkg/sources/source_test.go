package sources

import (
	"context"
	"testing"

	"github.com/agentstation/gazetteer/pkg/gazetteers"
)

type fakeSource struct {
	id      ID
	netlocs []string
}

func (f *fakeSource) ID() ID            { return f.id }
func (f *fakeSource) Netlocs() []string { return f.netlocs }
func (f *fakeSource) Search(context.Context, string) ([]SearchHit, error) {
	return nil, nil
}
func (f *fakeSource) FetchDetail(context.Context, string) (*gazetteers.Record, error) {
	return nil, nil
}

func TestSourcesRegistry(t *testing.T) {
	s := NewSources()
	s.Set(&fakeSource{id: PleiadesID, netlocs: []string{"pleiades.stoa.org"}})
	s.Set(&fakeSource{id: NominatimID, netlocs: []string{"nominatim.openstreetmap.org", "www.openstreetmap.org"}})

	if s.Len() != 2 {
		t.Fatalf("expected 2 sources, got %d", s.Len())
	}
	if _, found := s.Get(PleiadesID); !found {
		t.Error("expected pleiades to be registered")
	}
	s.Delete(PleiadesID)
	if _, found := s.Get(PleiadesID); found {
		t.Error("expected pleiades to be removed")
	}
}

func TestSourcesForURI(t *testing.T) {
	s := NewSources()
	s.Set(&fakeSource{id: NominatimID, netlocs: []string{"nominatim.openstreetmap.org", "www.openstreetmap.org"}})

	tests := []struct {
		uri   string
		found bool
	}{
		{"https://www.openstreetmap.org/api/0.6/node/123", true},
		{"https://nominatim.openstreetmap.org/search?q=x", true},
		{"https://pleiades.stoa.org/places/295374", false},
		{"not a uri", false},
	}
	for _, tt := range tests {
		if _, found := s.ForURI(tt.uri); found != tt.found {
			t.Errorf("ForURI(%q) found=%v, want %v", tt.uri, found, tt.found)
		}
	}
}

func TestIDIsValid(t *testing.T) {
	for _, id := range IDs() {
		if !id.IsValid() {
			t.Errorf("expected %s to be valid", id)
		}
	}
	if ID("edh").IsValid() {
		t.Error("unknown id must not validate")
	}
}
