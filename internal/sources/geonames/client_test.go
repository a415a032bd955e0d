package geonames

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/agentstation/gazetteer/pkg/gazetteers"
)

func loadTestdata(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("Failed to read testdata %s: %v", name, err)
	}
	return data
}

func TestSearchResponseParsing(t *testing.T) {
	var doc searchResponse
	if err := json.Unmarshal(loadTestdata(t, "search.json"), &doc); err != nil {
		t.Fatalf("Failed to parse search response: %v", err)
	}
	if doc.Status != nil {
		t.Fatalf("Unexpected status in fixture: %+v", doc.Status)
	}
	if len(doc.Geonames) != 2 {
		t.Fatalf("Expected 2 geonames, got %d", len(doc.Geonames))
	}
	first := doc.Geonames[0]
	if first.GeonameID != 2487134 || first.Name != "Miliana" {
		t.Errorf("Unexpected first hit: %d %q", first.GeonameID, first.Name)
	}
	if got := summarize(first); got != "populated place, Aïn Defla, Algeria" {
		t.Errorf("Unexpected summary: %q", got)
	}
}

func TestParseGeonameURI(t *testing.T) {
	tests := []struct {
		uri     string
		want    string
		wantErr bool
	}{
		{"https://www.geonames.org/2487134", "2487134", false},
		{"https://www.geonames.org/2487134/miliana.html", "2487134", false},
		{"https://sws.geonames.org/2487134/about.rdf", "2487134", false},
		{"https://www.geonames.org/", "", true},
		{"https://www.geonames.org/countries/DZ/", "", true},
	}
	for _, tt := range tests {
		got, err := parseGeonameURI(tt.uri)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseGeonameURI(%q): expected error", tt.uri)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseGeonameURI(%q): %v", tt.uri, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseGeonameURI(%q) = %q, want %q", tt.uri, got, tt.want)
		}
	}
}

func TestGeonameNormalization(t *testing.T) {
	var g geoname
	if err := json.Unmarshal(loadTestdata(t, "get.json"), &g); err != nil {
		t.Fatalf("Failed to parse get response: %v", err)
	}

	sourceURI := "https://api.geonames.org/getJSON?geonameId=2487134"
	rec := normalize(g, sourceURI)

	if rec.Title != "Miliana" {
		t.Errorf("Unexpected record title: %q", rec.Title)
	}
	if rec.Source != sourceURI {
		t.Errorf("Unexpected record source: %q", rec.Source)
	}

	// The sws URI plus the wikipedia link; the postal code
	// pseudo-language must not leak into names or externals.
	if len(rec.Externals) != 2 {
		t.Fatalf("Expected 2 externals, got %v", rec.Externals)
	}
	if rec.Externals[0] != "https://sws.geonames.org/2487134/about.rdf" {
		t.Errorf("Expected the sws identifier first, got %q", rec.Externals[0])
	}
	if rec.Externals[1] != "https://en.wikipedia.org/wiki/Miliana" {
		t.Errorf("Expected the wikipedia link as external, got %q", rec.Externals[1])
	}

	// Toponym plus ar, kab and la variants; the preferred French form
	// duplicates the toponym and is dropped.
	if len(rec.Names) != 4 {
		t.Fatalf("Expected 4 names, got %d: %+v", len(rec.Names), rec.Names)
	}
	if rec.Names[0].AttestedForm != "Miliana" || rec.Names[0].Language != "" {
		t.Errorf("Expected the toponym first, got %+v", rec.Names[0])
	}
	byForm := make(map[string]gazetteers.NameRecord, len(rec.Names))
	for _, n := range rec.Names {
		byForm[n.AttestedForm] = n
	}
	if n, ok := byForm["مليانة"]; !ok || n.Language != "ar" {
		t.Errorf("Expected Arabic name variant, got %+v", n)
	}
	if n, ok := byForm["Zucchabar"]; !ok || n.Language != "la" {
		t.Errorf("Expected Latin name variant, got %+v", n)
	}
	if _, ok := byForm["44003"]; ok {
		t.Error("Postal code must not become a name")
	}

	if len(rec.Descriptions) != 1 {
		t.Fatalf("Expected 1 description, got %d", len(rec.Descriptions))
	}
	if rec.Descriptions[0].Text != "populated place, Aïn Defla, Algeria" {
		t.Errorf("Unexpected description: %q", rec.Descriptions[0].Text)
	}

	if len(rec.Locations) != 1 {
		t.Fatalf("Expected 1 location, got %d", len(rec.Locations))
	}
	geom := rec.Locations[0].Geometry
	if geom == nil || geom.Type != "Point" {
		t.Fatalf("Expected Point geometry, got %+v", geom)
	}
	if string(geom.Coordinates) != "[2.22904,36.30417]" {
		t.Errorf("Unexpected coordinates: %s", geom.Coordinates)
	}
}

func TestNormalizedGeonameCreatesPlace(t *testing.T) {
	var g geoname
	if err := json.Unmarshal(loadTestdata(t, "get.json"), &g); err != nil {
		t.Fatalf("Failed to parse get response: %v", err)
	}
	rec := normalize(g, "https://api.geonames.org/getJSON?geonameId=2487134")

	p, err := gazetteers.NewPlaceFromRecord(gazetteers.SystemClock, rec)
	if err != nil {
		t.Fatalf("Record from fixture should create a place: %v", err)
	}
	if len(p.Names()) != 4 || len(p.Locations()) != 1 {
		t.Errorf("Place shape mismatch: %d names, %d locations", len(p.Names()), len(p.Locations()))
	}
}

func TestStatusErrorDetection(t *testing.T) {
	payload := []byte(`{"status":{"message":"user account not enabled to use the free webservice","value":10}}`)
	var doc searchResponse
	if err := json.Unmarshal(payload, &doc); err != nil {
		t.Fatalf("Failed to parse status payload: %v", err)
	}
	if doc.Status == nil || doc.Status.Value != 10 {
		t.Fatalf("Expected embedded status error, got %+v", doc.Status)
	}
}
