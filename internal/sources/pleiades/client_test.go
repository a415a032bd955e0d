package pleiades

import (
	"encoding/json"
	"encoding/xml"
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

func TestSearchFeedParsing(t *testing.T) {
	var feed searchFeed
	if err := xml.Unmarshal(loadTestdata(t, "search.rss"), &feed); err != nil {
		t.Fatalf("Failed to parse search feed: %v", err)
	}
	if len(feed.Items) != 1 {
		t.Fatalf("Expected 1 search item, got %d", len(feed.Items))
	}
	item := feed.Items[0]
	if item.Title != "Zucchabar" {
		t.Errorf("Unexpected item title: %q", item.Title)
	}
	if item.Link != "https://pleiades.stoa.org/places/295374" {
		t.Errorf("Unexpected item link: %q", item.Link)
	}
	if item.Description == "" {
		t.Error("Expected item description")
	}
}

func TestPlaceNormalization(t *testing.T) {
	var place placeResponse
	if err := json.Unmarshal(loadTestdata(t, "place.json"), &place); err != nil {
		t.Fatalf("Failed to parse place document: %v", err)
	}

	sourceURI := "https://pleiades.stoa.org/places/295374/json"
	rec := normalize(&place, sourceURI, "https://pleiades.stoa.org/places/295374")

	if rec.Title != "Zucchabar" {
		t.Errorf("Unexpected record title: %q", rec.Title)
	}
	if rec.Source != sourceURI {
		t.Errorf("Unexpected record source: %q", rec.Source)
	}
	if len(rec.Descriptions) != 1 || rec.Descriptions[0].Lang != "en" {
		t.Errorf("Expected one English description, got %+v", rec.Descriptions)
	}
	if len(rec.Externals) != 1 || rec.Externals[0] != "https://pleiades.stoa.org/places/295374" {
		t.Errorf("Expected the canonical place URI as external, got %v", rec.Externals)
	}

	// The empty name stub must be dropped.
	if len(rec.Names) != 2 {
		t.Fatalf("Expected 2 names, got %d", len(rec.Names))
	}
	greek := rec.Names[0]
	if greek.AttestedForm != "Ζουχάββαρι" {
		t.Errorf("Unexpected attested form: %q", greek.AttestedForm)
	}
	if len(greek.RomanizedForms) != 2 {
		t.Errorf("Expected comma-separated romanized forms split in two, got %v", greek.RomanizedForms)
	}
	if greek.Language != "grc" {
		t.Errorf("Unexpected language: %q", greek.Language)
	}
	if greek.NameType != gazetteers.NameTypeGeographic {
		t.Errorf("Unexpected name type: %q", greek.NameType)
	}
	if greek.TranscriptionAccuracy != gazetteers.TranscriptionAccurate {
		t.Errorf("Unexpected accuracy: %q", greek.TranscriptionAccuracy)
	}
	if len(greek.Externals) != 1 {
		t.Errorf("Expected the name URI as external, got %v", greek.Externals)
	}

	if len(rec.Locations) != 1 {
		t.Fatalf("Expected 1 location, got %d", len(rec.Locations))
	}
	loc := rec.Locations[0]
	if loc.Title != "DARMC location 16678" {
		t.Errorf("Unexpected location title: %q", loc.Title)
	}
	if loc.Geometry == nil || loc.Geometry.Type != "Point" {
		t.Fatalf("Expected Point geometry, got %+v", loc.Geometry)
	}
	if string(loc.Geometry.Coordinates) != "[2.2261538, 36.304939]" {
		t.Errorf("Geometry coordinates not carried verbatim: %s", loc.Geometry.Coordinates)
	}
	if loc.AccuracyRadius == nil || *loc.AccuracyRadius != 493.13 {
		t.Errorf("Unexpected accuracy radius: %v", loc.AccuracyRadius)
	}
}

func TestNormalizedRecordCreatesPlace(t *testing.T) {
	var place placeResponse
	if err := json.Unmarshal(loadTestdata(t, "place.json"), &place); err != nil {
		t.Fatalf("Failed to parse place document: %v", err)
	}
	rec := normalize(&place, "https://pleiades.stoa.org/places/295374/json",
		"https://pleiades.stoa.org/places/295374")

	p, err := gazetteers.NewPlaceFromRecord(gazetteers.SystemClock, rec)
	if err != nil {
		t.Fatalf("Record from fixture should create a place: %v", err)
	}
	if p.Title != "Zucchabar" {
		t.Errorf("Unexpected place title: %q", p.Title)
	}
	if len(p.Names()) != 2 || len(p.Locations()) != 1 {
		t.Errorf("Place shape mismatch: %d names, %d locations", len(p.Names()), len(p.Locations()))
	}
}

func TestFetchDetailURINormalization(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://pleiades.stoa.org/places/295374", "https://pleiades.stoa.org/places/295374/json"},
		{"https://pleiades.stoa.org/places/295374/", "https://pleiades.stoa.org/places/295374/json"},
		{"https://pleiades.stoa.org/places/295374/json", "https://pleiades.stoa.org/places/295374/json"},
	}
	for _, tt := range tests {
		got := jsonURIFor(tt.in)
		if got != tt.want {
			t.Errorf("jsonURIFor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
