// Package nominatim provides a source adapter for the Nominatim
// geocoder backed by OpenStreetMap data. Searches go through Nominatim;
// detail lookups go to the OSM API, whose element documents carry the
// full tag set.
package nominatim

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/agentstation/gazetteer/internal/transport"
	"github.com/agentstation/gazetteer/pkg/errors"
	"github.com/agentstation/gazetteer/pkg/gazetteers"
	"github.com/agentstation/gazetteer/pkg/sources"
)

const (
	searchNetloc = "nominatim.openstreetmap.org"
	lookupNetloc = "www.openstreetmap.org"
	osmAPI       = "https://api.openstreetmap.org/api/0.6"
)

type searchResult struct {
	OSMType     string `json:"osm_type"`
	OSMID       int64  `json:"osm_id"`
	DisplayName string `json:"display_name"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Type        string `json:"type"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

type elementsResponse struct {
	Elements []element `json:"elements"`
}

type element struct {
	Type string            `json:"type"`
	ID   int64             `json:"id"`
	Lat  float64           `json:"lat"`
	Lon  float64           `json:"lon"`
	Tags map[string]string `json:"tags"`
}

// Client implements the sources.Source interface for Nominatim/OSM.
type Client struct {
	transport *transport.Client
}

// NewClient creates a new Nominatim client on the shared transport.
func NewClient(t *transport.Client) *Client {
	return &Client{transport: t}
}

// ID returns the source identifier.
func (c *Client) ID() sources.ID { return sources.NominatimID }

// Netlocs returns the hosts this source resolves. Search hits point at
// www.openstreetmap.org browse URIs so researchers can paste them back.
func (c *Client) Netlocs() []string { return []string{searchNetloc, lookupNetloc} }

// Search queries the Nominatim search API.
func (c *Client) Search(ctx context.Context, query string) ([]sources.SearchHit, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.NewSearchParameterError("nominatim", "empty query")
	}
	params := url.Values{"q": {query}, "format": {"jsonv2"}}
	searchURL := "https://" + searchNetloc + "/search?" + params.Encode()

	resp, err := c.transport.Get(ctx, searchURL)
	if err != nil {
		return nil, errors.WrapAPI("nominatim", 0, err)
	}
	var results []searchResult
	if err := transport.DecodeJSON("nominatim", resp, &results); err != nil {
		return nil, err
	}

	hits := make([]sources.SearchHit, 0, len(results))
	for _, r := range results {
		hits = append(hits, sources.SearchHit{
			Title:     r.DisplayName,
			Summary:   fmt.Sprintf("%s %s at %s, %s", r.Category, r.Type, r.Lat, r.Lon),
			DetailURI: fmt.Sprintf("https://%s/%s/%d", lookupNetloc, r.OSMType, r.OSMID),
		})
	}
	return hits, nil
}

// FetchDetail retrieves an OSM element document and normalizes it.
func (c *Client) FetchDetail(ctx context.Context, detailURI string) (*gazetteers.Record, error) {
	osmType, osmID, err := parseOSMURI(detailURI)
	if err != nil {
		return nil, err
	}
	dataURI := fmt.Sprintf("%s/%s/%s.json", osmAPI, osmType, osmID)

	resp, err := c.transport.Get(ctx, dataURI)
	if err != nil {
		return nil, errors.WrapAPI("nominatim", 0, err)
	}
	var doc elementsResponse
	if err := transport.DecodeJSON("nominatim", resp, &doc); err != nil {
		return nil, err
	}
	if len(doc.Elements) == 0 {
		return nil, errors.NewNotFoundError("osm element", detailURI)
	}
	return normalize(doc.Elements[0], osmType, osmID, dataURI, detailURI), nil
}

// parseOSMURI extracts the element type and id from an OSM browse URI
// such as https://www.openstreetmap.org/node/123 (a trailing /full
// segment is tolerated).
func parseOSMURI(detailURI string) (string, string, error) {
	u, err := url.Parse(detailURI)
	if err != nil {
		return "", "", errors.NewValidationError("detail_uri", detailURI, "not a URI")
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	filtered := segments[:0]
	for _, s := range segments {
		if s != "full" && s != "" {
			filtered = append(filtered, s)
		}
	}
	if len(filtered) < 2 {
		return "", "", errors.NewValidationError("detail_uri", detailURI, "expected /<type>/<id>")
	}
	osmType, osmID := filtered[len(filtered)-2], filtered[len(filtered)-1]
	switch osmType {
	case "node", "way", "relation":
		return osmType, osmID, nil
	}
	return "", "", errors.NewValidationError("detail_uri", detailURI, "unknown OSM element type "+osmType)
}

// normalize maps an OSM element onto the internal record shape. OSM
// keeps name forms in tags: "name" plus language-suffixed variants.
func normalize(el element, osmType, osmID, sourceURI, detailURI string) *gazetteers.Record {
	title := fmt.Sprintf("OSM %s %s", osmType, osmID)
	if name := el.Tags["name"]; name != "" {
		title += ": " + name
	}
	rec := &gazetteers.Record{
		Title:     title,
		Source:    sourceURI,
		Externals: []string{detailURI},
	}

	if name := el.Tags["name"]; name != "" {
		rec.Names = append(rec.Names, gazetteers.NameRecord{
			AttestedForm: name,
			NameType:     gazetteers.NameTypeGeographic,
		})
	}
	// Tag maps iterate in random order; sort the variant keys so the
	// record's name sequence is stable across runs.
	variants := make([]string, 0, len(el.Tags))
	for tag := range el.Tags {
		if strings.HasPrefix(tag, "name:") {
			variants = append(variants, tag)
		}
	}
	sort.Strings(variants)
	for _, tag := range variants {
		value := el.Tags[tag]
		if value == "" || value == el.Tags["name"] {
			continue
		}
		rec.Names = append(rec.Names, gazetteers.NameRecord{
			AttestedForm: value,
			Language:     strings.TrimPrefix(tag, "name:"),
			NameType:     gazetteers.NameTypeGeographic,
		})
	}

	if el.Type == "node" {
		rec.Locations = append(rec.Locations, gazetteers.LocationRecord{
			Title: fmt.Sprintf("OSM location of %s %s", osmType, osmID),
			Geometry: &gazetteers.Geometry{
				Type:        "Point",
				Coordinates: fmt.Appendf(nil, "[%g,%g]", el.Lon, el.Lat),
			},
		})
	}
	return rec
}
