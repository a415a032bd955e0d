// Package pleiades provides a source adapter for the Pleiades gazetteer
// of ancient places.
package pleiades

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/agentstation/gazetteer/internal/transport"
	"github.com/agentstation/gazetteer/pkg/errors"
	"github.com/agentstation/gazetteer/pkg/gazetteers"
	"github.com/agentstation/gazetteer/pkg/sources"
)

const netloc = "pleiades.stoa.org"

// Pleiades' search feed is RSS 1.0: item elements sit directly under
// the rdf:RDF root.
type searchFeed struct {
	Items []searchItem `xml:"item"`
}

type searchItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
}

// Detail document structures for the Pleiades place JSON API.
type placeResponse struct {
	URI         string             `json:"uri"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Names       []nameResponse     `json:"names"`
	Locations   []locationResponse `json:"locations"`
}

type nameResponse struct {
	Attested                  string `json:"attested"`
	Romanized                 string `json:"romanized"` // comma-separated forms
	Language                  string `json:"language"`
	NameType                  string `json:"nameType"`
	TranscriptionAccuracy     string `json:"transcriptionAccuracy"`
	AssociationCertainty      string `json:"associationCertainty"`
	TranscriptionCompleteness string `json:"transcriptionCompleteness"`
	URI                       string `json:"uri"`
}

type locationResponse struct {
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	Geometry      *gazetteers.Geometry `json:"geometry"`
	AccuracyValue *float64            `json:"accuracy_value"`
	URI           string              `json:"uri"`
}

// Client implements the sources.Source interface for Pleiades.
type Client struct {
	transport *transport.Client
}

// NewClient creates a new Pleiades client on the shared transport.
func NewClient(t *transport.Client) *Client {
	return &Client{transport: t}
}

// ID returns the source identifier.
func (c *Client) ID() sources.ID { return sources.PleiadesID }

// Netlocs returns the hosts this source resolves.
func (c *Client) Netlocs() []string { return []string{netloc} }

// Search queries the Pleiades RSS search interface, which returns
// structured results without scraping HTML.
func (c *Client) Search(ctx context.Context, query string) ([]sources.SearchHit, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.NewSearchParameterError("pleiades", "empty query")
	}
	params := url.Values{
		"SearchableText": {query},
		"review_state":   {"published"},
		"portal_type":    {"Place"},
	}
	searchURL := "https://" + netloc + "/search_rss?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/rss+xml")
	resp, err := c.transport.Do(req)
	if err != nil {
		return nil, errors.WrapAPI("pleiades", 0, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewAPIError("pleiades", resp.StatusCode, searchURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapIO("read", searchURL, err)
	}
	var feed searchFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, errors.WrapParse("rss", searchURL, err)
	}

	hits := make([]sources.SearchHit, 0, len(feed.Items))
	for _, item := range feed.Items {
		hits = append(hits, sources.SearchHit{
			Title:     strings.TrimSpace(item.Title),
			Summary:   strings.TrimSpace(item.Description),
			DetailURI: strings.TrimSpace(item.Link),
		})
	}
	return hits, nil
}

// jsonURIFor maps a canonical Pleiades place URI to its JSON
// representation.
func jsonURIFor(detailURI string) string {
	jsonURI := strings.TrimSuffix(detailURI, "/")
	if !strings.HasSuffix(jsonURI, "/json") {
		jsonURI += "/json"
	}
	return jsonURI
}

// FetchDetail retrieves a Pleiades place document and normalizes it.
func (c *Client) FetchDetail(ctx context.Context, detailURI string) (*gazetteers.Record, error) {
	jsonURI := jsonURIFor(detailURI)
	resp, err := c.transport.Get(ctx, jsonURI)
	if err != nil {
		return nil, errors.WrapAPI("pleiades", 0, err)
	}
	var place placeResponse
	if err := transport.DecodeJSON("pleiades", resp, &place); err != nil {
		return nil, err
	}
	return normalize(&place, jsonURI, detailURI), nil
}

// normalize maps a Pleiades place document onto the internal record shape.
func normalize(place *placeResponse, sourceURI, detailURI string) *gazetteers.Record {
	rec := &gazetteers.Record{
		Title:  place.Title,
		Source: sourceURI,
	}
	if place.Description != "" {
		rec.Descriptions = append(rec.Descriptions, gazetteers.Description{
			Text:   place.Description,
			Lang:   "en", // Pleiades descriptions are editorial English
			Source: sourceURI,
		})
	}
	canonical := place.URI
	if canonical == "" {
		canonical = detailURI
	}
	rec.Externals = append(rec.Externals, canonical)

	for _, n := range place.Names {
		nr := gazetteers.NameRecord{
			AttestedForm:              n.Attested,
			Language:                  n.Language,
			NameType:                  gazetteers.NameType(n.NameType),
			TranscriptionAccuracy:     gazetteers.TranscriptionAccuracy(n.TranscriptionAccuracy),
			AssociationCertainty:      gazetteers.AssociationCertainty(n.AssociationCertainty),
			TranscriptionCompleteness: gazetteers.TranscriptionCompleteness(n.TranscriptionCompleteness),
		}
		for _, form := range strings.Split(n.Romanized, ",") {
			if form = strings.TrimSpace(form); form != "" {
				nr.RomanizedForms = append(nr.RomanizedForms, form)
			}
		}
		if n.URI != "" {
			nr.Externals = append(nr.Externals, n.URI)
		}
		// Pleiades occasionally publishes name stubs with no form at all.
		if nr.AttestedForm == "" && len(nr.RomanizedForms) == 0 {
			continue
		}
		rec.Names = append(rec.Names, nr)
	}

	for _, l := range place.Locations {
		lr := gazetteers.LocationRecord{
			Title:          l.Title,
			Geometry:       copyGeometry(l.Geometry),
			AccuracyRadius: l.AccuracyValue,
		}
		if l.Description != "" {
			lr.Descriptions = append(lr.Descriptions, gazetteers.Description{
				Text: l.Description, Lang: "en", Source: sourceURI,
			})
		}
		if l.URI != "" {
			lr.Externals = append(lr.Externals, l.URI)
		}
		rec.Locations = append(rec.Locations, lr)
	}
	return rec
}

func copyGeometry(g *gazetteers.Geometry) *gazetteers.Geometry {
	if g == nil {
		return nil
	}
	coords := make(json.RawMessage, len(g.Coordinates))
	copy(coords, g.Coordinates)
	return &gazetteers.Geometry{Type: g.Type, Coordinates: coords}
}
