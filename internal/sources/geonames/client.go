// Package geonames provides a source adapter for the GeoNames web
// services. GeoNames requires a registered username on every request;
// the client refuses to operate without one rather than burning the
// shared "demo" account's quota.
package geonames

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/agentstation/gazetteer/internal/transport"
	"github.com/agentstation/gazetteer/pkg/errors"
	"github.com/agentstation/gazetteer/pkg/gazetteers"
	"github.com/agentstation/gazetteer/pkg/sources"
)

const (
	apiNetloc    = "api.geonames.org"
	browseNetloc = "www.geonames.org"
	swsNetloc    = "sws.geonames.org"
)

type searchResponse struct {
	TotalResultsCount int        `json:"totalResultsCount"`
	Geonames          []geoname  `json:"geonames"`
	Status            *apiStatus `json:"status"`
}

type geoname struct {
	GeonameID      int64           `json:"geonameId"`
	Name           string          `json:"name"`
	ToponymName    string          `json:"toponymName"`
	AsciiName      string          `json:"asciiName"`
	CountryName    string          `json:"countryName"`
	AdminName1     string          `json:"adminName1"`
	FclName        string          `json:"fclName"`
	FcodeName      string          `json:"fcodeName"`
	Lat            string          `json:"lat"`
	Lng            string          `json:"lng"`
	AlternateNames []alternateName `json:"alternateNames"`
	Status         *apiStatus      `json:"status"`
}

type alternateName struct {
	Name        string `json:"name"`
	Lang        string `json:"lang"`
	IsPreferred bool   `json:"isPreferredName"`
}

// apiStatus is how GeoNames reports errors: HTTP 200 with a status
// object in the body.
type apiStatus struct {
	Message string `json:"message"`
	Value   int    `json:"value"`
}

// Client implements the sources.Source interface for GeoNames.
type Client struct {
	transport *transport.Client
	username  string
}

// NewClient creates a new GeoNames client. The username is the caller's
// registered GeoNames account name.
func NewClient(t *transport.Client, username string) *Client {
	return &Client{transport: t, username: username}
}

// ID returns the source identifier.
func (c *Client) ID() sources.ID { return sources.GeoNamesID }

// Netlocs returns the hosts this source resolves.
func (c *Client) Netlocs() []string {
	return []string{apiNetloc, browseNetloc, swsNetloc}
}

// Search queries the GeoNames searchJSON endpoint.
func (c *Client) Search(ctx context.Context, query string) ([]sources.SearchHit, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.NewSearchParameterError("geonames", "empty query")
	}
	if c.username == "" {
		return nil, errors.NewSearchParameterError("geonames",
			"a GeoNames username is required; register at https://www.geonames.org/login")
	}
	params := url.Values{"q": {query}, "username": {c.username}, "maxRows": {"20"}}
	searchURL := "https://" + apiNetloc + "/searchJSON?" + params.Encode()

	resp, err := c.transport.Get(ctx, searchURL)
	if err != nil {
		return nil, errors.WrapAPI("geonames", 0, err)
	}
	var doc searchResponse
	if err := transport.DecodeJSON("geonames", resp, &doc); err != nil {
		return nil, err
	}
	if doc.Status != nil {
		return nil, errors.NewAPIError("geonames", doc.Status.Value, doc.Status.Message)
	}

	hits := make([]sources.SearchHit, 0, len(doc.Geonames))
	for _, g := range doc.Geonames {
		hits = append(hits, sources.SearchHit{
			Title:     g.Name,
			Summary:   summarize(g),
			DetailURI: fmt.Sprintf("https://%s/%d", browseNetloc, g.GeonameID),
		})
	}
	return hits, nil
}

// FetchDetail retrieves a full GeoNames record by its browse or
// sws.geonames.org URI.
func (c *Client) FetchDetail(ctx context.Context, detailURI string) (*gazetteers.Record, error) {
	if c.username == "" {
		return nil, errors.NewSearchParameterError("geonames",
			"a GeoNames username is required; register at https://www.geonames.org/login")
	}
	id, err := parseGeonameURI(detailURI)
	if err != nil {
		return nil, err
	}
	params := url.Values{"geonameId": {id}, "username": {c.username}, "style": {"full"}}
	dataURI := "https://" + apiNetloc + "/getJSON?" + params.Encode()

	resp, err := c.transport.Get(ctx, dataURI)
	if err != nil {
		return nil, errors.WrapAPI("geonames", 0, err)
	}
	var g geoname
	if err := transport.DecodeJSON("geonames", resp, &g); err != nil {
		return nil, err
	}
	if g.Status != nil {
		return nil, errors.NewAPIError("geonames", g.Status.Value, g.Status.Message)
	}
	if g.GeonameID == 0 {
		return nil, errors.NewNotFoundError("geoname", detailURI)
	}
	return normalize(g, dataURI), nil
}

// parseGeonameURI extracts the numeric geoname id from a browse URI
// (https://www.geonames.org/2461491) or a semantic-web URI
// (https://sws.geonames.org/2461491/about.rdf).
func parseGeonameURI(detailURI string) (string, error) {
	u, err := url.Parse(detailURI)
	if err != nil {
		return "", errors.NewValidationError("detail_uri", detailURI, "not a URI")
	}
	for _, segment := range strings.Split(strings.Trim(u.Path, "/"), "/") {
		if segment == "" {
			continue
		}
		if isDigits(segment) {
			return segment, nil
		}
	}
	return "", errors.NewValidationError("detail_uri", detailURI, "no geoname id in path")
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func summarize(g geoname) string {
	parts := make([]string, 0, 3)
	if g.FcodeName != "" {
		parts = append(parts, g.FcodeName)
	} else if g.FclName != "" {
		parts = append(parts, g.FclName)
	}
	if g.AdminName1 != "" {
		parts = append(parts, g.AdminName1)
	}
	if g.CountryName != "" {
		parts = append(parts, g.CountryName)
	}
	return strings.Join(parts, ", ")
}

// normalize maps a GeoNames document onto the internal record shape.
// The sws.geonames.org URI is the stable identifier GeoNames asserts
// for its own records.
func normalize(g geoname, sourceURI string) *gazetteers.Record {
	rec := &gazetteers.Record{
		Title:  g.Name,
		Source: sourceURI,
		Externals: []string{
			fmt.Sprintf("https://%s/%d/about.rdf", swsNetloc, g.GeonameID),
		},
	}
	if rec.Title == "" {
		rec.Title = g.ToponymName
	}
	if g.FcodeName != "" {
		rec.Descriptions = append(rec.Descriptions, gazetteers.Description{
			Text: summarize(g),
			Lang: "en",
		})
	}

	if g.ToponymName != "" {
		rec.Names = append(rec.Names, gazetteers.NameRecord{
			AttestedForm: g.ToponymName,
			NameType:     gazetteers.NameTypeGeographic,
		})
	}
	for _, alt := range g.AlternateNames {
		if alt.Name == "" || alt.Name == g.ToponymName {
			continue
		}
		// Pseudo-language codes ("link", "post", "iata", ...) mark
		// crosswalk identifiers and codes, not name forms.
		switch alt.Lang {
		case "link":
			if u, err := url.Parse(alt.Name); err == nil && u.IsAbs() {
				rec.Externals = append(rec.Externals, alt.Name)
			}
			continue
		case "post", "iata", "icao", "faac", "abbr", "wkdt", "unlc":
			continue
		}
		rec.Names = append(rec.Names, gazetteers.NameRecord{
			AttestedForm: alt.Name,
			Language:     alt.Lang,
			NameType:     gazetteers.NameTypeGeographic,
		})
	}

	if g.Lat != "" && g.Lng != "" {
		rec.Locations = append(rec.Locations, gazetteers.LocationRecord{
			Title: fmt.Sprintf("GeoNames coordinates for %s", rec.Title),
			Geometry: &gazetteers.Geometry{
				Type:        "Point",
				Coordinates: fmt.Appendf(nil, "[%s,%s]", g.Lng, g.Lat),
			},
		})
	}
	return rec
}
