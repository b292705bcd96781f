// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package geocodeearth

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"golang.org/x/text/language"

	"github.com/wneessen/berlin-poi/internal/geo"
	"github.com/wneessen/berlin-poi/internal/geocode"
	"github.com/wneessen/berlin-poi/internal/http"
)

const (
	APIEndpoint = "https://api.geocode.earth/v1/search"
	name        = "geocode-earth"
)

type GeocodeEarth struct {
	apikey  string
	http    *http.Client
	lang    language.Tag
	timeout time.Duration
}

type Response struct {
	Features []Feature `json:"features"`
	Type     string    `json:"type"`
}

type Feature struct {
	Geometry   Geometry   `json:"geometry"`
	Properties Properties `json:"properties"`
	Type       string     `json:"type"`
}

// Geometry is a GeoJSON point, coordinates are ordered longitude, latitude.
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

type Properties struct {
	DisplayName string  `json:"label"`
	Confidence  float64 `json:"confidence"`
	Layer       string  `json:"layer"`
}

func New(client *http.Client, lang language.Tag, apikey string, timeout time.Duration) *GeocodeEarth {
	return &GeocodeEarth{
		apikey:  apikey,
		http:    client,
		lang:    lang,
		timeout: timeout,
	}
}

func (g *GeocodeEarth) Name() string {
	return name
}

func (g *GeocodeEarth) Search(ctx context.Context, address string) (geocode.Location, error) {
	var response Response

	query := url.Values{}
	query.Set("api_key", g.apikey)
	query.Set("text", address)
	query.Set("size", "1")
	query.Set("lang", g.lang.String())

	if _, err := g.http.GetWithTimeout(ctx, APIEndpoint, &response, query, nil, g.timeout); err != nil {
		return geocode.Location{}, fmt.Errorf("failed to retrieve address details from geocode.earth API: %w", err)
	}
	if len(response.Features) < 1 {
		return geocode.Location{}, nil
	}

	feature := response.Features[0]
	if len(feature.Geometry.Coordinates) < 2 {
		return geocode.Location{}, fmt.Errorf("geocode.earth API returned a feature without coordinates")
	}
	return geocode.Location{
		Found:       true,
		Point:       geo.Point{Lat: feature.Geometry.Coordinates[1], Lon: feature.Geometry.Coordinates[0]},
		DisplayName: feature.Properties.DisplayName,
	}, nil
}
