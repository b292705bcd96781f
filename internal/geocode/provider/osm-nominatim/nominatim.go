// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package nominatim

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/text/language"

	"github.com/wneessen/berlin-poi/internal/geocode"
	"github.com/wneessen/berlin-poi/internal/http"
)

const (
	APISearchEndpoint = "https://nominatim.openstreetmap.org/search"
	name              = "osm-nominatim"
)

type Nominatim struct {
	http    *http.Client
	lang    language.Tag
	timeout time.Duration
}

type SearchResult struct {
	APILat      string  `json:"lat"`
	APILon      string  `json:"lon"`
	Name        string  `json:"name"`
	DisplayName string  `json:"display_name"`
	Category    string  `json:"category"`
	Type        string  `json:"type"`
	Importance  float64 `json:"importance"`
}

func New(client *http.Client, lang language.Tag, timeout time.Duration) *Nominatim {
	return &Nominatim{
		http:    client,
		lang:    lang,
		timeout: timeout,
	}
}

func (n *Nominatim) Name() string {
	return name
}

// Search returns the first match Nominatim ranks for the query.
func (n *Nominatim) Search(ctx context.Context, address string) (geocode.Location, error) {
	var result []SearchResult
	var err error

	query := url.Values{}
	query.Set("format", "jsonv2")
	query.Set("q", address)
	query.Set("limit", "1")
	query.Set("accept-language", n.lang.String())

	if _, err = n.http.GetWithTimeout(ctx, APISearchEndpoint, &result, query, nil, n.timeout); err != nil {
		return geocode.Location{}, fmt.Errorf("failed to fetch address details from Nominatim API: %w", err)
	}
	if len(result) < 1 {
		return geocode.Location{}, nil
	}

	loc := geocode.Location{Found: true, DisplayName: result[0].DisplayName}
	loc.Point.Lat, err = strconv.ParseFloat(result[0].APILat, 64)
	if err != nil {
		return geocode.Location{}, fmt.Errorf("failed to parse latitude from Nominatim API response: %w", err)
	}
	loc.Point.Lon, err = strconv.ParseFloat(result[0].APILon, 64)
	if err != nil {
		return geocode.Location{}, fmt.Errorf("failed to parse longitude from Nominatim API response: %w", err)
	}

	return loc, nil
}
