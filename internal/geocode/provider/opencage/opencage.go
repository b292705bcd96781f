// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package opencage

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
	APIEndpoint = "https://api.opencagedata.com/geocode/v1/json"
	name        = "opencage"
)

type OpenCage struct {
	apikey  string
	http    *http.Client
	lang    language.Tag
	timeout time.Duration
}

type Response struct {
	Results      []Result `json:"results"`
	Status       Status   `json:"status"`
	TotalResults int      `json:"total_results"`
}

type Status struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Result struct {
	Confidence  int      `json:"confidence"`
	DisplayName string   `json:"formatted"`
	Geometry    Geometry `json:"geometry"`
}

type Geometry struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lng"`
}

func New(client *http.Client, lang language.Tag, apikey string, timeout time.Duration) *OpenCage {
	return &OpenCage{
		apikey:  apikey,
		http:    client,
		lang:    lang,
		timeout: timeout,
	}
}

func (o *OpenCage) Name() string {
	return name
}

func (o *OpenCage) Search(ctx context.Context, address string) (geocode.Location, error) {
	var response Response

	query := url.Values{}
	query.Set("key", o.apikey)
	query.Set("q", address)
	query.Set("limit", "1")
	query.Set("no_annotations", "1")
	query.Set("no_record", "1")
	query.Set("language", o.lang.String())

	if _, err := o.http.GetWithTimeout(ctx, APIEndpoint, &response, query, nil, o.timeout); err != nil {
		return geocode.Location{}, fmt.Errorf("failed to retrieve address details from OpenCage API: %w", err)
	}
	if response.Status.Code != 0 && response.Status.Code != 200 {
		return geocode.Location{}, fmt.Errorf("received error status %d from OpenCage API: %s", response.Status.Code,
			response.Status.Message)
	}
	if response.TotalResults < 1 || len(response.Results) < 1 {
		return geocode.Location{}, nil
	}

	result := response.Results[0]
	return geocode.Location{
		Found:       true,
		Point:       geo.Point{Lat: result.Geometry.Lat, Lon: result.Geometry.Lon},
		DisplayName: result.DisplayName,
	}, nil
}
