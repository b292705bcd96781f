// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package overpass queries the OpenStreetMap Overpass API for tagged nodes around a point.
package overpass

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/wneessen/berlin-poi/internal/geo"
	"github.com/wneessen/berlin-poi/internal/http"
	"github.com/wneessen/berlin-poi/internal/logger"
)

const name = "overpass"

var ErrInvalidQuery = errors.New("invalid overpass query")

type Client struct {
	endpoint string
	http     *http.Client
	logger   *logger.Logger
	timeout  time.Duration
}

type Response struct {
	Version   float64   `json:"version"`
	Generator string    `json:"generator"`
	Remark    string    `json:"remark"`
	Elements  []Element `json:"elements"`
}

// Element is a single OSM node as returned by "out body".
type Element struct {
	Type string            `json:"type"`
	ID   int64             `json:"id"`
	Lat  float64           `json:"lat"`
	Lon  float64           `json:"lon"`
	Tags map[string]string `json:"tags"`
}

func New(client *http.Client, log *logger.Logger, endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		http:     client,
		logger:   log,
		timeout:  timeout,
	}
}

func (c *Client) Name() string {
	return name
}

// QueryAround returns all nodes carrying tagKey within radius meters of center. The
// request is sent exactly once.
func (c *Client) QueryAround(ctx context.Context, center geo.Point, radius float64, tagKey string) ([]Element, error) {
	query, err := AroundQuery(center, radius, tagKey, c.timeout)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("querying overpass API", slog.String("endpoint", c.endpoint), slog.String("query", query))

	form := url.Values{}
	form.Set("data", query)
	var response Response
	if _, err = c.http.PostFormWithTimeout(ctx, c.endpoint, &response, form, c.timeout); err != nil {
		return nil, fmt.Errorf("failed to query Overpass API: %w", err)
	}

	// Overpass reports runtime errors (timeouts, memory limits) in the remark of an
	// otherwise successful response.
	if strings.Contains(strings.ToLower(response.Remark), "error") {
		return nil, fmt.Errorf("overpass API returned an error: %s", response.Remark)
	}
	c.logger.Debug("overpass API returned elements", slog.Int("count", len(response.Elements)))

	return response.Elements, nil
}

// AroundQuery builds the Overpass QL query for nodes with tagKey around center. The
// server side timeout is aligned with the client timeout.
func AroundQuery(center geo.Point, radius float64, tagKey string, timeout time.Duration) (string, error) {
	if !center.Valid() {
		return "", fmt.Errorf("%w: invalid center %s", ErrInvalidQuery, center)
	}
	if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return "", fmt.Errorf("%w: invalid radius %g", ErrInvalidQuery, radius)
	}
	if tagKey == "" {
		return "", fmt.Errorf("%w: empty tag key", ErrInvalidQuery)
	}
	seconds := int(math.Ceil(timeout.Seconds()))
	if seconds < 1 {
		seconds = 1
	}

	return fmt.Sprintf(`[out:json][timeout:%d];node(around:%s,%s,%s)[%s];out body;`,
		seconds, formatFloat(radius), formatFloat(center.Lat), formatFloat(center.Lon), strconv.Quote(tagKey)), nil
}

func formatFloat(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}
