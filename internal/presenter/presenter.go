// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/wneessen/berlin-poi/internal/geo"
	"github.com/wneessen/berlin-poi/internal/logger"
	"github.com/wneessen/berlin-poi/internal/poi"
)

// Request is everything needed to draw one result map.
type Request struct {
	Origin geo.Point
	Label  string
	POIs   []poi.PointOfInterest
	Radius float64
}

// Builder turns a Request into a map document and stores it at a fixed path.
type Builder struct {
	renderer Renderer
	path     string
	zoom     int
	logger   *logger.Logger
}

func NewBuilder(renderer Renderer, path string, zoom int, log *logger.Logger) *Builder {
	return &Builder{
		renderer: renderer,
		path:     path,
		zoom:     zoom,
		logger:   log,
	}
}

// Path returns the location the artifact is written to.
func (b *Builder) Path() string {
	return b.path
}

// BuildMap maps a Request onto the generic map description: one marker for the origin,
// one per POI and a circle showing the search radius.
func (b *Builder) BuildMap(req Request) Map {
	markers := make([]Marker, 0, len(req.POIs)+1)
	markers = append(markers, Marker{
		Location: NewLatLon(req.Origin),
		Popup:    "Starting Point: " + req.Label,
		Icon:     OriginIcon,
	})
	for _, p := range req.POIs {
		markers = append(markers, Marker{
			Location: NewLatLon(p.Location),
			Popup:    fmt.Sprintf("%s (%s)\n%sm", p.Name, p.Category, FormatDistance(p.Distance)),
			Icon:     POIIcon,
		})
	}

	return Map{
		Title:   "Points of interest near " + req.Label,
		Center:  NewLatLon(req.Origin),
		Zoom:    b.zoom,
		Markers: markers,
		Circles: []Circle{{
			Center:      NewLatLon(req.Origin),
			Radius:      req.Radius,
			CircleStyle: RadiusStyle,
		}},
	}
}

// Render draws the map and writes it to the builder's path, replacing any file that
// already exists there. The path is returned on success.
func (b *Builder) Render(req Request) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := b.renderer.Render(buf, b.BuildMap(req)); err != nil {
		return "", err
	}
	if err := os.WriteFile(b.path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("failed to write map to %s: %w", b.path, err)
	}
	b.logger.Debug("map written", slog.String("path", b.path), slog.Int("bytes", buf.Len()),
		slog.Int("markers", len(req.POIs)+1))

	return b.path, nil
}
