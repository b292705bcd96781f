// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package poi finds named points of interest around a coordinate. Candidates are
// retrieved from a map-data Source and filtered by their great-circle distance.
package poi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/wneessen/berlin-poi/internal/geo"
	"github.com/wneessen/berlin-poi/internal/logger"
	"github.com/wneessen/berlin-poi/internal/overpass"
)

const (
	// CategoryTag is the OSM tag key that candidates must carry.
	CategoryTag = "amenity"
	NameTag     = "name"

	// placeholderName is treated like a missing name.
	placeholderName = "Unnamed POI"
)

var (
	ErrQueryFailed  = errors.New("POI query failed")
	ErrInvalidQuery = errors.New("invalid POI query")
)

// PointOfInterest is a named, categorized location and its distance in meters to
// the query origin.
type PointOfInterest struct {
	Name     string
	Category string
	Location geo.Point
	Distance float64
}

// Query holds the origin and the radius in meters. The radius applies to both the
// upstream request and the local filter.
type Query struct {
	Origin geo.Point
	Radius float64
}

func (q Query) Validate() error {
	if !q.Origin.Valid() {
		return fmt.Errorf("%w: invalid origin %s", ErrInvalidQuery, q.Origin)
	}
	if q.Radius <= 0 || math.IsNaN(q.Radius) || math.IsInf(q.Radius, 0) {
		return fmt.Errorf("%w: radius must be a positive number, got %g", ErrInvalidQuery, q.Radius)
	}
	return nil
}

// Source is the map-data collaborator.
type Source interface {
	Name() string
	QueryAround(ctx context.Context, center geo.Point, radius float64, tagKey string) ([]overpass.Element, error)
}

type Service struct {
	source Source
	logger *logger.Logger
}

func New(source Source, log *logger.Logger) *Service {
	return &Service{source: source, logger: log}
}

// Find returns the named points of interest within radius meters of origin in the
// order the Source returned them. If the Source fails, an empty slice is returned
// together with an error matching ErrQueryFailed, so callers may carry on as if
// nothing was found.
func (s *Service) Find(ctx context.Context, origin geo.Point, radius float64) ([]PointOfInterest, error) {
	query := Query{Origin: origin, Radius: radius}
	if err := query.Validate(); err != nil {
		return []PointOfInterest{}, err
	}

	candidates, err := s.source.QueryAround(ctx, query.Origin, query.Radius, CategoryTag)
	if err != nil {
		return []PointOfInterest{}, fmt.Errorf("%w: %s: %w", ErrQueryFailed, s.source.Name(), err)
	}

	pois := Filter(query, candidates)
	s.logger.Debug("filtered POI candidates", slog.Int("candidates", len(candidates)),
		slog.Int("accepted", len(pois)))

	return pois, nil
}

// Filter turns raw candidates into points of interest. Candidates without a category tag,
// with an invalid coordinate, farther away than the radius or without a usable name
// are dropped. Order is preserved.
func Filter(query Query, candidates []overpass.Element) []PointOfInterest {
	pois := make([]PointOfInterest, 0, len(candidates))
	for _, candidate := range candidates {
		category, ok := candidate.Tags[CategoryTag]
		if !ok {
			continue
		}
		location := geo.Point{Lat: candidate.Lat, Lon: candidate.Lon}
		if !location.Valid() {
			continue
		}

		distance := geo.Distance(query.Origin, location)
		if distance > query.Radius {
			continue
		}

		name := strings.TrimSpace(candidate.Tags[NameTag])
		if name == "" || name == placeholderName {
			continue
		}

		pois = append(pois, PointOfInterest{
			Name:     name,
			Category: category,
			Location: location,
			Distance: distance,
		})
	}
	return pois
}
