// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package geocode

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wneessen/berlin-poi/internal/geo"
	"github.com/wneessen/berlin-poi/internal/logger"
)

// LocalityQualifier is appended to every address. Lookups are limited to Berlin.
const LocalityQualifier = ", Berlin, Germany"

var (
	ErrAddressNotFound      = errors.New("address not found")
	ErrGeocodingUnavailable = errors.New("geocoding service unavailable")
)

// Resolver turns a Berlin street address into a single coordinate.
type Resolver struct {
	coder  Geocoder
	logger *logger.Logger
}

func NewResolver(coder Geocoder, log *logger.Logger) *Resolver {
	return &Resolver{coder: coder, logger: log}
}

// Query returns the string sent to the geocoder for the given address.
func Query(address string) string {
	return strings.TrimSpace(address) + LocalityQualifier
}

// Resolve looks up the address via the Geocoder. The returned error matches either
// ErrAddressNotFound or ErrGeocodingUnavailable.
func (r *Resolver) Resolve(ctx context.Context, address string) (geo.Point, error) {
	if strings.TrimSpace(address) == "" {
		return geo.Point{}, fmt.Errorf("%w: empty address", ErrAddressNotFound)
	}

	query := Query(address)
	r.logger.Debug("geocoding address", slog.String("query", query), slog.String("provider", r.coder.Name()))
	loc, err := r.coder.Search(ctx, query)
	if err != nil {
		return geo.Point{}, fmt.Errorf("%w: %s: %w", ErrGeocodingUnavailable, r.coder.Name(), err)
	}
	if !loc.Found {
		return geo.Point{}, fmt.Errorf("%w: %q", ErrAddressNotFound, address)
	}
	if !loc.Point.Valid() {
		return geo.Point{}, fmt.Errorf("%w: %s returned invalid coordinate %s", ErrGeocodingUnavailable,
			r.coder.Name(), loc.Point)
	}
	r.logger.Debug("address resolved", slog.String("display_name", loc.DisplayName),
		slog.Float64("lat", loc.Point.Lat), slog.Float64("lon", loc.Point.Lon))

	return loc.Point, nil
}
