// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package geocode

import (
	"context"

	"github.com/wneessen/berlin-poi/internal/geo"
)

// Location is the best match a Geocoder returned for a free-text query. Found is false
// if the provider had no match at all.
type Location struct {
	Found       bool
	Point       geo.Point
	DisplayName string
}

// Geocoder performs forward geocoding of free-text queries.
type Geocoder interface {
	Name() string
	Search(ctx context.Context, query string) (Location, error)
}
