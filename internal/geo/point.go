// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package geo holds the coordinate type shared by all stages and the great-circle
// distance calculation used to filter points of interest.
package geo

import (
	"fmt"
	"math"
)

// EarthRadius is the radius of the spherical Earth model in meters.
const EarthRadius = 6371000.0

// Point represents a geographic coordinate in decimal degrees.
type Point struct {
	Lat float64
	Lon float64
}

// Valid checks if the coordinate is valid according to the EPSG logic
func (p Point) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lon) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// DistanceTo returns the great-circle distance in meters between p and other.
func (p Point) DistanceTo(other Point) float64 {
	return Distance(p, other)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.Lat, p.Lon)
}

// Distance calculates the great-circle distance in meters between two points on a sphere
// (in our case: Earth) using the Haversine formula.
func Distance(a, b Point) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	// Rounding can push h slightly outside [0,1] for antipodal points.
	h = math.Min(1, math.Max(0, h))

	return 2 * EarthRadius * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
