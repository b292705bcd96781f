// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package geo

import (
	"math"
	"testing"
)

var testPoints = []Point{
	{Lat: 52.5200, Lon: 13.4050},
	{Lat: 0, Lon: 0},
	{Lat: 90, Lon: 0},
	{Lat: -90, Lon: 180},
	{Lat: 0, Lon: 179.9999},
	{Lat: 0, Lon: -179.9999},
	{Lat: -33.8688, Lon: 151.2093},
	{Lat: 40.7128, Lon: -74.0060},
}

func TestDistance(t *testing.T) {
	t.Run("distance to itself is zero", func(t *testing.T) {
		for _, p := range testPoints {
			if d := Distance(p, p); d != 0 {
				t.Errorf("expected distance of %s to itself to be 0, got %f", p, d)
			}
		}
	})
	t.Run("distance is symmetric", func(t *testing.T) {
		for _, a := range testPoints {
			for _, b := range testPoints {
				ab, ba := Distance(a, b), Distance(b, a)
				if math.Abs(ab-ba) > 1e-6 {
					t.Errorf("expected symmetric distance between %s and %s, got %f and %f", a, b, ab, ba)
				}
			}
		}
	})
	t.Run("0.00225 degrees of latitude at the equator are about 250 meters", func(t *testing.T) {
		d := Distance(Point{Lat: 0, Lon: 0}, Point{Lat: 0.00225, Lon: 0})
		if math.Abs(d-250) > 2.5 {
			t.Errorf("expected distance to be 250m (+-1%%), got %f", d)
		}
	})
	t.Run("antipodal points are half the circumference apart", func(t *testing.T) {
		tests := []struct {
			name string
			a, b Point
		}{
			{"equator", Point{Lat: 0, Lon: 0}, Point{Lat: 0, Lon: 180}},
			{"poles", Point{Lat: 90, Lon: 0}, Point{Lat: -90, Lon: 0}},
			{"berlin", Point{Lat: 52.52, Lon: 13.405}, Point{Lat: -52.52, Lon: -166.595}},
		}
		want := math.Pi * EarthRadius
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				d := Distance(tc.a, tc.b)
				if math.IsNaN(d) {
					t.Fatal("expected distance to be a number")
				}
				if math.Abs(d-want) > 1 {
					t.Errorf("expected distance to be %f, got %f", want, d)
				}
			})
		}
	})
	t.Run("crossing the antimeridian takes the short way", func(t *testing.T) {
		d := Distance(Point{Lat: 0, Lon: 179.9999}, Point{Lat: 0, Lon: -179.9999})
		if d > 25 {
			t.Errorf("expected distance across the antimeridian to be about 22m, got %f", d)
		}
	})
	t.Run("points near the pole", func(t *testing.T) {
		d := Distance(Point{Lat: 89.9999, Lon: 0}, Point{Lat: 89.9999, Lon: 180})
		if math.Abs(d-22.239) > 0.01 {
			t.Errorf("expected distance over the pole to be about 22.239m, got %f", d)
		}
	})
	t.Run("known distance between two Berlin landmarks", func(t *testing.T) {
		// Brandenburger Tor to Alexanderplatz
		d := Distance(Point{Lat: 52.516275, Lon: 13.377704}, Point{Lat: 52.521918, Lon: 13.413215})
		if math.Abs(d-2488) > 25 {
			t.Errorf("expected distance to be about 2.49km, got %f", d)
		}
	})
}

func TestPoint_DistanceTo(t *testing.T) {
	a := Point{Lat: 52.52, Lon: 13.405}
	b := Point{Lat: 52.521, Lon: 13.406}
	if a.DistanceTo(b) != Distance(a, b) {
		t.Errorf("expected DistanceTo to match Distance")
	}
}

func TestPoint_Valid(t *testing.T) {
	tests := []struct {
		name  string
		point Point
		want  bool
	}{
		{"berlin", Point{Lat: 52.52, Lon: 13.405}, true},
		{"north pole", Point{Lat: 90, Lon: 0}, true},
		{"antimeridian", Point{Lat: 0, Lon: -180}, true},
		{"latitude too large", Point{Lat: 90.1, Lon: 0}, false},
		{"latitude too small", Point{Lat: -90.1, Lon: 0}, false},
		{"longitude too large", Point{Lat: 0, Lon: 180.1}, false},
		{"longitude too small", Point{Lat: 0, Lon: -180.1}, false},
		{"NaN", Point{Lat: math.NaN(), Lon: 0}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.point.Valid(); got != tc.want {
				t.Errorf("expected Valid() for %s to be %t, got %t", tc.point, tc.want, got)
			}
		})
	}
}
