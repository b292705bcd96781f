// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/wneessen/berlin-poi/internal/geo"
)

//go:embed templates/*
var templates embed.FS

// Map describes an interactive map document independently of the library that
// draws it.
type Map struct {
	Title   string   `json:"title"`
	Center  LatLon   `json:"center"`
	Zoom    int      `json:"zoom"`
	Markers []Marker `json:"markers"`
	Circles []Circle `json:"circles"`
}

// LatLon is a coordinate in the [lat, lon] order Leaflet expects.
type LatLon [2]float64

func NewLatLon(p geo.Point) LatLon {
	return LatLon{p.Lat, p.Lon}
}

type Marker struct {
	Location LatLon `json:"location"`
	Popup    string `json:"popup"`
	Icon     Icon   `json:"icon"`
}

type Icon struct {
	Color string `json:"color"`
	Name  string `json:"name"`
}

type Circle struct {
	Center LatLon  `json:"center"`
	Radius float64 `json:"radius"`
	CircleStyle
}

type CircleStyle struct {
	Color       string  `json:"color"`
	Fill        bool    `json:"fill"`
	FillOpacity float64 `json:"fillOpacity"`
}

// Renderer produces a self-contained map document.
type Renderer interface {
	Render(w io.Writer, m Map) error
}

// LeafletRenderer renders a single HTML page that draws the map with Leaflet. All map
// data is embedded in the page; only the Leaflet assets and tiles are fetched by the
// browser.
type LeafletRenderer struct {
	tpl *template.Template
}

func NewLeafletRenderer() (*LeafletRenderer, error) {
	tpl, err := template.New("map.html.tmpl").Funcs(templateFuncMap()).ParseFS(templates, "templates/map.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse map template: %w", err)
	}
	return &LeafletRenderer{tpl: tpl}, nil
}

func (l *LeafletRenderer) Render(w io.Writer, m Map) error {
	if err := l.tpl.Execute(w, m); err != nil {
		return fmt.Errorf("failed to render map template: %w", err)
	}
	return nil
}
