// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

// Marker icon styles, named after the Leaflet.awesome-markers colors and the
// Bootstrap 3 glyphicons they use.
var (
	OriginIcon = Icon{Color: "red", Name: "info-sign"}
	POIIcon    = Icon{Color: "blue", Name: "star"}
)

// RadiusStyle is the style of the circle outlining the search radius.
var RadiusStyle = CircleStyle{Color: "green", Fill: true, FillOpacity: 0.1}
