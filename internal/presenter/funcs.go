// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"fmt"
	"html/template"
	"math"
)

func templateFuncMap() template.FuncMap {
	return template.FuncMap{
		"floatFormat": floatFormat,
	}
}

// floatFormat rounds val half away from zero to precision decimals.
func floatFormat(val float64, precision int) string {
	pow := math.Pow(10, float64(precision))
	return fmt.Sprintf("%.*f", precision, math.Round(val*pow)/pow)
}

// FormatDistance renders a distance in meters rounded to two decimals.
func FormatDistance(meters float64) string {
	return floatFormat(meters, 2)
}
