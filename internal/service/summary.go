// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/wneessen/berlin-poi/internal/geo"
	"github.com/wneessen/berlin-poi/internal/poi"
	"github.com/wneessen/berlin-poi/internal/presenter"
)

// summary writes the console output of a run. Styles are only applied if the
// writer is a terminal that supports them.
type summary struct {
	out     io.Writer
	heading lipgloss.Style
	notice  lipgloss.Style
}

func newSummary(out io.Writer) *summary {
	renderer := lipgloss.NewRenderer(out)
	return &summary{
		out:     out,
		heading: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("#00AF00")),
		notice:  renderer.NewStyle().Foreground(lipgloss.Color("#D7AF00")),
	}
}

func (s *summary) coordinates(address string, origin geo.Point) {
	_, _ = fmt.Fprintf(s.out, "Coordinates for %s: %s\n", address, origin)
}

func (s *summary) results(pois []poi.PointOfInterest, radius float64) {
	heading := fmt.Sprintf("Found %d named points of interest within %g meters:", len(pois), radius)
	_, _ = fmt.Fprintf(s.out, "\n%s\n%s\n", s.heading.Render(heading),
		strings.Repeat("-", runewidth.StringWidth(heading)))
	for _, p := range pois {
		_, _ = fmt.Fprintf(s.out, "- %s (%s) at %s, %s meters away\n", p.Name, p.Category, p.Location,
			presenter.FormatDistance(p.Distance))
	}
}

func (s *summary) saved(path string) {
	_, _ = fmt.Fprintf(s.out, "Map saved as '%s'. Open it in a web browser to view.\n", path)
}

func (s *summary) noResults(radius float64) {
	_, _ = fmt.Fprintln(s.out, s.notice.Render(fmt.Sprintf("No named points of interest found within %g meters.",
		radius)))
}

func (s *summary) addressNotFound() {
	_, _ = fmt.Fprintln(s.out, s.notice.Render("Could not find coordinates for the address."))
}

func (s *summary) failure(stage State, err error) {
	_, _ = fmt.Fprintf(s.out, "Error %s: %s\n", stage.activity(), err)
}
