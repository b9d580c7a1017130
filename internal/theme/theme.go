// Package theme provides the "rivers in the desert" chart theme: muted
// blues and greens for data, gold for labels, peach for titles.
//
// A Theme is an explicit immutable value handed to a rendering call. There
// is no package-level styling state; restyling means constructing a theme
// and applying it to a chart.
package theme

import (
	"github.com/Veraticus/ecomforge/internal/chart"
	"github.com/charmbracelet/lipgloss"
)

// Theme is a fixed set of presentation parameters.
type Theme struct {
	// Background and foreground roles.
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Dim        lipgloss.Color

	// Chart roles.
	Title lipgloss.Color // plot titles (rocky peach)
	Label lipgloss.Color // axis labels (dune gold)
	Ticks lipgloss.Color // axis ticks (recedes)

	// Cycle is the base series palette as hex strings, ordered for maximum
	// visual distinction in multi-series charts.
	Cycle []string

	// AccentIndex locates the warm sand accent inside Cycle, so the
	// water-only palette can exclude it.
	AccentIndex int

	BoldTitles bool
}

// ArrakisNight returns the standard dark theme.
func ArrakisNight() Theme {
	return Theme{
		Background:  lipgloss.Color("#2B2927"),
		Surface:     lipgloss.Color("#403E41"),
		Text:        lipgloss.Color("#C6CBCC"),
		Muted:       lipgloss.Color("#939293"),
		Dim:         lipgloss.Color("#5B595C"),
		Title:       lipgloss.Color("#D19577"),
		Label:       lipgloss.Color("#CCA361"),
		Ticks:       lipgloss.Color("#939293"),
		BoldTitles:  true,
		AccentIndex: 3,
		Cycle: []string{
			"#7BA898", // river teal
			"#8EC4D4", // light blue
			"#4A7088", // dark blue
			"#CCA361", // golden sand accent
			"#8FBA70", // oasis green
			"#4A7858", // dark green
			"#6BA8B0", // shallow pool
			"#D4A868", // light sand
			"#5A9A78", // medium green
			"#7AA0B0", // medium blue
		},
	}
}

// Palette returns n hex color strings from the base cycle, repeating the
// cycle when n exceeds its length.
func (t Theme) Palette(n int) []string {
	if n <= 0 || len(t.Cycle) == 0 {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		out[i] = t.Cycle[i%len(t.Cycle)]
	}
	return out
}

// WaterPalette is Palette without the warm sand accent: blues and greens
// only.
func (t Theme) WaterPalette(n int) []string {
	water := make([]string, 0, len(t.Cycle))
	for i, c := range t.Cycle {
		if i == t.AccentIndex {
			continue
		}
		water = append(water, c)
	}
	if n <= 0 || len(water) == 0 {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		out[i] = water[i%len(water)]
	}
	return out
}

// Apply restyles an already-rendered chart object. Only presentation
// attributes are touched; the chart's data is never read or modified.
// A nil chart is skipped silently, and color degrades to plain text on
// terminals without a color renderer.
func (t Theme) Apply(c *chart.Chart) {
	if c == nil {
		return
	}

	c.TitleStyle = lipgloss.NewStyle().Bold(t.BoldTitles).Foreground(t.Title)
	c.LabelStyle = lipgloss.NewStyle().Foreground(t.Label)
	c.TickStyle = lipgloss.NewStyle().Foreground(t.Ticks)
	c.AxisStyle = lipgloss.NewStyle().Foreground(t.Dim)

	colors := t.Palette(len(c.Bars))
	c.BarColors = make([]lipgloss.Color, len(colors))
	for i, hex := range colors {
		c.BarColors[i] = lipgloss.Color(hex)
	}
}
