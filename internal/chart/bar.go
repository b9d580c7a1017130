// Package chart renders simple horizontal bar charts for the terminal.
// A Chart is data plus presentation attributes; themes restyle a chart by
// mutating only the presentation side.
package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Bar is one labeled value.
type Bar struct {
	Label string
	Value float64
}

// Chart is a rendered-object in the styling sense: Render draws it with
// whatever presentation attributes it currently carries.
type Chart struct {
	Title  string
	XLabel string
	Bars   []Bar

	// Presentation attributes. Zero values render as plain text, which is
	// also the degraded output when no color renderer is available.
	TitleStyle lipgloss.Style
	LabelStyle lipgloss.Style
	TickStyle  lipgloss.Style
	AxisStyle  lipgloss.Style
	BarColors  []lipgloss.Color

	// Width is the maximum bar length in cells.
	Width int
}

// New creates an unstyled chart with the default width.
func New(title string, bars []Bar) *Chart {
	return &Chart{
		Title: title,
		Bars:  bars,
		Width: 40,
	}
}

// Render draws the chart as a multi-line string.
func (c *Chart) Render() string {
	var b strings.Builder

	if c.Title != "" {
		b.WriteString(c.TitleStyle.Render(c.Title))
		b.WriteString("\n")
	}

	labelWidth := 0
	maxValue := 0.0
	for _, bar := range c.Bars {
		if len(bar.Label) > labelWidth {
			labelWidth = len(bar.Label)
		}
		if bar.Value > maxValue {
			maxValue = bar.Value
		}
	}

	for i, bar := range c.Bars {
		length := 0
		if maxValue > 0 {
			length = int(bar.Value / maxValue * float64(c.Width))
		}
		if bar.Value > 0 && length == 0 {
			length = 1
		}

		barStyle := lipgloss.NewStyle()
		if len(c.BarColors) > 0 {
			barStyle = barStyle.Foreground(c.BarColors[i%len(c.BarColors)])
		}

		b.WriteString(c.TickStyle.Render(fmt.Sprintf("%*s", labelWidth, bar.Label)))
		b.WriteString(c.AxisStyle.Render(" ┤ "))
		b.WriteString(barStyle.Render(strings.Repeat("█", length)))
		b.WriteString(c.TickStyle.Render(fmt.Sprintf(" %.2f", bar.Value)))
		b.WriteString("\n")
	}

	if c.XLabel != "" {
		b.WriteString(c.LabelStyle.Render(c.XLabel))
		b.WriteString("\n")
	}

	return b.String()
}
