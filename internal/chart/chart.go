// Package chart renders small pie and bar charts as terminal text.
//
// Both charts take an ordered sequence of (label, value) points and keep that
// order in the drawing and in the legend.
package chart

import "github.com/charmbracelet/lipgloss"

// Point is one labelled value in a chart series.
type Point struct {
	Label string
	Value float64
}

// Palette is cycled across slices and bars.
var Palette = []lipgloss.Color{
	lipgloss.Color("39"),  // blue
	lipgloss.Color("214"), // orange
	lipgloss.Color("42"),  // green
	lipgloss.Color("205"), // magenta
	lipgloss.Color("196"), // red
	lipgloss.Color("141"), // purple
}

const block = "█"

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))

func colorFor(i int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Palette[i%len(Palette)])
}

// nonNegative treats negative values as empty slices or bars.
func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
