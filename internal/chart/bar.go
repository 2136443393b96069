package chart

import (
	"math"
	"strconv"
	"strings"

	"schooldesk/internal/textutil"
)

const (
	defaultBarHeight = 10
	defaultBarWidth  = 4
)

// Bar draws vertical bars on a 0..Max axis with the labels underneath.
type Bar struct {
	Title    string
	Points   []Point
	Max      float64 // y-limit; 0 uses the largest value
	Height   int     // plot rows; 0 uses the default
	BarWidth int     // columns per bar; 0 uses the default
}

func (c Bar) height() int {
	if c.Height <= 0 {
		return defaultBarHeight
	}
	return c.Height
}

func (c Bar) max() float64 {
	if c.Max > 0 {
		return c.Max
	}
	var m float64
	for _, p := range c.Points {
		m = math.Max(m, p.Value)
	}
	return m
}

// Heights returns the filled rows per bar. Values above Max are clamped to
// the full plot height.
func (c Bar) Heights() []int {
	h := c.height()
	limit := c.max()
	out := make([]int, len(c.Points))
	if limit <= 0 {
		return out
	}
	for i, p := range c.Points {
		n := int(math.Round(nonNegative(p.Value) / limit * float64(h)))
		out[i] = min(n, h)
	}
	return out
}

// Render implements the text drawing.
func (c Bar) Render() string {
	h := c.height()
	heights := c.Heights()
	barWidth := c.BarWidth
	if barWidth <= 0 {
		barWidth = defaultBarWidth
	}
	colWidth := barWidth
	for _, p := range c.Points {
		colWidth = max(colWidth, textutil.VisualWidth(p.Label))
	}

	top := strconv.FormatFloat(c.max(), 'g', -1, 64)
	axisWidth := textutil.VisualWidth(top)

	var b strings.Builder
	if c.Title != "" {
		plotWidth := axisWidth + 2 + len(c.Points)*(colWidth+1)
		b.WriteString(titleStyle.Render(textutil.Center(c.Title, plotWidth)) + "\n")
	}

	bar := strings.Repeat(block, barWidth)
	for row := h; row >= 1; row-- {
		tick := ""
		if row == h {
			tick = top
		}
		b.WriteString(textutil.PadLeft(tick, axisWidth) + " │")
		for i := range c.Points {
			cell := ""
			if heights[i] >= row {
				cell = colorFor(i).Render(bar)
			}
			b.WriteString(textutil.Center(cell, colWidth) + " ")
		}
		b.WriteString("\n")
	}

	b.WriteString(textutil.PadLeft("0", axisWidth) + " └" + strings.Repeat("─", len(c.Points)*(colWidth+1)) + "\n")
	b.WriteString(strings.Repeat(" ", axisWidth+2))
	for _, p := range c.Points {
		b.WriteString(textutil.Center(p.Label, colWidth) + " ")
	}
	return strings.TrimRight(b.String(), " \n")
}
