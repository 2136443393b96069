package chart

import (
	"fmt"
	"math"
	"strings"

	"schooldesk/internal/textutil"
)

const defaultPieRadius = 5

// Pie draws a filled disk split into slices, followed by a legend with the
// share of each slice formatted like "66.7%".
type Pie struct {
	Title  string
	Points []Point
	Radius int // rows above and below the center; 0 uses the default
}

// Fractions returns each point's share of the total, in input order.
// A series with no positive total yields all zeros.
func (c Pie) Fractions() []float64 {
	out := make([]float64, len(c.Points))
	var total float64
	for _, p := range c.Points {
		total += nonNegative(p.Value)
	}
	if total <= 0 {
		return out
	}
	for i, p := range c.Points {
		out[i] = nonNegative(p.Value) / total
	}
	return out
}

// Percent formats a fraction the way the legend shows it.
func Percent(fraction float64) string {
	return fmt.Sprintf("%.1f%%", fraction*100)
}

// sliceAt returns the slice index covering angle (radians, counterclockwise
// from three o'clock), or -1 when every slice is empty.
func sliceAt(angle float64, fractions []float64) int {
	pos := angle / (2 * math.Pi)
	var cum float64
	last := -1
	for i, f := range fractions {
		if f <= 0 {
			continue
		}
		last = i
		cum += f
		if pos < cum {
			return i
		}
	}
	return last
}

// Render implements the text drawing. Cells are twice as wide as they are
// tall in most terminals, so x is halved to keep the disk round.
func (c Pie) Render() string {
	r := c.Radius
	if r <= 0 {
		r = defaultPieRadius
	}
	fractions := c.Fractions()

	var b strings.Builder
	width := 4*r + 1
	if c.Title != "" {
		b.WriteString(titleStyle.Render(textutil.Center(c.Title, width)) + "\n")
	}

	limit := float64(r*r) + 0.5
	for y := -r; y <= r; y++ {
		for x := -2 * r; x <= 2*r; x++ {
			fx := float64(x) / 2
			fy := float64(y)
			if fx*fx+fy*fy > limit {
				b.WriteString(" ")
				continue
			}
			angle := math.Atan2(-fy, fx)
			if angle < 0 {
				angle += 2 * math.Pi
			}
			i := sliceAt(angle, fractions)
			if i < 0 {
				b.WriteString("·")
				continue
			}
			b.WriteString(colorFor(i).Render(block))
		}
		b.WriteString("\n")
	}

	labelWidth := 0
	for _, p := range c.Points {
		if w := textutil.VisualWidth(p.Label); w > labelWidth {
			labelWidth = w
		}
	}
	for i, p := range c.Points {
		b.WriteString(fmt.Sprintf("%s %s %6s\n",
			colorFor(i).Render("■"),
			textutil.PadRight(p.Label, labelWidth),
			Percent(fractions[i]),
		))
	}
	return strings.TrimRight(b.String(), "\n")
}
