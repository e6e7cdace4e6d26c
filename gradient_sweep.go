package gg

import "math"

// SweepGradientBrush represents an angular (conic) color transition around a
// center point, per §3's Conic{c, angle0} variant.
//
// Example:
//
//	wheel := gg.NewSweepGradientBrush(50, 50, 0).
//	    AddColorStop(0, gg.Red).
//	    AddColorStop(0.5, gg.Cyan).
//	    AddColorStop(1, gg.Red)
type SweepGradientBrush struct {
	Center Point       // Center of the sweep
	Angle0 float64     // Reference angle in radians
	Stops  []ColorStop // Color stops defining the gradient
}

// NewSweepGradientBrush creates a new conic gradient centered at (cx, cy)
// with reference angle angle0 (radians).
func NewSweepGradientBrush(cx, cy, angle0 float64) *SweepGradientBrush {
	return &SweepGradientBrush{
		Center: Point{X: cx, Y: cy},
		Angle0: angle0,
	}
}

// AddColorStop adds a color stop at the specified offset.
// Returns the gradient for method chaining.
func (g *SweepGradientBrush) AddColorStop(offset float64, c RGBA) *SweepGradientBrush {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// brushMarker implements the Brush interface marker.
func (SweepGradientBrush) brushMarker() {}

// ColorAt returns the color at the given point, per §3:
// t = frac((atan2(x−cx, −(y−cy)) − angle0) / (2π)).
func (g *SweepGradientBrush) ColorAt(x, y float64) RGBA {
	dx := x - g.Center.X
	dy := y - g.Center.Y
	if dx == 0 && dy == 0 {
		return firstStopColor(g.Stops)
	}

	angle := math.Atan2(dx, -dy)
	t := (angle - g.Angle0) / (2 * math.Pi)
	t -= math.Floor(t)

	return colorAtOffset(g.Stops, t)
}
