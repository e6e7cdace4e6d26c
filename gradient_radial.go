package gg

import "math"

// RadialGradientBrush represents a radial color transition between two
// circles: an inner circle (c1, r1) at t=0 and an outer circle (c2, r2) at
// t=1, per §3's two-circle parameterization (a "focal" radial gradient when
// c1 != c2).
//
// Example:
//
//	gradient := gg.NewRadialGradientBrush(50, 50, 0, 50, 50, 50).
//	    AddColorStop(0, gg.White).
//	    AddColorStop(1, gg.Black)
type RadialGradientBrush struct {
	C1, C2 Point       // Inner and outer circle centers
	R1, R2 float64     // Inner and outer circle radii
	Stops  []ColorStop // Color stops defining the gradient
}

// NewRadialGradientBrush creates a new two-circle radial gradient.
func NewRadialGradientBrush(x1, y1, r1, x2, y2, r2 float64) *RadialGradientBrush {
	return &RadialGradientBrush{
		C1: Point{X: x1, Y: y1}, R1: r1,
		C2: Point{X: x2, Y: y2}, R2: r2,
	}
}

// AddColorStop adds a color stop at the specified offset.
// Returns the gradient for method chaining.
func (g *RadialGradientBrush) AddColorStop(offset float64, c RGBA) *RadialGradientBrush {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// brushMarker implements the Brush interface marker.
func (RadialGradientBrush) brushMarker() {}

// largeT is the threshold beyond which a computed radial parameter is
// treated as "very large" and clamped to transparent, per §3.
const largeT = 1e6

// ColorAt returns the color at the given point, solving the quadratic
// a·t² + b·t + c = 0 from §3 and taking the larger root. A negative
// discriminant (the point lies outside both circles' swept cone) yields
// transparent black, not the stop list's boundary color.
func (g *RadialGradientBrush) ColorAt(x, y float64) RGBA {
	dcx := g.C2.X - g.C1.X
	dcy := g.C2.Y - g.C1.Y
	dr := g.R2 - g.R1

	a := dcx*dcx + dcy*dcy - dr*dr

	xc1x := x - g.C1.X
	xc1y := y - g.C1.Y

	b := -2 * (xc1x*dcx + xc1y*dcy + g.R1*dr)
	c := xc1x*xc1x + xc1y*xc1y - g.R1*g.R1

	var t float64
	if math.Abs(a) < 1e-12 {
		// Degenerate to linear: b*t + c = 0.
		if b == 0 {
			return Transparent
		}
		t = -c / b
	} else {
		disc := b*b - 4*a*c
		if disc < 0 {
			return Transparent
		}
		sqrtDisc := math.Sqrt(disc)
		t1 := (-b + sqrtDisc) / (2 * a)
		t2 := (-b - sqrtDisc) / (2 * a)
		t = math.Max(t1, t2)
	}

	if math.Abs(t) > largeT {
		return Transparent
	}

	return colorAtOffset(g.Stops, t)
}
