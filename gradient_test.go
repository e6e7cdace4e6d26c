package gg

import (
	"math"
	"testing"
)

const gradientEpsilon = 0.01

func colorsEqual(c1, c2 RGBA, epsilon float64) bool {
	return math.Abs(c1.R-c2.R) < epsilon &&
		math.Abs(c1.G-c2.G) < epsilon &&
		math.Abs(c1.B-c2.B) < epsilon &&
		math.Abs(c1.A-c2.A) < epsilon
}

// --- ColorStop Tests ---

func TestSortStops(t *testing.T) {
	tests := []struct {
		name  string
		stops []ColorStop
		wantN int
		first float64
		last  float64
	}{
		{name: "empty", stops: nil, wantN: 0},
		{
			name: "already sorted",
			stops: []ColorStop{
				{Offset: 0, Color: Red},
				{Offset: 0.5, Color: Green},
				{Offset: 1, Color: Blue},
			},
			wantN: 3, first: 0, last: 1,
		},
		{
			name: "reverse order",
			stops: []ColorStop{
				{Offset: 1, Color: Blue},
				{Offset: 0, Color: Red},
				{Offset: 0.5, Color: Green},
			},
			wantN: 3, first: 0, last: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sortStops(tt.stops)
			if len(got) != tt.wantN {
				t.Errorf("sortStops() len = %v, want %v", len(got), tt.wantN)
			}
			if tt.wantN > 0 {
				if got[0].Offset != tt.first {
					t.Errorf("sortStops() first = %v, want %v", got[0].Offset, tt.first)
				}
				if got[len(got)-1].Offset != tt.last {
					t.Errorf("sortStops() last = %v, want %v", got[len(got)-1].Offset, tt.last)
				}
			}
		})
	}
}

func TestColorAtOffsetEmptyIsOpaqueBlack(t *testing.T) {
	got := colorAtOffset(nil, 0.5)
	if !colorsEqual(got, Black, gradientEpsilon) {
		t.Errorf("colorAtOffset(nil) = %+v, want Black", got)
	}
}

func TestColorAtOffsetBoundaryClamps(t *testing.T) {
	stops := []ColorStop{{Offset: 0.25, Color: Red}, {Offset: 0.75, Color: Blue}}
	if got := colorAtOffset(stops, -1); !colorsEqual(got, Red, gradientEpsilon) {
		t.Errorf("below first stop = %+v, want Red", got)
	}
	if got := colorAtOffset(stops, 2); !colorsEqual(got, Blue, gradientEpsilon) {
		t.Errorf("above last stop = %+v, want Blue", got)
	}
}

func TestColorAtOffsetIdenticalPositionsLeftmostWins(t *testing.T) {
	stops := []ColorStop{{Offset: 0.5, Color: Red}, {Offset: 0.5, Color: Blue}}
	got := colorAtOffset(stops, 0.5)
	if !colorsEqual(got, Red, gradientEpsilon) {
		t.Errorf("coincident stops at t=0.5 = %+v, want Red (leftmost)", got)
	}
}

func TestColorAtOffsetInterpolatesMidpoint(t *testing.T) {
	stops := []ColorStop{{Offset: 0, Color: Black}, {Offset: 1, Color: White}}
	got := colorAtOffset(stops, 0.5)
	if !colorsEqual(got, RGB(0.5, 0.5, 0.5), gradientEpsilon) {
		t.Errorf("midpoint black->white = %+v, want mid-gray", got)
	}
}

// --- LinearGradientBrush Tests ---

func TestLinearGradientBrush_New(t *testing.T) {
	g := NewLinearGradientBrush(0, 0, 100, 0)
	if g.Start.X != 0 || g.Start.Y != 0 {
		t.Errorf("Start = %+v, want (0, 0)", g.Start)
	}
	if g.End.X != 100 || g.End.Y != 0 {
		t.Errorf("End = %+v, want (100, 0)", g.End)
	}
}

func TestLinearGradientBrush_ColorAt(t *testing.T) {
	g := NewLinearGradientBrush(0, 0, 100, 0).
		AddColorStop(0, Red).
		AddColorStop(1, Blue)

	tests := []struct {
		name string
		x, y float64
		want RGBA
	}{
		{"at start", 0, 0, Red},
		{"at end", 100, 0, Blue},
		{"before start (clamp)", -50, 0, Red},
		{"after end (clamp)", 150, 0, Blue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.ColorAt(tt.x, tt.y)
			if !colorsEqual(got, tt.want, gradientEpsilon) {
				t.Errorf("ColorAt(%v, %v) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestLinearGradientBrush_ZeroLength(t *testing.T) {
	g := NewLinearGradientBrush(50, 50, 50, 50).
		AddColorStop(0, Red).
		AddColorStop(1, Blue)

	got := g.ColorAt(0, 0)
	if !colorsEqual(got, Red, gradientEpsilon) {
		t.Errorf("ColorAt for zero-length gradient = %+v, want Red", got)
	}
}

func TestLinearGradientBrush_EmptyStopsIsBlack(t *testing.T) {
	g := NewLinearGradientBrush(0, 0, 100, 0)
	got := g.ColorAt(50, 0)
	if !colorsEqual(got, Black, gradientEpsilon) {
		t.Errorf("ColorAt with no stops = %+v, want Black", got)
	}
}

func TestLinearGradientBrush_SingleStop(t *testing.T) {
	g := NewLinearGradientBrush(0, 0, 100, 0).
		AddColorStop(0.5, Green)

	got := g.ColorAt(0, 0)
	if !colorsEqual(got, Green, gradientEpsilon) {
		t.Errorf("ColorAt with single stop = %+v, want Green", got)
	}
}

func TestLinearGradientBrush_Vertical(t *testing.T) {
	g := NewLinearGradientBrush(0, 0, 0, 100).
		AddColorStop(0, Red).
		AddColorStop(1, Blue)

	startColor := g.ColorAt(0, 0)
	endColor := g.ColorAt(0, 100)

	if !colorsEqual(startColor, Red, gradientEpsilon) {
		t.Errorf("Vertical start = %+v, want Red", startColor)
	}
	if !colorsEqual(endColor, Blue, gradientEpsilon) {
		t.Errorf("Vertical end = %+v, want Blue", endColor)
	}
}

// --- RadialGradientBrush Tests ---

func TestRadialGradientBrush_New(t *testing.T) {
	g := NewRadialGradientBrush(50, 50, 0, 50, 50, 100)
	if g.C1.X != 50 || g.C1.Y != 50 {
		t.Errorf("C1 = %+v, want (50, 50)", g.C1)
	}
	if g.R1 != 0 {
		t.Errorf("R1 = %v, want 0", g.R1)
	}
	if g.R2 != 100 {
		t.Errorf("R2 = %v, want 100", g.R2)
	}
}

func TestRadialGradientBrush_ColorAt(t *testing.T) {
	g := NewRadialGradientBrush(50, 50, 0, 50, 50, 50).
		AddColorStop(0, Red).
		AddColorStop(1, Blue)

	tests := []struct {
		name string
		x, y float64
		want RGBA
	}{
		{"at center", 50, 50, Red},
		{"at edge", 100, 50, Blue},
		{"at edge top", 50, 0, Blue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.ColorAt(tt.x, tt.y)
			if !colorsEqual(got, tt.want, gradientEpsilon) {
				t.Errorf("ColorAt(%v, %v) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRadialGradientBrush_EmptyStopsIsBlack(t *testing.T) {
	g := NewRadialGradientBrush(50, 50, 0, 50, 50, 50)
	got := g.ColorAt(50, 50)
	if !colorsEqual(got, Black, gradientEpsilon) {
		t.Errorf("ColorAt with no stops = %+v, want Black", got)
	}
}

func TestRadialGradientBrush_OutsideConeIsTransparent(t *testing.T) {
	// The circles' radius grows more slowly than their centers move, so a
	// point far off to the side of the c1->c2 axis lies outside the swept
	// cone and the discriminant goes negative.
	g := NewRadialGradientBrush(0, 0, 0, 10, 0, 5).
		AddColorStop(0, Red).
		AddColorStop(1, Blue)

	got := g.ColorAt(0, 100)
	if !colorsEqual(got, Transparent, gradientEpsilon) {
		t.Errorf("far outside cone = %+v, want Transparent", got)
	}
}

func TestRadialGradientBrush_StartRadius(t *testing.T) {
	g := NewRadialGradientBrush(50, 50, 25, 50, 50, 50).
		AddColorStop(0, Red).
		AddColorStop(1, Blue)

	centerColor := g.ColorAt(50, 50)
	if !colorsEqual(centerColor, Red, gradientEpsilon) {
		t.Errorf("Center color = %+v, want Red", centerColor)
	}

	innerColor := g.ColorAt(75, 50) // 25 units from center, at inner radius
	if !colorsEqual(innerColor, Red, gradientEpsilon) {
		t.Errorf("Inner radius color = %+v, want Red", innerColor)
	}

	outerColor := g.ColorAt(100, 50) // 50 units from center, at outer radius
	if !colorsEqual(outerColor, Blue, gradientEpsilon) {
		t.Errorf("Outer radius color = %+v, want Blue", outerColor)
	}
}

// --- SweepGradientBrush Tests ---

func TestSweepGradientBrush_New(t *testing.T) {
	g := NewSweepGradientBrush(50, 50, 0)
	if g.Center.X != 50 || g.Center.Y != 50 {
		t.Errorf("Center = %+v, want (50, 50)", g.Center)
	}
	if g.Angle0 != 0 {
		t.Errorf("Angle0 = %v, want 0", g.Angle0)
	}
}

func TestSweepGradientBrush_ColorAtOrigin(t *testing.T) {
	g := NewSweepGradientBrush(0, 0, 0).
		AddColorStop(0, Red).
		AddColorStop(1, Blue)
	// angle0 is t=0: atan2(x-cx, -(y-cy)) = 0 when x=0, y<0 (straight up).
	got := g.ColorAt(0, -10)
	if !colorsEqual(got, Red, gradientEpsilon) {
		t.Errorf("ColorAt straight up from center = %+v, want Red", got)
	}
}

func TestSweepGradientBrush_WrapsFullCircle(t *testing.T) {
	g := NewSweepGradientBrush(0, 0, 0).
		AddColorStop(0, Red).
		AddColorStop(1, Red)
	for _, pt := range []Point{{X: 10, Y: 0}, {X: -10, Y: 0}, {X: 0, Y: 10}, {X: 7, Y: -7}} {
		got := g.ColorAt(pt.X, pt.Y)
		if !colorsEqual(got, Red, gradientEpsilon) {
			t.Errorf("ColorAt(%v) = %+v, want Red", pt, got)
		}
	}
}

func TestSweepGradientBrush_AtCenterFallsBackToFirstStop(t *testing.T) {
	g := NewSweepGradientBrush(5, 5, 0).
		AddColorStop(0, Green).
		AddColorStop(1, Blue)
	got := g.ColorAt(5, 5)
	if !colorsEqual(got, Green, gradientEpsilon) {
		t.Errorf("ColorAt at center = %+v, want Green", got)
	}
}
