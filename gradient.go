package gg

import "sort"

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// sortStops returns a copy of stops sorted by ascending offset.
func sortStops(stops []ColorStop) []ColorStop {
	if len(stops) == 0 {
		return stops
	}
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// alphaBlendColor blends c1 toward c2 componentwise (including alpha) using
// the spec's straight alpha_blend primitive, with weight a=round(t*255).
func alphaBlendColor(c1, c2 RGBA, t float64) RGBA {
	a := uint8(clamp255(t*255 + 0.5))
	return RGBA{
		R: float64(AlphaBlend(a, uint8(clamp255(c1.R*255)), uint8(clamp255(c2.R*255)))) / 255,
		G: float64(AlphaBlend(a, uint8(clamp255(c1.G*255)), uint8(clamp255(c2.G*255)))) / 255,
		B: float64(AlphaBlend(a, uint8(clamp255(c1.B*255)), uint8(clamp255(c2.B*255)))) / 255,
		A: float64(AlphaBlend(a, uint8(clamp255(c1.A*255)), uint8(clamp255(c2.A*255)))) / 255,
	}
}

// colorAtOffset evaluates a sorted color-stop list at parameter t, per
// §3/§4.F: walk the sorted stops while a stop's position is still < t;
// the first stop reached whose position is >= t brackets the result with
// its predecessor, interpolating with alpha_blend using
// α = (t−pos)/(next.pos−pos). t before the first stop clamps to the first
// color; t after the last clamps to the last. Two stops at an identical
// offset resolve to the leftmost (earlier in the sorted list), since the
// walk stops at the first one reached rather than continuing past it. An
// empty stop list has no defined color in the CSS/Canvas sense, so the
// engine renders it as opaque black — a deliberate, explicit deviation
// from "transparent" defaults elsewhere, matching the spec's §3 Gradient
// note.
func colorAtOffset(stops []ColorStop, t float64) RGBA {
	if len(stops) == 0 {
		return Black
	}
	sorted := sortStops(stops)
	if len(sorted) == 1 {
		return sorted[0].Color
	}
	if t <= sorted[0].Offset {
		return sorted[0].Color
	}
	last := sorted[len(sorted)-1]
	if t >= last.Offset {
		return last.Color
	}

	for i := 1; i < len(sorted); i++ {
		cur := sorted[i]
		if cur.Offset >= t {
			prev := sorted[i-1]
			if cur.Offset == prev.Offset {
				return cur.Color
			}
			alpha := (t - prev.Offset) / (cur.Offset - prev.Offset)
			return alphaBlendColor(prev.Color, cur.Color, alpha)
		}
	}
	return last.Color
}

// firstStopColor returns the lowest-offset stop's color, or opaque black if
// there are no stops (matching colorAtOffset's empty-stops behavior).
func firstStopColor(stops []ColorStop) RGBA {
	if len(stops) == 0 {
		return Black
	}
	return sortStops(stops)[0].Color
}
