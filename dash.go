package gg

import "math"

// Dash defines a dash pattern for stroking.
// A dash pattern consists of alternating dash and gap lengths.
// For example, [5, 3] creates a pattern of 5 units dash, 3 units gap.
type Dash struct {
	// Array contains alternating dash/gap lengths.
	// If the array has an odd number of elements, it is logically duplicated
	// to create an even-length pattern (e.g., [5] becomes [5, 5]).
	Array []float64

	// Offset is the starting offset into the pattern.
	// The stroke begins at this point in the pattern cycle.
	Offset float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// If an odd number of elements is provided, the pattern is conceptually
// duplicated to create an even-length pattern.
//
// Examples:
//
//	NewDash(5, 3)       // 5 units dash, 3 units gap
//	NewDash(10, 5, 2, 5) // 10 dash, 5 gap, 2 dash, 5 gap
//	NewDash(5)          // equivalent to [5, 5]
//
// Returns nil if no lengths are provided or all lengths are zero.
func NewDash(lengths ...float64) *Dash {
	if len(lengths) == 0 {
		return nil
	}

	// Check if all values are zero or negative
	allZeroOrNeg := true
	for _, l := range lengths {
		if l > 0 {
			allZeroOrNeg = false
			break
		}
	}
	if allZeroOrNeg {
		return nil
	}

	// Take absolute values for any negative lengths
	normalized := make([]float64, len(lengths))
	for i, l := range lengths {
		normalized[i] = math.Abs(l)
	}

	return &Dash{
		Array:  normalized,
		Offset: 0,
	}
}

// WithOffset returns a new Dash with the given offset.
// The offset determines where in the pattern the stroke begins.
func (d *Dash) WithOffset(offset float64) *Dash {
	if d == nil {
		return nil
	}
	return &Dash{
		Array:  d.Array,
		Offset: offset,
	}
}

// PatternLength returns the total length of one complete pattern cycle.
// For odd-length arrays, this includes the duplicated pattern.
func (d *Dash) PatternLength() float64 {
	if d == nil || len(d.Array) == 0 {
		return 0
	}

	var total float64
	for _, l := range d.Array {
		total += l
	}

	// If odd number of elements, pattern is duplicated
	if len(d.Array)%2 != 0 {
		total *= 2
	}

	return total
}

// IsDashed returns true if this represents a dashed line (not solid).
// Returns false for nil Dash or empty/all-zero arrays.
func (d *Dash) IsDashed() bool {
	if d == nil || len(d.Array) == 0 {
		return false
	}

	// Check if any dash has positive length
	for _, l := range d.Array {
		if l > 0 {
			return true
		}
	}
	return false
}

// Clone creates a deep copy of the Dash.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}

	arrayCopy := make([]float64, len(d.Array))
	copy(arrayCopy, d.Array)

	return &Dash{
		Array:  arrayCopy,
		Offset: d.Offset,
	}
}

// NormalizedOffset returns the offset normalized to be within one pattern cycle.
// This is useful for calculating where in the pattern a stroke should begin.
func (d *Dash) NormalizedOffset() float64 {
	if d == nil {
		return 0
	}

	patternLen := d.PatternLength()
	if patternLen <= 0 {
		return 0
	}

	offset := math.Mod(d.Offset, patternLen)
	if offset < 0 {
		offset += patternLen
	}
	return offset
}

// Scale returns a new Dash with all lengths multiplied by the given factor.
// This is used to scale dash patterns when a transform is applied to the path.
// Per Cairo/Skia convention, dash lengths are in user-space units, so they
// must be scaled along with the coordinate transform.
func (d *Dash) Scale(factor float64) *Dash {
	if d == nil || factor <= 0 {
		return d
	}

	scaledArray := make([]float64, len(d.Array))
	for i, l := range d.Array {
		scaledArray[i] = l * factor
	}

	return &Dash{
		Array:  scaledArray,
		Offset: d.Offset * factor,
	}
}

// effectiveArray returns the array with odd-length arrays duplicated.
// This is used internally for pattern iteration.
func (d *Dash) effectiveArray() []float64 {
	if d == nil || len(d.Array) == 0 {
		return nil
	}

	if len(d.Array)%2 == 0 {
		return d.Array
	}

	// Duplicate for odd-length arrays
	result := make([]float64, len(d.Array)*2)
	copy(result, d.Array)
	copy(result[len(d.Array):], d.Array)
	return result
}

// DashPath walks each polyline edge of path (flattening curves to line
// segments first, since dashing consumes arc length that a curve doesn't
// expose directly), consuming the dash pattern array cyclically starting
// at dash.Offset, and returns a new Path containing only the "on"
// sub-segments as separate subpaths. A nil or non-dashed dash returns path
// unchanged.
func DashPath(path *Path, dash *Dash) *Path {
	if dash == nil || !dash.IsDashed() || path == nil || path.IsEmpty() {
		return path
	}
	pattern := dash.effectiveArray()
	patternLen := dash.PatternLength()
	if patternLen <= 0 {
		return path
	}

	out := NewPath()
	startDist := dash.NormalizedOffset()
	for _, pl := range flattenSubpaths(path) {
		dashPolyline(out, pl.pts, pattern, patternLen, startDist)
	}
	return out
}

// polyline is a flattened subpath: a sequence of device-space points and
// whether the source subpath was explicitly closed.
type polyline struct {
	pts    []Point
	closed bool
}

// flattenSubpaths walks path's primitives, flattening quadratic/cubic
// segments with the same fixed depth-2 (4 segment) subdivision the
// tessellator uses, and splits the result at each MoveTo into independent
// polylines. A Close appends the subpath's start point and marks it closed.
func flattenSubpaths(path *Path) []polyline {
	const segments = 4
	var result []polyline
	var cur []Point
	var start Point
	closed := false

	flush := func() {
		if len(cur) > 1 {
			result = append(result, polyline{pts: cur, closed: closed})
		}
		cur = nil
		closed = false
	}

	path.ForEach(func(t PrimType, pts []Point) {
		switch t {
		case PrimMoveTo:
			flush()
			start = pts[0]
			cur = append(cur, pts[0])
		case PrimLineTo:
			cur = append(cur, pts[0])
		case PrimQuadTo:
			p0 := cur[len(cur)-1]
			for i := 1; i <= segments; i++ {
				t := float64(i) / segments
				cur = append(cur, evalQuadAt(p0, pts[0], pts[1], t))
			}
		case PrimCubicTo:
			p0 := cur[len(cur)-1]
			for i := 1; i <= segments; i++ {
				t := float64(i) / segments
				cur = append(cur, evalCubicAt(p0, pts[0], pts[1], pts[2], t))
			}
		case PrimClose:
			if len(cur) > 0 && cur[len(cur)-1] != start {
				cur = append(cur, start)
			}
			closed = true
		}
	})
	flush()
	return result
}

func evalQuadAt(p0, p1, p2 Point, t float64) Point {
	mt := 1 - t
	return Point{
		X: mt*mt*p0.X + 2*mt*t*p1.X + t*t*p2.X,
		Y: mt*mt*p0.Y + 2*mt*t*p1.Y + t*t*p2.Y,
	}
}

func evalCubicAt(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	mt2 := mt * mt
	t2 := t * t
	return Point{
		X: mt2*mt*p0.X + 3*mt2*t*p1.X + 3*mt*t2*p2.X + t2*t*p3.X,
		Y: mt2*mt*p0.Y + 3*mt2*t*p1.Y + 3*mt*t2*p2.Y + t2*t*p3.Y,
	}
}

// dashPolyline emits the "on" sub-segments of one flattened polyline into
// out as independent MoveTo/LineTo runs, walking pattern cyclically from
// startDist.
func dashPolyline(out *Path, pts []Point, pattern []float64, patternLen, startDist float64) {
	if len(pts) < 2 {
		return
	}

	idx := 0
	pos := math.Mod(startDist, patternLen)
	if pos < 0 {
		pos += patternLen
	}
	for pos >= pattern[idx] {
		pos -= pattern[idx]
		idx = (idx + 1) % len(pattern)
	}
	on := idx%2 == 0
	remaining := pattern[idx] - pos

	if on {
		out.MoveTo(pts[0])
	}
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		segLen := a.Distance(b)
		if segLen == 0 {
			continue
		}
		segPos := 0.0
		for segLen-segPos > remaining {
			segPos += remaining
			p := a.Lerp(b, segPos/segLen)
			if on {
				out.LineTo(p)
			} else {
				out.MoveTo(p)
			}
			on = !on
			idx = (idx + 1) % len(pattern)
			remaining = pattern[idx]
		}
		remaining -= segLen - segPos
		if on {
			out.LineTo(b)
		}
	}
}
