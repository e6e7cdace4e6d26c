package gg

import "math"

// Path2D wraps a Path with the bookkeeping move_to/line_to/arc_to need:
// the first transformed point of the current subpath (so close can return
// to the subpath's origin) and the last untransformed point (arc_to's
// tangent geometry operates on untransformed coordinates, since it must
// match what the caller thinks they asked for regardless of the current
// transform).
type Path2D struct {
	path *Path

	firstTx, firstTy float64
	hasFirst         bool
	lastX, lastY     float64
	hasLast          bool
}

// NewPath2D creates an empty Path2D.
func NewPath2D() *Path2D {
	return &Path2D{path: NewPath()}
}

// Path returns the underlying compact Path.
func (d *Path2D) Path() *Path {
	return d.path
}

// Reset clears the Path2D back to its initial empty state.
func (d *Path2D) Reset() {
	d.path.Reset()
	d.hasFirst = false
	d.hasLast = false
}

// MoveTo begins a new subpath at (x,y), transforming the input point by tr.
func (d *Path2D) MoveTo(tr Matrix, x, y float64) {
	tp := tr.TransformPoint(Point{X: x, Y: y})
	d.path.MoveTo(tp)
	d.firstTx, d.firstTy = tp.X, tp.Y
	d.hasFirst = true
	d.lastX, d.lastY = x, y
	d.hasLast = true
}

// LineTo appends a line to (x,y), transforming the input point by tr.
func (d *Path2D) LineTo(tr Matrix, x, y float64) {
	tp := tr.TransformPoint(Point{X: x, Y: y})
	if !d.hasFirst {
		d.firstTx, d.firstTy = tp.X, tp.Y
		d.hasFirst = true
	}
	d.path.LineTo(tp)
	d.lastX, d.lastY = x, y
	d.hasLast = true
}

// QuadraticCurveTo appends a quadratic Bezier, transforming both points by tr.
func (d *Path2D) QuadraticCurveTo(tr Matrix, cx, cy, x, y float64) {
	tc := tr.TransformPoint(Point{X: cx, Y: cy})
	tp := tr.TransformPoint(Point{X: x, Y: y})
	if !d.hasFirst {
		d.firstTx, d.firstTy = tp.X, tp.Y
		d.hasFirst = true
	}
	d.path.QuadTo(tc, tp)
	d.lastX, d.lastY = x, y
	d.hasLast = true
}

// BezierCurveTo appends a cubic Bezier, transforming all three points by tr.
func (d *Path2D) BezierCurveTo(tr Matrix, c1x, c1y, c2x, c2y, x, y float64) {
	tc1 := tr.TransformPoint(Point{X: c1x, Y: c1y})
	tc2 := tr.TransformPoint(Point{X: c2x, Y: c2y})
	tp := tr.TransformPoint(Point{X: x, Y: y})
	if !d.hasFirst {
		d.firstTx, d.firstTy = tp.X, tp.Y
		d.hasFirst = true
	}
	d.path.CubicTo(tc1, tc2, tp)
	d.lastX, d.lastY = x, y
	d.hasLast = true
}

// Close closes the current subpath, then reopens it at its own origin: a
// MoveTo(firstTx, firstTy) is appended so that primitives issued after
// close behave as if starting a fresh subpath at the original start point
// (arc_to in particular needs a well-defined "last untransformed point").
func (d *Path2D) Close() {
	d.path.Close()
	if d.hasFirst {
		d.path.MoveTo(Point{X: d.firstTx, Y: d.firstTy})
	}
}

// Rect appends an axis-aligned rectangle as a closed subpath.
func (d *Path2D) Rect(tr Matrix, x, y, w, h float64) {
	d.MoveTo(tr, x, y)
	d.LineTo(tr, x+w, y)
	d.LineTo(tr, x+w, y+h)
	d.LineTo(tr, x, y+h)
	d.Close()
}

// ArcTo appends an arc tangent to the two lines (lastPoint→(x1,y1)) and
// ((x1,y1)→(x2,y2)), with the given radius, following the spec's colinear/
// coincident fallback and tangent-intersection construction. Operates on
// untransformed coordinates (matching lastX/lastY) and transforms the
// resulting geometry by tr as it is appended.
func (d *Path2D) ArcTo(tr Matrix, x1, y1, x2, y2, radius float64) {
	if !d.hasLast {
		d.MoveTo(tr, x1, y1)
		return
	}
	p0 := Point{X: d.lastX, Y: d.lastY}
	p1 := Point{X: x1, Y: y1}
	p2 := Point{X: x2, Y: y2}

	v01 := p0.Sub(p1)
	v21 := p2.Sub(p1)

	cross := v01.Cross(v21)
	if radius <= 0 || math.Abs(cross) < 1e-9 || (v01 == Point{}) || (v21 == Point{}) {
		// Colinear or coincident: fall back to a line to the middle point.
		d.LineTo(tr, x1, y1)
		return
	}

	len01 := v01.Length()
	len21 := v21.Length()
	u01 := v01.Div(len01)
	u21 := v21.Div(len21)

	// Half-angle between the two incoming/outgoing edges at p1.
	cosTheta := u01.Dot(u21)
	cosTheta = math.Max(-1, math.Min(1, cosTheta))
	theta := math.Acos(cosTheta)
	tangentLen := radius / math.Tan(theta/2)

	i1 := p1.Add(u01.Mul(tangentLen))
	i2 := p1.Add(u21.Mul(tangentLen))

	// Arc center lies along the bisector of the two tangent points, at
	// distance radius/sin(theta/2) from p1.
	bisector := u01.Add(u21).Normalize()
	centerDist := radius / math.Sin(theta/2)
	center := p1.Add(bisector.Mul(centerDist))

	a1 := math.Atan2(i1.Y-center.Y, i1.X-center.X)
	a2 := math.Atan2(i2.Y-center.Y, i2.X-center.X)
	ccw := cross > 0

	d.LineTo(tr, i1.X, i1.Y)
	d.arcBezier(tr, center, radius, radius, 0, a1, a2, ccw)
}

// Arc appends a circular arc centered at (cx,cy), radius r, from startAngle
// to endAngle (radians), honoring ccw.
func (d *Path2D) Arc(tr Matrix, cx, cy, r, startAngle, endAngle float64, ccw bool) {
	d.Ellipse(tr, cx, cy, r, r, 0, startAngle, endAngle, ccw)
}

// Ellipse appends an elliptic arc: a base circular arc is built with
// arc_to_bezier then each control point is rotated by -rotation before the
// caller's transform tr is applied, per the spec's axis-aligned-then-rotate
// construction.
func (d *Path2D) Ellipse(tr Matrix, cx, cy, rx, ry, rotation, startAngle, endAngle float64, ccw bool) {
	rot := Rotate(-rotation)
	combined := tr.Multiply(Translate(cx, cy)).Multiply(rot)
	d.arcBezierTransformed(combined, rx, ry, startAngle, endAngle, ccw)
}

// arcBezier flattens a circular/elliptic arc centered at `center` directly
// in transformed space (used by ArcTo where the center is already known in
// the pre-transform frame, and tr still needs to apply to every point).
func (d *Path2D) arcBezier(tr Matrix, center Point, rx, ry, rotation, a1, a2 float64, ccw bool) {
	combined := tr.Multiply(Translate(center.X, center.Y))
	if rotation != 0 {
		combined = combined.Multiply(Rotate(-rotation))
	}
	d.arcBezierTransformed(combined, rx, ry, a1, a2, ccw)
}

// arcBezierTransformed is arc_to_bezier: it normalizes the angular span
// (respecting ccw), splits into 1/2/4 cubic segments depending on the span,
// and appends them through `combined` (which maps the ellipse's own local
// frame — centered at origin, radii rx/ry — to final path coordinates).
func (d *Path2D) arcBezierTransformed(combined Matrix, rx, ry, a1, a2 float64, ccw bool) {
	const twoPi = 2 * math.Pi
	span := a2 - a1
	if ccw {
		for span > 0 {
			span -= twoPi
		}
	} else {
		for span < 0 {
			span += twoPi
		}
	}

	var segments int
	switch {
	case math.Abs(span) >= math.Pi:
		segments = 4
	case math.Abs(span) >= math.Pi/2:
		segments = 2
	default:
		segments = 1
	}
	step := span / float64(segments)

	emitPoint := func(a float64) Point {
		return combined.TransformPoint(Point{X: rx * math.Cos(a), Y: ry * math.Sin(a)})
	}

	start := emitPoint(a1)
	if d.path.IsEmpty() {
		d.path.MoveTo(start)
		d.firstTx, d.firstTy = start.X, start.Y
		d.hasFirst = true
	} else {
		d.path.LineTo(start)
	}

	cur := a1
	for i := 0; i < segments; i++ {
		next := cur + step
		d.appendArcSegmentBezier(combined, rx, ry, cur, next)
		cur = next
	}

	end := emitPoint(cur)
	d.lastX, d.lastY = end.X, end.Y
	d.hasLast = true
}

// appendArcSegmentBezier emits one cubic Bezier approximating the circular
// arc from a1 to a2 (|a2-a1| <= pi/2) on an ellipse with radii (rx,ry)
// local to `combined`, using the standard tangent-length factor
// k = (4/3)*tan((a2-a1)/4).
func (d *Path2D) appendArcSegmentBezier(combined Matrix, rx, ry, a1, a2 float64) {
	k := (4.0 / 3.0) * math.Tan((a2-a1)/4)

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	p1 := Point{X: rx * cos1, Y: ry * sin1}
	p2 := Point{X: rx * cos2, Y: ry * sin2}
	t1 := Point{X: -rx * sin1, Y: ry * cos1}
	t2 := Point{X: -rx * sin2, Y: ry * cos2}

	c1 := p1.Add(t1.Mul(k))
	c2 := p2.Sub(t2.Mul(k))

	d.path.CubicTo(combined.TransformPoint(c1), combined.TransformPoint(c2), combined.TransformPoint(p2))
}
