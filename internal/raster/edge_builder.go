// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"iter"
	"math"
	"slices"
)

// PathVerb identifies a path segment command, mirroring the verb streams
// used throughout the gogpu path packages.
type PathVerb int

const (
	VerbMoveTo PathVerb = iota
	VerbLineTo
	VerbQuadTo
	VerbCubicTo
	VerbClose
)

// PathLike is the minimal surface EdgeBuilder needs from a path. Any path
// representation (root-level Path, scene graph path, etc.) can satisfy this
// without EdgeBuilder importing it directly, avoiding an import cycle.
type PathLike interface {
	IsEmpty() bool
	Verbs() []PathVerb
	Points() []float32
}

// Transform maps path-space coordinates to device (pixel) space.
type Transform interface {
	Apply(x, y float32) (float32, float32)
}

// IdentityTransform is a no-op Transform.
type IdentityTransform struct{}

// Apply returns x, y unchanged.
func (IdentityTransform) Apply(x, y float32) (float32, float32) { return x, y }

// Rect is an axis-aligned bounding box in device pixel space.
type Rect struct {
	MinX, MinY, MaxX, MaxY float32
}

// IsEmpty reports whether the rect encloses no area.
func (r Rect) IsEmpty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// EmptyRect returns a Rect whose IsEmpty is true and that expands correctly
// under successive Union-style min/max accumulation.
func EmptyRect() Rect {
	return Rect{
		MinX: math.MaxFloat32,
		MinY: math.MaxFloat32,
		MaxX: -math.MaxFloat32,
		MaxY: -math.MaxFloat32,
	}
}

// VelloLine is a flattened line segment normalized so P0.y <= P1.y, in the
// shape vello's coarse-rasterization stage expects (a plain line soup).
type VelloLine struct {
	P0, P1 [2]float32
}

// flattenSegments is the fixed subdivision count used when flattening a
// quadratic or cubic curve into a line soup. Four segments (depth 2) is
// enough for the AA shifts this package supports; adaptive flattening would
// need the destination transform's scale, which BuildFromPath doesn't track.
const flattenSegments = 4

// EdgeBuilder converts a path into sorted scanline edges, either as native
// forward-differencing curve edges or as a flattened line soup, for
// consumption by AnalyticFiller and the CurveAwareAET.
type EdgeBuilder struct {
	aaShift       int
	flattenCurves bool

	edges      []CurveEdgeVariant
	velloLines []VelloLine
	bounds     Rect
}

// NewEdgeBuilder creates an EdgeBuilder at the given AA subpixel shift
// (0 for no AA, 2 for 4x supersampling scale in edge construction).
func NewEdgeBuilder(aaShift int) *EdgeBuilder {
	return &EdgeBuilder{
		aaShift: aaShift,
		bounds:  EmptyRect(),
	}
}

// IsEmpty reports whether the builder holds no edges.
func (eb *EdgeBuilder) IsEmpty() bool { return len(eb.edges) == 0 }

// EdgeCount returns the total number of edges of any type.
func (eb *EdgeBuilder) EdgeCount() int { return len(eb.edges) }

// LineEdgeCount returns the number of line edges.
func (eb *EdgeBuilder) LineEdgeCount() int { return eb.countType(EdgeTypeLine) }

// QuadraticEdgeCount returns the number of quadratic curve edges.
func (eb *EdgeBuilder) QuadraticEdgeCount() int { return eb.countType(EdgeTypeQuadratic) }

// CubicEdgeCount returns the number of cubic curve edges.
func (eb *EdgeBuilder) CubicEdgeCount() int { return eb.countType(EdgeTypeCubic) }

func (eb *EdgeBuilder) countType(t EdgeType) int {
	n := 0
	for i := range eb.edges {
		if eb.edges[i].Type == t {
			n++
		}
	}
	return n
}

// AAShift returns the AA subpixel shift this builder was created with.
func (eb *EdgeBuilder) AAShift() int { return eb.aaShift }

// SetFlattenCurves chooses whether BuildFromPath flattens curves into line
// segments (true) or emits native forward-differencing curve edges (false).
func (eb *EdgeBuilder) SetFlattenCurves(flatten bool) { eb.flattenCurves = flatten }

// FlattenCurves reports the current curve-flattening mode.
func (eb *EdgeBuilder) FlattenCurves() bool { return eb.flattenCurves }

// Bounds returns the accumulated device-space bounding box of everything
// added to the builder so far.
func (eb *EdgeBuilder) Bounds() Rect { return eb.bounds }

// Reset clears the builder for reuse, keeping its aaShift/flattenCurves
// settings.
func (eb *EdgeBuilder) Reset() {
	eb.edges = eb.edges[:0]
	eb.velloLines = eb.velloLines[:0]
	eb.bounds = EmptyRect()
}

// VelloLines returns the flattened line soup accumulated by BuildFromPath
// (only populated while FlattenCurves is true).
func (eb *EdgeBuilder) VelloLines() []VelloLine { return eb.velloLines }

// AllEdges iterates every edge, sorted by top Y in ascending subpixel order,
// the order the scanline sweep expects edges to enter the AET.
func (eb *EdgeBuilder) AllEdges() iter.Seq[CurveEdgeVariant] {
	sorted := make([]CurveEdgeVariant, len(eb.edges))
	copy(sorted, eb.edges)
	slices.SortFunc(sorted, func(a, b CurveEdgeVariant) int {
		switch {
		case a.TopY() < b.TopY():
			return -1
		case a.TopY() > b.TopY():
			return 1
		default:
			return 0
		}
	})
	return func(yield func(CurveEdgeVariant) bool) {
		for _, e := range sorted {
			if !yield(e) {
				return
			}
		}
	}
}

// LineEdges iterates just the line edges, in insertion order.
func (eb *EdgeBuilder) LineEdges() iter.Seq[*LineEdge] {
	return func(yield func(*LineEdge) bool) {
		for i := range eb.edges {
			if eb.edges[i].Type == EdgeTypeLine {
				if !yield(eb.edges[i].Line) {
					return
				}
			}
		}
	}
}

// BuildFromPath walks path under tr and appends the resulting edges. A nil
// or empty path is a no-op.
func (eb *EdgeBuilder) BuildFromPath(path PathLike, tr Transform) {
	if path == nil || path.IsEmpty() {
		return
	}
	verbs := path.Verbs()
	points := path.Points()
	pi := 0
	next := func() CurvePoint {
		x, y := points[pi], points[pi+1]
		pi += 2
		tx, ty := tr.Apply(x, y)
		return CurvePoint{X: tx, Y: ty}
	}

	var cur, start CurvePoint
	for _, verb := range verbs {
		switch verb {
		case VerbMoveTo:
			cur = next()
			start = cur
		case VerbLineTo:
			p := next()
			eb.addLine(cur, p)
			cur = p
		case VerbQuadTo:
			c := next()
			p := next()
			eb.addQuad(cur, c, p)
			cur = p
		case VerbCubicTo:
			c1 := next()
			c2 := next()
			p := next()
			eb.addCubic(cur, c1, c2, p)
			cur = p
		case VerbClose:
			if cur != start {
				eb.addLine(cur, start)
			}
			cur = start
		}
	}
}

func (eb *EdgeBuilder) expandBounds(p CurvePoint) {
	if p.X < eb.bounds.MinX {
		eb.bounds.MinX = p.X
	}
	if p.X > eb.bounds.MaxX {
		eb.bounds.MaxX = p.X
	}
	if p.Y < eb.bounds.MinY {
		eb.bounds.MinY = p.Y
	}
	if p.Y > eb.bounds.MaxY {
		eb.bounds.MaxY = p.Y
	}
}

// addLine appends a single line edge, merging it into a preceding vertical
// edge in place when combineVertical says they coincide.
func (eb *EdgeBuilder) addLine(p0, p1 CurvePoint) {
	eb.expandBounds(p0)
	eb.expandBounds(p1)

	if eb.flattenCurves {
		eb.addVelloLine(p0, p1)
	}

	v := NewLineEdgeVariant(p0, p1, eb.aaShift)
	if v == nil {
		return // horizontal, contributes no coverage
	}

	if n := len(eb.edges); n > 0 && eb.edges[n-1].Type == EdgeTypeLine {
		last := eb.edges[n-1].Line
		switch combineVertical(v.Line, last) {
		case combineTotal:
			eb.edges = eb.edges[:n-1]
			return
		case combinePartial:
			return
		}
	}
	eb.edges = append(eb.edges, *v)
}

func (eb *EdgeBuilder) addVelloLine(p0, p1 CurvePoint) {
	if p0.Y > p1.Y {
		p0, p1 = p1, p0
	}
	eb.velloLines = append(eb.velloLines, VelloLine{
		P0: [2]float32{p0.X, p0.Y},
		P1: [2]float32{p1.X, p1.Y},
	})
}

func (eb *EdgeBuilder) addQuad(p0, p1, p2 CurvePoint) {
	eb.expandBounds(p0)
	eb.expandBounds(p1)
	eb.expandBounds(p2)

	if eb.flattenCurves {
		eb.flattenQuad(p0, p1, p2)
		return
	}
	for _, piece := range splitQuadMonotonic(p0, p1, p2) {
		v := NewQuadraticEdgeVariant(piece[0], piece[1], piece[2], eb.aaShift)
		if v != nil {
			eb.edges = append(eb.edges, *v)
		}
	}
}

func (eb *EdgeBuilder) addCubic(p0, p1, p2, p3 CurvePoint) {
	eb.expandBounds(p0)
	eb.expandBounds(p1)
	eb.expandBounds(p2)
	eb.expandBounds(p3)

	if eb.flattenCurves {
		eb.flattenCubic(p0, p1, p2, p3)
		return
	}
	for _, piece := range splitCubicMonotonic(p0, p1, p2, p3) {
		v := NewCubicEdgeVariant(piece[0], piece[1], piece[2], piece[3], eb.aaShift)
		if v != nil {
			eb.edges = append(eb.edges, *v)
		}
	}
}

func (eb *EdgeBuilder) flattenQuad(p0, p1, p2 CurvePoint) {
	prev := p0
	for i := 1; i <= flattenSegments; i++ {
		t := float32(i) / float32(flattenSegments)
		pt := evalQuad(p0, p1, p2, t)
		eb.addLine(prev, pt)
		prev = pt
	}
}

func (eb *EdgeBuilder) flattenCubic(p0, p1, p2, p3 CurvePoint) {
	prev := p0
	for i := 1; i <= flattenSegments; i++ {
		t := float32(i) / float32(flattenSegments)
		pt := evalCubic(p0, p1, p2, p3, t)
		eb.addLine(prev, pt)
		prev = pt
	}
}

func evalQuad(p0, p1, p2 CurvePoint, t float32) CurvePoint {
	mt := 1 - t
	return CurvePoint{
		X: mt*mt*p0.X + 2*mt*t*p1.X + t*t*p2.X,
		Y: mt*mt*p0.Y + 2*mt*t*p1.Y + t*t*p2.Y,
	}
}

func evalCubic(p0, p1, p2, p3 CurvePoint, t float32) CurvePoint {
	mt := 1 - t
	mt2 := mt * mt
	t2 := t * t
	return CurvePoint{
		X: mt2*mt*p0.X + 3*mt2*t*p1.X + 3*mt*t2*p2.X + t2*t*p3.X,
		Y: mt2*mt*p0.Y + 3*mt2*t*p1.Y + 3*mt*t2*p2.Y + t2*t*p3.Y,
	}
}

// splitQuadMonotonic chops a quadratic Bezier at its Y-extremum so every
// piece handed to NewQuadraticEdgeVariant is Y-monotonic, matching
// SkEdge.cpp's assumption that curve setup is never asked to forward-
// difference an arch whose endpoints share a Y coordinate.
func splitQuadMonotonic(p0, p1, p2 CurvePoint) [][3]CurvePoint {
	denom := p0.Y - 2*p1.Y + p2.Y
	if denom != 0 {
		t := (p0.Y - p1.Y) / denom
		if t > 1e-4 && t < 1-1e-4 {
			q1 := lerpPoint(p0, p1, t)
			q2 := lerpPoint(p1, p2, t)
			mid := lerpPoint(q1, q2, t)
			return [][3]CurvePoint{{p0, q1, mid}, {mid, q2, p2}}
		}
	}
	return [][3]CurvePoint{{p0, p1, p2}}
}

// splitCubicMonotonic chops a cubic Bezier at its Y-extrema (up to two),
// the way SkChopCubicAtYExtrema prepares cubics for forward-differencing
// setup.
func splitCubicMonotonic(p0, p1, p2, p3 CurvePoint) [][4]CurvePoint {
	a := -p0.Y + 3*p1.Y - 3*p2.Y + p3.Y
	b := 2*p0.Y - 4*p1.Y + 2*p2.Y
	c := p1.Y - p0.Y

	const eps = 1e-4
	var roots []float32
	switch {
	case absFloat32(a) < eps:
		if absFloat32(b) > eps {
			t := -c / b
			if t > eps && t < 1-eps {
				roots = append(roots, t)
			}
		}
	default:
		disc := b*b - 4*a*c
		if disc >= 0 {
			sq := float32(math.Sqrt(float64(disc)))
			t1 := (-b + sq) / (2 * a)
			t2 := (-b - sq) / (2 * a)
			if t1 > eps && t1 < 1-eps {
				roots = append(roots, t1)
			}
			if t2 > eps && t2 < 1-eps {
				roots = append(roots, t2)
			}
		}
	}
	if len(roots) == 0 {
		return [][4]CurvePoint{{p0, p1, p2, p3}}
	}
	slices.Sort(roots)

	pieces := make([][4]CurvePoint, 0, len(roots)+1)
	c0, c1, c2, c3 := p0, p1, p2, p3
	prevT := float32(0)
	for _, t := range roots {
		localT := (t - prevT) / (1 - prevT)
		left, right := splitCubicAt(c0, c1, c2, c3, localT)
		pieces = append(pieces, left)
		c0, c1, c2, c3 = right[0], right[1], right[2], right[3]
		prevT = t
	}
	pieces = append(pieces, [4]CurvePoint{c0, c1, c2, c3})
	return pieces
}

func splitCubicAt(p0, p1, p2, p3 CurvePoint, t float32) (left, right [4]CurvePoint) {
	p01 := lerpPoint(p0, p1, t)
	p12 := lerpPoint(p1, p2, t)
	p23 := lerpPoint(p2, p3, t)
	p012 := lerpPoint(p01, p12, t)
	p123 := lerpPoint(p12, p23, t)
	mid := lerpPoint(p012, p123, t)
	return [4]CurvePoint{p0, p01, p012, mid}, [4]CurvePoint{mid, p123, p23, p3}
}

func lerpPoint(a, b CurvePoint, t float32) CurvePoint {
	return CurvePoint{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

func absFloat32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// combineResult reports how combineVertical merged two coincident vertical
// line edges.
type combineResult int

const (
	// combineNo means the edges don't coincide; both should be kept.
	combineNo combineResult = iota
	// combinePartial means last was mutated in place to absorb edge.
	combinePartial
	// combineTotal means edge and last cancel each other out entirely.
	combineTotal
)

// combineVertical merges a new vertical edge into the previously emitted
// vertical edge at the same X when they're adjacent or overlapping,
// collapsing redundant coincident edges the way SkEdge.cpp's Combine does
// for rectilinear paths sharing an axis-aligned side.
func combineVertical(edge, last *LineEdge) combineResult {
	if edge.DX != 0 || last.DX != 0 {
		return combineNo
	}
	if edge.X != last.X {
		return combineNo
	}

	if edge.Winding == last.Winding {
		if edge.FirstY == last.LastY+1 {
			last.LastY = edge.LastY
			return combinePartial
		}
		if edge.LastY+1 == last.FirstY {
			last.FirstY = edge.FirstY
			return combinePartial
		}
		return combineNo
	}

	// Opposite winding: the two edges overlap and cancel where they do.
	if edge.FirstY == last.FirstY {
		if edge.LastY == last.LastY {
			return combineTotal
		}
		if edge.LastY < last.LastY {
			last.FirstY = edge.LastY + 1
			return combinePartial
		}
		last.FirstY = last.LastY + 1
		last.LastY = edge.LastY
		last.Winding = edge.Winding
		return combinePartial
	}
	if edge.LastY == last.LastY {
		if edge.FirstY > last.FirstY {
			last.LastY = edge.FirstY - 1
			return combinePartial
		}
		last.LastY = last.FirstY - 1
		last.FirstY = edge.FirstY
		last.Winding = edge.Winding
		return combinePartial
	}
	return combineNo
}
